package main

import (
	"os"

	"github.com/spf13/cobra"

	"jetdesk/internal/interfaces/cli/seed"
	"jetdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jetdesk",
		Short: "Jetdesk - field service registry for industrial printers",
		Long:  `Jetdesk tracks reported printer problems, the technicians assigned to them and the solutions that fixed them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
