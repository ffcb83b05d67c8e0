package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jetdesk/internal/application/registry/usecases"
	"jetdesk/internal/infrastructure/config"
	"jetdesk/internal/infrastructure/database"
	"jetdesk/internal/infrastructure/persistence/seeds"
	"jetdesk/internal/infrastructure/repository"
	"jetdesk/internal/shared/db"
	"jetdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo data into the registry",
		Long:  `Insert a small demo data set (clients, technicians, problems, solutions and ratings) without touching existing rows.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	gormDB := database.Get()
	log := logger.NewLogger()

	clientRepo := repository.NewClientRepository(gormDB)
	technicianRepo := repository.NewTechnicianRepository(gormDB)
	problemRepo := repository.NewProblemRepository(gormDB)
	solutionRepo := repository.NewSolutionRepository(gormDB)
	txMgr := db.NewTransactionManager(gormDB)

	seeder := seeds.NewSeeder(
		usecases.NewAddClientUseCase(clientRepo, log),
		usecases.NewAddTechnicianUseCase(technicianRepo, log),
		usecases.NewAddProblemUseCase(problemRepo, clientRepo, technicianRepo, txMgr, log),
		usecases.NewAddSolutionUseCase(solutionRepo, problemRepo, txMgr, log),
		usecases.NewRateSolutionUseCase(solutionRepo, txMgr, log),
		log,
	)

	summary, err := seeder.Run(context.Background())
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logger.Info("demo data seeded",
		"clients", len(summary.ClientIDs),
		"technicians", len(summary.TechnicianIDs),
		"problems", len(summary.ProblemIDs),
		"solutions", len(summary.SolutionIDs))

	return nil
}
