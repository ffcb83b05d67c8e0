package seeds

import (
	"context"
	"fmt"

	"jetdesk/internal/application/registry/usecases"
	"jetdesk/internal/shared/logger"
)

// Seeder inserts a small demo data set through the registry use cases so
// every row passes the same validation as production input. Seeding is
// additive and never touches existing rows.
type Seeder struct {
	addClient     usecases.AddClientExecutor
	addTechnician usecases.AddTechnicianExecutor
	addProblem    usecases.AddProblemExecutor
	addSolution   usecases.AddSolutionExecutor
	rateSolution  usecases.RateSolutionExecutor
	logger        logger.Interface
}

// Summary reports the ids created by a seeding run.
type Summary struct {
	ClientIDs     []uint
	TechnicianIDs []uint
	ProblemIDs    []uint
	SolutionIDs   []uint
}

func NewSeeder(
	addClient usecases.AddClientExecutor,
	addTechnician usecases.AddTechnicianExecutor,
	addProblem usecases.AddProblemExecutor,
	addSolution usecases.AddSolutionExecutor,
	rateSolution usecases.RateSolutionExecutor,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		addClient:     addClient,
		addTechnician: addTechnician,
		addProblem:    addProblem,
		addSolution:   addSolution,
		rateSolution:  rateSolution,
		logger:        logger,
	}
}

func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	s.logger.Infow("seeding demo data")

	summary := &Summary{}

	clients := []usecases.AddClientCommand{
		{
			Name:            "Fast Print Co.",
			ContactPhone:    "0501234567",
			Email:           "contact@fastprint.example",
			Company:         "Fast Print Co.",
			ServiceContract: true,
			Location:        "Riyadh",
		},
		{
			Name:            "Al-Noor Printing",
			ContactPhone:    "0559876543",
			Email:           "alnoor@example.com",
			Company:         "Al-Noor Printing",
			ServiceContract: false,
			Location:        "Jeddah",
		},
	}
	for _, cmd := range clients {
		result, err := s.addClient.Execute(ctx, cmd)
		if err != nil {
			return nil, fmt.Errorf("failed to seed client %q: %w", cmd.Name, err)
		}
		summary.ClientIDs = append(summary.ClientIDs, result.ClientID)
	}

	technicians := []usecases.AddTechnicianCommand{
		{Name: "Ahmed Saleh", Specialty: "electrical", Contact: "0501112222", CertificationLevel: 3},
		{Name: "Mohamed Badr", Specialty: "software", Contact: "0503334444", CertificationLevel: 4},
	}
	for _, cmd := range technicians {
		result, err := s.addTechnician.Execute(ctx, cmd)
		if err != nil {
			return nil, fmt.Errorf("failed to seed technician %q: %w", cmd.Name, err)
		}
		summary.TechnicianIDs = append(summary.TechnicianIDs, result.TechnicianID)
	}

	problems := []usecases.AddProblemCommand{
		{
			Title:        "Print head producing faint lines",
			Description:  "Horizontal lines come out blurred and incomplete.",
			Model:        "HandJet EBS-250",
			SerialNumber: "SN-HJ250-001",
			ClientID:     summary.ClientIDs[0],
			ErrorCode:    "E101",
			Component:    "Print Head",
			InkType:      "Quick Dry",
			SurfaceType:  "Plastic",
			Priority:     1,
			ReportedBy:   "operator",
			FailureCause: "hardware",
			TechnicianID: &summary.TechnicianIDs[0],
		},
		{
			Title:        "Printer does not join Wi-Fi",
			Description:  "The device cannot connect to the shop floor network.",
			Model:        "HandJet EBS-260",
			SerialNumber: "SN-HJ260-014",
			ClientID:     summary.ClientIDs[1],
			ErrorCode:    "E205",
			Component:    "Network Module",
			Priority:     3,
			ReportedBy:   "operator",
			FailureCause: "configuration",
		},
		{
			Title:        "Ink smearing on cardboard",
			Description:  "Printed codes smear before drying on coated cardboard.",
			Model:        "HandJet EBS-260",
			SerialNumber: "SN-HJ260-027",
			ClientID:     summary.ClientIDs[0],
			InkType:      "Standard",
			SurfaceType:  "Cardboard",
			Priority:     2,
			ReportedBy:   "line supervisor",
		},
	}
	for _, cmd := range problems {
		result, err := s.addProblem.Execute(ctx, cmd)
		if err != nil {
			return nil, fmt.Errorf("failed to seed problem %q: %w", cmd.Title, err)
		}
		summary.ProblemIDs = append(summary.ProblemIDs, result.ProblemID)
	}

	solutions := []usecases.AddSolutionCommand{
		{
			ProblemID:       summary.ProblemIDs[0],
			Title:           "Replace the print head",
			Steps:           "1. Power off the device. 2. Remove the old print head. 3. Mount the new head. 4. Run calibration.",
			DifficultyLevel: 4,
			CreatedBy:       "demo seeder",
		},
		{
			ProblemID:       summary.ProblemIDs[1],
			Title:           "Reset the network settings",
			Steps:           "1. Open the settings menu. 2. Select network. 3. Factory-reset the Wi-Fi settings.",
			DifficultyLevel: 2,
			CreatedBy:       "demo seeder",
		},
		{
			ProblemID:       summary.ProblemIDs[0],
			Title:           "Clean the print head manually",
			Steps:           "1. Disconnect power. 2. Wipe the head with a lint-free cloth and cleaning solution. 3. Let it dry before restart.",
			DifficultyLevel: 2,
			CreatedBy:       "demo seeder",
		},
	}
	for _, cmd := range solutions {
		result, err := s.addSolution.Execute(ctx, cmd)
		if err != nil {
			return nil, fmt.Errorf("failed to seed solution %q: %w", cmd.Title, err)
		}
		summary.SolutionIDs = append(summary.SolutionIDs, result.SolutionID)
	}

	ratings := []usecases.RateSolutionCommand{
		{SolutionID: summary.SolutionIDs[0], Score: 5, Feedback: "Fixed the faint lines completely.", RatedBy: "Ahmed Saleh"},
		{SolutionID: summary.SolutionIDs[1], Score: 4, Feedback: "Worked after a second attempt.", RatedBy: "Mohamed Badr"},
		{SolutionID: summary.SolutionIDs[2], Score: 3, Feedback: "Helps temporarily, head still degrades.", RatedBy: "Ahmed Saleh"},
	}
	for _, cmd := range ratings {
		if _, err := s.rateSolution.Execute(ctx, cmd); err != nil {
			return nil, fmt.Errorf("failed to seed rating for solution %d: %w", cmd.SolutionID, err)
		}
	}

	s.logger.Infow("demo data seeded",
		"clients", len(summary.ClientIDs),
		"technicians", len(summary.TechnicianIDs),
		"problems", len(summary.ProblemIDs),
		"solutions", len(summary.SolutionIDs))

	return summary, nil
}
