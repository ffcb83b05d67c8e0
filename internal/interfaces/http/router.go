package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jetdesk/internal/application/registry/usecases"
	"jetdesk/internal/infrastructure/config"
	"jetdesk/internal/infrastructure/database"
	"jetdesk/internal/infrastructure/persistence/seeds"
	"jetdesk/internal/infrastructure/repository"
	clienthandlers "jetdesk/internal/interfaces/http/handlers/client"
	problemhandlers "jetdesk/internal/interfaces/http/handlers/problem"
	systemhandlers "jetdesk/internal/interfaces/http/handlers/system"
	technicianhandlers "jetdesk/internal/interfaces/http/handlers/technician"
	"jetdesk/internal/interfaces/http/middleware"
	"jetdesk/internal/interfaces/http/routes"
	"jetdesk/internal/shared/db"
	"jetdesk/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	clientRepo := repository.NewClientRepository(gormDB)
	technicianRepo := repository.NewTechnicianRepository(gormDB)
	problemRepo := repository.NewProblemRepository(gormDB)
	solutionRepo := repository.NewSolutionRepository(gormDB)
	systemRepo := repository.NewSystemRepository(gormDB)

	txMgr := db.NewTransactionManager(gormDB)

	addClientUC := usecases.NewAddClientUseCase(clientRepo, log)
	listClientsUC := usecases.NewListClientsUseCase(clientRepo, log)
	addTechnicianUC := usecases.NewAddTechnicianUseCase(technicianRepo, log)
	listTechniciansUC := usecases.NewListTechniciansUseCase(technicianRepo, log)
	addProblemUC := usecases.NewAddProblemUseCase(problemRepo, clientRepo, technicianRepo, txMgr, log)
	updateStatusUC := usecases.NewUpdateProblemStatusUseCase(problemRepo, log)
	updateProblemUC := usecases.NewUpdateProblemUseCase(problemRepo, technicianRepo, txMgr, log)
	listProblemsUC := usecases.NewListProblemsUseCase(problemRepo, log)
	addSolutionUC := usecases.NewAddSolutionUseCase(solutionRepo, problemRepo, txMgr, log)
	listSolutionsUC := usecases.NewListSolutionsForProblemUseCase(solutionRepo, problemRepo, log)
	rateSolutionUC := usecases.NewRateSolutionUseCase(solutionRepo, txMgr, log)
	statisticsUC := usecases.NewGetSystemStatisticsUseCase(problemRepo, clientRepo, technicianRepo, solutionRepo, log)
	databaseInfoUC := usecases.NewGetDatabaseInfoUseCase(systemRepo, storeInfo, log)

	seeder := seeds.NewSeeder(addClientUC, addTechnicianUC, addProblemUC, addSolutionUC, rateSolutionUC, log)

	problemHandler := problemhandlers.NewProblemHandler(
		addProblemUC,
		updateStatusUC,
		updateProblemUC,
		listProblemsUC,
		addSolutionUC,
		listSolutionsUC,
		rateSolutionUC,
		listClientsUC,
		listTechniciansUC,
	)
	clientHandler := clienthandlers.NewClientHandler(addClientUC, listClientsUC)
	technicianHandler := technicianhandlers.NewTechnicianHandler(addTechnicianUC, listTechniciansUC)
	systemHandler := systemhandlers.NewSystemHandler(statisticsUC, databaseInfoUC, seeder)

	api := engine.Group("/api")
	routes.SetupProblemRoutes(api, &routes.ProblemRouteConfig{ProblemHandler: problemHandler})
	routes.SetupClientRoutes(api, &routes.ClientRouteConfig{ClientHandler: clientHandler})
	routes.SetupTechnicianRoutes(api, &routes.TechnicianRouteConfig{TechnicianHandler: technicianHandler})
	routes.SetupSystemRoutes(engine, api, &routes.SystemRouteConfig{SystemHandler: systemHandler})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for serving and tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// storeInfo adapts the database package's connection metadata to the
// use case layer.
func storeInfo() usecases.StoreInfo {
	info := database.GetInfo()
	return usecases.StoreInfo{
		Driver:    info.Driver,
		Path:      info.Path,
		SizeBytes: info.Size,
	}
}
