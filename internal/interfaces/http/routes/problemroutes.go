package routes

import (
	"github.com/gin-gonic/gin"

	problemhandlers "jetdesk/internal/interfaces/http/handlers/problem"
)

type ProblemRouteConfig struct {
	ProblemHandler *problemhandlers.ProblemHandler
}

func SetupProblemRoutes(api *gin.RouterGroup, config *ProblemRouteConfig) {
	problems := api.Group("/problems")
	{
		problems.GET("", config.ProblemHandler.ListProblems)
		problems.POST("", config.ProblemHandler.AddProblem)

		// Specific action endpoints come before the bare parameterized route
		problems.PUT("/:id/status", config.ProblemHandler.UpdateProblemStatus)
		problems.GET("/:id/solutions", config.ProblemHandler.ListSolutions)
		problems.POST("/:id/solutions", config.ProblemHandler.AddSolution)

		problems.PUT("/:id", config.ProblemHandler.UpdateProblem)
	}

	api.POST("/solutions/:id/rate", config.ProblemHandler.RateSolution)
}
