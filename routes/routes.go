package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/lunchtab-backend/handlers"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	// Initialize handlers
	handlers.InitHandlers()

	v1 := router.Group("/api/v1")
	{
		// Company endpoints
		v1.POST("/companies/create", handlers.CreateCompany)
		v1.GET("/companies/:id", handlers.GetCompany)
		v1.PUT("/companies/:id", handlers.UpdateCompany)
		v1.POST("/companies/topup", handlers.AddTopup)
		v1.POST("/companies/export", handlers.ExportCompanyReport)

		// Member endpoints
		v1.POST("/members/create", handlers.CreateMember)
		v1.GET("/companies/:id/members", handlers.ListMembers)
		v1.PUT("/members/:id", handlers.UpdateMember)
		v1.POST("/members/:id/deactivate", handlers.DeactivateMember)
		v1.POST("/members/cashDeposit", handlers.AddCashDeposit)

		// Food summary endpoints
		v1.POST("/foodSummaries/create", handlers.CreateFoodSummary)
		v1.GET("/companies/:id/foodSummaries", handlers.ListFoodSummaries)
		v1.POST("/foodSummaries/remove", handlers.RemoveFoodSummary)
	}
}
