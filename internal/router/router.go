package router

import (
	"time"

	"github.com/bhavika1504/my-finance-planner/internal/config"
	"github.com/bhavika1504/my-finance-planner/internal/handler"
	"github.com/bhavika1504/my-finance-planner/internal/importer"
	"github.com/bhavika1504/my-finance-planner/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB, log zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(log),
		middleware.CORSMiddleware(),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// auth endpoints (no token required)
	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// everything below requires a valid Bearer token
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, db))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/me", handler.GetMe)
	protected.POST("/profile", handler.UpdateProfile(db))
	protected.POST("/profile/password", handler.ChangePassword(db))

	txHandler := handler.NewTransactionHandler(db, cfg.App.PageSize)
	protected.POST("/transactions", txHandler.CreateTransaction)
	protected.GET("/transactions", txHandler.ListTransactions)
	protected.GET("/stats/monthly", txHandler.GetMonthlyStats)

	imp := importer.New(importer.NewGormStore(db), log, importer.Options{
		MaxRows:      cfg.Import.MaxRows,
		StoreTimeout: time.Duration(cfg.Import.StoreTimeoutSeconds) * time.Second,
	})
	uploadHandler := handler.NewUploadHandler(imp)
	protected.POST("/transactions/upload", uploadHandler.UploadStatement)
	protected.POST("/transactions/import", uploadHandler.ImportRows)

	goalHandler := handler.NewGoalHandler(db)
	protected.POST("/goals", goalHandler.CreateGoal)
	protected.GET("/goals", goalHandler.ListGoals)
	protected.PUT("/goals/:id", goalHandler.UpdateGoal)
	protected.DELETE("/goals/:id", goalHandler.DeleteGoal)
	protected.POST("/goals/:id/contribute", goalHandler.Contribute)

	insightHandler := handler.NewInsightHandler(db)
	protected.GET("/insight/projection", insightHandler.GetProjection)
	protected.GET("/insight/persona", insightHandler.GetPersona)
	protected.GET("/insight/alerts", insightHandler.GetAlerts)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
