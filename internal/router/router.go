package router

import (
	"net/http"

	"github.com/Orionsman/cari-takip/internal/config"
	"github.com/Orionsman/cari-takip/internal/handler"
	"github.com/Orionsman/cari-takip/internal/ledger"
	"github.com/Orionsman/cari-takip/internal/middleware"
	"github.com/Orionsman/cari-takip/internal/snapshot"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup configures the Gin engine and wires every handler.
func Setup(cfg *config.Config, db *gorm.DB, store snapshot.BlobStore) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	svc := ledger.NewService(db)
	engine := snapshot.NewEngine(db, store)

	api := r.Group("/api")

	// login is the only public endpoint
	authHandler := handler.NewAuthHandler(cfg.Auth)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.Auth(cfg.Auth.JWTSecret),
		middleware.Audit(db),
	)

	accountHandler := handler.NewAccountHandler(svc)
	protected.GET("/accounts", accountHandler.List)
	protected.POST("/accounts", accountHandler.Create)
	protected.PUT("/accounts/:id", accountHandler.Update)
	protected.DELETE("/accounts/:id", accountHandler.Delete)
	protected.GET("/accounts/:id/summary", accountHandler.Summary)

	productHandler := handler.NewProductHandler(svc)
	protected.GET("/products", productHandler.List)
	protected.POST("/products", productHandler.Create)
	protected.PUT("/products/:id", productHandler.Update)
	protected.DELETE("/products/:id", productHandler.Delete)

	entryHandler := handler.NewEntryHandler(svc)
	protected.GET("/accounts/:id/ledger", entryHandler.ListByAccount)
	protected.POST("/ledger", entryHandler.Create)
	protected.DELETE("/ledger/:id", entryHandler.Delete)

	saleHandler := handler.NewSaleHandler(svc)
	protected.GET("/sales", saleHandler.List)
	protected.POST("/sales", saleHandler.Create)
	protected.DELETE("/sales/:id", saleHandler.Delete)

	paymentHandler := handler.NewPaymentHandler(svc)
	protected.GET("/payments", paymentHandler.List)
	protected.POST("/payments", paymentHandler.Create)
	protected.DELETE("/payments/:id", paymentHandler.Delete)

	snapshotHandler := handler.NewSnapshotHandler(engine)
	protected.POST("/snapshots", snapshotHandler.Create)
	protected.GET("/snapshots", snapshotHandler.List)
	protected.POST("/snapshots/:name/restore", snapshotHandler.Restore)

	exportHandler := handler.NewExportHandler(svc)
	protected.GET("/accounts/:id/statement.csv", exportHandler.StatementCSV)
	protected.GET("/accounts/:id/statement.xlsx", exportHandler.StatementXLSX)

	logHandler := handler.NewLogHandler(db, cfg.App.PageSize)
	protected.GET("/logs", logHandler.List)

	return r
}
