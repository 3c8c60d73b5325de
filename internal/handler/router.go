package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/reportcard/internal/middleware"
)

// Routes collects what Register mounts. Auth and Tokens are nil when login
// is disabled, in which case write routes are open.
type Routes struct {
	APIPrefix string
	Record    *RecordHandler
	Auth      *AuthHandler
	Metrics   *MetricsHandler
	Tokens    middleware.TokenValidator
	Snapshots bool
}

// Register mounts the API on r.
func Register(r *gin.Engine, routes Routes) {
	if routes.Metrics != nil {
		r.GET("/health", routes.Metrics.Health)
		r.GET("/ready", routes.Metrics.Ready)
		r.GET("/metrics", routes.Metrics.Prometheus)
	}

	api := r.Group(routes.APIPrefix)

	protect := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if routes.Tokens == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{middleware.JWT(routes.Tokens), h}
	}
	if routes.Auth != nil {
		api.POST("/auth/login", routes.Auth.Login)
	}

	record := api.Group("/record")
	record.GET("", routes.Record.Get)
	record.GET("/export", routes.Record.Export)
	record.PUT("", protect(routes.Record.Replace)...)
	record.POST("/terms", protect(routes.Record.AddTerm)...)
	if routes.Snapshots {
		record.GET("/snapshots", routes.Record.Snapshots)
		record.POST("/snapshots/:id/restore", protect(routes.Record.RestoreSnapshot)...)
	}
}
