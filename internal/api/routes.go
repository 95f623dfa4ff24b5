package api

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP surface: health, single QR rendering, and
// full grid generation.
func NewRouter(logger *log.Logger) *gin.Engine {
	s := &server{logger: logger}
	r := gin.Default()
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/qr", s.qrHandler)
		api.POST("/grid", s.gridHandler)
	}
	return r
}
