package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the page, generation and delivery endpoints.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	router.SetHTMLTemplate(pageTemplate)
	router.MaxMultipartMemory = h.maxUploadBytes

	router.GET("/", h.Index)
	router.POST("/generate", h.GenerateSite)

	// --- Delivery ---
	router.GET("/download", h.DownloadSite)
	router.GET("/files/:name", h.PreviewFile)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
