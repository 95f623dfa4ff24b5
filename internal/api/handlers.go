package api

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/youruser/qrgrid/internal/config"
	"github.com/youruser/qrgrid/internal/doc"
	imagepkg "github.com/youruser/qrgrid/internal/image"
	"github.com/youruser/qrgrid/internal/layout"
	"github.com/youruser/qrgrid/internal/pipeline"
)

type server struct {
	logger *log.Logger
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// qrHandler returns a styled QR PNG (no logo) for the "text" query param.
func (s *server) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text query param is required"})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}

	style := imagepkg.DefaultStyle()
	if shape, err := imagepkg.ParseShape(c.Query("shape")); err == nil {
		style.Shape = shape
	}
	if mode, err := imagepkg.ParseColorMode(c.Query("color")); err == nil {
		style.Color = mode
	}

	m, err := imagepkg.EncodeMatrix(text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	img := imagepkg.ResizeToCell(style.Render(m), size, size)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// gridHandler runs the full batch for a posted configuration and returns
// the finished HTML document.
func (s *server) gridHandler(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg, err := config.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := pipeline.Run(c.Request.Context(), s.logger, pipeline.Options{Config: cfg})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, layout.ErrCellTooLarge) || errors.Is(err, imagepkg.ErrPayloadTooLarge) {
			status = http.StatusBadRequest
		}
		if errors.Is(err, imagepkg.ErrInvalidLogo) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := doc.Emit(&buf, res.Document); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.logger.Info("grid generated", "items", res.Items, "pages", res.Pages)
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
