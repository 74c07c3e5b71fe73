package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"elgrace_backend/internal/storage"
	"elgrace_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler streams stored files back to the browser. Only needed with
// local storage; S3 and R2 serve their own URLs.
type FileHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{BaseHandler: base, store: store}
}

func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/files/*path", h.Serve)
}

func (h *FileHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	reader, err := h.store.Get(c.Request.Context(), path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	defer reader.Close()

	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		c.Header("Content-Type", ct)
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
