package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"barberly/services/imagesearch"
	"barberly/services/storage"
	"barberly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ImageSearchHandler serves reference-image uploads and similarity search.
type ImageSearchHandler struct {
	SearchSvc  imagesearch.ImageSearchService
	StorageSvc storage.StorageService
}

// NewImageSearchHandler creates a new ImageSearchHandler instance.
func NewImageSearchHandler(searchSvc imagesearch.ImageSearchService, storageSvc storage.StorageService) *ImageSearchHandler {
	return &ImageSearchHandler{SearchSvc: searchSvc, StorageSvc: storageSvc}
}

// ImageSearchHandler accepts a single image as multipart form data and
// answers with the barbers whose example work most resembles it. The
// uploaded copy is also hosted for later inspection; a hosting failure is
// logged but does not fail the search.
func (h *ImageSearchHandler) ImageSearchHandler(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to open uploaded file", err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read uploaded file", err.Error())
		return
	}

	// Host a copy for later inspection before searching; a hosting
	// failure is logged but never fails the search.
	var hostedID string
	if h.StorageSvc != nil {
		tempPath := filepath.Join(os.TempDir(), fileHeader.Filename)
		if err := c.SaveUploadedFile(fileHeader, tempPath); err == nil {
			defer os.Remove(tempPath)
			id, err := h.StorageSvc.UploadFile(c, tempPath, "uploads")
			if err != nil {
				logger.Warn("Failed to host uploaded image", zap.Error(err))
			} else {
				hostedID = id
			}
		}
	}

	matches, err := h.SearchSvc.Search(c, imageSubtype(fileHeader.Filename), data)
	if err != nil {
		if hostedID != "" {
			// Discard the hosted copy of a failed search.
			if derr := h.StorageSvc.DeleteFile(c, hostedID); derr != nil {
				logger.Warn("Failed to discard hosted image", zap.String("publicID", hostedID), zap.Error(derr))
			}
		}
		logger.Error("Image search failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Image search failed", err.Error())
		return
	}

	if hostedID != "" {
		if url, err := h.StorageSvc.GetDownloadURL(c, hostedID, 0); err == nil {
			logger.Info("Uploaded image hosted", zap.String("publicID", hostedID), zap.String("url", url))
		}
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// imageSubtype derives the mime subtype from the filename extension,
// defaulting to jpeg.
func imageSubtype(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	switch ext {
	case "jpg", "":
		return "jpeg"
	default:
		return ext
	}
}
