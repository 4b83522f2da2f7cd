package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
	"github.com/ronaldocristover/arisan-backend/internal/middleware"
)

// maxUploadSize caps attachment uploads at 5 MiB.
const maxUploadSize = 5 << 20

// uploadHandler handles attachment uploads to object storage.
type uploadHandler struct {
	storage portssvc.ObjectStorageSvc
}

// newUploadHandler creates a new uploadHandler.
func newUploadHandler(storage portssvc.ObjectStorageSvc) *uploadHandler {
	return &uploadHandler{
		storage: storage,
	}
}

// registerUploadRoutes registers the upload route.
func registerUploadRoutes(rg *gin.RouterGroup, storage portssvc.ObjectStorageSvc) {
	h := newUploadHandler(storage)

	// Uploads are rate limited per IP: 30 per minute
	rate, _ := limiter.NewRateFromFormatted("30-M")
	uploadLimiter := limiter.New(memory.NewStore(), rate)

	rg.POST("/upload", middleware.RateLimit(uploadLimiter), h.upload)
}

// upload godoc
// @Summary Upload a payment attachment
// @Description Stores a proof-of-payment image under a date-partitioned key and returns its public URL
// @Tags uploads
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Attachment file (max 5 MiB)"
// @Param   folder formData string false "Storage folder" default(payments)
// @Param   memberId formData string false "Member the attachment belongs to"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} ErrorResponse "Missing or oversized file"
// @Failure 500 {object} ErrorResponse "Failed to store file"
// @Security BearerAuth
// @Router /upload [post]
func (h *uploadHandler) upload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing file field"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "File exceeds the 5 MiB limit"})
		return
	}

	folder := c.DefaultPostForm("folder", "payments")
	memberID := c.PostForm("memberId")

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read file"})
		return
	}
	defer file.Close()

	stored, err := h.storage.Upload(c.Request.Context(), portssvc.UploadInput{
		Reader:      file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Folder:      folder,
		MemberID:    memberID,
		Filename:    fileHeader.Filename,
	})
	if err != nil {
		logger.Error("Failed to store uploaded file", slog.String("filename", fileHeader.Filename), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store file"})
		return
	}

	logger.Info("File uploaded successfully", slog.String("key", stored.Key))
	c.JSON(http.StatusCreated, dto.UploadResponse{
		URL:     stored.URL,
		Key:     stored.Key,
		Message: "File uploaded successfully",
	})
}
