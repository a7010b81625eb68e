package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/NgurahFajar/damar-exchange-backend/internal/apperrors"
	portssvc "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/services"
	"github.com/NgurahFajar/damar-exchange-backend/internal/dto"
	"github.com/NgurahFajar/damar-exchange-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// imageHandler handles HTTP requests for the image gallery.
type imageHandler struct {
	imageService portssvc.ImageSvcFacade
}

func newImageHandler(is portssvc.ImageSvcFacade) *imageHandler {
	return &imageHandler{imageService: is}
}

// registerImageRoutes registers routes related to stored images.
func registerImageRoutes(rg *gin.RouterGroup, imageService portssvc.ImageSvcFacade) {
	h := newImageHandler(imageService)

	images := rg.Group("/images")
	{
		images.POST("", h.uploadImage)
		images.GET("", h.listImages)
		images.DELETE("/:id", h.deleteImage)
	}
}

// uploadImage godoc
// @Summary Upload an image
// @Description Stores an image file (multipart field "file") and returns its metadata
// @Tags images
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Image file (JPEG, PNG, WebP or SVG, max 2 MiB)"
// @Success 201 {object} dto.ImageResponse
// @Failure 400 {object} ErrorResponse "Invalid or missing file"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 500 {object} ErrorResponse "Failed to store image"
// @Security BearerAuth
// @Router /images [post]
func (h *imageHandler) uploadImage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing file field"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	logger = logger.With(slog.String("creator_user_id", creatorUserID), slog.String("file_name", fileHeader.Filename))
	logger.Info("Received image upload", slog.Int64("size_bytes", fileHeader.Size), slog.String("content_type", contentType))

	image, err := h.imageService.UploadImage(c.Request.Context(), fileHeader.Filename, contentType, fileHeader.Size, file, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPayloadTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to store image", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store image"})
		}
		return
	}

	logger.Info("Image stored", slog.String("image_id", image.ImageID))
	c.JSON(http.StatusCreated, dto.ToImageResponse(image))
}

// listImages godoc
// @Summary List images
// @Description Retrieves metadata for all stored images, newest first
// @Tags images
// @Produce json
// @Success 200 {array} dto.ImageResponse
// @Failure 500 {object} ErrorResponse "Failed to list images"
// @Security BearerAuth
// @Router /images [get]
func (h *imageHandler) listImages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	images, err := h.imageService.ListImages(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list images", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list images"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListImageResponse(images))
}

// deleteImage godoc
// @Summary Delete an image
// @Description Removes an image and its stored file
// @Tags images
// @Produce json
// @Param   id path string true "Image ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Image not found"
// @Failure 500 {object} ErrorResponse "Failed to delete image"
// @Security BearerAuth
// @Router /images/{id} [delete]
func (h *imageHandler) deleteImage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	imageID := c.Param("id")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Deleter user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("image_id", imageID), slog.String("deleter_user_id", deleterUserID))

	if err := h.imageService.DeleteImage(c.Request.Context(), imageID, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Image not found for delete")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Image not found"})
		} else {
			logger.Error("Failed to delete image", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete image"})
		}
		return
	}

	logger.Info("Image deleted")
	c.Status(http.StatusNoContent)
}
