package controllers

import (
	"errors"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"thorned-magnolia/models"
	"thorned-magnolia/utils"
)

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// @Summary Upload design file
// @Description Upload an image for a custom order; max 10 MB, images only
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Design image"
// @Success 200 {object} models.FileUploadResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/upload [post]
func (ctrl *UploadController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "No file provided"})
		return
	}

	relativePath, err := utils.SaveUpload(c, fileHeader, "custom-orders")
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidFileType):
			c.JSON(400, gin.H{"success": false, "message": "Only image files are allowed"})
		case errors.Is(err, utils.ErrFileTooLarge):
			c.JSON(400, gin.H{"success": false, "message": "File size too large. Max 10MB allowed"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to save file"})
		}
		return
	}

	c.JSON(200, models.FileUploadResponse{
		Filename: filepath.Base(relativePath),
		Filepath: relativePath,
		Success:  true,
	})
}
