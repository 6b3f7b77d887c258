// internal/handlers/upload.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront-backend/internal/i18n"
	"github.com/javajoker/storefront-backend/internal/services"
	"github.com/javajoker/storefront-backend/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
	}
}

// POST /upload
func (h *UploadHandler) UploadDesign(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	header, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileMissing), nil)
			return
		}
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileMissing), err.Error())
		return
	}

	result, err := h.storageService.UploadFile(header, h.storageService.DesignUploadOptions())
	if err != nil {
		if services.IsValidation(err) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}

		logrus.WithError(err).WithField("request_id", utils.GetRequestIDFromContext(c)).Error("Failed to store upload")
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyFileUploadSuccess),
		"filename": result.Filename,
		"filepath": result.Filepath,
	})
}
