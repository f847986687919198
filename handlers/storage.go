package handlers

import (
	"errors"
	"net/http"

	"seminarly/services/storage"
	"seminarly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler uploads proof-of-payment files ahead of a booking.
type StorageHandler struct {
	Images storage.ImageStore
}

func NewStorageHandler(images storage.ImageStore) *StorageHandler {
	return &StorageHandler{Images: images}
}

// UploadProofHandler stores the multipart "proof" file and returns its hosted URL.
func (h *StorageHandler) UploadProofHandler(c *gin.Context) {
	logger := getLogger(c)

	proof, closer, err := readProof(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	if proof == nil {
		badRequest(c, http.ErrMissingFile)
		return
	}
	defer closer.Close()

	if !storage.AllowedMimeType(proof.MimeType) {
		respondError(c, storage.ErrUnsupportedType)
		return
	}

	url, err := h.Images.Upload(c.Request.Context(), proof.Body, proof.MimeType)
	if err != nil {
		logger.Error("proof upload failed", zap.Error(err))
		if errors.Is(err, storage.ErrNotConfigured) || errors.Is(err, storage.ErrUnsupportedType) {
			respondError(c, err)
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "Failed to store file", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
