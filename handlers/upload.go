package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"seminarly/models"
	"seminarly/utils"

	"github.com/gin-gonic/gin"
)

const proofField = "proof"

// readProof returns the optional proof-of-payment file of a multipart request.
// The returned closer must be called once the upload has been consumed.
func readProof(c *gin.Context) (*models.ProofUpload, io.Closer, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, nil, nil
	}

	header, err := c.FormFile(proofField)
	if err == http.ErrMissingFile {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if header.Size > utils.MaxProofUploadBytes {
		return nil, nil, fmt.Errorf("proof file exceeds %d bytes", utils.MaxProofUploadBytes)
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	mimeType, err := sniffMimeType(file, header)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	return &models.ProofUpload{Body: file, MimeType: mimeType, Filename: header.Filename}, file, nil
}

// sniffMimeType trusts the part header unless it is missing or generic.
func sniffMimeType(file multipart.File, header *multipart.FileHeader) (string, error) {
	declared := header.Header.Get("Content-Type")
	if declared != "" && declared != "application/octet-stream" {
		return declared, nil
	}

	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
