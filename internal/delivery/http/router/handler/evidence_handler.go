package handler

import (
	"io"
	"log/slog"
	"net/http"

	"mirathi/internal/delivery/http/response"
	"mirathi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxEvidenceSize caps uploaded documents at 10 MB.
const maxEvidenceSize = 10 << 20

// EvidenceHandler stores and serves supporting documents.
type EvidenceHandler struct {
	uc     usecase.EvidenceUsecase
	logger *slog.Logger
}

// NewEvidenceHandler is the constructor for EvidenceHandler, injected by Fx.
func NewEvidenceHandler(uc usecase.EvidenceUsecase, logger *slog.Logger) *EvidenceHandler {
	return &EvidenceHandler{
		uc:     uc,
		logger: logger,
	}
}

// Upload stores one multipart document for a family and returns the
// storage reference to put on the owning record.
func (h *EvidenceHandler) Upload(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A 'document' file field is required")
	}
	if fileHeader.Size > maxEvidenceSize {
		return response.BadRequest(c, "DOCUMENT_TOO_LARGE", "Document exceeds the size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxEvidenceSize))
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UploadEvidence(c.Request().Context(), &usecase.UploadEvidenceInput{
		FamilyID:    familyID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Evidence stored")
}

// Download serves a stored document by reference.
func (h *EvidenceHandler) Download(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return response.BadRequest(c, "INVALID_INPUT", "A 'key' query parameter is required")
	}

	data, contentType, err := h.uc.DownloadEvidence(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, contentType, data)
}
