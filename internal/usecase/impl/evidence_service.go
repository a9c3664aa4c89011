package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path"

	domainerrors "mirathi/internal/domain/errors"
	"mirathi/internal/domain/service"
	"mirathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// evidenceService implements the EvidenceUsecase interface.
type evidenceService struct {
	storage service.EvidenceStorage
	logger  *slog.Logger
}

// NewEvidenceService is the constructor for evidenceService.
func NewEvidenceService(
	storage service.EvidenceStorage,
	logger *slog.Logger,
) usecase.EvidenceUsecase {
	return &evidenceService{
		storage: storage,
		logger:  logger,
	}
}

// UploadEvidence stores one supporting document and returns the opaque
// reference that family records store in their evidence fields. Keys
// are namespaced per family so a family's documents can be enumerated
// and retained together.
func (srv *evidenceService) UploadEvidence(ctx context.Context, input *usecase.UploadEvidenceInput) (*usecase.EvidenceOutput, error) {
	if len(input.Data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "evidence document is empty")
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(input.Data)
	}

	key := fmt.Sprintf("families/%s/%s-%s", input.FamilyID, uuid.New(), path.Base(input.FileName))

	srv.logger.Info("Uploading evidence document",
		"familyID", input.FamilyID, "key", key, "bytes", len(input.Data))

	if err := srv.storage.Save(ctx, key, contentType, input.Data); err != nil {
		return nil, errors.Wrap(err, "failed to store evidence document")
	}

	return &usecase.EvidenceOutput{Key: key}, nil
}

// DownloadEvidence reads a stored document back by reference.
func (srv *evidenceService) DownloadEvidence(ctx context.Context, key string) ([]byte, string, error) {
	exists, err := srv.storage.Exists(ctx, key)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to check evidence document")
	}
	if !exists {
		return nil, "", errors.Wrap(domainerrors.ErrEvidenceNotFound, key)
	}

	data, err := srv.storage.Load(ctx, key)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to load evidence document")
	}

	return data, http.DetectContentType(data), nil
}
