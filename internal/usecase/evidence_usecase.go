package usecase

import (
	"context"

	"github.com/google/uuid"
)

// UploadEvidenceInput carries one supporting document for a family.
type UploadEvidenceInput struct {
	FamilyID    uuid.UUID
	FileName    string
	ContentType string
	Data        []byte
}

// EvidenceOutput returns the opaque storage reference for an uploaded
// document. The reference is what records like houses and
// cohabitations store in their evidence fields.
type EvidenceOutput struct {
	Key string `json:"key"`
}

// EvidenceUsecase stores and retrieves the supporting documents
// referenced by family records.
type EvidenceUsecase interface {
	UploadEvidence(ctx context.Context, input *UploadEvidenceInput) (*EvidenceOutput, error)
	DownloadEvidence(ctx context.Context, key string) ([]byte, string, error)
}
