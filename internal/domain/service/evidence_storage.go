package service

import "context"

// EvidenceStorage defines the interface for storing supporting
// documents (consent forms, witness statements, certificates) referred
// to by family records. Keys are opaque references stored on the
// owning record.
type EvidenceStorage interface {
	// Save writes a document under the given key, replacing any
	// existing content.
	Save(ctx context.Context, key string, contentType string, data []byte) error

	// Load reads a document back by key.
	Load(ctx context.Context, key string) ([]byte, error)

	// Exists reports whether a document is stored under the key.
	Exists(ctx context.Context, key string) (bool, error)

	// Close releases any resources held by the storage client.
	Close() error
}
