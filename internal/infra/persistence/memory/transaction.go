package memory

import (
	"context"
	"sync"

	"mirathi/internal/domain/repository"
)

// transactionManager implements repository.TransactionManager without
// real transactions: callbacks are serialized by a mutex, which gives
// single-writer semantics equivalent to what the version check
// guarantees against PostgreSQL. There is no rollback; a failed
// callback simply never reaches Update.
type transactionManager struct {
	mu    sync.Mutex
	store *Store
}

// repositoryFactory implements repository.RepositoryFactory over a Store.
type repositoryFactory struct {
	store *Store
}

// NewFamilyRepository returns a family repository over the shared store.
func (f *repositoryFactory) NewFamilyRepository() repository.FamilyRepository {
	return NewFamilyRepository(f.store)
}

// NewTransactionManager creates a transaction manager over the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs the callback with exclusive access to the store.
func (tm *transactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return fn(&repositoryFactory{store: tm.store})
}
