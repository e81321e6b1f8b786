package usecase

import (
	"context"
	"fmt"

	"github.com/sevencode7/tasks/internal/domain"
)

// InitStoreInput contains the parameters for initializing the store.
type InitStoreInput struct{}

// InitStoreOutput contains the result of initializing the store.
type InitStoreOutput struct {
	Created bool // False when the store already existed
}

// InitStore is the use case for creating an empty store.
type InitStore struct {
	store  domain.StoreInitializer
	logger domain.Logger
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(store domain.StoreInitializer, logger domain.Logger) *InitStore {
	return &InitStore{store: store, logger: logger}
}

// Execute initializes the store. It is safe to run more than once.
func (uc *InitStore) Execute(_ context.Context, _ InitStoreInput) (*InitStoreOutput, error) {
	created, err := uc.store.Initialize()
	if err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}
	if created && uc.logger != nil {
		uc.logger.Info("store", "initialized")
	}
	return &InitStoreOutput{Created: created}, nil
}
