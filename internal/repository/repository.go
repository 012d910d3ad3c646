// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"

	"traincards/internal/model"
)

// RecordRepository reads train_data rows. No business logic here, strictly persistence.
type RecordRepository interface {
	// ListAll returns every row of train_data in the order the store produced them.
	// An empty table yields an empty, non-nil slice.
	ListAll(ctx context.Context) ([]model.Record, error)
}
