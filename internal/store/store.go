// Package store persists transaction records. The parsing core never
// touches this package; it produces candidates and the caller decides
// whether to hand them here.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/saicharanbm/finTrack/internal/models"
)

// ErrNotFound is returned when a record does not exist or belongs to a
// different user.
var ErrNotFound = errors.New("transaction not found")

// Store is the persistence surface for transaction records.
type Store interface {
	// Create persists one record.
	Create(ctx context.Context, record *models.TransactionRecord) error

	// CreateBatch persists every record of one successful parse. All rows
	// are written in a single transaction; a parse success is all-or-nothing
	// in storage too.
	CreateBatch(ctx context.Context, records []models.TransactionRecord) error

	// GetByID fetches one record scoped to a user.
	GetByID(ctx context.Context, id uuid.UUID, userID string) (*models.TransactionRecord, error)

	// List returns a user's records, newest first, with pagination.
	List(ctx context.Context, userID string, limit, offset int) ([]models.TransactionRecord, error)

	// ListByDateRange returns a user's records dated within [start, end].
	ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.TransactionRecord, error)

	// Update rewrites the mutable fields of a record.
	Update(ctx context.Context, record *models.TransactionRecord) error

	// Delete removes one record scoped to a user.
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}
