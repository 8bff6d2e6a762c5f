package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saicharanbm/finTrack/internal/models"
)

// PostgresStore implements Store on a pgx connection pool. Amounts are
// stored as BIGINT paise and dates as DATE, matching the wire contract's
// day precision.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database and ensures the schema exists.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			amount_paise BIGINT NOT NULL CHECK (amount_paise > 0),
			category TEXT NOT NULL,
			direction TEXT NOT NULL,
			transaction_date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_transactions_user_date
			ON transactions (user_id, transaction_date DESC);
	`)
	if err != nil {
		return fmt.Errorf("creating transactions table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, record *models.TransactionRecord) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO transactions (id, user_id, title, amount_paise, category, direction, transaction_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		record.ID, record.UserID, record.Title, record.AmountPaise,
		record.Category, record.Direction, record.Date,
	).Scan(&record.CreatedAt)
}

func (s *PostgresStore) CreateBatch(ctx context.Context, records []models.TransactionRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := range records {
		err := tx.QueryRow(ctx,
			`INSERT INTO transactions (id, user_id, title, amount_paise, category, direction, transaction_date)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING created_at`,
			records[i].ID, records[i].UserID, records[i].Title, records[i].AmountPaise,
			records[i].Category, records[i].Direction, records[i].Date,
		).Scan(&records[i].CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *PostgresStore) GetByID(ctx context.Context, id uuid.UUID, userID string) (*models.TransactionRecord, error) {
	record := &models.TransactionRecord{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, title, amount_paise, category, direction, transaction_date, created_at
		 FROM transactions WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&record.ID, &record.UserID, &record.Title, &record.AmountPaise,
		&record.Category, &record.Direction, &record.Date, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *PostgresStore) List(ctx context.Context, userID string, limit, offset int) ([]models.TransactionRecord, error) {
	// limit <= 0 means unbounded
	if limit <= 0 {
		limit = math.MaxInt32
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, title, amount_paise, category, direction, transaction_date, created_at
		 FROM transactions WHERE user_id = $1
		 ORDER BY transaction_date DESC, created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *PostgresStore) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.TransactionRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, title, amount_paise, category, direction, transaction_date, created_at
		 FROM transactions WHERE user_id = $1 AND transaction_date BETWEEN $2 AND $3
		 ORDER BY transaction_date DESC, created_at DESC`,
		userID, start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *PostgresStore) Update(ctx context.Context, record *models.TransactionRecord) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE transactions
		 SET title = $1, amount_paise = $2, category = $3, direction = $4, transaction_date = $5
		 WHERE id = $6 AND user_id = $7`,
		record.Title, record.AmountPaise, record.Category, record.Direction, record.Date,
		record.ID, record.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRecords(rows pgx.Rows) ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord
	for rows.Next() {
		var record models.TransactionRecord
		if err := rows.Scan(&record.ID, &record.UserID, &record.Title, &record.AmountPaise,
			&record.Category, &record.Direction, &record.Date, &record.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
