package postgres

import (
	"context"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"

	"gorm.io/gorm"
)

// counterRepository implements the repository.CounterRepository interface.
type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository is the constructor for counterRepository.
func NewCounterRepository(db *gorm.DB) repository.CounterRepository {
	return &counterRepository{
		db: db,
	}
}

// Next advances the named counter by one and returns the new value. The
// upsert-and-return is a single statement: concurrent callers serialize on
// the row and each observes a distinct value.
func (repo *counterRepository) Next(ctx context.Context, name string) (int64, error) {
	var seq int64

	err := repo.db.WithContext(ctx).Raw(
		`INSERT INTO counters (name, seq) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
		 RETURNING seq`,
		name,
	).Scan(&seq).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to advance counter")
	}

	return seq, nil
}
