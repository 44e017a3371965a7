package postgres

import (
	"context"
	"fmt"

	"commerce-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PickupRepo implements ports.PickupRepository.
type PickupRepo struct {
	pool Pool
}

func NewPickupRepo(pool Pool) *PickupRepo {
	return &PickupRepo{pool: pool}
}

// Create writes through tx when given, otherwise through the pool.
func (r *PickupRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.PickupRequest) error {
	var db execer = r.pool
	if tx != nil {
		db = tx
	}

	_, err := db.Exec(ctx,
		`INSERT INTO pickup_requests (id, provider, location, pickup_date, pickup_time, expected_package_count,
			external_pickup_id, status, error_message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Provider, p.Location, p.PickupDate, p.PickupTime, p.ExpectedPackageCount,
		p.ExternalPickupID, p.Status, p.ErrorMessage, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pickup request: %w", err)
	}
	return nil
}
