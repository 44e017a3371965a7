package postgres

import (
	"context"
	"fmt"

	"commerce-reconciler/internal/core/domain"
)

// InboundEventRepo implements ports.InboundEventRepository.
type InboundEventRepo struct {
	pool Pool
}

func NewInboundEventRepo(pool Pool) *InboundEventRepo {
	return &InboundEventRepo{pool: pool}
}

func (r *InboundEventRepo) Create(ctx context.Context, e *domain.InboundEvent) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO inbound_events (id, provider, kind, reference, payload, outcome, error, received_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Provider, e.Kind, e.Reference, e.Payload, e.Outcome, e.Error, e.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inbound event: %w", err)
	}
	return nil
}
