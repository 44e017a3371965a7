package service

import (
	"context"
	"io"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// mockTx implements pgx.Tx for testing
type mockTx struct {
	pgx.Tx
	mu         sync.Mutex
	committed  bool
	rolledBack bool
}

func (m *mockTx) Rollback(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.committed {
		m.rolledBack = true
	}
	return nil
}

func (m *mockTx) Commit(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.committed = true
	return nil
}
