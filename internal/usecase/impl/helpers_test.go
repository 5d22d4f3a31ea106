package impl

import (
	"context"
	"io"
	"log/slog"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughTxManager runs the transactional closure directly against a
// fixed repository factory. Commit and rollback are not modeled; what matters
// in these tests is which repository calls the closure makes, and how many
// transactions an operation opens.
type passthroughTxManager struct {
	factory  repository.RepositoryFactory
	executes int
}

func (m *passthroughTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.executes++

	return fn(m.factory)
}

// fixtureRepoFactory hands out the test's mock repositories.
type fixtureRepoFactory struct {
	customerRepo repository.CustomerRepository
	sessionRepo  repository.SessionRepository
}

func (f *fixtureRepoFactory) CustomerRepo() repository.CustomerRepository {
	return f.customerRepo
}

func (f *fixtureRepoFactory) SessionRepo() repository.SessionRepository {
	return f.sessionRepo
}

// missSessionCache always misses. Tests that exercise the cache fast path
// swap in a mock instead.
type missSessionCache struct{}

func (missSessionCache) Get(_ context.Context, _ string) (*entity.Session, error) {
	return nil, service.ErrSessionNotCached
}

func (missSessionCache) Set(_ context.Context, _ *entity.Session) error {
	return nil
}

func (missSessionCache) Delete(_ context.Context, _ string) error {
	return nil
}
