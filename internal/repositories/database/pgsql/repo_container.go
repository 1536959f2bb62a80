package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/videotube/videotube_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		SubscriptionRepo: newPgxSubscriptionRepository(dbPool),
		VideoRepo:        newPgxVideoRepository(dbPool),
	}
}
