package pgsql

import (
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PayableRepo:        newPgxPayableRepository(dbPool),
		ReconciliationRepo: newPgxReconciliationRepository(dbPool),
		UserRepo:           newPgxUserRepository(dbPool),
		CongregationRepo:   newPgxCongregationRepository(dbPool),
		MemberRepo:         newPgxMemberRepository(dbPool),
		EventRepo:          newPgxEventRepository(dbPool),
		NotificationRepo:   newPgxNotificationRepository(dbPool),
		CategoryRepo:       newPgxCategoryRepository(dbPool),
	}
}
