package repositories

import (
	"context"
	"time"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

// MemberReader defines read operations for member data
type MemberReader interface {
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context, congregationID string, limit, offset int) ([]domain.Member, error)
}

// MemberWriter defines write operations for member data
type MemberWriter interface {
	SaveMember(ctx context.Context, member domain.Member) error
	UpdateMember(ctx context.Context, member domain.Member) error
	DeactivateMember(ctx context.Context, memberID string, userID string, now time.Time) error
}

// MemberRepositoryFacade combines all member repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
