package repositories

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
)

// MemberReader defines read operations for member data
type MemberReader interface {
	// FindMemberByID retrieves a specific member by its unique identifier.
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// FindMembersByIDs retrieves the given members keyed by ID. Missing IDs are
	// simply absent from the result map.
	FindMembersByIDs(ctx context.Context, memberIDs []string) (map[string]domain.Member, error)

	// ListMembers retrieves a filtered page of members plus the unpaged total.
	ListMembers(ctx context.Context, filter MemberFilter) ([]domain.Member, int64, error)

	// ListActiveMembers retrieves every member with status=active.
	ListActiveMembers(ctx context.Context) ([]domain.Member, error)

	// CountActiveMembers counts members with status=active.
	CountActiveMembers(ctx context.Context) (int64, error)
}

// MemberWriter defines write operations for member data
type MemberWriter interface {
	// SaveMember persists a new member.
	SaveMember(ctx context.Context, member domain.Member) error

	// UpdateMember persists changes to an existing member.
	UpdateMember(ctx context.Context, member domain.Member) error

	// DeleteMember removes a member. Referential integrity is enforced by the
	// database: deletion fails with ErrConflict while payments or winners
	// reference the member.
	DeleteMember(ctx context.Context, memberID string) error
}

// MemberRepositoryFacade combines all member repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
