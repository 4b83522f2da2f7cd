package services

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
)

// MemberReaderSvc defines read operations for member data
type MemberReaderSvc interface {
	// GetMemberByID retrieves a specific member by its ID.
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// ListMembers retrieves a paginated, filtered member listing.
	ListMembers(ctx context.Context, params dto.ListMembersParams) ([]domain.Member, int64, error)
}

// MemberWriterSvc defines write operations for member data
type MemberWriterSvc interface {
	// CreateMember registers a new participant.
	CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorUserID string) (*domain.Member, error)

	// UpdateMember edits a participant's details.
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, requestingUserID string) (*domain.Member, error)

	// DeleteMember removes a participant. Fails with ErrConflict while the
	// member is referenced by payments or winners.
	DeleteMember(ctx context.Context, memberID string) error
}

// MemberSvcFacade combines all member service interfaces
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
}
