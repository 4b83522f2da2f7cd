package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portsrepo "github.com/ronaldocristover/arisan-backend/internal/core/ports/repositories"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
	"github.com/ronaldocristover/arisan-backend/internal/middleware"
)

// memberService provides participant management operations.
type memberService struct {
	memberRepo portsrepo.MemberRepositoryFacade
}

// NewMemberService creates a new member service.
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade) portssvc.MemberSvcFacade {
	return &memberService{memberRepo: memberRepo}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorUserID string) (*domain.Member, error) {
	now := time.Now().UTC()

	status := domain.MemberActive
	if req.Status != nil {
		status = domain.MemberStatus(*req.Status)
	}

	member := domain.Member{
		MemberID:       uuid.NewString(),
		FullName:       req.FullName,
		Nickname:       req.Nickname,
		AltName:        req.AltName,
		WhatsappNumber: req.WhatsappNumber,
		Group:          req.Group,
		Remarks:        req.Remarks,
		JoinedDate:     req.JoinedDate,
		Status:         status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Member created", slog.String("member_id", member.MemberID))
	return &member, nil
}

func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s: %w", memberID, err)
	}
	return member, nil
}

func (s *memberService) ListMembers(ctx context.Context, params dto.ListMembersParams) ([]domain.Member, int64, error) {
	filter := portsrepo.MemberFilter{
		PageFilter: portsrepo.PageFilter{Page: params.Page, Limit: params.Limit},
		Status:     domain.MemberStatus(params.Status),
		Group:      params.Group,
		Search:     params.Search,
	}

	members, total, err := s.memberRepo.ListMembers(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}
	if members == nil {
		members = []domain.Member{}
	}
	return members, total, nil
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, requestingUserID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to find member %s for update: %w", memberID, err)
	}

	if req.FullName != nil {
		member.FullName = *req.FullName
	}
	if req.Nickname != nil {
		member.Nickname = *req.Nickname
	}
	if req.AltName != nil {
		member.AltName = req.AltName
	}
	if req.WhatsappNumber != nil {
		member.WhatsappNumber = req.WhatsappNumber
	}
	if req.Group != nil {
		member.Group = req.Group
	}
	if req.Remarks != nil {
		member.Remarks = req.Remarks
	}
	if req.JoinedDate != nil {
		member.JoinedDate = req.JoinedDate
	}
	if req.Status != nil {
		member.Status = domain.MemberStatus(*req.Status)
	}

	member.LastUpdatedAt = time.Now().UTC()
	member.LastUpdatedBy = requestingUserID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		return nil, fmt.Errorf("failed to update member %s: %w", memberID, err)
	}

	return member, nil
}

func (s *memberService) DeleteMember(ctx context.Context, memberID string) error {
	if _, err := s.memberRepo.FindMemberByID(ctx, memberID); err != nil {
		return fmt.Errorf("failed to find member %s for deletion: %w", memberID, err)
	}

	if err := s.memberRepo.DeleteMember(ctx, memberID); err != nil {
		return fmt.Errorf("failed to delete member %s: %w", memberID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Member deleted", slog.String("member_id", memberID))
	return nil
}
