package mapping

import (
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/models"
)

// ToModelMember converts a domain Member to a model Member
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:       d.MemberID,
		FullName:       d.FullName,
		Nickname:       d.Nickname,
		AltName:        d.AltName,
		WhatsappNumber: d.WhatsappNumber,
		GroupName:      d.Group,
		Remarks:        d.Remarks,
		JoinedDate:     d.JoinedDate,
		Status:         models.MemberStatus(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMember converts a model Member to a domain Member
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:       m.MemberID,
		FullName:       m.FullName,
		Nickname:       m.Nickname,
		AltName:        m.AltName,
		WhatsappNumber: m.WhatsappNumber,
		Group:          m.GroupName,
		Remarks:        m.Remarks,
		JoinedDate:     m.JoinedDate,
		Status:         domain.MemberStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMemberSlice converts a slice of model Members to domain Members
func ToDomainMemberSlice(ms []models.Member) []domain.Member {
	ds := make([]domain.Member, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMember(m)
	}
	return ds
}
