package services

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/dto"
)

// ReportingSvcFacade defines the dashboard aggregation
type ReportingSvcFacade interface {
	// GetDashboard assembles the landing-page view: active member count,
	// current period collection stats, outstanding obligations, recent
	// settlements and the overall journal summary.
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}
