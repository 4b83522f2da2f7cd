package services

import (
	portsrepo "github.com/ronaldocristover/arisan-backend/internal/core/ports/repositories"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/platform/config"
	"github.com/ronaldocristover/arisan-backend/internal/platform/tasks"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, storage portssvc.ObjectStorageSvc, runner *tasks.Runner) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.MemberService = NewMemberService(repos.MemberRepo)
	container.PeriodService = NewPeriodService(repos.PeriodRepo, repos.MemberRepo, repos.PaymentRepo)
	container.PaymentService = NewPaymentService(repos.PaymentRepo, repos.PeriodRepo, repos.MemberRepo, repos.TransactionRepo, storage, runner)
	container.WinnerService = NewWinnerService(repos.WinnerRepo, repos.PeriodRepo, repos.PaymentRepo, repos.MemberRepo, repos.TransactionRepo)
	container.TransactionService = NewTransactionService(repos.TransactionRepo)
	container.NoteService = NewNoteService(repos.NoteRepo, repos.MemberRepo, repos.PeriodRepo)
	container.SettingService = NewSettingService(repos.SettingRepo)
	container.UserService = NewUserService(cfg, repos.UserRepo)
	container.ReportingService = NewReportingService(repos.MemberRepo, repos.PeriodRepo, repos.PaymentRepo, repos.TransactionRepo)
	container.StorageService = storage

	return container
}
