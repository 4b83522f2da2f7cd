package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/ronaldocristover/arisan-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	memberRepo := newPgxMemberRepository(dbPool)
	periodRepo := newPgxPeriodRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	winnerRepo := newPgxWinnerRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	noteRepo := newPgxNoteRepository(dbPool)
	settingRepo := newPgxSettingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		MemberRepo:      memberRepo,
		PeriodRepo:      periodRepo,
		PaymentRepo:     paymentRepo,
		WinnerRepo:      winnerRepo,
		TransactionRepo: transactionRepo,
		NoteRepo:        noteRepo,
		SettingRepo:     settingRepo,
		UserRepo:        userRepo,
	}
}
