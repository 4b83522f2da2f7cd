package services

// ServiceContainer holds all service interfaces needed by handlers.
// This makes passing dependencies to handler registration cleaner.
type ServiceContainer struct {
	MemberService      MemberSvcFacade
	PeriodService      PeriodSvcFacade
	PaymentService     PaymentSvcFacade
	WinnerService      WinnerSvcFacade
	TransactionService TransactionSvcFacade
	NoteService        NoteSvcFacade
	SettingService     SettingSvcFacade
	UserService        UserSvcFacade
	ReportingService   ReportingSvcFacade
	StorageService     ObjectStorageSvc
}
