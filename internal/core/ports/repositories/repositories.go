package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager    TransactionManager
	LedgerRepo   LedgerRepositoryFacade
	TreasuryRepo TreasuryRepositoryFacade
	BankRepo     BankAccountRepositoryFacade
	VoucherRepo  VoucherRepositoryFacade
	PayrollRepo  PayrollRepositoryFacade
	SequenceRepo SequenceRepository
	SettingsRepo SettingsRepository
	MasterData   MasterDataReader
	Reporting    ReportingRepository
}
