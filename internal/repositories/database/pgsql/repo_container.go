package pgsql

import (
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:    &BaseRepository{Pool: dbPool},
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		TreasuryRepo: newPgxTreasuryRepository(dbPool),
		BankRepo:     newPgxBankAccountRepository(dbPool),
		VoucherRepo:  newPgxVoucherRepository(dbPool),
		PayrollRepo:  newPgxPayrollRepository(dbPool),
		SequenceRepo: newPgxSequenceRepository(dbPool),
		SettingsRepo: newPgxSettingsRepository(dbPool),
		MasterData:   newPgxMasterDataRepository(dbPool),
		Reporting:    newReportingRepository(dbPool),
	}
}
