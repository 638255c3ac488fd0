package services

import (
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/services"
	"github.com/SscSPs/customs_clearance_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The engines share one ledger poster, one balance store and one code generator so that every
// posting of an operation lands in the same transaction.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	var base BaseService
	applyOptions(&base, options)

	settings := NewSettingsService(repos.SettingsRepo, domain.AppSettings{
		PreventNegativeTreasury: cfg.PreventNegativeTreasury,
		PreventNegativeBank:     cfg.PreventNegativeBank,
	}, options...)
	ledger := newLedgerService(repos.TxManager, repos.LedgerRepo, cfg.DefaultCurrency, options...)
	codes := NewCodeGenerator(repos.SequenceRepo, cfg.CodeMaxAttempts, options...)
	balances := newBalanceStore(repos.TreasuryRepo, repos.BankRepo, base)

	vouchers := &voucherService{
		BaseService: base,
		txm:         repos.TxManager,
		repo:        repos.VoucherRepo,
		masterData:  repos.MasterData,
		bankRepo:    repos.BankRepo,
		balances:    balances,
		codes:       codes,
		ledger:      ledger,
		settings:    settings,
	}

	return &portssvc.ServiceContainer{
		Settings: settings,
		Ledger:   ledger,
		Treasury: &treasuryService{
			BaseService:  base,
			txm:          repos.TxManager,
			treasuryRepo: repos.TreasuryRepo,
			bankRepo:     repos.BankRepo,
			masterData:   repos.MasterData,
			ledger:       ledger,
		},
		Voucher: vouchers,
		Payroll: &payrollService{
			BaseService:       base,
			txm:               repos.TxManager,
			repo:              repos.PayrollRepo,
			masterData:        repos.MasterData,
			vouchers:          vouchers,
			voucherDB:         repos.VoucherRepo,
			balances:          balances,
			settings:          settings,
			unapproveReverses: cfg.PayrollUnapproveReverses,
		},
		Posting: &postingService{
			BaseService: base,
			txm:         repos.TxManager,
			masterData:  repos.MasterData,
			codes:       codes,
			ledger:      ledger,
		},
		Reporting: &reportingService{
			BaseService:   base,
			reportingRepo: repos.Reporting,
			ledgerRepo:    repos.LedgerRepo,
			treasuryRepo:  repos.TreasuryRepo,
			bankRepo:      repos.BankRepo,
			voucherRepo:   repos.VoucherRepo,
			masterData:    repos.MasterData,
			defaultLocale: cfg.DefaultLocale,
		},
	}
}
