package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/apperrors"
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/services"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
	"github.com/SscSPs/customs_clearance_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// posting is one ledger entry to append inside an engine's transaction.
type posting struct {
	SourceType   domain.SourceType
	SourceID     string
	Debit        domain.AccountRef
	Credit       domain.AccountRef
	Amount       decimal.Decimal
	CurrencyCode string
	ExchangeRate decimal.Decimal
	Description  string
	UserID       string
	At           time.Time
}

// ledgerPoster is how the engines reach the journal.
type ledgerPoster interface {
	post(ctx context.Context, tx pgx.Tx, p posting) (*domain.LedgerEntry, error)
}

type ledgerService struct {
	BaseService
	txm             portsrepo.TransactionManager
	repo            portsrepo.LedgerRepositoryFacade
	defaultCurrency string
}

func newLedgerService(txm portsrepo.TransactionManager, repo portsrepo.LedgerRepositoryFacade, defaultCurrency string, options ...ServiceOption) *ledgerService {
	s := &ledgerService{txm: txm, repo: repo, defaultCurrency: defaultCurrency}
	applyOptions(&s.BaseService, options)
	return s
}

var (
	_ portssvc.LedgerSvcFacade = (*ledgerService)(nil)
	_ ledgerPoster             = (*ledgerService)(nil)
)

// post validates and appends one entry. The caller owns the transaction.
func (s *ledgerService) post(ctx context.Context, tx pgx.Tx, p posting) (*domain.LedgerEntry, error) {
	if !p.SourceType.Valid() {
		return nil, fmt.Errorf("%w: unknown source type %q", apperrors.ErrValidation, p.SourceType)
	}
	if strings.TrimSpace(p.SourceID) == "" {
		return nil, fmt.Errorf("%w: source id is required", apperrors.ErrValidation)
	}
	if err := p.Debit.Validate(); err != nil {
		return nil, fmt.Errorf("%w: debit account: %v", apperrors.ErrValidation, err)
	}
	if err := p.Credit.Validate(); err != nil {
		return nil, fmt.Errorf("%w: credit account: %v", apperrors.ErrValidation, err)
	}
	if p.Debit == p.Credit {
		return nil, fmt.Errorf("%w: debit and credit account are both %s", apperrors.ErrValidation, p.Debit)
	}
	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !accounting.FitsScale(p.Amount, accounting.AmountScale) {
		return nil, fmt.Errorf("%w: amount has more than %d decimal places", apperrors.ErrValidation, accounting.AmountScale)
	}

	rate := p.ExchangeRate
	if rate.IsZero() {
		rate = decimal.NewFromInt(1)
	}
	if !rate.IsPositive() || !accounting.FitsScale(rate, accounting.RateScale) {
		return nil, fmt.Errorf("%w: exchange rate must be positive with at most %d decimal places", apperrors.ErrValidation, accounting.RateScale)
	}
	currency := strings.ToUpper(strings.TrimSpace(p.CurrencyCode))
	if currency == "" {
		currency = s.defaultCurrency
	}
	at := p.At
	if at.IsZero() {
		at = s.Now()
	}

	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		SourceType:    p.SourceType,
		SourceID:      p.SourceID,
		DebitAccount:  p.Debit,
		CreditAccount: p.Credit,
		Amount:        p.Amount,
		CurrencyCode:  currency,
		ExchangeRate:  rate,
		Description:   p.Description,
		CreatedAt:     at,
		CreatedBy:     p.UserID,
	}
	if err := s.repo.InsertEntry(ctx, tx, entry); err != nil {
		s.LogError(ctx, err, "Failed to insert ledger entry",
			slog.String("source_type", string(entry.SourceType)),
			slog.String("source_id", entry.SourceID))
		return nil, err
	}
	s.LogDebug(ctx, "Ledger entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("debit", entry.DebitAccount.String()),
		slog.String("credit", entry.CreditAccount.String()),
		slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

// Post appends a standalone entry in its own transaction. Money accounts are excluded because
// their cached balances only move through the voucher and payroll engines.
func (s *ledgerService) Post(ctx context.Context, req dto.PostEntryRequest, userID string) (*domain.LedgerEntry, error) {
	debit, err := domain.ParseAccountRef(req.DebitAccount)
	if err != nil {
		return nil, fmt.Errorf("%w: debit account: %v", apperrors.ErrValidation, err)
	}
	credit, err := domain.ParseAccountRef(req.CreditAccount)
	if err != nil {
		return nil, fmt.Errorf("%w: credit account: %v", apperrors.ErrValidation, err)
	}
	if debit.IsMoneyAccount() || credit.IsMoneyAccount() {
		return nil, fmt.Errorf("%w: treasury and bank accounts are posted through vouchers", apperrors.ErrValidation)
	}
	if req.SourceType == domain.SourceOpeningBalance {
		return nil, fmt.Errorf("%w: opening balances are set through the treasury and bank accounts", apperrors.ErrValidation)
	}

	p := posting{
		SourceType:   req.SourceType,
		SourceID:     req.SourceID,
		Debit:        debit,
		Credit:       credit,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		Description:  req.Description,
		UserID:       userID,
	}
	if req.ExchangeRate != nil {
		p.ExchangeRate = *req.ExchangeRate
		if !p.ExchangeRate.IsPositive() {
			return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
		}
	}

	var entry *domain.LedgerEntry
	err = withTx(ctx, s.txm, func(tx pgx.Tx) error {
		var err error
		entry, err = s.post(ctx, tx, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Standalone ledger entry posted", slog.String("entry_id", entry.EntryID))
	return entry, nil
}

// AccountBalance is Σdebit − Σcredit for the account code.
func (s *ledgerService) AccountBalance(ctx context.Context, accountCode string) (decimal.Decimal, error) {
	ref, err := domain.ParseAccountRef(accountCode)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	debit, credit, err := s.repo.SumAccount(ctx, ref.String())
	if err != nil {
		s.LogError(ctx, err, "Failed to sum account", slog.String("account", ref.String()))
		return decimal.Zero, err
	}
	return accounting.NetBalance(debit, credit), nil
}

// AccountEntries lists entries touching the account on either side, newest first.
func (s *ledgerService) AccountEntries(ctx context.Context, accountCode string, params dto.ListEntriesParams) ([]domain.LedgerEntry, *string, error) {
	ref, err := domain.ParseAccountRef(accountCode)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return s.repo.ListEntriesByAccount(ctx, ref.String(), params.From, endOfDayPtr(params.To), params.Limit, params.NextToken)
}
