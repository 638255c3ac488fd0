package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

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

const treasurySourceID = "treasury"

type treasuryService struct {
	BaseService
	txm          portsrepo.TransactionManager
	treasuryRepo portsrepo.TreasuryRepositoryFacade
	bankRepo     portsrepo.BankAccountRepositoryFacade
	masterData   portsrepo.MasterDataReader
	ledger       ledgerPoster
}

var _ portssvc.TreasurySvcFacade = (*treasuryService)(nil)

func validateOpening(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
	}
	if !accounting.FitsScale(amount, accounting.AmountScale) {
		return fmt.Errorf("%w: opening balance has more than %d decimal places", apperrors.ErrValidation, accounting.AmountScale)
	}
	return nil
}

func (s *treasuryService) GetTreasury(ctx context.Context) (*domain.Treasury, error) {
	t, err := s.treasuryRepo.GetTreasury(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load treasury")
		return nil, err
	}
	return t, nil
}

// SetOpeningBalance stores the opening balance once. The rejected second call changes nothing.
func (s *treasuryService) SetOpeningBalance(ctx context.Context, amount decimal.Decimal, userID string) (*domain.Treasury, error) {
	if err := validateOpening(amount); err != nil {
		return nil, err
	}
	err := withTx(ctx, s.txm, func(tx pgx.Tx) error {
		t, err := s.treasuryRepo.LockTreasury(ctx, tx)
		if err != nil {
			return err
		}
		if t.OpeningLocked() {
			return fmt.Errorf("%w: treasury opening balance was already set", apperrors.ErrConflict)
		}
		now := s.Now()

		current := t.CurrentBalance.Add(amount).Sub(t.OpeningBalance)
		if err := s.treasuryRepo.SetTreasuryOpening(ctx, tx, amount, current, userID, now); err != nil {
			return err
		}
		if !amount.IsPositive() {
			return nil
		}

		txn := domain.TreasuryTransaction{
			TransactionID: uuid.NewString(),
			Date:          now,
			Type:          domain.MovementIn,
			Amount:        amount,
			Note:          "Opening balance",
			BalanceAfter:  current,
			CreatedAt:     now,
			CreatedBy:     userID,
		}
		if err := s.treasuryRepo.InsertTreasuryTransaction(ctx, tx, txn); err != nil {
			return err
		}
		_, err = s.ledger.post(ctx, tx, posting{
			SourceType:  domain.SourceOpeningBalance,
			SourceID:    treasurySourceID,
			Debit:       domain.TreasuryAccount(),
			Credit:      domain.EquityAccount(domain.EquityOpeningLabel),
			Amount:      amount,
			Description: "Treasury opening balance",
			UserID:      userID,
			At:          now,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to set treasury opening balance")
		}
		return nil, err
	}

	s.LogInfo(ctx, "Treasury opening balance set", slog.String("amount", amount.String()))
	return s.treasuryRepo.GetTreasury(ctx)
}

func (s *treasuryService) ListTreasuryTransactions(ctx context.Context, params dto.DateRangeParams) ([]domain.TreasuryTransaction, error) {
	return s.treasuryRepo.ListTreasuryTransactions(ctx, params.From, endOfDayPtr(params.To), params.Limit, params.Offset)
}

// CreateBankAccount registers an account under an existing bank and journals its opening balance.
func (s *treasuryService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	if err := validateOpening(req.OpeningBalance); err != nil {
		return nil, err
	}
	exists, err := s.masterData.BankExists(ctx, nil, req.BankID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: bank %s", apperrors.ErrNotFound, req.BankID)
	}

	now := s.Now()
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = req.AccountNo
	}
	account := domain.BankAccount{
		BankAccountID:  uuid.NewString(),
		BankID:         req.BankID,
		AccountNo:      strings.TrimSpace(req.AccountNo),
		Name:           name,
		OpeningBalance: req.OpeningBalance,
		CurrentBalance: req.OpeningBalance,
		AuditFields:    domain.NewAuditFields(userID, now),
	}

	err = withTx(ctx, s.txm, func(tx pgx.Tx) error {
		if err := s.bankRepo.SaveBankAccount(ctx, tx, account); err != nil {
			return err
		}
		if !account.OpeningBalance.IsPositive() {
			return nil
		}
		_, err := s.ledger.post(ctx, tx, posting{
			SourceType:  domain.SourceOpeningBalance,
			SourceID:    account.BankAccountID,
			Debit:       domain.BankAccountRef(account.BankAccountID),
			Credit:      domain.EquityAccount(domain.EquityOpeningLabel),
			Amount:      account.OpeningBalance,
			Description: "Bank account opening balance",
			UserID:      userID,
			At:          now,
		})
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create bank account", slog.String("bank_id", req.BankID))
		return nil, err
	}

	s.LogInfo(ctx, "Bank account created", slog.String("bank_account_id", account.BankAccountID))
	return &account, nil
}

func (s *treasuryService) GetBankAccount(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	return s.bankRepo.FindBankAccountByID(ctx, bankAccountID)
}

func (s *treasuryService) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	return s.bankRepo.ListBankAccounts(ctx)
}
