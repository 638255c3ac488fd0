package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/apperrors"
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/customs_clearance_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// balanceStore is the only writer of treasury and bank current balances. Every method runs inside
// the caller's transaction; lock must come before guard so the check and the write see the same row.
type balanceStore struct {
	BaseService
	treasuryRepo portsrepo.TreasuryRepositoryFacade
	bankRepo     portsrepo.BankAccountRepositoryFacade
}

// movement describes a balance change for the cash subledger row.
type movement struct {
	Date      time.Time
	Note      string
	VoucherID *string
	UserID    string
	At        time.Time
}

func newBalanceStore(treasuryRepo portsrepo.TreasuryRepositoryFacade, bankRepo portsrepo.BankAccountRepositoryFacade, base BaseService) *balanceStore {
	return &balanceStore{BaseService: base, treasuryRepo: treasuryRepo, bankRepo: bankRepo}
}

// lock selects the money account FOR UPDATE and returns its current balance.
func (b *balanceStore) lock(ctx context.Context, tx pgx.Tx, account domain.AccountRef) (decimal.Decimal, error) {
	switch account.Kind {
	case domain.KindTreasury:
		t, err := b.treasuryRepo.LockTreasury(ctx, tx)
		if err != nil {
			return decimal.Zero, err
		}
		return t.CurrentBalance, nil
	case domain.KindBank:
		acc, err := b.bankRepo.LockBankAccount(ctx, tx, account.ID)
		if err != nil {
			return decimal.Zero, err
		}
		return acc.CurrentBalance, nil
	}
	return decimal.Zero, fmt.Errorf("%w: %s is not a money account", apperrors.ErrValidation, account)
}

// guard rejects a delta that would take a protected account below zero.
func (b *balanceStore) guard(settings domain.AppSettings, account domain.AccountRef, balance, delta decimal.Decimal) error {
	if !settings.GuardsAccount(account) {
		return nil
	}
	if accounting.WouldOverdraw(balance, delta) {
		return fmt.Errorf("%w: %s balance %s cannot cover %s", apperrors.ErrInsufficientBalance, account, balance, delta.Abs())
	}
	return nil
}

// apply writes balance+delta. Cash movements also append a subledger row whose balanceAfter is
// the new treasury balance.
func (b *balanceStore) apply(ctx context.Context, tx pgx.Tx, account domain.AccountRef, balance, delta decimal.Decimal, m movement) (decimal.Decimal, error) {
	newBalance := balance.Add(delta)
	at := m.At
	if at.IsZero() {
		at = b.Now()
	}

	switch account.Kind {
	case domain.KindTreasury:
		if err := b.treasuryRepo.UpdateTreasuryBalance(ctx, tx, newBalance, m.UserID, at); err != nil {
			return decimal.Zero, err
		}
		if delta.IsZero() {
			return newBalance, nil
		}
		direction, amount := accounting.MovementFor(delta)
		date := m.Date
		if date.IsZero() {
			date = at
		}
		txn := domain.TreasuryTransaction{
			TransactionID: uuid.NewString(),
			Date:          date,
			Type:          direction,
			Amount:        amount,
			Note:          m.Note,
			BalanceAfter:  newBalance,
			VoucherID:     m.VoucherID,
			CreatedAt:     at,
			CreatedBy:     m.UserID,
		}
		if err := b.treasuryRepo.InsertTreasuryTransaction(ctx, tx, txn); err != nil {
			return decimal.Zero, err
		}
	case domain.KindBank:
		if err := b.bankRepo.UpdateBankBalance(ctx, tx, account.ID, newBalance, m.UserID, at); err != nil {
			return decimal.Zero, err
		}
	default:
		return decimal.Zero, fmt.Errorf("%w: %s is not a money account", apperrors.ErrValidation, account)
	}

	b.LogDebug(ctx, "Balance updated",
		slog.String("account", account.String()),
		slog.String("delta", delta.String()),
		slog.String("balance", newBalance.String()))
	return newBalance, nil
}
