package services

import (
	"context"
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
)

type voucherService struct {
	BaseService
	txm        portsrepo.TransactionManager
	repo       portsrepo.VoucherRepositoryFacade
	masterData portsrepo.MasterDataReader
	bankRepo   portsrepo.BankAccountReader
	balances   *balanceStore
	codes      portssvc.CodeGenerator
	ledger     ledgerPoster
	settings   portssvc.SettingsProvider
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// validateVoucher checks the shape rules that need no database access.
func validateVoucher(v domain.Voucher) error {
	if !v.Type.Valid() {
		return fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, v.Type)
	}
	if !v.PartyType.Valid() {
		return fmt.Errorf("%w: unknown party type %q", apperrors.ErrValidation, v.PartyType)
	}
	if !v.Method.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, v.Method)
	}
	if !v.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !accounting.FitsScale(v.Amount, accounting.AmountScale) {
		return fmt.Errorf("%w: amount has more than %d decimal places", apperrors.ErrValidation, accounting.AmountScale)
	}

	if v.PartyType == domain.PartyOther {
		if strings.TrimSpace(v.PartyName) == "" {
			return fmt.Errorf("%w: party name is required for OTHER parties", apperrors.ErrValidation)
		}
	} else if v.PartyID == nil || strings.TrimSpace(*v.PartyID) == "" {
		return fmt.Errorf("%w: party id is required for %s parties", apperrors.ErrValidation, v.PartyType)
	}

	hasBank := v.BankAccountID != nil && strings.TrimSpace(*v.BankAccountID) != ""
	if v.Method == domain.MethodBankTransfer && !hasBank {
		return fmt.Errorf("%w: bank account is required for bank transfers", apperrors.ErrValidation)
	}
	if v.Method == domain.MethodCash && hasBank {
		return fmt.Errorf("%w: cash vouchers take no bank account", apperrors.ErrValidation)
	}

	if v.PartyType == domain.PartyOther && v.Type == domain.Payment && v.CategoryID == nil {
		return fmt.Errorf("%w: expense category is required for payments to OTHER parties", apperrors.ErrValidation)
	}
	return nil
}

// checkReferences verifies that every referenced master-data row exists.
func (s *voucherService) checkReferences(ctx context.Context, tx pgx.Tx, v domain.Voucher) error {
	if v.PartyID != nil && v.PartyType != domain.PartyOther {
		ok, err := s.masterData.PartyExists(ctx, tx, v.PartyType, *v.PartyID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, strings.ToLower(string(v.PartyType)), *v.PartyID)
		}
	}
	if v.CategoryID != nil {
		ok, err := s.masterData.ExpenseCategoryExists(ctx, tx, *v.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: expense category %s", apperrors.ErrNotFound, *v.CategoryID)
		}
	}
	if v.BankAccountID != nil {
		if _, err := s.bankRepo.FindBankAccountByID(ctx, *v.BankAccountID); err != nil {
			return err
		}
	}
	return nil
}

// createInTx mints the code, stores the voucher, moves the balance and journals it. A nil
// settings skips the guard, which the payroll engine does once for the whole run.
// Timestamps are taken under the row lock so snapshots replay in createdAt order.
func (s *voucherService) createInTx(ctx context.Context, tx pgx.Tx, v *domain.Voucher, userID string, settings *domain.AppSettings, source domain.SourceType) error {
	money := v.MoneyAccount()
	delta := accounting.MoneyDelta(v.Type, v.Amount)

	balance, err := s.balances.lock(ctx, tx, money)
	if err != nil {
		return err
	}
	at := s.Now()
	v.CreatedAt, v.LastUpdatedAt = at, at
	if settings != nil {
		if err := s.balances.guard(*settings, money, balance, delta); err != nil {
			return err
		}
	}

	code, err := s.codes.NextCode(ctx, tx, domain.VoucherDocumentType(v.Type), v.Date)
	if err != nil {
		return err
	}
	v.Code = code
	v.Posted = domain.PostedEffect{Amount: v.Amount, Method: v.Method, BankAccountID: v.BankAccountID}

	if err := s.repo.SaveVoucher(ctx, tx, *v); err != nil {
		return err
	}

	note := v.Code
	if v.Note != "" {
		note = v.Code + " " + v.Note
	}
	if _, err := s.balances.apply(ctx, tx, money, balance, delta, movement{
		Date:      v.Date,
		Note:      note,
		VoucherID: &v.VoucherID,
		UserID:    userID,
		At:        at,
	}); err != nil {
		return err
	}

	debit, credit := v.Postings()
	description := v.Note
	if description == "" {
		description = fmt.Sprintf("%s %s", v.Code, v.PartyName)
	}
	_, err = s.ledger.post(ctx, tx, posting{
		SourceType:  source,
		SourceID:    v.VoucherID,
		Debit:       debit,
		Credit:      credit,
		Amount:      v.Amount,
		Description: description,
		UserID:      userID,
		At:          at,
	})
	return err
}

// removeInTx reverses the effect recorded at creation and deletes the row. The reversal is not
// guarded and the ledger entry stays.
func (s *voucherService) removeInTx(ctx context.Context, tx pgx.Tx, v domain.Voucher, userID string) error {
	money := domain.MoneyAccountFor(v.Posted.Method, v.Posted.BankAccountID)
	delta := accounting.MoneyDelta(v.Type, v.Posted.Amount).Neg()

	balance, err := s.balances.lock(ctx, tx, money)
	if err != nil {
		return err
	}
	// The voucher row is about to go; the subledger row keeps the code in its note instead.
	if _, err := s.balances.apply(ctx, tx, money, balance, delta, movement{
		Date:   s.Now(),
		Note:   "Reversal of " + v.Code,
		UserID: userID,
	}); err != nil {
		return err
	}
	return s.repo.DeleteVoucher(ctx, tx, v.VoucherID)
}

// resolvePartyName fills an empty party name from master data.
func (s *voucherService) resolvePartyName(ctx context.Context, v *domain.Voucher) error {
	if strings.TrimSpace(v.PartyName) != "" || v.PartyID == nil {
		return nil
	}
	ref := v.CounterAccount()
	names, err := s.masterData.ResolveAccountNames(ctx, []domain.AccountRef{ref})
	if err != nil {
		return err
	}
	v.PartyName = names[ref.String()]
	return nil
}

func (s *voucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	now := s.Now()
	v := domain.Voucher{
		VoucherID:     uuid.NewString(),
		Type:          req.Type,
		PartyType:     req.PartyType,
		PartyID:       req.PartyID,
		PartyName:     strings.TrimSpace(req.PartyName),
		Method:        req.Method,
		BankAccountID: req.BankAccountID,
		Amount:        req.Amount,
		CategoryID:    req.CategoryID,
		Date:          req.Date,
		Note:          req.Note,
		AuditFields:   domain.NewAuditFields(userID, now),
	}
	if v.Date.IsZero() {
		v.Date = now
	}
	if err := validateVoucher(v); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, nil, v); err != nil {
		return nil, err
	}
	if err := s.resolvePartyName(ctx, &v); err != nil {
		return nil, err
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	err = withTx(ctx, s.txm, func(tx pgx.Tx) error {
		return s.createInTx(ctx, tx, &v, userID, &settings, domain.SourceVoucher)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create voucher",
			slog.String("type", string(v.Type)),
			slog.String("method", string(v.Method)))
		return nil, err
	}

	s.LogInfo(ctx, "Voucher created",
		slog.String("voucher_id", v.VoucherID),
		slog.String("code", v.Code),
		slog.String("amount", v.Amount.String()))
	return &v, nil
}

// UpdateVoucher rewrites editable fields. Balances and the journal keep the effect posted at
// creation even when amount, method or bank account change.
func (s *voucherService) UpdateVoucher(ctx context.Context, voucherID string, req dto.UpdateVoucherRequest, userID string) (*domain.Voucher, error) {
	var updated domain.Voucher
	err := withTx(ctx, s.txm, func(tx pgx.Tx) error {
		current, err := s.repo.LockVoucher(ctx, tx, voucherID)
		if err != nil {
			return err
		}
		v := *current

		if req.PartyName != nil {
			v.PartyName = strings.TrimSpace(*req.PartyName)
		}
		if req.Method != nil {
			v.Method = *req.Method
			if v.Method == domain.MethodCash && req.BankAccountID == nil {
				v.BankAccountID = nil
			}
		}
		if req.BankAccountID != nil {
			v.BankAccountID = req.BankAccountID
		}
		if req.Amount != nil {
			v.Amount = *req.Amount
		}
		if req.CategoryID != nil {
			v.CategoryID = req.CategoryID
		}
		if req.Date != nil {
			v.Date = *req.Date
		}
		if req.Note != nil {
			v.Note = *req.Note
		}

		if err := validateVoucher(v); err != nil {
			return err
		}
		if err := s.checkReferences(ctx, tx, v); err != nil {
			return err
		}

		if !v.Amount.Equal(current.Amount) || v.Method != current.Method || !sameID(v.BankAccountID, current.BankAccountID) {
			s.LogWarn(ctx, "Voucher financial fields changed without re-posting",
				slog.String("voucher_id", v.VoucherID),
				slog.String("posted_amount", v.Posted.Amount.String()),
				slog.String("new_amount", v.Amount.String()),
				slog.String("posted_method", string(v.Posted.Method)),
				slog.String("new_method", string(v.Method)))
		}

		v.LastUpdatedAt = s.Now()
		v.LastUpdatedBy = userID
		if err := s.repo.UpdateVoucher(ctx, tx, v); err != nil {
			return err
		}
		updated = v
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update voucher", slog.String("voucher_id", voucherID))
		return nil, err
	}
	return &updated, nil
}

func (s *voucherService) RemoveVoucher(ctx context.Context, voucherID string, userID string) error {
	var code string
	err := withTx(ctx, s.txm, func(tx pgx.Tx) error {
		v, err := s.repo.LockVoucher(ctx, tx, voucherID)
		if err != nil {
			return err
		}
		code = v.Code
		return s.removeInTx(ctx, tx, *v, userID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to remove voucher", slog.String("voucher_id", voucherID))
		return err
	}
	s.LogInfo(ctx, "Voucher removed", slog.String("voucher_id", voucherID), slog.String("code", code))
	return nil
}

func (s *voucherService) GetVoucher(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	return s.repo.FindVoucherByID(ctx, voucherID)
}

func (s *voucherService) ListVouchers(ctx context.Context, params dto.ListVouchersParams) ([]domain.Voucher, error) {
	filter := params.ToFilter()
	filter.To = endOfDayPtr(filter.To)
	return s.repo.ListVouchers(ctx, filter)
}

func sameID(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
