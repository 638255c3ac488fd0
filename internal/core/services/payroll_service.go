package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
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

const payrollMonthLayout = "2006-01"

type payrollService struct {
	BaseService
	txm        portsrepo.TransactionManager
	repo       portsrepo.PayrollRepositoryFacade
	masterData portsrepo.MasterDataReader
	vouchers   *voucherService
	voucherDB  portsrepo.VoucherWriter
	balances   *balanceStore
	settings   portssvc.SettingsProvider

	// unapproveReverses removes the run's vouchers on unapprove instead of only flipping status.
	unapproveReverses bool
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

func (s *payrollService) GetRun(ctx context.Context, runID string) (*domain.PayrollRun, error) {
	return s.repo.FindPayrollRunByID(ctx, runID)
}

func (s *payrollService) ListRuns(ctx context.Context, params dto.ListPayrollRunsParams) ([]domain.PayrollRun, error) {
	return s.repo.ListPayrollRuns(ctx, params.Limit, params.Offset)
}

// CreateRun opens a DRAFT run with one item per active employee.
func (s *payrollService) CreateRun(ctx context.Context, req dto.CreatePayrollRunRequest, userID string) (*domain.PayrollRun, error) {
	if _, err := time.Parse(payrollMonthLayout, req.Month); err != nil {
		return nil, fmt.Errorf("%w: month must be YYYY-MM", apperrors.ErrValidation)
	}

	now := s.Now()
	run := domain.PayrollRun{
		RunID:       uuid.NewString(),
		Month:       req.Month,
		Status:      domain.PayrollDraft,
		AuditFields: domain.NewAuditFields(userID, now),
	}

	err := withTx(ctx, s.txm, func(tx pgx.Tx) error {
		employees, err := s.masterData.ListActiveEmployees(ctx, tx)
		if err != nil {
			return err
		}
		run.Items = make([]domain.PayrollItem, 0, len(employees))
		for _, e := range employees {
			run.Items = append(run.Items, domain.PayrollItem{
				ItemID:       uuid.NewString(),
				RunID:        run.RunID,
				EmployeeID:   e.EmployeeID,
				EmployeeName: e.Name,
				Base:         e.BaseSalary,
				Allowances:   e.Allowances,
				Deductions:   decimal.Zero,
				Net:          domain.ComputeNet(e.BaseSalary, e.Allowances, decimal.Zero),
			})
		}
		run.TotalNet = domain.TotalNet(run.Items)
		return s.repo.SavePayrollRun(ctx, tx, run)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: payroll run for %s already exists", apperrors.ErrConflict, req.Month)
		}
		s.LogError(ctx, err, "Failed to create payroll run", slog.String("month", req.Month))
		return nil, err
	}

	s.LogInfo(ctx, "Payroll run created",
		slog.String("run_id", run.RunID),
		slog.String("month", run.Month),
		slog.Int("items", len(run.Items)))
	return &run, nil
}

// ReplaceItems swaps all items of a DRAFT run.
func (s *payrollService) ReplaceItems(ctx context.Context, runID string, req dto.ReplacePayrollItemsRequest, userID string) (*domain.PayrollRun, error) {
	seen := make(map[string]bool, len(req.Items))
	ids := make([]string, 0, len(req.Items))
	for _, it := range req.Items {
		if seen[it.EmployeeID] {
			return nil, fmt.Errorf("%w: employee %s appears twice", apperrors.ErrValidation, it.EmployeeID)
		}
		seen[it.EmployeeID] = true
		ids = append(ids, it.EmployeeID)
		if it.Base.IsNegative() || it.Allowances.IsNegative() || it.Deductions.IsNegative() {
			return nil, fmt.Errorf("%w: payroll amounts cannot be negative", apperrors.ErrValidation)
		}
		for _, amount := range []decimal.Decimal{it.Base, it.Allowances, it.Deductions} {
			if !accounting.FitsScale(amount, accounting.AmountScale) {
				return nil, fmt.Errorf("%w: payroll amounts have more than %d decimal places", apperrors.ErrValidation, accounting.AmountScale)
			}
		}
		if domain.ComputeNet(it.Base, it.Allowances, it.Deductions).IsNegative() {
			return nil, fmt.Errorf("%w: net pay for employee %s is negative", apperrors.ErrValidation, it.EmployeeID)
		}
	}

	var run *domain.PayrollRun
	err := withTx(ctx, s.txm, func(tx pgx.Tx) error {
		var err error
		run, err = s.repo.LockPayrollRun(ctx, tx, runID)
		if err != nil {
			return err
		}
		if run.Status != domain.PayrollDraft {
			return fmt.Errorf("%w: items can only be replaced on a DRAFT run", apperrors.ErrConflict)
		}

		employees, err := s.masterData.FindEmployeesByIDs(ctx, tx, ids)
		if err != nil {
			return err
		}
		items := make([]domain.PayrollItem, 0, len(req.Items))
		for _, it := range req.Items {
			e, ok := employees[it.EmployeeID]
			if !ok {
				return fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, it.EmployeeID)
			}
			items = append(items, domain.PayrollItem{
				ItemID:       uuid.NewString(),
				RunID:        run.RunID,
				EmployeeID:   e.EmployeeID,
				EmployeeName: e.Name,
				Base:         it.Base,
				Allowances:   it.Allowances,
				Deductions:   it.Deductions,
				Net:          domain.ComputeNet(it.Base, it.Allowances, it.Deductions),
			})
		}
		run.Items = items
		run.TotalNet = domain.TotalNet(items)
		run.LastUpdatedAt = s.Now()
		run.LastUpdatedBy = userID
		return s.repo.ReplacePayrollItems(ctx, tx, *run)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to replace payroll items", slog.String("run_id", runID))
		return nil, err
	}
	return run, nil
}

// Approve pays every item with a positive net through one payment voucher each. The guard runs
// once on the run total; any failure rolls back every voucher, balance write and entry.
func (s *payrollService) Approve(ctx context.Context, runID string, req dto.ApprovePayrollRequest, userID string) (*domain.PayrollRun, error) {
	method := domain.MethodCash
	if req.PaymentMethod != nil {
		method = *req.PaymentMethod
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, method)
	}
	var bankAccountID *string
	if method == domain.MethodBankTransfer {
		if req.BankAccountID == nil || *req.BankAccountID == "" {
			return nil, fmt.Errorf("%w: bank account is required for bank transfers", apperrors.ErrValidation)
		}
		bankAccountID = req.BankAccountID
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	paid := 0
	err = withTx(ctx, s.txm, func(tx pgx.Tx) error {
		run, err := s.repo.LockPayrollRun(ctx, tx, runID)
		if err != nil {
			return err
		}
		if run.Status == domain.PayrollApproved {
			return fmt.Errorf("%w: payroll run %s is already approved", apperrors.ErrConflict, run.Month)
		}

		money := domain.MoneyAccountFor(method, bankAccountID)
		balance, err := s.balances.lock(ctx, tx, money)
		if err != nil {
			return err
		}
		total := domain.TotalNet(run.Items)
		if err := s.balances.guard(settings, money, balance, total.Neg()); err != nil {
			return err
		}

		now := s.Now()
		for i := range run.Items {
			item := &run.Items[i]
			if !item.Net.IsPositive() {
				continue
			}
			v := domain.Voucher{
				VoucherID:     uuid.NewString(),
				Type:          domain.Payment,
				PartyType:     domain.PartyEmployee,
				PartyID:       strPtr(item.EmployeeID),
				PartyName:     item.EmployeeName,
				Method:        method,
				BankAccountID: bankAccountID,
				Amount:        item.Net,
				Date:          now,
				Note:          "Payroll " + run.Month,
				PayrollRunID:  strPtr(run.RunID),
				AuditFields:   domain.NewAuditFields(userID, now),
			}
			if err := s.vouchers.createInTx(ctx, tx, &v, userID, nil, domain.SourcePayroll); err != nil {
				return fmt.Errorf("paying employee %s: %w", item.EmployeeID, err)
			}
			if err := s.repo.LinkPayrollItemVoucher(ctx, tx, item.ItemID, &v.VoucherID); err != nil {
				return err
			}
			item.VoucherID = &v.VoucherID
			paid++
		}

		run.Status = domain.PayrollApproved
		run.PaymentMethod = &method
		run.BankAccountID = bankAccountID
		run.ApprovedAt = &now
		run.ApprovedBy = strPtr(userID)
		run.LastUpdatedAt = now
		run.LastUpdatedBy = userID
		return s.repo.UpdatePayrollRunStatus(ctx, tx, *run)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to approve payroll run", slog.String("run_id", runID))
		return nil, err
	}

	s.LogInfo(ctx, "Payroll run approved",
		slog.String("run_id", runID),
		slog.String("method", string(method)),
		slog.Int("vouchers", paid))
	return s.repo.FindPayrollRunByID(ctx, runID)
}

// Unapprove returns an APPROVED run to DRAFT. Unless configured to reverse, the vouchers and
// balance movements of the approval stay in place.
func (s *payrollService) Unapprove(ctx context.Context, runID string, userID string) (*domain.PayrollRun, error) {
	err := withTx(ctx, s.txm, func(tx pgx.Tx) error {
		run, err := s.repo.LockPayrollRun(ctx, tx, runID)
		if err != nil {
			return err
		}
		if run.Status != domain.PayrollApproved {
			return fmt.Errorf("%w: payroll run %s is not approved", apperrors.ErrConflict, run.Month)
		}

		if s.unapproveReverses {
			for _, item := range run.Items {
				if item.VoucherID == nil {
					continue
				}
				v, err := s.voucherDB.LockVoucher(ctx, tx, *item.VoucherID)
				switch {
				case errors.Is(err, apperrors.ErrNotFound):
					s.LogWarn(ctx, "Payroll voucher already removed", slog.String("voucher_id", *item.VoucherID))
				case err != nil:
					return err
				default:
					if err := s.vouchers.removeInTx(ctx, tx, *v, userID); err != nil {
						return err
					}
				}
				if err := s.repo.LinkPayrollItemVoucher(ctx, tx, item.ItemID, nil); err != nil {
					return err
				}
			}
		} else {
			s.LogWarn(ctx, "Payroll run unapproved without reversing its vouchers",
				slog.String("run_id", run.RunID),
				slog.String("total_net", run.TotalNet.String()))
		}

		now := s.Now()
		run.Status = domain.PayrollDraft
		run.ApprovedAt = nil
		run.ApprovedBy = nil
		run.LastUpdatedAt = now
		run.LastUpdatedBy = userID
		return s.repo.UpdatePayrollRunStatus(ctx, tx, *run)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to unapprove payroll run", slog.String("run_id", runID))
		return nil, err
	}

	s.LogInfo(ctx, "Payroll run unapproved", slog.String("run_id", runID), slog.Bool("reversed", s.unapproveReverses))
	return s.repo.FindPayrollRunByID(ctx, runID)
}
