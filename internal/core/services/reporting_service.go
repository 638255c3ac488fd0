package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/apperrors"
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/services"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
	"github.com/SscSPs/customs_clearance_ledger/internal/i18n"
	"github.com/SscSPs/customs_clearance_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
)

// reportingService builds read-only statements from the journal and the cached balances.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	ledgerRepo    portsrepo.LedgerReader
	treasuryRepo  portsrepo.TreasuryReader
	bankRepo      portsrepo.BankAccountReader
	voucherRepo   portsrepo.VoucherReader
	masterData    portsrepo.MasterDataReader
	defaultLocale string
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) printer(lang string) *message.Printer {
	return message.NewPrinter(i18n.Match(lang, s.defaultLocale))
}

// labeller resolves display names for a batch of account codes with one master-data lookup.
type labeller struct {
	printer *message.Printer
	names   map[string]string
}

func (s *reportingService) newLabeller(ctx context.Context, lang string, codes []string) (*labeller, error) {
	refs := make([]domain.AccountRef, 0, len(codes))
	for _, code := range codes {
		if ref, err := domain.ParseAccountRef(code); err == nil {
			refs = append(refs, ref)
		}
	}
	names, err := s.masterData.ResolveAccountNames(ctx, refs)
	if err != nil {
		return nil, err
	}
	return &labeller{printer: s.printer(lang), names: names}, nil
}

// label falls back to the raw code for strings that are not account refs.
func (l *labeller) label(code string) string {
	ref, err := domain.ParseAccountRef(code)
	if err != nil {
		return code
	}
	return i18n.AccountLabel(l.printer, ref, l.names[code])
}

// TrialBalance returns per-account totals of every entry created up to the end of asOf.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time, lang string) ([]domain.TrialBalanceRow, error) {
	totals, err := s.reportingRepo.GetAccountTotals(ctx, nil, endOfDay(asOf))
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data", slog.String("asOf", asOf.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	codes := make([]string, len(totals))
	for i, t := range totals {
		codes[i] = t.Account
	}
	names, err := s.newLabeller(ctx, lang, codes)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.TrialBalanceRow, len(totals))
	for i, t := range totals {
		rows[i] = domain.TrialBalanceRow{
			Account:     t.Account,
			AccountName: names.label(t.Account),
			Debit:       t.Debit,
			Credit:      t.Credit,
			Balance:     accounting.NetBalance(t.Debit, t.Credit),
		}
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("asOf", asOf.Format(time.DateOnly)),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

func (s *reportingService) GeneralJournal(ctx context.Context, params dto.ListEntriesParams) ([]domain.LedgerEntry, *string, error) {
	return s.ledgerRepo.ListEntries(ctx, params.From, endOfDayPtr(params.To), params.Limit, params.NextToken)
}

// IncomeStatement sums revenue:* and expense:* accounts over [from, to] on their natural side.
func (s *reportingService) IncomeStatement(ctx context.Context, from, to time.Time, lang string) (*domain.IncomeStatement, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' date is before 'from' date", apperrors.ErrValidation)
	}
	totals, err := s.reportingRepo.GetAccountTotals(ctx, &from, endOfDay(to))
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve income statement data")
		return nil, fmt.Errorf("failed to retrieve income statement data: %w", err)
	}

	codes := make([]string, 0, len(totals))
	for _, t := range totals {
		codes = append(codes, t.Account)
	}
	names, err := s.newLabeller(ctx, lang, codes)
	if err != nil {
		return nil, err
	}

	report := &domain.IncomeStatement{
		From:          from,
		To:            to,
		Revenue:       []domain.AccountAmount{},
		Expenses:      []domain.AccountAmount{},
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, t := range totals {
		ref, err := domain.ParseAccountRef(t.Account)
		if err != nil {
			continue
		}
		net := accounting.NaturalBalance(ref.Kind, t.Debit, t.Credit)
		row := domain.AccountAmount{Account: t.Account, Name: names.label(t.Account), NetAmount: net}
		switch ref.Kind {
		case domain.KindRevenue:
			report.Revenue = append(report.Revenue, row)
			report.TotalRevenue = report.TotalRevenue.Add(net)
		case domain.KindExpense:
			report.Expenses = append(report.Expenses, row)
			report.TotalExpenses = report.TotalExpenses.Add(net)
		}
	}
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpenses)

	s.LogInfo(ctx, "Income statement generated successfully",
		slog.String("from", from.Format(time.DateOnly)),
		slog.String("to", to.Format(time.DateOnly)),
		slog.String("net_income", report.NetIncome.String()))
	return report, nil
}

// TreasuryReport lists the cash subledger over [from, to]. The opening balance is the snapshot of
// the last row before from.
func (s *reportingService) TreasuryReport(ctx context.Context, from, to time.Time) (*domain.TreasuryReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' date is before 'from' date", apperrors.ErrValidation)
	}
	opening, _, err := s.treasuryRepo.LastBalanceBefore(ctx, from)
	if err != nil {
		return nil, err
	}
	end := endOfDay(to)
	txns, err := s.treasuryRepo.ListTreasuryTransactions(ctx, &from, &end, 0, 0)
	if err != nil {
		return nil, err
	}

	report := &domain.TreasuryReport{
		From:           from,
		To:             to,
		OpeningBalance: opening,
		ClosingBalance: opening,
		TotalIn:        decimal.Zero,
		TotalOut:       decimal.Zero,
		Transactions:   txns,
	}
	for _, t := range txns {
		if t.Type == domain.MovementIn {
			report.TotalIn = report.TotalIn.Add(t.Amount)
		} else {
			report.TotalOut = report.TotalOut.Add(t.Amount)
		}
		report.ClosingBalance = t.BalanceAfter
	}
	return report, nil
}

// BankReport lists the vouchers that moved money through the bank account over [from, to].
func (s *reportingService) BankReport(ctx context.Context, bankAccountID string, from, to time.Time) (*domain.BankReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' date is before 'from' date", apperrors.ErrValidation)
	}
	account, err := s.bankRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}

	method := domain.MethodBankTransfer
	end := endOfDay(to)
	vouchers, err := s.voucherRepo.ListVouchers(ctx, domain.VoucherFilter{
		Method:        &method,
		BankAccountID: &bankAccountID,
		From:          &from,
		To:            &end,
	})
	if err != nil {
		return nil, err
	}

	report := &domain.BankReport{
		BankAccount:   *account,
		From:          from,
		To:            to,
		TotalReceipts: decimal.Zero,
		TotalPayments: decimal.Zero,
		Vouchers:      vouchers,
	}
	for _, v := range vouchers {
		if v.Type == domain.Receipt {
			report.TotalReceipts = report.TotalReceipts.Add(v.Amount)
		} else {
			report.TotalPayments = report.TotalPayments.Add(v.Amount)
		}
	}
	return report, nil
}

// AccountStatement walks the account's entries oldest first from its journal balance before from.
func (s *reportingService) AccountStatement(ctx context.Context, accountCode string, from, to time.Time, lang string) (*domain.AccountStatement, error) {
	ref, err := domain.ParseAccountRef(accountCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' date is before 'from' date", apperrors.ErrValidation)
	}
	code := ref.String()

	opening, err := s.ledgerRepo.NetBalanceBefore(ctx, code, from)
	if err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.ListEntriesByAccountAsc(ctx, code, from, endOfDay(to))
	if err != nil {
		return nil, err
	}

	codes := []string{code}
	for _, e := range entries {
		codes = append(codes, counterpart(e, ref).String())
	}
	names, err := s.newLabeller(ctx, lang, codes)
	if err != nil {
		return nil, err
	}

	statement := &domain.AccountStatement{
		Account:        code,
		AccountName:    names.label(code),
		From:           from,
		To:             to,
		OpeningBalance: opening,
		Lines:          make([]domain.StatementLine, 0, len(entries)),
	}
	running := opening
	for _, e := range entries {
		effect := e.EffectOn(ref)
		running = running.Add(effect)
		line := domain.StatementLine{
			Entry:          e,
			Debit:          decimal.Zero,
			Credit:         decimal.Zero,
			RunningBalance: running,
		}
		if effect.IsNegative() {
			line.Credit = e.Amount
		} else {
			line.Debit = e.Amount
		}
		other := counterpart(e, ref)
		line.CounterAccount = other.String()
		line.CounterName = names.label(line.CounterAccount)
		statement.Lines = append(statement.Lines, line)
	}
	statement.ClosingBalance = running
	return statement, nil
}

func counterpart(e domain.LedgerEntry, account domain.AccountRef) domain.AccountRef {
	if e.DebitAccount == account {
		return e.CreditAccount
	}
	return e.DebitAccount
}
