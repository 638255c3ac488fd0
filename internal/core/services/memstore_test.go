package services_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/apperrors"
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/customs_clearance_ledger/internal/utils/accounting"
	"github.com/SscSPs/customs_clearance_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// memState is everything a transaction can change.
type memState struct {
	treasury     domain.Treasury
	treasuryTxns []domain.TreasuryTransaction
	bankAccounts map[string]domain.BankAccount
	entries      []domain.LedgerEntry
	vouchers     map[string]domain.Voucher
	runs         map[string]domain.PayrollRun
	codes        map[string]string // code -> "<docType>/<year>"
	settings     *domain.AppSettings
}

func (s memState) clone() memState {
	c := memState{
		treasury:     s.treasury,
		treasuryTxns: append([]domain.TreasuryTransaction(nil), s.treasuryTxns...),
		bankAccounts: make(map[string]domain.BankAccount, len(s.bankAccounts)),
		entries:      append([]domain.LedgerEntry(nil), s.entries...),
		vouchers:     make(map[string]domain.Voucher, len(s.vouchers)),
		runs:         make(map[string]domain.PayrollRun, len(s.runs)),
		codes:        make(map[string]string, len(s.codes)),
	}
	for k, v := range s.bankAccounts {
		c.bankAccounts[k] = v
	}
	for k, v := range s.vouchers {
		c.vouchers[k] = v
	}
	for k, v := range s.runs {
		v.Items = append([]domain.PayrollItem(nil), v.Items...)
		c.runs[k] = v
	}
	for k, v := range s.codes {
		c.codes[k] = v
	}
	if s.settings != nil {
		settings := *s.settings
		c.settings = &settings
	}
	return c
}

// memStore is an in-memory implementation of every repository port. Begin snapshots the state
// and Rollback restores it, so a failed operation leaves no trace, as with Postgres.
type memStore struct {
	mu       sync.Mutex
	state    memState
	snapshot *memState

	customers  map[string]string
	agents     map[string]string
	employees  map[string]domain.Employee
	banks      map[string]string
	categories map[string]string

	// failAt makes the n-th call (1-based) of the named method fail.
	failAt map[string]int
	calls  map[string]int

	// onLock runs whenever a money account row is locked.
	onLock func()
}

func newMemStore() *memStore {
	return &memStore{
		state: memState{
			bankAccounts: map[string]domain.BankAccount{},
			vouchers:     map[string]domain.Voucher{},
			runs:         map[string]domain.PayrollRun{},
			codes:        map[string]string{},
		},
		customers:  map[string]string{},
		agents:     map[string]string{},
		employees:  map[string]domain.Employee{},
		banks:      map[string]string{},
		categories: map[string]string{},
		failAt:     map[string]int{},
		calls:      map[string]int{},
	}
}

var errInjected = fmt.Errorf("%w: injected failure", apperrors.ErrInternal)

func (m *memStore) hit(method string) error {
	m.calls[method]++
	if n, ok := m.failAt[method]; ok && m.calls[method] == n {
		return errInjected
	}
	return nil
}

func (m *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:    m,
		LedgerRepo:   m,
		TreasuryRepo: m,
		BankRepo:     m,
		VoucherRepo:  m,
		PayrollRepo:  m,
		SequenceRepo: m,
		SettingsRepo: m,
		MasterData:   m,
		Reporting:    m,
	}
}

// --- TransactionManager ---

func (m *memStore) Begin(ctx context.Context) (pgx.Tx, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := m.state.clone()
	m.snapshot = &snap
	return nil, nil
}

func (m *memStore) Commit(ctx context.Context, tx pgx.Tx) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = nil
	return nil
}

func (m *memStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snapshot != nil {
		m.state = *m.snapshot
		m.snapshot = nil
	}
	return nil
}

// --- Ledger ---

func (m *memStore) InsertEntry(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	if err := m.hit("InsertEntry"); err != nil {
		return err
	}
	m.state.entries = append(m.state.entries, entry)
	return nil
}

func touches(e domain.LedgerEntry, account string) bool {
	return e.DebitAccount.String() == account || e.CreditAccount.String() == account
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func (m *memStore) SumAccount(ctx context.Context, account string) (decimal.Decimal, decimal.Decimal, error) {
	debit, credit := decimal.Zero, decimal.Zero
	for _, e := range m.state.entries {
		if e.DebitAccount.String() == account {
			debit = debit.Add(e.Amount)
		}
		if e.CreditAccount.String() == account {
			credit = credit.Add(e.Amount)
		}
	}
	return debit, credit, nil
}

func (m *memStore) NetBalanceBefore(ctx context.Context, account string, before time.Time) (decimal.Decimal, error) {
	debit, credit := decimal.Zero, decimal.Zero
	for _, e := range m.state.entries {
		if !e.CreatedAt.Before(before) {
			continue
		}
		if e.DebitAccount.String() == account {
			debit = debit.Add(e.Amount)
		}
		if e.CreditAccount.String() == account {
			credit = credit.Add(e.Amount)
		}
	}
	return accounting.NetBalance(debit, credit), nil
}

func (m *memStore) listEntries(account string, from, to *time.Time, limit int, desc bool) []domain.LedgerEntry {
	out := []domain.LedgerEntry{}
	for _, e := range m.state.entries {
		if account != "" && !touches(e, account) {
			continue
		}
		if inRange(e.CreatedAt, from, to) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// entryAfter orders entries by (createdAt, entryID) descending, as the keyset query does.
func entryAfter(a, b domain.LedgerEntry) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.EntryID > b.EntryID
}

func (m *memStore) listPage(account string, from, to *time.Time, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	all := m.listEntries(account, from, to, 0, true)
	sort.SliceStable(all, func(i, j int) bool { return entryAfter(all[i], all[j]) })

	if nextToken != nil && *nextToken != "" {
		createdAt, entryID, err := pagination.DecodeEntryCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor := domain.LedgerEntry{CreatedAt: createdAt, EntryID: entryID}
		rest := []domain.LedgerEntry{}
		for _, e := range all {
			if entryAfter(cursor, e) {
				rest = append(rest, e)
			}
		}
		all = rest
	}

	var next *string
	if len(all) > limit {
		all = all[:limit]
		last := all[len(all)-1]
		token := pagination.EncodeEntryCursor(last.CreatedAt, last.EntryID)
		next = &token
	}
	return all, next, nil
}

func (m *memStore) ListEntriesByAccount(ctx context.Context, account string, from, to *time.Time, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	return m.listPage(account, from, to, limit, nextToken)
}

func (m *memStore) ListEntries(ctx context.Context, from, to *time.Time, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	return m.listPage("", from, to, limit, nextToken)
}

func (m *memStore) ListEntriesByAccountAsc(ctx context.Context, account string, from, to time.Time) ([]domain.LedgerEntry, error) {
	return m.listEntries(account, &from, &to, 0, false), nil
}

// --- Reporting ---

func (m *memStore) GetAccountTotals(ctx context.Context, from *time.Time, to time.Time) ([]domain.AccountTotals, error) {
	byCode := map[string]*domain.AccountTotals{}
	leg := func(code string) *domain.AccountTotals {
		t, ok := byCode[code]
		if !ok {
			t = &domain.AccountTotals{Account: code, Debit: decimal.Zero, Credit: decimal.Zero}
			byCode[code] = t
		}
		return t
	}
	for _, e := range m.state.entries {
		if !inRange(e.CreatedAt, from, &to) {
			continue
		}
		d := leg(e.DebitAccount.String())
		d.Debit = d.Debit.Add(e.Amount)
		c := leg(e.CreditAccount.String())
		c.Credit = c.Credit.Add(e.Amount)
	}
	out := make([]domain.AccountTotals, 0, len(byCode))
	for _, t := range byCode {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Account < out[j].Account })
	return out, nil
}

// --- Treasury ---

func (m *memStore) GetTreasury(ctx context.Context) (*domain.Treasury, error) {
	t := m.state.treasury
	return &t, nil
}

func (m *memStore) ListTreasuryTransactions(ctx context.Context, from, to *time.Time, limit, offset int) ([]domain.TreasuryTransaction, error) {
	out := []domain.TreasuryTransaction{}
	for _, t := range m.state.treasuryTxns {
		if inRange(t.CreatedAt, from, to) {
			out = append(out, t)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) LastBalanceBefore(ctx context.Context, before time.Time) (decimal.Decimal, bool, error) {
	balance, found := decimal.Zero, false
	for _, t := range m.state.treasuryTxns {
		if t.CreatedAt.Before(before) {
			balance, found = t.BalanceAfter, true
		}
	}
	return balance, found, nil
}

func (m *memStore) LockTreasury(ctx context.Context, tx pgx.Tx) (*domain.Treasury, error) {
	if m.onLock != nil {
		m.onLock()
	}
	t := m.state.treasury
	return &t, nil
}

func (m *memStore) UpdateTreasuryBalance(ctx context.Context, tx pgx.Tx, newBalance decimal.Decimal, userID string, now time.Time) error {
	if err := m.hit("UpdateTreasuryBalance"); err != nil {
		return err
	}
	m.state.treasury.CurrentBalance = newBalance
	m.state.treasury.LastUpdatedAt = now
	m.state.treasury.LastUpdatedBy = userID
	return nil
}

func (m *memStore) SetTreasuryOpening(ctx context.Context, tx pgx.Tx, opening, current decimal.Decimal, userID string, now time.Time) error {
	if m.state.treasury.OpeningSetAt != nil {
		return fmt.Errorf("%w: treasury opening balance was already set", apperrors.ErrConflict)
	}
	m.state.treasury.OpeningBalance = opening
	m.state.treasury.CurrentBalance = current
	m.state.treasury.OpeningSetAt = &now
	m.state.treasury.OpeningSetBy = &userID
	m.state.treasury.LastUpdatedAt = now
	m.state.treasury.LastUpdatedBy = userID
	return nil
}

func (m *memStore) InsertTreasuryTransaction(ctx context.Context, tx pgx.Tx, txn domain.TreasuryTransaction) error {
	m.state.treasuryTxns = append(m.state.treasuryTxns, txn)
	return nil
}

// --- Bank accounts ---

func (m *memStore) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	acc, ok := m.state.bankAccounts[bankAccountID]
	if !ok {
		return nil, fmt.Errorf("%w: bank account %s", apperrors.ErrNotFound, bankAccountID)
	}
	return &acc, nil
}

func (m *memStore) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	out := make([]domain.BankAccount, 0, len(m.state.bankAccounts))
	for _, acc := range m.state.bankAccounts {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountNo < out[j].AccountNo })
	return out, nil
}

func (m *memStore) SaveBankAccount(ctx context.Context, tx pgx.Tx, account domain.BankAccount) error {
	for _, existing := range m.state.bankAccounts {
		if existing.AccountNo == account.AccountNo {
			return fmt.Errorf("%w: bank account %s", apperrors.ErrDuplicate, account.AccountNo)
		}
	}
	m.state.bankAccounts[account.BankAccountID] = account
	return nil
}

func (m *memStore) LockBankAccount(ctx context.Context, tx pgx.Tx, bankAccountID string) (*domain.BankAccount, error) {
	if m.onLock != nil {
		m.onLock()
	}
	return m.FindBankAccountByID(ctx, bankAccountID)
}

func (m *memStore) UpdateBankBalance(ctx context.Context, tx pgx.Tx, bankAccountID string, newBalance decimal.Decimal, userID string, now time.Time) error {
	acc, ok := m.state.bankAccounts[bankAccountID]
	if !ok {
		return fmt.Errorf("%w: bank account %s", apperrors.ErrNotFound, bankAccountID)
	}
	acc.CurrentBalance = newBalance
	acc.LastUpdatedAt = now
	acc.LastUpdatedBy = userID
	m.state.bankAccounts[bankAccountID] = acc
	return nil
}

// --- Vouchers ---

func (m *memStore) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	v, ok := m.state.vouchers[voucherID]
	if !ok {
		return nil, fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, voucherID)
	}
	return &v, nil
}

func (m *memStore) ListVouchers(ctx context.Context, f domain.VoucherFilter) ([]domain.Voucher, error) {
	out := []domain.Voucher{}
	for _, v := range m.state.vouchers {
		switch {
		case f.Type != nil && v.Type != *f.Type:
		case f.Method != nil && v.Method != *f.Method:
		case f.BankAccountID != nil && (v.BankAccountID == nil || *v.BankAccountID != *f.BankAccountID):
		case !inRange(v.Date, f.From, f.To):
		default:
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code > out[j].Code })
	return out, nil
}

func (m *memStore) SaveVoucher(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) error {
	if err := m.hit("SaveVoucher"); err != nil {
		return err
	}
	for _, v := range m.state.vouchers {
		if v.Code == voucher.Code {
			return fmt.Errorf("%w: voucher code %s", apperrors.ErrDuplicate, voucher.Code)
		}
	}
	m.state.vouchers[voucher.VoucherID] = voucher
	return nil
}

func (m *memStore) LockVoucher(ctx context.Context, tx pgx.Tx, voucherID string) (*domain.Voucher, error) {
	return m.FindVoucherByID(ctx, voucherID)
}

func (m *memStore) UpdateVoucher(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) error {
	current, ok := m.state.vouchers[voucher.VoucherID]
	if !ok {
		return fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, voucher.VoucherID)
	}
	voucher.Code = current.Code
	voucher.Type = current.Type
	voucher.Posted = current.Posted
	m.state.vouchers[voucher.VoucherID] = voucher
	return nil
}

// DeleteVoucher emulates ON DELETE SET NULL on the subledger and payroll items.
func (m *memStore) DeleteVoucher(ctx context.Context, tx pgx.Tx, voucherID string) error {
	if _, ok := m.state.vouchers[voucherID]; !ok {
		return fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, voucherID)
	}
	delete(m.state.vouchers, voucherID)
	for i, t := range m.state.treasuryTxns {
		if t.VoucherID != nil && *t.VoucherID == voucherID {
			m.state.treasuryTxns[i].VoucherID = nil
		}
	}
	for id, run := range m.state.runs {
		for i, it := range run.Items {
			if it.VoucherID != nil && *it.VoucherID == voucherID {
				run.Items[i].VoucherID = nil
			}
		}
		m.state.runs[id] = run
	}
	return nil
}

// --- Payroll ---

func (m *memStore) FindPayrollRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error) {
	run, ok := m.state.runs[runID]
	if !ok {
		return nil, fmt.Errorf("%w: payroll run %s", apperrors.ErrNotFound, runID)
	}
	run.Items = append([]domain.PayrollItem(nil), run.Items...)
	return &run, nil
}

func (m *memStore) ListPayrollRuns(ctx context.Context, limit, offset int) ([]domain.PayrollRun, error) {
	out := []domain.PayrollRun{}
	for _, run := range m.state.runs {
		run.Items = nil
		out = append(out, run)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out, nil
}

func (m *memStore) SavePayrollRun(ctx context.Context, tx pgx.Tx, run domain.PayrollRun) error {
	for _, existing := range m.state.runs {
		if existing.Month == run.Month {
			return fmt.Errorf("%w: payroll run %s", apperrors.ErrDuplicate, run.Month)
		}
	}
	run.Items = append([]domain.PayrollItem(nil), run.Items...)
	m.state.runs[run.RunID] = run
	return nil
}

func (m *memStore) LockPayrollRun(ctx context.Context, tx pgx.Tx, runID string) (*domain.PayrollRun, error) {
	return m.FindPayrollRunByID(ctx, runID)
}

func (m *memStore) ReplacePayrollItems(ctx context.Context, tx pgx.Tx, run domain.PayrollRun) error {
	current, ok := m.state.runs[run.RunID]
	if !ok {
		return fmt.Errorf("%w: payroll run %s", apperrors.ErrNotFound, run.RunID)
	}
	current.Items = append([]domain.PayrollItem(nil), run.Items...)
	current.TotalNet = run.TotalNet
	current.LastUpdatedAt = run.LastUpdatedAt
	current.LastUpdatedBy = run.LastUpdatedBy
	m.state.runs[run.RunID] = current
	return nil
}

func (m *memStore) UpdatePayrollRunStatus(ctx context.Context, tx pgx.Tx, run domain.PayrollRun) error {
	current, ok := m.state.runs[run.RunID]
	if !ok {
		return fmt.Errorf("%w: payroll run %s", apperrors.ErrNotFound, run.RunID)
	}
	current.Status = run.Status
	current.PaymentMethod = run.PaymentMethod
	current.BankAccountID = run.BankAccountID
	current.ApprovedAt = run.ApprovedAt
	current.ApprovedBy = run.ApprovedBy
	current.LastUpdatedAt = run.LastUpdatedAt
	current.LastUpdatedBy = run.LastUpdatedBy
	m.state.runs[run.RunID] = current
	return nil
}

func (m *memStore) LinkPayrollItemVoucher(ctx context.Context, tx pgx.Tx, itemID string, voucherID *string) error {
	if err := m.hit("LinkPayrollItemVoucher"); err != nil {
		return err
	}
	for id, run := range m.state.runs {
		for i, it := range run.Items {
			if it.ItemID == itemID {
				run.Items[i].VoucherID = voucherID
				m.state.runs[id] = run
				return nil
			}
		}
	}
	return fmt.Errorf("%w: payroll item %s", apperrors.ErrNotFound, itemID)
}

// --- Sequence ---

func codeScope(docType domain.DocumentType, year int) string {
	return fmt.Sprintf("%s/%d", docType, year)
}

func (m *memStore) CountCodes(ctx context.Context, tx pgx.Tx, docType domain.DocumentType, year int) (int, error) {
	n := 0
	for _, scope := range m.state.codes {
		if scope == codeScope(docType, year) {
			n++
		}
	}
	return n, nil
}

func (m *memStore) ReserveCode(ctx context.Context, tx pgx.Tx, docType domain.DocumentType, year int, code string, now time.Time) (bool, error) {
	if _, taken := m.state.codes[code]; taken {
		return false, nil
	}
	m.state.codes[code] = codeScope(docType, year)
	return true, nil
}

// --- Settings ---

func (m *memStore) GetSettings(ctx context.Context) (*domain.AppSettings, error) {
	if m.state.settings == nil {
		return nil, fmt.Errorf("%w: settings", apperrors.ErrNotFound)
	}
	s := *m.state.settings
	return &s, nil
}

func (m *memStore) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	m.state.settings = &settings
	return nil
}

// --- Master data ---

func (m *memStore) PartyExists(ctx context.Context, tx pgx.Tx, partyType domain.PartyType, partyID string) (bool, error) {
	switch partyType {
	case domain.PartyCustomer:
		_, ok := m.customers[partyID]
		return ok, nil
	case domain.PartyAgent:
		_, ok := m.agents[partyID]
		return ok, nil
	case domain.PartyEmployee:
		_, ok := m.employees[partyID]
		return ok, nil
	}
	return false, nil
}

func (m *memStore) ExpenseCategoryExists(ctx context.Context, tx pgx.Tx, categoryID string) (bool, error) {
	_, ok := m.categories[categoryID]
	return ok, nil
}

func (m *memStore) BankExists(ctx context.Context, tx pgx.Tx, bankID string) (bool, error) {
	_, ok := m.banks[bankID]
	return ok, nil
}

func (m *memStore) FindEmployeesByIDs(ctx context.Context, tx pgx.Tx, employeeIDs []string) (map[string]domain.Employee, error) {
	out := map[string]domain.Employee{}
	for _, id := range employeeIDs {
		if e, ok := m.employees[id]; ok {
			out[id] = e
		}
	}
	return out, nil
}

func (m *memStore) ListActiveEmployees(ctx context.Context, tx pgx.Tx) ([]domain.Employee, error) {
	out := []domain.Employee{}
	for _, e := range m.employees {
		if e.IsActive {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) ResolveAccountNames(ctx context.Context, refs []domain.AccountRef) (map[string]string, error) {
	out := map[string]string{}
	for _, ref := range refs {
		var name string
		var ok bool
		switch ref.Kind {
		case domain.KindCustomer:
			name, ok = m.customers[ref.ID]
		case domain.KindAgent:
			name, ok = m.agents[ref.ID]
		case domain.KindEmployee:
			var e domain.Employee
			e, ok = m.employees[ref.ID]
			name = e.Name
		case domain.KindExpense:
			name, ok = m.categories[ref.ID]
		case domain.KindBank:
			var acc domain.BankAccount
			acc, ok = m.state.bankAccounts[ref.ID]
			name = strings.TrimSpace(m.banks[acc.BankID] + " " + acc.AccountNo)
		}
		if ok {
			out[ref.String()] = name
		}
	}
	return out, nil
}

var (
	_ portsrepo.TransactionManager          = (*memStore)(nil)
	_ portsrepo.LedgerRepositoryFacade      = (*memStore)(nil)
	_ portsrepo.TreasuryRepositoryFacade    = (*memStore)(nil)
	_ portsrepo.BankAccountRepositoryFacade = (*memStore)(nil)
	_ portsrepo.VoucherRepositoryFacade     = (*memStore)(nil)
	_ portsrepo.PayrollRepositoryFacade     = (*memStore)(nil)
	_ portsrepo.SequenceRepository          = (*memStore)(nil)
	_ portsrepo.SettingsRepository          = (*memStore)(nil)
	_ portsrepo.MasterDataReader            = (*memStore)(nil)
	_ portsrepo.ReportingRepository         = (*memStore)(nil)
)
