package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one account code's totals as of a date.
type TrialBalanceRow struct {
	Account     string          `json:"account"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// AccountAmount represents an account with its net amount for financial reports
type AccountAmount struct {
	Account   string          `json:"account"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// IncomeStatement aggregates revenue:* and expense:* accounts over a period.
type IncomeStatement struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// TreasuryReport lists the cash subledger over a period.
type TreasuryReport struct {
	From           time.Time             `json:"from"`
	To             time.Time             `json:"to"`
	OpeningBalance decimal.Decimal       `json:"openingBalance"`
	ClosingBalance decimal.Decimal       `json:"closingBalance"`
	TotalIn        decimal.Decimal       `json:"totalIn"`
	TotalOut       decimal.Decimal       `json:"totalOut"`
	Transactions   []TreasuryTransaction `json:"transactions"`
}

// BankReport lists the vouchers moving money through one bank account.
type BankReport struct {
	BankAccount   BankAccount     `json:"bankAccount"`
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	TotalReceipts decimal.Decimal `json:"totalReceipts"`
	TotalPayments decimal.Decimal `json:"totalPayments"`
	Vouchers      []Voucher       `json:"vouchers"`
}

// StatementLine is a ledger entry seen from one account, with its running balance.
type StatementLine struct {
	Entry          LedgerEntry     `json:"entry"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	CounterAccount string          `json:"counterAccount"`
	CounterName    string          `json:"counterName"`
}

// AccountStatement is the per-entity statement (customer, agent, employee, bank, ...).
type AccountStatement struct {
	Account        string          `json:"account"`
	AccountName    string          `json:"accountName"`
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Lines          []StatementLine `json:"lines"`
}

// AccountTotals is the raw per-code aggregation of the journal.
type AccountTotals struct {
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}
