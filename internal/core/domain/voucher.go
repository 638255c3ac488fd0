package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType distinguishes money in from money out.
type VoucherType string

const (
	Receipt VoucherType = "RECEIPT"
	Payment VoucherType = "PAYMENT"
)

// PartyType identifies who the voucher is with.
type PartyType string

const (
	PartyCustomer PartyType = "CUSTOMER"
	PartyEmployee PartyType = "EMPLOYEE"
	PartyAgent    PartyType = "AGENT"
	PartyOther    PartyType = "OTHER"
)

// PaymentMethod is how money moved.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// Valid reports whether t is a known voucher type.
func (t VoucherType) Valid() bool { return t == Receipt || t == Payment }

// Valid reports whether p is a known party type.
func (p PartyType) Valid() bool {
	switch p {
	case PartyCustomer, PartyEmployee, PartyAgent, PartyOther:
		return true
	}
	return false
}

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool { return m == MethodCash || m == MethodBankTransfer }

// PostedEffect records the balance delta that was applied when the voucher was created.
// Removal reverses this, not the (possibly edited) voucher fields.
type PostedEffect struct {
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"method"`
	BankAccountID *string         `json:"bankAccountID,omitempty"`
}

// Voucher is a receipt or payment document.
type Voucher struct {
	VoucherID     string          `json:"voucherID"`
	Code          string          `json:"code"`
	Type          VoucherType     `json:"type"`
	PartyType     PartyType       `json:"partyType"`
	PartyID       *string         `json:"partyID,omitempty"`
	PartyName     string          `json:"partyName"`
	Method        PaymentMethod   `json:"method"`
	BankAccountID *string         `json:"bankAccountID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    *string         `json:"categoryID,omitempty"`
	Date          time.Time       `json:"date"`
	Note          string          `json:"note"`
	PayrollRunID  *string         `json:"payrollRunID,omitempty"`
	Posted        PostedEffect    `json:"posted"`
	AuditFields
}

// MoneyAccount is the treasury or bank account the voucher moves money through.
func (v Voucher) MoneyAccount() AccountRef {
	return MoneyAccountFor(v.Method, v.BankAccountID)
}

// MoneyAccountFor resolves a payment method to its ledger account.
func MoneyAccountFor(method PaymentMethod, bankAccountID *string) AccountRef {
	if method == MethodBankTransfer && bankAccountID != nil {
		return BankAccountRef(*bankAccountID)
	}
	return TreasuryAccount()
}

// CounterAccount is the non-money side of the voucher's posting.
func (v Voucher) CounterAccount() AccountRef {
	id := ""
	if v.PartyID != nil {
		id = *v.PartyID
	}
	switch v.PartyType {
	case PartyCustomer:
		return CustomerAccount(id)
	case PartyAgent:
		return AgentAccount(id)
	case PartyEmployee:
		return EmployeeAccount(id)
	}
	if v.Type == Payment && v.CategoryID != nil {
		return ExpenseAccount(*v.CategoryID)
	}
	return RevenueAccount(RevenueOther)
}

// Postings returns the debit and credit accounts for the voucher.
// A receipt debits the money account; a payment credits it.
func (v Voucher) Postings() (debit AccountRef, credit AccountRef) {
	if v.Type == Receipt {
		return v.MoneyAccount(), v.CounterAccount()
	}
	return v.CounterAccount(), v.MoneyAccount()
}

// VoucherFilter narrows ListVouchers.
type VoucherFilter struct {
	Type          *VoucherType
	Method        *PaymentMethod
	BankAccountID *string
	From          *time.Time
	To            *time.Time
	Limit         int
	Offset        int
}
