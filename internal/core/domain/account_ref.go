package domain

import (
	"fmt"
	"strings"
)

// AccountKind is the tag of an AccountRef.
type AccountKind string

const (
	KindTreasury AccountKind = "treasury"
	KindBank     AccountKind = "bank"
	KindCustomer AccountKind = "customer"
	KindAgent    AccountKind = "agent"
	KindEmployee AccountKind = "employee"
	KindExpense  AccountKind = "expense"
	KindRevenue  AccountKind = "revenue"
	KindEquity   AccountKind = "equity"
	KindOther    AccountKind = "other"
)

// Static labels used by the engines.
const (
	ExpenseShipping    = "shipping"
	ExpenseAgentFees   = "agent_fees"
	RevenueOther       = "other"
	EquityOpeningLabel = "opening_balance"
)

// AccountRef identifies a ledger account. It serializes to the opaque string stored in
// ledger_entries: "treasury" for the cash singleton, "<kind>:<id>" for everything else.
type AccountRef struct {
	Kind AccountKind `json:"kind"`
	ID   string      `json:"id,omitempty"`
}

func TreasuryAccount() AccountRef            { return AccountRef{Kind: KindTreasury} }
func BankAccountRef(id string) AccountRef    { return AccountRef{Kind: KindBank, ID: id} }
func CustomerAccount(id string) AccountRef   { return AccountRef{Kind: KindCustomer, ID: id} }
func AgentAccount(id string) AccountRef      { return AccountRef{Kind: KindAgent, ID: id} }
func EmployeeAccount(id string) AccountRef   { return AccountRef{Kind: KindEmployee, ID: id} }
func ExpenseAccount(label string) AccountRef { return AccountRef{Kind: KindExpense, ID: label} }
func RevenueAccount(label string) AccountRef { return AccountRef{Kind: KindRevenue, ID: label} }
func EquityAccount(label string) AccountRef  { return AccountRef{Kind: KindEquity, ID: label} }

// String renders the storage code.
func (a AccountRef) String() string {
	if a.Kind == KindTreasury || (a.Kind == KindOther && a.ID == "") {
		return string(a.Kind)
	}
	return string(a.Kind) + ":" + a.ID
}

// IsZero reports whether the ref was never set.
func (a AccountRef) IsZero() bool {
	return a.Kind == ""
}

// IsMoneyAccount reports whether the account is cash or a bank account.
func (a AccountRef) IsMoneyAccount() bool {
	return a.Kind == KindTreasury || a.Kind == KindBank
}

// Validate checks the ref is well formed for its kind.
func (a AccountRef) Validate() error {
	switch a.Kind {
	case KindTreasury:
		if a.ID != "" {
			return fmt.Errorf("treasury account takes no id, got %q", a.ID)
		}
	case KindBank, KindCustomer, KindAgent, KindEmployee, KindExpense, KindRevenue, KindEquity:
		if strings.TrimSpace(a.ID) == "" {
			return fmt.Errorf("account kind %q requires an id", a.Kind)
		}
		if strings.Contains(a.ID, ":") {
			return fmt.Errorf("account id %q must not contain ':'", a.ID)
		}
	case KindOther:
	default:
		return fmt.Errorf("unknown account kind %q", a.Kind)
	}
	return nil
}

// ParseAccountRef parses a storage code back into an AccountRef.
func ParseAccountRef(code string) (AccountRef, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return AccountRef{}, fmt.Errorf("empty account code")
	}
	kind, id, hasID := strings.Cut(code, ":")
	ref := AccountRef{Kind: AccountKind(kind)}
	if hasID {
		ref.ID = id
	}
	if err := ref.Validate(); err != nil {
		return AccountRef{}, err
	}
	return ref, nil
}
