package dto

import (
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportPeriodParams defines the period query parameters shared by the reports.
type ReportPeriodParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To   *time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
}

// AsOfParams defines the query parameter of point-in-time reports.
type AsOfParams struct {
	AsOf *time.Time `form:"asOf" time_format:"2006-01-02" time_utc:"1"`
}

// TrialBalanceTotals sums the trial balance columns.
type TrialBalanceTotals struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse is the trial balance with its column totals. Debit always equals Credit.
type TrialBalanceResponse struct {
	AsOf   time.Time                `json:"asOf"`
	Rows   []domain.TrialBalanceRow `json:"rows"`
	Totals TrialBalanceTotals       `json:"totals"`
}

// ToTrialBalanceResponse sums the rows into a TrialBalanceResponse.
func ToTrialBalanceResponse(asOf time.Time, rows []domain.TrialBalanceRow) TrialBalanceResponse {
	totals := TrialBalanceTotals{Debit: decimal.Zero, Credit: decimal.Zero}
	for _, r := range rows {
		totals.Debit = totals.Debit.Add(r.Debit)
		totals.Credit = totals.Credit.Add(r.Credit)
	}
	if rows == nil {
		rows = []domain.TrialBalanceRow{}
	}
	return TrialBalanceResponse{AsOf: asOf, Rows: rows, Totals: totals}
}
