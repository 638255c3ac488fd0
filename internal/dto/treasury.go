package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetOpeningBalanceRequest sets the treasury opening balance (once).
type SetOpeningBalanceRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"dgte0"`
}

// CreateBankAccountRequest registers a bank account so its balance can be tracked.
type CreateBankAccountRequest struct {
	BankID         string          `json:"bankID" binding:"required"`
	AccountNo      string          `json:"accountNo" binding:"required"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"openingBalance" binding:"dgte0"`
}

// DateRangeParams is the common from/to query pair. Dates are inclusive days.
type DateRangeParams struct {
	From   *time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To     *time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
	Limit  int        `form:"limit,default=50"`
	Offset int        `form:"offset,default=0"`
}
