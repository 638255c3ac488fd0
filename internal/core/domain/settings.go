package domain

import "time"

// AppSettings are the organisation-wide posting policies.
type AppSettings struct {
	PreventNegativeTreasury bool      `json:"preventNegativeTreasury"`
	PreventNegativeBank     bool      `json:"preventNegativeBank"`
	UpdatedAt               time.Time `json:"updatedAt"`
	UpdatedBy               string    `json:"updatedBy"`
}

// GuardsAccount reports whether outflows from account must not overdraw it.
func (s AppSettings) GuardsAccount(account AccountRef) bool {
	switch account.Kind {
	case KindTreasury:
		return s.PreventNegativeTreasury
	case KindBank:
		return s.PreventNegativeBank
	}
	return false
}
