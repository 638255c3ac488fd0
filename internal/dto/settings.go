package dto

// UpdateSettingsRequest changes posting policies. Nil fields are left untouched.
type UpdateSettingsRequest struct {
	PreventNegativeTreasury *bool `json:"preventNegativeTreasury"`
	PreventNegativeBank     *bool `json:"preventNegativeBank"`
}
