package domain

import (
	"github.com/shopspring/decimal"
)

// SettingsKey is the well-known key the settings blob is persisted under.
const SettingsKey = "todayrates_settings"

// Settings holds the operator-adjustable multiplier coefficients the
// derivation engine runs with.
type Settings struct {
	BlackMarketBuyMultiplier  decimal.Decimal `json:"blackMarketBuyMultiplier"`
	BlackMarketSellMultiplier decimal.Decimal `json:"blackMarketSellMultiplier"`
	Gold16PeyeOldMultiplier   decimal.Decimal `json:"gold16PeyeOldMultiplier"`
	Gold16PeyeNewMultiplier   decimal.Decimal `json:"gold16PeyeNewMultiplier"`
}

// DefaultSettings returns the hardcoded coefficients used until an operator
// saves their own.
func DefaultSettings() Settings {
	return Settings{
		BlackMarketBuyMultiplier:  decimal.RequireFromString("1.8887"),
		BlackMarketSellMultiplier: decimal.RequireFromString("1.9381"),
		Gold16PeyeOldMultiplier:   decimal.RequireFromString("1.875"),
		Gold16PeyeNewMultiplier:   decimal.RequireFromString("1.905"),
	}
}

// Validate checks every multiplier is positive and the buy multiplier stays
// below the sell multiplier. Failures carry the offending field name.
func (s Settings) Validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"blackMarketBuyMultiplier", s.BlackMarketBuyMultiplier},
		{"blackMarketSellMultiplier", s.BlackMarketSellMultiplier},
		{"gold16PeyeOldMultiplier", s.Gold16PeyeOldMultiplier},
		{"gold16PeyeNewMultiplier", s.Gold16PeyeNewMultiplier},
	}
	for _, f := range fields {
		if f.value.LessThanOrEqual(decimal.Zero) {
			return &ValidationError{Field: f.name, Reason: "must be a positive number"}
		}
	}
	if s.BlackMarketBuyMultiplier.GreaterThanOrEqual(s.BlackMarketSellMultiplier) {
		return &ValidationError{Field: "blackMarketBuyMultiplier", Reason: "must be lower than blackMarketSellMultiplier"}
	}
	return nil
}
