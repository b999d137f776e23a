// Package settings holds the operator-adjustable multiplier coefficients
// behind a small persistence port.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"todayrates/internal/adapters"
	"todayrates/internal/domain"
)

// Store reads and writes the settings blob. A missing or unreadable blob is
// not an error: defaults apply until a save succeeds.
type Store struct {
	kv adapters.SettingsKV
}

func NewStore(kv adapters.SettingsKV) *Store {
	return &Store{kv: kv}
}

// stored mirrors domain.Settings with optional fields, so a partial
// persisted blob stays valid: absent fields fall back to their defaults
// individually.
type stored struct {
	BlackMarketBuyMultiplier  *decimal.Decimal `json:"blackMarketBuyMultiplier"`
	BlackMarketSellMultiplier *decimal.Decimal `json:"blackMarketSellMultiplier"`
	Gold16PeyeOldMultiplier   *decimal.Decimal `json:"gold16PeyeOldMultiplier"`
	Gold16PeyeNewMultiplier   *decimal.Decimal `json:"gold16PeyeNewMultiplier"`
}

// Get returns the persisted settings merged field-by-field over the
// hardcoded defaults.
func (s *Store) Get() domain.Settings {
	out := domain.DefaultSettings()

	raw, ok, err := s.kv.Read(domain.SettingsKey)
	if err != nil {
		logrus.WithError(err).Warn("Failed to read settings, falling back to defaults")
		return out
	}
	if !ok {
		return out
	}

	var st stored
	if err := json.Unmarshal(raw, &st); err != nil {
		logrus.WithError(err).Warn("Failed to decode settings, falling back to defaults")
		return out
	}
	if st.BlackMarketBuyMultiplier != nil {
		out.BlackMarketBuyMultiplier = *st.BlackMarketBuyMultiplier
	}
	if st.BlackMarketSellMultiplier != nil {
		out.BlackMarketSellMultiplier = *st.BlackMarketSellMultiplier
	}
	if st.Gold16PeyeOldMultiplier != nil {
		out.Gold16PeyeOldMultiplier = *st.Gold16PeyeOldMultiplier
	}
	if st.Gold16PeyeNewMultiplier != nil {
		out.Gold16PeyeNewMultiplier = *st.Gold16PeyeNewMultiplier
	}
	return out
}

// Save validates and persists candidate. On a validation failure nothing is
// written and the previously saved settings stay in effect.
func (s *Store) Save(candidate domain.Settings) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(candidate)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.kv.Write(domain.SettingsKey, raw); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}

// Reset unconditionally overwrites the persisted state with the defaults
// and returns them.
func (s *Store) Reset() (domain.Settings, error) {
	defaults := domain.DefaultSettings()
	raw, err := json.Marshal(defaults)
	if err != nil {
		return defaults, fmt.Errorf("encode settings: %w", err)
	}
	if err := s.kv.Write(domain.SettingsKey, raw); err != nil {
		return defaults, fmt.Errorf("persist settings: %w", err)
	}
	return defaults, nil
}
