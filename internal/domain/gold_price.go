package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GoldType string

const (
	GoldWorld     GoldType = "world"
	Gold16PeyeOld GoldType = "16peye_old"
	Gold15PeyeOld GoldType = "15peye_old"
	Gold16PeyeNew GoldType = "16peye_new"
	Gold15PeyeNew GoldType = "15peye_new"
)

const (
	UnitTroyOunce = "oz"
	UnitKyatthar  = "kyatthar"
)

// goldTypeAliases maps the legacy spellings found in historical data onto the
// canonical codes. Aliases are accepted on input and normalized on write;
// they are never emitted.
var goldTypeAliases = map[string]GoldType{
	"16pae_old": Gold16PeyeOld,
	"15pae_old": Gold15PeyeOld,
	"16pae_new": Gold16PeyeNew,
	"15pae_new": Gold15PeyeNew,
}

// AllGoldTypes returns the canonical display order: world gold first, then
// the Myanmar grades old-system before new-system.
func AllGoldTypes() []GoldType {
	return []GoldType{GoldWorld, Gold16PeyeOld, Gold15PeyeOld, Gold16PeyeNew, Gold15PeyeNew}
}

// ParseGoldType normalizes a raw gold-type code, resolving legacy aliases.
func ParseGoldType(raw string) (GoldType, error) {
	code := strings.ToLower(strings.TrimSpace(raw))
	for _, t := range AllGoldTypes() {
		if code == string(t) {
			return t, nil
		}
	}
	if t, ok := goldTypeAliases[code]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown gold type %q", raw)
}

// Unit returns the weight unit prices of this gold type are quoted in.
func (t GoldType) Unit() string {
	if t == GoldWorld {
		return UnitTroyOunce
	}
	return UnitKyatthar
}

// IsWorld reports whether this is the world spot grade, which carries a
// single price instead of a buy/sell pair.
func (t GoldType) IsWorld() bool { return t == GoldWorld }

type GoldPrice struct {
	ID           uuid.UUID           `json:"id"`
	GoldType     GoldType            `json:"gold_type"`
	Unit         string              `json:"unit"`
	Price        decimal.NullDecimal `json:"price"`
	BuyingPrice  decimal.NullDecimal `json:"buying_price"`
	SellingPrice decimal.NullDecimal `json:"selling_price"`
	Date         time.Time           `json:"date"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedBy    uuid.NullUUID       `json:"updated_by"`
}

// Day returns the calendar-day grouping key.
func (g GoldPrice) Day() string { return g.Date.Format(DateLayout) }

// GoldPricePatch carries the updatable fields of a GoldPrice; nil fields are
// left untouched.
type GoldPricePatch struct {
	Price        *decimal.Decimal `json:"price"`
	BuyingPrice  *decimal.Decimal `json:"buying_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	Date         *time.Time       `json:"date"`
}

type GoldWithChange struct {
	GoldPrice
	PriceChange decimal.Decimal `json:"price_change"`
	BuyChange   decimal.Decimal `json:"buy_change"`
	SellChange  decimal.Decimal `json:"sell_change"`
}

// GoldGradeSection groups a Myanmar grade's quotes for the display day,
// newest first.
type GoldGradeSection struct {
	GoldType GoldType         `json:"gold_type"`
	Unit     string           `json:"unit"`
	Rows     []GoldWithChange `json:"rows"`
}

// GoldBoard is the gold landing-page view.
type GoldBoard struct {
	Date      string             `json:"date"`
	FellBack  bool               `json:"fell_back"`
	World     *GoldWithChange    `json:"world"`
	Grades    []GoldGradeSection `json:"grades"`
	UpdatedAt time.Time          `json:"updated_at"`
}
