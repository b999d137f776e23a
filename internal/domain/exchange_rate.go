package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteCurrency is the fixed local currency every rate is quoted against.
const QuoteCurrency = "MMK"

// DateLayout is the calendar-day key used for grouping and fallback logic.
const DateLayout = "2006-01-02"

type ExchangeRate struct {
	ID           uuid.UUID       `json:"id"`
	CurrencyFrom string          `json:"currency_from"`
	CurrencyTo   string          `json:"currency_to"`
	BuyingRate   decimal.Decimal `json:"buying_rate"`
	SellingRate  decimal.Decimal `json:"selling_rate"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedBy    uuid.NullUUID   `json:"updated_by"`
}

// Day returns the calendar-day grouping key.
func (r ExchangeRate) Day() string { return r.Date.Format(DateLayout) }

// ExchangeRatePatch carries the updatable fields of an ExchangeRate; nil
// fields are left untouched.
type ExchangeRatePatch struct {
	BuyingRate  *decimal.Decimal `json:"buying_rate"`
	SellingRate *decimal.Decimal `json:"selling_rate"`
	Date        *time.Time       `json:"date"`
}

// RateWithChange is an ExchangeRate annotated with the delta against the
// chronologically preceding quote of the same currency.
type RateWithChange struct {
	ExchangeRate
	BuyChange  decimal.Decimal `json:"buy_change"`
	SellChange decimal.Decimal `json:"sell_change"`
}

// RateBoard is the landing-page view: the newest quote per currency for the
// display day, with deltas against the comparison day.
type RateBoard struct {
	Date      string           `json:"date"`
	FellBack  bool             `json:"fell_back"`
	Rates     []RateWithChange `json:"rates"`
	UpdatedAt time.Time        `json:"updated_at"`
}
