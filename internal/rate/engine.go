package rate

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"todayrates/internal/currency"
	"todayrates/internal/domain"
)

// quotePlaces is the rounding applied to every derived value: two decimal
// places, ties away from zero.
const quotePlaces = 2

var (
	dSixteen   = decimal.NewFromInt(16)
	dSeventeen = decimal.NewFromInt(17)
)

// Quote is one derived retail buy/sell pair against the local currency.
type Quote struct {
	Code    string
	Buying  decimal.Decimal
	Selling decimal.Decimal
}

// GoldQuote is one derived gold price row. World gold carries Price only;
// Myanmar grades carry the Buying/Selling pair.
type GoldQuote struct {
	Type    domain.GoldType
	Unit    string
	Price   decimal.NullDecimal
	Buying  decimal.NullDecimal
	Selling decimal.NullDecimal
}

// Engine converts spot data into the full retail quote set. It performs no
// I/O; settings are passed per call, never read as ambient state.
type Engine struct {
	goldSellSpread decimal.Decimal
}

type EngineOption func(*Engine)

// WithGoldSellSpread sets the multiplier applied to the selling side of
// Myanmar gold grades. The default of 1 reproduces the historical behavior
// of quoting the same value on both sides.
func WithGoldSellSpread(m decimal.Decimal) EngineOption {
	return func(e *Engine) { e.goldSellSpread = m }
}

func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{goldSellSpread: decimal.NewFromInt(1)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LocalRates returns the unrounded retail buy/sell quotes for USD against
// the local currency.
func LocalRates(usdToLocal decimal.Decimal, s domain.Settings) (buy, sell decimal.Decimal) {
	return usdToLocal.Mul(s.BlackMarketBuyMultiplier), usdToLocal.Mul(s.BlackMarketSellMultiplier)
}

// DeriveRates computes retail buy/sell quotes for every tracked currency.
//
// usdToLocal is local-currency units per USD; foreign maps each tracked code
// to its spot value in USD per unit of that code. Tracked codes absent from
// the table (or carrying a non-positive value) are skipped with a warning
// and returned in missing — partial results are acceptable. A missing or
// non-positive USD spot, or malformed settings, aborts the whole derivation.
func (e *Engine) DeriveRates(usdToLocal decimal.Decimal, foreign map[string]decimal.Decimal, s domain.Settings) (quotes []Quote, missing []string, err error) {
	if err := s.Validate(); err != nil {
		return nil, nil, fmt.Errorf("derive rates: %w", err)
	}
	if usdToLocal.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("derive rates: usd spot %s: %w", usdToLocal, domain.ErrInvalidSpotData)
	}

	localBuy, localSell := LocalRates(usdToLocal, s)

	quotes = make([]Quote, 0, len(currency.CanonicalOrder()))
	for _, code := range currency.CanonicalOrder() {
		if code == domain.QuoteCurrency {
			continue
		}
		if code == "USD" {
			quotes = append(quotes, Quote{
				Code:    code,
				Buying:  localBuy.Round(quotePlaces),
				Selling: localSell.Round(quotePlaces),
			})
			continue
		}

		r, ok := foreign[code]
		if !ok || r.LessThanOrEqual(decimal.Zero) {
			logrus.Warnf("Spot rate not found for %s, skipping", code)
			missing = append(missing, code)
			continue
		}
		quotes = append(quotes, Quote{
			Code:    code,
			Buying:  localBuy.Div(r).Round(quotePlaces),
			Selling: localSell.Div(r).Round(quotePlaces),
		})
	}
	return quotes, missing, nil
}

// DeriveGold computes the world gold row and the four Myanmar grade rows.
//
// worldSpot is USD per troy ounce; localSell is the unrounded retail USD
// selling rate in local currency. For each era the 16-grade price is
// (worldSpot / multiplier) × localSell, and the paired 15-grade price is the
// 16-grade price scaled by 16/17.
func (e *Engine) DeriveGold(worldSpot, localSell decimal.Decimal, s domain.Settings) ([]GoldQuote, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("derive gold: %w", err)
	}
	if worldSpot.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("derive gold: world spot %s: %w", worldSpot, domain.ErrInvalidSpotData)
	}
	if localSell.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("derive gold: local sell rate %s: %w", localSell, domain.ErrInvalidSpotData)
	}

	world := GoldQuote{
		Type:  domain.GoldWorld,
		Unit:  domain.UnitTroyOunce,
		Price: decimal.NewNullDecimal(worldSpot.Round(quotePlaces)),
	}

	p16Old := worldSpot.Div(s.Gold16PeyeOldMultiplier).Mul(localSell)
	p16New := worldSpot.Div(s.Gold16PeyeNewMultiplier).Mul(localSell)

	out := []GoldQuote{
		world,
		e.myanmarQuote(domain.Gold16PeyeOld, p16Old),
		e.myanmarQuote(domain.Gold15PeyeOld, p16Old.Mul(dSixteen).Div(dSeventeen)),
		e.myanmarQuote(domain.Gold16PeyeNew, p16New),
		e.myanmarQuote(domain.Gold15PeyeNew, p16New.Mul(dSixteen).Div(dSeventeen)),
	}
	return out, nil
}

func (e *Engine) myanmarQuote(t domain.GoldType, price decimal.Decimal) GoldQuote {
	return GoldQuote{
		Type:    t,
		Unit:    domain.UnitKyatthar,
		Buying:  decimal.NewNullDecimal(price.Round(quotePlaces)),
		Selling: decimal.NewNullDecimal(price.Mul(e.goldSellSpread).Round(quotePlaces)),
	}
}
