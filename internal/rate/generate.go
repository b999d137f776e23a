package rate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"todayrates/internal/adapters"
	"todayrates/internal/domain"
	"todayrates/internal/settings"
)

// Generator runs the full derivation pipeline: fetch the two spot feeds,
// derive the retail quote set with the current settings, and write both
// record kinds as independent batch inserts.
type Generator struct {
	fxFeed   adapters.FXFeed
	goldFeed adapters.GoldFeed
	settings *settings.Store
	engine   *Engine
	rates    adapters.RateRepository
	gold     adapters.GoldRepository
	cache    adapters.BoardCache
	now      func() time.Time
}

func NewGenerator(
	fxFeed adapters.FXFeed,
	goldFeed adapters.GoldFeed,
	settingsStore *settings.Store,
	engine *Engine,
	rates adapters.RateRepository,
	gold adapters.GoldRepository,
	cache adapters.BoardCache,
) *Generator {
	return &Generator{
		fxFeed:   fxFeed,
		goldFeed: goldFeed,
		settings: settingsStore,
		engine:   engine,
		rates:    rates,
		gold:     gold,
		cache:    cache,
		now:      time.Now,
	}
}

type spotData struct {
	fxTable  map[string]decimal.Decimal
	fxErr    error
	goldSpot decimal.Decimal
	goldErr  error
}

// fetchSpots issues the two independent feed calls concurrently and joins
// the results.
func (g *Generator) fetchSpots(ctx context.Context) spotData {
	var (
		spots spotData
		wg    sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		spots.fxTable, spots.fxErr = g.fxFeed.LatestRates(ctx)
	}()
	go func() {
		defer wg.Done()
		spots.goldSpot, spots.goldErr = g.goldFeed.SpotPrice(ctx)
	}()
	wg.Wait()
	return spots
}

// Generate derives and persists the full quote set for the given calendar
// day, stamped with updatedBy (unset for scheduled runs).
//
// An FX feed failure aborts the whole run: the USD/MMK spot also prices the
// Myanmar gold grades. A gold feed failure aborts only the gold half; the
// rates half still runs, and the report carries the gold error so the
// caller can retry just that half. The two inserts are deliberately not
// wrapped in a shared transaction.
func (g *Generator) Generate(ctx context.Context, date time.Time, updatedBy uuid.NullUUID) (*domain.GenerateReport, error) {
	execID := uuid.NewString()
	cfg := g.settings.Get()

	spots := g.fetchSpots(ctx)
	if spots.fxErr != nil {
		return nil, fmt.Errorf("generate %s: %w", execID, spots.fxErr)
	}

	usdSpot, ok := spots.fxTable[domain.QuoteCurrency]
	if !ok {
		return nil, fmt.Errorf("generate %s: %s rate not found in feed response: %w", execID, domain.QuoteCurrency, domain.ErrInvalidSpotData)
	}

	quotes, missing, err := g.engine.DeriveRates(usdSpot, spots.fxTable, cfg)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", execID, err)
	}

	now := g.now()
	report := &domain.GenerateReport{Rates: domain.Outcome{Missing: missing}}

	rateRows := make([]domain.ExchangeRate, 0, len(quotes))
	for _, q := range quotes {
		rateRows = append(rateRows, domain.ExchangeRate{
			CurrencyFrom: q.Code,
			CurrencyTo:   domain.QuoteCurrency,
			BuyingRate:   q.Buying,
			SellingRate:  q.Selling,
			Date:         date,
			CreatedAt:    now,
			UpdatedBy:    updatedBy,
		})
	}
	if inserted, insErr := g.rates.InsertMany(ctx, rateRows); insErr != nil {
		logrus.WithError(insErr).Errorf("Rates batch insert failed; execID: %s", execID)
		report.Rates.Error = insErr.Error()
	} else {
		report.Rates.Inserted = len(inserted)
	}

	report.Gold = g.generateGold(ctx, spots, usdSpot, cfg, date, now, updatedBy, execID)

	g.cache.Invalidate()
	logrus.Infof("Generation finished: %d rates, %d gold rows, %d missing codes; execID: %s",
		report.Rates.Inserted, report.Gold.Inserted, len(missing), execID)
	return report, nil
}

func (g *Generator) generateGold(
	ctx context.Context,
	spots spotData,
	usdSpot decimal.Decimal,
	cfg domain.Settings,
	date, now time.Time,
	updatedBy uuid.NullUUID,
	execID string,
) domain.Outcome {
	if spots.goldErr != nil {
		logrus.WithError(spots.goldErr).Errorf("Gold feed failed, skipping gold half; execID: %s", execID)
		return domain.Outcome{Error: spots.goldErr.Error()}
	}

	_, localSell := LocalRates(usdSpot, cfg)
	goldQuotes, err := g.engine.DeriveGold(spots.goldSpot, localSell, cfg)
	if err != nil {
		logrus.WithError(err).Errorf("Gold derivation failed; execID: %s", execID)
		return domain.Outcome{Error: err.Error()}
	}

	goldRows := make([]domain.GoldPrice, 0, len(goldQuotes))
	for _, q := range goldQuotes {
		goldRows = append(goldRows, domain.GoldPrice{
			GoldType:     q.Type,
			Unit:         q.Unit,
			Price:        q.Price,
			BuyingPrice:  q.Buying,
			SellingPrice: q.Selling,
			Date:         date,
			CreatedAt:    now,
			UpdatedBy:    updatedBy,
		})
	}
	inserted, err := g.gold.InsertMany(ctx, goldRows)
	if err != nil {
		logrus.WithError(err).Errorf("Gold batch insert failed; execID: %s", execID)
		return domain.Outcome{Error: err.Error()}
	}
	return domain.Outcome{Inserted: len(inserted)}
}

// Preview derives the quote set without writing anything, for the admin
// form's prefill.
func (g *Generator) Preview(ctx context.Context) ([]Quote, []GoldQuote, []string, error) {
	cfg := g.settings.Get()

	spots := g.fetchSpots(ctx)
	if spots.fxErr != nil {
		return nil, nil, nil, fmt.Errorf("preview: %w", spots.fxErr)
	}
	usdSpot, ok := spots.fxTable[domain.QuoteCurrency]
	if !ok {
		return nil, nil, nil, fmt.Errorf("preview: %s rate not found in feed response: %w", domain.QuoteCurrency, domain.ErrInvalidSpotData)
	}

	quotes, missing, err := g.engine.DeriveRates(usdSpot, spots.fxTable, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("preview: %w", err)
	}

	var goldQuotes []GoldQuote
	if spots.goldErr != nil {
		logrus.WithError(spots.goldErr).Warn("Gold feed failed, preview contains rates only")
	} else {
		_, localSell := LocalRates(usdSpot, cfg)
		if goldQuotes, err = g.engine.DeriveGold(spots.goldSpot, localSell, cfg); err != nil {
			return nil, nil, nil, fmt.Errorf("preview: %w", err)
		}
	}
	return quotes, goldQuotes, missing, nil
}
