package rate

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"todayrates/internal/adapters"
	"todayrates/internal/currency"
	"todayrates/internal/domain"
	"todayrates/internal/history"
)

type Service struct {
	repo  adapters.RateRepository
	cache adapters.BoardCache
	now   func() time.Time
}

func NewService(repo adapters.RateRepository, cache adapters.BoardCache) *Service {
	return &Service{repo: repo, cache: cache, now: time.Now}
}

// Board builds the landing-page view: the newest quote per currency for the
// display day with deltas against the comparison day, honoring the fixed
// three-day fallback window.
func (s *Service) Board(ctx context.Context) (*domain.RateBoard, error) {
	if b, ok := s.cache.RateBoard(); ok {
		return b, nil
	}

	now := s.now()
	today := now.Format(domain.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(domain.DateLayout)
	dayBefore := now.AddDate(0, 0, -2).Format(domain.DateLayout)

	rows, err := s.repo.QueryRange(ctx, adapters.RateFilter{
		From: now.AddDate(0, 0, -2),
		To:   now,
	})
	if err != nil {
		return nil, err
	}

	groups := history.GroupByDate(rows, domain.ExchangeRate.Day, func(r domain.ExchangeRate) time.Time { return r.CreatedAt })
	ds := history.PickDisplaySet(groups, today, yesterday, dayBefore)

	// Rows are newest-first, so UniqBy keeps the latest quote per currency.
	latest := lo.UniqBy(ds.Rows, func(r domain.ExchangeRate) string { return r.CurrencyFrom })

	prev := make(map[string]domain.ExchangeRate, len(ds.Compare))
	for _, r := range ds.Compare {
		if _, ok := prev[r.CurrencyFrom]; !ok {
			prev[r.CurrencyFrom] = r
		}
	}

	board := &domain.RateBoard{Date: ds.Date, FellBack: ds.FellBack, Rates: make([]domain.RateWithChange, 0, len(latest))}
	for _, r := range latest {
		rc := domain.RateWithChange{ExchangeRate: r}
		if p, ok := prev[r.CurrencyFrom]; ok {
			rc.BuyChange = r.BuyingRate.Sub(p.BuyingRate)
			rc.SellChange = r.SellingRate.Sub(p.SellingRate)
		}
		board.Rates = append(board.Rates, rc)
	}
	sort.SliceStable(board.Rates, func(i, j int) bool {
		return currency.OrderIndex(board.Rates[i].CurrencyFrom) < currency.OrderIndex(board.Rates[j].CurrencyFrom)
	})
	if len(ds.Rows) > 0 {
		board.UpdatedAt = ds.Rows[0].CreatedAt
	}

	s.cache.SetRateBoard(board)
	return board, nil
}

// History returns day-grouped, delta-annotated quotes. Deltas are computed
// against the chronologically preceding row within the fetched page.
func (s *Service) History(ctx context.Context, f adapters.RateFilter) ([]history.Group[domain.RateWithChange], error) {
	rows, err := s.repo.QueryRange(ctx, f)
	if err != nil {
		return nil, err
	}

	buyDeltas := history.Deltas(rows, func(r domain.ExchangeRate) decimal.Decimal { return r.BuyingRate })
	sellDeltas := history.Deltas(rows, func(r domain.ExchangeRate) decimal.Decimal { return r.SellingRate })

	annotated := make([]domain.RateWithChange, len(rows))
	for i, r := range rows {
		annotated[i] = domain.RateWithChange{ExchangeRate: r, BuyChange: buyDeltas[i], SellChange: sellDeltas[i]}
	}

	return history.GroupByDate(annotated,
		func(r domain.RateWithChange) string { return r.Day() },
		func(r domain.RateWithChange) time.Time { return r.CreatedAt },
	), nil
}

// InsertMany persists manually entered or derived quotes, filling defaults
// for omitted fields.
func (s *Service) InsertMany(ctx context.Context, rows []domain.ExchangeRate) ([]domain.ExchangeRate, error) {
	now := s.now()
	for i := range rows {
		if rows[i].CurrencyTo == "" {
			rows[i].CurrencyTo = domain.QuoteCurrency
		}
		if rows[i].CreatedAt.IsZero() {
			rows[i].CreatedAt = now
		}
		if rows[i].Date.IsZero() {
			rows[i].Date = rows[i].CreatedAt
		}
	}
	inserted, err := s.repo.InsertMany(ctx, rows)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	return inserted, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, patch domain.ExchangeRatePatch, updatedBy uuid.NullUUID) error {
	if err := s.repo.UpdateOne(ctx, id, patch, updatedBy); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteOne(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}
