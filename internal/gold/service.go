// Package gold serves the gold-price views and admin CRUD. Derivation of
// gold quotes lives in the rate package's engine.
package gold

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"todayrates/internal/adapters"
	"todayrates/internal/domain"
	"todayrates/internal/history"
)

type Service struct {
	repo  adapters.GoldRepository
	cache adapters.BoardCache
	now   func() time.Time
}

func NewService(repo adapters.GoldRepository, cache adapters.BoardCache) *Service {
	return &Service{repo: repo, cache: cache, now: time.Now}
}

// Board builds the gold landing-page view: the newest world spot plus every
// Myanmar grade's quotes for the display day, with deltas against the
// comparison day, honoring the fixed three-day fallback window.
func (s *Service) Board(ctx context.Context) (*domain.GoldBoard, error) {
	if b, ok := s.cache.GoldBoard(); ok {
		return b, nil
	}

	now := s.now()
	today := now.Format(domain.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(domain.DateLayout)
	dayBefore := now.AddDate(0, 0, -2).Format(domain.DateLayout)

	rows, err := s.repo.QueryRange(ctx, adapters.GoldFilter{
		From: now.AddDate(0, 0, -2),
		To:   now,
	})
	if err != nil {
		return nil, err
	}

	groups := history.GroupByDate(rows, domain.GoldPrice.Day, func(g domain.GoldPrice) time.Time { return g.CreatedAt })
	ds := history.PickDisplaySet(groups, today, yesterday, dayBefore)

	// First compare-day entry per type; rows are newest-first.
	compare := make(map[domain.GoldType]domain.GoldPrice, len(ds.Compare))
	for _, g := range ds.Compare {
		if _, ok := compare[g.GoldType]; !ok {
			compare[g.GoldType] = g
		}
	}

	board := &domain.GoldBoard{Date: ds.Date, FellBack: ds.FellBack}
	if len(ds.Rows) > 0 {
		board.UpdatedAt = ds.Rows[0].CreatedAt
	}

	byType := lo.GroupBy(ds.Rows, func(g domain.GoldPrice) domain.GoldType { return g.GoldType })

	if world, ok := byType[domain.GoldWorld]; ok && len(world) > 0 {
		w := annotate(world[0], compare)
		board.World = &w
	}

	for _, t := range domain.AllGoldTypes() {
		if t.IsWorld() {
			continue
		}
		entries, ok := byType[t]
		if !ok {
			continue
		}
		section := domain.GoldGradeSection{GoldType: t, Unit: t.Unit(), Rows: make([]domain.GoldWithChange, 0, len(entries))}
		for _, g := range entries {
			section.Rows = append(section.Rows, annotate(g, compare))
		}
		board.Grades = append(board.Grades, section)
	}

	s.cache.SetGoldBoard(board)
	return board, nil
}

// annotate computes deltas against the comparison day's first entry of the
// same gold type. No comparison entry means zero deltas.
func annotate(g domain.GoldPrice, compare map[domain.GoldType]domain.GoldPrice) domain.GoldWithChange {
	out := domain.GoldWithChange{GoldPrice: g}
	c, ok := compare[g.GoldType]
	if !ok {
		return out
	}
	if g.Price.Valid && c.Price.Valid {
		out.PriceChange = g.Price.Decimal.Sub(c.Price.Decimal)
	}
	if g.BuyingPrice.Valid && c.BuyingPrice.Valid {
		out.BuyChange = g.BuyingPrice.Decimal.Sub(c.BuyingPrice.Decimal)
	}
	if g.SellingPrice.Valid && c.SellingPrice.Valid {
		out.SellChange = g.SellingPrice.Decimal.Sub(c.SellingPrice.Decimal)
	}
	return out
}

// History returns day-grouped, delta-annotated prices for one gold type.
func (s *Service) History(ctx context.Context, f adapters.GoldFilter) ([]history.Group[domain.GoldWithChange], error) {
	rows, err := s.repo.QueryRange(ctx, f)
	if err != nil {
		return nil, err
	}

	value := func(get func(domain.GoldPrice) decimal.NullDecimal) func(domain.GoldPrice) decimal.Decimal {
		return func(g domain.GoldPrice) decimal.Decimal {
			if v := get(g); v.Valid {
				return v.Decimal
			}
			return decimal.Zero
		}
	}
	priceDeltas := history.Deltas(rows, value(func(g domain.GoldPrice) decimal.NullDecimal { return g.Price }))
	buyDeltas := history.Deltas(rows, value(func(g domain.GoldPrice) decimal.NullDecimal { return g.BuyingPrice }))
	sellDeltas := history.Deltas(rows, value(func(g domain.GoldPrice) decimal.NullDecimal { return g.SellingPrice }))

	annotated := make([]domain.GoldWithChange, len(rows))
	for i, g := range rows {
		annotated[i] = domain.GoldWithChange{GoldPrice: g, PriceChange: priceDeltas[i], BuyChange: buyDeltas[i], SellChange: sellDeltas[i]}
	}

	return history.GroupByDate(annotated,
		func(g domain.GoldWithChange) string { return g.Day() },
		func(g domain.GoldWithChange) time.Time { return g.CreatedAt },
	), nil
}

// InsertMany persists manually entered or derived prices, filling defaults
// for omitted fields.
func (s *Service) InsertMany(ctx context.Context, rows []domain.GoldPrice) ([]domain.GoldPrice, error) {
	now := s.now()
	for i := range rows {
		if rows[i].Unit == "" {
			rows[i].Unit = rows[i].GoldType.Unit()
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

func (s *Service) Update(ctx context.Context, id uuid.UUID, patch domain.GoldPricePatch, updatedBy uuid.NullUUID) error {
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
