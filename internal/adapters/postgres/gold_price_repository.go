package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"todayrates/internal/adapters"
	"todayrates/internal/domain"
)

type GoldPriceRepository struct {
	pool *pgxpool.Pool
}

func NewGoldPriceRepository(pool *pgxpool.Pool) *GoldPriceRepository {
	return &GoldPriceRepository{pool: pool}
}

func (r *GoldPriceRepository) InsertMany(ctx context.Context, rows []domain.GoldPrice) ([]domain.GoldPrice, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	const q = `
		insert into gold_prices (gold_type, unit, price, buying_price, selling_price, date, created_at, updated_by)
		values ($1, $2, $3, $4, $5, $6, $7, $8)
		returning id;
	`

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(q, row.GoldType, row.Unit, row.Price, row.BuyingPrice, row.SellingPrice, row.Date, row.CreatedAt, row.UpdatedBy)
	}

	br := tx.SendBatch(ctx, batch)
	inserted := make([]domain.GoldPrice, 0, len(rows))
	for _, row := range rows {
		if err = br.QueryRow().Scan(&row.ID); err != nil {
			_ = br.Close()
			return nil, fmt.Errorf("failed to insert gold price for %q: %w", row.GoldType, err)
		}
		inserted = append(inserted, row)
	}
	if err = br.Close(); err != nil {
		return nil, fmt.Errorf("failed to close batch: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return inserted, nil
}

func (r *GoldPriceRepository) UpdateOne(ctx context.Context, id uuid.UUID, patch domain.GoldPricePatch, updatedBy uuid.NullUUID) error {
	const q = `
		update gold_prices
		set price         = coalesce($2, price),
		    buying_price  = coalesce($3, buying_price),
		    selling_price = coalesce($4, selling_price),
		    date          = coalesce($5, date),
		    updated_by    = coalesce($6, updated_by)
		where id = $1;
	`

	tag, err := r.pool.Exec(ctx, q, id, patch.Price, patch.BuyingPrice, patch.SellingPrice, patch.Date, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update gold price %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GoldPriceRepository) DeleteOne(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `delete from gold_prices where id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gold price %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GoldPriceRepository) QueryRange(ctx context.Context, f adapters.GoldFilter) ([]domain.GoldPrice, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.GoldType != "" {
		conds = append(conds, "gold_type = "+arg(f.GoldType))
	}
	if !f.From.IsZero() {
		conds = append(conds, "date >= "+arg(f.From))
	}
	if !f.To.IsZero() {
		conds = append(conds, "date <= "+arg(f.To))
	}

	q := `select id, gold_type, unit, price, buying_price, selling_price, date, created_at, updated_by from gold_prices`
	if len(conds) > 0 {
		q += " where " + strings.Join(conds, " and ")
	}
	q += " order by date desc, created_at desc"
	if f.Limit > 0 {
		q += " limit " + arg(f.Limit)
	}
	if f.Offset > 0 {
		q += " offset " + arg(f.Offset)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query gold prices: %w", err)
	}
	defer rows.Close()

	out := make([]domain.GoldPrice, 0, 32)
	for rows.Next() {
		var gp domain.GoldPrice
		if err = rows.Scan(&gp.ID, &gp.GoldType, &gp.Unit, &gp.Price, &gp.BuyingPrice, &gp.SellingPrice, &gp.Date, &gp.CreatedAt, &gp.UpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan gold price: %w", err)
		}
		out = append(out, gp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gold prices: %w", err)
	}
	return out, nil
}

// GetOne is used by admin edit forms to prefill a single record.
func (r *GoldPriceRepository) GetOne(ctx context.Context, id uuid.UUID) (*domain.GoldPrice, error) {
	const q = `
		select id, gold_type, unit, price, buying_price, selling_price, date, created_at, updated_by
		from gold_prices where id = $1;
	`

	var gp domain.GoldPrice
	err := r.pool.QueryRow(ctx, q, id).Scan(&gp.ID, &gp.GoldType, &gp.Unit, &gp.Price, &gp.BuyingPrice, &gp.SellingPrice, &gp.Date, &gp.CreatedAt, &gp.UpdatedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gold price %s: %w", id, err)
	}
	return &gp, nil
}
