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

type ExchangeRateRepository struct {
	pool *pgxpool.Pool
}

func NewExchangeRateRepository(pool *pgxpool.Pool) *ExchangeRateRepository {
	return &ExchangeRateRepository{pool: pool}
}

func (r *ExchangeRateRepository) InsertMany(ctx context.Context, rows []domain.ExchangeRate) ([]domain.ExchangeRate, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	const q = `
		insert into exchange_rates (currency_from, currency_to, buying_rate, selling_rate, date, created_at, updated_by)
		values ($1, $2, $3, $4, $5, $6, $7)
		returning id;
	`

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(q, row.CurrencyFrom, row.CurrencyTo, row.BuyingRate, row.SellingRate, row.Date, row.CreatedAt, row.UpdatedBy)
	}

	br := tx.SendBatch(ctx, batch)
	inserted := make([]domain.ExchangeRate, 0, len(rows))
	for _, row := range rows {
		if err = br.QueryRow().Scan(&row.ID); err != nil {
			_ = br.Close()
			return nil, fmt.Errorf("failed to insert rate for %q: %w", row.CurrencyFrom, err)
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

func (r *ExchangeRateRepository) UpdateOne(ctx context.Context, id uuid.UUID, patch domain.ExchangeRatePatch, updatedBy uuid.NullUUID) error {
	const q = `
		update exchange_rates
		set buying_rate  = coalesce($2, buying_rate),
		    selling_rate = coalesce($3, selling_rate),
		    date         = coalesce($4, date),
		    updated_by   = coalesce($5, updated_by)
		where id = $1;
	`

	tag, err := r.pool.Exec(ctx, q, id, patch.BuyingRate, patch.SellingRate, patch.Date, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update rate %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExchangeRateRepository) DeleteOne(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `delete from exchange_rates where id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rate %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExchangeRateRepository) QueryRange(ctx context.Context, f adapters.RateFilter) ([]domain.ExchangeRate, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Code != "" {
		conds = append(conds, "currency_from = "+arg(f.Code))
	}
	if !f.From.IsZero() {
		conds = append(conds, "date >= "+arg(f.From))
	}
	if !f.To.IsZero() {
		conds = append(conds, "date <= "+arg(f.To))
	}

	q := `select id, currency_from, currency_to, buying_rate, selling_rate, date, created_at, updated_by from exchange_rates`
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
		return nil, fmt.Errorf("failed to query rates: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ExchangeRate, 0, 64)
	for rows.Next() {
		var er domain.ExchangeRate
		if err = rows.Scan(&er.ID, &er.CurrencyFrom, &er.CurrencyTo, &er.BuyingRate, &er.SellingRate, &er.Date, &er.CreatedAt, &er.UpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan rate: %w", err)
		}
		out = append(out, er)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rates: %w", err)
	}
	return out, nil
}

// GetOne is used by admin edit forms to prefill a single record.
func (r *ExchangeRateRepository) GetOne(ctx context.Context, id uuid.UUID) (*domain.ExchangeRate, error) {
	const q = `
		select id, currency_from, currency_to, buying_rate, selling_rate, date, created_at, updated_by
		from exchange_rates where id = $1;
	`

	var er domain.ExchangeRate
	err := r.pool.QueryRow(ctx, q, id).Scan(&er.ID, &er.CurrencyFrom, &er.CurrencyTo, &er.BuyingRate, &er.SellingRate, &er.Date, &er.CreatedAt, &er.UpdatedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rate %s: %w", id, err)
	}
	return &er, nil
}
