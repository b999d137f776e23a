package adapters

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"todayrates/internal/domain"
)

// FXFeed is the external spot-rate source. The returned table maps currency
// code to its spot value; it must contain a QuoteCurrency entry holding
// local-currency units per USD.
type FXFeed interface {
	LatestRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// GoldFeed is the external world gold spot source, USD per troy ounce.
type GoldFeed interface {
	SpotPrice(ctx context.Context) (decimal.Decimal, error)
}

// RateFilter narrows a range query. Zero values mean "no constraint";
// Limit <= 0 means no limit.
type RateFilter struct {
	Code   string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

type RateRepository interface {
	InsertMany(ctx context.Context, rows []domain.ExchangeRate) ([]domain.ExchangeRate, error)
	UpdateOne(ctx context.Context, id uuid.UUID, patch domain.ExchangeRatePatch, updatedBy uuid.NullUUID) error
	DeleteOne(ctx context.Context, id uuid.UUID) error
	QueryRange(ctx context.Context, f RateFilter) ([]domain.ExchangeRate, error)
}

type GoldFilter struct {
	GoldType domain.GoldType
	From     time.Time
	To       time.Time
	Limit    int
	Offset   int
}

type GoldRepository interface {
	InsertMany(ctx context.Context, rows []domain.GoldPrice) ([]domain.GoldPrice, error)
	UpdateOne(ctx context.Context, id uuid.UUID, patch domain.GoldPricePatch, updatedBy uuid.NullUUID) error
	DeleteOne(ctx context.Context, id uuid.UUID) error
	QueryRange(ctx context.Context, f GoldFilter) ([]domain.GoldPrice, error)
}

type AdminUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
}

// SettingsKV is the client-local key-value store the settings blob lives in:
// one JSON document under one well-known key.
type SettingsKV interface {
	Read(key string) ([]byte, bool, error)
	Write(key string, value []byte) error
}

// BoardCache fronts the two landing-page views. Implementations may drop
// entries at any time; every write path must call Invalidate.
type BoardCache interface {
	RateBoard() (*domain.RateBoard, bool)
	SetRateBoard(b *domain.RateBoard)
	GoldBoard() (*domain.GoldBoard, bool)
	SetGoldBoard(b *domain.GoldBoard)
	Invalidate()
}
