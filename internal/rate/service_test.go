package rate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todayrates/internal/adapters"
	"todayrates/internal/domain"
)

// --- Testify mocks ---

type MockRateRepository struct{ mock.Mock }

func (m *MockRateRepository) InsertMany(ctx context.Context, rows []domain.ExchangeRate) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, rows)
	inserted, _ := args.Get(0).([]domain.ExchangeRate)
	return inserted, args.Error(1)
}

func (m *MockRateRepository) UpdateOne(ctx context.Context, id uuid.UUID, patch domain.ExchangeRatePatch, updatedBy uuid.NullUUID) error {
	args := m.Called(ctx, id, patch, updatedBy)
	return args.Error(0)
}

func (m *MockRateRepository) DeleteOne(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRateRepository) QueryRange(ctx context.Context, f adapters.RateFilter) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, f)
	rows, _ := args.Get(0).([]domain.ExchangeRate)
	return rows, args.Error(1)
}

type MockGoldRepository struct{ mock.Mock }

func (m *MockGoldRepository) InsertMany(ctx context.Context, rows []domain.GoldPrice) ([]domain.GoldPrice, error) {
	args := m.Called(ctx, rows)
	inserted, _ := args.Get(0).([]domain.GoldPrice)
	return inserted, args.Error(1)
}

func (m *MockGoldRepository) UpdateOne(ctx context.Context, id uuid.UUID, patch domain.GoldPricePatch, updatedBy uuid.NullUUID) error {
	args := m.Called(ctx, id, patch, updatedBy)
	return args.Error(0)
}

func (m *MockGoldRepository) DeleteOne(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGoldRepository) QueryRange(ctx context.Context, f adapters.GoldFilter) ([]domain.GoldPrice, error) {
	args := m.Called(ctx, f)
	rows, _ := args.Get(0).([]domain.GoldPrice)
	return rows, args.Error(1)
}

type MockBoardCache struct{ mock.Mock }

func (m *MockBoardCache) RateBoard() (*domain.RateBoard, bool) {
	args := m.Called()
	b, _ := args.Get(0).(*domain.RateBoard)
	return b, args.Bool(1)
}

func (m *MockBoardCache) SetRateBoard(b *domain.RateBoard) { m.Called(b) }

func (m *MockBoardCache) GoldBoard() (*domain.GoldBoard, bool) {
	args := m.Called()
	b, _ := args.Get(0).(*domain.GoldBoard)
	return b, args.Bool(1)
}

func (m *MockBoardCache) SetGoldBoard(b *domain.GoldBoard) { m.Called(b) }

func (m *MockBoardCache) Invalidate() { m.Called() }

type MockFXFeed struct{ mock.Mock }

func (m *MockFXFeed) LatestRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx)
	rates, _ := args.Get(0).(map[string]decimal.Decimal)
	return rates, args.Error(1)
}

type MockGoldFeed struct{ mock.Mock }

func (m *MockGoldFeed) SpotPrice(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	price, _ := args.Get(0).(decimal.Decimal)
	return price, args.Error(1)
}

// memKV is an in-memory settings blob store for tests.
type memKV struct{ data map[string][]byte }

func newMemKV() *memKV { return &memKV{data: map[string][]byte{}} }

func (kv *memKV) Read(key string) ([]byte, bool, error) {
	raw, ok := kv.data[key]
	return raw, ok, nil
}

func (kv *memKV) Write(key string, value []byte) error {
	kv.data[key] = value
	return nil
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func day(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func quoteRow(code, buy, sell, date string, createdAt time.Time) domain.ExchangeRate {
	return domain.ExchangeRate{
		ID:           uuid.New(),
		CurrencyFrom: code,
		CurrencyTo:   domain.QuoteCurrency,
		BuyingRate:   dec(buy),
		SellingRate:  dec(sell),
		Date:         day(date),
		CreatedAt:    createdAt,
	}
}

// --- Board ---

func TestService_Board_TodayWithDeltas(t *testing.T) {
	repo := new(MockRateRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)
	svc.now = func() time.Time { return ts("2025-03-14T15:00:00Z") }

	rows := []domain.ExchangeRate{
		quoteRow("USD", "3966.27", "4070.01", "2025-03-14", ts("2025-03-14T09:00:00Z")),
		quoteRow("EUR", "4311.16", "4423.92", "2025-03-14", ts("2025-03-14T09:00:00Z")),
		quoteRow("USD", "3950.00", "4050.00", "2025-03-13", ts("2025-03-13T09:00:00Z")),
	}

	mockCache.On("RateBoard").Return(nil, false).Once()
	repo.On("QueryRange", mock.Anything, mock.Anything).Return(rows, nil).Once()
	mockCache.On("SetRateBoard", mock.Anything).Return().Once()

	board, err := svc.Board(context.Background())
	require.NoError(t, err)
	require.Equal(t, "2025-03-14", board.Date)
	require.False(t, board.FellBack)
	require.Len(t, board.Rates, 2)

	// Canonical order: USD before EUR.
	require.Equal(t, "USD", board.Rates[0].CurrencyFrom)
	require.Equal(t, "EUR", board.Rates[1].CurrencyFrom)

	require.True(t, board.Rates[0].BuyChange.Equal(dec("16.27")), "buy change = %s", board.Rates[0].BuyChange)
	require.True(t, board.Rates[0].SellChange.Equal(dec("20.01")))
	// EUR has no prior-day quote, so zero deltas.
	require.True(t, board.Rates[1].BuyChange.IsZero())

	repo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestService_Board_FallsBackToYesterday(t *testing.T) {
	repo := new(MockRateRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)
	svc.now = func() time.Time { return ts("2025-03-14T15:00:00Z") }

	rows := []domain.ExchangeRate{
		quoteRow("USD", "3950.00", "4050.00", "2025-03-13", ts("2025-03-13T09:00:00Z")),
		quoteRow("USD", "3940.00", "4041.00", "2025-03-12", ts("2025-03-12T09:00:00Z")),
	}

	mockCache.On("RateBoard").Return(nil, false).Once()
	repo.On("QueryRange", mock.Anything, mock.Anything).Return(rows, nil).Once()
	mockCache.On("SetRateBoard", mock.Anything).Return().Once()

	board, err := svc.Board(context.Background())
	require.NoError(t, err)
	require.Equal(t, "2025-03-13", board.Date)
	require.True(t, board.FellBack)
	require.Len(t, board.Rates, 1)
	require.True(t, board.Rates[0].BuyChange.Equal(dec("10.00")))
	require.True(t, board.Rates[0].SellChange.Equal(dec("9.00")))
}

func TestService_Board_KeepsNewestPerCurrency(t *testing.T) {
	repo := new(MockRateRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)
	svc.now = func() time.Time { return ts("2025-03-14T15:00:00Z") }

	rows := []domain.ExchangeRate{
		quoteRow("USD", "3970.00", "4075.00", "2025-03-14", ts("2025-03-14T12:00:00Z")),
		quoteRow("USD", "3966.27", "4070.01", "2025-03-14", ts("2025-03-14T09:00:00Z")),
	}

	mockCache.On("RateBoard").Return(nil, false).Once()
	repo.On("QueryRange", mock.Anything, mock.Anything).Return(rows, nil).Once()
	mockCache.On("SetRateBoard", mock.Anything).Return().Once()

	board, err := svc.Board(context.Background())
	require.NoError(t, err)
	require.Len(t, board.Rates, 1)
	require.True(t, board.Rates[0].BuyingRate.Equal(dec("3970.00")))
	require.Equal(t, ts("2025-03-14T12:00:00Z"), board.UpdatedAt)
}

func TestService_Board_CacheHit(t *testing.T) {
	repo := new(MockRateRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)

	cached := &domain.RateBoard{Date: "2025-03-14"}
	mockCache.On("RateBoard").Return(cached, true).Once()

	board, err := svc.Board(context.Background())
	require.NoError(t, err)
	require.Same(t, cached, board)
	repo.AssertNotCalled(t, "QueryRange", mock.Anything, mock.Anything)
}

func TestService_Board_RepoError(t *testing.T) {
	repo := new(MockRateRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)

	wantErr := errors.New("db temporarily unavailable")
	mockCache.On("RateBoard").Return(nil, false).Once()
	repo.On("QueryRange", mock.Anything, mock.Anything).Return(nil, wantErr).Once()

	_, err := svc.Board(context.Background())
	require.ErrorIs(t, err, wantErr)
}

// --- History ---

func TestService_History_GroupsAndDeltas(t *testing.T) {
	repo := new(MockRateRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)

	rows := []domain.ExchangeRate{
		quoteRow("USD", "3970.00", "4075.00", "2025-03-14", ts("2025-03-14T09:00:00Z")),
		quoteRow("USD", "3950.00", "4050.00", "2025-03-13", ts("2025-03-13T09:00:00Z")),
		quoteRow("USD", "3940.00", "4041.00", "2025-03-12", ts("2025-03-12T09:00:00Z")),
	}
	f := adapters.RateFilter{Code: "USD"}
	repo.On("QueryRange", mock.Anything, f).Return(rows, nil).Once()

	groups, err := svc.History(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	require.Equal(t, "2025-03-14", groups[0].Date)

	require.True(t, groups[0].Rows[0].BuyChange.Equal(dec("20.00")))
	require.True(t, groups[1].Rows[0].BuyChange.Equal(dec("10.00")))
	// The oldest fetched row has nothing to compare against.
	require.True(t, groups[2].Rows[0].BuyChange.IsZero())
	repo.AssertExpectations(t)
}

// --- Writes ---

func TestService_InsertMany_FillsDefaultsAndInvalidates(t *testing.T) {
	repo := new(MockRateRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)
	now := ts("2025-03-14T09:00:00Z")
	svc.now = func() time.Time { return now }

	var captured []domain.ExchangeRate
	repo.On("InsertMany", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured, _ = args.Get(1).([]domain.ExchangeRate) }).
		Return([]domain.ExchangeRate{{}}, nil).Once()
	mockCache.On("Invalidate").Return().Once()

	_, err := svc.InsertMany(context.Background(), []domain.ExchangeRate{
		{CurrencyFrom: "USD", BuyingRate: dec("3966.27"), SellingRate: dec("4070.01")},
	})
	require.NoError(t, err)
	require.Len(t, captured, 1)
	require.Equal(t, domain.QuoteCurrency, captured[0].CurrencyTo)
	require.Equal(t, now, captured[0].CreatedAt)
	require.Equal(t, now, captured[0].Date)
	mockCache.AssertExpectations(t)
}

func TestService_Update_Invalidates(t *testing.T) {
	repo := new(MockRateRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)

	id := uuid.New()
	buy := dec("4000")
	patch := domain.ExchangeRatePatch{BuyingRate: &buy}
	repo.On("UpdateOne", mock.Anything, id, patch, uuid.NullUUID{}).Return(nil).Once()
	mockCache.On("Invalidate").Return().Once()

	require.NoError(t, svc.Update(context.Background(), id, patch, uuid.NullUUID{}))
	repo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestService_Delete_NotFoundSkipsInvalidate(t *testing.T) {
	repo := new(MockRateRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)

	id := uuid.New()
	repo.On("DeleteOne", mock.Anything, id).Return(domain.ErrNotFound).Once()

	err := svc.Delete(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrNotFound)
	mockCache.AssertNotCalled(t, "Invalidate")
}
