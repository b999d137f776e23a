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

	"todayrates/internal/domain"
	"todayrates/internal/settings"
)

func newTestGenerator(fx *MockFXFeed, gold *MockGoldFeed, rates *MockRateRepository, goldRepo *MockGoldRepository, mockCache *MockBoardCache) *Generator {
	g := NewGenerator(fx, gold, settings.NewStore(newMemKV()), NewEngine(), rates, goldRepo, mockCache)
	g.now = func() time.Time { return ts("2025-03-14T09:00:00Z") }
	return g
}

func feedTable() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"MMK": dec("2100"),
		"EUR": dec("0.92"),
		"THB": dec("33.4"),
	}
}

func TestGenerator_Generate_Success(t *testing.T) {
	fx := new(MockFXFeed)
	goldFeed := new(MockGoldFeed)
	rateRepo := new(MockRateRepository)
	goldRepo := new(MockGoldRepository)
	mockCache := new(MockBoardCache)
	g := newTestGenerator(fx, goldFeed, rateRepo, goldRepo, mockCache)

	fx.On("LatestRates", mock.Anything).Return(feedTable(), nil).Once()
	goldFeed.On("SpotPrice", mock.Anything).Return(dec("4836.40"), nil).Once()

	var rateRows []domain.ExchangeRate
	rateRepo.On("InsertMany", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { rateRows, _ = args.Get(1).([]domain.ExchangeRate) }).
		Return(make([]domain.ExchangeRate, 3), nil).Once()

	var goldRows []domain.GoldPrice
	goldRepo.On("InsertMany", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { goldRows, _ = args.Get(1).([]domain.GoldPrice) }).
		Return(make([]domain.GoldPrice, 5), nil).Once()

	mockCache.On("Invalidate").Return().Once()

	date := ts("2025-03-14T00:00:00Z")
	admin := uuid.NullUUID{UUID: uuid.New(), Valid: true}
	report, err := g.Generate(context.Background(), date, admin)
	require.NoError(t, err)

	require.Equal(t, 3, report.Rates.Inserted)
	require.Equal(t, 5, report.Gold.Inserted)
	require.Empty(t, report.Rates.Error)
	require.Empty(t, report.Gold.Error)
	require.False(t, report.PartialFailure())
	// Only USD, EUR and THB had spot data.
	require.Contains(t, report.Rates.Missing, "GBP")

	require.Len(t, rateRows, 3)
	for _, r := range rateRows {
		require.Equal(t, domain.QuoteCurrency, r.CurrencyTo)
		require.Equal(t, date, r.Date)
		require.Equal(t, admin, r.UpdatedBy)
	}

	require.Len(t, goldRows, 5)
	require.Equal(t, domain.GoldWorld, goldRows[0].GoldType)
	require.Equal(t, domain.UnitTroyOunce, goldRows[0].Unit)
	require.True(t, goldRows[0].Price.Valid)

	fx.AssertExpectations(t)
	goldFeed.AssertExpectations(t)
	rateRepo.AssertExpectations(t)
	goldRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestGenerator_Generate_FXFeedFailureAbortsRun(t *testing.T) {
	fx := new(MockFXFeed)
	goldFeed := new(MockGoldFeed)
	rateRepo := new(MockRateRepository)
	goldRepo := new(MockGoldRepository)
	mockCache := new(MockBoardCache)
	g := newTestGenerator(fx, goldFeed, rateRepo, goldRepo, mockCache)

	fx.On("LatestRates", mock.Anything).Return(nil, domain.ErrFeedUnavailable).Once()
	goldFeed.On("SpotPrice", mock.Anything).Return(dec("4836.40"), nil).Once()

	_, err := g.Generate(context.Background(), ts("2025-03-14T00:00:00Z"), uuid.NullUUID{})
	require.ErrorIs(t, err, domain.ErrFeedUnavailable)

	rateRepo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	goldRepo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	mockCache.AssertNotCalled(t, "Invalidate")
}

func TestGenerator_Generate_GoldFeedFailureDegradesToRatesOnly(t *testing.T) {
	fx := new(MockFXFeed)
	goldFeed := new(MockGoldFeed)
	rateRepo := new(MockRateRepository)
	goldRepo := new(MockGoldRepository)
	mockCache := new(MockBoardCache)
	g := newTestGenerator(fx, goldFeed, rateRepo, goldRepo, mockCache)

	fx.On("LatestRates", mock.Anything).Return(feedTable(), nil).Once()
	goldFeed.On("SpotPrice", mock.Anything).Return(decimal.Zero, domain.ErrFeedUnavailable).Once()
	rateRepo.On("InsertMany", mock.Anything, mock.Anything).Return(make([]domain.ExchangeRate, 3), nil).Once()
	mockCache.On("Invalidate").Return().Once()

	report, err := g.Generate(context.Background(), ts("2025-03-14T00:00:00Z"), uuid.NullUUID{})
	require.NoError(t, err)

	require.Equal(t, 3, report.Rates.Inserted)
	require.Zero(t, report.Gold.Inserted)
	require.NotEmpty(t, report.Gold.Error)
	require.True(t, report.PartialFailure())

	goldRepo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

func TestGenerator_Generate_MissingLocalSpot(t *testing.T) {
	fx := new(MockFXFeed)
	goldFeed := new(MockGoldFeed)
	rateRepo := new(MockRateRepository)
	goldRepo := new(MockGoldRepository)
	mockCache := new(MockBoardCache)
	g := newTestGenerator(fx, goldFeed, rateRepo, goldRepo, mockCache)

	fx.On("LatestRates", mock.Anything).Return(map[string]decimal.Decimal{"EUR": dec("0.92")}, nil).Once()
	goldFeed.On("SpotPrice", mock.Anything).Return(dec("4836.40"), nil).Once()

	_, err := g.Generate(context.Background(), ts("2025-03-14T00:00:00Z"), uuid.NullUUID{})
	require.ErrorIs(t, err, domain.ErrInvalidSpotData)
	rateRepo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

func TestGenerator_Generate_RateInsertFailureStillWritesGold(t *testing.T) {
	fx := new(MockFXFeed)
	goldFeed := new(MockGoldFeed)
	rateRepo := new(MockRateRepository)
	goldRepo := new(MockGoldRepository)
	mockCache := new(MockBoardCache)
	g := newTestGenerator(fx, goldFeed, rateRepo, goldRepo, mockCache)

	fx.On("LatestRates", mock.Anything).Return(feedTable(), nil).Once()
	goldFeed.On("SpotPrice", mock.Anything).Return(dec("4836.40"), nil).Once()
	rateRepo.On("InsertMany", mock.Anything, mock.Anything).Return(nil, errors.New("db temporarily unavailable")).Once()
	goldRepo.On("InsertMany", mock.Anything, mock.Anything).Return(make([]domain.GoldPrice, 5), nil).Once()
	mockCache.On("Invalidate").Return().Once()

	report, err := g.Generate(context.Background(), ts("2025-03-14T00:00:00Z"), uuid.NullUUID{})
	require.NoError(t, err)

	require.NotEmpty(t, report.Rates.Error)
	require.Equal(t, 5, report.Gold.Inserted)
	require.True(t, report.PartialFailure())
	goldRepo.AssertExpectations(t)
}

func TestGenerator_Preview_NoWrites(t *testing.T) {
	fx := new(MockFXFeed)
	goldFeed := new(MockGoldFeed)
	rateRepo := new(MockRateRepository)
	goldRepo := new(MockGoldRepository)
	mockCache := new(MockBoardCache)
	g := newTestGenerator(fx, goldFeed, rateRepo, goldRepo, mockCache)

	fx.On("LatestRates", mock.Anything).Return(feedTable(), nil).Once()
	goldFeed.On("SpotPrice", mock.Anything).Return(dec("4836.40"), nil).Once()

	quotes, goldQuotes, missing, err := g.Preview(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 3)
	require.Len(t, goldQuotes, 5)
	require.Contains(t, missing, "GBP")

	rateRepo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	goldRepo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	mockCache.AssertNotCalled(t, "Invalidate")
}

func TestGenerator_Preview_GoldFeedFailureKeepsRates(t *testing.T) {
	fx := new(MockFXFeed)
	goldFeed := new(MockGoldFeed)
	rateRepo := new(MockRateRepository)
	goldRepo := new(MockGoldRepository)
	mockCache := new(MockBoardCache)
	g := newTestGenerator(fx, goldFeed, rateRepo, goldRepo, mockCache)

	fx.On("LatestRates", mock.Anything).Return(feedTable(), nil).Once()
	goldFeed.On("SpotPrice", mock.Anything).Return(decimal.Zero, domain.ErrFeedUnavailable).Once()

	quotes, goldQuotes, _, err := g.Preview(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 3)
	require.Empty(t, goldQuotes)
}
