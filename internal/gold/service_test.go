package gold

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todayrates/internal/adapters"
	"todayrates/internal/domain"
)

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

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func nd(s string) decimal.NullDecimal { return decimal.NewNullDecimal(dec(s)) }

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

func worldRow(price, date string, createdAt time.Time) domain.GoldPrice {
	return domain.GoldPrice{
		ID:        uuid.New(),
		GoldType:  domain.GoldWorld,
		Unit:      domain.UnitTroyOunce,
		Price:     nd(price),
		Date:      day(date),
		CreatedAt: createdAt,
	}
}

func gradeRow(t domain.GoldType, buy, sell, date string, createdAt time.Time) domain.GoldPrice {
	return domain.GoldPrice{
		ID:           uuid.New(),
		GoldType:     t,
		Unit:         domain.UnitKyatthar,
		BuyingPrice:  nd(buy),
		SellingPrice: nd(sell),
		Date:         day(date),
		CreatedAt:    createdAt,
	}
}

func TestService_Board_WorldAndGrades(t *testing.T) {
	repo := new(MockGoldRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)
	svc.now = func() time.Time { return ts("2025-03-14T15:00:00Z") }

	rows := []domain.GoldPrice{
		worldRow("4836.40", "2025-03-14", ts("2025-03-14T09:00:00Z")),
		gradeRow(domain.Gold16PeyeNew, "10334000", "10334000", "2025-03-14", ts("2025-03-14T09:00:00Z")),
		gradeRow(domain.Gold16PeyeOld, "10499000", "10499000", "2025-03-14", ts("2025-03-14T09:00:00Z")),
		worldRow("4820.00", "2025-03-13", ts("2025-03-13T09:00:00Z")),
		gradeRow(domain.Gold16PeyeNew, "10300000", "10300000", "2025-03-13", ts("2025-03-13T09:00:00Z")),
	}

	mockCache.On("GoldBoard").Return(nil, false).Once()
	repo.On("QueryRange", mock.Anything, mock.Anything).Return(rows, nil).Once()
	mockCache.On("SetGoldBoard", mock.Anything).Return().Once()

	board, err := svc.Board(context.Background())
	require.NoError(t, err)
	require.Equal(t, "2025-03-14", board.Date)
	require.False(t, board.FellBack)

	require.NotNil(t, board.World)
	require.True(t, board.World.Price.Decimal.Equal(dec("4836.40")))
	require.True(t, board.World.PriceChange.Equal(dec("16.40")))

	// Grade sections follow the canonical order, old system before new.
	require.Len(t, board.Grades, 2)
	require.Equal(t, domain.Gold16PeyeOld, board.Grades[0].GoldType)
	require.Equal(t, domain.Gold16PeyeNew, board.Grades[1].GoldType)
	require.Equal(t, domain.UnitKyatthar, board.Grades[0].Unit)

	// 16peye_new has a prior-day quote; 16peye_old does not.
	require.True(t, board.Grades[1].Rows[0].BuyChange.Equal(dec("34000")))
	require.True(t, board.Grades[0].Rows[0].BuyChange.IsZero())

	repo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestService_Board_FallsBackToYesterday(t *testing.T) {
	repo := new(MockGoldRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)
	svc.now = func() time.Time { return ts("2025-03-14T15:00:00Z") }

	rows := []domain.GoldPrice{
		worldRow("4820.00", "2025-03-13", ts("2025-03-13T09:00:00Z")),
		worldRow("4800.00", "2025-03-12", ts("2025-03-12T09:00:00Z")),
	}

	mockCache.On("GoldBoard").Return(nil, false).Once()
	repo.On("QueryRange", mock.Anything, mock.Anything).Return(rows, nil).Once()
	mockCache.On("SetGoldBoard", mock.Anything).Return().Once()

	board, err := svc.Board(context.Background())
	require.NoError(t, err)
	require.Equal(t, "2025-03-13", board.Date)
	require.True(t, board.FellBack)
	require.NotNil(t, board.World)
	require.True(t, board.World.PriceChange.Equal(dec("20.00")))
}

func TestService_Board_CacheHit(t *testing.T) {
	repo := new(MockGoldRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)

	cached := &domain.GoldBoard{Date: "2025-03-14"}
	mockCache.On("GoldBoard").Return(cached, true).Once()

	board, err := svc.Board(context.Background())
	require.NoError(t, err)
	require.Same(t, cached, board)
	repo.AssertNotCalled(t, "QueryRange", mock.Anything, mock.Anything)
}

func TestService_History_DeltasPerFetchedPage(t *testing.T) {
	repo := new(MockGoldRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)

	rows := []domain.GoldPrice{
		gradeRow(domain.Gold16PeyeNew, "10334000", "10334000", "2025-03-14", ts("2025-03-14T09:00:00Z")),
		gradeRow(domain.Gold16PeyeNew, "10300000", "10300000", "2025-03-13", ts("2025-03-13T09:00:00Z")),
	}
	f := adapters.GoldFilter{GoldType: domain.Gold16PeyeNew}
	repo.On("QueryRange", mock.Anything, f).Return(rows, nil).Once()

	groups, err := svc.History(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.True(t, groups[0].Rows[0].BuyChange.Equal(dec("34000")))
	require.True(t, groups[1].Rows[0].BuyChange.IsZero())
}

func TestService_InsertMany_FillsUnitFromType(t *testing.T) {
	repo := new(MockGoldRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)
	now := ts("2025-03-14T09:00:00Z")
	svc.now = func() time.Time { return now }

	var captured []domain.GoldPrice
	repo.On("InsertMany", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured, _ = args.Get(1).([]domain.GoldPrice) }).
		Return(make([]domain.GoldPrice, 2), nil).Once()
	mockCache.On("Invalidate").Return().Once()

	_, err := svc.InsertMany(context.Background(), []domain.GoldPrice{
		{GoldType: domain.GoldWorld, Price: nd("4836.40")},
		{GoldType: domain.Gold15PeyeOld, BuyingPrice: nd("9700000"), SellingPrice: nd("9700000")},
	})
	require.NoError(t, err)
	require.Equal(t, domain.UnitTroyOunce, captured[0].Unit)
	require.Equal(t, domain.UnitKyatthar, captured[1].Unit)
	require.Equal(t, now, captured[0].CreatedAt)
	require.Equal(t, now, captured[0].Date)
	mockCache.AssertExpectations(t)
}

func TestService_Delete_Invalidates(t *testing.T) {
	repo := new(MockGoldRepository)
	mockCache := new(MockBoardCache)
	svc := NewService(repo, mockCache)

	id := uuid.New()
	repo.On("DeleteOne", mock.Anything, id).Return(nil).Once()
	mockCache.On("Invalidate").Return().Once()

	require.NoError(t, svc.Delete(context.Background(), id))
	repo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}
