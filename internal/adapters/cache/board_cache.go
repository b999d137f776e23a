package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"

	"todayrates/internal/domain"
)

const (
	rateBoardKey = "board:rates"
	goldBoardKey = "board:gold"
)

// RistrettoBoardCache holds the two landing-page snapshots with a TTL.
// Writers must call Invalidate after any record mutation.
type RistrettoBoardCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewBoardCache(maxItems int64, ttl time.Duration) (*RistrettoBoardCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create board cache failed: %w", err)
	}
	return &RistrettoBoardCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoBoardCache) RateBoard() (*domain.RateBoard, bool) {
	if v, ok := c.cache.Get(rateBoardKey); ok {
		b, ok := v.(*domain.RateBoard)
		return b, ok
	}
	return nil, false
}

func (c *RistrettoBoardCache) SetRateBoard(b *domain.RateBoard) {
	c.cache.SetWithTTL(rateBoardKey, b, 1, c.ttl)
	c.cache.Wait()
}

func (c *RistrettoBoardCache) GoldBoard() (*domain.GoldBoard, bool) {
	if v, ok := c.cache.Get(goldBoardKey); ok {
		b, ok := v.(*domain.GoldBoard)
		return b, ok
	}
	return nil, false
}

func (c *RistrettoBoardCache) SetGoldBoard(b *domain.GoldBoard) {
	c.cache.SetWithTTL(goldBoardKey, b, 1, c.ttl)
	c.cache.Wait()
}

func (c *RistrettoBoardCache) Invalidate() {
	c.cache.Del(rateBoardKey)
	c.cache.Del(goldBoardKey)
}

func (c *RistrettoBoardCache) Close() { c.cache.Close() }
