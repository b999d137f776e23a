package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetaFor_KnownCode(t *testing.T) {
	m := MetaFor("USD")
	require.Equal(t, "USD", m.Code)
	require.Equal(t, "United State Dollar", m.Name)
	require.Equal(t, "$", m.Symbol)
	require.Equal(t, "🇺🇸", m.Flag)
}

func TestMetaFor_UnknownCodeFallsBack(t *testing.T) {
	m := MetaFor("XXX")
	require.Equal(t, "XXX", m.Code)
	require.Equal(t, "XXX", m.Name)
	require.Equal(t, "XXX", m.Symbol)
	require.Equal(t, "💱", m.Flag)
}

func TestCanonicalOrder(t *testing.T) {
	order := CanonicalOrder()
	require.Len(t, order, 38)
	require.Equal(t, "USD", order[0])
	require.NotContains(t, order, "MMK")

	// Every listed code has a catalog entry.
	for _, code := range order {
		require.NotEqual(t, "💱", MetaFor(code).Flag, "no catalog entry for %s", code)
	}
}

func TestCanonicalOrder_ReturnsCopy(t *testing.T) {
	order := CanonicalOrder()
	order[0] = "ZZZ"
	require.Equal(t, "USD", CanonicalOrder()[0])
}

func TestOrderIndex(t *testing.T) {
	require.Equal(t, 0, OrderIndex("USD"))
	require.Less(t, OrderIndex("EUR"), OrderIndex("THB"))
	// Unknown codes sort last.
	require.Equal(t, len(CanonicalOrder()), OrderIndex("XXX"))
}

func TestTracked(t *testing.T) {
	require.True(t, Tracked("USD"))
	require.True(t, Tracked("RSD"))
	require.False(t, Tracked("MMK"))
	require.False(t, Tracked("XXX"))
}
