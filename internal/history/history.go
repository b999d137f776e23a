// Package history turns flat, timestamped rate and gold rows into
// day-grouped, delta-annotated view data.
package history

import (
	"slices"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type Group[T any] struct {
	Date string `json:"date"`
	Rows []T    `json:"rows"`
}

// GroupByDate partitions rows by calendar day. Groups come back newest day
// first; rows inside a group are sorted by createdAt descending. The input
// slice is not mutated.
func GroupByDate[T any](rows []T, day func(T) string, createdAt func(T) time.Time) []Group[T] {
	grouped := lo.GroupBy(rows, day)

	dates := lo.Keys(grouped)
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	groups := make([]Group[T], 0, len(dates))
	for _, d := range dates {
		dayRows := slices.Clone(grouped[d])
		sort.SliceStable(dayRows, func(i, j int) bool {
			return createdAt(dayRows[i]).After(createdAt(dayRows[j]))
		})
		groups = append(groups, Group[T]{Date: d, Rows: dayRows})
	}
	return groups
}

// Deltas computes, for rows sorted newest first, the difference between each
// row and the chronologically preceding row in the same sequence. The oldest
// row has no in-page predecessor and gets a zero delta.
func Deltas[T any](rows []T, value func(T) decimal.Decimal) []decimal.Decimal {
	deltas := make([]decimal.Decimal, len(rows))
	for i := 0; i+1 < len(rows); i++ {
		deltas[i] = value(rows[i]).Sub(value(rows[i+1]))
	}
	return deltas
}

// DisplaySet is the resolved landing-page data: the rows to show, and the
// prior-day rows deltas are computed against.
type DisplaySet[T any] struct {
	Date     string
	Rows     []T
	Compare  []T
	FellBack bool
}

// PickDisplaySet applies the fixed three-day fallback window: show today's
// rows compared against yesterday's, or — when today is empty — yesterday's
// rows compared against the day before. There is no deeper fallback.
func PickDisplaySet[T any](groups []Group[T], today, yesterday, dayBefore string) DisplaySet[T] {
	byDate := lo.Associate(groups, func(g Group[T]) (string, []T) { return g.Date, g.Rows })

	if rows, ok := byDate[today]; ok && len(rows) > 0 {
		return DisplaySet[T]{Date: today, Rows: rows, Compare: byDate[yesterday]}
	}
	if rows, ok := byDate[yesterday]; ok && len(rows) > 0 {
		return DisplaySet[T]{Date: yesterday, Rows: rows, Compare: byDate[dayBefore], FellBack: true}
	}
	return DisplaySet[T]{Date: today}
}
