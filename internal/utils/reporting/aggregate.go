package reporting

import (
	"sort"
	"strings"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UnknownKey is the bucket for records whose grouping key is empty.
const UnknownKey = "Unknown"

// Aggregate groups records by keyFn and accumulates a count and exact sum of amountFn per group.
// An empty input yields an empty, non-nil map.
func Aggregate[T any](records []T, keyFn func(T) string, amountFn func(T) decimal.Decimal) map[string]domain.GroupTotal {
	groups := make(map[string]domain.GroupTotal)
	for _, rec := range records {
		key := strings.TrimSpace(keyFn(rec))
		if key == "" {
			key = UnknownKey
		}
		g := groups[key]
		g.Count++
		g.TotalAmount = g.TotalAmount.Add(amountFn(rec))
		groups[key] = g
	}
	return groups
}

// SortedGroups flattens groups into rows ordered by total descending, then key ascending.
// labels maps keys to display labels; keys without a label are shown as-is.
func SortedGroups(groups map[string]domain.GroupTotal, labels map[string]string) []domain.BreakdownRow {
	rows := make([]domain.BreakdownRow, 0, len(groups))
	for key, g := range groups {
		label := key
		if l, ok := labels[key]; ok && l != "" {
			label = l
		}
		rows = append(rows, domain.BreakdownRow{
			Key:         key,
			Label:       label,
			Count:       g.Count,
			TotalAmount: g.TotalAmount,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].TotalAmount.Cmp(rows[j].TotalAmount); c != 0 {
			return c > 0
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}
