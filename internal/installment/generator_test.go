package installment

import (
	"math"
	"testing"
	"time"

	"agilefinance/internal/dbsql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAmount(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		n     int
		want  []float64
	}{
		{name: "remainder on last", total: 100, n: 3, want: []float64{33.33, 33.33, 33.34}},
		{name: "two leftover cents on trailing parts", total: 200, n: 3, want: []float64{66.66, 66.67, 66.67}},
		{name: "even split", total: 10, n: 4, want: []float64{2.5, 2.5, 2.5, 2.5}},
		{name: "single", total: 99.99, n: 1, want: []float64{99.99}},
		{name: "one cent", total: 0.01, n: 3, want: []float64{0, 0, 0.01}},
		{name: "fewer cents than parts", total: 0.10, n: 12, want: []float64{0, 0, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01}},
		{name: "no parts", total: 10, n: 0, want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitAmount(tc.total, tc.n)
			assert.Equal(t, tc.want, got)

			var cents int64
			for _, p := range got {
				cents += int64(p*100 + 0.5)
			}
			if tc.n > 0 {
				assert.Equal(t, int64(tc.total*100+0.5), cents)
			}
		})
	}
}

func TestSplitAmount_NeverNegative(t *testing.T) {
	for _, tc := range []struct {
		total float64
		n     int
	}{{0.10, 12}, {1.00, 120}, {0.07, 10}, {999.99, 7}} {
		parts := SplitAmount(tc.total, tc.n)
		require.Len(t, parts, tc.n)

		var cents int64
		for _, p := range parts {
			assert.GreaterOrEqual(t, p, 0.0)
			cents += int64(math.Round(p * 100))
		}
		assert.Equal(t, int64(math.Round(tc.total*100)), cents)
		assert.LessOrEqual(t, parts[tc.n-1]-parts[0], 0.011)
	}
}

func TestDueDates(t *testing.T) {
	base := time.Date(2025, 1, 30, 17, 45, 0, 0, time.UTC)
	pm := &dbsql.PaymentMethod{InstallmentCount: 3, FirstDueDateDays: 30, DaysBetweenInstallments: 30}

	got := DueDates(base, pm)
	require.Len(t, got, 3)
	assert.Equal(t, "2025-03-01", got[0].Format(dateLayout))
	assert.Equal(t, "2025-03-31", got[1].Format(dateLayout))
	assert.Equal(t, "2025-04-30", got[2].Format(dateLayout))
	assert.Zero(t, got[0].Hour())
}

func TestBuild(t *testing.T) {
	movement := &dbsql.Movement{ID: 15, TotalAmount: 100}
	pm := &dbsql.PaymentMethod{ID: 2, InstallmentCount: 3, FirstDueDateDays: 0, DaysBetweenInstallments: 15}
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	items := Build(movement, pm, base)
	require.Len(t, items, 3)

	assert.Equal(t, "01", items[0].Number)
	assert.Equal(t, "03", items[2].Number)
	assert.Equal(t, 33.34, items[2].Amount)
	assert.Equal(t, items[2].Amount, items[2].Balance)
	assert.Equal(t, "2025-06-01", items[0].DueDate.Format(dateLayout))
	assert.Equal(t, "2025-07-01", items[2].DueDate.Format(dateLayout))
	for _, it := range items {
		assert.Equal(t, uint64(15), it.MovementID)
		assert.Equal(t, StatusPending, it.Status)
		require.NotNil(t, it.PaymentMethodID)
		assert.Equal(t, uint64(2), *it.PaymentMethodID)
	}
}
