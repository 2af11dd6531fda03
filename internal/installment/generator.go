package installment

import (
	"fmt"
	"math"
	"time"

	"agilefinance/internal/dbsql"
)

// SplitAmount divides total into n parts of whole cents. Every part gets the
// floor share and the leftover cents go one each to the trailing parts, so
// no part is negative and the parts always sum to total.
func SplitAmount(total float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	totalCents := int64(math.Round(total * 100))
	partCents := totalCents / int64(n)
	rem := totalCents % int64(n)

	step := int64(1)
	if rem < 0 {
		step, rem = -1, -rem
	}

	parts := make([]float64, n)
	for i := range parts {
		cents := partCents
		if int64(n-1-i) < rem {
			cents += step
		}
		parts[i] = float64(cents) / 100
	}
	return parts
}

// DueDates returns one due date per installment: the first one
// firstDueDateDays after base, the next ones daysBetween apart.
func DueDates(base time.Time, pm *dbsql.PaymentMethod) []time.Time {
	y, m, d := base.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	out := make([]time.Time, pm.InstallmentCount)
	for i := range out {
		out[i] = day.AddDate(0, 0, pm.FirstDueDateDays+pm.DaysBetweenInstallments*i)
	}
	return out
}

// Build produces the installment rows for a movement without persisting them.
func Build(movement *dbsql.Movement, pm *dbsql.PaymentMethod, base time.Time) []dbsql.Installment {
	amounts := SplitAmount(movement.TotalAmount, pm.InstallmentCount)
	dates := DueDates(base, pm)
	pmID := pm.ID

	items := make([]dbsql.Installment, pm.InstallmentCount)
	for i := range items {
		items[i] = dbsql.Installment{
			MovementID:      movement.ID,
			PaymentMethodID: &pmID,
			Number:          fmt.Sprintf("%02d", i+1),
			Amount:          amounts[i],
			Balance:         amounts[i],
			DueDate:         dates[i],
			Status:          StatusPending,
		}
	}
	return items
}
