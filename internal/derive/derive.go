// Package derive computes every read-only aggregate the views need, as pure
// functions over store snapshots. Each call is O(n) over its inputs and never
// mutates them; at this scale nothing is cached.
package derive

import (
	"sort"
	"time"

	"tailor-backend/internal/models"
	"tailor-backend/internal/timeutil"
)

// BoardStages are the five job-board columns, in display order. Orders in
// Adjustments, Final QC, or Delivered match no column and are off-board.
var BoardStages = []models.OrderStatus{
	models.OrderNew,
	models.OrderCutting,
	models.OrderStitching,
	models.OrderFirstFit,
	models.OrderReady,
}

// boardStageFor maps a production status onto its board column. Returns ""
// for statuses that do not appear on the board.
func boardStageFor(status models.OrderStatus) models.OrderStatus {
	switch status {
	case models.OrderAdjustments, models.OrderQC, models.OrderDelivered:
		return ""
	default:
		return status
	}
}

// DashboardCounters computes the headline dashboard numbers relative to the
// given reference time ("today" in shop-local terms).
func DashboardCounters(orders []models.Order, inquiries []models.Inquiry, appointments []models.Appointment, today time.Time) models.DashboardCounters {
	var c models.DashboardCounters

	for _, o := range orders {
		if o.Status != models.OrderReady && o.Status != models.OrderDelivered {
			c.ActiveOrders++
		}
		if o.Status == models.OrderReady {
			c.ReadyOrders++
		}
		c.CollectedRevenue += o.PaidAmount
	}

	for _, i := range inquiries {
		if i.Status == models.InquiryNew {
			c.NewInquiries++
		}
	}

	dayStart := timeutil.StartOfDay(today)
	for _, a := range appointments {
		if timeutil.SameDay(a.Date, today) {
			c.TodaysAppointments++
		}
		if a.Type == models.ApptFitOn && a.Status == models.ApptScheduled && !a.Date.Before(dayStart) {
			c.UpcomingFitOns++
		}
	}

	return c
}

// BoardColumns partitions orders into the five production-stage buckets,
// preserving the orders' relative order within each bucket.
func BoardColumns(orders []models.Order) []models.BoardColumn {
	buckets := make(map[models.OrderStatus][]models.Order, len(BoardStages))
	for _, o := range orders {
		stage := boardStageFor(o.Status)
		if stage == "" {
			continue
		}
		buckets[stage] = append(buckets[stage], o)
	}

	columns := make([]models.BoardColumn, 0, len(BoardStages))
	for _, stage := range BoardStages {
		columns = append(columns, models.BoardColumn{Stage: stage, Orders: buckets[stage]})
	}
	return columns
}

// CalendarDay returns the appointments falling on the given shop-local
// calendar day, ordered by start time.
func CalendarDay(appointments []models.Appointment, year int, month time.Month, day int) []models.Appointment {
	ref := timeutil.Day(year, month, day)

	var out []models.Appointment
	for _, a := range appointments {
		if timeutil.SameDay(a.Date, ref) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// ClientHistory returns a client's orders ordered by due date, flagging any
// with an active (non-resolved) change request for attention.
func ClientHistory(orders []models.Order, clientID string) []models.ClientOrderHistory {
	var out []models.ClientOrderHistory
	for _, o := range orders {
		if o.ClientID != clientID {
			continue
		}
		out = append(out, models.ClientOrderHistory{
			Order:          o,
			NeedsAttention: o.ChangeRequestStatus.Open(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order.DueDate.Before(out[j].Order.DueDate)
	})
	return out
}
