package derive

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-backend/internal/models"
	"tailor-backend/internal/timeutil"
)

func TestMain(m *testing.M) {
	// Day-boundary assertions must not depend on the host timezone.
	if err := timeutil.Init("UTC"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var today = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func at(dayOffset, hour int) time.Time {
	return time.Date(2024, time.March, 15+dayOffset, hour, 0, 0, 0, time.UTC)
}

func TestDashboardCounters(t *testing.T) {
	orders := []models.Order{
		{ID: "o1", Status: models.OrderCutting, PaidAmount: 500},
		{ID: "o2", Status: models.OrderReady, PaidAmount: 1200},
		{ID: "o3", Status: models.OrderDelivered, PaidAmount: 150},
	}
	inquiries := []models.Inquiry{
		{ID: "i1", Status: models.InquiryNew},
		{ID: "i2", Status: models.InquiryContacted},
		{ID: "i3", Status: models.InquiryLost},
	}
	appointments := []models.Appointment{
		{ID: "a1", Type: models.ApptFitOn, Status: models.ApptScheduled, Date: at(0, 10)},
		{ID: "a2", Type: models.ApptConsultation, Status: models.ApptScheduled, Date: at(0, 14)},
		{ID: "a3", Type: models.ApptFitOn, Status: models.ApptScheduled, Date: at(3, 10)},
		{ID: "a4", Type: models.ApptFitOn, Status: models.ApptCompleted, Date: at(-2, 10)},
		{ID: "a5", Type: models.ApptMeasurement, Status: models.ApptScheduled, Date: at(1, 11)},
	}

	c := DashboardCounters(orders, inquiries, appointments, today)

	assert.Equal(t, 1, c.ActiveOrders, "Ready and Delivered are not active")
	assert.Equal(t, 1, c.ReadyOrders)
	assert.Equal(t, 1, c.NewInquiries)
	assert.Equal(t, 2, c.TodaysAppointments)
	assert.Equal(t, 2, c.UpcomingFitOns, "completed and past fit-ons do not count")
	assert.Equal(t, 1850.0, c.CollectedRevenue)
}

func TestDashboardCountersEmpty(t *testing.T) {
	c := DashboardCounters(nil, nil, nil, today)
	assert.Zero(t, c.ActiveOrders)
	assert.Zero(t, c.CollectedRevenue)
}

func TestBoardColumns(t *testing.T) {
	orders := []models.Order{
		{ID: "o1", Status: models.OrderCutting},
		{ID: "o2", Status: models.OrderNew},
		{ID: "o3", Status: models.OrderAdjustments},
		{ID: "o4", Status: models.OrderQC},
		{ID: "o5", Status: models.OrderFirstFit},
		{ID: "o6", Status: models.OrderDelivered},
		{ID: "o7", Status: models.OrderCutting},
	}

	columns := BoardColumns(orders)
	require.Len(t, columns, 5)

	byStage := map[models.OrderStatus][]string{}
	for _, col := range columns {
		var ids []string
		for _, o := range col.Orders {
			ids = append(ids, o.ID)
		}
		byStage[col.Stage] = ids
	}

	assert.Equal(t, []string{"o2"}, byStage[models.OrderNew])
	assert.Equal(t, []string{"o1", "o7"}, byStage[models.OrderCutting], "relative order preserved")
	assert.Nil(t, byStage[models.OrderStitching])
	assert.Equal(t, []string{"o5"}, byStage[models.OrderFirstFit])
	assert.Nil(t, byStage[models.OrderReady])

	// Adjustments, Final QC and Delivered orders appear in no column
	for stage, ids := range byStage {
		for _, off := range []string{"o3", "o4", "o6"} {
			assert.NotContains(t, ids, off, "off-board order leaked into %s", stage)
		}
	}

	// Column order is the display order
	for i, stage := range BoardStages {
		assert.Equal(t, stage, columns[i].Stage)
	}
}

func TestCalendarDay(t *testing.T) {
	appointments := []models.Appointment{
		{ID: "a1", Date: at(0, 14)},
		{ID: "a2", Date: at(0, 10)},
		{ID: "a3", Date: at(1, 9)},
		{ID: "a4", Date: at(-1, 23)},
	}

	day := CalendarDay(appointments, 2024, time.March, 15)
	require.Len(t, day, 2)
	assert.Equal(t, "a2", day[0].ID, "sorted by start time")
	assert.Equal(t, "a1", day[1].ID)

	assert.Empty(t, CalendarDay(appointments, 2024, time.July, 1))
}

func TestClientHistory(t *testing.T) {
	orders := []models.Order{
		{ID: "o1", ClientID: "c1", DueDate: at(20, 0)},
		{ID: "o2", ClientID: "c2", DueDate: at(1, 0)},
		{ID: "o3", ClientID: "c1", DueDate: at(5, 0), ChangeRequestStatus: models.ChangeReviewing},
		{ID: "o4", ClientID: "c1", DueDate: at(10, 0), ChangeRequestStatus: models.ChangeResolved},
	}

	history := ClientHistory(orders, "c1")
	require.Len(t, history, 3)

	// Ordered by due date
	assert.Equal(t, "o3", history[0].Order.ID)
	assert.Equal(t, "o4", history[1].Order.ID)
	assert.Equal(t, "o1", history[2].Order.ID)

	// Only open change requests flag attention
	assert.True(t, history[0].NeedsAttention)
	assert.False(t, history[1].NeedsAttention)
	assert.False(t, history[2].NeedsAttention)
}
