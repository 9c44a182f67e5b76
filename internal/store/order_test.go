package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-backend/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	s.SetClock(func() time.Time {
		return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	})
	require.NoError(t, s.CreateClient(&models.Client{ID: "c1", Name: "James Sterling", Phone: "+1 555-0101"}))
	return s
}

func createTestOrder(t *testing.T, s *Store) *models.Order {
	t.Helper()
	order, err := s.CreateOrder(&models.CreateOrderRequest{
		ClientID:    "c1",
		GarmentType: "Navy Blazer",
		Fabric:      "Italian Wool 120s",
		Price:       850,
		PaidAmount:  400,
		DueDate:     time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return order
}

func advanceTo(t *testing.T, s *Store, id string, target models.OrderStatus) *models.Order {
	t.Helper()
	o, err := s.GetOrder(id)
	require.NoError(t, err)
	for o.Status != target {
		next := models.OrderStatusChain[o.Status.Index()+1]
		o, err = s.AdvanceOrderStatus(id, next)
		require.NoError(t, err)
	}
	return o
}

func TestCreateOrder(t *testing.T) {
	s := newTestStore(t)
	order := createTestOrder(t, s)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderNew, order.Status)
	assert.Equal(t, "James Sterling", order.ClientName)

	client, err := s.GetClient("c1")
	require.NoError(t, err)
	assert.Equal(t, 1, client.TotalOrders)
}

func TestCreateOrderValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateOrder(&models.CreateOrderRequest{ClientID: "c1"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateOrder(&models.CreateOrderRequest{ClientID: "nobody", GarmentType: "Coat"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.CreateOrder(&models.CreateOrderRequest{ClientID: "c1", GarmentType: "Coat", Price: -1})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdvanceOrderWalksFullChain(t *testing.T) {
	s := newTestStore(t)
	order := createTestOrder(t, s)

	final := advanceTo(t, s, order.ID, models.OrderDelivered)
	assert.Equal(t, models.OrderDelivered, final.Status)
}

func TestAdvanceOrderRejectsSkipsAndRegressions(t *testing.T) {
	s := newTestStore(t)
	order := createTestOrder(t, s)

	// Skipping a stage
	_, err := s.AdvanceOrderStatus(order.ID, models.OrderStitching)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Moving backwards
	advanceTo(t, s, order.ID, models.OrderStitching)
	_, err = s.AdvanceOrderStatus(order.ID, models.OrderCutting)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Staying put
	_, err = s.AdvanceOrderStatus(order.ID, models.OrderStitching)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Unknown stage
	_, err = s.AdvanceOrderStatus(order.ID, "Pressing")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdvanceOrderPastDeliveredRejected(t *testing.T) {
	s := newTestStore(t)
	order := createTestOrder(t, s)
	advanceTo(t, s, order.ID, models.OrderDelivered)

	for _, st := range models.OrderStatusChain {
		_, err := s.AdvanceOrderStatus(order.ID, st)
		assert.ErrorIs(t, err, ErrInvalidTransition, "delivered order advanced to %s", st)
	}
}

func TestDeliveryCreditsClientLTV(t *testing.T) {
	s := newTestStore(t)
	order := createTestOrder(t, s)

	advanceTo(t, s, order.ID, models.OrderReady)
	client, err := s.GetClient("c1")
	require.NoError(t, err)
	assert.Zero(t, client.LTV, "LTV must not move before delivery")

	advanceTo(t, s, order.ID, models.OrderDelivered)
	client, err = s.GetClient("c1")
	require.NoError(t, err)
	assert.Equal(t, 850.0, client.LTV)
}

func TestRequestChangeLifecycle(t *testing.T) {
	s := newTestStore(t)
	order := createTestOrder(t, s)
	advanceTo(t, s, order.ID, models.OrderStitching)

	o, err := s.RequestChange(order.ID, "Sleeves feel tight")
	require.NoError(t, err)
	assert.Equal(t, models.ChangeReviewing, o.ChangeRequestStatus)
	assert.Equal(t, "Sleeves feel tight", o.ChangeRequest)

	// An open change request blocks production
	_, err = s.AdvanceOrderStatus(order.ID, models.OrderFirstFit)
	assert.ErrorIs(t, err, ErrInvalidState)

	slots := []time.Time{
		time.Date(2024, time.March, 18, 10, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 19, 14, 0, 0, 0, time.UTC),
	}
	o, err = s.ProposeChangeSlots(order.ID, slots)
	require.NoError(t, err)
	assert.Equal(t, slots, o.AppointmentSuggestedSlots)

	o, err = s.SelectChangeSlot(order.ID, slots[1])
	require.NoError(t, err)
	assert.Equal(t, models.ChangeScheduled, o.ChangeRequestStatus)
	require.NotNil(t, o.AppointmentSelectedSlot)
	assert.True(t, o.AppointmentSelectedSlot.Equal(slots[1]))

	o, err = s.ResolveChange(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ChangeNone, o.ChangeRequestStatus)
	assert.Empty(t, o.ChangeRequest)
	assert.Nil(t, o.AppointmentSelectedSlot)
	assert.Empty(t, o.AppointmentSuggestedSlots)

	// Production unblocks once resolved
	_, err = s.AdvanceOrderStatus(order.ID, models.OrderFirstFit)
	assert.NoError(t, err)
}

func TestRequestChangeRejections(t *testing.T) {
	s := newTestStore(t)
	order := createTestOrder(t, s)

	// Not yet in production
	_, err := s.RequestChange(order.ID, "wrong lining")
	assert.ErrorIs(t, err, ErrInvalidState)

	advanceTo(t, s, order.ID, models.OrderCutting)
	_, err = s.RequestChange(order.ID, "wrong lining")
	require.NoError(t, err)

	// Only one open change request at a time
	_, err = s.RequestChange(order.ID, "also the buttons")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSelectChangeSlotRequiresOfferedSlot(t *testing.T) {
	s := newTestStore(t)
	order := createTestOrder(t, s)
	advanceTo(t, s, order.ID, models.OrderCutting)

	_, err := s.RequestChange(order.ID, "collar shape")
	require.NoError(t, err)

	offered := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)
	_, err = s.ProposeChangeSlots(order.ID, []time.Time{offered})
	require.NoError(t, err)

	_, err = s.SelectChangeSlot(order.ID, offered.Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidState)

	o, err := s.SelectChangeSlot(order.ID, offered)
	require.NoError(t, err)
	assert.Equal(t, models.ChangeScheduled, o.ChangeRequestStatus)
}

func TestSelectChangeSlotBooksConsultation(t *testing.T) {
	s := newTestStore(t)
	order := createTestOrder(t, s)
	advanceTo(t, s, order.ID, models.OrderCutting)

	_, err := s.RequestChange(order.ID, "collar shape")
	require.NoError(t, err)
	slot := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)
	_, err = s.ProposeChangeSlots(order.ID, []time.Time{slot})
	require.NoError(t, err)
	_, err = s.SelectChangeSlot(order.ID, slot)
	require.NoError(t, err)

	appts := s.ListAppointments()
	require.Len(t, appts, 1)
	assert.Equal(t, models.ApptConsultation, appts[0].Type)
	assert.Equal(t, order.ID, appts[0].OrderID)
	assert.True(t, appts[0].Date.Equal(slot))
	assert.Equal(t, consultationDurationMin, appts[0].DurationMin)
}

func TestFitSlotNegotiation(t *testing.T) {
	s := newTestStore(t)
	order := createTestOrder(t, s)

	slots := []time.Time{
		time.Date(2024, time.March, 21, 10, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 22, 14, 0, 0, 0, time.UTC),
	}

	// Only fitting stages accept slot proposals
	_, err := s.ProposeFitSlots(order.ID, slots)
	assert.ErrorIs(t, err, ErrInvalidState)

	advanceTo(t, s, order.ID, models.OrderFirstFit)
	o, err := s.ProposeFitSlots(order.ID, slots)
	require.NoError(t, err)
	assert.Equal(t, slots, o.SuggestedFitSlots)

	// A slot that was never offered is rejected, and the offers survive
	_, err = s.SelectFitSlot(order.ID, slots[0].Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidState)
	o, err = s.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, slots, o.SuggestedFitSlots)
	assert.Nil(t, o.SelectedFitSlot)

	o, err = s.SelectFitSlot(order.ID, slots[1])
	require.NoError(t, err)
	require.NotNil(t, o.SelectedFitSlot)
	assert.True(t, o.SelectedFitSlot.Equal(slots[1]))
	require.NotNil(t, o.NextFitOnDate)
	assert.True(t, o.NextFitOnDate.Equal(slots[1]))

	appts := s.ListAppointments()
	require.Len(t, appts, 1)
	assert.Equal(t, models.ApptFitOn, appts[0].Type)
	assert.Equal(t, fitOnDurationMin, appts[0].DurationMin)
}

func TestRateOrder(t *testing.T) {
	s := newTestStore(t)
	order := createTestOrder(t, s)

	// Too early in the lifecycle
	_, err := s.RateOrder(order.ID, 5, "excellent")
	assert.ErrorIs(t, err, ErrInvalidState)

	advanceTo(t, s, order.ID, models.OrderReady)

	_, err = s.RateOrder(order.ID, 0, "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = s.RateOrder(order.ID, 6, "")
	assert.ErrorIs(t, err, ErrValidation)

	o, err := s.RateOrder(order.ID, 4, "very sharp")
	require.NoError(t, err)
	assert.Equal(t, 4, o.Rating)
	assert.Equal(t, "very sharp", o.Feedback)

	// Write-once
	_, err = s.RateOrder(order.ID, 5, "changed my mind")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestUpdateOrderDetails(t *testing.T) {
	s := newTestStore(t)
	order := createTestOrder(t, s)

	fabric := "Harris Tweed"
	paid := 600.0
	o, err := s.UpdateOrderDetails(order.ID, &models.UpdateOrderRequest{
		Fabric:     &fabric,
		PaidAmount: &paid,
	})
	require.NoError(t, err)
	assert.Equal(t, "Harris Tweed", o.Fabric)
	assert.Equal(t, 600.0, o.PaidAmount)
	// Untouched fields keep their values
	assert.Equal(t, 850.0, o.Price)
	assert.Equal(t, models.OrderNew, o.Status)
}

func TestListOrdersByClient(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateClient(&models.Client{ID: "c2", Name: "Arthur Morgan", Phone: "+1 555-0102"}))

	first := createTestOrder(t, s)
	_, err := s.CreateOrder(&models.CreateOrderRequest{ClientID: "c2", GarmentType: "Hunting Coat"})
	require.NoError(t, err)
	second := createTestOrder(t, s)

	mine := s.ListOrdersByClient("c1")
	require.Len(t, mine, 2)
	assert.Equal(t, first.ID, mine[0].ID)
	assert.Equal(t, second.ID, mine[1].ID)
}

func TestSeedOrderKeepsStatusAndCounters(t *testing.T) {
	s := newTestStore(t)

	err := s.SeedOrder(&models.Order{
		ID:          "o1",
		ClientID:    "c1",
		GarmentType: "Hunting Coat",
		Status:      models.OrderReady,
		Price:       1200,
	})
	require.NoError(t, err)

	o, err := s.GetOrder("o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderReady, o.Status)

	client, err := s.GetClient("c1")
	require.NoError(t, err)
	assert.Zero(t, client.TotalOrders)
}
