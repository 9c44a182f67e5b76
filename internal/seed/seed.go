package seed

import (
	"fmt"
	"time"

	"tailor-backend/internal/models"
	"tailor-backend/internal/store"
	"tailor-backend/internal/timeutil"
)

// Load installs a demo shop: six clients, four inquiries, seven orders spread
// across the production stages and eight appointments around today. Dates are
// relative to now so the dashboard and calendar have something to show.
func Load(s *store.Store) error {
	now := timeutil.Now()
	day := func(offset, hour, min int) time.Time {
		d := timeutil.StartOfDay(now).AddDate(0, 0, offset)
		return d.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	}
	due := func(offset int) time.Time { return timeutil.StartOfDay(now).AddDate(0, 0, offset) }

	clients := []models.Client{
		{ID: "c1", Name: "James Sterling", Phone: "+1 555-0101", Email: "james@sterling.co", TotalOrders: 3, LTV: 4500, Notes: "Prefers double vents. Always espresso when visiting.", FitPreference: models.FitSlim, Measurements: map[string]float64{"chest": 42, "waist": 34, "sleeve": 25, "shoulder": 18, "neck": 16}},
		{ID: "c2", Name: "Arthur Morgan", Phone: "+1 555-0102", Email: "arthur@rdr.net", TotalOrders: 1, LTV: 1200, Notes: "Needs rugged stitching. Outdoor use.", FitPreference: models.FitComfort, Measurements: map[string]float64{"chest": 44, "waist": 36, "sleeve": 26, "shoulder": 19, "neck": 17}},
		{ID: "c3", Name: "Elena Fisher", Phone: "+1 555-0103", Email: "elena@uncharted.com", TotalOrders: 5, LTV: 6000, Notes: "Wedding specialist. Very detail oriented.", FitPreference: models.FitRegular, Measurements: map[string]float64{"bust": 36, "waist": 28, "hips": 38, "shoulder": 15}},
		{ID: "c4", Name: "Thomas Shelby", Phone: "+1 555-0104", Email: "tom@shelby.co.uk", Notes: "Potential high value. Likes tweed.", FitPreference: models.FitSlim, Measurements: map[string]float64{"chest": 38, "waist": 30, "sleeve": 24}},
		{ID: "c5", Name: "Grace Burgess", Phone: "+1 555-0105", Email: "grace@shelby.co.uk", Notes: "Wedding dress inquiry.", FitPreference: models.FitRegular},
		{ID: "c6", Name: "John Doe", Phone: "+1 555-0106", Email: "john@doe.com", TotalOrders: 1, LTV: 800, Notes: "Standard fit.", FitPreference: models.FitRegular, Measurements: map[string]float64{"chest": 40, "waist": 32}},
	}
	for i := range clients {
		if err := s.CreateClient(&clients[i]); err != nil {
			return fmt.Errorf("seed client %s: %w", clients[i].ID, err)
		}
	}

	inquiries := []models.Inquiry{
		{ID: "i1", ClientID: "c4", Source: models.SourceWalkIn, Type: models.InquiryNewSuit, InterestLevel: models.InterestHot, Status: models.InquiryNew, ReceivedDate: day(-1, 10, 0), Message: "Looking for a grey tweed 3-piece suit. Urgent."},
		{ID: "i2", ClientID: "c5", Source: models.SourceWhatsApp, Type: models.InquiryWedding, InterestLevel: models.InterestWarm, Status: models.InquiryContacted, ReceivedDate: day(-2, 14, 30), LastInteraction: day(-2, 16, 0), Message: "Inquiring about bridal alteration prices."},
		{ID: "i3", ClientID: "c6", Source: models.SourceWebsite, Type: models.InquiryNewSuit, InterestLevel: models.InterestCold, Status: models.InquiryNew, ReceivedDate: day(-3, 9, 0), Message: "Do you make velvet jackets?"},
		{ID: "i4", ClientID: "c1", Source: models.SourceWhatsApp, Type: models.InquiryAlteration, InterestLevel: models.InterestWarm, Status: models.InquiryContacted, ReceivedDate: day(-4, 11, 0), LastInteraction: day(-4, 12, 0), Message: "Can you adjust the waist on my last trousers?"},
	}
	for i := range inquiries {
		if err := s.CreateInquiry(&inquiries[i]); err != nil {
			return fmt.Errorf("seed inquiry %s: %w", inquiries[i].ID, err)
		}
	}

	fitOn := day(5, 10, 0)
	orders := []models.Order{
		{ID: "o1", ClientID: "c1", GarmentType: "Navy Blazer", Fabric: "Italian Wool 120s", Price: 850, PaidAmount: 400, Status: models.OrderStitching, DueDate: due(9), NextFitOnDate: &fitOn, TailorAssigned: "Mario", Measurements: map[string]float64{"chest": 42, "waist": 34}, Notes: "Gold buttons requested."},
		{ID: "o2", ClientID: "c2", GarmentType: "Hunting Coat", Fabric: "Heavy Tweed", Price: 1200, PaidAmount: 1200, Status: models.OrderReady, DueDate: due(2), TailorAssigned: "Luigi", Measurements: map[string]float64{"chest": 44, "waist": 36}, Notes: "Extra reinforced pockets."},
		{ID: "o3", ClientID: "c3", GarmentType: "Evening Gown", Fabric: "Silk Satin", Price: 2500, PaidAmount: 1000, Status: models.OrderFirstFit, DueDate: due(19), TailorAssigned: "Sofia", Measurements: map[string]float64{"bust": 36, "waist": 28}, Notes: "Intricate lace details."},
		{ID: "o4", ClientID: "c1", GarmentType: "Trousers", Fabric: "Linen", Price: 300, Status: models.OrderNew, DueDate: due(24), Measurements: map[string]float64{"waist": 34, "inseam": 32}, Notes: "Summer wear."},
		{ID: "o5", ClientID: "c4", GarmentType: "3-Piece Suit", Fabric: "Grey Tweed", Price: 1500, PaidAmount: 500, Status: models.OrderCutting, DueDate: due(14), TailorAssigned: "Mario", Measurements: map[string]float64{"chest": 38, "waist": 30}, Notes: "Hidden pocket for... accessories."},
		{ID: "o6", ClientID: "c1", GarmentType: "Dinner Jacket", Fabric: "Velvet", Price: 900, PaidAmount: 450, Status: models.OrderFirstFit, DueDate: due(35), TailorAssigned: "Mario", Measurements: map[string]float64{"chest": 42, "waist": 34}, Notes: "Midnight Blue",
			SuggestedFitSlots: []time.Time{day(3, 10, 0), day(4, 14, 0), day(5, 9, 0)}},
		{ID: "o7", ClientID: "c1", GarmentType: "White Shirt", Fabric: "Egyptian Cotton", Price: 150, PaidAmount: 150, Status: models.OrderDelivered, DueDate: due(-12), TailorAssigned: "Sofia", Measurements: map[string]float64{"neck": 16, "sleeve": 25}, Notes: "Monogram JS"},
	}
	for i := range orders {
		if err := s.SeedOrder(&orders[i]); err != nil {
			return fmt.Errorf("seed order %s: %w", orders[i].ID, err)
		}
	}

	appointments := []models.Appointment{
		{ID: "a1", ClientID: "c1", Type: models.ApptFitOn, Date: day(0, 10, 0), DurationMin: 45},
		{ID: "a2", ClientID: "c3", Type: models.ApptConsultation, Date: day(0, 14, 0), DurationMin: 60},
		{ID: "a3", ClientID: "c4", Type: models.ApptMeasurement, Date: day(1, 11, 0), DurationMin: 30},
		{ID: "a4", ClientID: "c2", Type: models.ApptConsultation, Date: day(-22, 10, 0), DurationMin: 60, Status: models.ApptCompleted},
		{ID: "a5", ClientID: "c6", Type: models.ApptMeasurement, Date: day(-15, 15, 0), DurationMin: 30, Status: models.ApptCompleted},
		{ID: "a6", ClientID: "c1", Type: models.ApptAdjustment, Date: day(6, 11, 0), DurationMin: 45},
		{ID: "a7", ClientID: "c3", Type: models.ApptFitOn, Date: day(3, 10, 0), DurationMin: 60},
		{ID: "a8", ClientID: "c5", Type: models.ApptConsultation, Date: day(2, 16, 0), DurationMin: 45},
	}
	for i := range appointments {
		if err := s.CreateAppointment(&appointments[i]); err != nil {
			return fmt.Errorf("seed appointment %s: %w", appointments[i].ID, err)
		}
	}

	return nil
}
