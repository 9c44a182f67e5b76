package models

// DashboardCounters are the headline numbers on the staff dashboard.
type DashboardCounters struct {
	ActiveOrders       int     `json:"active_orders"`
	ReadyOrders        int     `json:"ready_orders"`
	NewInquiries       int     `json:"new_inquiries"`
	TodaysAppointments int     `json:"todays_appointments"`
	UpcomingFitOns     int     `json:"upcoming_fit_ons"`
	CollectedRevenue   float64 `json:"collected_revenue"`
}

// BoardColumn is one kanban column on the job board.
type BoardColumn struct {
	Stage  OrderStatus `json:"stage"`
	Orders []Order     `json:"orders"`
}

// ClientOrderHistory is one row of a client's order history in the CRM view.
type ClientOrderHistory struct {
	Order          Order `json:"order"`
	NeedsAttention bool  `json:"needs_attention"`
}
