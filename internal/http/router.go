package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tailor-backend/internal/events"
	"tailor-backend/internal/handlers"
)

func NewRouter(
	clientHandler *handlers.ClientHandler,
	inquiryHandler *handlers.InquiryHandler,
	orderHandler *handlers.OrderHandler,
	appointmentHandler *handlers.AppointmentHandler,
	viewHandler *handlers.ViewHandler,
	portalHandler *handlers.PortalHandler,
	healthHandler *handlers.HealthHandler,
	hub *events.Hub,
) *mux.Router {
	r := mux.NewRouter()

	// Staff API routes - Clients
	clientsAPI := r.PathPrefix("/api/clients").Subrouter()
	clientsAPI.HandleFunc("", clientHandler.ListClients).Methods("GET")
	clientsAPI.HandleFunc("", clientHandler.CreateClient).Methods("POST")
	clientsAPI.HandleFunc("/search", clientHandler.SearchByPhone).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.GetClient).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.UpdateClient).Methods("PUT")
	clientsAPI.HandleFunc("/{id}/history", clientHandler.GetHistory).Methods("GET")

	// Staff API routes - Inquiries
	inquiriesAPI := r.PathPrefix("/api/inquiries").Subrouter()
	inquiriesAPI.HandleFunc("", inquiryHandler.ListInquiries).Methods("GET")
	inquiriesAPI.HandleFunc("", inquiryHandler.CreateInquiry).Methods("POST")
	inquiriesAPI.HandleFunc("/{id}", inquiryHandler.GetInquiry).Methods("GET")
	inquiriesAPI.HandleFunc("/{id}/advance", inquiryHandler.AdvanceInquiry).Methods("POST")
	inquiriesAPI.HandleFunc("/{id}/convert", inquiryHandler.ConvertInquiry).Methods("POST")
	inquiriesAPI.HandleFunc("/{id}/analyze", inquiryHandler.AnalyzeInquiry).Methods("POST")

	// Staff API routes - Orders
	ordersAPI := r.PathPrefix("/api/orders").Subrouter()
	ordersAPI.HandleFunc("", orderHandler.ListOrders).Methods("GET")
	ordersAPI.HandleFunc("", orderHandler.CreateOrder).Methods("POST")
	ordersAPI.HandleFunc("/client/{client_id}", orderHandler.ListOrdersByClient).Methods("GET")
	ordersAPI.HandleFunc("/{id}", orderHandler.GetOrder).Methods("GET")
	ordersAPI.HandleFunc("/{id}", orderHandler.UpdateOrder).Methods("PUT")
	ordersAPI.HandleFunc("/{id}/advance", orderHandler.AdvanceOrder).Methods("POST")
	ordersAPI.HandleFunc("/{id}/change-request", orderHandler.RequestChange).Methods("POST")
	ordersAPI.HandleFunc("/{id}/change-request/slots", orderHandler.ProposeChangeSlots).Methods("POST")
	ordersAPI.HandleFunc("/{id}/change-request/select", orderHandler.SelectChangeSlot).Methods("POST")
	ordersAPI.HandleFunc("/{id}/change-request/resolve", orderHandler.ResolveChange).Methods("POST")
	ordersAPI.HandleFunc("/{id}/fit-slots", orderHandler.ProposeFitSlots).Methods("POST")
	ordersAPI.HandleFunc("/{id}/fit-slots/select", orderHandler.SelectFitSlot).Methods("POST")
	ordersAPI.HandleFunc("/{id}/rating", orderHandler.RateOrder).Methods("POST")
	ordersAPI.HandleFunc("/{id}/suggest-adjustments", orderHandler.SuggestAdjustments).Methods("POST")

	// Staff API routes - Appointments
	appointmentsAPI := r.PathPrefix("/api/appointments").Subrouter()
	appointmentsAPI.HandleFunc("", appointmentHandler.ListAppointments).Methods("GET")
	appointmentsAPI.HandleFunc("", appointmentHandler.CreateAppointment).Methods("POST")
	appointmentsAPI.HandleFunc("/{id}", appointmentHandler.GetAppointment).Methods("GET")
	appointmentsAPI.HandleFunc("/{id}/complete", appointmentHandler.CompleteAppointment).Methods("POST")
	appointmentsAPI.HandleFunc("/{id}/cancel", appointmentHandler.CancelAppointment).Methods("POST")

	// Staff API routes - Derived views
	r.HandleFunc("/api/dashboard", viewHandler.Dashboard).Methods("GET")
	r.HandleFunc("/api/board", viewHandler.Board).Methods("GET")
	r.HandleFunc("/api/calendar/{year}/{month}/{day}", viewHandler.CalendarDay).Methods("GET")
	r.HandleFunc("/api/report", viewHandler.BusinessReport).Methods("POST")

	// Client portal routes. Reads are portal-specific; the slot, change
	// request and rating actions reuse the order handlers against the
	// shared store.
	portalAPI := r.PathPrefix("/api/portal").Subrouter()
	portalAPI.HandleFunc("/clients/{client_id}", portalHandler.GetProfile).Methods("GET")
	portalAPI.HandleFunc("/clients/{client_id}/orders", portalHandler.ListMyOrders).Methods("GET")
	portalAPI.HandleFunc("/orders/{id}/fit-slots/select", orderHandler.SelectFitSlot).Methods("POST")
	portalAPI.HandleFunc("/orders/{id}/change-request", orderHandler.RequestChange).Methods("POST")
	portalAPI.HandleFunc("/orders/{id}/change-request/select", orderHandler.SelectChangeSlot).Methods("POST")
	portalAPI.HandleFunc("/orders/{id}/change-request/resolve", orderHandler.ResolveChange).Methods("POST")
	portalAPI.HandleFunc("/orders/{id}/rating", orderHandler.RateOrder).Methods("POST")

	// Live updates for the staff board
	r.HandleFunc("/ws", hub.HandleWS)

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.Basic).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.Detailed).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
