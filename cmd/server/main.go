package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"tailor-backend/internal/cache"
	"tailor-backend/internal/config"
	"tailor-backend/internal/events"
	"tailor-backend/internal/handlers"
	"tailor-backend/internal/health"
	h "tailor-backend/internal/http"
	"tailor-backend/internal/insight"
	"tailor-backend/internal/middleware"
	"tailor-backend/internal/seed"
	"tailor-backend/internal/services"
	"tailor-backend/internal/sms"
	"tailor-backend/internal/store"
	"tailor-backend/internal/timeutil"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	seedDemo := flag.Bool("seed", false, "Load demo shop data on startup")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Pin all day-boundary math to the shop's timezone
	if err := timeutil.Init(cfg.Shop.Timezone); err != nil {
		log.Fatalf("Invalid shop timezone %q: %v", cfg.Shop.Timezone, err)
	}

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (insight responses will not be cached)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// In-memory store
	st := store.New()
	if *seedDemo {
		if err := seed.Load(st); err != nil {
			log.Fatalf("Failed to load demo data: %v", err)
		}
		clients, inquiries, orders, appointments := st.Counts()
		log.Printf("[Seed] Loaded demo data: %d clients, %d inquiries, %d orders, %d appointments",
			clients, inquiries, orders, appointments)
	}

	// Live update hub for the staff board
	hub := events.NewHub()
	go hub.Run()

	// Use Gemini for insights, fallback to mock if API key not set
	var provider insight.Provider
	if cfg.Insight.APIKey != "" {
		log.Printf("Using Gemini (%s) for insights", cfg.Insight.Model)
		provider = insight.NewGeminiProvider(cfg.Insight.APIKey, cfg.Insight.Model,
			time.Duration(cfg.Insight.TimeoutSeconds)*time.Second)
	} else {
		log.Println("WARNING: GEMINI_API_KEY not set, using mock insights (canned responses)")
		provider = insight.NewMockProvider()
	}
	gateway := insight.NewGateway(provider, time.Duration(cfg.Insight.TimeoutSeconds)*time.Second)

	// Use Fast2SMS for client notifications, fallback to MockSMS if API key not set
	var smsProvider sms.Provider
	if cfg.SMS.APIKey != "" {
		log.Println("Using Fast2SMS for client notifications")
		smsProvider = sms.NewFast2SMSProvider(cfg.SMS.APIKey)
	} else {
		log.Println("WARNING: FAST2SMS_API_KEY not set, using MockSMS (notifications will only print to logs)")
		smsProvider = sms.NewMockProvider()
	}
	notifications := services.NewNotificationService(smsProvider, cfg.Shop.Name)

	// Initialize health checker
	healthChecker := health.NewHealthChecker(st)

	// Initialize services
	clientService := services.NewClientService(st, hub)
	inquiryService := services.NewInquiryService(st, hub, gateway)
	orderService := services.NewOrderService(st, hub, gateway, notifications)
	appointmentService := services.NewAppointmentService(st, hub)
	viewService := services.NewViewService(st, gateway)

	// Initialize handlers
	clientHandler := handlers.NewClientHandler(clientService, viewService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	orderHandler := handlers.NewOrderHandler(orderService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	viewHandler := handlers.NewViewHandler(viewService)
	portalHandler := handlers.NewPortalHandler(clientService, orderService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(clientHandler, inquiryHandler, orderHandler, appointmentHandler,
		viewHandler, portalHandler, healthHandler, hub)

	// Wrap with panic recovery and metrics middleware
	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s (shop: %s)", addr, cfg.Shop.Name)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
