package health

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"tailor-backend/internal/cache"
	"tailor-backend/internal/store"
)

type HealthChecker struct {
	store     *store.Store
	startedAt time.Time
}

type HealthStatus struct {
	Status string      `json:"status"`
	Store  StoreHealth `json:"store"`
	Cache  string      `json:"cache"`
}

type StoreHealth struct {
	Clients      int `json:"clients"`
	Inquiries    int `json:"inquiries"`
	Orders       int `json:"orders"`
	Appointments int `json:"appointments"`
}

// DetailedStatus adds host resource readings for the ops view.
type DetailedStatus struct {
	HealthStatus
	Uptime        string  `json:"uptime"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskPercent   float64 `json:"disk_percent"`
}

func NewHealthChecker(s *store.Store) *HealthChecker {
	return &HealthChecker{store: s, startedAt: time.Now()}
}

// CheckBasic reports liveness. The in-memory store cannot fail, so the
// service is healthy whenever it can answer; cache state is informational.
func (h *HealthChecker) CheckBasic() HealthStatus {
	clients, inquiries, orders, appointments := h.store.Counts()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cacheStatus := "disabled"
	if cache.Ping(ctx) {
		cacheStatus = "healthy"
	}

	return HealthStatus{
		Status: "healthy",
		Store: StoreHealth{
			Clients:      clients,
			Inquiries:    inquiries,
			Orders:       orders,
			Appointments: appointments,
		},
		Cache: cacheStatus,
	}
}

func (h *HealthChecker) CheckDetailed() DetailedStatus {
	status := DetailedStatus{
		HealthStatus: h.CheckBasic(),
		Uptime:       time.Since(h.startedAt).Round(time.Second).String(),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		status.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		status.MemoryPercent = vm.UsedPercent
	}
	if du, err := disk.Usage("/"); err == nil {
		status.DiskPercent = du.UsedPercent
	}

	return status
}
