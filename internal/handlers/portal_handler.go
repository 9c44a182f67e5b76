package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"tailor-backend/internal/services"
	"tailor-backend/pkg/utils"
)

// PortalHandler serves the client-facing portal: a client checks progress on
// their own garments and negotiates fittings and change requests. The slot
// and change actions reuse the order endpoints; these are the reads.
type PortalHandler struct {
	Clients *services.ClientService
	Orders  *services.OrderService
}

func NewPortalHandler(clients *services.ClientService, orders *services.OrderService) *PortalHandler {
	return &PortalHandler{Clients: clients, Orders: orders}
}

func (h *PortalHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	client, err := h.Clients.GetClient(r.Context(), mux.Vars(r)["client_id"])
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, client)
}

func (h *PortalHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["client_id"]
	if _, err := h.Clients.GetClient(r.Context(), clientID); err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, h.Orders.ListOrdersByClient(r.Context(), clientID))
}
