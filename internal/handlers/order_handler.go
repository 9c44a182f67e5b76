package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"tailor-backend/internal/models"
	"tailor-backend/internal/services"
	"tailor-backend/pkg/utils"
)

type OrderHandler struct {
	Service *services.OrderService
}

func NewOrderHandler(s *services.OrderService) *OrderHandler {
	return &OrderHandler{Service: s}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.CreateOrder(r.Context(), &req)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Service.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.ListOrders(r.Context()))
}

func (h *OrderHandler) ListOrdersByClient(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.ListOrdersByClient(r.Context(), mux.Vars(r)["client_id"]))
}

func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.UpdateOrderDetails(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	var req models.AdvanceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.AdvanceOrderStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) RequestChange(w http.ResponseWriter, r *http.Request) {
	var req models.ChangeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.RequestChange(r.Context(), mux.Vars(r)["id"], req.Reason)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) ProposeChangeSlots(w http.ResponseWriter, r *http.Request) {
	var req models.ProposeSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.ProposeChangeSlots(r.Context(), mux.Vars(r)["id"], req.Slots)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) SelectChangeSlot(w http.ResponseWriter, r *http.Request) {
	var req models.SelectSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.SelectChangeSlot(r.Context(), mux.Vars(r)["id"], req.Slot)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) ResolveChange(w http.ResponseWriter, r *http.Request) {
	order, err := h.Service.ResolveChange(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) ProposeFitSlots(w http.ResponseWriter, r *http.Request) {
	var req models.ProposeSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.ProposeFitSlots(r.Context(), mux.Vars(r)["id"], req.Slots)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) SelectFitSlot(w http.ResponseWriter, r *http.Request) {
	var req models.SelectSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.SelectFitSlot(r.Context(), mux.Vars(r)["id"], req.Slot)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) RateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.RateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.RateOrder(r.Context(), mux.Vars(r)["id"], req.Rating, req.Feedback)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, order)
}

// SuggestAdjustments returns the job-card insight. Always 200 with an
// availability flag: insight failures never fail the view.
func (h *OrderHandler) SuggestAdjustments(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.SuggestAdjustments(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, result)
}
