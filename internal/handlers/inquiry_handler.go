package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"tailor-backend/internal/models"
	"tailor-backend/internal/services"
	"tailor-backend/pkg/utils"
)

type InquiryHandler struct {
	Service *services.InquiryService
}

func NewInquiryHandler(s *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{Service: s}
}

func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inquiry, err := h.Service.CreateInquiry(r.Context(), &req)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, inquiry)
}

func (h *InquiryHandler) GetInquiry(w http.ResponseWriter, r *http.Request) {
	inquiry, err := h.Service.GetInquiry(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, inquiry)
}

func (h *InquiryHandler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.ListInquiries(r.Context()))
}

func (h *InquiryHandler) AdvanceInquiry(w http.ResponseWriter, r *http.Request) {
	var req models.AdvanceInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inquiry, err := h.Service.AdvanceInquiry(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, inquiry)
}

// ConvertInquiry marks the inquiry converted and opens the order in one step.
func (h *InquiryHandler) ConvertInquiry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Service.ConvertInquiry(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, order)
}

// AnalyzeInquiry returns the sales-psychology insight. Always 200: a failed
// model call is reported as available=false in the body.
func (h *InquiryHandler) AnalyzeInquiry(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.Analyze(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, result)
}
