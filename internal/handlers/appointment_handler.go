package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"tailor-backend/internal/models"
	"tailor-backend/internal/services"
	"tailor-backend/pkg/utils"
)

type AppointmentHandler struct {
	Service *services.AppointmentService
}

func NewAppointmentHandler(s *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: s}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	appt, err := h.Service.CreateAppointment(r.Context(), &req)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, appt)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appt, err := h.Service.GetAppointment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, appt)
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.ListAppointments(r.Context()))
}

func (h *AppointmentHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	appt, err := h.Service.CompleteAppointment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, appt)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appt, err := h.Service.CancelAppointment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, appt)
}
