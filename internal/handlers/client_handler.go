package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"tailor-backend/internal/models"
	"tailor-backend/internal/services"
	"tailor-backend/pkg/utils"
)

type ClientHandler struct {
	Service *services.ClientService
	Views   *services.ViewService
}

func NewClientHandler(s *services.ClientService, views *services.ViewService) *ClientHandler {
	return &ClientHandler{Service: s, Views: views}
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	client, err := h.Service.CreateClient(r.Context(), &req)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.Service.GetClient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, client)
}

func (h *ClientHandler) SearchByPhone(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		utils.Error(w, http.StatusBadRequest, "phone parameter is required")
		return
	}

	client, err := h.Service.SearchByPhone(r.Context(), phone)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, client)
}

func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.ListClients(r.Context()))
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	client, err := h.Service.UpdateClient(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, client)
}

// GetHistory returns the client's orders ordered by due date, with active
// change requests flagged (CRM profile view).
func (h *ClientHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.Views.ClientHistory(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.DomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, history)
}
