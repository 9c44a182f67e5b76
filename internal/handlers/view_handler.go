package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"tailor-backend/internal/services"
	"tailor-backend/pkg/utils"
)

// ViewHandler serves the derived read-only aggregates the views render.
type ViewHandler struct {
	Views *services.ViewService
}

func NewViewHandler(views *services.ViewService) *ViewHandler {
	return &ViewHandler{Views: views}
}

func (h *ViewHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Views.Dashboard(r.Context()))
}

func (h *ViewHandler) Board(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Views.Board(r.Context()))
}

// CalendarDay serves /api/calendar/{year}/{month}/{day}.
func (h *ViewHandler) CalendarDay(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err1 := strconv.Atoi(vars["year"])
	month, err2 := strconv.Atoi(vars["month"])
	day, err3 := strconv.Atoi(vars["day"])
	if err1 != nil || err2 != nil || err3 != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		utils.Error(w, http.StatusBadRequest, "invalid calendar date")
		return
	}

	utils.JSON(w, http.StatusOK, h.Views.CalendarDay(r.Context(), year, time.Month(month), day))
}

// BusinessReport runs the executive-summary insight. Always 200; a failed
// model call is reported as available=false.
func (h *ViewHandler) BusinessReport(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Views.BusinessReport(r.Context()))
}
