package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/strayaid/strayaid/internal/model"
	"github.com/strayaid/strayaid/internal/notify"
	"github.com/strayaid/strayaid/internal/store"
)

// AdoptionsHandler handles adoption-interest endpoints.
type AdoptionsHandler struct {
	DB     *sql.DB
	Notify *notify.Service
}

type createAdoptionRequest struct {
	ReportID int64 `json:"report_id"`
	UserID   int64 `json:"user_id"`
}

// Create handles POST /api/adoptions. Repeated posts for the same pair
// create new rows; interests are not deduplicated. The report's reporter
// is notified after the row is durable.
func (h *AdoptionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAdoptionRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ReportID <= 0 || req.UserID <= 0 {
		jsonError(w, http.StatusBadRequest, "report_id and user_id required")
		return
	}

	report, err := store.GetReport(r.Context(), h.DB, req.ReportID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if report == nil {
		jsonError(w, http.StatusNotFound, "report not found")
		return
	}

	if _, err := store.CreateAdoptionInterest(r.Context(), h.DB, req.ReportID, req.UserID); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to register adoption interest")
		return
	}

	if err := h.Notify.AdoptionInterestAdded(r.Context(), req.ReportID); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to notify reporter")
		return
	}

	jsonSuccess(w)
}

// ListByReport handles GET /api/reports/{id}/adoptions.
func (h *AdoptionsHandler) ListByReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	report, err := store.GetReport(r.Context(), h.DB, reportID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if report == nil {
		jsonError(w, http.StatusNotFound, "report not found")
		return
	}

	interests, err := store.ListAdoptionInterestsByReport(r.Context(), h.DB, reportID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list adoption interests")
		return
	}
	if interests == nil {
		interests = []model.AdoptionInterest{}
	}
	jsonResponse(w, http.StatusOK, interests)
}
