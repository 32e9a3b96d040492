package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/strayaid/strayaid/internal/imaging"
	"github.com/strayaid/strayaid/internal/metrics"
	"github.com/strayaid/strayaid/internal/model"
	"github.com/strayaid/strayaid/internal/notify"
	"github.com/strayaid/strayaid/internal/store"
)

// ReportsHandler handles report endpoints. It owns the lifecycle gate
// for status transitions and triggers notification fanout on writes.
type ReportsHandler struct {
	DB     *sql.DB
	Notify *notify.Service
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/reports. City and state query parameters narrow
// the list; both together compose with AND.
func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	state := r.URL.Query().Get("state")

	reports, err := store.ListReports(r.Context(), h.DB, city, state)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}
	if reports == nil {
		reports = []model.Report{}
	}
	jsonResponse(w, http.StatusOK, reports)
}

// Create handles POST /api/reports. After the report is durable, every
// organization in the report's city or state gets a notification.
func (h *ReportsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewReport
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ReporterID <= 0 || req.AnimalType == "" || req.City == "" {
		jsonError(w, http.StatusBadRequest, "reporter_id, animal_type and city required")
		return
	}

	reporter, err := store.GetUser(r.Context(), h.DB, req.ReporterID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if reporter == nil {
		jsonError(w, http.StatusBadRequest, "unknown reporter")
		return
	}

	report, err := store.CreateReport(r.Context(), h.DB, req)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create report")
		return
	}
	metrics.ReportsCreated.Inc()

	if err := h.Notify.ReportCreated(r.Context(), report); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to notify organizations")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]int64{"id": report.ID})
}

// Get handles GET /api/reports/{id}.
func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	report, err := store.GetReport(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get report")
		return
	}
	if report == nil {
		jsonError(w, http.StatusNotFound, "report not found")
		return
	}
	jsonResponse(w, http.StatusOK, report)
}

// SetStatus handles PATCH /api/reports/{id}. Transitions move forward
// only: pending → in-treatment → rescued → adopted (skips allowed).
// The reporter is notified after the new status is durable.
func (h *ReportsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !model.ValidStatus(req.Status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	report, err := store.GetReport(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if report == nil {
		jsonError(w, http.StatusNotFound, "report not found")
		return
	}

	if !model.CanTransition(report.Status, req.Status) {
		jsonError(w, http.StatusBadRequest, "illegal status transition")
		return
	}

	if err := store.UpdateReportStatus(r.Context(), h.DB, id, req.Status); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update status")
		return
	}

	if err := h.Notify.ReportStatusChanged(r.Context(), id, req.Status); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to notify reporter")
		return
	}

	jsonSuccess(w)
}

// UploadImage handles PUT /api/reports/{id}/image.
func (h *ReportsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	report, err := store.GetReport(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if report == nil {
		jsonError(w, http.StatusNotFound, "report not found")
		return
	}

	// Limit to 10 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetReportImage(r.Context(), h.DB, id, photo.Data, photo.MIME); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// GetImage handles GET /api/reports/{id}/image.
func (h *ReportsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	data, mime, err := store.GetReportImage(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
