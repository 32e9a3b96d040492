package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/strayaid/strayaid/internal/model"
	"github.com/strayaid/strayaid/internal/store"
)

// notificationPageSize caps how many notifications a single fetch returns.
const notificationPageSize = 20

// NotificationsHandler handles notification read endpoints.
type NotificationsHandler struct {
	DB *sql.DB
}

// List handles GET /api/notifications/{userId}: the user's most recent
// notifications, newest first, capped at notificationPageSize.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	notifications, err := store.ListNotifications(r.Context(), h.DB, userID, notificationPageSize)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list notifications")
		return
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}
	jsonResponse(w, http.StatusOK, notifications)
}

// MarkRead handles POST /api/notifications/{id}/read.
func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	found, err := store.MarkNotificationRead(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to mark notification read")
		return
	}
	if !found {
		jsonError(w, http.StatusNotFound, "notification not found")
		return
	}
	jsonSuccess(w)
}
