package api

import (
	"database/sql"
	"net/http"

	"github.com/strayaid/strayaid/internal/live"
	"github.com/strayaid/strayaid/internal/notify"
)

// NewRouter creates the API router with all endpoints registered. The hub
// is owned by the caller so its lifetime spans the whole process.
func NewRouter(db *sql.DB, hub *live.Hub, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	notifier := &notify.Service{DB: db, Hub: hub}

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	reportsHandler := &ReportsHandler{DB: db, Notify: notifier}
	notificationsHandler := &NotificationsHandler{DB: db}
	adoptionsHandler := &AdoptionsHandler{DB: db, Notify: notifier}
	wsHandler := &live.Handler{Hub: hub}

	// Auth.
	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Reports.
	mux.HandleFunc("GET /api/reports", reportsHandler.List)
	mux.HandleFunc("POST /api/reports", reportsHandler.Create)
	mux.HandleFunc("GET /api/reports/{id}", reportsHandler.Get)
	mux.HandleFunc("PATCH /api/reports/{id}", reportsHandler.SetStatus)
	mux.HandleFunc("PUT /api/reports/{id}/image", reportsHandler.UploadImage)
	mux.HandleFunc("GET /api/reports/{id}/image", reportsHandler.GetImage)
	mux.HandleFunc("GET /api/reports/{id}/adoptions", adoptionsHandler.ListByReport)

	// Notifications.
	mux.HandleFunc("GET /api/notifications/{userId}", notificationsHandler.List)
	mux.HandleFunc("POST /api/notifications/{id}/read", notificationsHandler.MarkRead)

	// Adoptions.
	mux.HandleFunc("POST /api/adoptions", adoptionsHandler.Create)

	// Live channel.
	mux.Handle("GET /api/ws", wsHandler)

	return mux
}
