package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/security"
)

// NewRouter wires every API route. All /api/v1 routes require a valid
// access token except item availability, which is public read-only data.
func NewRouter(
	tokens security.TokenManager,
	bookings *BookingHandler,
	reviews *ReviewHandler,
	notifications *NotificationHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware, LoggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/items/{id:[0-9]+}/availability", bookings.GetAvailability).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/bookings", bookings.CreateBooking).Methods(http.MethodPost)
	authed.HandleFunc("/bookings", bookings.ListBookings).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id:[0-9]+}", bookings.GetBooking).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id:[0-9]+}/approve", bookings.ApproveBooking).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id:[0-9]+}/reject", bookings.RejectBooking).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id:[0-9]+}/complete", bookings.CompleteBooking).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id:[0-9]+}/cancel", bookings.CancelBooking).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id:[0-9]+}/reviews", reviews.SubmitReview).Methods(http.MethodPost)
	authed.HandleFunc("/items/{id:[0-9]+}/block", bookings.BlockDates).Methods(http.MethodPost)
	authed.HandleFunc("/users/{id:[0-9]+}/reviews", reviews.ListUserReviews).Methods(http.MethodGet)
	authed.HandleFunc("/notifications", notifications.ListNotifications).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", notifications.MarkAsRead).Methods(http.MethodPost)
	authed.HandleFunc("/admin/sweep-overdue", bookings.SweepOverdue).Methods(http.MethodPost)

	return r
}
