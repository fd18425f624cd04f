package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/service"
)

// BookingHandler serves the booking engine endpoints.
type BookingHandler struct {
	bookingSvc      service.BookingService
	availabilitySvc service.AvailabilityService
}

func NewBookingHandler(bookingSvc service.BookingService, availabilitySvc service.AvailabilityService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc, availabilitySvc: availabilitySvc}
}

type createBookingRequest struct {
	ItemID           int32       `json:"item_id"`
	StartDate        domain.Date `json:"start_date"`
	EndDate          domain.Date `json:"end_date"`
	TotalDays        int32       `json:"total_days"`
	TotalAmountCents int32       `json:"total_amount_cents"`
}

type blockDatesRequest struct {
	StartDate domain.Date `json:"start_date"`
	EndDate   domain.Date `json:"end_date"`
}

type rejectBookingRequest struct {
	Reason string `json:"reason"`
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewError(domain.CodeValidation, "invalid request body"))
		return
	}

	rental, err := h.bookingSvc.CreateBooking(r.Context(), claims.UserID, req.ItemID,
		req.StartDate, req.EndDate, req.TotalDays, req.TotalAmountCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *BookingHandler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(actorID, rentalID int32) (*domain.Rental, error) {
		return h.bookingSvc.ApproveBooking(r.Context(), actorID, rentalID)
	})
}

func (h *BookingHandler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	var req rejectBookingRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	h.transition(w, r, func(actorID, rentalID int32) (*domain.Rental, error) {
		return h.bookingSvc.RejectBooking(r.Context(), actorID, rentalID, req.Reason)
	})
}

func (h *BookingHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(actorID, rentalID int32) (*domain.Rental, error) {
		return h.bookingSvc.CompleteBooking(r.Context(), actorID, rentalID)
	})
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}
	rentalID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	rental, err := h.bookingSvc.CancelBooking(r.Context(), claims.UserID, claims.IsAdmin(), rentalID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *BookingHandler) BlockDates(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}
	itemID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req blockDatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewError(domain.CodeValidation, "invalid request body"))
		return
	}

	block, err := h.bookingSvc.BlockDates(r.Context(), claims.UserID, itemID, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, block)
}

func (h *BookingHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	ranges, err := h.availabilitySvc.ComputeBlockedRanges(r.Context(), itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	if ranges == nil {
		ranges = []domain.DateRange{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"blocked_ranges": ranges})
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}
	rentalID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	rental, err := h.bookingSvc.GetBooking(r.Context(), claims.UserID, rentalID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}

	status := r.URL.Query().Get("status")
	page, pageSize := pagination(r)

	var (
		rentals []domain.Rental
		total   int32
		err     error
	)
	if r.URL.Query().Get("role") == "owner" {
		rentals, total, err = h.bookingSvc.ListByOwner(r.Context(), claims.UserID, status, page, pageSize)
	} else {
		rentals, total, err = h.bookingSvc.ListByRenter(r.Context(), claims.UserID, status, page, pageSize)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"rentals": rentals, "total": total})
}

// SweepOverdue triggers the overdue sweep on demand; admin only. The
// cron runner drives the same operation nightly.
func (h *BookingHandler) SweepOverdue(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok || !claims.IsAdmin() {
		writeError(w, domain.NewError(domain.CodeForbidden, "admin role required"))
		return
	}

	count, err := h.bookingSvc.SweepOverdue(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"cancelled_count": count})
}

func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, apply func(actorID, rentalID int32) (*domain.Rental, error)) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "authentication required")
		return
	}
	rentalID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	rental, err := apply(claims.UserID, rentalID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.Errorf(domain.CodeValidation, "invalid %s: %q", name, raw)
	}
	return int32(id), nil
}

func pagination(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := int32(20)
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
