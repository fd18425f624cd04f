package http

import (
	"encoding/json"
	"net/http"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/service"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

type submitReviewRequest struct {
	Rating  int32  `json:"rating"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
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

	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewError(domain.CodeValidation, "invalid request body"))
		return
	}

	review, err := h.reviewSvc.SubmitReview(r.Context(), claims.UserID, rentalID, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) ListUserReviews(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	page, pageSize := pagination(r)

	reviews, total, err := h.reviewSvc.ListByReviewee(r.Context(), userID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": reviews, "total": total})
}
