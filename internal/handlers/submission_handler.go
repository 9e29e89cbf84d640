package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/muhammad-sohel131/groupStudy-backend/internal/middleware"
	"github.com/muhammad-sohel131/groupStudy-backend/internal/models"
	"github.com/muhammad-sohel131/groupStudy-backend/internal/store"
	"github.com/muhammad-sohel131/groupStudy-backend/internal/utils"
)

type SubmissionHandler struct {
	store store.SubmissionStore
}

func NewSubmissionHandler(s store.SubmissionStore) *SubmissionHandler {
	return &SubmissionHandler{store: s}
}

// GetSubmissions lists submissions filtered by userEmail and status. A
// request scoped to an email other than the caller's own identity is
// rejected before any store query is issued; an unscoped listing is the
// admin-style view and stays open to any authenticated caller.
func (h *SubmissionHandler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	filter := store.SubmissionFilter{
		UserEmail: r.URL.Query().Get("email"),
		Status:    r.URL.Query().Get("status"),
	}

	if filter.UserEmail != "" && filter.UserEmail != middleware.Identity(r.Context()) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	submissions, err := h.store.List(ctx, filter)
	if err != nil {
		writeStoreError(w, err, "Failed to fetch submissions")
		return
	}

	utils.WriteJSON(w, http.StatusOK, submissions)
}

// CreateSubmission inserts the posted submission as given.
func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	var newSubmission models.Submission
	if err := json.NewDecoder(r.Body).Decode(&newSubmission); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	if _, err := h.store.Create(ctx, &newSubmission); err != nil {
		writeStoreError(w, err, "Failed to create submission")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, newSubmission)
}

// GradeSubmission merges status, obtainedMarks and feedback into the
// submission. Any authenticated caller may grade any submission; the
// source system enforces no ownership or instructor check here and that
// trust model is kept as-is.
func (h *SubmissionHandler) GradeSubmission(w http.ResponseWriter, r *http.Request) {
	var grade store.GradeUpdate
	if err := json.NewDecoder(r.Body).Decode(&grade); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	modified, err := h.store.UpdateGrade(ctx, id, grade)
	if err != nil {
		writeStoreError(w, err, "Failed to grade submission")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
}
