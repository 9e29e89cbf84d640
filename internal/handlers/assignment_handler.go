package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/muhammad-sohel131/groupStudy-backend/internal/middleware"
	"github.com/muhammad-sohel131/groupStudy-backend/internal/models"
	"github.com/muhammad-sohel131/groupStudy-backend/internal/store"
	"github.com/muhammad-sohel131/groupStudy-backend/internal/utils"
)

const storeTimeout = 5 * time.Second

type AssignmentHandler struct {
	store store.AssignmentStore
}

func NewAssignmentHandler(s store.AssignmentStore) *AssignmentHandler {
	return &AssignmentHandler{store: s}
}

// writeStoreError maps store errors onto the HTTP taxonomy shared by all
// handlers.
func writeStoreError(w http.ResponseWriter, err error, failureMsg string) {
	switch err {
	case store.ErrInvalidID:
		http.Error(w, "Invalid id", http.StatusBadRequest)
	case store.ErrNotFound:
		http.Error(w, "Not found", http.StatusNotFound)
	default:
		log.Printf("storage failure: %v", err)
		http.Error(w, failureMsg, http.StatusInternalServerError)
	}
}

// GetAssignments lists assignments, optionally filtered by exact
// difficulty and a case-insensitive title search. Public.
func (h *AssignmentHandler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	filter := store.AssignmentFilter{
		Difficulty: r.URL.Query().Get("difficulty"),
		Search:     r.URL.Query().Get("search"),
	}

	assignments, err := h.store.List(ctx, filter)
	if err != nil {
		writeStoreError(w, err, "Failed to fetch assignments")
		return
	}

	utils.WriteJSON(w, http.StatusOK, assignments)
}

// GetAssignmentByID fetches a single assignment.
func (h *AssignmentHandler) GetAssignmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	assignment, err := h.store.Get(ctx, id)
	if err != nil {
		writeStoreError(w, err, "Failed to fetch assignment")
		return
	}

	utils.WriteJSON(w, http.StatusOK, assignment)
}

// CreateAssignment inserts the posted assignment as given; the creator's
// email comes from the body, not the session, matching the source data
// model.
func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var newAssignment models.Assignment
	if err := json.NewDecoder(r.Body).Decode(&newAssignment); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	if _, err := h.store.Create(ctx, &newAssignment); err != nil {
		writeStoreError(w, err, "Failed to create assignment")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, newAssignment)
}

// UpdateAssignment merges the posted fields into the assignment. Only the
// creator may update: the record is re-fetched first, absence reported as
// 404 and an owner mismatch as 403, before any mutation is applied.
func (h *AssignmentHandler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	delete(fields, "_id")

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	assignment, err := h.store.Get(ctx, id)
	if err != nil {
		writeStoreError(w, err, "Failed to fetch assignment")
		return
	}

	if assignment.Email != middleware.Identity(r.Context()) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	modified, err := h.store.Update(ctx, id, fields)
	if err != nil {
		writeStoreError(w, err, "Failed to update assignment")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
}

// DeleteAssignment removes the assignment, with the same fetch-then-own
// check as UpdateAssignment. A repeated delete keeps returning 404.
func (h *AssignmentHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	assignment, err := h.store.Get(ctx, id)
	if err != nil {
		writeStoreError(w, err, "Failed to fetch assignment")
		return
	}

	if assignment.Email != middleware.Identity(r.Context()) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.store.Delete(ctx, id); err != nil {
		writeStoreError(w, err, "Failed to delete assignment")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]int64{"deletedCount": 1})
}
