package store

import (
	"context"
	"errors"

	"github.com/muhammad-sohel131/groupStudy-backend/internal/models"
)

// ErrNotFound distinguishes a missing record from a storage failure.
var ErrNotFound = errors.New("record not found")

// ErrInvalidID reports a malformed record id before any storage call.
var ErrInvalidID = errors.New("invalid record id")

type AssignmentFilter struct {
	Difficulty string // exact match
	Search     string // case-insensitive substring match on title
}

type SubmissionFilter struct {
	UserEmail string // exact match
	Status    string // exact match
}

// GradeUpdate carries the only fields a grader may change on a
// submission.
type GradeUpdate struct {
	Status        models.SubmissionStatus `json:"status"`
	ObtainedMarks int                     `json:"obtainedMarks"`
	Feedback      string                  `json:"feedback"`
}

type AssignmentStore interface {
	List(ctx context.Context, filter AssignmentFilter) ([]models.Assignment, error)
	Get(ctx context.Context, id string) (*models.Assignment, error)
	Create(ctx context.Context, a *models.Assignment) (string, error)
	// Update merges the given fields into the record and returns the
	// number of records actually modified.
	Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	// Delete removes the record, returning ErrNotFound when no record
	// matched the id.
	Delete(ctx context.Context, id string) error
}

type SubmissionStore interface {
	List(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error)
	Create(ctx context.Context, s *models.Submission) (string, error)
	// UpdateGrade merges exactly the status, obtainedMarks and feedback
	// fields into the record, leaving everything else untouched.
	UpdateGrade(ctx context.Context, id string, grade GradeUpdate) (int64, error)
}
