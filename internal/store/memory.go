package store

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/muhammad-sohel131/groupStudy-backend/internal/models"
)

// MemoryAssignmentStore is an in-memory AssignmentStore used by tests to
// exercise handlers without a running database. Records keep insertion
// order, matching Mongo's natural order for an unindexed collection.
type MemoryAssignmentStore struct {
	mu   sync.Mutex
	docs []models.Assignment

	// Queries counts List/Get calls so tests can assert a request was
	// rejected before storage was touched.
	Queries int
}

func NewMemoryAssignmentStore() *MemoryAssignmentStore {
	return &MemoryAssignmentStore{}
}

func (s *MemoryAssignmentStore) List(ctx context.Context, filter AssignmentFilter) ([]models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Queries++

	result := []models.Assignment{}
	for _, a := range s.docs {
		if filter.Difficulty != "" && a.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(a.Title), strings.ToLower(filter.Search)) {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (s *MemoryAssignmentStore) Get(ctx context.Context, id string) (*models.Assignment, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Queries++

	for _, a := range s.docs {
		if a.ID.Hex() == id {
			found := a
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryAssignmentStore) Create(ctx context.Context, a *models.Assignment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = primitive.NewObjectID()
	s.docs = append(s.docs, *a)
	return a.ID.Hex(), nil
}

func (s *MemoryAssignmentStore) Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.docs {
		if s.docs[i].ID.Hex() != id {
			continue
		}
		before := s.docs[i]
		mergeAssignmentFields(&s.docs[i], fields)
		if s.docs[i] == before {
			return 0, nil
		}
		return 1, nil
	}
	return 0, ErrNotFound
}

func (s *MemoryAssignmentStore) Delete(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.docs {
		if s.docs[i].ID.Hex() == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// mergeAssignmentFields applies a partial update the way Mongo's $set
// does: only the keys present in fields change. JSON numbers arrive as
// float64.
func mergeAssignmentFields(a *models.Assignment, fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "title":
			if v, ok := value.(string); ok {
				a.Title = v
			}
		case "difficulty":
			if v, ok := value.(string); ok {
				a.Difficulty = v
			}
		case "description":
			if v, ok := value.(string); ok {
				a.Description = v
			}
		case "marks":
			if v, ok := value.(float64); ok {
				a.Marks = int(v)
			}
		case "dueDate":
			if v, ok := value.(string); ok {
				a.DueDate = v
			}
		case "photoURL":
			if v, ok := value.(string); ok {
				a.PhotoURL = v
			}
		case "email":
			if v, ok := value.(string); ok {
				a.Email = v
			}
		}
	}
}

// MemorySubmissionStore is the in-memory SubmissionStore counterpart.
type MemorySubmissionStore struct {
	mu   sync.Mutex
	docs []models.Submission

	Queries int
}

func NewMemorySubmissionStore() *MemorySubmissionStore {
	return &MemorySubmissionStore{}
}

func (s *MemorySubmissionStore) List(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Queries++

	result := []models.Submission{}
	for _, sub := range s.docs {
		if filter.UserEmail != "" && sub.UserEmail != filter.UserEmail {
			continue
		}
		if filter.Status != "" && string(sub.Status) != filter.Status {
			continue
		}
		result = append(result, sub)
	}
	return result, nil
}

func (s *MemorySubmissionStore) Create(ctx context.Context, sub *models.Submission) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub.ID = primitive.NewObjectID()
	s.docs = append(s.docs, *sub)
	return sub.ID.Hex(), nil
}

func (s *MemorySubmissionStore) UpdateGrade(ctx context.Context, id string, grade GradeUpdate) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.docs {
		if s.docs[i].ID.Hex() != id {
			continue
		}
		before := s.docs[i]
		s.docs[i].Status = grade.Status
		s.docs[i].ObtainedMarks = grade.ObtainedMarks
		s.docs[i].Feedback = grade.Feedback
		if s.docs[i] == before {
			return 0, nil
		}
		return 1, nil
	}
	return 0, ErrNotFound
}
