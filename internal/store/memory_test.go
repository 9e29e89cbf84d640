package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muhammad-sohel131/groupStudy-backend/internal/models"
)

func TestMemoryAssignmentUpdateReportsChanges(t *testing.T) {
	s := NewMemoryAssignmentStore()
	id, err := s.Create(context.Background(), &models.Assignment{Title: "Math Homework", Difficulty: "hard"})
	assert.NoError(t, err)

	modified, err := s.Update(context.Background(), id, map[string]interface{}{"title": "Math Homework v2"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	// setting the same value again changes nothing
	modified, err = s.Update(context.Background(), id, map[string]interface{}{"title": "Math Homework v2"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), modified)

	a, err := s.Get(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "Math Homework v2", a.Title)
	assert.Equal(t, "hard", a.Difficulty)
}

func TestMemoryAssignmentErrors(t *testing.T) {
	s := NewMemoryAssignmentStore()

	_, err := s.Get(context.Background(), "not-a-hex-id")
	assert.Equal(t, ErrInvalidID, err)

	err = s.Delete(context.Background(), "65f000000000000000000000")
	assert.Equal(t, ErrNotFound, err)

	_, err = s.Update(context.Background(), "65f000000000000000000000", map[string]interface{}{"title": "x"})
	assert.Equal(t, ErrNotFound, err)
}
