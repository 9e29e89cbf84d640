package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubmissionStatus string

const (
	StatusPending   SubmissionStatus = "pending"
	StatusCompleted SubmissionStatus = "completed"
)

// Submission is a user's answer to an assignment. UserEmail records the
// submitter; listing by email is restricted to the submitter themselves,
// while grading is open to any authenticated caller.
type Submission struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	AssignmentID  string             `json:"assignmentId" bson:"assignmentId"`
	Title         string             `json:"title" bson:"title"`
	Marks         int                `json:"marks" bson:"marks"`
	UserEmail     string             `json:"userEmail" bson:"userEmail"`
	UserName      string             `json:"userName" bson:"userName"`
	DocLink       string             `json:"docLink" bson:"docLink"`
	Note          string             `json:"note" bson:"note"`
	Status        SubmissionStatus   `json:"status" bson:"status"`
	ObtainedMarks int                `json:"obtainedMarks" bson:"obtainedMarks"`
	Feedback      string             `json:"feedback" bson:"feedback"`
}
