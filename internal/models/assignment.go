package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assignment is a study task created by a user. The Email field records
// the creator; only the creator may update or delete the record.
type Assignment struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Difficulty  string             `json:"difficulty" bson:"difficulty"`
	Description string             `json:"description" bson:"description"`
	Marks       int                `json:"marks" bson:"marks"`
	DueDate     string             `json:"dueDate" bson:"dueDate"`
	PhotoURL    string             `json:"photoURL" bson:"photoURL"`
	Email       string             `json:"email" bson:"email"`
}
