package store

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/muhammad-sohel131/groupStudy-backend/internal/models"
)

type MongoAssignmentStore struct {
	collection *mongo.Collection
}

func NewMongoAssignmentStore(client *mongo.Client, dbName string) *MongoAssignmentStore {
	return &MongoAssignmentStore{
		collection: client.Database(dbName).Collection("assignments"),
	}
}

func (s *MongoAssignmentStore) List(ctx context.Context, filter AssignmentFilter) ([]models.Assignment, error) {
	query := bson.M{}
	if filter.Difficulty != "" {
		query["difficulty"] = filter.Difficulty
	}
	if filter.Search != "" {
		query["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	}

	cursor, err := s.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assignments := []models.Assignment{}
	if err = cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *MongoAssignmentStore) Get(ctx context.Context, id string) (*models.Assignment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var assignment models.Assignment
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&assignment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

func (s *MongoAssignmentStore) Create(ctx context.Context, a *models.Assignment) (string, error) {
	a.ID = primitive.NewObjectID()
	_, err := s.collection.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}
	return a.ID.Hex(), nil
}

func (s *MongoAssignmentStore) Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	update := bson.M{"$set": bson.M(fields)}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return 0, err
	}
	if result.MatchedCount == 0 {
		return 0, ErrNotFound
	}
	return result.ModifiedCount, nil
}

func (s *MongoAssignmentStore) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoSubmissionStore struct {
	collection *mongo.Collection
}

func NewMongoSubmissionStore(client *mongo.Client, dbName string) *MongoSubmissionStore {
	return &MongoSubmissionStore{
		collection: client.Database(dbName).Collection("submissions"),
	}
}

func (s *MongoSubmissionStore) List(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error) {
	query := bson.M{}
	if filter.UserEmail != "" {
		query["userEmail"] = filter.UserEmail
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := s.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := []models.Submission{}
	if err = cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (s *MongoSubmissionStore) Create(ctx context.Context, sub *models.Submission) (string, error) {
	sub.ID = primitive.NewObjectID()
	_, err := s.collection.InsertOne(ctx, sub)
	if err != nil {
		return "", err
	}
	return sub.ID.Hex(), nil
}

func (s *MongoSubmissionStore) UpdateGrade(ctx context.Context, id string, grade GradeUpdate) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	update := bson.M{
		"$set": bson.M{
			"status":        grade.Status,
			"obtainedMarks": grade.ObtainedMarks,
			"feedback":      grade.Feedback,
		},
	}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return 0, err
	}
	if result.MatchedCount == 0 {
		return 0, ErrNotFound
	}
	return result.ModifiedCount, nil
}
