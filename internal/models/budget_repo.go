package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BudgetRepo interface {
	CreateBudget(ctx context.Context, budget *Budget) (*Budget, error)
	GetBudgetByID(ctx context.Context, id primitive.ObjectID) (*Budget, error)
	ListBudgetsByUser(ctx context.Context, userID string) ([]*Budget, error)
	UpdateBudget(ctx context.Context, id primitive.ObjectID, set bson.M) (*Budget, error)
	DeleteBudget(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateBudget(ctx context.Context, budget *Budget) (*Budget, error) {
	col, err := mdb.GetCollection(ctx, DbName, BudgetsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if budget.ID.IsZero() {
		budget.ID = primitive.NewObjectID()
	}
	if _, err := col.InsertOne(ctx, budget); err != nil {
		return nil, fmt.Errorf("error inserting budget: %v", err)
	}
	return budget, nil
}

func (mdb *MongodbRepo) GetBudgetByID(ctx context.Context, id primitive.ObjectID) (*Budget, error) {
	col, err := mdb.GetCollection(ctx, DbName, BudgetsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var budget Budget
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&budget)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding budget: %v", err)
	}
	return &budget, nil
}

func (mdb *MongodbRepo) ListBudgetsByUser(ctx context.Context, userID string) ([]*Budget, error) {
	col, err := mdb.GetCollection(ctx, DbName, BudgetsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding budgets: %v", err)
	}
	defer cursor.Close(ctx)

	budgets := []*Budget{}
	for cursor.Next(ctx) {
		var b Budget
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding budget: %v", err)
		}
		budgets = append(budgets, &b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return budgets, nil
}

func (mdb *MongodbRepo) UpdateBudget(ctx context.Context, id primitive.ObjectID, set bson.M) (*Budget, error) {
	col, err := mdb.GetCollection(ctx, DbName, BudgetsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Budget
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating budget: %v", err)
	}
	return &updated, nil
}

func (mdb *MongodbRepo) DeleteBudget(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName, BudgetsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting budget: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
