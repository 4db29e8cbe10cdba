package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adventureawaits/api/internal/models"
)

// BudgetService manages saved trip budgets. Reads and mutations are
// owner-or-admin scoped like bookings.
type BudgetService struct {
	budgetRepo models.BudgetRepo
}

func NewBudgetService(budgetRepo models.BudgetRepo) *BudgetService {
	return &BudgetService{
		budgetRepo: budgetRepo,
	}
}

func (bs *BudgetService) Create(ctx context.Context, userID string, budget *models.Budget) (*models.Budget, error) {
	if userID == "" {
		return nil, models.ErrUnauthorized
	}
	budget.UserID = userID

	if err := budget.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	budget.Duration = budget.ComputeDuration()
	budget.CreatedAt = now
	budget.UpdatedAt = now

	return bs.budgetRepo.CreateBudget(ctx, budget)
}

func (bs *BudgetService) Get(ctx context.Context, id, callerID, callerRole string) (*models.Budget, error) {
	budget, err := bs.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(budget.UserID, callerID, callerRole); err != nil {
		return nil, err
	}
	return budget, nil
}

func (bs *BudgetService) List(ctx context.Context, callerID string) ([]*models.Budget, error) {
	if callerID == "" {
		return nil, models.ErrUnauthorized
	}
	return bs.budgetRepo.ListBudgetsByUser(ctx, callerID)
}

// Update replaces the budget document with the submitted payload,
// keeping identity and ownership intact and rederiving the duration.
func (bs *BudgetService) Update(ctx context.Context, id, callerID, callerRole string, budget *models.Budget) (*models.Budget, error) {
	existing, err := bs.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(existing.UserID, callerID, callerRole); err != nil {
		return nil, err
	}

	budget.UserID = existing.UserID
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	set := bson.M{
		"title":                 budget.Title,
		"destination":           budget.Destination,
		"start_date":            budget.StartDate,
		"end_date":              budget.EndDate,
		"duration":              budget.ComputeDuration(),
		"total_budget":          budget.TotalBudget,
		"num_travelers":         budget.NumTravelers,
		"transportation_budget": budget.TransportationBudget,
		"accommodation_budget":  budget.AccommodationBudget,
		"food_budget":           budget.FoodBudget,
		"activities_budget":     budget.ActivitiesBudget,
		"shopping_budget":       budget.ShoppingBudget,
		"other_budget":          budget.OtherBudget,
		"expenses":              budget.Expenses,
		"updated_at":            time.Now(),
	}
	return bs.budgetRepo.UpdateBudget(ctx, existing.ID, set)
}

func (bs *BudgetService) Delete(ctx context.Context, id, callerID, callerRole string) error {
	existing, err := bs.fetch(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(existing.UserID, callerID, callerRole); err != nil {
		return err
	}
	return bs.budgetRepo.DeleteBudget(ctx, existing.ID)
}

func (bs *BudgetService) fetch(ctx context.Context, id string) (*models.Budget, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return bs.budgetRepo.GetBudgetByID(ctx, oid)
}
