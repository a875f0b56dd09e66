package repositories

import (
	"context"
	"fmt"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/core/store"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/models"
)

type PlanRepo interface {
	ListPlans(ctx context.Context) ([]models.PlanRow, error)
}

type planRepo struct {
	store store.Store
}

func NewPlanRepo(s store.Store) PlanRepo {
	return &planRepo{store: s}
}

func (r *planRepo) ListPlans(ctx context.Context) ([]models.PlanRow, error) {
	rows := []models.PlanRow{}
	if err := r.store.SelectAll(ctx, models.PlanRow{}.TableName(), &rows); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return rows, nil
}
