package services

import (
	"context"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/catalog"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/models"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/repositories"
)

type PricingService struct {
	planRepo repositories.PlanRepo
	pricing  catalog.Pricing
}

func NewPricingService(planRepo repositories.PlanRepo, pricing catalog.Pricing) *PricingService {
	return &PricingService{
		planRepo: planRepo,
		pricing:  pricing,
	}
}

// GetPlans returns the stored plans in the nested shape, or the catalog's
// fallback plans when the table is empty.
func (s *PricingService) GetPlans(ctx context.Context, isAnnual bool) ([]models.Plan, error) {
	rows, err := s.planRepo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	period := s.pricing.Period(isAnnual)

	if len(rows) == 0 {
		plans := make([]models.Plan, 0, len(s.pricing.FallbackPlans))
		for _, p := range s.pricing.FallbackPlans {
			p.Period = period
			p.Features = append([]string{}, p.Features...)
			p.NotIncluded = append([]string{}, p.NotIncluded...)
			plans = append(plans, p)
		}
		return plans, nil
	}

	plans := make([]models.Plan, 0, len(rows))
	for _, row := range rows {
		plans = append(plans, row.ToPlan(period))
	}
	return plans, nil
}
