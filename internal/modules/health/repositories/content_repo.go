package repositories

import (
	"context"
	"fmt"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/core/store"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/models"
)

// ContentRepo reads the marketing tables. Rows come back in store order.
type ContentRepo interface {
	ListFAQs(ctx context.Context) ([]models.FAQ, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	ListTrustBadges(ctx context.Context) ([]models.TrustBadge, error)
}

type contentRepo struct {
	store store.Store
}

func NewContentRepo(s store.Store) ContentRepo {
	return &contentRepo{store: s}
}

func (r *contentRepo) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	faqs := []models.FAQ{}
	if err := r.store.SelectAll(ctx, models.FAQ{}.TableName(), &faqs); err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	return faqs, nil
}

func (r *contentRepo) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	rows := []models.Testimonial{}
	if err := r.store.SelectAll(ctx, models.Testimonial{}.TableName(), &rows); err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}

	testimonials := make([]models.Testimonial, 0, len(rows))
	for _, row := range rows {
		testimonials = append(testimonials, row.WithDefaults())
	}
	return testimonials, nil
}

func (r *contentRepo) ListTrustBadges(ctx context.Context) ([]models.TrustBadge, error) {
	badges := []models.TrustBadge{}
	if err := r.store.SelectAll(ctx, models.TrustBadge{}.TableName(), &badges); err != nil {
		return nil, fmt.Errorf("list trust badges: %w", err)
	}
	return badges, nil
}
