package repositories

import (
	"context"
	"fmt"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/core/store"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/models"
)

// ConsultationRepo appends chat audit rows. Nothing reads them back.
type ConsultationRepo interface {
	Log(ctx context.Context, prompt, response string) error
}

type consultationRepo struct {
	store store.Store
}

func NewConsultationRepo(s store.Store) ConsultationRepo {
	return &consultationRepo{store: s}
}

// Log writes one row attributed to the anonymous user.
func (r *consultationRepo) Log(ctx context.Context, prompt, response string) error {
	row := &models.Consultation{
		UserID:     models.AnonymousUserID,
		Prompt:     prompt,
		AIResponse: response,
	}
	if err := r.store.Insert(ctx, row.TableName(), row); err != nil {
		return fmt.Errorf("log consultation: %w", err)
	}
	return nil
}
