package services

import (
	"context"
	"fmt"

	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/models"
	"gorm.io/gorm"
)

type JobOpeningService struct {
	Store[models.JobOpening]
}

func NewJobOpeningService(db *gorm.DB) *JobOpeningService {
	return &JobOpeningService{Store: Store[models.JobOpening]{DB: db, Preloads: []string{"Company"}}}
}

func (s *JobOpeningService) CreateOpening(ctx context.Context, req *dtos.JobOpeningRequest) (*models.JobOpening, error) {
	opening := models.JobOpening{Status: models.OpeningDraft}
	if err := s.fill(ctx, &opening, req); err != nil {
		return nil, err
	}
	if err := s.Create(ctx, &opening); err != nil {
		return nil, err
	}
	return &opening, nil
}

func (s *JobOpeningService) UpdateOpening(ctx context.Context, id uint, req *dtos.JobOpeningRequest) (*models.JobOpening, error) {
	opening, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.fill(ctx, opening, req); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, opening); err != nil {
		return nil, err
	}
	return opening, nil
}

func (s *JobOpeningService) fill(ctx context.Context, opening *models.JobOpening, req *dtos.JobOpeningRequest) error {
	if err := req.Apply(opening); err != nil {
		return err
	}
	if !validStatus(models.OpeningStatuses, opening.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, opening.Status)
	}
	ok, err := exists[models.Company](s.DB.WithContext(ctx), opening.CompanyID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: company %d", ErrInvalidReference, opening.CompanyID)
	}
	// The struct may still hold the previously preloaded company.
	opening.Company = models.Company{}
	return nil
}

func (s *JobOpeningService) UpdateStatus(ctx context.Context, id uint, status string) (*models.JobOpening, error) {
	if !validStatus(models.OpeningStatuses, status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.UpdateColumn(ctx, id, "status", status)
}

func (s *JobOpeningService) ListByStatus(ctx context.Context, status string) ([]models.JobOpening, error) {
	return s.List(ctx, "status = ?", status)
}

// DeleteOpening refuses to remove an opening students have applied to.
func (s *JobOpeningService) DeleteOpening(ctx context.Context, id uint) error {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&models.JobApplication{}).Where("job_opening_id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: job opening %d has %d applications", ErrConflict, id, n)
	}
	return s.Delete(ctx, id)
}
