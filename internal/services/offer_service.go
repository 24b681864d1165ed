package services

import (
	"context"
	"fmt"
	"time"

	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/models"
	"gorm.io/gorm"
)

type OfferService struct {
	Store[models.JobOffer]
	now func() time.Time
}

func NewOfferService(db *gorm.DB) *OfferService {
	return &OfferService{
		Store: Store[models.JobOffer]{
			DB:       db,
			Preloads: []string{"JobApplication", "JobApplication.Student", "JobApplication.JobOpening", "JobApplication.JobOpening.Company"},
		},
		now: time.Now,
	}
}

// Extend issues an offer for an application and marks it SELECTED. An
// application holds at most one offer.
func (s *OfferService) Extend(ctx context.Context, req *dtos.JobOfferRequest) (*models.JobOffer, error) {
	offer := models.JobOffer{Status: models.OfferPending}
	if err := req.Apply(&offer, s.now()); err != nil {
		return nil, err
	}
	if !validStatus(models.OfferStatuses, offer.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, offer.Status)
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.JobOffer{}).Where("job_application_id = ?", offer.JobApplicationID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: job application %d already has an offer", ErrConflict, offer.JobApplicationID)
		}

		res := tx.Model(&models.JobApplication{}).
			Where("id = ?", offer.JobApplicationID).
			Update("status", models.ApplicationSelected)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: job application %d", ErrInvalidReference, offer.JobApplicationID)
		}
		return s.create(tx, &offer)
	})
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (s *OfferService) UpdateOffer(ctx context.Context, id uint, req *dtos.JobOfferRequest) (*models.JobOffer, error) {
	offer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applicationID := offer.JobApplicationID
	if err := req.Apply(offer, s.now()); err != nil {
		return nil, err
	}
	if !validStatus(models.OfferStatuses, offer.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, offer.Status)
	}
	offer.JobApplicationID = applicationID
	offer.JobApplication = models.JobApplication{}
	if err := s.Save(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *OfferService) UpdateStatus(ctx context.Context, id uint, status string) (*models.JobOffer, error) {
	if !validStatus(models.OfferStatuses, status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.UpdateColumn(ctx, id, "status", status)
}
