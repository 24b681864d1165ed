package services

import (
	"context"
	"fmt"

	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/models"
	"gorm.io/gorm"
)

type InterviewService struct {
	Store[models.InterviewSchedule]
}

func NewInterviewService(db *gorm.DB) *InterviewService {
	return &InterviewService{Store: Store[models.InterviewSchedule]{
		DB:       db,
		Preloads: []string{"JobApplication", "JobApplication.Student", "JobApplication.JobOpening", "JobApplication.JobOpening.Company"},
	}}
}

// Schedule books an interview and moves the application to
// INTERVIEW_SCHEDULED in the same transaction.
func (s *InterviewService) Schedule(ctx context.Context, req *dtos.InterviewRequest) (*models.InterviewSchedule, error) {
	interview := models.InterviewSchedule{Status: models.InterviewScheduled}
	if err := req.Apply(&interview); err != nil {
		return nil, err
	}
	if !validStatus(models.InterviewStatuses, interview.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, interview.Status)
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.JobApplication{}).
			Where("id = ?", interview.JobApplicationID).
			Update("status", models.ApplicationInterviewScheduled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: job application %d", ErrInvalidReference, interview.JobApplicationID)
		}
		return s.create(tx, &interview)
	})
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (s *InterviewService) UpdateInterview(ctx context.Context, id uint, req *dtos.InterviewRequest) (*models.InterviewSchedule, error) {
	interview, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applicationID := interview.JobApplicationID
	if err := req.Apply(interview); err != nil {
		return nil, err
	}
	if !validStatus(models.InterviewStatuses, interview.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, interview.Status)
	}
	// Rescheduling never moves an interview to another application.
	interview.JobApplicationID = applicationID
	interview.JobApplication = models.JobApplication{}
	if err := s.Save(ctx, interview); err != nil {
		return nil, err
	}
	return interview, nil
}

func (s *InterviewService) ListForStudent(ctx context.Context, studentID uint) ([]models.InterviewSchedule, error) {
	return s.List(ctx, "job_application_id IN (?)",
		s.DB.WithContext(ctx).Model(&models.JobApplication{}).Select("id").Where("student_id = ?", studentID))
}
