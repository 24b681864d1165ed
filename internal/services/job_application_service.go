package services

import (
	"context"
	"fmt"
	"time"

	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/models"
	"gorm.io/gorm"
)

type JobApplicationService struct {
	Store[models.JobApplication]
}

func NewJobApplicationService(db *gorm.DB) *JobApplicationService {
	return &JobApplicationService{Store: Store[models.JobApplication]{
		DB:       db,
		Preloads: []string{"Student", "JobOpening", "JobOpening.Company"},
	}}
}

// Apply files a student's application. The opening must be OPEN and a
// student may apply to it only once.
func (s *JobApplicationService) Apply(ctx context.Context, req *dtos.JobApplicationRequest) (*models.JobApplication, error) {
	var app models.JobApplication
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student models.User
		if err := tx.First(&student, req.StudentID).Error; err != nil {
			return refError(err, "student", req.StudentID)
		}
		if student.Role != models.RoleStudent {
			return fmt.Errorf("%w: user %d is not a student", ErrInvalidReference, req.StudentID)
		}

		var opening models.JobOpening
		if err := tx.First(&opening, req.JobOpeningID).Error; err != nil {
			return refError(err, "job opening", req.JobOpeningID)
		}
		if opening.Status != models.OpeningOpen {
			return fmt.Errorf("%w: job opening %d is %s", ErrConflict, opening.ID, opening.Status)
		}

		var dup int64
		if err := tx.Model(&models.JobApplication{}).
			Where("student_id = ? AND job_opening_id = ?", req.StudentID, req.JobOpeningID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return fmt.Errorf("%w: student %d already applied to job opening %d", ErrConflict, req.StudentID, req.JobOpeningID)
		}

		req.Apply(&app)
		app.Status = models.ApplicationApplied
		app.AppliedAt = time.Now()
		return s.create(tx, &app)
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateApplication edits the resume link and feedback only; the student
// and opening are fixed once applied.
func (s *JobApplicationService) UpdateApplication(ctx context.Context, id uint, req *dtos.JobApplicationRequest) (*models.JobApplication, error) {
	app, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	app.ResumeLink = req.ResumeLink
	app.Feedback = req.Feedback
	if err := s.Save(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *JobApplicationService) UpdateStatus(ctx context.Context, id uint, status string) (*models.JobApplication, error) {
	if !validStatus(models.ApplicationStatuses, status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.UpdateColumn(ctx, id, "status", status)
}

func (s *JobApplicationService) ListByJob(ctx context.Context, jobOpeningID uint) ([]models.JobApplication, error) {
	return s.List(ctx, "job_opening_id = ?", jobOpeningID)
}

func (s *JobApplicationService) ListByStudent(ctx context.Context, studentID uint) ([]models.JobApplication, error) {
	return s.List(ctx, "student_id = ?", studentID)
}

// PipelineColumn is one status column of the hiring pipeline board.
type PipelineColumn struct {
	Status       string                  `json:"status"`
	Count        int                     `json:"count"`
	Applications []models.JobApplication `json:"applications"`
}

// BuildPipeline groups applications by status in pipeline order. Every
// status gets a column, empty or not.
func BuildPipeline(apps []models.JobApplication) []PipelineColumn {
	cols := make([]PipelineColumn, len(models.ApplicationStatuses))
	idx := make(map[string]int, len(cols))
	for i, st := range models.ApplicationStatuses {
		cols[i] = PipelineColumn{Status: st, Applications: []models.JobApplication{}}
		idx[st] = i
	}
	for _, a := range apps {
		i, ok := idx[a.Status]
		if !ok {
			continue
		}
		cols[i].Applications = append(cols[i].Applications, a)
		cols[i].Count++
	}
	return cols
}
