package services

import (
	"context"
	"log"

	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/models"
	"gorm.io/gorm"
)

type NotificationService struct {
	Store[models.Notification]
	Mail *MailService
}

func NewNotificationService(db *gorm.DB, mail *MailService) *NotificationService {
	return &NotificationService{Store: Store[models.Notification]{DB: db}, Mail: mail}
}

// Notify stores an in-app notification and mirrors it to the recipient's
// inbox when mail is configured. A failed email does not fail the call.
func (s *NotificationService) Notify(ctx context.Context, req *dtos.NotificationRequest) (*models.Notification, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, req.UserID).Error; err != nil {
		return nil, refError(err, "user", req.UserID)
	}

	var n models.Notification
	req.Apply(&n)
	if err := s.Create(ctx, &n); err != nil {
		return nil, err
	}

	if s.Mail.Enabled() {
		if err := s.Mail.Send(ctx, user.Email, n.Title, n.Message); err != nil {
			log.Printf("[Notification %d] ⚠️ Email to %s failed: %v", n.ID, user.Email, err)
		} else {
			log.Printf("[Notification %d] 📧 Emailed %s", n.ID, user.Email)
		}
	}
	return &n, nil
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	return s.List(ctx, "user_id = ?", userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id uint) (*models.Notification, error) {
	return s.UpdateColumn(ctx, id, "read_status", true)
}
