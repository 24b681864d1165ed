package services

import (
	"context"
	"fmt"

	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/models"
	"gorm.io/gorm"
)

type UserService struct {
	Store[models.User]
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{Store: Store[models.User]{DB: db, Preloads: []string{"Company"}}}
}

func (s *UserService) CreateUser(ctx context.Context, req *dtos.UserRequest) (*models.User, error) {
	var user models.User
	req.Apply(&user)
	if !validStatus(models.Roles, user.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidStatus, user.Role)
	}
	if user.CompanyID != nil {
		ok, err := exists[models.Company](s.DB.WithContext(ctx), *user.CompanyID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: company %d", ErrInvalidReference, *user.CompanyID)
		}
	}
	if err := s.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.List(ctx, "role = ?", role)
}
