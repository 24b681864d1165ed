package services

import (
	"context"

	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/models"
	"gorm.io/gorm"
)

type CompanyService struct {
	Store[models.Company]
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{Store: Store[models.Company]{DB: db}}
}

func (s *CompanyService) CreateCompany(ctx context.Context, req *dtos.CompanyRequest) (*models.Company, error) {
	var company models.Company
	req.Apply(&company)
	if err := s.Create(ctx, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id uint, req *dtos.CompanyRequest) (*models.Company, error) {
	company, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(company)
	if err := s.Save(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}
