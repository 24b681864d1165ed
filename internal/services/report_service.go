package services

import (
	"context"
	"math"
	"sort"

	"github.com/justsurfingit/placement-portal/internal/models"
	"gorm.io/gorm"
)

// placedStatuses are the offer states that count a student as placed.
var placedStatuses = []string{models.OfferAccepted, models.OfferOnboarding, models.OfferOnboarded}

type PlacementSummary struct {
	TotalStudents        int64            `json:"totalStudents"`
	TotalCompanies       int64            `json:"totalCompanies"`
	OpenJobOpenings      int64            `json:"openJobOpenings"`
	TotalApplications    int64            `json:"totalApplications"`
	TotalOffers          int64            `json:"totalOffers"`
	PlacedStudents       int64            `json:"placedStudents"`
	PlacementRate        float64          `json:"placementRate"` // percent, one decimal
	ApplicationsByStatus map[string]int64 `json:"applicationsByStatus"`
	OffersByStatus       map[string]int64 `json:"offersByStatus"`
}

type CompanySummary struct {
	CompanyID    uint    `json:"companyId"`
	CompanyName  string  `json:"companyName"`
	JobOpenings  int     `json:"jobOpenings"`
	Applications int     `json:"applications"`
	Offers       int     `json:"offers"`
	AvgSalaryLPA float64 `json:"avgSalaryLPA"`
}

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

func (s *ReportService) Summary(ctx context.Context) (*PlacementSummary, error) {
	db := s.DB.WithContext(ctx)
	sum := &PlacementSummary{}

	counts := []struct {
		dst   *int64
		model any
		where []any
	}{
		{&sum.TotalStudents, &models.User{}, []any{"role = ?", models.RoleStudent}},
		{&sum.TotalCompanies, &models.Company{}, nil},
		{&sum.OpenJobOpenings, &models.JobOpening{}, []any{"status = ?", models.OpeningOpen}},
		{&sum.TotalApplications, &models.JobApplication{}, nil},
		{&sum.TotalOffers, &models.JobOffer{}, nil},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if len(c.where) > 0 {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	err := db.Model(&models.JobOffer{}).
		Joins("JOIN job_applications ON job_applications.id = job_offers.job_application_id").
		Where("job_offers.status IN ?", placedStatuses).
		Distinct("job_applications.student_id").
		Count(&sum.PlacedStudents).Error
	if err != nil {
		return nil, err
	}
	if sum.TotalStudents > 0 {
		rate := float64(sum.PlacedStudents) / float64(sum.TotalStudents) * 100
		sum.PlacementRate = math.Round(rate*10) / 10
	}

	if sum.ApplicationsByStatus, err = countByStatus(db, &models.JobApplication{}); err != nil {
		return nil, err
	}
	if sum.OffersByStatus, err = countByStatus(db, &models.JobOffer{}); err != nil {
		return nil, err
	}
	return sum, nil
}

func countByStatus(db *gorm.DB, model any) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := db.Model(model).Select("status, count(*) as count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	return out, nil
}

// Companies summarises openings, applications and offers per company,
// busiest first.
func (s *ReportService) Companies(ctx context.Context) ([]CompanySummary, error) {
	db := s.DB.WithContext(ctx)

	var companies []models.Company
	if err := db.Order("id").Find(&companies).Error; err != nil {
		return nil, err
	}
	var openings []models.JobOpening
	if err := db.Find(&openings).Error; err != nil {
		return nil, err
	}
	var apps []models.JobApplication
	if err := db.Find(&apps).Error; err != nil {
		return nil, err
	}
	var offers []models.JobOffer
	if err := db.Find(&offers).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]*CompanySummary, len(companies))
	out := make([]CompanySummary, len(companies))
	for i, c := range companies {
		out[i] = CompanySummary{CompanyID: c.ID, CompanyName: c.Name}
		byID[c.ID] = &out[i]
	}

	openingCompany := make(map[uint]uint, len(openings))
	salaryTotal := map[uint]float64{}
	for _, o := range openings {
		openingCompany[o.ID] = o.CompanyID
		if cs, ok := byID[o.CompanyID]; ok {
			cs.JobOpenings++
			salaryTotal[o.CompanyID] += o.SalaryLPA
		}
	}
	appCompany := make(map[uint]uint, len(apps))
	for _, a := range apps {
		cid := openingCompany[a.JobOpeningID]
		appCompany[a.ID] = cid
		if cs, ok := byID[cid]; ok {
			cs.Applications++
		}
	}
	for _, o := range offers {
		if cs, ok := byID[appCompany[o.JobApplicationID]]; ok {
			cs.Offers++
		}
	}
	for i := range out {
		if out[i].JobOpenings > 0 {
			avg := salaryTotal[out[i].CompanyID] / float64(out[i].JobOpenings)
			out[i].AvgSalaryLPA = math.Round(avg*100) / 100
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Applications > out[j].Applications })
	return out, nil
}
