package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/fadhlanhapp/lunchtab-backend/models"
	"github.com/fadhlanhapp/lunchtab-backend/repository"
	"github.com/fadhlanhapp/lunchtab-backend/utils"
)

// CompanyService handles company business logic
type CompanyService struct {
	companyRepo *repository.CompanyRepository
	ledgerRepo  *repository.LedgerRepository
}

// NewCompanyService creates a new company service with dependencies injected
func NewCompanyService(companyRepo *repository.CompanyRepository, ledgerRepo *repository.LedgerRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// CreateCompany creates a new company with a zero balance
func (s *CompanyService) CreateCompany(req *models.CreateCompanyRequest) (*models.Company, error) {
	if err := utils.ValidateRequired(req.Name, "name"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(req.Email, "email"); err != nil {
		return nil, err
	}

	company := &models.Company{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Website:   req.Website,
		Balance:   0,
		CreatedAt: time.Now(),
	}

	if err := s.companyRepo.StoreCompany(company); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	return company, nil
}

// GetCompany retrieves a company by id
func (s *CompanyService) GetCompany(companyID string) (*models.Company, error) {
	company, err := s.companyRepo.GetCompany(companyID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if company == nil {
		return nil, utils.NewNotFoundError("Company")
	}
	return company, nil
}

// UpdateCompany updates a company's profile fields
func (s *CompanyService) UpdateCompany(companyID string, req *models.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.GetCompany(companyID)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateRequired(req.Name, "name"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(req.Email, "email"); err != nil {
		return nil, err
	}
	if req.BreadPrice != nil {
		if err := utils.ValidatePositiveAmount(*req.BreadPrice, "breadPrice"); err != nil {
			return nil, err
		}
	}

	company.Name = req.Name
	company.Email = req.Email
	company.Website = req.Website
	company.BreadPrice = req.BreadPrice

	if err := s.companyRepo.UpdateCompany(company); err != nil {
		return nil, err
	}

	return company, nil
}

// AddTopup credits a company balance and records the topup
func (s *CompanyService) AddTopup(req *models.TopupRequest) (int64, error) {
	if err := utils.ValidatePositiveAmount(req.Amount, "amount"); err != nil {
		return 0, err
	}
	if err := utils.ValidateRequired(req.PerformedBy, "performedBy"); err != nil {
		return 0, err
	}

	company, err := s.GetCompany(req.CompanyID)
	if err != nil {
		return 0, err
	}

	topup := &models.Topup{
		ID:          uuid.New().String(),
		CompanyID:   company.ID,
		Amount:      req.Amount,
		TopupDate:   req.TopupDate,
		PerformedBy: req.PerformedBy,
		CreatedAt:   time.Now(),
	}

	return s.companyRepo.StoreTopup(topup, s.ledgerRepo)
}

// GetTopups returns all topups for a company, newest first
func (s *CompanyService) GetTopups(companyID string) ([]models.Topup, error) {
	return s.companyRepo.GetTopupsByCompany(companyID)
}
