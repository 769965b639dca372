package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/fadhlanhapp/lunchtab-backend/models"
	"github.com/fadhlanhapp/lunchtab-backend/repository"
	"github.com/fadhlanhapp/lunchtab-backend/utils"
)

// MemberService handles team member business logic
type MemberService struct {
	memberRepo  *repository.MemberRepository
	companyRepo *repository.CompanyRepository
	ledgerRepo  *repository.LedgerRepository
}

// NewMemberService creates a new member service with dependencies injected
func NewMemberService(
	memberRepo *repository.MemberRepository,
	companyRepo *repository.CompanyRepository,
	ledgerRepo *repository.LedgerRepository,
) *MemberService {
	return &MemberService{
		memberRepo:  memberRepo,
		companyRepo: companyRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// CreateMember adds a team member to a company
func (s *MemberService) CreateMember(req *models.CreateMemberRequest) (*models.Member, error) {
	if err := utils.ValidateRequired(req.Name, "name"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(req.Email, "email"); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetCompany(req.CompanyID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if company == nil {
		return nil, utils.NewNotFoundError("Company")
	}

	role := req.Role
	if role == "" {
		role = utils.RoleMember
	}

	member := &models.Member{
		ID:          uuid.New().String(),
		CompanyID:   company.ID,
		Name:        req.Name,
		Email:       req.Email,
		Designation: req.Designation,
		Role:        role,
		Balance:     0,
		Active:      true,
		CreatedAt:   time.Now(),
	}

	if err := s.memberRepo.StoreMember(member); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	return member, nil
}

// GetTeamMembers returns all members of a company
func (s *MemberService) GetTeamMembers(companyID string) ([]*models.Member, error) {
	return s.memberRepo.GetMembersByCompany(companyID)
}

// GetMember retrieves a member by id
func (s *MemberService) GetMember(memberID string) (*models.Member, error) {
	member, err := s.memberRepo.GetMember(memberID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if member == nil {
		return nil, utils.NewNotFoundError("Member")
	}
	return member, nil
}

// UpdateMember updates a member's profile fields
func (s *MemberService) UpdateMember(memberID string, req *models.UpdateMemberRequest) (*models.Member, error) {
	member, err := s.GetMember(memberID)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateRequired(req.Name, "name"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(req.Email, "email"); err != nil {
		return nil, err
	}

	member.Name = req.Name
	member.Email = req.Email
	member.Designation = req.Designation
	if req.Role != "" {
		member.Role = req.Role
	}

	if err := s.memberRepo.UpdateMember(member); err != nil {
		return nil, err
	}

	return member, nil
}

// DeactivateMember marks a member inactive. Their balance is kept; they are
// simply no longer part of future food summary splits.
func (s *MemberService) DeactivateMember(memberID string) error {
	if _, err := s.GetMember(memberID); err != nil {
		return err
	}
	return s.memberRepo.SetMemberActive(memberID, false)
}

// AddCashDeposit credits a member balance and records the deposit
func (s *MemberService) AddCashDeposit(req *models.CashDepositRequest) (int64, error) {
	if err := utils.ValidatePositiveAmount(req.Amount, "amount"); err != nil {
		return 0, err
	}

	member, err := s.GetMember(req.MemberID)
	if err != nil {
		return 0, err
	}

	deposit := &models.CashDeposit{
		ID:          uuid.New().String(),
		MemberID:    member.ID,
		Amount:      req.Amount,
		DepositDate: req.DepositDate,
		CreatedAt:   time.Now(),
	}

	return s.memberRepo.StoreCashDeposit(deposit, member.CompanyID, s.ledgerRepo)
}

// GetCashDeposits returns all cash deposits for a company's members,
// newest first
func (s *MemberService) GetCashDeposits(companyID string) ([]models.CashDeposit, error) {
	return s.memberRepo.GetCashDepositsByCompany(companyID)
}
