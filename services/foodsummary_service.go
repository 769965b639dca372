package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fadhlanhapp/lunchtab-backend/models"
	"github.com/fadhlanhapp/lunchtab-backend/repository"
	"github.com/fadhlanhapp/lunchtab-backend/utils"
)

// FoodSummaryService handles food summary business logic: validation,
// settlement on create and reversal on delete.
type FoodSummaryService struct {
	summaryRepo *repository.FoodSummaryRepository
	memberRepo  *repository.MemberRepository
	companyRepo *repository.CompanyRepository
	splitSvc    *SplitService
}

// NewFoodSummaryService creates a new food summary service with dependencies injected
func NewFoodSummaryService(
	summaryRepo *repository.FoodSummaryRepository,
	memberRepo *repository.MemberRepository,
	companyRepo *repository.CompanyRepository,
	splitSvc *SplitService,
) *FoodSummaryService {
	return &FoodSummaryService{
		summaryRepo: summaryRepo,
		memberRepo:  memberRepo,
		companyRepo: companyRepo,
		splitSvc:    splitSvc,
	}
}

// CreateFoodSummary validates a submission, persists the summary and settles
// it against the ledger in one transaction. Validation happens entirely
// before any mutation.
func (s *FoodSummaryService) CreateFoodSummary(req *models.CreateFoodSummaryRequest) (*models.FoodSummaryResponse, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetCompany(req.CompanyID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if company == nil {
		return nil, utils.NewNotFoundError("Company")
	}

	if err := s.validateMemberSets(req); err != nil {
		return nil, err
	}

	extras := make([]models.ExtraMember, len(req.ExtraMembers))
	for i, extra := range req.ExtraMembers {
		extras[i] = models.ExtraMember{MemberID: extra.MemberID, Headcount: extra.Headcount}
	}

	shares, totalWeight, err := s.splitSvc.ResolveParticipants(
		req.MembersDidntBringFood, req.MembersBroughtFood, extras)
	if err != nil {
		return nil, err
	}

	batch, err := s.splitSvc.ComputeSettlement(req.CompanyID, req.TotalAmount, req.BreadsAmount, shares, totalWeight)
	if err != nil {
		return nil, err
	}

	summary := &models.FoodSummary{
		ID:                    uuid.New().String(),
		CompanyID:             req.CompanyID,
		Date:                  req.Date,
		TotalBreadsAmount:     req.BreadsAmount,
		TotalCurriesAmount:    req.CurriesAmount,
		TotalAmount:           req.TotalAmount,
		MembersBroughtFood:    req.MembersBroughtFood,
		MembersDidntBringFood: req.MembersDidntBringFood,
		ExtraMembers:          extras,
		CreatedAt:             time.Now(),
	}

	snapshot, err := s.summaryRepo.StoreFoodSummary(summary, batch)
	if err != nil {
		return nil, err
	}

	return &models.FoodSummaryResponse{
		Summary:        summary,
		CompanyBalance: snapshot.CompanyBalance,
		MemberBalances: snapshot.MemberBalances,
	}, nil
}

// RemoveFoodSummary deletes a food summary and reverses exactly the balance
// changes its creation applied. The reversal is computed from the stored
// summary, so later member edits cannot skew it.
func (s *FoodSummaryService) RemoveFoodSummary(summaryID string) (*models.FoodSummaryResponse, error) {
	summary, err := s.summaryRepo.GetFoodSummary(summaryID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if summary == nil {
		return nil, fmt.Errorf("%w: %s", utils.ErrSummaryNotFound, summaryID)
	}

	batch, err := s.splitSvc.ComputeReversal(summary)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.summaryRepo.DeleteFoodSummary(summaryID, batch)
	if err != nil {
		return nil, err
	}

	return &models.FoodSummaryResponse{
		CompanyBalance: snapshot.CompanyBalance,
		MemberBalances: snapshot.MemberBalances,
	}, nil
}

// GetFoodSummaries returns all food summaries for a company, newest first
func (s *FoodSummaryService) GetFoodSummaries(companyID string) ([]*models.FoodSummary, error) {
	return s.summaryRepo.GetFoodSummariesByCompany(companyID)
}

// validateCreateRequest checks the submission shape before any store access
func (s *FoodSummaryService) validateCreateRequest(req *models.CreateFoodSummaryRequest) error {
	if err := utils.ValidateRequired(req.CompanyID, "companyId"); err != nil {
		return err
	}
	if err := utils.ValidateNonNegativeAmount(req.BreadsAmount, "breadsAmount"); err != nil {
		return err
	}
	if err := utils.ValidateNonNegativeAmount(req.CurriesAmount, "curriesAmount"); err != nil {
		return err
	}
	if err := utils.ValidateNonNegativeAmount(req.TotalAmount, "totalAmount"); err != nil {
		return err
	}
	if err := utils.ValidateMemberIDs(req.MembersDidntBringFood, "membersDidntBringFood"); err != nil {
		return err
	}
	if err := utils.ValidateMemberIDs(req.MembersBroughtFood, "membersBroughtFood"); err != nil {
		return err
	}
	for i, extra := range req.ExtraMembers {
		if err := utils.ValidateRequired(extra.MemberID, fmt.Sprintf("extraMembers entry %d memberId", i+1)); err != nil {
			return err
		}
	}
	return nil
}

// validateMemberSets checks that the owing and exempt sets partition the
// company's active members: every referenced member belongs to the company,
// and every active member appears in exactly one set.
func (s *FoodSummaryService) validateMemberSets(req *models.CreateFoodSummaryRequest) error {
	members, err := s.memberRepo.GetMembersByCompany(req.CompanyID)
	if err != nil {
		return utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	known := make(map[string]*models.Member, len(members))
	for _, member := range members {
		known[member.ID] = member
	}

	referenced := make(map[string]bool)
	for _, sets := range [][]string{req.MembersDidntBringFood, req.MembersBroughtFood} {
		for _, memberID := range sets {
			if known[memberID] == nil {
				return fmt.Errorf("%w: member %s does not belong to company", utils.ErrInvalidInput, memberID)
			}
			referenced[memberID] = true
		}
	}

	for _, member := range members {
		if member.Active && !referenced[member.ID] {
			return fmt.Errorf("%w: active member %s missing from both member sets", utils.ErrInvalidInput, member.ID)
		}
	}

	return nil
}
