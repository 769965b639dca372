package services

import (
	"fmt"

	"github.com/fadhlanhapp/lunchtab-backend/models"
	"github.com/fadhlanhapp/lunchtab-backend/utils"
)

// SplitService computes settlement and reversal batches for food summaries.
// All methods are pure: validation and arithmetic only, no store access.
type SplitService struct{}

// NewSplitService creates a new split service
func NewSplitService() *SplitService {
	return &SplitService{}
}

// ParticipantShare is one billed member with their weight. Weight is 1 for a
// member who didn't bring food, plus any extra guests they hosted. A member
// who brought food but hosted guests is billed for the guests only.
type ParticipantShare struct {
	MemberID string
	Weight   int
}

// ResolveParticipants produces the weighted bill for each owing member.
// Order is deterministic: owing members first, then exempt members who
// hosted guests, each in submission order.
func (s *SplitService) ResolveParticipants(owing, exempt []string, extras []models.ExtraMember) ([]ParticipantShare, int, error) {
	if len(owing) == 0 {
		return nil, 0, fmt.Errorf("%w: no members to bill", utils.ErrInvalidInput)
	}

	owingSet := make(map[string]bool, len(owing))
	for _, memberID := range owing {
		if owingSet[memberID] {
			return nil, 0, fmt.Errorf("%w: duplicate member %s in owing set", utils.ErrInvalidInput, memberID)
		}
		owingSet[memberID] = true
	}

	exemptSet := make(map[string]bool, len(exempt))
	for _, memberID := range exempt {
		if owingSet[memberID] {
			return nil, 0, fmt.Errorf("%w: member %s is in both owing and exempt sets", utils.ErrInvalidInput, memberID)
		}
		if exemptSet[memberID] {
			return nil, 0, fmt.Errorf("%w: duplicate member %s in exempt set", utils.ErrInvalidInput, memberID)
		}
		exemptSet[memberID] = true
	}

	extraCounts := make(map[string]int)
	for _, extra := range extras {
		if extra.Headcount < 1 {
			return nil, 0, fmt.Errorf("%w: extra headcount for member %s must be at least 1", utils.ErrInvalidInput, extra.MemberID)
		}
		if !owingSet[extra.MemberID] && !exemptSet[extra.MemberID] {
			return nil, 0, fmt.Errorf("%w: extra entry references unknown member %s", utils.ErrInvalidInput, extra.MemberID)
		}
		extraCounts[extra.MemberID] += extra.Headcount
	}

	var shares []ParticipantShare
	totalWeight := 0

	for _, memberID := range owing {
		weight := 1 + extraCounts[memberID]
		shares = append(shares, ParticipantShare{MemberID: memberID, Weight: weight})
		totalWeight += weight
	}

	// Exempt members contributed food for themselves; they owe only for
	// their hosted guests.
	for _, memberID := range exempt {
		if count := extraCounts[memberID]; count > 0 {
			shares = append(shares, ParticipantShare{MemberID: memberID, Weight: count})
			totalWeight += count
		}
	}

	return shares, totalWeight, nil
}

// ComputeSettlement converts a food summary submission into a balance batch.
// The company covers the bread cost; the remainder is split across the
// participant weights. Each member's amount rounds half away from zero
// independently, so the summed deductions may drift from the remainder by up
// to totalWeight - 1 minor units; the drift is kept, not redistributed, so a
// member's number always equals round(unitShare * weight).
func (s *SplitService) ComputeSettlement(companyID string, totalAmount, breadsAmount int64, shares []ParticipantShare, totalWeight int) (*models.BalanceBatch, error) {
	deltas, err := s.computeShares(totalAmount, breadsAmount, shares, totalWeight)
	if err != nil {
		return nil, err
	}

	for i := range deltas {
		deltas[i].Delta = -deltas[i].Delta
	}

	return &models.BalanceBatch{
		CompanyID:    companyID,
		CompanyDelta: -breadsAmount,
		MemberDeltas: deltas,
	}, nil
}

// ComputeReversal re-derives the settlement of a stored food summary and
// returns its arithmetic inverse. It works from the persisted member sets
// and extras, not live member state, so the inverse is exact no matter how
// members changed since the settlement.
func (s *SplitService) ComputeReversal(summary *models.FoodSummary) (*models.BalanceBatch, error) {
	shares, totalWeight, err := s.ResolveParticipants(
		summary.MembersDidntBringFood,
		summary.MembersBroughtFood,
		summary.ExtraMembers,
	)
	if err != nil {
		return nil, err
	}

	deltas, err := s.computeShares(summary.TotalAmount, summary.TotalBreadsAmount, shares, totalWeight)
	if err != nil {
		return nil, err
	}

	return &models.BalanceBatch{
		CompanyID:    summary.CompanyID,
		CompanyDelta: summary.TotalBreadsAmount,
		MemberDeltas: deltas,
	}, nil
}

// computeShares returns the positive per-member amounts for a settlement.
func (s *SplitService) computeShares(totalAmount, breadsAmount int64, shares []ParticipantShare, totalWeight int) ([]models.MemberDelta, error) {
	if totalAmount < 0 {
		return nil, fmt.Errorf("%w: total amount cannot be negative", utils.ErrInvalidAmount)
	}
	if breadsAmount < 0 {
		return nil, fmt.Errorf("%w: breads amount cannot be negative", utils.ErrInvalidAmount)
	}

	remainder := totalAmount - breadsAmount
	if remainder < 0 {
		return nil, fmt.Errorf("%w: breads amount exceeds total amount", utils.ErrInvalidAmount)
	}
	if totalWeight <= 0 {
		return nil, fmt.Errorf("%w: total participant weight must be positive", utils.ErrInvalidInput)
	}

	unitShare := utils.UnitShare(remainder, totalWeight)

	deltas := make([]models.MemberDelta, 0, len(shares))
	for _, share := range shares {
		if share.Weight <= 0 {
			continue
		}
		deltas = append(deltas, models.MemberDelta{
			MemberID: share.MemberID,
			Delta:    utils.RoundShare(unitShare, share.Weight),
		})
	}

	return deltas, nil
}
