package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fadhlanhapp/lunchtab-backend/models"
)

// Full lunch-day scenario: company balance 10000, breads 500, curries 1500,
// three members didn't bring food. Settle, then reverse, and check every
// balance lands back where it started.
func TestSettlementScenario_SettleThenReverse(t *testing.T) {
	service := NewSplitService()

	companyBalance := int64(10000)
	memberBalances := map[string]int64{
		"alice": 0,
		"budi":  -250,
		"citra": 1200,
	}

	summary := &models.FoodSummary{
		ID:                    "summary-1",
		CompanyID:             "company-1",
		TotalBreadsAmount:     500,
		TotalCurriesAmount:    1500,
		TotalAmount:           2000,
		MembersDidntBringFood: []string{"alice", "budi", "citra"},
	}

	shares, totalWeight, err := service.ResolveParticipants(
		summary.MembersDidntBringFood, summary.MembersBroughtFood, summary.ExtraMembers)
	assert.NoError(t, err)

	settlement, err := service.ComputeSettlement(
		summary.CompanyID, summary.TotalAmount, summary.TotalBreadsAmount, shares, totalWeight)
	assert.NoError(t, err)

	// Apply the settlement.
	companyBalance += settlement.CompanyDelta
	for _, delta := range settlement.MemberDeltas {
		memberBalances[delta.MemberID] += delta.Delta
	}

	assert.Equal(t, int64(9500), companyBalance)
	assert.Equal(t, int64(-500), memberBalances["alice"])
	assert.Equal(t, int64(-750), memberBalances["budi"])
	assert.Equal(t, int64(700), memberBalances["citra"])

	// Apply the reversal.
	reversal, err := service.ComputeReversal(summary)
	assert.NoError(t, err)

	companyBalance += reversal.CompanyDelta
	for _, delta := range reversal.MemberDeltas {
		memberBalances[delta.MemberID] += delta.Delta
	}

	assert.Equal(t, int64(10000), companyBalance)
	assert.Equal(t, int64(0), memberBalances["alice"])
	assert.Equal(t, int64(-250), memberBalances["budi"])
	assert.Equal(t, int64(1200), memberBalances["citra"])
}

// Scenario with hosted guests and a member who brought food: exempt members
// pay for their guests only, and the round trip is still exact despite the
// independent per-member rounding.
func TestSettlementScenario_GuestsAndRoundingRoundTrip(t *testing.T) {
	service := NewSplitService()

	companyBalance := int64(50000)
	memberBalances := map[string]int64{
		"alice": 0,
		"budi":  0,
		"citra": 0,
		"dewi":  0,
	}

	summary := &models.FoodSummary{
		ID:                    "summary-2",
		CompanyID:             "company-1",
		TotalBreadsAmount:     700,
		TotalCurriesAmount:    2300,
		TotalAmount:           3000,
		MembersBroughtFood:    []string{"dewi"},
		MembersDidntBringFood: []string{"alice", "budi", "citra"},
		ExtraMembers: []models.ExtraMember{
			{MemberID: "budi", Headcount: 2},
			{MemberID: "dewi", Headcount: 1},
		},
	}

	shares, totalWeight, err := service.ResolveParticipants(
		summary.MembersDidntBringFood, summary.MembersBroughtFood, summary.ExtraMembers)
	assert.NoError(t, err)
	// alice 1, budi 3, citra 1, dewi 1 (guest only)
	assert.Equal(t, 6, totalWeight)

	settlement, err := service.ComputeSettlement(
		summary.CompanyID, summary.TotalAmount, summary.TotalBreadsAmount, shares, totalWeight)
	assert.NoError(t, err)

	companyBalance += settlement.CompanyDelta
	for _, delta := range settlement.MemberDeltas {
		memberBalances[delta.MemberID] += delta.Delta
	}

	// Remainder 2300 over weight 6: unit share 383.33.
	assert.Equal(t, int64(49300), companyBalance)
	assert.Equal(t, int64(-383), memberBalances["alice"])
	assert.Equal(t, int64(-1150), memberBalances["budi"])
	assert.Equal(t, int64(-383), memberBalances["citra"])
	assert.Equal(t, int64(-383), memberBalances["dewi"])

	reversal, err := service.ComputeReversal(summary)
	assert.NoError(t, err)

	companyBalance += reversal.CompanyDelta
	for _, delta := range reversal.MemberDeltas {
		memberBalances[delta.MemberID] += delta.Delta
	}

	assert.Equal(t, int64(50000), companyBalance)
	for memberID, balance := range memberBalances {
		assert.Equal(t, int64(0), balance, "member %s should be restored", memberID)
	}
}
