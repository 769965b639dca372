package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fadhlanhapp/lunchtab-backend/models"
	"github.com/fadhlanhapp/lunchtab-backend/utils"
)

func deltaFor(batch *models.BalanceBatch, memberID string) (int64, bool) {
	for _, delta := range batch.MemberDeltas {
		if delta.MemberID == memberID {
			return delta.Delta, true
		}
	}
	return 0, false
}

func TestSplitService_ResolveParticipants_Weights(t *testing.T) {
	service := NewSplitService()

	// B didn't bring food and hosted 2 + 3 guests: weight 1 + 5 = 6.
	// C brought food but hosted 4 guests: weight 4, not 5.
	shares, totalWeight, err := service.ResolveParticipants(
		[]string{"a", "b"},
		[]string{"c", "d"},
		[]models.ExtraMember{
			{MemberID: "b", Headcount: 2},
			{MemberID: "b", Headcount: 3},
			{MemberID: "c", Headcount: 4},
		},
	)

	assert.NoError(t, err)
	assert.Equal(t, 11, totalWeight) // 1 + 6 + 4

	weights := make(map[string]int)
	for _, share := range shares {
		weights[share.MemberID] = share.Weight
	}
	assert.Equal(t, 1, weights["a"])
	assert.Equal(t, 6, weights["b"])
	assert.Equal(t, 4, weights["c"])

	// D brought food and hosted nobody: not billed at all.
	_, billed := weights["d"]
	assert.False(t, billed)
}

func TestSplitService_ResolveParticipants_InvalidInputs(t *testing.T) {
	service := NewSplitService()

	tests := []struct {
		name   string
		owing  []string
		exempt []string
		extras []models.ExtraMember
	}{
		{
			name:   "empty owing with extras",
			owing:  nil,
			exempt: []string{"a"},
			extras: []models.ExtraMember{{MemberID: "a", Headcount: 2}},
		},
		{
			name:   "empty owing without extras",
			owing:  nil,
			exempt: []string{"a", "b"},
		},
		{
			name:   "extras referencing unknown member",
			owing:  []string{"a"},
			exempt: []string{"b"},
			extras: []models.ExtraMember{{MemberID: "ghost", Headcount: 1}},
		},
		{
			name:   "headcount below one",
			owing:  []string{"a"},
			extras: []models.ExtraMember{{MemberID: "a", Headcount: 0}},
		},
		{
			name:   "member in both sets",
			owing:  []string{"a"},
			exempt: []string{"a"},
		},
		{
			name:  "duplicate owing member",
			owing: []string{"a", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.ResolveParticipants(tt.owing, tt.exempt, tt.extras)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func TestSplitService_ComputeSettlement_ThreeEqualMembers(t *testing.T) {
	service := NewSplitService()

	// Breads 500, total 2000, three owing members: remainder 1500,
	// unit share 500, each member deducted 500, company deducted 500.
	shares, totalWeight, err := service.ResolveParticipants(
		[]string{"a", "b", "c"}, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, totalWeight)

	batch, err := service.ComputeSettlement("company-1", 2000, 500, shares, totalWeight)
	assert.NoError(t, err)

	assert.Equal(t, int64(-500), batch.CompanyDelta)
	assert.Len(t, batch.MemberDeltas, 3)
	for _, memberID := range []string{"a", "b", "c"} {
		delta, ok := deltaFor(batch, memberID)
		assert.True(t, ok, "member %s should be billed", memberID)
		assert.Equal(t, int64(-500), delta)
	}
}

func TestSplitService_ComputeSettlement_WeightedExtras(t *testing.T) {
	service := NewSplitService()

	// A weight 1, B weight 3 (2 guests): total weight 4, remainder 1200,
	// unit share 300 -> A owes 300, B owes 900.
	shares, totalWeight, err := service.ResolveParticipants(
		[]string{"a", "b"}, nil,
		[]models.ExtraMember{{MemberID: "b", Headcount: 2}})
	assert.NoError(t, err)
	assert.Equal(t, 4, totalWeight)

	batch, err := service.ComputeSettlement("company-1", 1200, 0, shares, totalWeight)
	assert.NoError(t, err)

	deltaA, _ := deltaFor(batch, "a")
	deltaB, _ := deltaFor(batch, "b")
	assert.Equal(t, int64(-300), deltaA)
	assert.Equal(t, int64(-900), deltaB)
	assert.Equal(t, int64(0), batch.CompanyDelta)
}

func TestSplitService_ComputeSettlement_BreadsExceedTotal(t *testing.T) {
	service := NewSplitService()

	shares, totalWeight, err := service.ResolveParticipants([]string{"a"}, nil, nil)
	assert.NoError(t, err)

	_, err = service.ComputeSettlement("company-1", 1000, 1500, shares, totalWeight)
	assert.ErrorIs(t, err, utils.ErrInvalidAmount)
}

func TestSplitService_ComputeSettlement_NegativeAmounts(t *testing.T) {
	service := NewSplitService()

	shares, totalWeight, err := service.ResolveParticipants([]string{"a"}, nil, nil)
	assert.NoError(t, err)

	_, err = service.ComputeSettlement("company-1", -1, 0, shares, totalWeight)
	assert.ErrorIs(t, err, utils.ErrInvalidAmount)

	_, err = service.ComputeSettlement("company-1", 100, -1, shares, totalWeight)
	assert.ErrorIs(t, err, utils.ErrInvalidAmount)
}

func TestSplitService_ComputeSettlement_RoundingDrift(t *testing.T) {
	service := NewSplitService()

	// Remainder 1000 over 3 members: each rounds 333.33 to 333
	// independently. The 1 unit drift is kept, not redistributed.
	shares, totalWeight, err := service.ResolveParticipants(
		[]string{"a", "b", "c"}, nil, nil)
	assert.NoError(t, err)

	batch, err := service.ComputeSettlement("company-1", 1000, 0, shares, totalWeight)
	assert.NoError(t, err)

	var sum int64
	for _, delta := range batch.MemberDeltas {
		assert.Equal(t, int64(-333), delta.Delta)
		sum += delta.Delta
	}
	assert.Equal(t, int64(-999), sum)
}

func TestSplitService_ComputeSettlement_RoundsHalfAwayFromZero(t *testing.T) {
	service := NewSplitService()

	// Remainder 1001 over 2 members: 500.5 rounds to 501 for each.
	shares, totalWeight, err := service.ResolveParticipants(
		[]string{"a", "b"}, nil, nil)
	assert.NoError(t, err)

	batch, err := service.ComputeSettlement("company-1", 1001, 0, shares, totalWeight)
	assert.NoError(t, err)

	for _, delta := range batch.MemberDeltas {
		assert.Equal(t, int64(-501), delta.Delta)
	}
}

func TestSplitService_Conservation(t *testing.T) {
	service := NewSplitService()

	tests := []struct {
		name         string
		totalAmount  int64
		breadsAmount int64
		owing        []string
		extras       []models.ExtraMember
	}{
		{"even split", 2000, 500, []string{"a", "b", "c"}, nil},
		{"drifting split", 1000, 0, []string{"a", "b", "c"}, nil},
		{"weighted split", 7777, 1234, []string{"a", "b"},
			[]models.ExtraMember{{MemberID: "a", Headcount: 3}}},
		{"single member", 999, 998, []string{"a"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, totalWeight, err := service.ResolveParticipants(tt.owing, nil, tt.extras)
			assert.NoError(t, err)

			batch, err := service.ComputeSettlement("company-1", tt.totalAmount, tt.breadsAmount, shares, totalWeight)
			assert.NoError(t, err)

			applied := batch.CompanyDelta
			for _, delta := range batch.MemberDeltas {
				applied += delta.Delta
			}

			// companyDelta + sum(memberDeltas) equals -totalAmount to
			// within totalWeight minor units of rounding slack.
			drift := utils.AbsInt64(applied - (-tt.totalAmount))
			assert.LessOrEqual(t, drift, int64(totalWeight),
				"applied %d, expected about %d", applied, -tt.totalAmount)
		})
	}
}

func TestSplitService_ReversalIsExactInverse(t *testing.T) {
	service := NewSplitService()

	summary := &models.FoodSummary{
		ID:                    "summary-1",
		CompanyID:             "company-1",
		TotalBreadsAmount:     750,
		TotalCurriesAmount:    2200,
		TotalAmount:           3100,
		MembersBroughtFood:    []string{"d", "e"},
		MembersDidntBringFood: []string{"a", "b", "c"},
		ExtraMembers: []models.ExtraMember{
			{MemberID: "b", Headcount: 2},
			{MemberID: "d", Headcount: 1},
		},
	}

	shares, totalWeight, err := service.ResolveParticipants(
		summary.MembersDidntBringFood, summary.MembersBroughtFood, summary.ExtraMembers)
	assert.NoError(t, err)

	settlement, err := service.ComputeSettlement(
		summary.CompanyID, summary.TotalAmount, summary.TotalBreadsAmount, shares, totalWeight)
	assert.NoError(t, err)

	reversal, err := service.ComputeReversal(summary)
	assert.NoError(t, err)

	// Company round-trips exactly.
	assert.Equal(t, int64(0), settlement.CompanyDelta+reversal.CompanyDelta)

	// Every member round-trips exactly.
	assert.Equal(t, len(settlement.MemberDeltas), len(reversal.MemberDeltas))
	for _, delta := range settlement.MemberDeltas {
		reversed, ok := deltaFor(reversal, delta.MemberID)
		assert.True(t, ok, "member %s missing from reversal", delta.MemberID)
		assert.Equal(t, int64(0), delta.Delta+reversed,
			"member %s should be restored exactly", delta.MemberID)
	}
}

func TestSplitService_ComputeReversal_SignsAndMagnitudes(t *testing.T) {
	service := NewSplitService()

	summary := &models.FoodSummary{
		ID:                    "summary-1",
		CompanyID:             "company-1",
		TotalBreadsAmount:     500,
		TotalCurriesAmount:    1500,
		TotalAmount:           2000,
		MembersDidntBringFood: []string{"a", "b", "c"},
	}

	reversal, err := service.ComputeReversal(summary)
	assert.NoError(t, err)

	assert.Equal(t, int64(500), reversal.CompanyDelta)
	for _, delta := range reversal.MemberDeltas {
		assert.Equal(t, int64(500), delta.Delta)
	}
}
