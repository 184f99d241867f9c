package settle

import "fmt"

// Params configure family placement.
type Params struct {
	FamilyCount int
	MembersMin  int
	MembersMax  int

	// AnchorRadius bounds the disk around the first family's anchor in
	// which later anchors are preferred.
	AnchorRadius float64
	// MemberRadius bounds the disk around a family's anchor in which its
	// members settle.
	MemberRadius float64

	AnchorAttempts int
	MemberAttempts int
	// AttemptBudget bounds the overall number of anchor searches, so a map
	// with little grass degrades to fewer families instead of spinning.
	AttemptBudget int
}

// DefaultParams returns the canonical placement settings.
func DefaultParams() Params {
	return Params{
		FamilyCount:    4,
		MembersMin:     2,
		MembersMax:     6,
		AnchorRadius:   24,
		MemberRadius:   3,
		AnchorAttempts: 200,
		MemberAttempts: 40,
		AttemptBudget:  64,
	}
}

// Validate rejects malformed placement parameters.
func (p Params) Validate() error {
	if p.FamilyCount < 0 {
		return fmt.Errorf("settle: family count must be non-negative, got %d", p.FamilyCount)
	}
	if p.MembersMin < 1 {
		return fmt.Errorf("settle: members min must be at least 1, got %d", p.MembersMin)
	}
	if p.MembersMax < p.MembersMin {
		return fmt.Errorf("settle: members max %d below min %d", p.MembersMax, p.MembersMin)
	}
	if p.AnchorRadius < 0 || p.MemberRadius < 0 {
		return fmt.Errorf("settle: radii must be non-negative, got %g and %g", p.AnchorRadius, p.MemberRadius)
	}
	if p.AnchorAttempts < 1 || p.MemberAttempts < 1 {
		return fmt.Errorf("settle: attempt counts must be positive, got %d and %d", p.AnchorAttempts, p.MemberAttempts)
	}
	if p.AttemptBudget < 1 {
		return fmt.Errorf("settle: attempt budget must be positive, got %d", p.AttemptBudget)
	}
	return nil
}
