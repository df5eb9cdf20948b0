package services

import (
	"testing"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
)

func reqRow(status models.RequirementStatus) *models.StudentRequirement {
	return &models.StudentRequirement{Status: status}
}

func TestComputeCompletion(t *testing.T) {
	rows := []*models.StudentRequirement{
		reqRow(models.RequirementApproved),
		reqRow(models.RequirementApproved),
		reqRow(models.RequirementSubmitted),
		reqRow(models.RequirementPending),
		reqRow(models.RequirementRejected),
		reqRow(models.RequirementOverdue),
	}

	got := ComputeCompletion(rows)
	want := CompletionSummary{Total: 6, Approved: 2, Submitted: 1, Pending: 1, Rejected: 1, Overdue: 1, Percentage: 33}
	if got != want {
		t.Errorf("ComputeCompletion = %+v, want %+v", got, want)
	}
}

func TestComputeCompletionEmptySet(t *testing.T) {
	got := ComputeCompletion(nil)
	if got.Total != 0 || got.Percentage != 0 {
		t.Errorf("empty set: got %+v, want all zeros", got)
	}
}

func TestComputeCompletionRounding(t *testing.T) {
	tests := []struct {
		name     string
		approved int
		total    int
		want     int
	}{
		{"1 of 3 rounds to 33", 1, 3, 33},
		{"2 of 3 rounds to 67", 2, 3, 67},
		{"1 of 8 rounds to 13", 1, 8, 13},
		{"all approved", 4, 4, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rows []*models.StudentRequirement
			for i := 0; i < tt.approved; i++ {
				rows = append(rows, reqRow(models.RequirementApproved))
			}
			for i := tt.approved; i < tt.total; i++ {
				rows = append(rows, reqRow(models.RequirementPending))
			}
			if got := ComputeCompletion(rows); got.Percentage != tt.want {
				t.Errorf("percentage = %d, want %d", got.Percentage, tt.want)
			}
		})
	}
}

func TestRequirementApplicability(t *testing.T) {
	req := &models.Requirement{AppliesToNew: true}
	if !req.AppliesTo(models.NewEnrollee) {
		t.Error("new enrollee should match applies_to_new")
	}
	if req.AppliesTo(models.Transferee) || req.AppliesTo(models.Returnee) {
		t.Error("transferee/returnee should not match applies_to_new only")
	}
	if !req.HasApplicability() {
		t.Error("requirement with a flag set should have applicability")
	}

	empty := &models.Requirement{}
	if empty.HasApplicability() {
		t.Error("requirement with no flags should have no applicability")
	}
}
