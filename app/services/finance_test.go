package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
)

func strPtr(s string) *string { return &s }

func typePtr(t models.StudentType) *models.StudentType { return &t }

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func TestAssignmentRuleMatches(t *testing.T) {
	deptA := "dept-a"
	deptB := "dept-b"
	yearOne := "year-1"
	yearTwo := "year-2"

	student := StudentScope{
		Classification: models.NewEnrollee,
		DepartmentID:   &deptA,
		YearLevelID:    &yearOne,
	}

	tests := []struct {
		name string
		rule AssignmentRule
		want bool
	}{
		{"classification matches", AssignmentRule{Classification: typePtr(models.NewEnrollee)}, true},
		{"classification differs", AssignmentRule{Classification: typePtr(models.Transferee)}, false},
		{"department matches", AssignmentRule{DepartmentID: &deptA}, true},
		{"department differs", AssignmentRule{DepartmentID: &deptB}, false},
		{"year level matches", AssignmentRule{YearLevelID: &yearOne}, true},
		{"year level differs", AssignmentRule{YearLevelID: &yearTwo}, false},
		// OR semantics: one matching criterion is enough even when another differs
		{"department matches, classification differs", AssignmentRule{Classification: typePtr(models.Returnee), DepartmentID: &deptA}, true},
		{"year matches, department differs", AssignmentRule{DepartmentID: &deptB, YearLevelID: &yearOne}, true},
		{"no criteria set", AssignmentRule{}, false},
		{"all criteria differ", AssignmentRule{Classification: typePtr(models.Returnee), DepartmentID: &deptB, YearLevelID: &yearTwo}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Matches(student); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssignmentRuleIgnoresUnsetStudentFields(t *testing.T) {
	// A student without a department can never satisfy a department-scoped rule.
	dept := "dept-a"
	student := StudentScope{Classification: models.NewEnrollee}
	rule := AssignmentRule{DepartmentID: &dept}
	if rule.Matches(student) {
		t.Error("department rule should not match a student with no department")
	}
}

func TestResolveApplicableFeeItemsDeduplicates(t *testing.T) {
	deptA := "dept-a"
	student := StudentScope{Classification: models.NewEnrollee, DepartmentID: &deptA}

	rules := []AssignmentRule{
		{FeeItemID: "tuition", DepartmentID: &deptA},
		{FeeItemID: "tuition", Classification: typePtr(models.NewEnrollee)}, // second rule, same item
		{FeeItemID: "lab-fee", YearLevelID: strPtr("year-9")},               // no match
	}
	// "tuition" also flagged scope=all: must still count once
	applicable := ResolveApplicableFeeItems(rules, []string{"tuition", "misc-fee"}, student)

	if len(applicable) != 2 {
		t.Fatalf("expected 2 applicable items, got %d: %v", len(applicable), applicable)
	}
	if !applicable["tuition"] || !applicable["misc-fee"] {
		t.Errorf("unexpected applicable set: %v", applicable)
	}
}

func TestTotalFeesCountsEachItemOnce(t *testing.T) {
	items := []*models.FeeItem{
		{ID: "tuition", Price: 10000, IsActive: true},
		{ID: "tuition", Price: 10000, IsActive: true}, // duplicate row from a join
		{ID: "misc-fee", Price: 1500, IsActive: true},
		{ID: "inactive", Price: 9999, IsActive: false},
		{ID: "not-applicable", Price: 500, IsActive: true},
	}
	applicable := map[string]bool{"tuition": true, "misc-fee": true, "inactive": true}

	total := TotalFees(items, applicable)
	if !total.Equal(d(11500)) {
		t.Errorf("TotalFees = %s, want 11500", total)
	}
}

func TestTotalActiveDiscount(t *testing.T) {
	grants := []*models.GrantRecipient{
		{DiscountAmount: 1000, Status: models.GrantActive},
		{DiscountAmount: 500, Status: models.GrantInactive},
		{DiscountAmount: 250, Status: models.GrantRevoked},
		{DiscountAmount: 2000, Status: models.GrantActive},
	}
	if got := TotalActiveDiscount(grants); !got.Equal(d(3000)) {
		t.Errorf("TotalActiveDiscount = %s, want 3000", got)
	}
	if got := TotalActiveDiscount(nil); !got.IsZero() {
		t.Errorf("TotalActiveDiscount(nil) = %s, want 0", got)
	}
}

func TestTotalPaid(t *testing.T) {
	ledger := []*models.StudentPayment{
		{Amount: 3000},
		{Amount: 2000},
	}
	online := []*models.OnlineTransaction{
		{Amount: 1500, Status: models.TransactionVerified},
		{Amount: 800, Status: models.TransactionPending},
		{Amount: 400, Status: models.TransactionFailed},
		{Amount: 300, Status: models.TransactionRefunded},
	}

	if got := TotalPaid(ledger, online); !got.Equal(d(6500)) {
		t.Errorf("TotalPaid = %s, want 6500 (ledger 5000 + verified 1500)", got)
	}
	if got := TotalPaid(nil, nil); !got.IsZero() {
		t.Errorf("TotalPaid(nil, nil) = %s, want 0", got)
	}
}

func TestComputeBalance(t *testing.T) {
	tests := []struct {
		name          string
		fees          float64
		discount      float64
		paid          float64
		wantBalance   float64
		wantFullyPaid bool
	}{
		{"partial payment", 10000, 1000, 5000, 4000, false},
		{"exact payment", 10000, 1000, 9000, 0, true},
		{"overpayment clamps to zero", 10000, 1000, 20000, 0, true},
		{"discount exceeds fees", 5000, 8000, 0, 0, true},
		{"no fees at all", 0, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, fullyPaid := ComputeBalance(d(tt.fees), d(tt.discount), d(tt.paid))
			if !balance.Equal(d(tt.wantBalance)) {
				t.Errorf("balance = %s, want %v", balance, tt.wantBalance)
			}
			if fullyPaid != tt.wantFullyPaid {
				t.Errorf("fullyPaid = %v, want %v", fullyPaid, tt.wantFullyPaid)
			}
		})
	}
}

func TestComputeEffectiveBalance(t *testing.T) {
	tests := []struct {
		name              string
		balance           float64
		promissory        float64
		wantEffective     float64
		wantHasPromissory bool
	}{
		{"no promissory", 4000, 0, 4000, false},
		{"partial coverage", 4000, 2500, 1500, true},
		{"exact coverage", 4000, 4000, 0, true},
		{"coverage exceeds balance", 4000, 6000, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effective, hasPromissory := ComputeEffectiveBalance(d(tt.balance), d(tt.promissory))
			if !effective.Equal(d(tt.wantEffective)) {
				t.Errorf("effective = %s, want %v", effective, tt.wantEffective)
			}
			if hasPromissory != tt.wantHasPromissory {
				t.Errorf("hasPromissory = %v, want %v", hasPromissory, tt.wantHasPromissory)
			}
		})
	}
}

func TestEffectiveBalanceNeverExceedsBalance(t *testing.T) {
	cases := []struct{ balance, promissory float64 }{
		{0, 0}, {0, 500}, {100, 0}, {100, 50}, {100, 100}, {100, 5000},
	}
	for _, c := range cases {
		effective, _ := ComputeEffectiveBalance(d(c.balance), d(c.promissory))
		if effective.GreaterThan(d(c.balance)) {
			t.Errorf("effective %s > balance %v", effective, c.balance)
		}
		if effective.IsNegative() {
			t.Errorf("effective %s is negative", effective)
		}
	}
}

func TestApprovedPromissoryTotal(t *testing.T) {
	notes := []*models.PromissoryNote{
		{Amount: 2000, Status: models.PromissoryApproved},
		{Amount: 1000, Status: models.PromissoryPending},
		{Amount: 500, Status: models.PromissoryDeclined},
		{Amount: 1500, Status: models.PromissoryApproved},
	}
	if got := ApprovedPromissoryTotal(notes); !got.Equal(d(3500)) {
		t.Errorf("ApprovedPromissoryTotal = %s, want 3500", got)
	}
}

func TestBuildBalanceSummaryScenarios(t *testing.T) {
	// fees=10000, discount=1000, paid=5000 -> balance 4000, not fully paid
	summary := BuildBalanceSummary("stu-1", "2024-2025", d(10000), d(1000), d(5000), decimal.Zero)
	if summary.Balance != 4000 || summary.IsFullyPaid {
		t.Errorf("got balance=%v fullyPaid=%v, want 4000/false", summary.Balance, summary.IsFullyPaid)
	}
	if summary.EffectiveBalance != 4000 || summary.HasPromissory {
		t.Errorf("got effective=%v hasPromissory=%v, want 4000/false", summary.EffectiveBalance, summary.HasPromissory)
	}

	// same student with an approved note of 4000 -> effective 0
	summary = BuildBalanceSummary("stu-1", "2024-2025", d(10000), d(1000), d(5000), d(4000))
	if summary.EffectiveBalance != 0 || !summary.HasPromissory {
		t.Errorf("got effective=%v hasPromissory=%v, want 0/true", summary.EffectiveBalance, summary.HasPromissory)
	}

	// note of 6000 exceeds the balance -> clamped to 0, not negative
	summary = BuildBalanceSummary("stu-1", "2024-2025", d(10000), d(1000), d(5000), d(6000))
	if summary.EffectiveBalance != 0 {
		t.Errorf("got effective=%v, want clamped 0", summary.EffectiveBalance)
	}

	// zero fees -> zero balance, fully paid
	summary = BuildBalanceSummary("stu-2", "2024-2025", decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	if summary.Balance != 0 || !summary.IsFullyPaid {
		t.Errorf("got balance=%v fullyPaid=%v, want 0/true", summary.Balance, summary.IsFullyPaid)
	}
}

func TestDecimalCurrencyPrecision(t *testing.T) {
	// 0.1 + 0.2 style float drift must not leak into balances.
	balance, fullyPaid := ComputeBalance(d(0.3), d(0.1), d(0.2))
	if !balance.IsZero() || !fullyPaid {
		t.Errorf("0.3 - 0.1 - 0.2 = %s (fullyPaid=%v), want exactly 0/true", balance, fullyPaid)
	}
}
