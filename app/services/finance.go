package services

import (
	"github.com/shopspring/decimal"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
)

// The fee/balance aggregates are pure functions over already-fetched rows so
// they can be unit tested without a database. The query layer in
// app/database fetches the rows and feeds them through here.

// StudentScope is the classification triple a fee assignment rule is matched
// against.
type StudentScope struct {
	Classification models.StudentType
	DepartmentID   *string
	YearLevelID    *string
}

// AssignmentRule is the matching view of an active FeeItemAssignment row.
type AssignmentRule struct {
	FeeItemID      string
	Classification *models.StudentType
	DepartmentID   *string
	YearLevelID    *string
}

// Matches applies the tri-state criterion policy: an unset criterion is
// ignored, a set criterion must equal the student's value, and the rule
// matches when ANY set criterion matches. The OR across criteria is the
// established product behavior (a rule scoped only by department reaches
// every year level in it); do not tighten it to AND without a product
// decision. A rule with no criteria set matches nobody.
func (r AssignmentRule) Matches(s StudentScope) bool {
	if r.Classification != nil && *r.Classification == s.Classification {
		return true
	}
	if r.DepartmentID != nil && s.DepartmentID != nil && *r.DepartmentID == *s.DepartmentID {
		return true
	}
	if r.YearLevelID != nil && s.YearLevelID != nil && *r.YearLevelID == *s.YearLevelID {
		return true
	}
	return false
}

// ResolveApplicableFeeItems returns the deduplicated set of fee item IDs
// that apply to the student: items reached through a matching assignment
// rule, united with items flagged scope="all". An item matched by both
// routes appears once.
func ResolveApplicableFeeItems(rules []AssignmentRule, allScopeItemIDs []string, student StudentScope) map[string]bool {
	applicable := make(map[string]bool)
	for _, rule := range rules {
		if rule.Matches(student) {
			applicable[rule.FeeItemID] = true
		}
	}
	for _, id := range allScopeItemIDs {
		applicable[id] = true
	}
	return applicable
}

// TotalFees sums the prices of active fee items whose ID is in the
// applicable set. Duplicate item rows cannot double-charge: summation is
// keyed by the set.
func TotalFees(items []*models.FeeItem, applicable map[string]bool) decimal.Decimal {
	total := decimal.Zero
	seen := make(map[string]bool)
	for _, item := range items {
		if !item.IsActive || seen[item.ID] || !applicable[item.ID] {
			continue
		}
		seen[item.ID] = true
		total = total.Add(decimal.NewFromFloat(item.Price))
	}
	return total
}

// TotalActiveDiscount sums discount amounts over active grant awards only.
func TotalActiveDiscount(grants []*models.GrantRecipient) decimal.Decimal {
	total := decimal.Zero
	for _, g := range grants {
		if g.Status != models.GrantActive {
			continue
		}
		total = total.Add(decimal.NewFromFloat(g.DiscountAmount))
	}
	return total
}

// TotalPaid sums every ledger payment (no status filter) plus online
// transactions with status "verified" only.
func TotalPaid(ledger []*models.StudentPayment, online []*models.OnlineTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, p := range ledger {
		total = total.Add(decimal.NewFromFloat(p.Amount))
	}
	for _, tx := range online {
		if tx.Status != models.TransactionVerified {
			continue
		}
		total = total.Add(decimal.NewFromFloat(tx.Amount))
	}
	return total
}

// ApprovedPromissoryTotal sums amounts over approved promissory notes only.
func ApprovedPromissoryTotal(notes []*models.PromissoryNote) decimal.Decimal {
	total := decimal.Zero
	for _, n := range notes {
		if n.Status != models.PromissoryApproved {
			continue
		}
		total = total.Add(decimal.NewFromFloat(n.Amount))
	}
	return total
}

// ComputeBalance returns max(0, fees - discount - paid) and whether the
// student is fully paid. The balance is never negative no matter how large
// the discount or payment totals are.
func ComputeBalance(totalFees, totalDiscount, totalPaid decimal.Decimal) (decimal.Decimal, bool) {
	balance := totalFees.Sub(totalDiscount).Sub(totalPaid)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	return balance, balance.IsZero()
}

// ComputeEffectiveBalance subtracts approved promissory coverage from the
// balance, clamped at zero: coverage can never push the figure negative.
func ComputeEffectiveBalance(balance, approvedPromissoryTotal decimal.Decimal) (decimal.Decimal, bool) {
	effective := balance.Sub(approvedPromissoryTotal)
	if effective.IsNegative() {
		effective = decimal.Zero
	}
	return effective, approvedPromissoryTotal.IsPositive()
}

// BalanceSummary is the aggregate record rendered on the parent, registrar
// and accounting views. The field names are part of the front-end contract.
type BalanceSummary struct {
	StudentID        string  `json:"student_id"`
	SchoolYear       string  `json:"school_year"`
	TotalFees        float64 `json:"total_fees"`
	DiscountAmount   float64 `json:"discount_amount"`
	TotalPaid        float64 `json:"total_paid"`
	Balance          float64 `json:"balance"`
	EffectiveBalance float64 `json:"effective_balance"`
	HasPromissory    bool    `json:"has_promissory"`
	IsFullyPaid      bool    `json:"is_fully_paid"`
}

// BuildBalanceSummary runs the full pipeline: balance from fees, discounts
// and payments, then promissory coverage on top.
func BuildBalanceSummary(studentID, schoolYear string, totalFees, totalDiscount, totalPaid, promissoryTotal decimal.Decimal) BalanceSummary {
	balance, fullyPaid := ComputeBalance(totalFees, totalDiscount, totalPaid)
	effective, hasPromissory := ComputeEffectiveBalance(balance, promissoryTotal)

	return BalanceSummary{
		StudentID:        studentID,
		SchoolYear:       schoolYear,
		TotalFees:        totalFees.InexactFloat64(),
		DiscountAmount:   totalDiscount.InexactFloat64(),
		TotalPaid:        totalPaid.InexactFloat64(),
		Balance:          balance.InexactFloat64(),
		EffectiveBalance: effective.InexactFloat64(),
		HasPromissory:    hasPromissory,
		IsFullyPaid:      fullyPaid,
	}
}
