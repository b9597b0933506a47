package enums

import "fmt"

// PlanPeriod is the billing frequency unit of a plan.
type PlanPeriod string

const (
	PlanPeriodDaily   PlanPeriod = "daily"
	PlanPeriodWeekly  PlanPeriod = "weekly"
	PlanPeriodMonthly PlanPeriod = "monthly"
	PlanPeriodYearly  PlanPeriod = "yearly"
)

var validPlanPeriods = []PlanPeriod{
	PlanPeriodDaily,
	PlanPeriodWeekly,
	PlanPeriodMonthly,
	PlanPeriodYearly,
}

// String implements fmt.Stringer.
func (p PlanPeriod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PlanPeriod.
func (p PlanPeriod) IsValid() bool {
	for _, candidate := range validPlanPeriods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePlanPeriod converts raw input into a PlanPeriod.
func ParsePlanPeriod(value string) (PlanPeriod, error) {
	for _, candidate := range validPlanPeriods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid plan period %q", value)
}
