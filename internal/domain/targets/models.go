package targets

import "time"

// Target is a single measure a manager expects from an employee for a
// quarter. Weight is the percentage of the overall scorecard the measure
// carries; the fixed peer-review share is not included here.
type Target struct {
	Dimension   string  `json:"dimension"`
	Measure     string  `json:"measure"`
	TargetValue float64 `json:"targetValue"`
	Weight      float64 `json:"weight"`
	Frequency   string  `json:"frequency"`
}

// Complete reports whether the target carries every field the scorecard
// needs. Partially filled rows are dropped before validation.
func (t Target) Complete() bool {
	return t.Dimension != "" && t.Measure != "" && t.TargetValue != 0 && t.Weight != 0
}

// TargetSet is the full set of targets for one employee in one quarter.
type TargetSet struct {
	ID                 string    `json:"id"`
	ManagerEmail       string    `json:"managerEmail"`
	EmployeeEmail      string    `json:"employeeEmail"`
	Year               int       `json:"year"`
	Quarter            string    `json:"quarter"`
	Targets            []Target  `json:"targets"`
	YearlyDistribution bool      `json:"isYearlyDistribution,omitempty"`
	SavedAt            time.Time `json:"savedAt"`
}
