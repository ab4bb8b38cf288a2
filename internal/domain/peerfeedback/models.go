package peerfeedback

import "time"

// Record is one reviewer's anonymous submission for one employee and
// quarter. The reviewer identity stays server-side; it never crosses into
// any employee-facing response.
type Record struct {
	ID            string             `json:"id,omitempty"`
	ReviewerEmail string             `json:"-"`
	EmployeeEmail string             `json:"employeeEmail"`
	Year          int                `json:"year"`
	Quarter       string             `json:"quarter"`
	Ratings       map[string]float64 `json:"ratings"`
	Comments      map[string]string  `json:"comments,omitempty"`
	SubmittedAt   time.Time          `json:"submittedAt,omitempty"`
}

// Aggregate is the only shape employee-facing code ever sees: how many
// peers responded and their combined average, nothing per reviewer.
type Aggregate struct {
	Count        int     `json:"count"`
	AverageScore float64 `json:"averageScore"`
}

// HasData reports whether the peer review line item can be scored at all.
// Zero submissions means "no data", which is distinct from a low score.
func (a Aggregate) HasData() bool {
	return a.Count > 0
}

// Request asks a reviewer to rate a colleague for a quarter.
type Request struct {
	ID            string    `json:"id"`
	EmployeeEmail string    `json:"employeeEmail"`
	EmployeeName  string    `json:"employeeName"`
	ReviewerEmail string    `json:"reviewerEmail"`
	Year          int       `json:"year"`
	Quarter       string    `json:"quarter"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
