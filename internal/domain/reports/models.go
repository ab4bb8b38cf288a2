package reports

import "time"

// TrendPoint is one submission's total weighted score, ordered by period.
type TrendPoint struct {
	Label string    `json:"label"`
	Score float64   `json:"score"`
	Date  time.Time `json:"date"`
}

type DimensionAverage struct {
	Dimension string  `json:"dimension"`
	Score     float64 `json:"score"`
}

// ChartData feeds the dashboard trend and dimension charts.
type ChartData struct {
	Trend      []TrendPoint       `json:"trend"`
	Dimensions []DimensionAverage `json:"dimensions"`
}

// Dashboard is the employee's personal performance overview.
type Dashboard struct {
	Submissions  int        `json:"submissions"`
	AverageScore float64    `json:"averageScore"`
	BestScore    float64    `json:"bestScore"`
	LowestScore  float64    `json:"lowestScore"`
	Charts       *ChartData `json:"charts,omitempty"`
}

// MeasureSummary aggregates one measure across a quarter's submissions.
type MeasureSummary struct {
	Dimension     string  `json:"dimension"`
	Measure       string  `json:"measure"`
	AvgRating     float64 `json:"avgRating"`
	TotalActual   float64 `json:"totalActual"`
	AvgTarget     float64 `json:"avgTarget"`
	AvgWeight     float64 `json:"avgWeight"`
	WeightedScore float64 `json:"weightedScore"`
	Entries       int     `json:"entries"`
}

type QuarterlyReview struct {
	EmployeeEmail      string           `json:"employeeEmail"`
	EmployeeName       string           `json:"employeeName"`
	Year               int              `json:"year"`
	Quarter            string           `json:"quarter"`
	Submissions        int              `json:"submissions"`
	FrequencyCounts    map[string]int   `json:"frequencyCounts"`
	Measures           []MeasureSummary `json:"measures"`
	TotalWeightedScore float64          `json:"totalWeightedScore"`
}

// TeamMemberSummary is one row of a manager's team report.
type TeamMemberSummary struct {
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	JobTitle     string  `json:"jobTitle"`
	Department   string  `json:"department"`
	Submissions  int     `json:"submissions"`
	AverageScore float64 `json:"averageScore"`
	LatestScore  float64 `json:"latestScore"`
	LatestPeriod string  `json:"latestPeriod,omitempty"`
}
