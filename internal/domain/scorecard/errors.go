package scorecard

import "errors"

var (
	ErrDuplicateSubmission = errors.New("a scorecard already exists for this employee, year, month and week")
	ErrSubmissionNotFound  = errors.New("scorecard submission not found")
)
