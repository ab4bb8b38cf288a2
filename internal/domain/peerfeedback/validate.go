package peerfeedback

import (
	"fmt"
	"strings"
)

// FieldIssue is one per-core-value validation failure.
type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidateRecord checks a reviewer submission before storage: every core
// value must carry a rating in [1,5] and free text of at least
// MinCommentLength characters. Failures are itemized per field with the
// current character count so the reviewer can fix them in one pass.
func ValidateRecord(record Record) []FieldIssue {
	var issues []FieldIssue

	if strings.TrimSpace(record.EmployeeEmail) == "" {
		issues = append(issues, FieldIssue{Field: "employeeEmail", Reason: "is required"})
	}
	if record.Quarter == "" {
		issues = append(issues, FieldIssue{Field: "quarter", Reason: "is required"})
	}

	for _, key := range CoreValueKeys {
		rating, ok := record.Ratings[key]
		if !ok {
			issues = append(issues, FieldIssue{Field: key, Reason: "rating is required"})
		} else if rating < 1 || rating > 5 {
			issues = append(issues, FieldIssue{Field: key, Reason: "rating must be between 1 and 5"})
		}

		comment := strings.TrimSpace(record.Comments[key])
		if len(comment) < MinCommentLength {
			issues = append(issues, FieldIssue{
				Field:  key,
				Reason: fmt.Sprintf("needs at least %d characters (currently %d)", MinCommentLength, len(comment)),
			})
		}
	}

	return issues
}
