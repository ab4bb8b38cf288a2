package targets

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNoTargets       = errors.New("at least one complete target is required")
	ErrTargetsNotFound = errors.New("no targets set for this period")
)

// BudgetExceededError reports dimensions whose weights exceed their ceiling.
type BudgetExceededError struct {
	Lines []BudgetLine
}

func (e *BudgetExceededError) Error() string {
	parts := make([]string, 0, len(e.Lines))
	for _, line := range e.Lines {
		parts = append(parts, fmt.Sprintf("%s: %s%% exceeds limit of %s%%",
			line.Dimension, trimFloat(line.Total), trimFloat(line.Limit)))
	}
	return "weight limit exceeded: " + strings.Join(parts, "; ")
}

// TotalWeightError reports a grand total (including the automatic 25%
// peer-review share) that does not land on 100%.
type TotalWeightError struct {
	Total float64
}

func (e *TotalWeightError) Error() string {
	return fmt.Sprintf("total weight must equal 100%%: current total %.1f%%", e.Total)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
