package scoring

import (
	"errors"
	"fmt"
)

var ErrIncompleteWeights = errors.New("every line item needs a weight before submitting")

// WeightSumError reports a weight total outside the 100% tolerance.
type WeightSumError struct {
	Total float64
}

func (e *WeightSumError) Error() string {
	return fmt.Sprintf("weight percentages must add up to 100%%: current total %.2f%%", e.Total)
}
