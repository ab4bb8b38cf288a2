package scoring

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Upstream records arrive with inconsistent field naming: title-cased sheet
// columns ("Year", "Scores"), camelCase API fields, and financial measures
// using targetBudget/actualSpent instead of target/actual. Everything is
// normalized here, at the edge; engine code only ever sees LineItem.

// NormalizeLineItems accepts either a JSON-encoded string or an already
// decoded []any of score objects and returns canonical line items. Malformed
// entries are dropped rather than failing the whole record.
func NormalizeLineItems(value any) []LineItem {
	var rawItems []any

	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		if err := json.Unmarshal([]byte(v), &rawItems); err != nil {
			return nil
		}
	case []any:
		rawItems = v
	case []map[string]any:
		for _, m := range v {
			rawItems = append(rawItems, m)
		}
	default:
		return nil
	}

	items := make([]LineItem, 0, len(rawItems))
	for _, raw := range rawItems {
		obj, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, NormalizeLineItem(obj))
	}
	return items
}

// NormalizeLineItem converts one raw score object into a LineItem, resolving
// the target/targetBudget and actual/actualSpent aliases and coercing string
// numerics. A NaN or blank weight leaves HasWeight false so weight-sum
// validation can reject it as missing rather than treating it as zero.
func NormalizeLineItem(raw map[string]any) LineItem {
	item := LineItem{
		Dimension: Text(raw, "dimension", "Dimension"),
		Measure:   Text(raw, "measure", "Measure"),
		Comment:   Text(raw, "comment", "Comment"),
		Evidence:  Text(raw, "evidence", "evidenceLink", "Evidence"),
	}

	if target, ok := Numeric(raw, "targetBudget", "TargetBudget"); ok {
		item.Target = target
		item.IsFinancial = true
	} else if target, ok := Numeric(raw, "target", "Target", "targetValue", "Target Value"); ok {
		item.Target = target
	}

	if actual, ok := Numeric(raw, "actualSpent", "ActualSpent"); ok {
		item.Actual = actual
		item.IsFinancial = true
	} else if actual, ok := Numeric(raw, "actual", "Actual"); ok {
		item.Actual = actual
	}

	if rating, ok := Numeric(raw, "rating", "Rating"); ok {
		item.Rating = rating
	}
	if weight, ok := Numeric(raw, "weight", "Weight"); ok {
		item.Weight = weight
		item.HasWeight = true
	}
	if weighted, ok := Numeric(raw, "weighted", "Weighted"); ok {
		item.Weighted = weighted
	}
	if item.Dimension == DimensionInternalProcess || item.Dimension == DimensionLearningGrowth {
		item.IsCumulative = true
	}

	return item
}

// Numeric looks up the first present key and coerces its value to a float.
// Blank strings and unparsable values report ok=false; NaN never escapes.
func Numeric(raw map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		value, present := raw[key]
		if !present {
			continue
		}
		switch v := value.(type) {
		case float64:
			if math.IsNaN(v) {
				return 0, false
			}
			return v, true
		case int:
			return float64(v), true
		case json.Number:
			parsed, err := v.Float64()
			if err != nil {
				return 0, false
			}
			return parsed, true
		case string:
			trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "%"))
			if trimmed == "" {
				return 0, false
			}
			parsed, err := strconv.ParseFloat(trimmed, 64)
			if err != nil || math.IsNaN(parsed) {
				return 0, false
			}
			return parsed, true
		}
	}
	return 0, false
}

// Text looks up the first present key holding a non-empty string.
func Text(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := raw[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// Integer coerces like Numeric but truncates to int.
func Integer(raw map[string]any, keys ...string) (int, bool) {
	value, ok := Numeric(raw, keys...)
	if !ok {
		return 0, false
	}
	return int(value), true
}
