package scoring

import "testing"

func TestNormalizeLineItemAliases(t *testing.T) {
	item := NormalizeLineItem(map[string]any{
		"dimension":    DimensionFinancial,
		"measure":      "Budget Management",
		"targetBudget": "1000",
		"actualSpent":  "800",
		"rating":       "3.4",
		"weight":       "10",
	})

	if !item.IsFinancial {
		t.Fatal("expected financial item from budget aliases")
	}
	if item.Target != 1000 || item.Actual != 800 {
		t.Fatalf("unexpected target/actual: %v/%v", item.Target, item.Actual)
	}
	if !item.HasWeight || item.Weight != 10 {
		t.Fatalf("unexpected weight: %+v", item)
	}
}

func TestNormalizeLineItemTitleCasedKeys(t *testing.T) {
	item := NormalizeLineItem(map[string]any{
		"Dimension": DimensionLearningGrowth,
		"Measure":   "Training Hours",
		"Target":    float64(40),
		"Actual":    float64(12),
		"Rating":    float64(1.6),
		"Weight":    float64(10),
	})

	if item.Dimension != DimensionLearningGrowth {
		t.Fatalf("expected dimension from title-cased key, got %q", item.Dimension)
	}
	if !item.IsCumulative {
		t.Fatal("learning & growth measures accumulate across weeks")
	}
	if item.IsFinancial {
		t.Fatal("plain target/actual must not mark the item financial")
	}
}

func TestNormalizeLineItemBlankWeight(t *testing.T) {
	item := NormalizeLineItem(map[string]any{
		"dimension": DimensionCustomer,
		"measure":   "External Customer Satisfaction",
		"weight":    "",
	})
	if item.HasWeight {
		t.Fatal("blank weight must stay unset so validation rejects it")
	}

	item = NormalizeLineItem(map[string]any{"weight": "not-a-number"})
	if item.HasWeight {
		t.Fatal("unparsable weight must stay unset")
	}
}

func TestNormalizeLineItemsFromJSONString(t *testing.T) {
	encoded := `[{"dimension":"Internal Process","measure":"Process Improvement","target":"20","actual":"15","rating":"2.5","weight":"50"}]`
	items := NormalizeLineItems(encoded)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Rating != 2.5 || items[0].Weight != 50 {
		t.Fatalf("unexpected item: %+v", items[0])
	}
	if !items[0].IsCumulative {
		t.Fatal("internal process measures accumulate across weeks")
	}
}

func TestNormalizeLineItemsMalformed(t *testing.T) {
	if items := NormalizeLineItems("{broken"); items != nil {
		t.Fatalf("expected nil for malformed payload, got %v", items)
	}
	if items := NormalizeLineItems(42); items != nil {
		t.Fatalf("expected nil for unsupported shape, got %v", items)
	}
}

func TestNumericPercentSuffix(t *testing.T) {
	value, ok := Numeric(map[string]any{"pctUsed": "80.0%"}, "pctUsed")
	if !ok || value != 80 {
		t.Fatalf("expected 80 from percent string, got %v (%v)", value, ok)
	}
}
