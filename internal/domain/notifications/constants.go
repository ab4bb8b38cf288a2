package notifications

const (
	TypeRecognition  = "recognition"
	TypeAISuggestion = "ai_suggestion"
	TypeInsight      = "insight"
	TypeReminder     = "reminder"
)

const (
	PriorityHigh   = "high"
	PriorityNormal = "normal"
	PriorityLow    = "low"
)
