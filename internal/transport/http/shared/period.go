package shared

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"scorecard/internal/domain/scorecard"
)

// Period identifies a reporting window from query parameters, defaulting to
// the current year and quarter when the caller leaves them out.
type Period struct {
	Year    int
	Month   int
	Quarter string
}

func ParsePeriod(r *http.Request, now time.Time) Period {
	p := Period{
		Year:    now.Year(),
		Month:   int(now.Month()),
		Quarter: scorecard.QuarterOf(int(now.Month())),
	}
	query := r.URL.Query()
	if raw := query.Get("year"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			p.Year = v
		}
	}
	if raw := query.Get("month"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 && v <= 12 {
			p.Month = v
			p.Quarter = scorecard.QuarterOf(v)
		}
	}
	if raw := normalizeQuarter(query.Get("quarter")); raw != "" {
		p.Quarter = raw
	}
	return p
}

func normalizeQuarter(raw string) string {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if scorecard.QuarterMonths(raw) == nil {
		return ""
	}
	return raw
}
