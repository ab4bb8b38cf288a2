package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"scorecard/internal/domain/notifications"
	"scorecard/internal/domain/recognition"
	"scorecard/internal/domain/scorecard"
	"scorecard/internal/platform/config"
)

const (
	JobSubmissionReminder = "submission_reminder"
	JobRecognitionRefresh = "recognition_refresh"
)

// Notifier is the slice of the notification service background jobs use.
type Notifier interface {
	Create(ctx context.Context, recipientEmail, ntype, title, message, actionURL, priority string) error
}

// RecognitionComputer recomputes award rankings for a period.
type RecognitionComputer interface {
	Compute(ctx context.Context, period string, year, month int, quarter string) ([]recognition.Recognition, error)
}

type Service struct {
	DB          *pgxpool.Pool
	Cfg         config.Config
	Notify      Notifier
	Recognition RecognitionComputer
	queue       chan job
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

func New(db *pgxpool.Pool, cfg config.Config, notify Notifier, rec RecognitionComputer) *Service {
	return &Service{
		DB:          db,
		Cfg:         cfg,
		Notify:      notify,
		Recognition: rec,
		queue:       make(chan job, 128),
	}
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
	if s.Cfg.ReminderInterval > 0 {
		go s.scheduleReminders(ctx, s.Cfg.ReminderInterval)
	}
	if s.Cfg.RecognitionInterval > 0 && s.Recognition != nil {
		go s.scheduleRecognition(ctx, s.Cfg.RecognitionInterval)
	}
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

func (s *Service) RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (any, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	runID := ""
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO job_runs (job_type, status)
    VALUES ($1,$2)
    RETURNING id
  `, j.Type, "running").Scan(&runID); err != nil {
		slog.Warn("job run insert failed", "err", err)
	}

	details, err := j.Run(ctx)
	status := "completed"
	if err != nil {
		status = "failed"
	}
	detailsJSON, marshalErr := json.Marshal(details)
	if marshalErr != nil {
		slog.Warn("job details marshal failed", "err", marshalErr)
		detailsJSON = []byte("{}")
	}
	if runID != "" {
		if _, updErr := s.DB.Exec(ctx, `
      UPDATE job_runs
      SET status = $1, details_json = $2, completed_at = now()
      WHERE id = $3
    `, status, detailsJSON, runID); updErr != nil {
			slog.Warn("job run update failed", "err", updErr)
		}
	}
	return details, err
}

func (s *Service) scheduleReminders(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Enqueue(JobSubmissionReminder, func(ctx context.Context) (any, error) {
				return s.remindMissingSubmissions(ctx, time.Now())
			})
		}
	}
}

func (s *Service) scheduleRecognition(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			s.Enqueue(JobRecognitionRefresh, func(ctx context.Context) (any, error) {
				monthly, err := s.Recognition.Compute(ctx, recognition.PeriodMonth, now.Year(), int(now.Month()), "")
				if err != nil {
					return nil, err
				}
				quarterly, err := s.Recognition.Compute(ctx, recognition.PeriodQuarter, now.Year(), 0, scorecard.QuarterOf(int(now.Month())))
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"monthlyWinners":   len(monthly),
					"quarterlyWinners": len(quarterly),
				}, nil
			})
		}
	}
}

// remindMissingSubmissions notifies every active employee who has not
// submitted a scorecard for the current week of the month.
func (s *Service) remindMissingSubmissions(ctx context.Context, now time.Time) (any, error) {
	year, month := now.Year(), int(now.Month())
	week := (now.Day()-1)/7 + 1
	if week > 5 {
		week = 5
	}

	rows, err := s.DB.Query(ctx, `
    SELECT e.email
    FROM employees e
    WHERE e.active
      AND NOT EXISTS (
        SELECT 1 FROM scorecard_submissions s
        WHERE lower(s.employee_email) = lower(e.email)
          AND s.year = $1 AND s.month = $2 AND s.week = $3
      )
  `, year, month, week)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var missing []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		missing = append(missing, email)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	reminded := 0
	for _, email := range missing {
		err := s.Notify.Create(ctx, email, notifications.TypeReminder,
			"Weekly scorecard reminder",
			"You have not submitted your scorecard for this week yet.",
			"#scorecard", notifications.PriorityNormal)
		if err != nil {
			slog.Warn("reminder notification failed", "recipient", email, "err", err)
			continue
		}
		reminded++
	}

	return map[string]any{
		"year": year, "month": month, "week": week,
		"missing": len(missing), "reminded": reminded,
	}, nil
}
