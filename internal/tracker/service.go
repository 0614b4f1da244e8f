package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dietracker/internal/advisor"
	"dietracker/internal/archive"
	"dietracker/internal/food"
	"dietracker/internal/ledger"
	"dietracker/internal/logger"
	"dietracker/internal/metrics"
	"dietracker/internal/profile"

	"go.uber.org/zap"
)

var (
	ErrInvalidTransition  = errors.New("action not allowed on the current page")
	ErrNoPlan             = errors.New("create a plan first")
	ErrNothingPending     = errors.New("no meal waiting to be added")
	ErrEmptyLog           = errors.New("nothing logged today")
	ErrArchiveUnavailable = errors.New("history archive unavailable")
)

// HistoryRow is an archived day plus its meals joined for display.
type HistoryRow struct {
	archive.DailySummary
	MealsSummary string `json:"meals_summary"`
}

type Service struct {
	estimator *food.Estimator
	archive   archive.Archive
	sessions  *Store
	now       func() time.Time
}

// NewService wires the tracker. now defaults to time.Now.
func NewService(estimator *food.Estimator, logs archive.Archive, sessions *Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		estimator: estimator,
		archive:   logs,
		sessions:  sessions,
		now:       now,
	}
}

func (s *Service) Estimator() *food.Estimator {
	return s.estimator
}

// do runs fn with the user's session locked and returns the resulting view.
func (s *Service) do(userID string, fn func(sess *Session) error) (View, error) {
	sess := s.sessions.Get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := fn(sess); err != nil {
		return sess.view(), err
	}
	return sess.view(), nil
}

// onDashboard guards every meal and log action.
func onDashboard(sess *Session) error {
	if sess.metrics == nil {
		return ErrNoPlan
	}
	if sess.page != PageDashboard {
		return ErrInvalidTransition
	}
	return nil
}

func (s *Service) State(userID string) View {
	v, _ := s.do(userID, func(*Session) error { return nil })
	return v
}

// --------------------------------------------------
// Navigation
// --------------------------------------------------

// CreatePlan validates p, derives the metrics and opens the dashboard.
// The ledger survives re-planning.
func (s *Service) CreatePlan(userID string, p profile.Profile) (View, error) {
	p.Normalize()

	return s.do(userID, func(sess *Session) error {
		if sess.page != PageProfile {
			return ErrInvalidTransition
		}
		if err := p.Validate(); err != nil {
			return err
		}
		derived := metrics.Derive(p)
		sess.profile = &p
		sess.metrics = &derived
		sess.page = PageDashboard
		return nil
	})
}

func (s *Service) EditProfile(userID string) (View, error) {
	return s.do(userID, func(sess *Session) error {
		if err := onDashboard(sess); err != nil {
			return err
		}
		sess.page = PageProfile
		return nil
	})
}

func (s *Service) OpenHistory(userID string) (View, error) {
	return s.do(userID, func(sess *Session) error {
		if err := onDashboard(sess); err != nil {
			return err
		}
		sess.page = PageHistory
		return nil
	})
}

func (s *Service) BackToTracker(userID string) (View, error) {
	return s.do(userID, func(sess *Session) error {
		if sess.page != PageHistory {
			return ErrInvalidTransition
		}
		sess.page = PageDashboard
		return nil
	})
}

// --------------------------------------------------
// Meals
// --------------------------------------------------

func (s *Service) Analyze(userID, dish string, qty float64) (View, error) {
	return s.do(userID, func(sess *Session) error {
		if err := onDashboard(sess); err != nil {
			return err
		}
		est, err := s.estimator.FromCatalog(dish, qty)
		if err != nil {
			return err
		}
		s.setPending(sess, est)
		return nil
	})
}

func (s *Service) Predict(userID string, d food.Description) (View, error) {
	return s.do(userID, func(sess *Session) error {
		if err := onDashboard(sess); err != nil {
			return err
		}
		est, err := s.estimator.Predict(d)
		if err != nil {
			return err
		}
		s.setPending(sess, est)
		return nil
	})
}

// setPending attaches tips against the budget left after this meal.
func (s *Service) setPending(sess *Session, est *food.Estimate) {
	remaining := sess.metrics.DailyTarget - sess.ledger.Total() - est.Calories
	est.Feedback = advisor.Generate(est.Calories, est.ProteinG, est.CarbsG, remaining)
	sess.pending = est
}

func (s *Service) Accept(userID string) (View, error) {
	return s.do(userID, func(sess *Session) error {
		if err := onDashboard(sess); err != nil {
			return err
		}
		if sess.pending == nil {
			return ErrNothingPending
		}
		sess.ledger.Append(ledger.Entry{
			DishName: sess.pending.Name,
			Quantity: sess.pending.DisplayQuantity,
			Calories: sess.pending.Calories,
		})
		sess.pending = nil
		return nil
	})
}

func (s *Service) Cancel(userID string) (View, error) {
	return s.do(userID, func(sess *Session) error {
		if err := onDashboard(sess); err != nil {
			return err
		}
		sess.pending = nil
		return nil
	})
}

// --------------------------------------------------
// Daily log
// --------------------------------------------------

func (s *Service) Reset(userID string) (View, error) {
	return s.do(userID, func(sess *Session) error {
		if err := onDashboard(sess); err != nil {
			return err
		}
		sess.ledger.Clear()
		return nil
	})
}

// Save archives today's log. The ledger is left as it was, whether or
// not the archive accepts the document.
func (s *Service) Save(ctx context.Context, userID string) (archive.DailySummary, error) {
	sess := s.sessions.Get(userID)

	sess.mu.Lock()
	if err := onDashboard(sess); err != nil {
		sess.mu.Unlock()
		return archive.DailySummary{}, err
	}
	if sess.ledger.Len() == 0 {
		sess.mu.Unlock()
		return archive.DailySummary{}, ErrEmptyLog
	}
	summary := archive.NewDailySummary(
		sess.profile.Name,
		s.now(),
		sess.ledger.Entries(),
		sess.metrics.DailyTarget,
	)
	sess.mu.Unlock()

	if err := s.archive.Insert(ctx, summary); err != nil {
		logger.Error("archive insert failed",
			zap.String("userID", userID),
			zap.String("date", summary.Date),
			zap.Error(err),
		)
		return archive.DailySummary{}, fmt.Errorf("%w: %w", ErrArchiveUnavailable, err)
	}

	logger.Info("daily log saved",
		zap.String("userID", userID),
		zap.String("date", summary.Date),
		zap.Float64("total_calories", summary.TotalCalories),
		zap.String("goal_status", string(summary.GoalStatus)),
	)
	return summary, nil
}

// History lists every archived day. A failing archive yields an empty list.
func (s *Service) History(ctx context.Context) []HistoryRow {
	summaries, err := s.archive.FindAll(ctx)
	if err != nil {
		logger.Warn("archive fetch failed", zap.Error(err))
		return []HistoryRow{}
	}

	rows := make([]HistoryRow, 0, len(summaries))
	for _, d := range summaries {
		rows = append(rows, HistoryRow{DailySummary: d, MealsSummary: d.MealNames()})
	}
	return rows
}
