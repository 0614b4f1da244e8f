package tracker

import (
	"math"
	"sync"

	"dietracker/internal/food"
	"dietracker/internal/ledger"
	"dietracker/internal/metrics"
	"dietracker/internal/profile"
)

type Page string

const (
	PageProfile   Page = "profile"
	PageDashboard Page = "dashboard"
	PageHistory   Page = "history"
)

// Session is one user's tracker state. Every field is guarded by mu.
type Session struct {
	mu      sync.Mutex
	page    Page
	profile *profile.Profile
	metrics *metrics.Derived
	ledger  *ledger.Ledger
	pending *food.Estimate
}

func NewSession() *Session {
	return &Session{
		page:   PageProfile,
		ledger: ledger.New(),
	}
}

// View is the full session state returned after every action.
type View struct {
	Page      Page             `json:"page"`
	Profile   *profile.Profile `json:"profile"`
	Metrics   *metrics.Derived `json:"metrics"`
	Log       []ledger.Entry   `json:"log"`
	Consumed  float64          `json:"consumed"`
	Remaining float64          `json:"remaining"`
	Progress  float64          `json:"progress"`
	Pending   *food.Estimate   `json:"pending"`
}

// view must be called with s.mu held.
func (s *Session) view() View {
	v := View{
		Page:     s.page,
		Log:      s.ledger.Entries(),
		Consumed: s.ledger.Total(),
	}
	if s.profile != nil {
		p := *s.profile
		v.Profile = &p
	}
	if s.metrics != nil {
		m := *s.metrics
		v.Metrics = &m
		v.Remaining = m.DailyTarget - v.Consumed
		v.Progress = progress(v.Consumed, m.DailyTarget)
	}
	if s.pending != nil {
		e := *s.pending
		e.Feedback = append([]string(nil), s.pending.Feedback...)
		v.Pending = &e
	}
	return v
}

// progress is the consumed share of target, capped at 1.
func progress(consumed, target float64) float64 {
	if target <= 0 {
		if consumed > 0 {
			return 1
		}
		return 0
	}
	return math.Min(consumed/target, 1)
}

// Store holds sessions keyed by user id.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the user's session, creating it on first use.
func (st *Store) Get(userID string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[userID]
	if !ok {
		s = NewSession()
		st.sessions[userID] = s
	}
	return s
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
