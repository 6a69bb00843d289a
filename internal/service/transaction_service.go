package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ndewijer/ynab-compass/internal/apperrors"
	"github.com/ndewijer/ynab-compass/internal/model"
	"github.com/ndewijer/ynab-compass/internal/viewstate"
	"github.com/ndewijer/ynab-compass/internal/ynab"
)

// TransactionService owns one transaction view session per budget. Each
// session holds a view-state engine seeded with the transactions fetched
// from the remote service for the session's timeline period; dispatching a
// view operation recomputes the session's displayed collection.
//
// Sessions are serialized per budget: view operations on the same budget
// apply in the order they arrive, one at a time.
type TransactionService struct {
	client        ynab.Client
	defaultPeriod viewstate.Period
	now           func() time.Time

	mu       sync.Mutex
	sessions map[string]*viewSession
}

// viewSession pairs an engine with the timeline the data was fetched for.
// period is what the user asked for; effective is where the widening
// ladder actually landed.
type viewSession struct {
	mu        sync.Mutex
	engine    *viewstate.Engine
	period    viewstate.Period
	effective viewstate.Period
}

// View is a read-only snapshot of one budget's transaction view, handed to
// the presentation layer.
type View struct {
	BudgetID          string
	Timeline          viewstate.Period
	EffectiveTimeline viewstate.Period
	State             viewstate.State
}

// NewTransactionService creates a TransactionService backed by the given
// remote-service client. New sessions start at defaultPeriod.
func NewTransactionService(client ynab.Client, defaultPeriod viewstate.Period) *TransactionService {
	return &TransactionService{
		client:        client,
		defaultPeriod: defaultPeriod,
		now:           time.Now,
		sessions:      make(map[string]*viewSession),
	}
}

// View returns the current view snapshot for a budget, creating the
// session (and fetching its transactions) on first use.
func (s *TransactionService) View(ctx context.Context, budgetID string) (View, error) {
	sess, err := s.session(ctx, budgetID)
	if err != nil {
		return View{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.snapshot(budgetID, sess), nil
}

// Group toggles grouping by the given field. An empty field clears
// grouping; anything outside the known set is rejected.
func (s *TransactionService) Group(ctx context.Context, budgetID string, field viewstate.GroupField) (View, error) {
	if field != viewstate.GroupNone && !field.Valid() {
		return View{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidGroupField, field)
	}
	return s.dispatch(ctx, budgetID, viewstate.GroupAction(field))
}

// Sort toggles the given sort criterion. An empty criterion reverts to the
// default date-descending order.
func (s *TransactionService) Sort(ctx context.Context, budgetID string, sort viewstate.Sort) (View, error) {
	if sort != "" && !sort.Valid() {
		return View{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidSortCriterion, sort)
	}
	return s.dispatch(ctx, budgetID, viewstate.SortAction(sort))
}

// Filter toggles the given filter criterion. A nil filter clears filtering.
func (s *TransactionService) Filter(ctx context.Context, budgetID string, filter *viewstate.Filter) (View, error) {
	if filter != nil && !filter.Valid() {
		return View{}, fmt.Errorf("%w: %s=%s", apperrors.ErrInvalidFilter, filter.Key, filter.Value)
	}
	return s.dispatch(ctx, budgetID, viewstate.FilterAction(filter))
}

// Search applies a free-text query. An empty query clears the search.
func (s *TransactionService) Search(ctx context.Context, budgetID, query string) (View, error) {
	return s.dispatch(ctx, budgetID, viewstate.SearchAction(query))
}

// Reset refetches the session's transactions for its current timeline and
// clears every view criterion.
func (s *TransactionService) Reset(ctx context.Context, budgetID string) (View, error) {
	sess, err := s.session(ctx, budgetID)
	if err != nil {
		return View{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	records, effective, err := s.fetch(ctx, budgetID, sess.period)
	if err != nil {
		return View{}, err
	}
	sess.effective = effective
	sess.engine.Apply(viewstate.ResetAction(records))
	return s.snapshot(budgetID, sess), nil
}

// SetTimeline changes the session's lookback period, refetches the data
// source for the new range and resets the view. Widening still applies: an
// empty result climbs the ladder until records appear or year is reached.
func (s *TransactionService) SetTimeline(ctx context.Context, budgetID string, period viewstate.Period) (View, error) {
	if !period.Valid() {
		return View{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidPeriod, period)
	}

	sess, err := s.session(ctx, budgetID)
	if err != nil {
		return View{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	records, effective, err := s.fetch(ctx, budgetID, period)
	if err != nil {
		return View{}, err
	}
	sess.period = period
	sess.effective = effective
	sess.engine.Apply(viewstate.ResetAction(records))
	return s.snapshot(budgetID, sess), nil
}

// Create creates a transaction on the remote service. The budget's view
// session is discarded so the next read reflects the new record.
func (s *TransactionService) Create(ctx context.Context, budgetID string, tx ynab.SaveTransaction) (model.Transaction, error) {
	created, err := s.client.CreateTransaction(ctx, budgetID, tx)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToCreateTransaction, err)
	}
	s.invalidate(budgetID)
	return created, nil
}

// Update updates a transaction on the remote service. The budget's view
// session is discarded so the next read reflects the change.
func (s *TransactionService) Update(ctx context.Context, budgetID, transactionID string, tx ynab.SaveTransaction) (model.Transaction, error) {
	updated, err := s.client.UpdateTransaction(ctx, budgetID, transactionID, tx)
	if err != nil {
		return model.Transaction{}, err
	}
	s.invalidate(budgetID)
	return updated, nil
}

// dispatch routes one view action through the budget's session engine.
func (s *TransactionService) dispatch(ctx context.Context, budgetID string, action viewstate.Action) (View, error) {
	sess, err := s.session(ctx, budgetID)
	if err != nil {
		return View{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.engine.Apply(action)
	return s.snapshot(budgetID, sess), nil
}

// session returns the budget's view session, creating and seeding it on
// first use.
func (s *TransactionService) session(ctx context.Context, budgetID string) (*viewSession, error) {
	s.mu.Lock()
	sess, ok := s.sessions[budgetID]
	if !ok {
		sess = &viewSession{period: s.defaultPeriod}
		s.sessions[budgetID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.engine == nil {
		records, effective, err := s.fetch(ctx, budgetID, sess.period)
		if err != nil {
			// Leave the session unseeded so the next call retries.
			return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveTransactions, err)
		}
		sess.effective = effective
		sess.engine = viewstate.NewEngine(records)
	}
	return sess, nil
}

// fetch loads transactions for a lookback period, widening the range one
// ladder step at a time while the result is empty. It stops at year; an
// empty result there is reported as-is, not as an error.
func (s *TransactionService) fetch(ctx context.Context, budgetID string, period viewstate.Period) ([]model.Transaction, viewstate.Period, error) {
	current := period
	for {
		records, err := s.client.GetTransactions(ctx, budgetID, current.Start(s.now()))
		if err != nil {
			return nil, current, err
		}
		if len(records) > 0 {
			return records, current, nil
		}

		wider, ok := current.Widen()
		if !ok {
			return records, current, nil
		}
		current = wider
	}
}

// invalidate drops a budget's session so the next operation refetches.
func (s *TransactionService) invalidate(budgetID string) {
	s.mu.Lock()
	delete(s.sessions, budgetID)
	s.mu.Unlock()
}

func (s *TransactionService) snapshot(budgetID string, sess *viewSession) View {
	return View{
		BudgetID:          budgetID,
		Timeline:          sess.period,
		EffectiveTimeline: sess.effective,
		State:             sess.engine.State(),
	}
}
