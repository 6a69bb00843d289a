package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/ynab-compass/internal/apperrors"
	"github.com/ndewijer/ynab-compass/internal/model"
	"github.com/ndewijer/ynab-compass/internal/ynab"
)

// BudgetService exposes the budget reference data the browsing surfaces
// need: budgets, accounts, category groups and payees. All of it lives on
// the remote service; this layer only shapes the calls.
type BudgetService struct {
	client ynab.Client
}

// NewBudgetService creates a BudgetService backed by the given
// remote-service client.
func NewBudgetService(client ynab.Client) *BudgetService {
	return &BudgetService{client: client}
}

// ListBudgets returns the budgets the configured token grants access to.
func (s *BudgetService) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	budgets, err := s.client.GetBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveBudgets, err)
	}
	return budgets, nil
}

// GetBudgetDetail fetches a budget's accounts, category groups and payees
// in parallel. One failed fetch fails the whole detail.
func (s *BudgetService) GetBudgetDetail(ctx context.Context, budgetID string) (model.BudgetDetail, error) {
	var detail model.BudgetDetail

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		accounts, err := s.client.GetAccounts(ctx, budgetID)
		if err != nil {
			return fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveAccounts, err)
		}
		detail.Accounts = accounts
		return nil
	})
	g.Go(func() error {
		groups, err := s.client.GetCategoryGroups(ctx, budgetID)
		if err != nil {
			return fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveCategories, err)
		}
		detail.CategoryGroups = groups
		return nil
	})
	g.Go(func() error {
		payees, err := s.client.GetPayees(ctx, budgetID)
		if err != nil {
			return fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrievePayees, err)
		}
		detail.Payees = payees
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.BudgetDetail{}, err
	}
	return detail, nil
}

// ListAccounts returns a budget's accounts.
func (s *BudgetService) ListAccounts(ctx context.Context, budgetID string) ([]model.Account, error) {
	accounts, err := s.client.GetAccounts(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveAccounts, err)
	}
	return accounts, nil
}

// ListCategoryGroups returns a budget's category groups with categories.
func (s *BudgetService) ListCategoryGroups(ctx context.Context, budgetID string) ([]model.CategoryGroup, error) {
	groups, err := s.client.GetCategoryGroups(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveCategories, err)
	}
	return groups, nil
}

// ListPayees returns a budget's payees.
func (s *BudgetService) ListPayees(ctx context.Context, budgetID string) ([]model.Payee, error) {
	payees, err := s.client.GetPayees(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrievePayees, err)
	}
	return payees, nil
}
