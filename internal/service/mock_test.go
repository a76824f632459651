package service_test

import (
	"context"

	"gem-bid-tracker/internal/entity"
	"gem-bid-tracker/internal/repo/repo_errors"
)

// mockBidRepo implements repo.Bid. Unset funcs fall back to harmless
// defaults.
type mockBidRepo struct {
	UpsertScrapedBidsFunc    func(ctx context.Context, bids []entity.ScrapedBid) error
	GetGemBidIdsByStatusFunc func(ctx context.Context, status string) ([]string, error)
	GetBidByIdFunc           func(ctx context.Context, id string) (*entity.Bid, error)
	GetAvailableBidsFunc     func(ctx context.Context, category string, pg *entity.PaginationInput) ([]entity.Bid, error)
	GetAssignedBidsFunc      func(ctx context.Context, assignedTo string, category string) ([]entity.Bid, error)
	AssignBidFunc            func(ctx context.Context, input *entity.AssignBidInput) error
	UpdateBidStatusFunc      func(ctx context.Context, input *entity.UpdateBidStatusInput) error
	GetCategoriesFunc        func(ctx context.Context) ([]entity.Category, error)
	CountBidsByStatusFunc    func(ctx context.Context, category string) (map[string]int, error)
}

func (m *mockBidRepo) UpsertScrapedBids(ctx context.Context, bids []entity.ScrapedBid) error {
	if m.UpsertScrapedBidsFunc != nil {
		return m.UpsertScrapedBidsFunc(ctx, bids)
	}

	return nil
}

func (m *mockBidRepo) GetGemBidIdsByStatus(ctx context.Context, status string) ([]string, error) {
	if m.GetGemBidIdsByStatusFunc != nil {
		return m.GetGemBidIdsByStatusFunc(ctx, status)
	}

	return nil, nil
}

func (m *mockBidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	if m.GetBidByIdFunc != nil {
		return m.GetBidByIdFunc(ctx, id)
	}

	return nil, repo_errors.ErrNotFound
}

func (m *mockBidRepo) GetAvailableBids(ctx context.Context, category string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	if m.GetAvailableBidsFunc != nil {
		return m.GetAvailableBidsFunc(ctx, category, pg)
	}

	return nil, nil
}

func (m *mockBidRepo) GetAssignedBids(ctx context.Context, assignedTo string, category string) ([]entity.Bid, error) {
	if m.GetAssignedBidsFunc != nil {
		return m.GetAssignedBidsFunc(ctx, assignedTo, category)
	}

	return nil, nil
}

func (m *mockBidRepo) AssignBid(ctx context.Context, input *entity.AssignBidInput) error {
	if m.AssignBidFunc != nil {
		return m.AssignBidFunc(ctx, input)
	}

	return nil
}

func (m *mockBidRepo) UpdateBidStatus(ctx context.Context, input *entity.UpdateBidStatusInput) error {
	if m.UpdateBidStatusFunc != nil {
		return m.UpdateBidStatusFunc(ctx, input)
	}

	return nil
}

func (m *mockBidRepo) GetCategories(ctx context.Context) ([]entity.Category, error) {
	if m.GetCategoriesFunc != nil {
		return m.GetCategoriesFunc(ctx)
	}

	return nil, nil
}

func (m *mockBidRepo) CountBidsByStatus(ctx context.Context, category string) (map[string]int, error) {
	if m.CountBidsByStatusFunc != nil {
		return m.CountBidsByStatusFunc(ctx, category)
	}

	return nil, nil
}

type mockFetcher struct {
	bids []entity.ScrapedBid
	runs []entity.CategoryRun
}

func (m *mockFetcher) FetchAll(ctx context.Context, csrfToken string, endDate string, categories []entity.Category) ([]entity.ScrapedBid, []entity.CategoryRun) {
	return m.bids, m.runs
}
