package service_test

import (
	"context"
	"errors"
	"testing"

	"gem-bid-tracker/internal/common"
	"gem-bid-tracker/internal/entity"
	"gem-bid-tracker/internal/repo"
	"gem-bid-tracker/internal/service"

	"github.com/stretchr/testify/require"
)

func scraped(id string, category string) entity.ScrapedBid {
	return entity.ScrapedBid{
		GemBidId:     id,
		BidNumber:    "GEM/2025/B/" + id,
		CategoryName: category,
		CategoryId:   category,
		Status:       common.Available,
	}
}

func newIngestService(bidRepo *mockBidRepo, fetcher *mockFetcher) service.Ingest {
	return service.NewIngestService(&repo.Repositories{Bid: bidRepo}, fetcher, entity.DefaultCategories())
}

func TestFetchAndStoreBidsFirstSeenWins(t *testing.T) {
	var stored []entity.ScrapedBid
	bidRepo := &mockBidRepo{
		UpsertScrapedBidsFunc: func(ctx context.Context, bids []entity.ScrapedBid) error {
			stored = bids

			return nil
		},
	}
	fetcher := &mockFetcher{bids: []entity.ScrapedBid{
		scraped("A", "cat1"),
		scraped("A", "cat2"),
		scraped("B", "cat2"),
	}}

	report, err := newIngestService(bidRepo, fetcher).
		FetchAndStoreBids(context.Background(), &entity.FetchBidsInput{CSRFToken: "token"})
	require.NoError(t, err)

	require.Len(t, stored, 2)
	require.Equal(t, "A", stored[0].GemBidId)
	require.Equal(t, "cat1", stored[0].CategoryName)
	require.Equal(t, "B", stored[1].GemBidId)

	require.Equal(t, 3, report.TotalFetched)
	require.Equal(t, 2, report.UniqueBids)
	require.Equal(t, 1, report.DuplicatesRemoved)
	require.Equal(t, 2, report.NewBidsAdded)
	require.Equal(t, 0, report.RejectedFiltered)
}

func TestFetchAndStoreBidsFiltersRejected(t *testing.T) {
	var stored []entity.ScrapedBid
	bidRepo := &mockBidRepo{
		GetGemBidIdsByStatusFunc: func(ctx context.Context, status string) ([]string, error) {
			require.Equal(t, common.Rejected, status)

			return []string{"A"}, nil
		},
		UpsertScrapedBidsFunc: func(ctx context.Context, bids []entity.ScrapedBid) error {
			stored = bids

			return nil
		},
	}
	fetcher := &mockFetcher{bids: []entity.ScrapedBid{
		scraped("A", "cat1"),
		scraped("B", "cat1"),
	}}

	report, err := newIngestService(bidRepo, fetcher).
		FetchAndStoreBids(context.Background(), &entity.FetchBidsInput{CSRFToken: "token"})
	require.NoError(t, err)

	require.Len(t, stored, 1)
	require.Equal(t, "B", stored[0].GemBidId)
	require.Equal(t, 1, report.RejectedFiltered)
	require.Equal(t, 1, report.NewBidsAdded)
}

func TestFetchAndStoreBidsSkipsStorageWhenNothingSurvives(t *testing.T) {
	upsertCalled := false
	bidRepo := &mockBidRepo{
		GetGemBidIdsByStatusFunc: func(ctx context.Context, status string) ([]string, error) {
			return []string{"A"}, nil
		},
		UpsertScrapedBidsFunc: func(ctx context.Context, bids []entity.ScrapedBid) error {
			upsertCalled = true

			return nil
		},
	}
	fetcher := &mockFetcher{bids: []entity.ScrapedBid{scraped("A", "cat1")}}

	report, err := newIngestService(bidRepo, fetcher).
		FetchAndStoreBids(context.Background(), &entity.FetchBidsInput{CSRFToken: "token"})
	require.NoError(t, err)

	require.False(t, upsertCalled)
	require.Equal(t, 0, report.NewBidsAdded)
	require.Equal(t, 1, report.RejectedFiltered)
}

func TestFetchAndStoreBidsCountsExample(t *testing.T) {
	bidRepo := &mockBidRepo{
		GetGemBidIdsByStatusFunc: func(ctx context.Context, status string) ([]string, error) {
			return []string{"D"}, nil
		},
	}
	fetcher := &mockFetcher{bids: []entity.ScrapedBid{
		scraped("A", "cat1"),
		scraped("B", "cat1"),
		scraped("B", "cat2"),
		scraped("C", "cat2"),
		scraped("D", "cat2"),
	}}

	report, err := newIngestService(bidRepo, fetcher).
		FetchAndStoreBids(context.Background(), &entity.FetchBidsInput{CSRFToken: "token"})
	require.NoError(t, err)

	require.Equal(t, 5, report.TotalFetched)
	require.Equal(t, 4, report.UniqueBids)
	require.Equal(t, 1, report.DuplicatesRemoved)
	require.Equal(t, 3, report.NewBidsAdded)
	require.Equal(t, 1, report.RejectedFiltered)
}

func TestFetchAndStoreBidsFailsOnStorageErrors(t *testing.T) {
	queryErr := errors.New("query failed")
	bidRepo := &mockBidRepo{
		GetGemBidIdsByStatusFunc: func(ctx context.Context, status string) ([]string, error) {
			return nil, queryErr
		},
	}
	fetcher := &mockFetcher{bids: []entity.ScrapedBid{scraped("A", "cat1")}}

	_, err := newIngestService(bidRepo, fetcher).
		FetchAndStoreBids(context.Background(), &entity.FetchBidsInput{CSRFToken: "token"})
	require.ErrorIs(t, err, queryErr)

	upsertErr := errors.New("upsert failed")
	bidRepo = &mockBidRepo{
		UpsertScrapedBidsFunc: func(ctx context.Context, bids []entity.ScrapedBid) error {
			return upsertErr
		},
	}

	_, err = newIngestService(bidRepo, fetcher).
		FetchAndStoreBids(context.Background(), &entity.FetchBidsInput{CSRFToken: "token"})
	require.ErrorIs(t, err, upsertErr)
}

func TestFetchAndStoreBidsReportsCategoryRuns(t *testing.T) {
	fetcher := &mockFetcher{
		bids: []entity.ScrapedBid{scraped("A", "cat1")},
		runs: []entity.CategoryRun{
			{CategoryName: "cat1", CategoryId: "cat1", Pages: 1, Fetched: 1},
			{CategoryName: "cat2", CategoryId: "cat2", Error: "search bids: unexpected status 502"},
		},
	}

	report, err := newIngestService(&mockBidRepo{}, fetcher).
		FetchAndStoreBids(context.Background(), &entity.FetchBidsInput{CSRFToken: "token"})
	require.NoError(t, err)

	require.Len(t, report.Categories, 2)
	require.Equal(t, 1, report.Categories[0].Fetched)
	require.Empty(t, report.Categories[0].Error)
	require.Contains(t, report.Categories[1].Error, "502")
}
