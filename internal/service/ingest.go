package service

import (
	"context"
	"log"

	"gem-bid-tracker/internal/common"
	"gem-bid-tracker/internal/entity"
	"gem-bid-tracker/internal/repo"
)

type IngestService struct {
	bidRepo    repo.Bid
	fetcher    BidFetcher
	categories []entity.Category
}

func NewIngestService(repos *repo.Repositories, fetcher BidFetcher, categories []entity.Category) *IngestService {
	return &IngestService{
		bidRepo:    repos.Bid,
		fetcher:    fetcher,
		categories: categories,
	}
}

// FetchAndStoreBids runs the ingestion pipeline: fetch every category,
// dedup by gem bid id, drop bids an operator already rejected, upsert the
// rest. Category errors truncate that category only; storage errors fail
// the run.
func (s *IngestService) FetchAndStoreBids(ctx context.Context, input *entity.FetchBidsInput) (*entity.IngestReportOutputModel, error) {
	log.Printf("fetching bids for %d categories", len(s.categories))

	allBids, runs := s.fetcher.FetchAll(ctx, input.CSRFToken, input.EndDate, s.categories)

	// first occurrence of a gem bid id wins
	seen := make(map[string]struct{}, len(allBids))
	uniqueBids := make([]entity.ScrapedBid, 0, len(allBids))
	for _, bid := range allBids {
		if _, ok := seen[bid.GemBidId]; ok {
			continue
		}
		seen[bid.GemBidId] = struct{}{}
		uniqueBids = append(uniqueBids, bid)
	}

	rejectedIds, err := s.bidRepo.GetGemBidIdsByStatus(ctx, common.Rejected)
	if err != nil {
		return nil, err
	}

	rejected := make(map[string]struct{}, len(rejectedIds))
	for _, id := range rejectedIds {
		rejected[id] = struct{}{}
	}

	newBids := make([]entity.ScrapedBid, 0, len(uniqueBids))
	for _, bid := range uniqueBids {
		if _, ok := rejected[bid.GemBidId]; ok {
			continue
		}
		newBids = append(newBids, bid)
	}

	if len(newBids) > 0 {
		if err := s.bidRepo.UpsertScrapedBids(ctx, newBids); err != nil {
			return nil, err
		}
	}

	report := &entity.IngestReport{
		TotalFetched:      len(allBids),
		UniqueBids:        len(uniqueBids),
		DuplicatesRemoved: len(allBids) - len(uniqueBids),
		NewBidsAdded:      len(newBids),
		RejectedFiltered:  len(uniqueBids) - len(newBids),
		Categories:        runs,
	}

	log.Printf("ingest done: fetched %d, unique %d, stored %d, rejected filtered %d",
		report.TotalFetched, report.UniqueBids, report.NewBidsAdded, report.RejectedFiltered)

	return mapIngestReport(report), nil
}
