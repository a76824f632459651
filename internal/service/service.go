package service

import (
	"context"
	"io"

	"gem-bid-tracker/internal/entity"
	"gem-bid-tracker/internal/repo"
)

type Diagnostics interface {
	Ping() error
}

// BidFetcher is the upstream scraper used by the ingestion pipeline.
type BidFetcher interface {
	FetchAll(ctx context.Context, csrfToken string, endDate string, categories []entity.Category) ([]entity.ScrapedBid, []entity.CategoryRun)
}

// DocumentFetcher downloads official bid documents from the upstream portal.
type DocumentFetcher interface {
	FetchDocument(ctx context.Context, gemBidId string) (io.ReadCloser, string, error)
}

type Ingest interface {
	FetchAndStoreBids(ctx context.Context, input *entity.FetchBidsInput) (*entity.IngestReportOutputModel, error)
}

type Bid interface {
	GetAvailableBids(ctx context.Context, category string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error)
	GetAssignedBids(ctx context.Context, userId string, category string) ([]entity.BidOutputModel, error)

	AssignBid(ctx context.Context, input *entity.AssignBidInput) (*entity.BidOutputModel, error)
	UpdateBidStatus(ctx context.Context, input *entity.UpdateBidStatusInput) (*entity.BidOutputModel, error)

	GetCategories(ctx context.Context) ([]entity.Category, error)
	GetBidStats(ctx context.Context, category string) (*entity.BidStatsOutputModel, error)
}

type Document interface {
	GetBidDocument(ctx context.Context, gemBidId string) (*entity.BidDocument, error)
}

type Services struct {
	Diagnostics Diagnostics
	Ingest      Ingest
	Bid         Bid
	Document    Document
}

type Deps struct {
	Repos      *repo.Repositories
	Fetcher    BidFetcher
	Documents  DocumentFetcher
	Categories []entity.Category
}

func NewServices(deps *Deps) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(deps.Repos),
		Ingest:      NewIngestService(deps.Repos, deps.Fetcher, deps.Categories),
		Bid:         NewBidService(deps.Repos),
		Document:    NewDocumentService(deps.Documents),
	}
}
