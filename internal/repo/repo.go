package repo

import (
	"context"

	"gem-bid-tracker/internal/entity"
	"gem-bid-tracker/internal/repo/pgdb"
	"gem-bid-tracker/pkg/postgres"
)

type Diagnostics interface {
	Ping() error
}

type Bid interface {
	UpsertScrapedBids(ctx context.Context, bids []entity.ScrapedBid) error
	GetGemBidIdsByStatus(ctx context.Context, status string) ([]string, error)

	GetBidById(ctx context.Context, id string) (*entity.Bid, error)
	GetAvailableBids(ctx context.Context, category string, pg *entity.PaginationInput) ([]entity.Bid, error)
	GetAssignedBids(ctx context.Context, assignedTo string, category string) ([]entity.Bid, error)

	AssignBid(ctx context.Context, input *entity.AssignBidInput) error
	UpdateBidStatus(ctx context.Context, input *entity.UpdateBidStatusInput) error

	GetCategories(ctx context.Context) ([]entity.Category, error)
	CountBidsByStatus(ctx context.Context, category string) (map[string]int, error)
}

type Repositories struct {
	Diagnostics
	Bid
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Bid:         pgdb.NewBidRepo(p),
	}
}
