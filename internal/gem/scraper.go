package gem

import (
	"context"

	"gem-bid-tracker/internal/entity"

	"golang.org/x/sync/errgroup"
)

// FetchAll fetches every category of the registry in batches. Bids are
// flattened in registry order so the first occurrence of an id is stable
// regardless of goroutine scheduling.
func (c *Client) FetchAll(ctx context.Context, csrfToken string, endDate string, categories []entity.Category) ([]entity.ScrapedBid, []entity.CategoryRun) {
	perCategory := make([][]entity.ScrapedBid, len(categories))
	runs := make([]entity.CategoryRun, len(categories))

	for start := 0; start < len(categories); start += c.config.BatchSize {
		end := min(start+c.config.BatchSize, len(categories))

		group, groupCtx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			i := i
			group.Go(func() error {
				perCategory[i], runs[i] = c.fetchCategory(groupCtx, csrfToken, endDate, categories[i])

				return nil
			})
		}
		_ = group.Wait()

		if end < len(categories) {
			sleep(ctx, c.config.BatchPause)
		}
	}

	bids := make([]entity.ScrapedBid, 0)
	for _, part := range perCategory {
		bids = append(bids, part...)
	}

	return bids, runs
}
