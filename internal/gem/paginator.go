package gem

import (
	"context"
	"log"
	"time"

	"gem-bid-tracker/internal/common"
	"gem-bid-tracker/internal/entity"
)

var endDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseEndDate(raw string) *time.Time {
	for _, layout := range endDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()

			return &t
		}
	}

	return nil
}

func mapDoc(doc bidDoc, category entity.Category) entity.ScrapedBid {
	bid := entity.ScrapedBid{
		GemBidId:     doc.Id,
		BidNumber:    "N/A",
		CategoryName: category.Name,
		CategoryId:   category.CategoryId,
		Status:       common.Available,
	}

	if len(doc.BidNumber) > 0 {
		bid.BidNumber = doc.BidNumber[0]
	}
	if len(doc.TotalQuantity) > 0 {
		q := int64(doc.TotalQuantity[0])
		bid.Quantity = &q
	}
	if len(doc.FinalEndDate) > 0 {
		bid.EndDate = parseEndDate(doc.FinalEndDate[0])
	}
	if len(doc.DepartmentName) > 0 {
		d := doc.DepartmentName[0]
		bid.Department = &d
	}

	return bid
}

// fetchCategory walks the category's result pages until exhausted. A page
// error truncates the category, the bids mapped so far are kept.
func (c *Client) fetchCategory(ctx context.Context, csrfToken string, endDate string, category entity.Category) ([]entity.ScrapedBid, entity.CategoryRun) {
	run := entity.CategoryRun{CategoryName: category.Name, CategoryId: category.CategoryId}
	bids := make([]entity.ScrapedBid, 0)

	for page := 1; ; page++ {
		result, err := c.searchPage(ctx, csrfToken, category.CategoryId, endDate, page)
		if err != nil {
			log.Printf("category %s: page %d: %v", category.CategoryId, page, err)
			run.Error = err.Error()

			break
		}

		docs := result.Response.Response.Docs
		if len(docs) == 0 {
			break
		}

		for _, doc := range docs {
			bids = append(bids, mapDoc(doc, category))
		}
		run.Pages++

		if page*c.config.PageSize >= result.Response.Response.NumFound {
			break
		}

		if !sleep(ctx, c.config.PageDelay) {
			run.Error = ctx.Err().Error()

			break
		}
	}

	run.Fetched = len(bids)

	return bids, run
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
