package service

import (
	"time"

	"gem-bid-tracker/internal/entity"
)

func timeToStr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)

	return &s
}

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	out := &entity.BidOutputModel{
		Id:               b.Id.String(),
		GemBidId:         b.GemBidId,
		BidNumber:        b.BidNumber,
		CategoryName:     b.CategoryName,
		CategoryId:       b.CategoryId,
		Quantity:         b.Quantity,
		EndDate:          timeToStr(b.EndDate),
		Department:       b.Department,
		Status:           b.Status,
		AssignedUserName: b.AssignedUserName,
		DueDate:          timeToStr(b.DueDate),
		SubmittedDocLink: b.SubmittedDocLink,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
	if b.AssignedTo != nil {
		id := b.AssignedTo.String()
		out.AssignedTo = &id
	}

	return out
}

func mapBids(bids []entity.Bid) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0)
	for _, bid := range bids {
		s = append(s, *mapBid(&bid))
	}

	return s
}

func mapIngestReport(r *entity.IngestReport) *entity.IngestReportOutputModel {
	runs := make([]entity.CategoryRunOutputModel, 0)
	for _, run := range r.Categories {
		runs = append(runs, entity.CategoryRunOutputModel{
			CategoryName: run.CategoryName,
			CategoryId:   run.CategoryId,
			Pages:        run.Pages,
			Fetched:      run.Fetched,
			Error:        run.Error,
		})
	}

	return &entity.IngestReportOutputModel{
		Message:           "Bids fetched successfully",
		TotalFetched:      r.TotalFetched,
		UniqueBids:        r.UniqueBids,
		DuplicatesRemoved: r.DuplicatesRemoved,
		NewBidsAdded:      r.NewBidsAdded,
		RejectedFiltered:  r.RejectedFiltered,
		Categories:        runs,
	}
}
