package service

import (
	"context"
	"errors"

	"gem-bid-tracker/internal/common"
	"gem-bid-tracker/internal/entity"
	"gem-bid-tracker/internal/repo"
	"gem-bid-tracker/internal/repo/repo_errors"
)

type BidService struct {
	bidRepo repo.Bid
}

func NewBidService(repos *repo.Repositories) *BidService {
	return &BidService{bidRepo: repos.Bid}
}

func (s *BidService) GetAvailableBids(ctx context.Context, category string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error) {
	bids, err := s.bidRepo.GetAvailableBids(ctx, category, pg)
	if err != nil {
		return nil, err
	}

	return mapBids(bids), nil
}

func (s *BidService) GetAssignedBids(ctx context.Context, userId string, category string) ([]entity.BidOutputModel, error) {
	bids, err := s.bidRepo.GetAssignedBids(ctx, userId, category)
	if err != nil {
		return nil, err
	}

	return mapBids(bids), nil
}

// AssignBid hands a bid to a member and moves it to "considered". A bid that
// was rejected stays rejected.
func (s *BidService) AssignBid(ctx context.Context, input *entity.AssignBidInput) (*entity.BidOutputModel, error) {
	bid, err := s.bidRepo.GetBidById(ctx, input.BidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}

	if bid.Status == common.Rejected {
		return nil, ErrBidAlreadyRejected
	}

	if err := s.bidRepo.AssignBid(ctx, input); err != nil {
		return nil, err
	}

	bid, err = s.bidRepo.GetBidById(ctx, input.BidId)
	if err != nil {
		return nil, err
	}

	return mapBid(bid), nil
}

func (s *BidService) UpdateBidStatus(ctx context.Context, input *entity.UpdateBidStatusInput) (*entity.BidOutputModel, error) {
	_, err := s.bidRepo.GetBidById(ctx, input.BidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}

	if err := s.bidRepo.UpdateBidStatus(ctx, input); err != nil {
		return nil, err
	}

	bid, err := s.bidRepo.GetBidById(ctx, input.BidId)
	if err != nil {
		return nil, err
	}

	return mapBid(bid), nil
}

func (s *BidService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	return s.bidRepo.GetCategories(ctx)
}

func (s *BidService) GetBidStats(ctx context.Context, category string) (*entity.BidStatsOutputModel, error) {
	counts, err := s.bidRepo.CountBidsByStatus(ctx, category)
	if err != nil {
		return nil, err
	}

	stats := &entity.BidStatsOutputModel{
		Available:  counts[common.Available],
		Considered: counts[common.Considered],
		InProgress: counts[common.InProgress],
		Submitted:  counts[common.Submitted],
		Rejected:   counts[common.Rejected],
	}
	for _, count := range counts {
		stats.Total += count
	}

	return stats, nil
}
