package service_test

import (
	"context"
	"testing"

	"gem-bid-tracker/internal/common"
	"gem-bid-tracker/internal/entity"
	"gem-bid-tracker/internal/repo"
	"gem-bid-tracker/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func storedBid(id uuid.UUID, status string) *entity.Bid {
	return &entity.Bid{
		Id:        id,
		GemBidId:  "GEM-1",
		BidNumber: "GEM/2025/B/1",
		Status:    status,
	}
}

func newBidService(bidRepo *mockBidRepo) service.Bid {
	return service.NewBidService(&repo.Repositories{Bid: bidRepo})
}

func TestAssignBidNotFound(t *testing.T) {
	s := newBidService(&mockBidRepo{})

	_, err := s.AssignBid(context.Background(), &entity.AssignBidInput{
		BidId:            uuid.NewString(),
		AssignedTo:       uuid.NewString(),
		AssignedUserName: "John Doe",
	})
	require.ErrorIs(t, err, service.ErrBidNotFound)
}

func TestAssignBidRefusesRejectedBid(t *testing.T) {
	bidId := uuid.New()
	assignCalled := false
	s := newBidService(&mockBidRepo{
		GetBidByIdFunc: func(ctx context.Context, id string) (*entity.Bid, error) {
			return storedBid(bidId, common.Rejected), nil
		},
		AssignBidFunc: func(ctx context.Context, input *entity.AssignBidInput) error {
			assignCalled = true

			return nil
		},
	})

	_, err := s.AssignBid(context.Background(), &entity.AssignBidInput{
		BidId:            bidId.String(),
		AssignedTo:       uuid.NewString(),
		AssignedUserName: "John Doe",
	})
	require.ErrorIs(t, err, service.ErrBidAlreadyRejected)
	require.False(t, assignCalled)
}

func TestAssignBidMovesBidToConsidered(t *testing.T) {
	bidId := uuid.New()
	status := common.Available
	var gotInput *entity.AssignBidInput
	s := newBidService(&mockBidRepo{
		GetBidByIdFunc: func(ctx context.Context, id string) (*entity.Bid, error) {
			return storedBid(bidId, status), nil
		},
		AssignBidFunc: func(ctx context.Context, input *entity.AssignBidInput) error {
			gotInput = input
			status = common.Considered

			return nil
		},
	})

	assignee := uuid.NewString()
	out, err := s.AssignBid(context.Background(), &entity.AssignBidInput{
		BidId:            bidId.String(),
		AssignedTo:       assignee,
		AssignedUserName: "John Doe",
	})
	require.NoError(t, err)
	require.Equal(t, common.Considered, out.Status)
	require.NotNil(t, gotInput)
	require.Equal(t, assignee, gotInput.AssignedTo)
}

func TestUpdateBidStatusPassesDocLinkThrough(t *testing.T) {
	bidId := uuid.New()
	var gotInput *entity.UpdateBidStatusInput
	s := newBidService(&mockBidRepo{
		GetBidByIdFunc: func(ctx context.Context, id string) (*entity.Bid, error) {
			return storedBid(bidId, common.InProgress), nil
		},
		UpdateBidStatusFunc: func(ctx context.Context, input *entity.UpdateBidStatusInput) error {
			gotInput = input

			return nil
		},
	})

	_, err := s.UpdateBidStatus(context.Background(), &entity.UpdateBidStatusInput{
		BidId:            bidId.String(),
		Status:           common.Submitted,
		SubmittedDocLink: "https://example.com/doc.pdf",
	})
	require.NoError(t, err)
	require.NotNil(t, gotInput)
	require.Equal(t, common.Submitted, gotInput.Status)
	require.Equal(t, "https://example.com/doc.pdf", gotInput.SubmittedDocLink)
}

func TestGetBidStatsTotalsCounts(t *testing.T) {
	s := newBidService(&mockBidRepo{
		CountBidsByStatusFunc: func(ctx context.Context, category string) (map[string]int, error) {
			require.Equal(t, "Cloud Service", category)

			return map[string]int{
				common.Available:  5,
				common.Considered: 2,
				common.Submitted:  1,
				common.Rejected:   3,
			}, nil
		},
	})

	stats, err := s.GetBidStats(context.Background(), "Cloud Service")
	require.NoError(t, err)
	require.Equal(t, 11, stats.Total)
	require.Equal(t, 5, stats.Available)
	require.Equal(t, 2, stats.Considered)
	require.Equal(t, 0, stats.InProgress)
	require.Equal(t, 1, stats.Submitted)
	require.Equal(t, 3, stats.Rejected)
}
