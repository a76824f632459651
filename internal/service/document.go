package service

import (
	"context"
	"errors"
	"strings"

	"gem-bid-tracker/internal/entity"
	"gem-bid-tracker/internal/gem"
)

type DocumentService struct {
	documents DocumentFetcher
}

func NewDocumentService(documents DocumentFetcher) *DocumentService {
	return &DocumentService{documents: documents}
}

func (s *DocumentService) GetBidDocument(ctx context.Context, gemBidId string) (*entity.BidDocument, error) {
	content, contentType, err := s.documents.FetchDocument(ctx, gemBidId)
	if err != nil {
		if errors.Is(err, gem.ErrDocumentUnavailable) {
			return nil, ErrDocumentUnavailable
		}

		return nil, err
	}

	extension := "doc"
	if strings.Contains(contentType, "pdf") {
		extension = "pdf"
	}

	return &entity.BidDocument{
		Content:     content,
		ContentType: contentType,
		FileName:    gemBidId + "." + extension,
	}, nil
}
