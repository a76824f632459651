package service

import "errors"

var (
	ErrBidNotFound         = errors.New("bid not found")
	ErrBidAlreadyRejected  = errors.New("bid was rejected and can't be assigned")
	ErrDocumentUnavailable = errors.New("bid document unavailable")
)
