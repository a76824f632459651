package entity

import "io"

// BidDocument is a proxied official bid document ready to stream.
type BidDocument struct {
	Content     io.ReadCloser
	ContentType string
	FileName    string
}
