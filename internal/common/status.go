package common

const (
	Available  = "available"
	Rejected   = "rejected"
	Considered = "considered"
	InProgress = "in-progress"
	Submitted  = "submitted"
)
