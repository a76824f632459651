package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bid is a stored GEM bid together with its workflow state.
type Bid struct {
	Id               uuid.UUID  `json:"id" db:"id"`
	GemBidId         string     `json:"gemBidId" db:"gem_bid_id"`
	BidNumber        string     `json:"bidNumber" db:"bid_number"`
	CategoryName     string     `json:"categoryName" db:"category_name"`
	CategoryId       string     `json:"categoryId" db:"category_id"`
	Quantity         *int64     `json:"quantity" db:"quantity"`
	EndDate          *time.Time `json:"endDate" db:"end_date"`
	Department       *string    `json:"department" db:"department"`
	Status           string     `json:"status" db:"status"`
	AssignedTo       *uuid.UUID `json:"assignedTo" db:"assigned_to"`
	AssignedUserName *string    `json:"assignedUserName" db:"assigned_user_name"`
	DueDate          *time.Time `json:"dueDate" db:"due_date"`
	SubmittedDocLink *string    `json:"submittedDocLink" db:"submitted_doc_link"`
	CreatedAt        string     `json:"createdAt" db:"created_at"`
	UpdatedAt        string     `json:"updatedAt" db:"updated_at"`
}

// ScrapedBid carries only the fields the scraper is allowed to write.
// Workflow fields stay untouched on upsert.
type ScrapedBid struct {
	GemBidId     string
	BidNumber    string
	CategoryName string
	CategoryId   string
	Quantity     *int64
	EndDate      *time.Time
	Department   *string
	Status       string
}

// service + repo input model
type AssignBidInput struct {
	BidId            string // given
	AssignedTo       string // given, member uuid
	AssignedUserName string // given
	DueDate          *time.Time // given, optional
	// Status should be set: "considered"
	// Updated_at sets automatically
}

// service + repo input model
type UpdateBidStatusInput struct {
	BidId            string
	Status           string
	SubmittedDocLink string // stored only when status is "submitted"
}

// controller model
type BidOutputModel struct {
	Id               string  `json:"id"`
	GemBidId         string  `json:"gemBidId"`
	BidNumber        string  `json:"bidNumber"`
	CategoryName     string  `json:"category"`
	CategoryId       string  `json:"categoryId"`
	Quantity         *int64  `json:"quantity"`
	EndDate          *string `json:"endDate"`
	Department       *string `json:"department"`
	Status           string  `json:"status"`
	AssignedTo       *string `json:"assignedTo"`
	AssignedUserName *string `json:"assignedUserName"`
	DueDate          *string `json:"dueDate"`
	SubmittedDocLink *string `json:"submittedDocLink"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// controller model
type BidStatsOutputModel struct {
	Total      int `json:"total"`
	Available  int `json:"available"`
	Considered int `json:"considered"`
	InProgress int `json:"inProgress"`
	Submitted  int `json:"submitted"`
	Rejected   int `json:"rejected"`
}
