package entity

// service input model
type FetchBidsInput struct {
	CSRFToken string // given
	EndDate   string // given, optional, forwarded verbatim as bidEndTo
}

// CategoryRun describes how the fetch of a single category went.
type CategoryRun struct {
	CategoryName string
	CategoryId   string
	Pages        int
	Fetched      int
	Error        string
}

// IngestReport summarizes one run of the ingestion pipeline.
type IngestReport struct {
	TotalFetched      int
	UniqueBids        int
	DuplicatesRemoved int
	NewBidsAdded      int
	RejectedFiltered  int
	Categories        []CategoryRun
}

// controller model
type CategoryRunOutputModel struct {
	CategoryName string `json:"categoryName"`
	CategoryId   string `json:"categoryId"`
	Pages        int    `json:"pages"`
	Fetched      int    `json:"fetched"`
	Error        string `json:"error,omitempty"`
}

// controller model
type IngestReportOutputModel struct {
	Message           string                   `json:"message"`
	TotalFetched      int                      `json:"totalFetched"`
	UniqueBids        int                      `json:"uniqueBids"`
	DuplicatesRemoved int                      `json:"duplicatesRemoved"`
	NewBidsAdded      int                      `json:"newBidsAdded"`
	RejectedFiltered  int                      `json:"rejectedFiltered"`
	Categories        []CategoryRunOutputModel `json:"categories"`
}
