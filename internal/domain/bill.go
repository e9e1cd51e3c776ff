package domain

// BillResult is the outcome of a bill generation request
type BillResult struct {
	Success bool
	Message string
}

// BillItem is one priced line of an invoice
type BillItem struct {
	Name  string
	Price float64
}

// Bill is the public invoice shared by ULID
type Bill struct {
	ULID         string
	SalonName    string
	CustomerName string
	Mobile       string
	Date         string
	StartTime    string
	Items        []BillItem
	Subtotal     float64
	Tax          float64
	Discount     float64
	Total        float64
}
