package get_public_bill

import "github.com/m04kA/SMC-SalonDashboard/internal/domain"

// BillItemResponse строка счета
type BillItemResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BillResponse HTTP response model
type BillResponse struct {
	ULID         string             `json:"ulid"`
	SalonName    string             `json:"salonName,omitempty"`
	CustomerName string             `json:"customerName,omitempty"`
	Mobile       string             `json:"mobile,omitempty"`
	Date         string             `json:"date,omitempty"`
	StartTime    string             `json:"startTime,omitempty"`
	Items        []BillItemResponse `json:"items"`
	Subtotal     float64            `json:"subtotal"`
	Tax          float64            `json:"tax"`
	Discount     float64            `json:"discount"`
	Total        float64            `json:"total"`
}

// FromDomain конвертирует счет в HTTP response
func FromDomain(bill *domain.Bill) *BillResponse {
	items := make([]BillItemResponse, len(bill.Items))
	for i, item := range bill.Items {
		items[i] = BillItemResponse{Name: item.Name, Price: item.Price}
	}

	return &BillResponse{
		ULID:         bill.ULID,
		SalonName:    bill.SalonName,
		CustomerName: bill.CustomerName,
		Mobile:       bill.Mobile,
		Date:         bill.Date,
		StartTime:    bill.StartTime,
		Items:        items,
		Subtotal:     bill.Subtotal,
		Tax:          bill.Tax,
		Discount:     bill.Discount,
		Total:        bill.Total,
	}
}
