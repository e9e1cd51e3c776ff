package generate_bill

import (
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/service/billstatus"
	generateBill "github.com/m04kA/SMC-SalonDashboard/internal/usecase/generate_bill"
)

// BillStatusResponse состояние генерации счета одной записи
type BillStatusResponse struct {
	AppointmentID string `json:"appointmentId"`
	State         string `json:"state"`
	Message       string `json:"message,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

// GenerateBillResponse HTTP response model
type GenerateBillResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Status  BillStatusResponse `json:"status"`
}

// FromEntry конвертирует состояние трекера в HTTP модель
func FromEntry(appointmentID string, e billstatus.Entry) BillStatusResponse {
	out := BillStatusResponse{
		AppointmentID: appointmentID,
		State:         string(e.State),
		Message:       e.Message,
	}
	if !e.UpdatedAt.IsZero() {
		out.UpdatedAt = e.UpdatedAt.Format(time.RFC3339)
	}
	return out
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateBill.Response) *GenerateBillResponse {
	return &GenerateBillResponse{
		Success: resp.Result.Success,
		Message: resp.Result.Message,
		Status:  FromEntry(resp.AppointmentID, resp.Status),
	}
}
