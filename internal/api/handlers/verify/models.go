package verify

import (
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/usecase/login"
)

// VerifyRequest HTTP request model
type VerifyRequest struct {
	Mobile string `json:"mobile"`
	Code   string `json:"code"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID string  `json:"sessionId"`
	SalonID   string  `json:"salonId,omitempty"`
	Name      string  `json:"name,omitempty"`
	Mobile    string  `json:"mobile"`
	HasSalon  bool    `json:"hasSalon"`
	ExpiresAt *string `json:"expiresAt,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *VerifyRequest) ToUseCaseRequest() *login.Request {
	return &login.Request{
		Mobile: r.Mobile,
		Code:   r.Code,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *login.Response) *SessionResponse {
	out := &SessionResponse{
		SessionID: resp.Session.ID,
		SalonID:   resp.Session.SalonID,
		Name:      resp.Session.Name,
		Mobile:    resp.Session.Mobile,
		HasSalon:  resp.HasSalon,
	}
	if resp.Session.ExpiresAt != nil {
		expires := resp.Session.ExpiresAt.Format(time.RFC3339)
		out.ExpiresAt = &expires
	}
	return out
}
