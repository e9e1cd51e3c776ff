package sign_up

import (
	"strings"

	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
)

// SignUpRequest HTTP request model
type SignUpRequest struct {
	Mobile       string `json:"mobile" validate:"required,len=10,number"`
	Name         string `json:"name"`
	ReferralCode string `json:"referralCode"`
}

// SignUpResponse HTTP response model
type SignUpResponse struct {
	Message string `json:"message"`
}

// ToGatewayRequest конвертирует HTTP запрос в тело запроса к API
func (r *SignUpRequest) ToGatewayRequest() salonapi.SignUpRequest {
	return salonapi.SignUpRequest{
		Mobile:       strings.TrimSpace(r.Mobile),
		Name:         strings.TrimSpace(r.Name),
		ReferralCode: strings.TrimSpace(r.ReferralCode),
	}
}
