package add_service

// AddServiceRequest HTTP request model
type AddServiceRequest struct {
	ServiceID string `json:"serviceId"`
}
