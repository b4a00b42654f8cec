package models

// APIResponse is the envelope every endpoint returns. Scheduling conflict
// rejections carry the conflict list in Data so clients can render the
// collisions and offer the override path.
type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError carries machine-readable error detail alongside the message.
type APIError struct {
	Type    string `json:"type,omitempty"`
	Details string `json:"details,omitempty"`
	Field   string `json:"field,omitempty"`
}
