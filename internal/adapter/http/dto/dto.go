package dto

// LoginRequest is the operator login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token and its expiry (unix seconds).
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"`
}

// RecordActionRequest is the payload for appending a remediation action.
type RecordActionRequest struct {
	Action string `json:"action" binding:"required"`
}
