package models

import "time"

// Result is the outcome of one sliding-window check.
type Result struct {
	Allowed   bool      `json:"allowed"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
	// RetryAfter is in seconds and only set when the request was refused.
	RetryAfter int `json:"retry_after,omitempty"`
}

// ExceededResponse is the 429 body.
type ExceededResponse struct {
	Error          string    `json:"error"`
	Message        string    `json:"message"`
	QuotaLimit     int       `json:"quota_limit"`
	QuotaRemaining int       `json:"quota_remaining"`
	QuotaReset     time.Time `json:"quota_reset"`
}

// UserKey namespaces per-user counters.
func UserKey(userID string) string {
	return "ratelimit:user:" + userID
}
