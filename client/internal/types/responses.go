package types

// ------------------------------
// Response Types
// ------------------------------

// MessageResponse is the backend's generic acknowledgment envelope,
// returned by register, OTP, and health endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResult is the email login success shape. Token is optional; some
// deployments acknowledge with a message only.
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// AnalysisVerdict is the classifier's judgment for one submission.
// Immutable once produced.
type AnalysisVerdict struct {
	IsHateSpeech bool     `json:"is_hate_speech"`
	Confidence   float64  `json:"confidence"`
	Categories   []string `json:"categories"`
}
