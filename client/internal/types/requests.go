package types

// ------------------------------
// Request Types
// ------------------------------

// SendOTPRequest asks the backend to text a one-time code to a phone.
type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// VerifyOTPRequest exchanges a provider ID token for a verified login.
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number"`
	IDToken     string `json:"id_token"`
}

// AnalyzeRequest carries the text submitted for classification.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// Email register/login carry no request structs: the backend takes
// form-encoded email/password fields, built with url.Values.
