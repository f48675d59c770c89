package client

import "github.com/Parekh-Dev/CyberShieldAI-22IT086-22IT094/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Responses
	MessageResponse = types.MessageResponse
	LoginResult     = types.LoginResult
	AnalysisVerdict = types.AnalysisVerdict
)

// Errors re-exported in errors.go
