package ruangobat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const fallbackMessage = "Terjadi kesalahan, silakan coba lagi"

// APIError is the backend's {status_code, error: {name, message}} envelope.
// Message is meant to be shown to the admin verbatim.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ruangobat api returned %d %s: %s", e.StatusCode, e.Name, e.Message)
}

type errorEnvelope struct {
	StatusCode int `json:"status_code"`
	Error      struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil {
		apiErr.Name = env.Error.Name
		apiErr.Message = strings.TrimSpace(env.Error.Message)
		if env.StatusCode >= 400 {
			apiErr.StatusCode = env.StatusCode
		}
	}

	if apiErr.Name == "" {
		apiErr.Name = strings.ReplaceAll(http.StatusText(status), " ", "")
	}
	if apiErr.Message == "" {
		apiErr.Message = fallbackMessage
	}
	return apiErr
}
