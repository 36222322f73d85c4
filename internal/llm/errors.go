package llm

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
)

var authMarkers = []string{
	"api_key",
	"api key",
	"apikey",
	"authentication",
	"unauthorized",
	"permission denied",
	"invalid x-api-key",
}

// IsAuthError reports whether err indicates missing or rejected credentials.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotConfigured) {
		return true
	}

	var oaErr *openai.Error
	if errors.As(err, &oaErr) && isAuthStatus(oaErr.StatusCode) {
		return true
	}
	var anErr *anthropic.Error
	if errors.As(err, &anErr) && isAuthStatus(anErr.StatusCode) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, m := range authMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

func isAuthStatus(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}
