package logging

import (
	"regexp"
	"strings"
)

const redacted = "***REDACTED***"

// Redaction patterns for sensitive data in logs and error messages.
var (
	// AuthQueryPattern matches Trello key/token query parameters, as they appear
	// in request URLs quoted by net/http transport errors.
	AuthQueryPattern = regexp.MustCompile(`(?i)([?&](?:key|token)=)([^&\s"']+)`)

	// TokenPattern matches bearer tokens.
	TokenPattern = regexp.MustCompile(`(?i)(Bearer\s+)([A-Za-z0-9\-_.]{20,})`)

	// TokenEnvPattern matches tokens and keys in environment-variable form.
	TokenEnvPattern = regexp.MustCompile(`(?i)([A-Z_]*(?:TOKEN|API_KEY)[=:]\s*)([^\s"',}]+)`)
)

// RedactString applies redaction patterns to a string, masking sensitive data.
func RedactString(s string) string {
	if s == "" {
		return s
	}

	result := AuthQueryPattern.ReplaceAllString(s, "${1}"+redacted)
	result = TokenPattern.ReplaceAllString(result, "${1}"+redacted)
	result = TokenEnvPattern.ReplaceAllString(result, "${1}"+redacted)
	return result
}

// RedactFields redacts sensitive values in a map of fields.
func RedactFields(fields map[string]interface{}) map[string]interface{} {
	if fields == nil {
		return fields
	}

	out := make(map[string]interface{}, len(fields))
	sensitiveKeys := []string{"secret", "token", "key", "credential", "auth"}

	for k, v := range fields {
		keyLower := strings.ToLower(k)
		isSensitive := false

		for _, sensitive := range sensitiveKeys {
			if strings.Contains(keyLower, sensitive) {
				isSensitive = true
				break
			}
		}

		if isSensitive && v != nil {
			out[k] = redacted
		} else {
			out[k] = v
		}
	}

	return out
}
