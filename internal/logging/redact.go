package logging

import (
	"fmt"
	"net/url"
	"strings"
)

// secretKeyPatterns contains substrings that indicate an attribute key likely
// holds sensitive data. Keys are matched case-insensitively.
var secretKeyPatterns = []string{
	"TOKEN",
	"SECRET",
	"PASSWORD",
	"CREDENTIAL",
	"API_KEY",
	"PRIVATE",
}

// tokenPrefixes contains known token prefixes that mark a value as sensitive
// regardless of its key.
var tokenPrefixes = []string{
	"ghp_",
	"gho_",
	"ghu_",
	"ghs_",
	"ghr_",
	"github_pat_",
	"glpat-",
	"sk-",
}

// ShouldMask reports whether the key name suggests sensitive data.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix reports whether value starts with a known token prefix.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// MaskValue masks a potentially sensitive string value.
// Values with 4 or fewer characters are fully masked as "********".
// Longer values keep the last 4 characters: "****xxxx".
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// MaskURL redacts credentials embedded in a URL. Both the password and a
// token used as the user name (https://ghp_xxx@github.com/...) are masked.
// Strings that are not URLs with user info are returned unchanged.
func MaskURL(raw string) string {
	if !strings.Contains(raw, "://") || !strings.Contains(raw, "@") {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.User == nil {
		return raw
	}

	user := parsed.User.Username()
	if ContainsTokenPrefix(user) {
		user = MaskValue(user)
	}
	if password, ok := parsed.User.Password(); ok && password != "" {
		parsed.User = url.UserPassword(user, MaskValue(password))
	} else {
		parsed.User = url.User(user)
	}

	return parsed.String()
}

// redact returns the display form of an attribute value.
func redact(key string, value any) any {
	if ShouldMask(key) {
		return MaskValue(fmt.Sprint(value))
	}
	s, ok := value.(string)
	if !ok {
		return value
	}
	if ContainsTokenPrefix(s) {
		return MaskValue(s)
	}
	return MaskURL(s)
}
