package request

import "strings"

const (
	ClientWeb    = "web"
	ClientMobile = "mobile"
	ClientAPI    = "api"
)

// ResolveClientType prefers the explicit X-Client-Type header and falls
// back to sniffing the user agent.
func ResolveClientType(header, userAgent string) string {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case ClientWeb:
		return ClientWeb
	case ClientMobile:
		return ClientMobile
	case ClientAPI:
		return ClientAPI
	}

	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "mozilla"):
		return ClientWeb
	case strings.Contains(ua, "okhttp"), strings.Contains(ua, "dart"), strings.Contains(ua, "cfnetwork"):
		return ClientMobile
	default:
		return ClientAPI
	}
}

func IsWebClient(clientType string) bool {
	return clientType == ClientWeb
}
