package logger

const maskVisible = 6

// MaskToken keeps a short prefix of a credential so log lines can be correlated without leaking it
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 2*maskVisible {
		return "***"
	}
	return token[:maskVisible] + "***"
}
