package strval

const maxIdentifierLen = 32

// ValidateIdentifier reports whether s is a legal role or admin-role name:
// 1-32 characters drawn from [A-Za-z0-9_]. Digits and underscores are
// legal leading characters.
func ValidateIdentifier(s string) bool {
	if len(s) < 1 || len(s) > maxIdentifierLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
