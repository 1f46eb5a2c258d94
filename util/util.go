package util

func IsNumber(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsDigits reports whether s is a non-empty run of decimal digits.
func IsDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsNumber(s[i]) {
			return false
		}
	}
	return true
}

// IsBrainfuckOp reports whether b is one of the eight target instructions.
func IsBrainfuckOp(b byte) bool {
	switch b {
	case '>', '<', '+', '-', '.', ',', '[', ']':
		return true
	}
	return false
}
