package token

// number returns the length of the number lexeme at the start of d: an
// optional '-', digits, an optional fraction and an optional exponent.
// Leading zeros are kept as they are.
func number(d []byte) (int, error) {
	i := 0
	if len(d) > 0 && d[0] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return 0, ErrNumber
	}
	i += digits
	i += fract(d[i:])
	i += exp(d[i:])
	return i, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	// . must be followed by 1 or more digits
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}
