package bigdecimal

import "strings"

// A coefficient is a string of ASCII decimal digits, most significant digit
// first, without sign or decimal point.
// The functions below work on such strings and know nothing about signs or
// decimal points.
// Unless stated otherwise, results may contain leading zeros.

// zeros returns a string of n '0' characters.
func zeros(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("0", n)
}

// isDigits returns true if s consists of ASCII digits only.
// An empty string is considered to be a valid (empty) digit sequence.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isZeros returns true if s has no digits other than '0'.
func isZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// trimInt removes leading zeros from the integer digits x,
// keeping at least one digit.
func trimInt(x string) string {
	if x == "" {
		return "0"
	}
	i := 0
	for i < len(x)-1 && x[i] == '0' {
		i++
	}
	return x[i:]
}

// trimFrac removes trailing zeros from the fraction digits x.
func trimFrac(x string) string {
	return strings.TrimRight(x, "0")
}

// padInt left-pads the shorter of the integer digits x and y with zeros,
// so that both have the same length.
func padInt(x, y string) (string, string) {
	switch {
	case len(x) < len(y):
		x = zeros(len(y)-len(x)) + x
	case len(y) < len(x):
		y = zeros(len(x)-len(y)) + y
	}
	return x, y
}

// padFrac right-pads the shorter of the fraction digits x and y with zeros,
// so that both have the same length.
func padFrac(x, y string) (string, string) {
	switch {
	case len(x) < len(y):
		x = x + zeros(len(y)-len(x))
	case len(y) < len(x):
		y = y + zeros(len(x)-len(y))
	}
	return x, y
}

// cmpDigits compares integer digits x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// The lengths of x and y may differ.
func cmpDigits(x, y string) int {
	x, y = padInt(x, y)
	return strings.Compare(x, y)
}

// addDigits calculates x + y.
// x and y must have equal length.
// The result is one digit longer than the operands if the last column
// produced a carry.
func addDigits(x, y string) string {
	if len(x) != len(y) {
		panic("addDigits: operands have different lengths")
	}
	z := make([]byte, len(x)+1)
	carry := byte(0)
	for i := len(x) - 1; i >= 0; i-- {
		s := (x[i] - '0') + (y[i] - '0') + carry
		carry = s / 10
		z[i+1] = s%10 + '0'
	}
	if carry == 0 {
		return string(z[1:])
	}
	z[0] = carry + '0'
	return string(z)
}

// subDigits calculates x - y.
// x and y must have equal length and x must not be less than y.
// The result has the same length as the operands.
func subDigits(x, y string) string {
	if len(x) != len(y) {
		panic("subDigits: operands have different lengths")
	}
	z := make([]byte, len(x))
	borrow := 0
	for i := len(x) - 1; i >= 0; i-- {
		d := int(x[i]-'0') - int(y[i]-'0') - borrow
		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}
		z[i] = byte(d) + '0'
	}
	if borrow != 0 {
		panic("subDigits: minuend is less than subtrahend")
	}
	return string(z)
}

// mulDigit calculates x * d, where d is a single digit between 0 and 9.
func mulDigit(x string, d byte) string {
	z := make([]byte, len(x)+1)
	carry := byte(0)
	for i := len(x) - 1; i >= 0; i-- {
		p := (x[i]-'0')*d + carry
		carry = p / 10
		z[i+1] = p%10 + '0'
	}
	z[0] = carry + '0'
	return trimInt(string(z))
}

// mulDigits calculates x * y using schoolbook multiplication.
// Leading zeros of the result are removed.
func mulDigits(x, y string) string {
	x, y = trimInt(x), trimInt(y)
	if x == "0" || y == "0" {
		return "0"
	}
	sum := "0"
	for i := len(y) - 1; i >= 0; i-- {
		d := y[i] - '0'
		if d == 0 {
			continue
		}
		// Partial product, shifted by the position of the digit
		p := mulDigit(x, d) + zeros(len(y)-1-i)
		sum, p = padInt(sum, p)
		sum = addDigits(sum, p)
	}
	return trimInt(sum)
}

// quoDigits calculates x / y using long division.
// It returns the integer digits of the quotient and exactly fracLen digits
// of the fractional part of the quotient.
// Remaining digits are discarded, the quotient is never rounded.
// y must not be zero.
func quoDigits(x, y string, fracLen int) (intq, fracq string) {
	x, y = trimInt(x), trimInt(y)
	if y == "0" {
		panic("quoDigits: division by zero")
	}
	if fracLen < 0 {
		fracLen = 0
	}

	var (
		q   = make([]byte, 0, len(x)+fracLen)
		rem = "0"
	)
	for pos := 0; pos < len(x)+fracLen; pos++ {
		// Bring down the next digit of the dividend,
		// or a zero once the dividend is exhausted
		next := byte('0')
		if pos < len(x) {
			next = x[pos]
		}
		rem = trimInt(rem + string(next))

		// Largest digit such that digit * y <= rem
		d := byte(0)
		if cmpDigits(y, rem) <= 0 {
			for d = 9; d > 0; d-- {
				p := mulDigit(y, d)
				if cmpDigits(p, rem) <= 0 {
					r, p := padInt(rem, p)
					rem = trimInt(subDigits(r, p))
					break
				}
			}
		}
		q = append(q, d+'0')
	}
	return trimInt(string(q[:len(x)])), string(q[len(x):])
}
