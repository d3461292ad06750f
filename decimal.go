package bigdecimal

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Decimal type is a representation of an arbitrary-precision decimal number.
// The zero value is the numeric value of 0 with the default scale of
// [DefaultScale].
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with the following parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Integer digits: decimal digits before the decimal point.
//   - Fraction digits: decimal digits after the decimal point.
//   - Default scale: the number of digits after the decimal point that
//     [Decimal.Quo] keeps when no explicit scale is given.
//
// For example, a decimal with integer digits "123" and fraction digits "45"
// represents the value 123.45.
// [Parse] keeps the digits exactly as written, so "007.1200" and "7.12"
// have different representations but the same numeric value.
// Arithmetic operations always return decimals without leading zeros in the
// integer part and without trailing zeros in the fraction part.
//
// A decimal that could not be constructed is not a real number (NaR).
// Such a decimal is reported by [Decimal.IsRealNumber] and is rejected
// by all arithmetic and comparison methods.
type Decimal struct {
	neg  bool   // indicates whether the decimal is negative
	nar  bool   // indicates whether the decimal is not a real number
	intg string // digits before the decimal point, "" reads as "0"
	frac string // digits after the decimal point
	dsc  int    // default scale, stored as an offset from DefaultScale
}

// DefaultScale is the number of digits after the decimal point
// that [Decimal.Quo] keeps unless the decimal carries a different default scale.
const DefaultScale = 6

var (
	// ErrInvalidDecimal is returned when a string cannot be parsed as
	// a decimal or when an operand is not a real number.
	ErrInvalidDecimal = errors.New("invalid decimal")
	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrScaleRange is returned when a scale is negative.
	ErrScaleRange = errors.New("scale out of range")
)

func newDecimal(neg bool, intg, frac string, dsc int) Decimal {
	if isZeros(intg) && isZeros(frac) {
		neg = false
	}
	return Decimal{neg: neg, intg: intg, frac: frac, dsc: dsc}
}

// nar returns a decimal that is not a real number.
func nar() Decimal {
	return Decimal{nar: true}
}

// withSign returns d with the given sign.
// The sign of zero is always cleared.
func (d Decimal) withSign(neg bool) Decimal {
	return newDecimal(neg, d.intg, d.frac, d.dsc)
}

// intPart returns the integer digits of d.
func (d Decimal) intPart() string {
	if d.intg == "" {
		return "0"
	}
	return d.intg
}

func checkScale(scale int) error {
	if scale < 0 {
		return errors.Wrapf(ErrScaleRange, "scale %v", scale)
	}
	return nil
}

func checkOperands(d, e Decimal) error {
	switch {
	case !d.IsRealNumber():
		return errors.Wrap(ErrInvalidDecimal, "first operand is not a real number")
	case !e.IsRealNumber():
		return errors.Wrap(ErrInvalidDecimal, "second operand is not a real number")
	}
	return nil
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	007.1200
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digit          ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	digits         ::= digit { digit }
//	numeric-string ::= [sign] digits ['.' digits]
//
// Parse keeps leading zeros of the integer part and trailing zeros of the
// fractional part, see [Decimal.Show].
// A negative zero, such as "-0.00", is parsed as a non-negative zero.
//
// Parse returns an error wrapping [ErrInvalidDecimal] together with
// a decimal that is not a real number if the string does not match the grammar.
func Parse(s string) (Decimal, error) {
	var (
		pos   int
		width int
		neg   bool
		start int
		intg  string
		frac  string
	)

	width = len(s)
	if width == 0 {
		return nar(), errors.Wrap(ErrInvalidDecimal, "empty string")
	}

	// Sign
	switch s[pos] {
	case '-':
		neg = true
		pos++
	case '+':
		pos++
	}

	// Integer
	start = pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}
	intg = s[start:pos]
	if intg == "" {
		if pos < width && s[pos] != '.' {
			return nar(), errors.Wrapf(ErrInvalidDecimal, "invalid character %q", s[pos])
		}
		return nar(), errors.Wrap(ErrInvalidDecimal, "no digits before the decimal point")
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		start = pos
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			pos++
		}
		frac = s[start:pos]
		if frac == "" && pos == width {
			return nar(), errors.Wrap(ErrInvalidDecimal, "no digits after the decimal point")
		}
	}

	if pos != width {
		if s[pos] == '.' {
			return nar(), errors.Wrap(ErrInvalidDecimal, "multiple decimal points")
		}
		return nar(), errors.Wrapf(ErrInvalidDecimal, "invalid character %q", s[pos])
	}

	return newDecimal(neg, intg, frac, 0), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// NewFromInt64 returns a decimal equal to v.
func NewFromInt64(v int64) Decimal {
	s := strconv.FormatInt(v, 10)
	if v < 0 {
		return newDecimal(true, s[1:], "", 0)
	}
	return newDecimal(false, s, "", 0)
}

// NewFromUint64 returns a decimal equal to v.
func NewFromUint64(v uint64) Decimal {
	return newDecimal(false, strconv.FormatUint(v, 10), "", 0)
}

// NewFromBigInt returns a decimal equal to b.
// NewFromBigInt returns an error if b is nil.
func NewFromBigInt(b *big.Int) (Decimal, error) {
	if b == nil {
		return nar(), errors.Wrap(ErrInvalidDecimal, "nil integer")
	}
	s := b.String()
	if b.Sign() < 0 {
		return newDecimal(true, s[1:], "", 0), nil
	}
	return newDecimal(false, s, "", 0), nil
}

// NewFromFloat64 converts a float to a decimal.
// The float is converted using the smallest number of digits that
// represents it exactly, so 0.1 becomes "0.1" and not the binary
// approximation of 0.1.
//
// NewFromFloat64 returns an error wrapping [ErrInvalidDecimal] if f is
// NaN or an infinity.
func NewFromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nar(), errors.Wrapf(ErrInvalidDecimal, "%v is not a real number", f)
	}
	return Parse(strconv.FormatFloat(f, 'f', -1, 64))
}

// Copy returns a decimal with the same digits and the same default scale as d.
func (d Decimal) Copy() Decimal {
	return Decimal{neg: d.neg, nar: d.nar, intg: d.intg, frac: d.frac, dsc: d.dsc}
}

// IsRealNumber returns true if d holds a valid sequence of digits.
// Decimals returned together with an error are not real numbers.
func (d Decimal) IsRealNumber() bool {
	return !d.nar && isDigits(d.intg) && isDigits(d.frac)
}

// String method implements the [fmt.Stringer] interface and returns
// a normalized string representation of a decimal value.
// The returned string has no leading zeros in the integer part and
// no trailing zeros in the fractional part.
// It is formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// A decimal that is not a real number is represented as "NaR".
// Also see method [Decimal.Show].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	if !d.IsRealNumber() {
		return "NaR"
	}
	return d.Reduce().Show()
}

// Show returns a string representation of d with the digits as they are
// stored: leading zeros of the integer part and trailing zeros of the
// fractional part are kept.
// For example, Show returns "007.1200" for a decimal parsed from "007.1200".
func (d Decimal) Show() string {
	if !d.IsRealNumber() {
		return "NaR"
	}
	var b strings.Builder
	b.Grow(len(d.intg) + len(d.frac) + 3)
	if d.IsNeg() {
		b.WriteByte('-')
	}
	b.WriteString(d.intPart())
	if d.frac != "" {
		b.WriteByte('.')
		b.WriteString(d.frac)
	}
	return b.String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	if !d.IsRealNumber() {
		return nil, errors.Wrap(ErrInvalidDecimal, "cannot marshal a decimal that is not a real number")
	}
	return []byte(d.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//	%k:         -12345.6%
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for %f and %k verbs.
// The value is truncated or zero-padded to the precision, it is never rounded.
// Without precision, the value is normalized.
//
// A decimal that is not a real number is formatted as "NaR".
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	if !d.IsRealNumber() {
		switch verb {
		case 'q', 'Q':
			state.Write([]byte("\"NaR\""))
		case 's', 'S', 'v', 'V', 'f', 'F', 'k', 'K':
			state.Write([]byte("NaR"))
		default:
			fmt.Fprintf(state, "%%!%c(bigdecimal.Decimal=NaR)", verb)
		}
		return
	}

	d = d.Reduce()

	// Percentage
	if verb == 'k' || verb == 'K' {
		d = d.shift(2)
	}

	// Truncation
	if verb == 'f' || verb == 'F' || verb == 'k' || verb == 'K' {
		if p, ok := state.Precision(); ok {
			d = d.trunc(p)
		}
	}

	intg, frac := d.intPart(), d.frac

	// Decimal point
	dpoint := 0
	if len(frac) > 0 {
		dpoint = 1
	}

	// Arithmetic sign
	rsign := 0
	if d.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Percentage sign
	psign := 0
	if verb == 'k' || verb == 'K' {
		psign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(intg) + dpoint + len(frac) + psign + tquote
	lspaces, tspaces, lzeros := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeros = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	buf = append(buf, strings.Repeat(" ", lspaces)...)
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case d.IsNeg():
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	buf = append(buf, zeros(lzeros)...)
	buf = append(buf, intg...)
	if dpoint > 0 {
		buf = append(buf, '.')
		buf = append(buf, frac...)
	}
	if psign > 0 {
		buf = append(buf, '%')
	}
	if tquote > 0 {
		buf = append(buf, '"')
	}
	buf = append(buf, strings.Repeat(" ", tspaces)...)

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'k', 'K':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(bigdecimal.Decimal="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Prec returns number of significant digits in d, that is the number of
// digits of the normalized decimal without leading zeros.
// Prec returns 0 for zero.
func (d Decimal) Prec() int {
	r := d.Reduce()
	coef := strings.TrimLeft(r.intPart()+r.frac, "0")
	return len(coef)
}

// Scale returns number of digits after the decimal point as they are stored.
// Also see method [Decimal.Reduce].
func (d Decimal) Scale() int {
	return len(d.frac)
}

// DefaultScale returns the number of digits after the decimal point
// that [Decimal.Quo] keeps.
func (d Decimal) DefaultScale() int {
	return DefaultScale + d.dsc
}

// WithDefaultScale returns d with a different default scale.
// The numeric value of d is not changed.
// WithDefaultScale returns an error wrapping [ErrScaleRange] if scale is
// negative.
func (d Decimal) WithDefaultScale(scale int) (Decimal, error) {
	if err := checkScale(scale); err != nil {
		return nar(), err
	}
	f := d.Copy()
	f.dsc = scale - DefaultScale
	return f, nil
}

// IsInt returns true if fractional part of d is zero.
func (d Decimal) IsInt() bool {
	return d.IsRealNumber() && isZeros(d.frac)
}

// IsOne returns true if d == -1 or d == 1.
func (d Decimal) IsOne() bool {
	if !d.IsRealNumber() {
		return false
	}
	r := d.Reduce()
	return r.intg == "1" && r.frac == ""
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
//
// Sign returns 0 for decimals that are not real numbers.
func (d Decimal) Sign() int {
	switch {
	case d.nar:
		return 0
	case d.neg:
		return -1
	case d.IsZero():
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return d.Sign() > 0
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return !d.nar && isZeros(d.intg) && isZeros(d.frac)
}

// Neg returns d with opposite sign.
// The sign of zero is not changed.
func (d Decimal) Neg() Decimal {
	if !d.IsRealNumber() {
		return nar()
	}
	return d.withSign(!d.neg)
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	if !d.IsRealNumber() {
		return nar()
	}
	return d.withSign(false)
}

// Reduce returns d with all leading zeros of the integer part and all
// trailing zeros of the fractional part removed.
// The result is the normalized representation used by [Decimal.String]
// and [Decimal.Equal].
func (d Decimal) Reduce() Decimal {
	if !d.IsRealNumber() {
		return nar()
	}
	return newDecimal(d.neg, trimInt(d.intPart()), trimFrac(d.frac), d.dsc)
}

// Shift returns d multiplied by 10^n, that is d with the decimal point
// moved n positions to the right if n > 0, or -n positions to the left
// if n < 0.
// Leading zeros of the integer part are removed, while zeros of the
// fractional part are kept as they fall.
// Shift returns a decimal that is not a real number if d is not a real number.
func (d Decimal) Shift(n int) Decimal {
	if !d.IsRealNumber() {
		return nar()
	}
	return d.shift(n)
}

func (d Decimal) shift(n int) Decimal {
	intg, frac := d.intPart(), d.frac
	switch {
	case n > 0 && n <= len(frac):
		intg, frac = intg+frac[:n], frac[n:]
	case n > 0:
		intg, frac = intg+frac+zeros(n-len(frac)), ""
	case n < 0 && -n <= len(intg):
		m := len(intg) + n
		intg, frac = intg[:m], intg[m:]+frac
	case n < 0:
		intg, frac = "0", zeros(-n-len(intg))+intg+frac
	}
	return newDecimal(d.neg, trimInt(intg), frac, d.dsc)
}

// Trunc returns d that is truncated to the specified number of digits after
// the decimal point.
// If d has less digits after the decimal point than the specified scale,
// the result will be zero-padded to the right.
// The result is never rounded: Trunc(2) of 1.239 is 1.23.
//
// Trunc returns an error wrapping [ErrScaleRange] if scale is negative, or
// an error wrapping [ErrInvalidDecimal] if d is not a real number.
func (d Decimal) Trunc(scale int) (Decimal, error) {
	if !d.IsRealNumber() {
		return nar(), errors.Wrap(ErrInvalidDecimal, "operand is not a real number")
	}
	if err := checkScale(scale); err != nil {
		return nar(), err
	}
	return d.trunc(scale), nil
}

func (d Decimal) trunc(scale int) Decimal {
	r := d.Reduce()
	frac := r.frac
	if len(frac) > scale {
		frac = frac[:scale]
	} else {
		frac = frac + zeros(scale-len(frac))
	}
	return newDecimal(r.neg, r.intPart(), frac, r.dsc)
}

// CmpAbs compares absolute values of d and e and returns:
//
//	-1 if |d| < |e|
//	 0 if |d| == |e|
//	+1 if |d| > |e|
//
// CmpAbs returns an error wrapping [ErrInvalidDecimal] if d or e is not
// a real number.
func (d Decimal) CmpAbs(e Decimal) (int, error) {
	if err := checkOperands(d, e); err != nil {
		return 0, err
	}
	return cmpAbs(d, e), nil
}

// cmpAbs aligns the integer and fractional parts of d and e with zeros,
// after which the lexicographic order of digits is the numeric order.
func cmpAbs(d, e Decimal) int {
	dint, eint := padInt(d.intPart(), e.intPart())
	if r := strings.Compare(dint, eint); r != 0 {
		return r
	}
	dfrac, efrac := padFrac(d.frac, e.frac)
	return strings.Compare(dfrac, efrac)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Cmp returns an error wrapping [ErrInvalidDecimal] if d or e is not
// a real number.
func (d Decimal) Cmp(e Decimal) (int, error) {
	if err := checkOperands(d, e); err != nil {
		return 0, err
	}
	return cmp(d, e), nil
}

func cmp(d, e Decimal) int {
	d, e = d.Reduce(), e.Reduce()
	switch {
	case d.IsNeg() && !e.IsNeg():
		return -1
	case !d.IsNeg() && e.IsNeg():
		return 1
	case d.IsNeg():
		return -cmpAbs(d, e)
	}
	return cmpAbs(d, e)
}

// Equal returns true if d and e are real numbers with the same numeric value.
// Representation and default scale are ignored, so 1.50 and 001.5 are equal.
func (d Decimal) Equal(e Decimal) bool {
	r, err := d.Cmp(e)
	return err == nil && r == 0
}

// Max returns maximum of d and e.
// If d and e are equal, Max returns d.
func (d Decimal) Max(e Decimal) (Decimal, error) {
	r, err := d.Cmp(e)
	if err != nil {
		return nar(), err
	}
	if r >= 0 {
		return d, nil
	}
	return e, nil
}

// Min returns minimum of d and e.
// If d and e are equal, Min returns d.
func (d Decimal) Min(e Decimal) (Decimal, error) {
	r, err := d.Cmp(e)
	if err != nil {
		return nar(), err
	}
	if r <= 0 {
		return d, nil
	}
	return e, nil
}

// AddAbs returns the sum of the absolute values of d and e, |d| + |e|.
// The result carries the default scale of d.
func (d Decimal) AddAbs(e Decimal) (Decimal, error) {
	if err := checkOperands(d, e); err != nil {
		return nar(), err
	}
	return addAbs(d, e), nil
}

func addAbs(d, e Decimal) Decimal {
	d, e = d.Reduce(), e.Reduce()
	dsc := d.dsc

	// Special case: zero operand
	switch {
	case e.IsZero():
		return newDecimal(false, d.intg, d.frac, dsc)
	case d.IsZero():
		return newDecimal(false, e.intg, e.frac, dsc)
	}

	// Fraction
	dfrac, efrac := padFrac(d.frac, e.frac)
	frac := addDigits(dfrac, efrac)
	carry := ""
	if len(frac) > len(dfrac) {
		carry, frac = frac[:1], frac[1:]
	}

	// Integer
	dint, eint := padInt(d.intPart(), e.intPart())
	intg := addDigits(dint, eint)
	if carry != "" {
		intg, carry = padInt(intg, carry)
		intg = addDigits(intg, carry)
	}

	return newDecimal(false, intg, frac, dsc).Reduce()
}

// SubAbs returns the distance between the absolute values of d and e,
// ||d| - |e||.
// The result carries the default scale of d.
func (d Decimal) SubAbs(e Decimal) (Decimal, error) {
	if err := checkOperands(d, e); err != nil {
		return nar(), err
	}
	return subAbs(d, e), nil
}

func subAbs(d, e Decimal) Decimal {
	d, e = d.Reduce(), e.Reduce()
	dsc := d.dsc

	// Special cases
	switch {
	case e.IsZero():
		return newDecimal(false, d.intg, d.frac, dsc)
	case d.IsZero():
		return newDecimal(false, e.intg, e.frac, dsc)
	}
	switch cmpAbs(d, e) {
	case 0:
		return newDecimal(false, "0", "", dsc)
	case -1:
		d, e = e, d
	}

	// Fraction
	dfrac, efrac := padFrac(d.frac, e.frac)
	borrow := strings.Compare(dfrac, efrac) < 0
	if borrow {
		dfrac, efrac = "1"+dfrac, "0"+efrac
	}
	frac := subDigits(dfrac, efrac)
	if borrow {
		frac = frac[1:]
	}

	// Integer
	dint, eint := padInt(d.intPart(), e.intPart())
	if borrow {
		dint = subDigits(dint, zeros(len(dint)-1)+"1")
	}
	intg := subDigits(dint, eint)

	return newDecimal(false, intg, frac, dsc).Reduce()
}

// MulAbs returns the product of the absolute values of d and e, |d| * |e|.
// The result carries the default scale of d.
func (d Decimal) MulAbs(e Decimal) (Decimal, error) {
	if err := checkOperands(d, e); err != nil {
		return nar(), err
	}
	return mulAbs(d, e), nil
}

func mulAbs(d, e Decimal) Decimal {
	d, e = d.Reduce(), e.Reduce()
	dsc := d.dsc

	// Special cases
	switch {
	case d.IsZero() || e.IsZero():
		return newDecimal(false, "0", "", dsc)
	case d.IsOne():
		return newDecimal(false, e.intg, e.frac, dsc)
	case e.IsOne():
		return newDecimal(false, d.intg, d.frac, dsc)
	}

	// Both operands are multiplied as integers, the decimal point
	// is restored afterwards.
	shift := len(d.frac) + len(e.frac)
	coef := mulDigits(d.intPart()+d.frac, e.intPart()+e.frac)

	return newDecimal(false, coef, "", dsc).shift(-shift).Reduce()
}

// QuoAbs returns the quotient of the absolute values of d and e, |d| / |e|,
// truncated to the specified number of digits after the decimal point.
// The result carries the default scale of d.
//
// QuoAbs returns an error wrapping [ErrDivisionByZero] if e is zero.
func (d Decimal) QuoAbs(e Decimal, scale int) (Decimal, error) {
	if err := checkOperands(d, e); err != nil {
		return nar(), err
	}
	if err := checkScale(scale); err != nil {
		return nar(), err
	}
	return quoAbs(d, e, scale)
}

func quoAbs(d, e Decimal, scale int) (Decimal, error) {
	d, e = d.Reduce(), e.Reduce()
	dsc := d.dsc

	// Special cases
	switch {
	case e.IsZero():
		return nar(), errors.WithStack(ErrDivisionByZero)
	case d.IsZero():
		return newDecimal(false, "0", "", dsc), nil
	case e.IsOne():
		return newDecimal(false, d.intg, d.frac, dsc).trunc(scale).Reduce(), nil
	}

	// Both operands are divided as integers.
	// The quotient needs prec digits after the decimal point, so that
	// shifting it back leaves exactly scale digits.
	dcoef, ecoef := d.intPart()+d.frac, e.intPart()+e.frac
	prec := len(e.frac) - len(d.frac) + scale
	if prec < 0 {
		ecoef = ecoef + zeros(-prec)
		prec = 0
	}
	intq, fracq := quoDigits(dcoef, ecoef, prec)

	return newDecimal(false, intq, fracq, dsc).shift(prec - scale).Reduce(), nil
}

// Add returns the sum of d and e.
// The sum is always exact.
// The result carries the default scale of d.
//
// Add returns an error wrapping [ErrInvalidDecimal] if d or e is not
// a real number.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	if err := checkOperands(d, e); err != nil {
		return nar(), err
	}
	return add(d, e), nil
}

func add(d, e Decimal) Decimal {
	// Same signs
	if d.IsNeg() == e.IsNeg() {
		return addAbs(d, e).withSign(d.IsNeg())
	}

	// Opposite signs: the operand with the larger absolute value
	// determines the sign
	f := subAbs(d, e)
	switch cmpAbs(d, e) {
	case 1:
		return f.withSign(d.IsNeg())
	case -1:
		return f.withSign(e.IsNeg())
	}
	return f
}

// Sub returns the difference of d and e, computed as d + (-e).
// The difference is always exact.
// The result carries the default scale of d.
//
// Sub returns an error wrapping [ErrInvalidDecimal] if d or e is not
// a real number.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	if err := checkOperands(d, e); err != nil {
		return nar(), err
	}
	return add(d, e.Neg()), nil
}

// Mul returns the product of d and e.
// The product is always exact.
// The result carries the default scale of d.
//
// Mul returns an error wrapping [ErrInvalidDecimal] if d or e is not
// a real number.
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	if err := checkOperands(d, e); err != nil {
		return nar(), err
	}
	return mulAbs(d, e).withSign(d.IsNeg() != e.IsNeg()), nil
}

// Quo returns the quotient of d and e truncated to the default scale of d,
// see [Decimal.DefaultScale].
// Also see method [Decimal.QuoScale].
//
// Quo returns an error wrapping [ErrDivisionByZero] if e is zero, or an
// error wrapping [ErrInvalidDecimal] if d or e is not a real number.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	return d.QuoScale(e, d.DefaultScale())
}

// QuoScale returns the quotient of d and e truncated to the specified number
// of digits after the decimal point.
// The quotient is never rounded: QuoScale(3, 4) of 1 is 0.3333.
// The result carries the default scale of d.
//
// QuoScale returns an error wrapping:
//   - [ErrDivisionByZero] if e is zero, even if d is zero too;
//   - [ErrScaleRange] if scale is negative;
//   - [ErrInvalidDecimal] if d or e is not a real number.
func (d Decimal) QuoScale(e Decimal, scale int) (Decimal, error) {
	if err := checkOperands(d, e); err != nil {
		return nar(), err
	}
	if err := checkScale(scale); err != nil {
		return nar(), err
	}
	f, err := quoAbs(d, e, scale)
	if err != nil {
		return nar(), err
	}
	return f.withSign(d.IsNeg() != e.IsNeg()), nil
}
