/*
Package bigdecimal implements immutable arbitrary-precision decimal numbers.
Values are kept as sequences of decimal digits, so every sum, difference and
product is exact, and there is no upper bound on the number of digits.

# Representation

[Decimal] is a struct with the following fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Integer digits: a string of decimal digits before the decimal point.
  - Fraction digits: a string of decimal digits after the decimal point.
  - Default scale: the number of digits after the decimal point that
    [Decimal.Quo] keeps, see [DefaultScale] and [Decimal.WithDefaultScale].

For example, a decimal with integer digits "123" and fraction digits "45"
represents the value 123.45.

The same numeric value can have multiple representations.
[Parse] keeps the digits as written, so "1.5", "1.50" and "001.5" all
represent the same value but have different digits.
[Decimal.Show] renders the digits as stored, while [Decimal.String] renders
the normalized form without leading zeros in the integer part and without
trailing zeros in the fractional part.
All arithmetic operations return normalized decimals.
Negative zeros are not supported: "-0.00" is parsed as 0.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [Decimal.String], [Decimal.Show], [Decimal.Format].
  - from float64:
    [NewFromFloat64].
  - from integers:
    [NewFromInt64], [NewFromUint64], [NewFromBigInt].
  - from/to text:
    [Decimal.UnmarshalText], [Decimal.MarshalText].

# Operations

Arithmetic is organized in two layers:

  - [Decimal.AddAbs], [Decimal.SubAbs], [Decimal.MulAbs], [Decimal.QuoAbs]:
    operations on absolute values, which always return non-negative decimals.
  - [Decimal.Add], [Decimal.Sub], [Decimal.Mul], [Decimal.Quo], [Decimal.QuoScale]:
    signed operations composed from the absolute value layer.

Division is the only inexact operation.
The quotient is truncated towards zero to the requested number of digits after
the decimal point, it is never rounded.
[Decimal.Trunc] truncates a decimal in the same way, and [Decimal.Shift]
moves the decimal point.

# Errors

All methods are panic-free and pure.
Errors are returned in the following cases:

  - Invalid Decimal.
    [Parse] returns an error wrapping [ErrInvalidDecimal] for malformed input.
    Arithmetic and comparison methods return the same error if an operand
    is not a real number, see [Decimal.IsRealNumber].

  - Division by Zero.
    [Decimal.Quo], [Decimal.QuoScale] and [Decimal.QuoAbs] return an error
    wrapping [ErrDivisionByZero] when dividing by 0.

  - Scale Range.
    Methods accepting a scale return an error wrapping [ErrScaleRange]
    if the scale is negative.

A method returning an error also returns a decimal that is not a real number.
Use [errors.Is] to distinguish the cases.

[errors.Is]: https://pkg.go.dev/errors#Is
*/
package bigdecimal
