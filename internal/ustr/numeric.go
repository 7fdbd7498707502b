package ustr

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FromInt returns the decimal representation of v.
func FromInt(v int) String {
	var buf [24]byte
	return fromBytes(strconv.AppendInt(buf[:0], int64(v), 10))
}

// FromFloat returns the shortest decimal representation of v that parses
// back to the same value, without an exponent. NaN and the infinities are
// spelled "NaN", "+Inf" and "-Inf".
func FromFloat(v float64) String {
	var buf [32]byte
	return fromBytes(strconv.AppendFloat(buf[:0], v, 'f', -1, 64))
}

// Format renders value with a printf style spec such as "%.2f" or "%5d".
// A spec whose verbs do not fit value yields ErrBadFormat.
func Format(value any, spec String) (String, error) {
	layout := spec.String()
	out := fmt.Appendf(nil, layout, value)
	if bytes.Contains(out, []byte("%!")) && !strings.Contains(layout, "%!") {
		return String{}, fmt.Errorf("format %q: %w", layout, ErrBadFormat)
	}
	return fromBytes(out), nil
}

// ToInt parses s as a base 10 integer: an optional sign followed by digits,
// with nothing else around them.
func (s String) ToInt() (int, error) {
	text := s.String()
	v, err := strconv.ParseInt(text, 10, 0)
	if err != nil {
		return 0, &ParseError{Func: "ToInt", Input: text, Err: numError(err)}
	}
	return int(v), nil
}

// TryToInt is ToInt reporting success instead of an error.
func (s String) TryToInt() (int, bool) {
	v, err := s.ToInt()
	return v, err == nil
}

// ToFloat parses s as a decimal floating point number. Besides plain
// decimals with an optional exponent it accepts the spellings produced by
// FromFloat for NaN and the infinities.
func (s String) ToFloat() (float64, error) {
	text := s.String()
	switch text {
	case "NaN":
		return math.NaN(), nil
	case "Inf", "+Inf":
		return math.Inf(1), nil
	case "-Inf":
		return math.Inf(-1), nil
	}
	if !isDecimalFloat(text) {
		return 0, &ParseError{Func: "ToFloat", Input: text, Err: ErrSyntax}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &ParseError{Func: "ToFloat", Input: text, Err: numError(err)}
	}
	return v, nil
}

// TryToFloat is ToFloat reporting success instead of an error.
func (s String) TryToFloat() (float64, bool) {
	v, err := s.ToFloat()
	return v, err == nil
}

func numError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrRange
	}
	return ErrSyntax
}

// isDecimalFloat matches [+-]?(digits[.digits*]|.digits)([eE][+-]?digits)?.
// strconv alone would also take hex mantissas, underscores and "infinity".
func isDecimalFloat(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mantissa := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			mantissa++
		}
	}
	if mantissa == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for ; i < len(s) && isDigit(s[i]); i++ {
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
