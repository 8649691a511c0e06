package mandelgray

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the set of types ParsePair knows how to parse.
type Value interface {
	uint | float64
}

// ParsePair parses s as a coordinate pair like "400x600" or "1.0,0.5".
//
// s must have the form <left><sep><right>, split on the first occurrence
// of sep. Both sides must parse completely as T; trailing garbage after
// the right side is an error.
func ParsePair[T Value](s string, sep byte) (T, T, error) {
	var left, right T

	i := strings.IndexByte(s, sep)
	if i < 0 {
		return left, right, fmt.Errorf("missing separator %q in %q", sep, s)
	}

	left, err := parseValue[T](s[:i])
	if err != nil {
		return left, right, fmt.Errorf("left of %q in %q: %w", sep, s, err)
	}
	right, err = parseValue[T](s[i+1:])
	if err != nil {
		return left, right, fmt.Errorf("right of %q in %q: %w", sep, s, err)
	}
	return left, right, nil
}

func parseValue[T Value](s string) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *uint:
		u, err := strconv.ParseUint(s, 10, strconv.IntSize)
		if err != nil {
			return v, err
		}
		*p = uint(u)
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, err
		}
		*p = f
	default:
		return v, fmt.Errorf("unsupported pair type %T", v)
	}
	return v, nil
}

// ParseComplex parses a comma-separated point like "-1.20,0.35".
func ParseComplex(s string) (complex128, error) {
	re, im, err := ParsePair[float64](s, ',')
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

// ParseBounds parses image dimensions like "1024x768".
func ParseBounds(s string) (Bounds, error) {
	w, h, err := ParsePair[uint](s, 'x')
	if err != nil {
		return Bounds{}, err
	}
	return Bounds{Width: int(w), Height: int(h)}, nil
}
