package fuzz

import (
	"errors"
	"fmt"
	"strings"
)

// Scorer scores a pair of strings in [0, 1].
type Scorer func(s1, s2 string) float64

// Method names one of the scoring entry points.
type Method string

const (
	MethodGram         Method = "gram"
	MethodRatio        Method = "ratio"
	MethodPartialRatio Method = "partial_ratio"
)

// ErrUnknownMethod is returned by ParseMethod for unrecognised names.
var ErrUnknownMethod = errors.New("fuzz: unknown method")

// Methods lists every supported method in registration order.
func Methods() []Method {
	return []Method{MethodGram, MethodRatio, MethodPartialRatio}
}

// ParseMethod resolves a method name, ignoring case. "partial" and
// "partial-ratio" are accepted for partial_ratio.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gram":
		return MethodGram, nil
	case "ratio":
		return MethodRatio, nil
	case "partial_ratio", "partial-ratio", "partial":
		return MethodPartialRatio, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Scorer returns the function behind m, or nil when m is not a known method.
func (m Method) Scorer() Scorer {
	switch m {
	case MethodGram:
		return Gram
	case MethodRatio:
		return Ratio
	case MethodPartialRatio:
		return PartialRatio
	}
	return nil
}

// Valid reports whether m names a supported method.
func (m Method) Valid() bool { return m.Scorer() != nil }

func (m Method) String() string { return string(m) }
