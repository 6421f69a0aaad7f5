package reader

import (
	"fmt"
	"strconv"
	"time"
)

// ParseFunc converts one column of text into a value.
type ParseFunc func(string) (any, error)

// String keeps the column text as is.
func String(s string) (any, error) {
	return s, nil
}

// Int parses a base-10 integer.
func Int(s string) (any, error) {
	return strconv.Atoi(s)
}

// Float parses a 64-bit float.
func Float(s string) (any, error) {
	return strconv.ParseFloat(s, 64)
}

// Bool parses the forms accepted by strconv.ParseBool.
func Bool(s string) (any, error) {
	return strconv.ParseBool(s)
}

// Time returns a parser for the given time layout.
func Time(layout string) ParseFunc {
	return func(s string) (any, error) {
		return time.Parse(layout, s)
	}
}

// Optional wraps p so that an empty column yields nil instead of an error.
func Optional(p ParseFunc) ParseFunc {
	return func(s string) (any, error) {
		if s == "" {
			return nil, nil
		}
		return p(s)
	}
}

var byName = map[string]ParseFunc{
	"string": String,
	"str":    String,
	"int":    Int,
	"float":  Float,
	"bool":   Bool,
	"date":   Time(time.DateOnly),
	"time":   Time(time.RFC3339),
}

// Lookup returns the parser registered under name: string (str), int,
// float, bool, date (YYYY-MM-DD) or time (RFC 3339). A "?" suffix, as in
// "int?", makes the column optional.
func Lookup(name string) (ParseFunc, error) {
	optional := false
	if n := len(name); n > 1 && name[n-1] == '?' {
		optional = true
		name = name[:n-1]
	}
	p, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown column type %q", name)
	}
	if optional {
		return Optional(p), nil
	}
	return p, nil
}
