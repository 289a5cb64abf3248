// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package patterns holds a small catalog of precompiled regular expressions
// for common form fields and resolves pattern expressions from form
// definitions.
package patterns

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
)

// ErrInvalidPattern is returned when an expression is neither a catalog key
// nor a valid regular expression.
var ErrInvalidPattern = errors.New("invalid pattern")

var (
	Required = regexp.MustCompile(`^[\s\p{Z}\x{feff}]*[^\s\p{Z}\x{feff}].*$`)
	URL      = regexp.MustCompile(`(http|ftp|https)://[\w\-_]+(\.[\w\-_]+)+([\w\-.,@?^=%&:/~+#]*[\w\-@?^=%&/~+#])?`)
	Email    = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)
	Phone    = regexp.MustCompile(`^([0-9]( |-)?)?(\(?[0-9]{3}\)?|[0-9]{3})( |-)?([0-9]{3}( |-)?[0-9]{4}|[a-zA-Z0-9]{7})$`)
	Zipcode  = regexp.MustCompile(`^\d{5}$`)
)

var catalog = map[string]*regexp.Regexp{
	"required": Required,
	"url":      URL,
	"email":    Email,
	"phone":    Phone,
	"zipcode":  Zipcode,
}

// Names returns the catalog keys, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(catalog))
}

// Lookup resolves expr. A catalog key returns the shared precompiled
// pattern; anything else is compiled as a regular expression. An empty
// expression resolves to nil so the rule default applies.
func Lookup(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	if re, ok := catalog[expr]; ok {
		return re, nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, expr, err)
	}

	return re, nil
}
