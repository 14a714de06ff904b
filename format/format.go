// Package format provides a default implementation of the
// StringFormatRecognizer capability the XSD core consumes: recognizing
// whether a string value looks like a date, time, date-time, or URI.
//
// The specification leaves the recognizer's locale as an open question
// (the reference implementation's date recognizer is implicitly Russian,
// i.e. day-month-year ordering); this package resolves that by accepting
// an explicit set of layouts rather than baking in a locale, defaulting
// to a set that matches the patterns the basic-types library itself
// encodes in dateType/timeType (see xsdmodel.EmitBasicTypes).
package format

import (
	"regexp"
	"time"
)

// DefaultDateLayouts are tried, in order, by a zero-value Recognizer's
// IsDate method.
var DefaultDateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
}

// DefaultTimeLayouts are tried, in order, by a zero-value Recognizer's
// IsTime method.
var DefaultTimeLayouts = []string{
	"15:04",
	"3:04 PM",
}

// DefaultDateTimeLayouts are tried, in order, by a zero-value
// Recognizer's IsDateTime method.
var DefaultDateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

var uriPattern = regexp.MustCompile(`^(https?|ftp)://[^{}]+\.[^{}]+`)

// Recognizer implements typegraph.FormatRecognizer.
type Recognizer struct {
	DateLayouts     []string
	TimeLayouts     []string
	DateTimeLayouts []string
	URIPattern      *regexp.Regexp
}

// New builds a Recognizer. With no arguments, it uses the package
// defaults; a caller may pass its own date layouts (in time.Parse
// reference-time form) to override the date locale. The time and
// date-time layouts always keep the package defaults.
func New(dateLayouts ...string) *Recognizer {
	r := &Recognizer{
		TimeLayouts:     DefaultTimeLayouts,
		DateTimeLayouts: DefaultDateTimeLayouts,
		URIPattern:      uriPattern,
	}
	if len(dateLayouts) > 0 {
		r.DateLayouts = dateLayouts
	} else {
		r.DateLayouts = DefaultDateLayouts
	}
	return r
}

func matchesAny(layouts []string, s string) bool {
	for _, layout := range layouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func (r *Recognizer) IsDate(s string) bool {
	return matchesAny(r.dateLayouts(), s)
}

func (r *Recognizer) IsTime(s string) bool {
	return matchesAny(r.timeLayouts(), s)
}

func (r *Recognizer) IsDateTime(s string) bool {
	return matchesAny(r.dateTimeLayouts(), s)
}

func (r *Recognizer) IsURI(s string) bool {
	pattern := r.URIPattern
	if pattern == nil {
		pattern = uriPattern
	}
	return pattern.MatchString(s)
}

func (r *Recognizer) dateLayouts() []string {
	if len(r.DateLayouts) > 0 {
		return r.DateLayouts
	}
	return DefaultDateLayouts
}

func (r *Recognizer) timeLayouts() []string {
	if len(r.TimeLayouts) > 0 {
		return r.TimeLayouts
	}
	return DefaultTimeLayouts
}

func (r *Recognizer) dateTimeLayouts() []string {
	if len(r.DateTimeLayouts) > 0 {
		return r.DateTimeLayouts
	}
	return DefaultDateTimeLayouts
}
