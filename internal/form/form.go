// Package form decodes untyped submission payloads into typed records
// against a declared schema. One decoder serves every entity type; the
// handlers never cast fields by hand.
package form

import (
	"net/mail"
	"time"

	"orgadmin/internal/domain"
)

type Kind int

const (
	String Kind = iota
	Date
	Enum
	Email
	FileField
)

type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Values   []string // Enum only: the closed set of legal values
}

// Schema is an ordered field declaration list. Declaration order decides
// which violation a fail-fast decode reports first.
type Schema []Field

// Accepted date layouts, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Record holds the typed result of a successful decode.
type Record struct {
	strings map[string]string
	dates   map[string]time.Time
	files   map[string]*File
}

func (r *Record) String(name string) string { return r.strings[name] }

// Date returns the parsed date for name; zero time when absent.
func (r *Record) Date(name string) time.Time { return r.dates[name] }

// DatePtr returns the parsed date for name, nil when the field was absent.
func (r *Record) DatePtr(name string) *time.Time {
	if t, ok := r.dates[name]; ok {
		return &t
	}
	return nil
}

// StringPtr returns the value for name, nil when absent or empty.
func (r *Record) StringPtr(name string) *string {
	if v, ok := r.strings[name]; ok && v != "" {
		return &v
	}
	return nil
}

func (r *Record) File(name string) *File { return r.files[name] }

// Decode validates sub against schema and produces a typed record.
// Fail-fast: the first violation wins. Presence of every required field is
// checked first in declaration order, then dates, then enum membership.
// Unrecognized submission keys are ignored; blobs pass through untouched.
func Decode(sub *Submission, schema Schema) (*Record, error) {
	for _, f := range schema {
		if !f.Required {
			continue
		}
		if f.Kind == FileField {
			if blob := sub.File(f.Name); blob == nil || blob.Size == 0 {
				return nil, &domain.MissingFieldError{Field: f.Name}
			}
			continue
		}
		if sub.Get(f.Name) == "" {
			return nil, &domain.MissingFieldError{Field: f.Name}
		}
	}

	rec := &Record{
		strings: map[string]string{},
		dates:   map[string]time.Time{},
		files:   map[string]*File{},
	}

	for _, f := range schema {
		if f.Kind != Date {
			continue
		}
		v := sub.Get(f.Name)
		if v == "" {
			continue
		}
		t, ok := parseDate(v)
		if !ok {
			return nil, &domain.InvalidFormatError{Field: f.Name}
		}
		rec.dates[f.Name] = t
	}

	for _, f := range schema {
		switch f.Kind {
		case Enum:
			v := sub.Get(f.Name)
			if v == "" {
				continue
			}
			if !contains(f.Values, v) {
				return nil, &domain.InvalidFormatError{Field: f.Name, Value: v}
			}
			rec.strings[f.Name] = v
		case Email:
			v := sub.Get(f.Name)
			if v == "" {
				continue
			}
			if _, err := mail.ParseAddress(v); err != nil {
				return nil, &domain.InvalidFormatError{Field: f.Name, Value: v}
			}
			rec.strings[f.Name] = v
		case String:
			if v := sub.Get(f.Name); v != "" {
				rec.strings[f.Name] = v
			}
		case FileField:
			if blob := sub.File(f.Name); blob != nil && blob.Size > 0 {
				rec.files[f.Name] = blob
			}
		}
	}

	return rec, nil
}

func parseDate(v string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
