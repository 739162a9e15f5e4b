package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// formReader reads typed values out of a posted form, remembering the first bad field
type formReader struct {
	values url.Values
	err    error
}

func newFormReader(values url.Values) *formReader {
	return &formReader{values: values}
}

func (f *formReader) String(key string) string {
	return strings.TrimSpace(f.values.Get(key))
}

func (f *formReader) Int64(key string) int64 {
	raw := f.String(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f.fail(key)
	}
	return v
}

func (f *formReader) Int(key string) int {
	return int(f.Int64(key))
}

func (f *formReader) Float(key string) float64 {
	raw := f.String(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		f.fail(key)
	}
	return v
}

func (f *formReader) Bool(key string) bool {
	switch f.String(key) {
	case "on", "true", "1":
		return true
	}
	return false
}

// Date parses YYYY-MM-DD, an empty field gives zero time
func (f *formReader) Date(key string) time.Time {
	raw := f.String(key)
	if raw == "" {
		return time.Time{}
	}
	v, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		f.fail(key)
	}
	return v
}

func (f *formReader) OptionalInt(key string) *int {
	if f.String(key) == "" {
		return nil
	}
	v := f.Int(key)
	return &v
}

func (f *formReader) OptionalFloat(key string) *float64 {
	if f.String(key) == "" {
		return nil
	}
	v := f.Float(key)
	return &v
}

func (f *formReader) OptionalString(key string) *string {
	v := f.String(key)
	if v == "" {
		return nil
	}
	return &v
}

func (f *formReader) OptionalDate(key string) *time.Time {
	if f.String(key) == "" {
		return nil
	}
	v := f.Date(key)
	return &v
}

func (f *formReader) Err() error {
	return f.err
}

func (f *formReader) fail(key string) {
	if f.err == nil {
		f.err = fmt.Errorf("invalid value of field %s", key)
	}
}
