package models

import (
	"strconv"
	"strings"
)

// InvoiceLine is one purchased item as read from the invoice table: an
// ordered set of field names mapped to text values. Field order follows the
// source columns and is kept for export.
type InvoiceLine struct {
	keys   []string
	values map[string]string
}

// NewInvoiceLine builds a line from alternating key/value pairs. A trailing
// key without a value is ignored.
func NewInvoiceLine(kv ...string) InvoiceLine {
	line := InvoiceLine{}
	for i := 0; i+1 < len(kv); i += 2 {
		line.Set(kv[i], kv[i+1])
	}
	return line
}

// Set stores value under key. A new key is appended to the field order; an
// existing key keeps its position.
func (l *InvoiceLine) Set(key, value string) {
	if l.values == nil {
		l.values = make(map[string]string)
	}
	if _, exists := l.values[key]; !exists {
		l.keys = append(l.keys, key)
	}
	l.values[key] = value
}

// Get returns the value stored under key.
func (l InvoiceLine) Get(key string) (string, bool) {
	v, ok := l.values[key]
	return v, ok
}

// Keys returns the field names in order.
func (l InvoiceLine) Keys() []string {
	out := make([]string, len(l.keys))
	copy(out, l.keys)
	return out
}

// Len returns the number of fields.
func (l InvoiceLine) Len() int {
	return len(l.keys)
}

// Clone returns an independent copy of the line.
func (l InvoiceLine) Clone() InvoiceLine {
	c := InvoiceLine{
		keys:   make([]string, len(l.keys)),
		values: make(map[string]string, len(l.values)),
	}
	copy(c.keys, l.keys)
	for k, v := range l.values {
		c.values[k] = v
	}
	return c
}

// Description returns item_description, or "Unknown" when the field is
// absent. A present but empty description is returned as is.
func (l InvoiceLine) Description() string {
	if v, ok := l.values[ColumnItemDescription]; ok {
		return v
	}
	return DefaultDescription
}

// Quantity parses the quantity field, falling back to 1.0 when it is absent
// or not a number. It never fails.
func (l InvoiceLine) Quantity() float64 {
	v, ok := l.values[ColumnQuantity]
	if !ok {
		return DefaultQuantity
	}
	return ParseFloatDefault(v, DefaultQuantity)
}

// ParseFloat parses a real number the way spreadsheet exports write them:
// surrounding whitespace is ignored.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ParseFloatDefault is ParseFloat with a fallback value instead of an error.
func ParseFloatDefault(s string, fallback float64) float64 {
	f, err := ParseFloat(s)
	if err != nil {
		return fallback
	}
	return f
}
