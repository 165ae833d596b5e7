// Package inputs declares the form fields of both dashboards and collects their
// current values from a request or configuration.
package inputs

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/finance-dashboard/internal/financials"
	"github.com/iwvelando/finance-dashboard/pkg/mathutil"
)

// ErrInvalidField is returned when a submitted field value is not a number.
var ErrInvalidField = errors.New("invalid field value")

// Field is the widget configuration of one numeric input.
type Field struct {
	Key     string            `json:"key"`
	Label   string            `json:"label"`
	Metric  financials.Metric `json:"metric"`
	Period  financials.Period `json:"-"`
	Min     float64           `json:"min,omitempty"`
	Max     float64           `json:"max,omitempty"`
	Default float64           `json:"default"`
	Step    float64           `json:"step"`

	// Bounded is false for free-form number inputs such as EPS.
	Bounded bool `json:"bounded"`
}

// Clamp limits value to the field range. Unbounded fields return value unchanged.
func (f Field) Clamp(value float64) float64 {
	if !f.Bounded {
		return value
	}
	return mathutil.Clamp(value, f.Min, f.Max)
}

// Source supplies raw field values by key. url.Values satisfies it.
type Source interface {
	Get(key string) string
}

// MapSource adapts already-numeric values, e.g. from a config file or JSON body.
type MapSource map[string]float64

// Get returns the formatted value for key, or an empty string when absent.
func (m MapSource) Get(key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Values maps field keys to their collected values.
type Values map[string]float64

// FieldSet is the ordered collection of fields behind one dashboard form.
type FieldSet struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Lookup returns the field with the given key.
func (s FieldSet) Lookup(key string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Key == key {
			return field, true
		}
	}
	return Field{}, false
}

// Defaults returns every field at its default value.
func (s FieldSet) Defaults() Values {
	values := make(Values, len(s.Fields))
	for _, field := range s.Fields {
		values[field.Key] = field.Default
	}
	return values
}

// Collect reads the current value of every field from src. Missing or blank
// values fall back to the field default; bounded fields are clamped to their range.
// NaN and infinities are rejected like any other non-numeric value.
func (s FieldSet) Collect(src Source) (Values, error) {
	values := make(Values, len(s.Fields))
	for _, field := range s.Fields {
		raw := ""
		if src != nil {
			raw = strings.TrimSpace(src.Get(field.Key))
		}
		if raw == "" {
			values[field.Key] = field.Default
			continue
		}

		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s (%s=%q): %w", field.Label, field.Key, raw, ErrInvalidField)
		}
		values[field.Key] = field.Clamp(v)
	}
	return values, nil
}

// Snapshot gathers the values of the fields that belong to period into a
// MetricSnapshot.
func (s FieldSet) Snapshot(values Values, period financials.Period) financials.MetricSnapshot {
	metrics := make(map[financials.Metric]float64)
	for _, field := range s.Fields {
		if field.Period != period {
			continue
		}
		if v, ok := values[field.Key]; ok {
			metrics[field.Metric] = v
		}
	}
	return financials.NewMetricSnapshot(metrics)
}

// UnknownKeys returns the keys that no field in the set declares, in input order.
func (s FieldSet) UnknownKeys(keys []string) []string {
	var unknown []string
	for _, key := range keys {
		if _, ok := s.Lookup(key); !ok {
			unknown = append(unknown, key)
		}
	}
	return unknown
}
