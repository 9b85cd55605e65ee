// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package localdate

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func writeField(out *strings.Builder, undefined bool, v int, pad bool) {
	if undefined {
		out.WriteString("NaN")
		return
	}
	if pad && v < 10 {
		out.WriteByte('0')
	}
	out.WriteString(strconv.Itoa(v))
}

// String returns the date in YYYY-MM-DD format. The month and day are
// zero padded to two digits, the year is not padded at all, so year 5 is
// formatted as 5-04-10. Undefined fields are formatted as NaN.
func (d LocalDate) String() string {
	var out strings.Builder
	writeField(&out, d.undefined&yearUndefined != 0, d.year, false)
	out.WriteByte('-')
	writeField(&out, d.undefined&monthUndefined != 0, d.month, true)
	out.WriteByte('-')
	writeField(&out, d.undefined&dayUndefined != 0, d.day, true)
	return out.String()
}

// ToTime returns midnight on the date in the local time zone.
func (d LocalDate) ToTime() time.Time {
	return d.ToTimeIn(time.Local)
}

// ToTimeIn returns midnight on the date in the given location. Out of
// range months and days are normalized as per time.Date. The zero
// time.Time is returned if the date is undefined.
func (d LocalDate) ToTimeIn(loc *time.Location) time.Time {
	if !d.Defined() {
		return time.Time{}
	}
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, loc)
}

// unmarshalString creates a date from an encoded string. Unlike
// FromISOString an empty string yields an undefined date rather than today.
func unmarshalString(s string) LocalDate {
	if len(s) == 0 {
		return Undefined()
	}
	return FromISOString(s)
}

// MarshalText implements encoding.TextMarshaler.
func (d LocalDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is
// interpreted as per FromISOString and no validation is performed.
func (d *LocalDate) UnmarshalText(text []byte) error {
	*d = unmarshalString(string(text))
	return nil
}

// MarshalJSON implements json.Marshaler, encoding the date as a string
// in the format returned by String.
func (d LocalDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves the
// date unchanged; any other non-string value is an error.
func (d *LocalDate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a JSON string: %s: %w", data, ErrInvalidDate)
	}
	*d = unmarshalString(s)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d LocalDate) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *LocalDate) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %v: date must be a scalar: %w", value.Line, ErrInvalidDate)
	}
	*d = unmarshalString(value.Value)
	return nil
}
