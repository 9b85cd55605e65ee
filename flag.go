// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package localdate

// Flag represents a LocalDate that can be used as a flag.Value. The
// date may be expressed in any of the formats accepted by Parse.
type Flag struct {
	opt   string
	value LocalDate
	set   bool
}

// Set implements flag.Value.
func (df *Flag) Set(v string) error {
	d, err := Parse(v)
	if err != nil {
		return err
	}
	df.opt = v
	df.value = d
	df.set = true
	return nil
}

// String implements flag.Value.
func (df *Flag) String() string {
	return df.opt
}

// Get implements flag.Getter.
func (df *Flag) Get() any {
	return df.value
}

// Date returns the date that was set, or Undefined() if none was set.
func (df *Flag) Date() LocalDate {
	if !df.set {
		return Undefined()
	}
	return df.value
}

// IsDefault returns true if the value has not been set.
func (df *Flag) IsDefault() bool {
	return !df.set
}
