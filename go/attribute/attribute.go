// Copyright 2026 The BQFlow Authors. All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package attribute documents and validates model training options before
// they are handed to the warehouse.  The bqml operator itself performs no
// validation; pre-flight checks belong to callers such as the CLI.
package attribute

import (
	"fmt"
	"sort"
	"strings"
)

const errUnsupportedAttribute = "unsupported attribute %v"

type description struct {
	name         string
	typ          string
	defaultValue interface{}
	doc          string
	checker      func(interface{}) error
}

// Dictionary maps attribute names to their type, default, doc string and
// optional value checker.  Build one with the chained typed setters:
//
//	d := attribute.Dictionary{}.
//		Int("max_iterations", 20, "Maximum training iterations.", nil).
//		String("model_type", nil, "The model type.", nil)
type Dictionary map[string]*description

// Bool adds a boolean attribute.
func (d Dictionary) Bool(name string, value interface{}, doc string, checker func(bool) error) Dictionary {
	d[name] = &description{name, "bool", value, doc, func(v interface{}) error {
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("attribute %s must be of type bool, but got %T", name, v)
		}
		if checker != nil {
			return wrapCheckerError(name, checker(b))
		}
		return nil
	}}
	return d
}

// Int adds an integer attribute.
func (d Dictionary) Int(name string, value interface{}, doc string, checker func(int) error) Dictionary {
	d[name] = &description{name, "int", value, doc, func(v interface{}) error {
		var i int
		switch n := v.(type) {
		case int:
			i = n
		case int64:
			i = int(n)
		default:
			return fmt.Errorf("attribute %s must be of type int, but got %T", name, v)
		}
		if checker != nil {
			return wrapCheckerError(name, checker(i))
		}
		return nil
	}}
	return d
}

// Float adds a float attribute.  Integer values are accepted and widened.
func (d Dictionary) Float(name string, value interface{}, doc string, checker func(float64) error) Dictionary {
	d[name] = &description{name, "float", value, doc, func(v interface{}) error {
		var f float64
		switch n := v.(type) {
		case float64:
			f = n
		case float32:
			f = float64(n)
		case int:
			f = float64(n)
		default:
			return fmt.Errorf("attribute %s must be of type float, but got %T", name, v)
		}
		if checker != nil {
			return wrapCheckerError(name, checker(f))
		}
		return nil
	}}
	return d
}

// String adds a string attribute.
func (d Dictionary) String(name string, value interface{}, doc string, checker func(string) error) Dictionary {
	d[name] = &description{name, "string", value, doc, func(v interface{}) error {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("attribute %s must be of type string, but got %T", name, v)
		}
		if checker != nil {
			return wrapCheckerError(name, checker(s))
		}
		return nil
	}}
	return d
}

// StringList adds a list-of-strings attribute.
func (d Dictionary) StringList(name string, value interface{}, doc string, checker func([]string) error) Dictionary {
	d[name] = &description{name, "[]string", value, doc, func(v interface{}) error {
		l, ok := v.([]string)
		if !ok {
			return fmt.Errorf("attribute %s must be of type []string, but got %T", name, v)
		}
		if checker != nil {
			return wrapCheckerError(name, checker(l))
		}
		return nil
	}}
	return d
}

// Unknown adds an attribute without a type constraint.
func (d Dictionary) Unknown(name string, value interface{}, doc string, checker func(interface{}) error) Dictionary {
	d[name] = &description{name, "unknown", value, doc, func(v interface{}) error {
		if checker != nil {
			return wrapCheckerError(name, checker(v))
		}
		return nil
	}}
	return d
}

// Update merges other into d and returns d.
func (d Dictionary) Update(other Dictionary) Dictionary {
	for k, v := range other {
		d[k] = v
	}
	return d
}

// Validate checks every attribute in attrs against the dictionary.
// Attribute names are matched case-insensitively, as the warehouse treats
// option names case-insensitively too.
func (d Dictionary) Validate(attrs map[string]interface{}) error {
	for k, v := range attrs {
		desc, ok := d[strings.ToLower(k)]
		if !ok {
			return fmt.Errorf(errUnsupportedAttribute, k)
		}
		if err := desc.checker(v); err != nil {
			return err
		}
	}
	return nil
}

// Describe returns one row per attribute, sorted by name, each row holding
// name, type, default and doc.  Callers render the rows as they see fit.
func (d Dictionary) Describe() [][]string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		desc := d[name]
		def := ""
		if desc.defaultValue != nil {
			def = fmt.Sprintf("%v", desc.defaultValue)
		}
		rows = append(rows, []string{desc.name, desc.typ, def, desc.doc})
	}
	return rows
}

func wrapCheckerError(name string, err error) error {
	if err != nil {
		return fmt.Errorf("attribute %s error: %v", name, err)
	}
	return nil
}

// IntLowerBoundChecker returns a checker that rejects values below lower.
func IntLowerBoundChecker(lower int, includeLower bool) func(int) error {
	return func(v int) error {
		if v > lower || includeLower && v == lower {
			return nil
		}
		return fmt.Errorf("must be greater than %v", lower)
	}
}

// FloatLowerBoundChecker returns a checker that rejects values below lower.
func FloatLowerBoundChecker(lower float64, includeLower bool) func(float64) error {
	return func(v float64) error {
		if v > lower || includeLower && v == lower {
			return nil
		}
		return fmt.Errorf("must be greater than %v", lower)
	}
}

// FloatRangeChecker returns a checker that keeps values inside [lower, upper].
func FloatRangeChecker(lower, upper float64, includeLower, includeUpper bool) func(float64) error {
	return func(v float64) error {
		if e := FloatLowerBoundChecker(lower, includeLower)(v); e != nil {
			return e
		}
		if v < upper || includeUpper && v == upper {
			return nil
		}
		return fmt.Errorf("must be less than %v", upper)
	}
}

// StringChoicesChecker returns a checker that accepts only the given
// choices, compared case-insensitively.
func StringChoicesChecker(choices ...string) func(string) error {
	return func(v string) error {
		for _, c := range choices {
			if strings.EqualFold(c, v) {
				return nil
			}
		}
		return fmt.Errorf("should be one of %v, but got %s", choices, v)
	}
}
