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

package bqml

import (
	"fmt"
	"sort"
	"strings"
)

// optionsClause renders the training options map as the body of an OPTIONS
// clause: one "key=value" per line, joined with ",\n", keys sorted for a
// deterministic statement.
func optionsClause(options map[string]interface{}) string {
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	clauses := make([]string, 0, len(keys))
	for _, k := range keys {
		clauses = append(clauses, fmt.Sprintf("%s=%s", k, optionValue(options[k])))
	}
	return strings.Join(clauses, ",\n")
}

// optionValue renders one option value in BigQuery ML syntax: strings are
// single-quoted, string lists become ['a', 'b'], numbers and booleans stay
// bare.
func optionValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return "'" + v + "'"
	case []string:
		quoted := make([]string, 0, len(v))
		for _, s := range v {
			quoted = append(quoted, "'"+s+"'")
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// hasKeyFold reports whether the map holds key under any capitalization.
// It normalizes each key to lower case explicitly rather than relying on a
// case-folding map type.
func hasKeyFold(m map[string]interface{}, key string) bool {
	key = strings.ToLower(key)
	for k := range m {
		if strings.ToLower(k) == key {
			return true
		}
	}
	return false
}
