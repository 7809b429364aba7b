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

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseAttrs turns repeated -a key=value flags into a typed options map.
// Values parse as bool, int or float when they look like one; single-quoted
// values are always strings; comma-separated bracket lists become []string.
func parseAttrs(attrs []string) (map[string]interface{}, error) {
	parsed := make(map[string]interface{}, len(attrs))
	for _, kv := range attrs {
		sep := strings.Index(kv, "=")
		if sep <= 0 {
			return nil, fmt.Errorf("malformed attribute %q, expecting key=value", kv)
		}
		key, value := kv[:sep], kv[sep+1:]
		parsed[key] = parseAttrValue(value)
	}
	return parsed, nil
}

func parseAttrValue(value string) interface{} {
	if len(value) >= 2 && strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'") {
		return value[1 : len(value)-1]
	}
	if len(value) >= 2 && strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		var list []string
		for _, e := range strings.Split(value[1:len(value)-1], ",") {
			e = strings.TrimSpace(e)
			e = strings.Trim(e, "'")
			if e != "" {
				list = append(list, e)
			}
		}
		return list
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}
