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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAttrs(t *testing.T) {
	a := assert.New(t)

	attrs, err := parseAttrs([]string{
		"model_type='boosted_tree_regressor'",
		"max_iterations=50",
		"learn_rate=0.3",
		"early_stop=true",
		"data_split_col=is_eval",
		"input_label_cols=['y']",
	})
	a.NoError(err)
	a.Equal(map[string]interface{}{
		"model_type":       "boosted_tree_regressor",
		"max_iterations":   50,
		"learn_rate":       0.3,
		"early_stop":       true,
		"data_split_col":   "is_eval",
		"input_label_cols": []string{"y"},
	}, attrs)
}

func TestParseAttrsMalformed(t *testing.T) {
	a := assert.New(t)

	_, err := parseAttrs([]string{"no_equals_sign"})
	a.Error(err)
	_, err = parseAttrs([]string{"=value"})
	a.Error(err)
}

func TestParseAttrValueKeepsEqualsInValue(t *testing.T) {
	a := assert.New(t)

	attrs, err := parseAttrs([]string{"expr=a=b"})
	a.NoError(err)
	a.Equal("a=b", attrs["expr"])
}

func TestSplitColumns(t *testing.T) {
	a := assert.New(t)

	a.Equal([]string{"a", "b"}, splitColumns("a, b"))
	a.Equal([]string{"a"}, splitColumns("a"))
	a.Nil(splitColumns(""))
}
