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

package attribute

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictionaryTypedCheckers(t *testing.T) {
	a := assert.New(t)
	name := "any_attr_name"

	assertFunc := func(d Dictionary, value interface{}, ok bool) {
		err := d.Validate(map[string]interface{}{name: value})
		if ok {
			a.NoError(err)
		} else {
			a.Error(err)
		}
	}

	boolDict := Dictionary{}.Bool(name, false, "", nil)
	assertFunc(boolDict, "abc", false)
	assertFunc(boolDict, false, true)

	intDict := Dictionary{}.Int(name, 0, "", func(v int) error {
		if v == 3 {
			return fmt.Errorf("attribute %s cannot be 3", name)
		}
		return nil
	})
	assertFunc(intDict, "abc", false)
	assertFunc(intDict, 3, false)
	assertFunc(intDict, 0, true)

	floatDict := Dictionary{}.Float(name, nil, "", nil)
	assertFunc(floatDict, "abc", false)
	assertFunc(floatDict, -1.5, true)
	assertFunc(floatDict, 1, true) // ints widen to float

	stringDict := Dictionary{}.String(name, nil, "", func(v string) error {
		if v == "bad" {
			return fmt.Errorf("no")
		}
		return nil
	})
	assertFunc(stringDict, 1, false)
	assertFunc(stringDict, "bad", false)
	assertFunc(stringDict, "good", true)

	stringListDict := Dictionary{}.StringList(name, nil, "", nil)
	assertFunc(stringListDict, "abc", false)
	assertFunc(stringListDict, []string{"a"}, true)

	unknownDict := Dictionary{}.Unknown(name, nil, "", nil)
	assertFunc(unknownDict, 1, true)
	assertFunc(unknownDict, "abc", true)
}

func TestDictionaryValidate(t *testing.T) {
	a := assert.New(t)

	checker := func(i int) error {
		if i < 0 {
			return fmt.Errorf("some error")
		}
		return nil
	}
	tb := Dictionary{}.Int("a", 1, "attribute a", checker).Float("b", 1.0, "attribute b", nil)
	a.NoError(tb.Validate(map[string]interface{}{"a": 1}))
	a.EqualError(tb.Validate(map[string]interface{}{"a": -1}), "attribute a error: some error")
	a.EqualError(tb.Validate(map[string]interface{}{"_a": -1}), fmt.Sprintf(errUnsupportedAttribute, "_a"))
	a.EqualError(tb.Validate(map[string]interface{}{"a": 1.0}), "attribute a must be of type int, but got float64")
	a.NoError(tb.Validate(map[string]interface{}{"b": 1}))
	// Option names are case-insensitive, like the warehouse treats them.
	a.NoError(tb.Validate(map[string]interface{}{"A": 1}))
}

func TestDictionaryUpdateAndDescribe(t *testing.T) {
	a := assert.New(t)

	common := Dictionary{}.Int("a", 1, "attribute a", nil)
	d := Dictionary{}.String("b", "x", "attribute b", nil).Update(common)
	a.Len(d, 2)

	rows := d.Describe()
	a.Equal([][]string{
		{"a", "int", "1", "attribute a"},
		{"b", "string", "x", "attribute b"},
	}, rows)
}

func TestBQMLTrainingOptions(t *testing.T) {
	a := assert.New(t)

	a.NoError(BQMLTrainingOptions.Validate(map[string]interface{}{
		"model_type":     "boosted_tree_regressor",
		"max_iterations": 50,
		"learn_rate":     0.3,
		"early_stop":     true,
	}))
	// model_type choices are matched case-insensitively.
	a.NoError(BQMLTrainingOptions.Validate(map[string]interface{}{"model_type": "LINEAR_REG"}))
	a.Error(BQMLTrainingOptions.Validate(map[string]interface{}{"model_type": "no_such_model"}))
	a.Error(BQMLTrainingOptions.Validate(map[string]interface{}{"max_iterations": 0}))
	a.Error(BQMLTrainingOptions.Validate(map[string]interface{}{"data_split_eval_fraction": 1.5}))
	a.Error(BQMLTrainingOptions.Validate(map[string]interface{}{"not_an_option": 1}))
}
