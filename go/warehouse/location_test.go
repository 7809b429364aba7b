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

package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationSelectQuery(t *testing.T) {
	a := assert.New(t)

	l := &Location{
		Columns:  []string{"sepal_length", "sepal_width"},
		IDColumn: "id",
		Table:    "proj.iris.train",
	}
	a.Equal("SELECT sepal_length, sepal_width FROM `proj.iris.train`", l.SelectQuery(false))
	a.Equal("SELECT id, sepal_length, sepal_width FROM `proj.iris.train`", l.SelectQuery(true))
}

func TestLocationSelectQueryOrderAndLimit(t *testing.T) {
	a := assert.New(t)

	l := &Location{
		Columns:  []string{"class"},
		IDColumn: "id",
		Table:    "proj.iris.train",
		OrderBy:  []string{"petal_length", "id"},
		Limit:    100,
	}
	a.Equal("SELECT class FROM `proj.iris.train` ORDER BY petal_length, id LIMIT 100",
		l.SelectQuery(false))
}

func TestLocationSelectQueryDoesNotMutate(t *testing.T) {
	a := assert.New(t)

	l := &Location{Columns: []string{"x"}, IDColumn: "id", Table: "p.d.t"}
	_ = l.SelectQuery(true)
	a.Equal([]string{"x"}, l.Columns)
}

func TestLocationSelectQueryNoIDColumn(t *testing.T) {
	a := assert.New(t)

	l := &Location{Columns: []string{"x", "y"}, Table: "p.d.t"}
	a.Equal("SELECT x, y FROM `p.d.t`", l.SelectQuery(true))
}
