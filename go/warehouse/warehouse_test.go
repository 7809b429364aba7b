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
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableRefString(t *testing.T) {
	a := assert.New(t)
	ref := &TableRef{Project: "proj", Dataset: "tmp", Table: "anon123"}
	a.Equal("proj.tmp.anon123", ref.String())
}

func TestFakeRecordsJobs(t *testing.T) {
	a := assert.New(t)
	f := &Fake{
		Rows: []Row{{"x": int64(1)}},
		Dest: &TableRef{Project: "p", Dataset: "d", Table: "t"},
	}

	job, err := f.RunAndWait(context.Background(), "SELECT 1", "prefix_")
	a.NoError(err)
	a.Equal([]string{"SELECT 1"}, f.Queries)
	a.Equal([]string{"prefix_"}, f.Prefixes)
	a.Equal("SELECT 1", f.LastQuery())

	rows, err := job.Result(context.Background())
	a.NoError(err)
	a.Len(rows, 1)
	a.Equal(int64(1), rows[0]["x"])
	a.Equal("p.d.t", job.Destination().String())
}

func TestFakePropagatesErrors(t *testing.T) {
	a := assert.New(t)
	f := &Fake{Err: fmt.Errorf("quota exceeded")}
	_, err := f.RunAndWait(context.Background(), "SELECT 1", "prefix_")
	a.EqualError(err, "quota exceeded")
	// The failed submission is still recorded for inspection.
	a.Equal([]string{"SELECT 1"}, f.Queries)
}

func TestClientIsLazy(t *testing.T) {
	a := assert.New(t)
	// Constructing a client must not dial the warehouse.
	c := NewClient("some-project")
	a.Nil(c.bq)
	a.NoError(c.Close())
}
