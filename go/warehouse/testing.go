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

import "context"

// Fake is an in-memory Runner for tests.  It records every submitted
// statement and serves canned rows and destinations instead of talking to a
// real warehouse.
type Fake struct {
	// Queries holds the SQL of each submitted job, in submission order.
	Queries []string
	// Prefixes holds the job ID prefix of each submitted job.
	Prefixes []string
	// Rows is returned as the result of every job.
	Rows []Row
	// Dest is returned as the destination of every job.
	Dest *TableRef
	// Err, when set, fails RunAndWait.
	Err error
}

// RunAndWait implements Runner.
func (f *Fake) RunAndWait(ctx context.Context, query, jobIDPrefix string) (Job, error) {
	f.Queries = append(f.Queries, query)
	f.Prefixes = append(f.Prefixes, jobIDPrefix)
	if f.Err != nil {
		return nil, f.Err
	}
	return &fakeJob{rows: f.Rows, dest: f.Dest}, nil
}

// LastQuery returns the SQL of the most recently submitted job, or "".
func (f *Fake) LastQuery() string {
	if len(f.Queries) == 0 {
		return ""
	}
	return f.Queries[len(f.Queries)-1]
}

type fakeJob struct {
	rows []Row
	dest *TableRef
}

func (j *fakeJob) Result(ctx context.Context) ([]Row, error) { return j.rows, nil }

func (j *fakeJob) Destination() *TableRef { return j.dest }
