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

// Package warehouse submits SQL statements as jobs to a cloud data warehouse
// and hands the materialized results back to the caller.  The production
// implementation talks to BigQuery; tests use the Fake runner.
package warehouse

import (
	"context"
	"fmt"
)

// Row is one result row, keyed by column name.
type Row map[string]interface{}

// TableRef identifies the table a finished job materialized its result into.
type TableRef struct {
	Project string
	Dataset string
	Table   string
}

// String returns the fully-qualified "project.dataset.table" name.
func (t *TableRef) String() string {
	return fmt.Sprintf("%s.%s.%s", t.Project, t.Dataset, t.Table)
}

// Job is a handle to a completed warehouse job.
type Job interface {
	// Result returns all rows produced by the job.
	Result(ctx context.Context) ([]Row, error)
	// Destination returns the table the job wrote its result to, or nil
	// if the warehouse did not materialize one.
	Destination() *TableRef
}

// Runner submits a SQL statement as a named warehouse job and blocks until
// the job completes.  The job is tagged with jobIDPrefix so submitted work
// can be audited and attributed externally.  Errors from the warehouse
// (SQL syntax, authentication, quota, job failure) are propagated as-is.
type Runner interface {
	RunAndWait(ctx context.Context, query, jobIDPrefix string) (Job, error)
}
