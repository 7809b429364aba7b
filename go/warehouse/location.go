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
	"fmt"
	"strings"
)

// Location describes a selectable subset of a warehouse table or view: the
// columns to read, the unique identifier column, the fully-qualified table
// name, and an optional row ordering and limit.  A Location is a value; do
// not mutate it after construction.
type Location struct {
	// Columns is the ordered list of column names to select, not
	// including IDColumn.
	Columns []string
	// IDColumn names the column that uniquely identifies a row.
	IDColumn string
	// Table is the fully-qualified table name, e.g. "proj.dataset.table".
	Table string
	// OrderBy lists the columns of the ORDER BY clause, outermost first.
	// Empty means no ordering.
	OrderBy []string
	// Limit caps the number of rows.  Zero means no limit.
	Limit int
}

// SelectQuery renders the Location as a SELECT statement.  When includeID
// is true the identifier column is selected first, ahead of Columns.
func (l *Location) SelectQuery(includeID bool) string {
	cols := l.Columns
	if includeID && l.IDColumn != "" {
		cols = append([]string{l.IDColumn}, l.Columns...)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM `%s`", strings.Join(cols, ", "), l.Table)
	if len(l.OrderBy) > 0 {
		fmt.Fprintf(&b, " ORDER BY %s", strings.Join(l.OrderBy, ", "))
	}
	if l.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", l.Limit)
	}
	return b.String()
}
