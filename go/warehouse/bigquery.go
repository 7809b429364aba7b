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
	"sync"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"bqflow.org/bqflow/go/log"
)

// Client is the production Runner.  It dials BigQuery lazily on first use
// and keeps the connection for the Client's lifetime.  A Client is owned by
// its creator; there is no process-wide singleton.
type Client struct {
	project string
	opts    []option.ClientOption

	mu sync.Mutex
	bq *bigquery.Client
}

// NewClient returns a Client that will run jobs in the given GCP project.
// Credentials are resolved by the BigQuery SDK, typically from
// GOOGLE_APPLICATION_CREDENTIALS.
func NewClient(project string, opts ...option.ClientOption) *Client {
	return &Client{project: project, opts: opts}
}

func (c *Client) connect(ctx context.Context) (*bigquery.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bq != nil {
		return c.bq, nil
	}
	bq, err := bigquery.NewClient(ctx, c.project, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to BigQuery: %v", err)
	}
	c.bq = bq
	return bq, nil
}

// Close releases the underlying BigQuery connection, if one was dialed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bq == nil {
		return nil
	}
	err := c.bq.Close()
	c.bq = nil
	return err
}

// RunAndWait implements Runner.  The submitted job is named
// "<jobIDPrefix><uuid>" and the call blocks until the job finishes.  Job
// errors are returned untranslated.
func (c *Client) RunAndWait(ctx context.Context, query, jobIDPrefix string) (Job, error) {
	bq, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	q := bq.Query(query)
	q.JobID = jobIDPrefix + uuid.New().String()

	logger := log.WithFields(log.Fields{"package": "warehouse", "jobID": q.JobID})
	logger.Debugf("submitting query:\n%s", query)

	job, err := q.Run(ctx)
	if err != nil {
		return nil, err
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, err
	}
	if err := status.Err(); err != nil {
		return nil, err
	}
	logger.Infof("job done")
	return &bigqueryJob{job: job}, nil
}

type bigqueryJob struct {
	job *bigquery.Job
}

// Result reads all rows of the completed job.
func (j *bigqueryJob) Result(ctx context.Context) ([]Row, error) {
	it, err := j.job.Read(ctx)
	if err != nil {
		return nil, err
	}
	var rows []Row
	for {
		var vals map[string]bigquery.Value
		err := it.Next(&vals)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(Row, len(vals))
		for k, v := range vals {
			row[k] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Destination reports the table the query result was materialized into.
// BigQuery records it in the resolved job configuration, also for queries
// that did not name an explicit destination.
func (j *bigqueryJob) Destination() *TableRef {
	cfg, err := j.job.Config()
	if err != nil {
		return nil
	}
	qcfg, ok := cfg.(*bigquery.QueryConfig)
	if !ok || qcfg.Dst == nil {
		return nil
	}
	return &TableRef{
		Project: qcfg.Dst.ProjectID,
		Dataset: qcfg.Dst.DatasetID,
		Table:   qcfg.Dst.TableID,
	}
}
