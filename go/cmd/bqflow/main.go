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

// Command bqflow trains, scores and inspects BigQuery ML models from the
// command line, using the same operator the training framework uses.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	docopt "github.com/docopt/docopt-go"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"bqflow.org/bqflow/go/attribute"
	"bqflow.org/bqflow/go/bqml"
	"bqflow.org/bqflow/go/log"
	"bqflow.org/bqflow/go/warehouse"
)

// dotEnvFilename is the default environment file loaded before anything else.
const dotEnvFilename = ".bqflow_env"

const usage = `BQFlow Command-line Tool.

Usage:
    bqflow train [options] --train-table=<t> --eval-table=<t> --features=<cols> --label=<col> [--attr=<kv>]...
    bqflow predict [options] --data-table=<t> --features=<cols> --label=<col>
    bqflow metrics [options]
    bqflow importance [options]
    bqflow options
    bqflow -h | --help

Options:
    -h, --help                    print this screen
    -p, --project=<project>       GCP project running the warehouse jobs
    -d, --dataset=<dataset>       dataset holding the model
    -m, --model=<model>           model identifier
    -V, --model-version=<ver>     model version [default: 1]
        --id-column=<col>         unique row identifier column [default: id]
        --order-by=<cols>         comma-separated ordering columns
        --limit=<n>               row limit applied to the input tables
        --env-file=<file>         config file in KEY=VAL format

Train Options:
        --train-table=<t>         fully-qualified table of the training split
        --eval-table=<t>          fully-qualified table of the evaluation split
        --features=<cols>         comma-separated feature columns
        --label=<col>             label column
    -a, --attr=<kv>               model option as key=value, repeatable

Predict Options:
        --data-table=<t>          fully-qualified table of the rows to score`

type options struct {
	Train, Predict, Metrics, Importance, Options bool

	Project      string
	Dataset      string
	Model        string
	ModelVersion string `docopt:"--model-version"`
	IDColumn     string `docopt:"--id-column"`
	OrderBy      string `docopt:"--order-by"`
	Limit        int
	EnvFile      string

	TrainTable string `docopt:"--train-table"`
	EvalTable  string `docopt:"--eval-table"`
	DataTable  string `docopt:"--data-table"`
	Features   string
	Label      string
	Attr       []string
}

func splitColumns(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		cols = append(cols, strings.TrimSpace(p))
	}
	return cols
}

func newOperator(opts *options) (*bqml.Operator, error) {
	if opts.Project == "" || opts.Dataset == "" || opts.Model == "" {
		return nil, fmt.Errorf("--project, --dataset and --model are required")
	}
	return bqml.New(opts.Project, opts.Dataset, nil), nil
}

func train(opts *options) error {
	op, err := newOperator(opts)
	if err != nil {
		return err
	}
	attrs, err := parseAttrs(opts.Attr)
	if err != nil {
		return err
	}
	if err := attribute.BQMLTrainingOptions.Validate(attrs); err != nil {
		return err
	}
	if err := op.InstantiateModel(opts.Model, opts.ModelVersion, attrs); err != nil {
		return err
	}
	features := splitColumns(opts.Features)
	trainX := &warehouse.Location{Columns: features, IDColumn: opts.IDColumn,
		Table: opts.TrainTable, OrderBy: splitColumns(opts.OrderBy), Limit: opts.Limit}
	trainY := &warehouse.Location{Columns: []string{opts.Label}, Table: opts.TrainTable}
	evalX := &warehouse.Location{Columns: features, IDColumn: opts.IDColumn,
		Table: opts.EvalTable, OrderBy: splitColumns(opts.OrderBy), Limit: opts.Limit}
	evalY := &warehouse.Location{Columns: []string{opts.Label}, Table: opts.EvalTable}
	if err := op.Fit(context.Background(), trainX, trainY, evalX, evalY); err != nil {
		return err
	}
	fmt.Printf("trained model %s\n", op.ModelPath())
	return nil
}

func predict(opts *options) error {
	op, err := newOperator(opts)
	if err != nil {
		return err
	}
	attrs := map[string]interface{}{"input_label_cols": []string{opts.Label}}
	if err := op.InstantiateModel(opts.Model, opts.ModelVersion, attrs); err != nil {
		return err
	}
	data := &warehouse.Location{Columns: splitColumns(opts.Features), IDColumn: opts.IDColumn,
		Table: opts.DataTable, OrderBy: splitColumns(opts.OrderBy), Limit: opts.Limit}
	dest, err := op.Predict(context.Background(), data)
	if err != nil {
		return err
	}
	fmt.Printf("predictions written to %s (columns %s, %s)\n",
		dest.Table, dest.IDColumn, strings.Join(dest.Columns, ", "))
	return nil
}

func metrics(opts *options) error {
	op, err := newOperator(opts)
	if err != nil {
		return err
	}
	if err := op.InstantiateModel(opts.Model, opts.ModelVersion, nil); err != nil {
		return err
	}
	records, err := op.GetTrainMetrics(context.Background())
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Step", "Loss", "Eval Loss", "Duration (ms)", "Learning Rate"})
	for _, r := range records {
		table.Append([]string{
			strconv.FormatInt(r.Step, 10),
			strconv.FormatFloat(r.Metrics.Loss, 'g', -1, 64),
			strconv.FormatFloat(r.Metrics.EvalLoss, 'g', -1, 64),
			strconv.FormatInt(r.Metrics.DurationMs, 10),
			strconv.FormatFloat(r.Metrics.LearningRate, 'g', -1, 64),
		})
	}
	table.Render()
	return nil
}

func importance(opts *options) error {
	op, err := newOperator(opts)
	if err != nil {
		return err
	}
	if err := op.InstantiateModel(opts.Model, opts.ModelVersion, nil); err != nil {
		return err
	}
	features, err := op.GetFeatureImportance(context.Background())
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Feature", "Weight", "Gain", "Cover"})
	for _, f := range features {
		table.Append([]string{
			f.Feature,
			strconv.FormatFloat(f.Weight, 'g', -1, 64),
			strconv.FormatFloat(f.Gain, 'g', -1, 64),
			strconv.FormatFloat(f.Cover, 'g', -1, 64),
		})
	}
	table.Render()
	return nil
}

func listOptions() error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Type", "Default", "Description"})
	for _, row := range attribute.BQMLTrainingOptions.Describe() {
		table.Append(row)
	}
	table.Render()
	return nil
}

func process(opts *options) error {
	switch {
	case opts.Train:
		return train(opts)
	case opts.Predict:
		return predict(opts)
	case opts.Metrics:
		return metrics(opts)
	case opts.Importance:
		return importance(opts)
	case opts.Options:
		return listOptions()
	}
	return fmt.Errorf("no command given")
}

func initEnvFromFile(path string) {
	// Missing env files are fine; flags and the ambient environment win.
	_ = godotenv.Load(path)
}

func main() {
	parsed, err := docopt.ParseArgs(usage, nil, "1.0.0")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	opts := &options{}
	if err := parsed.Bind(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	envFilePath := opts.EnvFile
	if envFilePath == "" {
		envFilePath = filepath.Join(os.Getenv("HOME"), dotEnvFilename)
	}
	initEnvFromFile(envFilePath)
	log.InitLogger(os.Getenv("BQFLOW_LOG_FILE"), log.OrderedTextFormatter)

	if err := process(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
