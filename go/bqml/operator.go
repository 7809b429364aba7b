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

// Package bqml implements the modelop.Operator contract on top of BigQuery
// ML.  Training, prediction and evaluation run entirely inside the
// warehouse; this package only generates the SQL statements, submits them as
// jobs, and maps result rows back into metric records.
package bqml

import (
	"bytes"
	"context"
	"fmt"

	"bqflow.org/bqflow/go/modelop"
	"bqflow.org/bqflow/go/warehouse"
)

// JobIDPrefix tags every job this package submits, so warehouse-side
// auditing can attribute the work.
const JobIDPrefix = "bqflow_model_"

// Operator trains and serves one named, versioned BigQuery ML model.  It is
// synchronous: every method submits at most one job and blocks until the
// warehouse reports completion.  Concurrent use of distinct Operators
// against distinct model paths is safe; concurrent Fit calls on the same
// model path race on CREATE OR REPLACE and are not guarded against.
type Operator struct {
	project string
	dataset string
	runner  warehouse.Runner

	modelID        string
	modelVersion   string
	modelIDVersion string
	sqlModelPath   string
	options        map[string]interface{}
}

var _ modelop.Operator = (*Operator)(nil)

// New returns an Operator that runs jobs in project and keeps models in
// dataset.  A nil runner defaults to a lazily-dialed BigQuery client owned
// by the returned Operator.
func New(project, dataset string, runner warehouse.Runner) *Operator {
	if runner == nil {
		runner = warehouse.NewClient(project)
	}
	return &Operator{project: project, dataset: dataset, runner: runner}
}

// ModelPath returns the fully-qualified warehouse path of the model, e.g.
// "project.dataset.model_v1".  It is empty before InstantiateModel.
func (o *Operator) ModelPath() string { return o.sqlModelPath }

// InstantiateModel binds the operator to a model identity and stores the
// training options.  Unless the caller supplied data_split_method (matched
// case-insensitively), the custom is_eval split used by Fit is injected as
// the default.  Call it once, before Fit or Predict.
func (o *Operator) InstantiateModel(modelID, modelVersion string, options map[string]interface{}) error {
	o.modelID = modelID
	o.modelVersion = modelVersion
	o.modelIDVersion = fmt.Sprintf("%s_%s", modelID, modelVersion)
	o.sqlModelPath = fmt.Sprintf("%s.%s.%s", o.project, o.dataset, o.modelIDVersion)
	o.options = make(map[string]interface{}, len(options)+2)
	for k, v := range options {
		o.options[k] = v
	}
	if !hasKeyFold(o.options, "data_split_method") {
		o.options["data_split_method"] = "CUSTOM"
		o.options["data_split_col"] = "is_eval"
	}
	log.WithField("model", o.sqlModelPath).Debugf("instantiated model operator")
	return nil
}

// Fit trains the model.  The feature and label locations of each split are
// merged into one sub-select; the two splits are unioned and tagged with
// is_eval as the model's training input.  The label columns of trainY are
// recorded in the options as input_label_cols, which Predict later reads
// back.  Blocks until the training job completes.
func (o *Operator) Fit(ctx context.Context, trainX, trainY, evalX, evalY *warehouse.Location) error {
	if err := o.ensureInstantiated("Fit"); err != nil {
		return err
	}
	o.options["input_label_cols"] = trainY.Columns

	train := mergeColumns(trainX, trainY)
	eval := mergeColumns(evalX, evalY)
	var sql bytes.Buffer
	e := createModelTemplate.Execute(&sql, createModelFiller{
		ModelPath:  o.sqlModelPath,
		Options:    optionsClause(o.options),
		TrainQuery: train.SelectQuery(false),
		EvalQuery:  eval.SelectQuery(false),
	})
	if e != nil {
		return fmt.Errorf("bqml: failed rendering create model statement: %v", e)
	}
	log.WithField("model", o.sqlModelPath).Infof("training from %s", trainX.Table)
	_, e = o.runner.RunAndWait(ctx, sql.String(), JobIDPrefix)
	return e
}

// Predict scores the rows described by data with the trained model and
// returns the location of the materialized result: the identifier column of
// data plus a predicted_<target> column, with the ordering of data.  The
// target is the first input label column; calling Predict before Fit (or
// without input_label_cols in the options) fails locally, before any job is
// submitted.
func (o *Operator) Predict(ctx context.Context, data *warehouse.Location) (*warehouse.Location, error) {
	if err := o.ensureInstantiated("Predict"); err != nil {
		return nil, err
	}
	labels, err := o.labelColumns()
	if err != nil {
		return nil, err
	}
	target := labels[0]
	var sql bytes.Buffer
	e := predictTemplate.Execute(&sql, predictFiller{
		ModelPath:    o.sqlModelPath,
		IDColumn:     data.IDColumn,
		TargetColumn: target,
		DataQuery:    data.SelectQuery(true),
	})
	if e != nil {
		return nil, fmt.Errorf("bqml: failed rendering predict statement: %v", e)
	}
	job, e := o.runner.RunAndWait(ctx, sql.String(), JobIDPrefix)
	if e != nil {
		return nil, e
	}
	dest := job.Destination()
	if dest == nil {
		return nil, fmt.Errorf("bqml: prediction job for model %s has no destination table", o.sqlModelPath)
	}
	log.WithField("model", o.sqlModelPath).Infof("predictions written to %s", dest)
	return &warehouse.Location{
		Columns:  []string{"predicted_" + target},
		IDColumn: data.IDColumn,
		Table:    dest.String(),
		OrderBy:  data.OrderBy,
	}, nil
}

// GetTrainMetrics fetches the per-iteration training diagnostics of the
// model, in ascending iteration order, shaped for an experiment tracker.
func (o *Operator) GetTrainMetrics(ctx context.Context) ([]modelop.Metric, error) {
	if err := o.ensureInstantiated("GetTrainMetrics"); err != nil {
		return nil, err
	}
	var sql bytes.Buffer
	if e := trainingInfoTemplate.Execute(&sql, modelFiller{ModelPath: o.sqlModelPath}); e != nil {
		return nil, fmt.Errorf("bqml: failed rendering training info statement: %v", e)
	}
	job, err := o.runner.RunAndWait(ctx, sql.String(), JobIDPrefix)
	if err != nil {
		return nil, err
	}
	rows, err := job.Result(ctx)
	if err != nil {
		return nil, err
	}
	metrics := make([]modelop.Metric, 0, len(rows))
	for _, row := range rows {
		metrics = append(metrics, modelop.Metric{
			Metrics: modelop.TrainMetrics{
				Loss:         asFloat(row["loss"]),
				EvalLoss:     asFloat(row["eval_loss"]),
				DurationMs:   asInt(row["duration_ms"]),
				LearningRate: asFloat(row["learning_rate"]),
			},
			Step: asInt(row["iteration"]),
		})
	}
	return metrics, nil
}

// FeatureImportance is the contribution of one input feature to a trained
// tree model, as reported by the warehouse.
type FeatureImportance struct {
	Feature string
	Weight  float64
	Gain    float64
	Cover   float64
}

// GetFeatureImportance fetches per-feature importance scores of the trained
// model.  Only tree-based model types populate them.
func (o *Operator) GetFeatureImportance(ctx context.Context) ([]FeatureImportance, error) {
	if err := o.ensureInstantiated("GetFeatureImportance"); err != nil {
		return nil, err
	}
	var sql bytes.Buffer
	if e := featureImportanceTemplate.Execute(&sql, modelFiller{ModelPath: o.sqlModelPath}); e != nil {
		return nil, fmt.Errorf("bqml: failed rendering feature importance statement: %v", e)
	}
	job, err := o.runner.RunAndWait(ctx, sql.String(), JobIDPrefix)
	if err != nil {
		return nil, err
	}
	rows, err := job.Result(ctx)
	if err != nil {
		return nil, err
	}
	importances := make([]FeatureImportance, 0, len(rows))
	for _, row := range rows {
		importances = append(importances, FeatureImportance{
			Feature: asString(row["feature"]),
			Weight:  asFloat(row["importance_weight"]),
			Gain:    asFloat(row["importance_gain"]),
			Cover:   asFloat(row["importance_cover"]),
		})
	}
	return importances, nil
}

// Save is a no-op: the model lives in the warehouse and has no local
// persistence representation.
func (o *Operator) Save(path string) error {
	log.Debugf("Save(%s) ignored: model %s is warehouse-hosted", path, o.sqlModelPath)
	return nil
}

// Load is a no-op, see Save.
func (o *Operator) Load(path string) error {
	log.Debugf("Load(%s) ignored: model %s is warehouse-hosted", path, o.sqlModelPath)
	return nil
}

func (o *Operator) ensureInstantiated(op string) error {
	if o.options == nil {
		return fmt.Errorf("bqml: InstantiateModel must be called before %s", op)
	}
	return nil
}

// labelColumns reads input_label_cols back from the options.  Fit stores it
// as []string; callers instantiating a pre-trained model may pass it as
// []interface{} of strings.
func (o *Operator) labelColumns() ([]string, error) {
	v, ok := o.options["input_label_cols"]
	if !ok {
		return nil, fmt.Errorf("bqml: model %s has no input_label_cols: call Fit first, or pass input_label_cols in the model options", o.modelIDVersion)
	}
	switch cols := v.(type) {
	case []string:
		if len(cols) > 0 {
			return cols, nil
		}
	case []interface{}:
		out := make([]string, 0, len(cols))
		for _, c := range cols {
			s, ok := c.(string)
			if !ok {
				return nil, fmt.Errorf("bqml: input_label_cols entry %v is not a string", c)
			}
			out = append(out, s)
		}
		if len(out) > 0 {
			return out, nil
		}
	default:
		return nil, fmt.Errorf("bqml: input_label_cols has unsupported type %T", v)
	}
	return nil, fmt.Errorf("bqml: input_label_cols of model %s is empty", o.modelIDVersion)
}

// mergeColumns combines the feature and label locations of one split into a
// single location reading both column sets from the feature table.
func mergeColumns(x, y *warehouse.Location) *warehouse.Location {
	cols := make([]string, 0, len(x.Columns)+len(y.Columns))
	cols = append(cols, x.Columns...)
	cols = append(cols, y.Columns...)
	return &warehouse.Location{
		Columns:  cols,
		IDColumn: x.IDColumn,
		Table:    x.Table,
		OrderBy:  x.OrderBy,
		Limit:    x.Limit,
	}
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func asInt(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
