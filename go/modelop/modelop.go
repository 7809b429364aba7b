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

// Package modelop defines the model-lifecycle contract between a training
// framework and a model backend.  Backends hosting models in a warehouse ML
// engine (see package bqml) or anywhere else implement Operator; the
// framework programs against the interface only.
package modelop

import (
	"context"

	"bqflow.org/bqflow/go/warehouse"
)

// Operator is the lifecycle of one named, versioned model.  InstantiateModel
// must be called exactly once before any other method.
type Operator interface {
	// InstantiateModel binds the operator to a model identity and stores
	// the training options.
	InstantiateModel(modelID, modelVersion string, options map[string]interface{}) error
	// Fit trains the model from feature/label locations of the training
	// and evaluation splits, blocking until training completes.
	Fit(ctx context.Context, trainX, trainY, evalX, evalY *warehouse.Location) error
	// Predict scores the rows described by data and returns the location
	// of the prediction result.
	Predict(ctx context.Context, data *warehouse.Location) (*warehouse.Location, error)
	// Save persists the model to path, if the backend has a local
	// representation.
	Save(path string) error
	// Load restores the model from path, if the backend has a local
	// representation.
	Load(path string) error
	// GetTrainMetrics returns per-iteration training diagnostics in
	// ascending step order, shaped for an experiment-tracking system.
	GetTrainMetrics(ctx context.Context) ([]Metric, error)
}

// TrainMetrics is the set of diagnostics reported for one training
// iteration.
type TrainMetrics struct {
	Loss         float64
	EvalLoss     float64
	DurationMs   int64
	LearningRate float64
}

// Metric is one training-iteration record as logged to an experiment
// tracker: the diagnostics plus the iteration number they belong to.
type Metric struct {
	Metrics TrainMetrics
	Step    int64
}
