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

package bqml

import "text/template"

type createModelFiller struct {
	ModelPath  string
	Options    string
	TrainQuery string
	EvalQuery  string
}

type predictFiller struct {
	ModelPath    string
	IDColumn     string
	TargetColumn string
	DataQuery    string
}

type modelFiller struct {
	ModelPath string
}

// The training input unions the two splits and tags each row with is_eval,
// which the injected data_split_method=CUSTOM/data_split_col=is_eval options
// hand to the engine as the split column.
const createModelTemplateText = `CREATE OR REPLACE MODEL ` + "`{{.ModelPath}}`" + `
OPTIONS (
{{.Options}})
AS (
    WITH train_data AS ({{.TrainQuery}}),
         eval_data AS ({{.EvalQuery}})
    SELECT *, false AS is_eval FROM train_data UNION ALL
    SELECT *, true AS is_eval FROM eval_data
)`

const predictTemplateText = `SELECT {{.IDColumn}}, predicted_{{.TargetColumn}} FROM ML.PREDICT(MODEL ` + "`{{.ModelPath}}`" + `, ({{.DataQuery}}))`

const trainingInfoTemplateText = `SELECT * FROM ML.TRAINING_INFO(MODEL ` + "`{{.ModelPath}}`" + `) ORDER BY iteration`

const featureImportanceTemplateText = `SELECT * FROM ML.FEATURE_IMPORTANCE(MODEL ` + "`{{.ModelPath}}`" + `)`

var createModelTemplate = template.Must(template.New("create_model").Parse(createModelTemplateText))
var predictTemplate = template.Must(template.New("predict").Parse(predictTemplateText))
var trainingInfoTemplate = template.Must(template.New("training_info").Parse(trainingInfoTemplateText))
var featureImportanceTemplate = template.Must(template.New("feature_importance").Parse(featureImportanceTemplateText))
