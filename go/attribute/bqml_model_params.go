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

package attribute

// BQMLModelTypes lists the model types accepted by the warehouse's CREATE
// MODEL statement, from
// https://cloud.google.com/bigquery/docs/reference/standard-sql/bigqueryml-syntax-create
var BQMLModelTypes = []string{
	"linear_reg",
	"logistic_reg",
	"boosted_tree_regressor",
	"boosted_tree_classifier",
	"random_forest_regressor",
	"random_forest_classifier",
	"dnn_regressor",
	"dnn_classifier",
	"kmeans",
	"matrix_factorization",
	"arima_plus",
}

// BQMLTrainingOptions documents the commonly used training options of the
// warehouse ML engine.  The dictionary is deliberately incomplete: it covers
// the options the CLI can vet, not everything the engine accepts.
var BQMLTrainingOptions = Dictionary{}.
	String("model_type", nil, `The type of model to train.`,
		StringChoicesChecker(BQMLModelTypes...)).
	Int("max_iterations", 20, `The maximum number of training iterations.
range: [1, Infinity]`, IntLowerBoundChecker(1, true)).
	Float("learn_rate", nil, `The learning rate for gradient descent.
range: (0, Infinity]`, FloatLowerBoundChecker(0, false)).
	String("learn_rate_strategy", "line_search", `How the learning rate is picked per iteration.`,
		StringChoicesChecker("line_search", "constant")).
	Float("l1_reg", 0, `The amount of L1 regularization applied.
range: [0, Infinity]`, FloatLowerBoundChecker(0, true)).
	Float("l2_reg", 0, `The amount of L2 regularization applied.
range: [0, Infinity]`, FloatLowerBoundChecker(0, true)).
	Bool("early_stop", true, `Whether training stops after the first iteration whose
relative loss improvement falls below min_rel_progress.`, nil).
	Float("min_rel_progress", 0.01, `The minimum relative loss improvement required to
continue training when early_stop is true.
range: (0, 1)`, FloatRangeChecker(0, 1, false, false)).
	String("data_split_method", "auto_split", `How input data is split into training and
evaluation sets.  The operator defaults this to custom with data_split_col
is_eval when absent.`,
		StringChoicesChecker("auto_split", "random", "custom", "seq", "no_split")).
	String("data_split_col", nil, `The column used to split data when
data_split_method is custom or seq.`, nil).
	Float("data_split_eval_fraction", 0.2, `The fraction of data used for evaluation when
data_split_method is random.
range: (0, 1)`, FloatRangeChecker(0, 1, false, false)).
	StringList("input_label_cols", nil, `The label column(s) of the training data.
Set by Fit; pass it explicitly only when scoring a previously trained model.`, nil).
	Bool("auto_class_weights", false, `Whether to balance class labels by weighting each
class inversely to its frequency.`, nil).
	Int("num_trials", nil, `The maximum number of submodels to train during
hyperparameter tuning.
range: [1, 100]`, IntLowerBoundChecker(1, true)).
	Bool("enable_global_explain", false, `Whether global explanations are computed during
training.`, nil)
