// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package prediction

// Predict runs the placeholder model: the product of X and Y labeled with
// modelName as given. Finite inputs can still overflow to ±Inf, which Result
// encodes as JSON null.
func Predict(req Request, modelName string) Result {
	return Result{
		Model:      modelName,
		Prediction: req.X * req.Y,
	}
}
