// Copyright 2025 Lumawell
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


package search

import "errors"

var (
	// ErrIndexServiceRequired is returned when an index service is not provided.
	ErrIndexServiceRequired = errors.New("index service required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrClassifierRequired is returned when a topic classifier is not provided.
	ErrClassifierRequired = errors.New("topic classifier required")

	// ErrInvalidThreshold is returned for a min-score outside [0,1].
	ErrInvalidThreshold = errors.New("min score must be in [0,1]")

	// ErrInvalidGating is returned for gating factors outside their ranges.
	ErrInvalidGating = errors.New("topic boost must be > 1 and penalty in (0,1)")

	// ErrInvalidWeights is returned for unusable fusion weights.
	ErrInvalidWeights = errors.New("fusion weights must be non-negative and not both zero")
)
