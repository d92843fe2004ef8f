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


// Package search ranks knowledge-base fragments for free-text queries.
//
// The Searcher fuses two relevance signals per fragment:
//   - dense semantic similarity (cosine over unit embeddings)
//   - sparse lexical similarity (character n-gram TF-IDF, min-max scaled)
//
// Both signals are gated by the query's inferred topic, clamped,
// fused by configurable weights, thresholded, and stably sorted so
// results are deterministic for an unchanged index.
package search
