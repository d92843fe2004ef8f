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


// Package core defines the domain model of the retrieval engine:
// fragments, topics, the index snapshot, sparse vectors, and search
// results, together with validation rules and small vector helpers.
//
// Fragments and snapshots are immutable once built. Rebuilding the
// index produces a new Snapshot value; in-place mutation of a snapshot
// that may be read by a concurrent search is never permitted.
package core
