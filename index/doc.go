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


// Package index builds and owns the searchable knowledge-base index.
//
// The Service orchestrates chunking, dense embedding, and lexical
// fitting into an immutable Snapshot, keyed by a corpus fingerprint
// that decides whether a persisted snapshot can be reused. Rebuilt
// indexes are swapped in atomically; concurrent searches always read a
// complete snapshot.
package index
