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


// Package storage defines the persistence abstraction for built index
// snapshots and the MUS binary codecs used to encode them.
//
// Constructors in backend packages return the SnapshotStore interface
// so callers never couple to a concrete backend:
//
//	store, err := badger.NewSnapshotStore(path)  // returns storage.SnapshotStore
//
// A Load that returns ErrNotFound — missing entry, truncated bytes,
// undecodable payload — is always interpreted upstream as a cache miss,
// never as a fatal condition. The engine must never fail to become
// queryable because of a corrupted cache.
package storage
