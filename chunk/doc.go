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


// Package chunk splits knowledge-base documents into overlapping,
// citable fragments ahead of indexing.
//
// The overlap policy is explicit: a fragment keeps its whole packed
// body and gains a prefix consisting of the tail of the preceding
// fragment. All limits are measured in runes so multi-byte scripts are
// never split mid-character.
package chunk
