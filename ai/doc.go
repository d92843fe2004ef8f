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


// Package ai defines the consumed embedding contract of the retrieval
// engine. The engine treats embedding as a black box: text in, dense
// vector out, deterministic for a fixed model identifier.
//
// Two implementation sub-packages are provided:
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: deterministic test doubles without external dependencies
//
// Public constructors in ai/openai return the ai interfaces to prevent
// coupling to the concrete client; mock constructors return concrete
// types so tests can inject behavior and assert call counts.
package ai
