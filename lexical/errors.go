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


package lexical

import "errors"

var (
	// ErrEmptyCorpus is returned when Fit is called with no documents.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrEmptyVocabulary is returned when no gram survives the document
	// frequency cutoff.
	ErrEmptyVocabulary = errors.New("no terms survived fitting")

	// ErrNotFitted is returned when Transform is called before Fit.
	ErrNotFitted = errors.New("vectorizer not fitted")
)
