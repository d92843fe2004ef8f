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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidFragment indicates a Fragment failed validation.
	ErrInvalidFragment = errors.New("invalid fragment")

	// ErrInvalidSnapshot indicates a Snapshot failed validation.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrEmptyText indicates the Text field is empty.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrEmptyFragmentID indicates the FragmentID field is empty.
	ErrEmptyFragmentID = errors.New("fragment id cannot be empty")

	// ErrInvalidTopic indicates a topic outside the closed topic set.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrMatrixShapeMismatch indicates the fragment list and score
	// matrices disagree on row count.
	ErrMatrixShapeMismatch = errors.New("fragment count does not match matrix rows")
)
