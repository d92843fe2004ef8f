package core

import (
	"fmt"
	"slices"
)

// ValidateFragment validates a Fragment according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - FragmentID must not be empty
//   - Topic must be one of the closed topic set
func ValidateFragment(fragment *Fragment) error {
	if fragment == nil {
		return fmt.Errorf("%w: fragment is nil", ErrInvalidFragment)
	}

	if fragment.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFragment, ErrEmptyText)
	}

	if fragment.FragmentID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFragment, ErrEmptyFragmentID)
	}

	if err := ValidateTopic(fragment.Topic); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFragment, err)
	}

	return nil
}

// ValidateTopic validates that a Topic belongs to the closed topic set.
func ValidateTopic(topic Topic) error {
	if !slices.Contains(Topics, topic) {
		return fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	return nil
}

// ValidateSnapshot checks the shape invariant of a built index:
// one dense row and one lexical row per fragment.
func ValidateSnapshot(snapshot *Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("%w: snapshot is nil", ErrInvalidSnapshot)
	}

	n := len(snapshot.Fragments)
	if len(snapshot.Dense) != n || len(snapshot.LexicalRows) != n {
		return fmt.Errorf("%w: %w: fragments=%d dense=%d lexical=%d",
			ErrInvalidSnapshot, ErrMatrixShapeMismatch,
			n, len(snapshot.Dense), len(snapshot.LexicalRows))
	}

	if len(snapshot.Lexical.Terms) != len(snapshot.Lexical.IDF) {
		return fmt.Errorf("%w: lexical model terms=%d idf=%d",
			ErrInvalidSnapshot, len(snapshot.Lexical.Terms), len(snapshot.Lexical.IDF))
	}

	return nil
}
