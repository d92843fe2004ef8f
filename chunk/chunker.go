package chunk

import (
	"iter"
	"regexp"
	"strings"
)

const (
	// DefaultSize is the default fragment size limit in runes.
	DefaultSize = 900
	// DefaultOverlap is the default contextual overlap length in runes.
	DefaultOverlap = 120
)

var paragraphSplitter = regexp.MustCompile(`\n{2,}`)

// Chunks splits a document into overlapping fragments and returns them
// as a lazy, finite, restartable sequence. Ranging over the sequence
// again replays the same fragments.
//
// The document is split into paragraphs on blank-line boundaries
// (a document without blank lines is one paragraph). Consecutive
// paragraphs are greedily packed into a fragment while it stays within
// size runes; a paragraph that would overflow the buffer closes it and
// starts the next fragment. For continuity, every fragment after the
// first is prefixed with the last overlap runes of the previous packed
// fragment; fragment bodies are kept intact. An empty document yields
// no fragments.
func Chunks(text string, size, overlap int) iter.Seq[string] {
	if size <= 0 {
		size = DefaultSize
	}
	if overlap < 0 {
		overlap = 0
	}

	return func(yield func(string) bool) {
		packed := pack(text, size)
		for i, fragment := range packed {
			if i > 0 && overlap > 0 {
				fragment = tail(packed[i-1], overlap) + "\n" + fragment
			}
			if !yield(fragment) {
				return
			}
		}
	}
}

// pack splits text into paragraphs and greedily packs them under the
// size limit. Returns fragments without overlap applied.
func pack(text string, size int) []string {
	var paragraphs []string
	for _, p := range paragraphSplitter.Split(text, -1) {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	if len(paragraphs) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		paragraphs = []string{trimmed}
	}

	var fragments []string
	var buf strings.Builder
	bufRunes := 0
	for _, p := range paragraphs {
		pRunes := len([]rune(p))
		if bufRunes == 0 || bufRunes+pRunes+1 <= size {
			if bufRunes > 0 {
				buf.WriteByte('\n')
				bufRunes++
			}
			buf.WriteString(p)
			bufRunes += pRunes
			continue
		}
		fragments = append(fragments, buf.String())
		buf.Reset()
		buf.WriteString(p)
		bufRunes = pRunes
	}
	if buf.Len() > 0 {
		fragments = append(fragments, buf.String())
	}
	return fragments
}

// tail returns the last n runes of s.
func tail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
