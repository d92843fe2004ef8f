package index

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFingerprint_Deterministic(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.md", "alpha")
	b := writeFile(t, dir, "b.md", "beta")

	fp1 := Fingerprint([]string{a, b}, "bge-m3", FormatTag)
	fp2 := Fingerprint([]string{a, b}, "bge-m3", FormatTag)

	assert.Equal(t, fp1, fp2)
	assert.Len(t, fp1, 16)
}

func TestFingerprint_ChangesOnMtime(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.md", "alpha")

	fp1 := Fingerprint([]string{a}, "bge-m3", FormatTag)

	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(a, future, future))

	fp2 := Fingerprint([]string{a}, "bge-m3", FormatTag)
	assert.NotEqual(t, fp1, fp2)
}

func TestFingerprint_ChangesOnFileSet(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.md", "alpha")
	b := writeFile(t, dir, "b.md", "beta")

	fpOne := Fingerprint([]string{a}, "bge-m3", FormatTag)
	fpTwo := Fingerprint([]string{a, b}, "bge-m3", FormatTag)
	assert.NotEqual(t, fpOne, fpTwo)
}

func TestFingerprint_ChangesOnModelAndFormat(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.md", "alpha")
	files := []string{a}

	base := Fingerprint(files, "bge-m3", FormatTag)
	assert.NotEqual(t, base, Fingerprint(files, "bge-large", FormatTag))
	assert.NotEqual(t, base, Fingerprint(files, "bge-m3", "hybrid-v4"))
}

func TestFingerprint_MissingFileStillContributesPath(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "ghost.md")

	fpEmpty := Fingerprint(nil, "bge-m3", FormatTag)
	fpGhost := Fingerprint([]string{missing}, "bge-m3", FormatTag)
	assert.NotEqual(t, fpEmpty, fpGhost)
}
