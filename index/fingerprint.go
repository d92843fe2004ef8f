package index

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-crypt/x/blake2b"
)

// FormatTag identifies the index layout and build pipeline revision.
// Bumping it invalidates every cached index, forcing a rebuild.
const FormatTag = "hybrid-v4-content-id"

// Fingerprint hashes the corpus identity: the embedding model
// identifier, the index format tag, and for every source file its
// slash-normalized path and last-modified time. Equal fingerprints mean
// a cached index is semantically equivalent to a fresh rebuild; any
// file added, removed, or edited — or a model/format change — produces
// a different value.
//
// Files that cannot be stat'd still contribute their path, so a file
// that disappears between listing and hashing changes the fingerprint
// on the next run rather than failing this one.
func Fingerprint(files []string, modelID, formatTag string) string {
	h, _ := blake2b.New(32, nil)
	h.Write([]byte(modelID))
	h.Write([]byte(formatTag))
	for _, file := range files {
		h.Write([]byte(filepath.ToSlash(file)))
		if info, err := os.Stat(file); err == nil {
			h.Write([]byte(strconv.FormatInt(info.ModTime().UnixNano(), 10)))
		}
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
