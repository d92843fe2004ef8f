package badger

// Key prefixes for stored artifacts
const (
	snapshotPrefix = "kbsnap"
)

// makeSnapshotKey generates the key under which the current index
// snapshot is stored. A single snapshot is kept; saving replaces it.
func makeSnapshotKey() []byte {
	return []byte(snapshotPrefix + ":current")
}
