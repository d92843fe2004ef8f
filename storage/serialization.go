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


package storage

import (
	"fmt"

	"github.com/lumawell/kbsearch/core"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-composed MUS serializers for the snapshot types. The snapshot is
// the only persisted artifact, so the codecs live here rather than in a
// generated file.
var (
	float32SliceSer = ord.NewSliceSer[float32](varint.Float32)
	uint32SliceSer  = ord.NewSliceSer[uint32](varint.Uint32)
	stringSliceSer  = ord.NewSliceSer[string](ord.String)
	denseMatrixSer  = ord.NewSliceSer[[]float32](float32SliceSer)

	// FragmentMUS serializes core.Fragment.
	FragmentMUS = fragmentSer{}
	// SparseVectorMUS serializes core.SparseVector.
	SparseVectorMUS = sparseVectorSer{}
	// LexicalModelMUS serializes core.LexicalModel.
	LexicalModelMUS = lexicalModelSer{}
	// SnapshotMUS serializes core.Snapshot.
	SnapshotMUS = snapshotSer{}

	fragmentSliceSer = ord.NewSliceSer[core.Fragment](FragmentMUS)
	sparseRowsSer    = ord.NewSliceSer[core.SparseVector](SparseVectorMUS)
)

type fragmentSer struct{}

func (fragmentSer) Marshal(f core.Fragment, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(f.ID), bs)
	n += ord.String.Marshal(f.Text, bs[n:])
	n += ord.String.Marshal(f.Path, bs[n:])
	n += ord.String.Marshal(f.FragmentID, bs[n:])
	n += ord.String.Marshal(string(f.Topic), bs[n:])
	return
}

func (fragmentSer) Unmarshal(bs []byte) (f core.Fragment, n int, err error) {
	var n1 int
	var id uint64
	if id, n, err = varint.Uint64.Unmarshal(bs); err != nil {
		return
	}
	f.ID = core.ID(id)
	if f.Text, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if f.Path, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if f.FragmentID, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	var topic string
	if topic, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	f.Topic = core.Topic(topic)
	return
}

func (fragmentSer) Size(f core.Fragment) (size int) {
	size = varint.Uint64.Size(uint64(f.ID))
	size += ord.String.Size(f.Text)
	size += ord.String.Size(f.Path)
	size += ord.String.Size(f.FragmentID)
	size += ord.String.Size(string(f.Topic))
	return
}

func (fragmentSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = varint.Uint64.Skip(bs); err != nil {
		return
	}
	for range 4 {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return
		}
		n += n1
	}
	return
}

type sparseVectorSer struct{}

func (sparseVectorSer) Marshal(v core.SparseVector, bs []byte) (n int) {
	n = uint32SliceSer.Marshal(v.Indices, bs)
	n += float32SliceSer.Marshal(v.Values, bs[n:])
	return
}

func (sparseVectorSer) Unmarshal(bs []byte) (v core.SparseVector, n int, err error) {
	var n1 int
	if v.Indices, n, err = uint32SliceSer.Unmarshal(bs); err != nil {
		return
	}
	if v.Values, n1, err = float32SliceSer.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (sparseVectorSer) Size(v core.SparseVector) (size int) {
	size = uint32SliceSer.Size(v.Indices)
	size += float32SliceSer.Size(v.Values)
	return
}

func (sparseVectorSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = uint32SliceSer.Skip(bs); err != nil {
		return
	}
	if n1, err = float32SliceSer.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

type lexicalModelSer struct{}

func (lexicalModelSer) Marshal(m core.LexicalModel, bs []byte) (n int) {
	n = varint.Int.Marshal(m.MinGram, bs)
	n += varint.Int.Marshal(m.MaxGram, bs[n:])
	n += varint.Float64.Marshal(m.MaxDocFreq, bs[n:])
	n += stringSliceSer.Marshal(m.Terms, bs[n:])
	n += float32SliceSer.Marshal(m.IDF, bs[n:])
	return
}

func (lexicalModelSer) Unmarshal(bs []byte) (m core.LexicalModel, n int, err error) {
	var n1 int
	if m.MinGram, n, err = varint.Int.Unmarshal(bs); err != nil {
		return
	}
	if m.MaxGram, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if m.MaxDocFreq, n1, err = varint.Float64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if m.Terms, n1, err = stringSliceSer.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if m.IDF, n1, err = float32SliceSer.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (lexicalModelSer) Size(m core.LexicalModel) (size int) {
	size = varint.Int.Size(m.MinGram)
	size += varint.Int.Size(m.MaxGram)
	size += varint.Float64.Size(m.MaxDocFreq)
	size += stringSliceSer.Size(m.Terms)
	size += float32SliceSer.Size(m.IDF)
	return
}

func (lexicalModelSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = varint.Int.Skip(bs); err != nil {
		return
	}
	if n1, err = varint.Int.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	if n1, err = varint.Float64.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	if n1, err = stringSliceSer.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	if n1, err = float32SliceSer.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

type snapshotSer struct{}

func (snapshotSer) Marshal(s core.Snapshot, bs []byte) (n int) {
	n = ord.String.Marshal(s.Fingerprint, bs)
	n += fragmentSliceSer.Marshal(s.Fragments, bs[n:])
	n += denseMatrixSer.Marshal(s.Dense, bs[n:])
	n += LexicalModelMUS.Marshal(s.Lexical, bs[n:])
	n += sparseRowsSer.Marshal(s.LexicalRows, bs[n:])
	return
}

func (snapshotSer) Unmarshal(bs []byte) (s core.Snapshot, n int, err error) {
	var n1 int
	if s.Fingerprint, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if s.Fragments, n1, err = fragmentSliceSer.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if s.Dense, n1, err = denseMatrixSer.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if s.Lexical, n1, err = LexicalModelMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if s.LexicalRows, n1, err = sparseRowsSer.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (snapshotSer) Size(s core.Snapshot) (size int) {
	size = ord.String.Size(s.Fingerprint)
	size += fragmentSliceSer.Size(s.Fragments)
	size += denseMatrixSer.Size(s.Dense)
	size += LexicalModelMUS.Size(s.Lexical)
	size += sparseRowsSer.Size(s.LexicalRows)
	return
}

func (snapshotSer) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = ord.String.Skip(bs); err != nil {
		return
	}
	if n1, err = fragmentSliceSer.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	if n1, err = denseMatrixSer.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	if n1, err = LexicalModelMUS.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	if n1, err = sparseRowsSer.Skip(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

// MarshalSnapshot serializes a Snapshot to bytes.
func MarshalSnapshot(snapshot *core.Snapshot) []byte {
	buf := make([]byte, SnapshotMUS.Size(*snapshot))
	SnapshotMUS.Marshal(*snapshot, buf)
	return buf
}

// UnmarshalSnapshot deserializes a Snapshot from bytes.
func UnmarshalSnapshot(data []byte) (*core.Snapshot, error) {
	snapshot, _, err := SnapshotMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &snapshot, nil
}
