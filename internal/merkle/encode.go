// encode.go - Fixed binary layout for the tree account record.
//
// Little-endian integers, fixed-width hash arrays, geometry bytes last. The
// geometry fields are encoded so a record can be decoded without assuming the
// compile-time defaults.

package merkle

import (
	"encoding/binary"
	"errors"
)

var ErrBadRecord = errors.New("merkle: malformed tree record")

// MarshalBinary encodes the tree state.
func (t *TreeState) MarshalBinary() ([]byte, error) {
	size := 32 + 8 + len(t.Subtrees)*32 + 32 + len(t.RootHistory)*32 + 8 + 8 + 3
	out := make([]byte, 0, size)
	out = append(out, t.Authority[:]...)
	out = binary.LittleEndian.AppendUint64(out, t.NextIndex)
	for _, s := range t.Subtrees {
		out = append(out, s[:]...)
	}
	out = append(out, t.Root[:]...)
	for _, r := range t.RootHistory {
		out = append(out, r[:]...)
	}
	out = binary.LittleEndian.AppendUint64(out, t.RootIndex)
	out = binary.LittleEndian.AppendUint64(out, t.MaxDepositAmount)
	out = append(out, t.Height, t.RootHistorySize, t.Bump)
	return out, nil
}

// UnmarshalBinary decodes a tree record produced by MarshalBinary.
func (t *TreeState) UnmarshalBinary(data []byte) error {
	if len(data) < 3 {
		return ErrBadRecord
	}
	height := data[len(data)-3]
	histSize := data[len(data)-2]
	bump := data[len(data)-1]
	want := 32 + 8 + int(height)*32 + 32 + int(histSize)*32 + 8 + 8 + 3
	if height == 0 || histSize == 0 || len(data) != want {
		return ErrBadRecord
	}

	off := 0
	copy(t.Authority[:], data[off:off+32])
	off += 32
	t.NextIndex = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	t.Subtrees = make([][32]byte, height)
	for k := range t.Subtrees {
		copy(t.Subtrees[k][:], data[off:off+32])
		off += 32
	}
	copy(t.Root[:], data[off:off+32])
	off += 32
	t.RootHistory = make([][32]byte, histSize)
	for i := range t.RootHistory {
		copy(t.RootHistory[i][:], data[off:off+32])
		off += 32
	}
	t.RootIndex = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	t.MaxDepositAmount = binary.LittleEndian.Uint64(data[off : off+8])
	t.Height = height
	t.RootHistorySize = histSize
	t.Bump = bump
	return nil
}
