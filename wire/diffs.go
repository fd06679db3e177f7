package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/lixenwraith/inputmanager/action"
)

// OwnerID is any unsigned integer identifier, carried as 8 bytes
type OwnerID interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Diff batch payload: [Count:2] then Count entries of [Kind:1][Action:2][ID:8]
const (
	countSize = 2
	entrySize = 11
)

// MaxDiffs is the largest batch one message can carry
const MaxDiffs = (MaxPayload - countSize) / entrySize

// MarshalDiffs encodes diffs into a diff batch payload
// Action ordinals must fit in 16 bits
func MarshalDiffs[A action.Action, ID OwnerID](diffs []action.Diff[A, ID]) ([]byte, error) {
	if len(diffs) > MaxDiffs {
		return nil, fmt.Errorf("%w: %d diffs, limit %d", ErrPayloadTooLarge, len(diffs), MaxDiffs)
	}

	buf := make([]byte, countSize+entrySize*len(diffs))
	binary.BigEndian.PutUint16(buf, uint16(len(diffs)))
	off := countSize
	for i, d := range diffs {
		// Negative ordinals wrap past MaxUint16 as well
		if uint64(d.Action) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: %d at entry %d", ErrActionRange, int64(d.Action), i)
		}
		buf[off] = byte(d.Kind)
		binary.BigEndian.PutUint16(buf[off+1:], uint16(d.Action))
		binary.BigEndian.PutUint64(buf[off+3:], uint64(d.ID))
		off += entrySize
	}
	return buf, nil
}

// UnmarshalDiffs decodes a diff batch payload
func UnmarshalDiffs[A action.Action, ID OwnerID](payload []byte) ([]action.Diff[A, ID], error) {
	if len(payload) < countSize {
		return nil, fmt.Errorf("%w: missing count", ErrShortPayload)
	}
	n := int(binary.BigEndian.Uint16(payload))
	if want := countSize + n*entrySize; len(payload) < want {
		return nil, fmt.Errorf("%w: %d diffs need %d bytes, have %d", ErrShortPayload, n, want, len(payload))
	}

	diffs := make([]action.Diff[A, ID], n)
	off := countSize
	for i := range diffs {
		kind := action.DiffKind(payload[off])
		if kind != action.DiffPressed && kind != action.DiffReleased {
			return nil, fmt.Errorf("%w: %d at entry %d", ErrBadDiffKind, kind, i)
		}
		diffs[i] = action.Diff[A, ID]{
			Kind:   kind,
			Action: A(binary.BigEndian.Uint16(payload[off+1:])),
			ID:     ID(binary.BigEndian.Uint64(payload[off+3:])),
		}
		off += entrySize
	}
	return diffs, nil
}

// EncodeDiffs writes one diff batch message with sequence seq
func EncodeDiffs[A action.Action, ID OwnerID](w io.Writer, seq uint32, diffs []action.Diff[A, ID]) error {
	payload, err := MarshalDiffs(diffs)
	if err != nil {
		return err
	}
	msg := &Message{Type: MsgDiffBatch, Seq: seq, Payload: payload}
	return msg.Encode(w)
}

// DecodeDiffs reads one message and decodes it as a diff batch
func DecodeDiffs[A action.Action, ID OwnerID](r io.Reader) (seq uint32, diffs []action.Diff[A, ID], err error) {
	msg, err := Decode(r)
	if err != nil {
		return 0, nil, err
	}
	if msg.Type != MsgDiffBatch {
		return msg.Seq, nil, fmt.Errorf("%w: 0x%02x", ErrUnexpectedType, uint8(msg.Type))
	}
	diffs, err = UnmarshalDiffs[A, ID](msg.Payload)
	return msg.Seq, diffs, err
}
