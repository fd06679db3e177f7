// Package wire frames action diff batches for a transport the caller owns
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	ErrPayloadTooLarge = errors.New("wire: payload exceeds maximum size")
	ErrShortPayload    = errors.New("wire: payload shorter than declared")
	ErrUnexpectedType  = errors.New("wire: unexpected message type")
	ErrBadDiffKind     = errors.New("wire: invalid diff kind")
	ErrActionRange     = errors.New("wire: action ordinal outside 16-bit range")
)

// MessageType identifies the payload layout
type MessageType uint8

const (
	MsgAck       MessageType = 0x04
	MsgDiffBatch MessageType = 0x10 // One frame of action diffs
)

// Header precedes every message on the wire
// Fixed 12 bytes: [Type:1][Flags:1][Seq:4][Ack:4][Len:2]
const HeaderSize = 12

// MaxPayload is bounded by the 16-bit length field
const MaxPayload = 1<<16 - 1

const (
	FlagNone    uint8 = 0x00
	FlagNeedAck uint8 = 0x01
)

// Message is one framed unit
type Message struct {
	Type    MessageType
	Flags   uint8
	Seq     uint32 // sender's sequence number
	Ack     uint32 // last sequence received from peer
	Payload []byte
}

// Encode writes header then payload
func (m *Message) Encode(w io.Writer) error {
	if len(m.Payload) > MaxPayload {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(m.Payload))
	}

	buf := make([]byte, HeaderSize, HeaderSize+len(m.Payload))
	buf[0] = byte(m.Type)
	buf[1] = m.Flags
	binary.BigEndian.PutUint32(buf[2:6], m.Seq)
	binary.BigEndian.PutUint32(buf[6:10], m.Ack)
	binary.BigEndian.PutUint16(buf[10:12], uint16(len(m.Payload)))
	buf = append(buf, m.Payload...)

	_, err := w.Write(buf)
	return err
}

// Decode reads one message; a payload cut short reports ErrShortPayload
func Decode(r io.Reader) (*Message, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	m := &Message{
		Type:  MessageType(header[0]),
		Flags: header[1],
		Seq:   binary.BigEndian.Uint32(header[2:6]),
		Ack:   binary.BigEndian.Uint32(header[6:10]),
	}

	if n := binary.BigEndian.Uint16(header[10:12]); n > 0 {
		m.Payload = make([]byte, n)
		if _, err := io.ReadFull(r, m.Payload); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: want %d bytes", ErrShortPayload, n)
			}
			return nil, err
		}
	}
	return m, nil
}

// NewAckMessage acknowledges a received sequence
func NewAckMessage(ackSeq uint32) *Message {
	return &Message{Type: MsgAck, Ack: ackSeq}
}
