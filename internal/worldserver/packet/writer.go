// Package packet encodes and decodes world packet payloads: little-endian
// scalars, MSB-first bit fields and packed guids.
package packet

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
)

// Writer builds packet payloads.
// Multi-byte values are Little-Endian. Bit fields are packed MSB-first into
// a pending byte which is emitted once eight bits accumulate, on FlushBits,
// or before any byte-aligned write.
type Writer struct {
	buf    *bytes.Buffer
	bitPos uint8 // free bits left in bitVal; 8 means nothing pending
	bitVal byte
	err    error // first overflow recorded by WriteLen, WriteEnum or WritePackedTime
}

// writerPool reduces allocations by reusing Writers.
// Get() returns a Writer with Reset() called, Put() returns it to pool.
var writerPool = sync.Pool{
	New: func() any {
		return &Writer{
			buf:    bytes.NewBuffer(make([]byte, 0, 512)),
			bitPos: 8,
		}
	},
}

// Get returns a Writer from the pool (already Reset).
func Get() *Writer {
	w := writerPool.Get().(*Writer)
	w.Reset()
	return w
}

// Put returns a Writer to the pool for reuse.
// IMPORTANT: Do not use the Writer (or slices from Bytes) after calling Put.
func (w *Writer) Put() {
	writerPool.Put(w)
}

// NewWriter creates a new packet writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{
		buf:    bytes.NewBuffer(make([]byte, 0, capacity)),
		bitPos: 8,
	}
}

// WriteBit appends a single bit and returns it, so callers can write
// `if w.WriteBit(x != nil) { ... }`.
func (w *Writer) WriteBit(bit bool) bool {
	w.bitPos--
	if bit {
		w.bitVal |= 1 << w.bitPos
	}
	if w.bitPos == 0 {
		w.buf.WriteByte(w.bitVal)
		w.bitPos = 8
		w.bitVal = 0
	}
	return bit
}

// WriteBits appends the low n bits of value, most significant first.
func (w *Writer) WriteBits(value uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		w.WriteBit(value>>uint(i)&1 != 0)
	}
}

// WriteLen writes n as a bits-wide length prefix. A value that does not fit
// is recorded as the writer's error (see Err) and written truncated, so
// packet builders can check once at the end instead of after every field.
func (w *Writer) WriteLen(field string, n, bits int) {
	w.fail(CheckLen(field, n, bits))
	w.WriteBits(uint32(n), bits)
}

// WriteEnum writes v as a bits-wide enum value. Like WriteLen, a value
// that does not fit is recorded as the writer's error.
func (w *Writer) WriteEnum(field string, v uint32, bits int) {
	if uint64(v) >= 1<<bits {
		w.fail(fmt.Errorf("%s: %w (value=%d, bits=%d)", field, ErrEnumOverflow, v, bits))
	}
	w.WriteBits(v, bits)
}

func (w *Writer) fail(err error) {
	if err != nil && w.err == nil {
		w.err = err
	}
}

// Err returns the first error recorded by WriteLen, WriteEnum or WritePackedTime.
func (w *Writer) Err() error {
	return w.err
}

// Result returns the finished packet bytes, or the recorded error.
func (w *Writer) Result() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.Bytes(), nil
}

// FlushBits emits the pending bit byte, zero-padded.
func (w *Writer) FlushBits() {
	if w.bitPos == 8 {
		return
	}
	w.buf.WriteByte(w.bitVal)
	w.bitPos = 8
	w.bitVal = 0
}

// HasUnflushedBits reports whether a partial bit byte is pending.
func (w *Writer) HasUnflushedBits() bool {
	return w.bitPos != 8
}

// WriteUInt8 writes a single byte.
func (w *Writer) WriteUInt8(val uint8) {
	w.FlushBits()
	w.buf.WriteByte(val)
}

// WriteInt8 writes a signed byte.
func (w *Writer) WriteInt8(val int8) {
	w.WriteUInt8(uint8(val))
}

// WriteBool writes a boolean as a whole byte (not a bit).
func (w *Writer) WriteBool(val bool) {
	if val {
		w.WriteUInt8(1)
		return
	}
	w.WriteUInt8(0)
}

// WriteUInt16 writes a uint16 (2 bytes, LE).
func (w *Writer) WriteUInt16(val uint16) {
	w.FlushBits()
	w.buf.WriteByte(byte(val))
	w.buf.WriteByte(byte(val >> 8))
}

// WriteInt16 writes an int16 (2 bytes, LE).
func (w *Writer) WriteInt16(val int16) {
	w.WriteUInt16(uint16(val))
}

// WriteUInt32 writes a uint32 (4 bytes, LE).
// Manual encoding instead of binary.Write.
func (w *Writer) WriteUInt32(val uint32) {
	w.FlushBits()
	w.buf.WriteByte(byte(val))
	w.buf.WriteByte(byte(val >> 8))
	w.buf.WriteByte(byte(val >> 16))
	w.buf.WriteByte(byte(val >> 24))
}

// WriteInt32 writes an int32 (4 bytes, LE).
func (w *Writer) WriteInt32(val int32) {
	w.WriteUInt32(uint32(val))
}

// WriteUInt64 writes a uint64 (8 bytes, LE).
func (w *Writer) WriteUInt64(val uint64) {
	w.FlushBits()
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], val)
	w.buf.Write(tmp[:])
}

// WriteInt64 writes an int64 (8 bytes, LE).
func (w *Writer) WriteInt64(val int64) {
	w.WriteUInt64(uint64(val))
}

// WriteFloat writes a float32 (4 bytes, IEEE 754, LE).
func (w *Writer) WriteFloat(val float32) {
	w.WriteUInt32(math.Float32bits(val))
}

// WriteDouble writes a float64 (8 bytes, IEEE 754, LE).
func (w *Writer) WriteDouble(val float64) {
	w.WriteUInt64(math.Float64bits(val))
}

// WriteString writes the raw UTF-8 bytes of s with no terminator.
// The length is expected to be sent earlier as a bit field.
func (w *Writer) WriteString(s string) {
	w.FlushBits()
	w.buf.WriteString(s)
}

// WriteCString writes s followed by a NUL byte.
func (w *Writer) WriteCString(s string) {
	w.WriteString(s)
	w.buf.WriteByte(0)
}

// WriteBytes writes raw bytes.
func (w *Writer) WriteBytes(data []byte) {
	w.FlushBits()
	_, _ = w.buf.Write(data)
}

// WritePackedGuid writes g as two presence masks followed by the
// non-zero bytes of Low and then of High.
func (w *Writer) WritePackedGuid(g model.ObjectGuid) {
	w.FlushBits()
	if g.IsEmpty() {
		w.buf.WriteByte(0)
		w.buf.WriteByte(0)
		return
	}

	var lowPacked, highPacked [8]byte
	lowMask, lowSize := packUint64(g.Low, &lowPacked)
	highMask, highSize := packUint64(g.High, &highPacked)

	w.buf.WriteByte(lowMask)
	w.buf.WriteByte(highMask)
	w.buf.Write(lowPacked[:lowSize])
	w.buf.Write(highPacked[:highSize])
}

func packUint64(v uint64, out *[8]byte) (mask byte, size int) {
	for i := range 8 {
		b := byte(v >> (i * 8))
		if b != 0 {
			mask |= 1 << i
			out[size] = b
			size++
		}
	}
	return mask, size
}

// WritePackedTime writes t as a packed UTC calendar time (minute
// resolution). Years outside the packed range are recorded as the
// writer's error.
func (w *Writer) WritePackedTime(t time.Time) {
	w.fail(CheckPackedTime(t))
	w.WriteUInt32(PackTime(t))
}

// WriteVector2 writes X, Y as floats.
func (w *Writer) WriteVector2(v model.Vector2) {
	w.WriteFloat(v.X)
	w.WriteFloat(v.Y)
}

// WriteVector3 writes X, Y, Z as floats.
func (w *Writer) WriteVector3(v model.Vector3) {
	w.WriteFloat(v.X)
	w.WriteFloat(v.Y)
	w.WriteFloat(v.Z)
}

// WritePosition writes X, Y, Z, Orientation as floats.
func (w *Writer) WritePosition(p model.Position) {
	w.WriteVector3(p.Vector3)
	w.WriteFloat(p.Orientation)
}

// Bytes returns the accumulated packet data.
// Pending bits are flushed first.
func (w *Writer) Bytes() []byte {
	w.FlushBits()
	return w.buf.Bytes()
}

// Len returns the current length of the packet, not counting pending bits.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Reset clears the buffer for reuse.
func (w *Writer) Reset() {
	w.buf.Reset()
	w.bitPos = 8
	w.bitVal = 0
	w.err = nil
}
