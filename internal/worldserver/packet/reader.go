package packet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
)

// ErrShortRead is wrapped by every Reader error caused by running out of data.
var ErrShortRead = errors.New("not enough data")

// Reader decodes packet payloads written by Writer.
// Byte-aligned reads discard whatever is left of a partially consumed bit byte.
type Reader struct {
	data   []byte
	pos    int
	bitPos uint8 // bits already consumed from bitVal; 8 means none pending
	bitVal byte
}

// NewReader creates a new packet reader.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:   data,
		bitPos: 8,
	}
}

func (r *Reader) need(op string, n int) error {
	if r.pos+n > len(r.data) {
		return fmt.Errorf("%s: %w (pos=%d, need=%d, len=%d)", op, ErrShortRead, r.pos, n, len(r.data))
	}
	return nil
}

// ResetBitPos drops the remainder of a partially consumed bit byte.
func (r *Reader) ResetBitPos() {
	r.bitPos = 8
	r.bitVal = 0
}

// ReadBit reads one bit, MSB-first.
func (r *Reader) ReadBit() (bool, error) {
	if r.bitPos == 8 {
		if err := r.need("ReadBit", 1); err != nil {
			return false, err
		}
		r.bitVal = r.data[r.pos]
		r.pos++
		r.bitPos = 0
	}
	bit := r.bitVal>>(7-r.bitPos)&1 != 0
	r.bitPos++
	return bit, nil
}

// ReadBits reads an n-bit unsigned value, most significant bit first.
func (r *Reader) ReadBits(n int) (uint32, error) {
	var val uint32
	for i := n - 1; i >= 0; i-- {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, fmt.Errorf("ReadBits(%d): %w", n, err)
		}
		if bit {
			val |= 1 << uint(i)
		}
	}
	return val, nil
}

// ReadUInt8 reads a single byte.
func (r *Reader) ReadUInt8() (uint8, error) {
	r.ResetBitPos()
	if err := r.need("ReadUInt8", 1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadInt8 reads a signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUInt8()
	return int8(v), err
}

// ReadBool reads a whole-byte boolean.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadUInt8()
	return v != 0, err
}

// ReadUInt16 reads a uint16 (2 bytes, LE).
func (r *Reader) ReadUInt16() (uint16, error) {
	r.ResetBitPos()
	if err := r.need("ReadUInt16", 2); err != nil {
		return 0, err
	}
	val := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return val, nil
}

// ReadInt16 reads an int16 (2 bytes, LE).
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUInt16()
	return int16(v), err
}

// ReadUInt32 reads a uint32 (4 bytes, LE).
func (r *Reader) ReadUInt32() (uint32, error) {
	r.ResetBitPos()
	if err := r.need("ReadUInt32", 4); err != nil {
		return 0, err
	}
	val := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return val, nil
}

// ReadInt32 reads an int32 (4 bytes, LE).
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUInt32()
	return int32(v), err
}

// ReadUInt64 reads a uint64 (8 bytes, LE).
func (r *Reader) ReadUInt64() (uint64, error) {
	r.ResetBitPos()
	if err := r.need("ReadUInt64", 8); err != nil {
		return 0, err
	}
	val := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return val, nil
}

// ReadInt64 reads an int64 (8 bytes, LE).
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUInt64()
	return int64(v), err
}

// ReadFloat reads a float32 (4 bytes, LE).
func (r *Reader) ReadFloat() (float32, error) {
	v, err := r.ReadUInt32()
	return math.Float32frombits(v), err
}

// ReadDouble reads a float64 (8 bytes, LE).
func (r *Reader) ReadDouble() (float64, error) {
	v, err := r.ReadUInt64()
	return math.Float64frombits(v), err
}

// ReadArraySize reads a uint32 element count and rejects counts that could
// not possibly fit in the remaining data, given each element takes at least
// minElemSize bytes. It guards allocations sized from wire data.
func (r *Reader) ReadArraySize(minElemSize int) (int, error) {
	n, err := r.ReadUInt32()
	if err != nil {
		return 0, err
	}
	if minElemSize < 1 {
		minElemSize = 1
	}
	if uint64(n)*uint64(minElemSize) > uint64(r.Remaining()) {
		return 0, fmt.Errorf("ReadArraySize: %w (count=%d, elem>=%d, remaining=%d)", ErrShortRead, n, minElemSize, r.Remaining())
	}
	return int(n), nil
}

// ReadString reads length raw bytes as a string.
func (r *Reader) ReadString(length int) (string, error) {
	r.ResetBitPos()
	if length < 0 {
		return "", fmt.Errorf("ReadString: negative length %d", length)
	}
	if err := r.need("ReadString", length); err != nil {
		return "", err
	}
	s := string(r.data[r.pos : r.pos+length])
	r.pos += length
	return s, nil
}

// ReadCString reads bytes up to (and consuming) a NUL terminator.
func (r *Reader) ReadCString() (string, error) {
	r.ResetBitPos()
	for i := r.pos; i < len(r.data); i++ {
		if r.data[i] == 0 {
			s := string(r.data[r.pos:i])
			r.pos = i + 1
			return s, nil
		}
	}
	return "", fmt.Errorf("ReadCString: %w: missing terminator (pos=%d, len=%d)", ErrShortRead, r.pos, len(r.data))
}

// ReadBytes returns the next n bytes without copying. The slice aliases the
// reader's buffer and must not be modified; use ReadBytesCopy for that.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	r.ResetBitPos()
	if n < 0 {
		return nil, fmt.Errorf("ReadBytes: negative count %d", n)
	}
	if err := r.need("ReadBytes", n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadBytesCopy reads n bytes and returns a mutable copy.
func (r *Reader) ReadBytesCopy(n int) ([]byte, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadPackedGuid reads a guid written by Writer.WritePackedGuid.
func (r *Reader) ReadPackedGuid() (model.ObjectGuid, error) {
	r.ResetBitPos()
	if err := r.need("ReadPackedGuid", 2); err != nil {
		return model.ObjectGuid{}, err
	}
	lowMask := r.data[r.pos]
	highMask := r.data[r.pos+1]
	r.pos += 2

	low, err := r.readPackedUint64(lowMask)
	if err != nil {
		return model.ObjectGuid{}, fmt.Errorf("ReadPackedGuid low: %w", err)
	}
	high, err := r.readPackedUint64(highMask)
	if err != nil {
		return model.ObjectGuid{}, fmt.Errorf("ReadPackedGuid high: %w", err)
	}
	return model.ObjectGuid{High: high, Low: low}, nil
}

func (r *Reader) readPackedUint64(mask byte) (uint64, error) {
	var v uint64
	for i := range 8 {
		if mask&(1<<i) == 0 {
			continue
		}
		if err := r.need("readPackedUint64", 1); err != nil {
			return 0, err
		}
		v |= uint64(r.data[r.pos]) << (i * 8)
		r.pos++
	}
	return v, nil
}

// ReadPackedTime reads a packed calendar time in the given location.
func (r *Reader) ReadPackedTime(loc *time.Location) (time.Time, error) {
	v, err := r.ReadUInt32()
	if err != nil {
		return time.Time{}, err
	}
	return UnpackTime(v, loc), nil
}

// ReadVector2 reads two floats.
func (r *Reader) ReadVector2() (model.Vector2, error) {
	var v model.Vector2
	var err error
	if v.X, err = r.ReadFloat(); err != nil {
		return v, err
	}
	if v.Y, err = r.ReadFloat(); err != nil {
		return v, err
	}
	return v, nil
}

// ReadVector3 reads three floats.
func (r *Reader) ReadVector3() (model.Vector3, error) {
	var v model.Vector3
	var err error
	if v.X, err = r.ReadFloat(); err != nil {
		return v, err
	}
	if v.Y, err = r.ReadFloat(); err != nil {
		return v, err
	}
	if v.Z, err = r.ReadFloat(); err != nil {
		return v, err
	}
	return v, nil
}

// ReadPosition reads X, Y, Z, Orientation.
func (r *Reader) ReadPosition() (model.Position, error) {
	v, err := r.ReadVector3()
	if err != nil {
		return model.Position{}, err
	}
	o, err := r.ReadFloat()
	if err != nil {
		return model.Position{}, err
	}
	return model.Position{Vector3: v, Orientation: o}, nil
}

// Skip advances past n bytes.
func (r *Reader) Skip(n int) error {
	_, err := r.ReadBytes(n)
	return err
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Position returns the current read position.
func (r *Reader) Position() int {
	return r.pos
}
