package serverpackets

import (
	"bytes"
	"errors"
	"fmt"
	"hash/adler32"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

const (
	// CompressThreshold is the encoded size above which MaybeCompress wraps a packet.
	CompressThreshold = 0x400

	// MaxUncompressedSize bounds the size claimed by a compressed envelope.
	MaxUncompressedSize = 1 << 24
)

// ErrChecksumMismatch is returned by Decompress when either adler32 in the
// envelope does not match its data.
var ErrChecksumMismatch = errors.New("compressed packet checksum mismatch")

// Compress wraps an encoded server packet (opcode + body) in
// SMSG_COMPRESSED_PACKET. Each call produces a self-contained raw deflate stream.
func Compress(pkt []byte) ([]byte, error) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestSpeed)
	if err != nil {
		return nil, fmt.Errorf("creating deflate writer: %w", err)
	}
	if _, err := fw.Write(pkt); err != nil {
		return nil, fmt.Errorf("deflating packet: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, fmt.Errorf("closing deflate writer: %w", err)
	}
	compressed := buf.Bytes()

	w := newWriter(opcodes.SMSGCompressedPacket, 12+len(compressed))
	w.WriteUInt32(uint32(len(pkt)))
	w.WriteUInt32(adler32.Checksum(pkt))
	w.WriteUInt32(adler32.Checksum(compressed))
	w.WriteBytes(compressed)
	return w.Result()
}

// MaybeCompress returns pkt unchanged when it is not larger than
// CompressThreshold, otherwise its compressed envelope.
func MaybeCompress(pkt []byte) ([]byte, error) {
	if len(pkt) <= CompressThreshold {
		return pkt, nil
	}
	return Compress(pkt)
}

// Decompress unwraps the body of SMSG_COMPRESSED_PACKET (without its
// opcode) and returns the inner packet, opcode included.
func Decompress(body []byte) ([]byte, error) {
	r := packet.NewReader(body)
	size, err := r.ReadUInt32()
	if err != nil {
		return nil, fmt.Errorf("reading UncompressedSize: %w", err)
	}
	uncompressedAdler, err := r.ReadUInt32()
	if err != nil {
		return nil, fmt.Errorf("reading UncompressedAdler: %w", err)
	}
	compressedAdler, err := r.ReadUInt32()
	if err != nil {
		return nil, fmt.Errorf("reading CompressedAdler: %w", err)
	}
	if size > MaxUncompressedSize {
		return nil, fmt.Errorf("uncompressed size %d exceeds limit %d", size, MaxUncompressedSize)
	}

	data, _ := r.ReadBytes(r.Remaining())
	if got := adler32.Checksum(data); got != compressedAdler {
		return nil, fmt.Errorf("compressed data: %w (got 0x%08X, want 0x%08X)", ErrChecksumMismatch, got, compressedAdler)
	}

	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()

	out, err := io.ReadAll(io.LimitReader(fr, int64(size)+1))
	if err != nil {
		return nil, fmt.Errorf("inflating packet: %w", err)
	}
	if len(out) != int(size) {
		return nil, fmt.Errorf("inflated %d bytes, envelope claims %d", len(out), size)
	}
	if got := adler32.Checksum(out); got != uncompressedAdler {
		return nil, fmt.Errorf("uncompressed data: %w (got 0x%08X, want 0x%08X)", ErrChecksumMismatch, got, uncompressedAdler)
	}
	return out, nil
}
