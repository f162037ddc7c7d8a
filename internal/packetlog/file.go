package packetlog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

const (
	// Version is the only capture format version read and written here.
	Version uint16 = 0x0301
	// SnifferID marks files produced by this package.
	SnifferID byte = 'T'

	signature = "PKT"

	// signature, version, sniffer id, build, locale, session key,
	// start time, start ticks, optional data size
	headerSize = 3 + 2 + 1 + 4 + 4 + 40 + 4 + 4 + 4
	// direction, connection id, ticks, optional data size, length
	recordHeaderSize = 5 * 4

	// MaxRecordSize bounds the length field of a record.
	MaxRecordSize = 1 << 24
)

var (
	// ErrBadSignature is returned when a file does not start with "PKT".
	ErrBadSignature = errors.New("not a PKT capture file")
	// ErrUnsupportedVersion is returned for PKT versions other than 3.1.
	ErrUnsupportedVersion = errors.New("unsupported PKT version")
)

// FileWriter writes a capture file. It implements Sink.
type FileWriter struct {
	w      *bufio.Writer
	closer io.Closer
}

// NewFileWriter writes the header to w and returns a writer for records.
// If w is an io.Closer it is closed by Close.
func NewFileWriter(w io.Writer, h Header) (*FileWriter, error) {
	fw := &FileWriter{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		fw.closer = c
	}

	pw := packet.NewWriter(headerSize)
	pw.WriteString(signature)
	pw.WriteUInt16(Version)
	pw.WriteUInt8(SnifferID)
	pw.WriteUInt32(h.ClientBuild)
	pw.WriteBytes(h.Locale[:])
	pw.WriteBytes(h.SessionKey[:])
	var start uint32
	if !h.StartTime.IsZero() {
		start = uint32(h.StartTime.Unix())
	}
	pw.WriteUInt32(start)
	pw.WriteUInt32(h.StartTicks)
	pw.WriteUInt32(0)

	if _, err := fw.w.Write(pw.Bytes()); err != nil {
		return nil, fmt.Errorf("writing capture header: %w", err)
	}
	return fw, nil
}

// CreateFile creates path and writes the capture header.
func CreateFile(path string, h Header) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating capture %s: %w", path, err)
	}
	fw, err := NewFileWriter(f, h)
	if err != nil {
		f.Close()
		return nil, err
	}
	return fw, nil
}

// Write appends one record.
func (fw *FileWriter) Write(_ context.Context, rec Record) error {
	if len(rec.Payload)+4 > MaxRecordSize {
		return fmt.Errorf("record payload of %d bytes exceeds %d", len(rec.Payload), MaxRecordSize)
	}

	pw := packet.Get()
	defer pw.Put()
	pw.WriteUInt32(uint32(rec.Direction))
	pw.WriteUInt32(rec.ConnectionID)
	pw.WriteUInt32(rec.ArrivalTicks)
	pw.WriteUInt32(0)
	pw.WriteUInt32(uint32(len(rec.Payload) + 4))
	pw.WriteUInt32(rec.Opcode)
	pw.WriteBytes(rec.Payload)

	if _, err := fw.w.Write(pw.Bytes()); err != nil {
		return fmt.Errorf("writing %s record: %w", rec.OpcodeName(), err)
	}
	return nil
}

// Close flushes buffered records and closes the underlying writer.
func (fw *FileWriter) Close() error {
	err := fw.w.Flush()
	if fw.closer != nil {
		err = errors.Join(err, fw.closer.Close())
	}
	if err != nil {
		return fmt.Errorf("closing capture: %w", err)
	}
	return nil
}

// FileReader reads a capture file record by record.
type FileReader struct {
	r      *bufio.Reader
	closer io.Closer
	header Header
}

// NewFileReader reads and validates the capture header from r.
func NewFileReader(r io.Reader) (*FileReader, error) {
	fr := &FileReader{r: bufio.NewReader(r)}
	if c, ok := r.(io.Closer); ok {
		fr.closer = c
	}

	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(fr.r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("reading capture header: %w", ErrBadSignature)
		}
		return nil, fmt.Errorf("reading capture header: %w", err)
	}

	pr := packet.NewReader(buf)
	sig, _ := pr.ReadString(len(signature))
	if sig != signature {
		return nil, fmt.Errorf("%w: signature %q", ErrBadSignature, sig)
	}
	version, _ := pr.ReadUInt16()
	if version != Version {
		return nil, fmt.Errorf("%w: 0x%04X", ErrUnsupportedVersion, version)
	}
	_, _ = pr.ReadUInt8() // sniffer id
	fr.header.ClientBuild, _ = pr.ReadUInt32()
	locale, _ := pr.ReadBytes(len(fr.header.Locale))
	copy(fr.header.Locale[:], locale)
	key, _ := pr.ReadBytes(len(fr.header.SessionKey))
	copy(fr.header.SessionKey[:], key)
	if start, _ := pr.ReadUInt32(); start != 0 {
		fr.header.StartTime = time.Unix(int64(start), 0).UTC()
	}
	fr.header.StartTicks, _ = pr.ReadUInt32()
	optional, _ := pr.ReadUInt32()

	if err := fr.skip(optional); err != nil {
		return nil, fmt.Errorf("skipping header optional data: %w", err)
	}
	return fr, nil
}

// OpenFile opens path and reads its header. Close releases the file.
func OpenFile(path string) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening capture %s: %w", path, err)
	}
	fr, err := NewFileReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fr, nil
}

// Header returns the capture header.
func (fr *FileReader) Header() Header {
	return fr.header
}

// Next returns the next record. It returns io.EOF when the file ends
// cleanly between records and io.ErrUnexpectedEOF inside a record.
func (fr *FileReader) Next() (Record, error) {
	var hdr [recordHeaderSize]byte
	if _, err := io.ReadFull(fr.r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("reading record header: %w", err)
	}

	pr := packet.NewReader(hdr[:])
	var rec Record
	dir, _ := pr.ReadUInt32()
	rec.Direction = Direction(dir)
	rec.ConnectionID, _ = pr.ReadUInt32()
	rec.ArrivalTicks, _ = pr.ReadUInt32()
	optional, _ := pr.ReadUInt32()
	length, _ := pr.ReadUInt32()

	if !rec.Direction.Valid() {
		return Record{}, fmt.Errorf("reading record header: unknown direction 0x%08X", dir)
	}
	if length < 4 || length > MaxRecordSize {
		return Record{}, fmt.Errorf("reading record header: bad length %d", length)
	}
	if err := fr.skip(optional); err != nil {
		return Record{}, fmt.Errorf("skipping record optional data: %w", err)
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(fr.r, data); err != nil {
		return Record{}, fmt.Errorf("reading record data: %w", unexpected(err))
	}
	pr = packet.NewReader(data)
	rec.Opcode, _ = pr.ReadUInt32()
	rec.Payload = data[4:]
	return rec, nil
}

// Close closes the underlying reader when it is an io.Closer.
func (fr *FileReader) Close() error {
	if fr.closer == nil {
		return nil
	}
	return fr.closer.Close()
}

func (fr *FileReader) skip(n uint32) error {
	if n == 0 {
		return nil
	}
	if n > MaxRecordSize {
		return fmt.Errorf("optional data of %d bytes exceeds %d", n, MaxRecordSize)
	}
	if _, err := io.CopyN(io.Discard, fr.r, int64(n)); err != nil {
		return unexpected(err)
	}
	return nil
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
