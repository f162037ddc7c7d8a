package packetlog

import (
	"bytes"
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CypherCore/CypherCore-sub016/internal/db"
	"github.com/CypherCore/CypherCore-sub016/internal/testutil"
)

type memorySink struct {
	mu     sync.Mutex
	recs   []Record
	closed bool
}

func (m *memorySink) Write(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append(m.recs, rec)
	return nil
}

func (m *memorySink) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

type failingSink struct {
	writes atomic.Int32
}

func (f *failingSink) Write(context.Context, Record) error {
	f.writes.Add(1)
	return testutil.ErrSimulated
}

func (f *failingSink) Close() error { return testutil.ErrSimulated }

func TestTee_WritesEverySink(t *testing.T) {
	t.Parallel()

	a, b := &memorySink{}, &memorySink{}
	s := Tee(a, b)
	for _, rec := range testRecords() {
		require.NoError(t, s.Write(context.Background(), rec))
	}
	require.NoError(t, s.Close())

	assert.Equal(t, testRecords(), a.recs)
	assert.Equal(t, testRecords(), b.recs)
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func TestTee_ReturnsSinkError(t *testing.T) {
	t.Parallel()

	ok, bad := &memorySink{}, &failingSink{}
	s := Tee(ok, bad)

	err := s.Write(context.Background(), testRecords()[0])
	require.ErrorIs(t, err, testutil.ErrSimulated)
	assert.Equal(t, int32(1), bad.writes.Load())

	err = s.Close()
	assert.ErrorIs(t, err, testutil.ErrSimulated)
	assert.True(t, ok.closed, "healthy sink closed despite sibling failure")
}

func TestTee_FileAndMemory(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fw, err := NewFileWriter(&buf, testHeader())
	require.NoError(t, err)
	mem := &memorySink{}

	s := Tee(fw, mem)
	for _, rec := range testRecords() {
		require.NoError(t, s.Write(context.Background(), rec))
	}
	require.NoError(t, s.Close())

	fr, err := NewFileReader(&buf)
	require.NoError(t, err)
	for _, want := range mem.recs {
		got, err := fr.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err = fr.Next()
	assert.ErrorIs(t, err, io.EOF)
}

type fakeInserter struct {
	mu      sync.Mutex
	batches [][]db.PacketRow
	err     error
}

func (f *fakeInserter) InsertBatch(_ context.Context, rows []db.PacketRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, append([]db.PacketRow(nil), rows...))
	return nil
}

func TestPostgresSink_BatchesBySize(t *testing.T) {
	t.Parallel()

	repo := &fakeInserter{}
	s := NewPostgresSink(repo, "raid-night", 2, time.Hour)
	ctx := context.Background()

	recs := testRecords()
	require.NoError(t, s.Write(ctx, recs[0]))
	assert.Empty(t, repo.batches, "flushed before batch was full")

	require.NoError(t, s.Write(ctx, recs[1]))
	require.Len(t, repo.batches, 1)
	assert.Len(t, repo.batches[0], 2)

	require.NoError(t, s.Write(ctx, recs[2]))
	require.NoError(t, s.Close())
	require.Len(t, repo.batches, 2)
	assert.Equal(t, 3, s.Written())

	first := repo.batches[0][0]
	assert.Equal(t, "raid-night", first.Capture)
	assert.Equal(t, db.DirectionClientToServer, first.Direction)
	assert.Equal(t, "CMSG_PING", first.OpcodeName)
	assert.Equal(t, recs[0].Payload, first.Payload)

	second := repo.batches[0][1]
	assert.Equal(t, db.DirectionServerToClient, second.Direction)
	assert.Equal(t, "SMSG_PONG", second.OpcodeName)
	assert.Equal(t, uint32(1012), second.ArrivalTicks)
}

func TestPostgresSink_FlushesByInterval(t *testing.T) {
	t.Parallel()

	repo := &fakeInserter{}
	s := NewPostgresSink(repo, "c", 1000, time.Nanosecond)
	time.Sleep(time.Millisecond)

	require.NoError(t, s.Write(context.Background(), testRecords()[0]))
	require.Len(t, repo.batches, 1)
	assert.Len(t, repo.batches[0], 1)
}

func TestPostgresSink_InsertError(t *testing.T) {
	t.Parallel()

	repo := &fakeInserter{err: testutil.ErrSimulated}
	s := NewPostgresSink(repo, "c", 1, time.Hour)

	err := s.Write(context.Background(), testRecords()[0])
	require.ErrorIs(t, err, testutil.ErrSimulated)
	assert.Zero(t, s.Written())

	// rows stay buffered and are retried on Close
	repo.mu.Lock()
	repo.err = nil
	repo.mu.Unlock()
	require.NoError(t, s.Close())
	assert.Equal(t, 1, s.Written())
}

func TestPostgresSink_StoresWideOpcode(t *testing.T) {
	t.Parallel()

	repo := &fakeInserter{}
	s := NewPostgresSink(repo, "c", 1, time.Hour)

	rec := testRecords()[0]
	rec.Opcode += 0x10000
	require.NoError(t, s.Write(context.Background(), rec))

	require.Len(t, repo.batches, 1)
	row := repo.batches[0][0]
	assert.Equal(t, rec.Opcode, row.Opcode, "stored without truncation")
	assert.NotEqual(t, "CMSG_PING", row.OpcodeName)
	assert.Contains(t, row.OpcodeName, "UNKNOWN")
}

func TestPostgresSink_CloseEmpty(t *testing.T) {
	t.Parallel()

	repo := &fakeInserter{}
	s := NewPostgresSink(repo, "c", 10, time.Hour)
	require.NoError(t, s.Close())
	assert.Empty(t, repo.batches)
	assert.NoError(t, s.Flush(context.Background()))
}
