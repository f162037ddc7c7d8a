package packetlog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/CypherCore/CypherCore-sub016/internal/db"
)

// Sink consumes captured records.
type Sink interface {
	Write(ctx context.Context, rec Record) error
	Close() error
}

type tee struct {
	sinks []Sink
}

// Tee returns a Sink that writes every record to all sinks concurrently.
// Write returns the first error; the record's Payload is shared and must
// not be modified by any sink.
func Tee(sinks ...Sink) Sink {
	return &tee{sinks: sinks}
}

func (t *tee) Write(ctx context.Context, rec Record) error {
	if len(t.sinks) == 1 {
		return t.sinks[0].Write(ctx, rec)
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range t.sinks {
		g.Go(func() error {
			return s.Write(gctx, rec)
		})
	}
	return g.Wait()
}

// Close closes every sink and joins their errors.
func (t *tee) Close() error {
	var errs []error
	for _, s := range t.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PacketInserter stores packet rows. *db.PacketRepository implements it.
type PacketInserter interface {
	InsertBatch(ctx context.Context, rows []db.PacketRow) error
}

// PostgresSink buffers records and inserts them in batches. A batch is
// flushed when it reaches the batch size or when FlushInterval has passed
// since the previous flush.
type PostgresSink struct {
	repo          PacketInserter
	capture       string
	batchSize     int
	flushInterval time.Duration
	closeTimeout  time.Duration

	mu        sync.Mutex
	pending   []db.PacketRow
	lastFlush time.Time
	written   int
}

// NewPostgresSink creates a sink that tags every row with capture.
func NewPostgresSink(repo PacketInserter, capture string, batchSize int, flushInterval time.Duration) *PostgresSink {
	if batchSize < 1 {
		batchSize = 1
	}
	return &PostgresSink{
		repo:          repo,
		capture:       capture,
		batchSize:     batchSize,
		flushInterval: flushInterval,
		closeTimeout:  10 * time.Second,
		pending:       make([]db.PacketRow, 0, batchSize),
		lastFlush:     time.Now(),
	}
}

func (s *PostgresSink) Write(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, s.row(rec))
	if len(s.pending) < s.batchSize && (s.flushInterval <= 0 || time.Since(s.lastFlush) < s.flushInterval) {
		return nil
	}
	return s.flushLocked(ctx)
}

// Flush inserts buffered rows.
func (s *PostgresSink) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked(ctx)
}

// Close flushes whatever is still buffered.
func (s *PostgresSink) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.closeTimeout)
	defer cancel()

	if err := s.Flush(ctx); err != nil {
		return err
	}
	slog.Info("packet mirror closed", "capture", s.capture, "rows", s.Written())
	return nil
}

// Written returns the number of rows inserted so far.
func (s *PostgresSink) Written() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.written
}

func (s *PostgresSink) flushLocked(ctx context.Context) error {
	s.lastFlush = time.Now()
	if len(s.pending) == 0 {
		return nil
	}
	if err := s.repo.InsertBatch(ctx, s.pending); err != nil {
		return fmt.Errorf("mirroring %d packets: %w", len(s.pending), err)
	}
	s.written += len(s.pending)
	s.pending = s.pending[:0]
	return nil
}

func (s *PostgresSink) row(rec Record) db.PacketRow {
	dir := db.DirectionClientToServer
	if rec.Direction == ServerToClient {
		dir = db.DirectionServerToClient
	}
	return db.PacketRow{
		Capture:      s.capture,
		Direction:    dir,
		ConnectionID: rec.ConnectionID,
		ArrivalTicks: rec.ArrivalTicks,
		Opcode:       rec.Opcode,
		OpcodeName:   rec.OpcodeName(),
		Payload:      rec.Payload,
	}
}
