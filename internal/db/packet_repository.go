package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Packet directions as stored in packet_log.direction.
const (
	DirectionClientToServer int16 = 0
	DirectionServerToClient int16 = 1
)

// PacketRow is one captured packet in packet_log.
type PacketRow struct {
	Capture      string
	Direction    int16
	ConnectionID uint32
	ArrivalTicks uint32
	Opcode       uint32 // full capture field, may exceed 16 bits
	OpcodeName   string
	Payload      []byte
}

// OpcodeCount is one row of CountByOpcode.
type OpcodeCount struct {
	Direction  int16
	Opcode     uint32
	OpcodeName string
	Count      int64
}

// PacketRepository stores captured packets.
type PacketRepository struct {
	db *pgxpool.Pool
}

// NewPacketRepository creates a new PacketRepository.
func NewPacketRepository(db *pgxpool.Pool) *PacketRepository {
	return &PacketRepository{db: db}
}

// InsertBatch copies rows into packet_log in one COPY round trip.
func (r *PacketRepository) InsertBatch(ctx context.Context, rows []PacketRow) error {
	if len(rows) == 0 {
		return nil
	}

	src := make([][]any, 0, len(rows))
	for _, p := range rows {
		payload := p.Payload
		if payload == nil {
			payload = []byte{}
		}
		src = append(src, []any{
			p.Capture, p.Direction, int64(p.ConnectionID), int64(p.ArrivalTicks),
			int64(p.Opcode), p.OpcodeName, payload,
		})
	}

	n, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"packet_log"},
		[]string{"capture", "direction", "connection_id", "arrival_ticks", "opcode", "opcode_name", "payload"},
		pgx.CopyFromRows(src),
	)
	if err != nil {
		return fmt.Errorf("copying %d packets: %w", len(rows), err)
	}

	slog.Debug("mirrored packets", "count", n)
	return nil
}

// CountByOpcode returns per-opcode packet counts for a capture, most
// frequent first.
func (r *PacketRepository) CountByOpcode(ctx context.Context, capture string) ([]OpcodeCount, error) {
	query := `
		SELECT direction, opcode, opcode_name, COUNT(*)
		FROM packet_log
		WHERE capture = $1
		GROUP BY direction, opcode, opcode_name
		ORDER BY COUNT(*) DESC, direction, opcode
	`

	rows, err := r.db.Query(ctx, query, capture)
	if err != nil {
		return nil, fmt.Errorf("counting packets for capture %q: %w", capture, err)
	}
	defer rows.Close()

	result := make([]OpcodeCount, 0, 32)
	for rows.Next() {
		var c OpcodeCount
		var opcode int64
		if err := rows.Scan(&c.Direction, &opcode, &c.OpcodeName, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning opcode count: %w", err)
		}
		c.Opcode = uint32(opcode)
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating opcode counts: %w", err)
	}

	return result, nil
}

// DeleteCapture removes every packet of a capture and returns how many were removed.
func (r *PacketRepository) DeleteCapture(ctx context.Context, capture string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM packet_log WHERE capture = $1`, capture)
	if err != nil {
		return 0, fmt.Errorf("deleting capture %q: %w", capture, err)
	}
	return tag.RowsAffected(), nil
}
