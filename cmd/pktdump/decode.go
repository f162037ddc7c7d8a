package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/CypherCore/CypherCore-sub016/internal/config"
	"github.com/CypherCore/CypherCore-sub016/internal/packetlog"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/clientpackets"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/serverpackets"
)

// decoded is what could be recovered from one record.
type decoded struct {
	Name string
	// Packet is the parsed client packet; server packets are write-only
	// here and leave it nil.
	Packet any
	// Inner is set for SMSG_COMPRESSED_PACKET records that were inflated.
	Inner     string
	InnerSize int
}

type decodeStats struct {
	Client   int
	Server   int
	Decoded  int
	Unknown  int
	Failed   int
	Inflated int
}

func (s decodeStats) log() {
	slog.Info("capture decoded",
		"client", s.Client,
		"server", s.Server,
		"decoded", s.Decoded,
		"unknown", s.Unknown,
		"failed", s.Failed,
		"inflated", s.Inflated)
}

type decoder struct {
	cfg   config.Decode
	stats decodeStats
}

func newDecoder(cfg config.Decode) *decoder {
	return &decoder{cfg: cfg}
}

func (d *decoder) decode(rec packetlog.Record) (decoded, error) {
	out := decoded{Name: rec.OpcodeName()}

	switch rec.Direction {
	case packetlog.ClientToServer:
		op, ok := rec.ClientOpcode()
		if !ok {
			return out, fmt.Errorf("%w: %w 0x%X", clientpackets.ErrUnknownOpcode, packetlog.ErrOpcodeOutOfRange, rec.Opcode)
		}
		pkt, err := clientpackets.Parse(op, rec.Payload)
		if err != nil {
			return out, err
		}
		out.Packet = pkt
	case packetlog.ServerToClient:
		op, ok := rec.ServerOpcode()
		if !ok {
			return out, fmt.Errorf("%w 0x%X", packetlog.ErrOpcodeOutOfRange, rec.Opcode)
		}
		if op != opcodes.SMSGCompressedPacket || !d.cfg.InflateCompressed {
			return out, nil
		}
		inner, err := serverpackets.Decompress(rec.Payload)
		if err != nil {
			return out, fmt.Errorf("inflating: %w", err)
		}
		innerOp, body, err := serverpackets.SplitOpcode(inner)
		if err != nil {
			return out, fmt.Errorf("inflating: %w", err)
		}
		out.Inner = innerOp.String()
		out.InnerSize = len(body)
	}
	return out, nil
}

func (d *decoder) handle(rec packetlog.Record) {
	if rec.Direction == packetlog.ClientToServer {
		d.stats.Client++
	} else {
		d.stats.Server++
	}

	attrs := []any{
		"dir", rec.Direction.String(),
		"conn", rec.ConnectionID,
		"ticks", rec.ArrivalTicks,
		"opcode", fmt.Sprintf("0x%04X", rec.Opcode),
		"size", len(rec.Payload),
	}

	res, err := d.decode(rec)
	attrs = append(attrs, "name", res.Name)
	switch {
	case errors.Is(err, clientpackets.ErrUnknownOpcode), errors.Is(err, packetlog.ErrOpcodeOutOfRange):
		d.stats.Unknown++
		if d.cfg.LogUnknown {
			slog.Info("unknown opcode", attrs...)
		}
	case err != nil:
		d.stats.Failed++
		slog.Warn("decode failed", append(attrs, "err", err)...)
	default:
		d.stats.Decoded++
		if res.Packet != nil {
			attrs = append(attrs, "packet", res.Packet)
		}
		if res.Inner != "" {
			d.stats.Inflated++
			attrs = append(attrs, "inner", res.Inner, "inner_size", res.InnerSize)
		}
		slog.Info("packet", attrs...)
	}

	if d.cfg.HexDumpLimit > 0 && len(rec.Payload) > 0 {
		n := min(len(rec.Payload), d.cfg.HexDumpLimit)
		slog.Debug("payload", "opcode", fmt.Sprintf("0x%04X", rec.Opcode), "hex", hex.EncodeToString(rec.Payload[:n]))
	}
}
