package testutil

import (
	"encoding/binary"
	"testing"

	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// AssertServerOpcode checks the leading little-endian opcode of an encoded server packet.
func AssertServerOpcode(tb testing.TB, expected opcodes.Server, pkt []byte) {
	tb.Helper()

	if len(pkt) < 2 {
		tb.Fatalf("packet too short for opcode: %d bytes, expected %s", len(pkt), expected)
	}

	actual := opcodes.Server(binary.LittleEndian.Uint16(pkt))
	if actual != expected {
		tb.Fatalf("packet opcode mismatch: expected %s, got %s", expected, actual)
	}
}

// AssertUint32LE checks a little-endian uint32 at offset.
func AssertUint32LE(tb testing.TB, expected uint32, data []byte, offset int) {
	tb.Helper()

	if len(data) < offset+4 {
		tb.Fatalf("data too short: need %d bytes for uint32 at offset %d, got %d",
			offset+4, offset, len(data))
	}

	actual := binary.LittleEndian.Uint32(data[offset:])
	if actual != expected {
		tb.Fatalf("uint32 mismatch at offset %d: expected 0x%08X, got 0x%08X", offset, expected, actual)
	}
}
