// Package serverpackets defines server→client packets. Every packet is a
// plain struct whose Write method returns the opcode (uint16 LE) followed
// by the body.
package serverpackets

import (
	"encoding/binary"
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// Packet is implemented by every server packet.
type Packet interface {
	Write() ([]byte, error)
}

// newWriter starts a packet with its opcode.
func newWriter(op opcodes.Server, capacity int) *packet.Writer {
	w := packet.NewWriter(capacity + 2)
	w.WriteUInt16(uint16(op))
	return w
}

// SplitOpcode separates an encoded server packet into opcode and body.
func SplitOpcode(data []byte) (opcodes.Server, []byte, error) {
	if len(data) < 2 {
		return 0, nil, fmt.Errorf("server packet too short: %d bytes", len(data))
	}
	return opcodes.Server(binary.LittleEndian.Uint16(data)), data[2:], nil
}
