// Package packetlog reads and writes PKT 3.1 capture files and fans
// captured records out to sinks (capture files, Postgres).
package packetlog

import (
	"errors"
	"fmt"
	"time"

	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// Direction tags a record with the side that sent it. The values are the
// ASCII tags "CMSG" and "SMSG" read as little-endian uint32.
type Direction uint32

const (
	ClientToServer Direction = 0x47534D43
	ServerToClient Direction = 0x47534D53
)

func (d Direction) String() string {
	switch d {
	case ClientToServer:
		return "CMSG"
	case ServerToClient:
		return "SMSG"
	default:
		return fmt.Sprintf("Direction(0x%08X)", uint32(d))
	}
}

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == ClientToServer || d == ServerToClient
}

// Header is the capture file header.
type Header struct {
	ClientBuild uint32
	Locale      [4]byte // e.g. "enUS"
	SessionKey  [40]byte
	StartTime   time.Time
	StartTicks  uint32
}

// ErrOpcodeOutOfRange marks records whose 32-bit opcode field does not
// hold a 16-bit world opcode.
var ErrOpcodeOutOfRange = errors.New("opcode exceeds 16 bits")

const maxOpcode = 0xFFFF

// Record is one captured packet. Payload excludes the opcode.
type Record struct {
	Direction    Direction
	ConnectionID uint32
	ArrivalTicks uint32 // milliseconds, same clock as Header.StartTicks
	Opcode       uint32
	Payload      []byte
}

// ClientOpcode returns the record's opcode as a client opcode. ok is false
// for server records and for opcodes wider than 16 bits.
func (r Record) ClientOpcode() (op opcodes.Client, ok bool) {
	if r.Direction != ClientToServer || r.Opcode > maxOpcode {
		return 0, false
	}
	return opcodes.Client(r.Opcode), true
}

// ServerOpcode is ClientOpcode for server records.
func (r Record) ServerOpcode() (op opcodes.Server, ok bool) {
	if r.Direction != ServerToClient || r.Opcode > maxOpcode {
		return 0, false
	}
	return opcodes.Server(r.Opcode), true
}

// OpcodeName returns the symbolic opcode name for the record's direction.
// Opcodes wider than 16 bits never match a name and are shown in hex.
func (r Record) OpcodeName() string {
	if op, ok := r.ClientOpcode(); ok {
		return op.String()
	}
	if op, ok := r.ServerOpcode(); ok {
		return op.String()
	}
	if r.Direction.Valid() {
		return fmt.Sprintf("%s_UNKNOWN_0x%04X", r.Direction, r.Opcode)
	}
	return fmt.Sprintf("0x%04X", r.Opcode)
}
