// Package opcodes enumerates the world protocol opcodes understood by this
// packet layer. The numeric values belong to a single client build.
package opcodes

import "fmt"

func (op Client) String() string {
	if name, ok := clientNames[op]; ok {
		return name
	}
	return fmt.Sprintf("CMSG_UNKNOWN_0x%04X", uint16(op))
}

// Known reports whether op has a name in this table.
func (op Client) Known() bool {
	_, ok := clientNames[op]
	return ok
}

func (op Server) String() string {
	if name, ok := serverNames[op]; ok {
		return name
	}
	return fmt.Sprintf("SMSG_UNKNOWN_0x%04X", uint16(op))
}

// Known reports whether op has a name in this table.
func (op Server) Known() bool {
	_, ok := serverNames[op]
	return ok
}

// AllClient returns every named client opcode (unordered).
func AllClient() []Client {
	out := make([]Client, 0, len(clientNames))
	for op := range clientNames {
		out = append(out, op)
	}
	return out
}

// AllServer returns every named server opcode (unordered).
func AllServer() []Server {
	out := make([]Server, 0, len(serverNames))
	for op := range serverNames {
		out = append(out, op)
	}
	return out
}
