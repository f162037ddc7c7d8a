package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// AuthSession answers AuthChallenge. RealmJoinTicket is the opaque ticket
// issued by the login service.
type AuthSession struct {
	DosResponse     uint64
	RegionID        uint32
	BattlegroupID   uint32
	RealmID         uint32
	LocalChallenge  [16]byte
	Digest          [24]byte
	UseIPv6         bool
	RealmJoinTicket string
}

// ParseAuthSession parses AuthSession packet.
func ParseAuthSession(data []byte) (*AuthSession, error) {
	r := packet.NewReader(data)
	p := &AuthSession{}
	var err error

	if p.DosResponse, err = r.ReadUInt64(); err != nil {
		return nil, fmt.Errorf("reading DosResponse: %w", err)
	}
	if p.RegionID, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading RegionID: %w", err)
	}
	if p.BattlegroupID, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading BattlegroupID: %w", err)
	}
	if p.RealmID, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading RealmID: %w", err)
	}
	challenge, err := r.ReadBytes(len(p.LocalChallenge))
	if err != nil {
		return nil, fmt.Errorf("reading LocalChallenge: %w", err)
	}
	copy(p.LocalChallenge[:], challenge)
	digest, err := r.ReadBytes(len(p.Digest))
	if err != nil {
		return nil, fmt.Errorf("reading Digest: %w", err)
	}
	copy(p.Digest[:], digest)
	if p.UseIPv6, err = r.ReadBit(); err != nil {
		return nil, fmt.Errorf("reading UseIPv6: %w", err)
	}
	n, err := r.ReadArraySize(1)
	if err != nil {
		return nil, fmt.Errorf("reading RealmJoinTicket size: %w", err)
	}
	if p.RealmJoinTicket, err = r.ReadString(n); err != nil {
		return nil, fmt.Errorf("reading RealmJoinTicket: %w", err)
	}
	return p, nil
}

// Ping is the client keepalive; the server answers with Pong.
type Ping struct {
	Serial  uint32
	Latency uint32
}

// ParsePing parses Ping packet.
func ParsePing(data []byte) (*Ping, error) {
	r := packet.NewReader(data)
	p := &Ping{}
	var err error
	if p.Serial, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading Serial: %w", err)
	}
	if p.Latency, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading Latency: %w", err)
	}
	return p, nil
}
