package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/serverpackets"
)

func checkFactionIndex(idx uint32) error {
	if idx >= serverpackets.FactionCount {
		return fmt.Errorf("faction index %d out of range", idx)
	}
	return nil
}

// SetFactionAtWar declares war on a faction.
type SetFactionAtWar struct {
	FactionIndex uint8
}

// ParseSetFactionAtWar parses SetFactionAtWar packet.
func ParseSetFactionAtWar(data []byte) (*SetFactionAtWar, error) {
	idx, err := packet.NewReader(data).ReadUInt8()
	if err != nil {
		return nil, fmt.Errorf("reading FactionIndex: %w", err)
	}
	return &SetFactionAtWar{FactionIndex: idx}, nil
}

// SetFactionNotAtWar makes peace with a faction.
type SetFactionNotAtWar struct {
	FactionIndex uint8
}

// ParseSetFactionNotAtWar parses SetFactionNotAtWar packet.
func ParseSetFactionNotAtWar(data []byte) (*SetFactionNotAtWar, error) {
	idx, err := packet.NewReader(data).ReadUInt8()
	if err != nil {
		return nil, fmt.Errorf("reading FactionIndex: %w", err)
	}
	return &SetFactionNotAtWar{FactionIndex: idx}, nil
}

// SetWatchedFaction selects the faction shown on the experience bar.
type SetWatchedFaction struct {
	FactionIndex uint32
}

// ParseSetWatchedFaction parses SetWatchedFaction packet.
func ParseSetWatchedFaction(data []byte) (*SetWatchedFaction, error) {
	idx, err := packet.NewReader(data).ReadUInt32()
	if err != nil {
		return nil, fmt.Errorf("reading FactionIndex: %w", err)
	}
	if err := checkFactionIndex(idx); err != nil {
		return nil, fmt.Errorf("reading FactionIndex: %w", err)
	}
	return &SetWatchedFaction{FactionIndex: idx}, nil
}

// SetFactionInactive moves a faction to or from the inactive list.
type SetFactionInactive struct {
	Index uint32
	State bool
}

// ParseSetFactionInactive parses SetFactionInactive packet.
func ParseSetFactionInactive(data []byte) (*SetFactionInactive, error) {
	r := packet.NewReader(data)
	idx, err := r.ReadUInt32()
	if err != nil {
		return nil, fmt.Errorf("reading Index: %w", err)
	}
	if err := checkFactionIndex(idx); err != nil {
		return nil, fmt.Errorf("reading Index: %w", err)
	}
	state, err := r.ReadBit()
	if err != nil {
		return nil, fmt.Errorf("reading State: %w", err)
	}
	return &SetFactionInactive{Index: idx, State: state}, nil
}
