package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// CancelAura removes an aura; CasterGUID is empty for self-cast auras.
type CancelAura struct {
	SpellID    uint32
	CasterGUID model.ObjectGuid
}

// ParseCancelAura parses CancelAura packet.
func ParseCancelAura(data []byte) (*CancelAura, error) {
	r := packet.NewReader(data)
	p := &CancelAura{}
	var err error
	if p.SpellID, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading SpellID: %w", err)
	}
	if p.CasterGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading CasterGUID: %w", err)
	}
	return p, nil
}

// CancelCast interrupts the player's own cast.
type CancelCast struct {
	CastID  model.ObjectGuid
	SpellID uint32
}

// ParseCancelCast parses CancelCast packet.
func ParseCancelCast(data []byte) (*CancelCast, error) {
	r := packet.NewReader(data)
	p := &CancelCast{}
	var err error
	if p.CastID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading CastID: %w", err)
	}
	if p.SpellID, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading SpellID: %w", err)
	}
	return p, nil
}
