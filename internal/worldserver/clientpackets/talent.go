package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

const (
	// MaxTalentTiers bounds LearnTalents: one talent per tier.
	MaxTalentTiers = 7
	// MaxPvpTalentSlots bounds LearnPvpTalents.
	MaxPvpTalentSlots = 4
)

// LearnTalents learns one talent id per listed tier.
type LearnTalents struct {
	Talents []uint16
}

// ParseLearnTalents parses LearnTalents packet.
func ParseLearnTalents(data []byte) (*LearnTalents, error) {
	r := packet.NewReader(data)
	n, err := r.ReadBits(6)
	if err != nil {
		return nil, fmt.Errorf("reading Talents count: %w", err)
	}
	if n > MaxTalentTiers {
		return nil, fmt.Errorf("reading Talents count: %d exceeds %d", n, MaxTalentTiers)
	}
	p := &LearnTalents{Talents: make([]uint16, n)}
	for i := range p.Talents {
		if p.Talents[i], err = r.ReadUInt16(); err != nil {
			return nil, fmt.Errorf("reading Talents[%d]: %w", i, err)
		}
	}
	return p, nil
}

// PvpTalentSelection is one PvP talent and its slot.
type PvpTalentSelection struct {
	PvPTalentID uint16
	Slot        uint8
}

// LearnPvpTalents learns PvP talents into their slots.
type LearnPvpTalents struct {
	Talents []PvpTalentSelection
}

// ParseLearnPvpTalents parses LearnPvpTalents packet.
func ParseLearnPvpTalents(data []byte) (*LearnPvpTalents, error) {
	r := packet.NewReader(data)
	n, err := r.ReadBits(6)
	if err != nil {
		return nil, fmt.Errorf("reading Talents count: %w", err)
	}
	if n > MaxPvpTalentSlots {
		return nil, fmt.Errorf("reading Talents count: %d exceeds %d", n, MaxPvpTalentSlots)
	}
	p := &LearnPvpTalents{Talents: make([]PvpTalentSelection, n)}
	for i := range p.Talents {
		if p.Talents[i].PvPTalentID, err = r.ReadUInt16(); err != nil {
			return nil, fmt.Errorf("reading Talents[%d].PvPTalentID: %w", i, err)
		}
		if p.Talents[i].Slot, err = r.ReadUInt8(); err != nil {
			return nil, fmt.Errorf("reading Talents[%d].Slot: %w", i, err)
		}
	}
	return p, nil
}

// ConfirmRespecWipe accepts the cost offered by RespecWipeConfirm.
type ConfirmRespecWipe struct {
	RespecMaster model.ObjectGuid
	RespecType   uint8
}

// ParseConfirmRespecWipe parses ConfirmRespecWipe packet.
func ParseConfirmRespecWipe(data []byte) (*ConfirmRespecWipe, error) {
	r := packet.NewReader(data)
	p := &ConfirmRespecWipe{}
	var err error
	if p.RespecMaster, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading RespecMaster: %w", err)
	}
	if p.RespecType, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading RespecType: %w", err)
	}
	return p, nil
}
