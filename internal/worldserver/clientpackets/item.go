package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/wiretypes"
)

// SwapInvItem swaps two slots of the backpack/equipment container.
type SwapInvItem struct {
	Inv   wiretypes.InvUpdate
	Slot1 uint8
	Slot2 uint8
}

// ParseSwapInvItem parses SwapInvItem packet.
func ParseSwapInvItem(data []byte) (*SwapInvItem, error) {
	r := packet.NewReader(data)
	p := &SwapInvItem{}
	if err := p.Inv.Read(r); err != nil {
		return nil, fmt.Errorf("reading Inv: %w", err)
	}
	var err error
	if p.Slot2, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading Slot2: %w", err)
	}
	if p.Slot1, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading Slot1: %w", err)
	}
	return p, nil
}

// AutoEquipItem equips the item at (PackSlot, Slot) into its natural slot.
type AutoEquipItem struct {
	Inv      wiretypes.InvUpdate
	PackSlot uint8
	Slot     uint8
}

// ParseAutoEquipItem parses AutoEquipItem packet.
func ParseAutoEquipItem(data []byte) (*AutoEquipItem, error) {
	r := packet.NewReader(data)
	p := &AutoEquipItem{}
	if err := p.Inv.Read(r); err != nil {
		return nil, fmt.Errorf("reading Inv: %w", err)
	}
	var err error
	if p.PackSlot, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading PackSlot: %w", err)
	}
	if p.Slot, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading Slot: %w", err)
	}
	return p, nil
}

// DestroyItem destroys Count items from one slot.
type DestroyItem struct {
	Count       uint32
	ContainerID uint8
	SlotNum     uint8
}

// ParseDestroyItem parses DestroyItem packet.
func ParseDestroyItem(data []byte) (*DestroyItem, error) {
	r := packet.NewReader(data)
	p := &DestroyItem{}
	var err error
	if p.Count, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading Count: %w", err)
	}
	if p.ContainerID, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading ContainerID: %w", err)
	}
	if p.SlotNum, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading SlotNum: %w", err)
	}
	return p, nil
}

// SplitItem moves Quantity items of a stack into an empty slot.
type SplitItem struct {
	Inv          wiretypes.InvUpdate
	FromPackSlot uint8
	FromSlot     uint8
	ToPackSlot   uint8
	ToSlot       uint8
	Quantity     int32
}

// ParseSplitItem parses SplitItem packet.
func ParseSplitItem(data []byte) (*SplitItem, error) {
	r := packet.NewReader(data)
	p := &SplitItem{}
	if err := p.Inv.Read(r); err != nil {
		return nil, fmt.Errorf("reading Inv: %w", err)
	}
	var err error
	if p.FromPackSlot, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading FromPackSlot: %w", err)
	}
	if p.FromSlot, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading FromSlot: %w", err)
	}
	if p.ToPackSlot, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading ToPackSlot: %w", err)
	}
	if p.ToSlot, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading ToSlot: %w", err)
	}
	if p.Quantity, err = r.ReadInt32(); err != nil {
		return nil, fmt.Errorf("reading Quantity: %w", err)
	}
	return p, nil
}
