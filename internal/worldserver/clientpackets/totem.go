package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// MaxTotemSlots is the number of summon slots a player can fill with totems.
const MaxTotemSlots = 4

// TotemDestroyed dismisses the totem in Slot.
type TotemDestroyed struct {
	Slot      uint8
	TotemGUID model.ObjectGuid
}

// ParseTotemDestroyed parses TotemDestroyed packet.
func ParseTotemDestroyed(data []byte) (*TotemDestroyed, error) {
	r := packet.NewReader(data)
	p := &TotemDestroyed{}
	var err error
	if p.Slot, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading Slot: %w", err)
	}
	if p.Slot >= MaxTotemSlots {
		return nil, fmt.Errorf("reading Slot: %d out of range", p.Slot)
	}
	if p.TotemGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading TotemGUID: %w", err)
	}
	return p, nil
}

// AddToy learns the toy taught by the item in Guid.
type AddToy struct {
	Guid model.ObjectGuid
}

// ParseAddToy parses AddToy packet.
func ParseAddToy(data []byte) (*AddToy, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading Guid: %w", err)
	}
	return &AddToy{Guid: g}, nil
}
