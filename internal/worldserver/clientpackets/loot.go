package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// LootUnit opens the loot window of a corpse.
type LootUnit struct {
	Unit model.ObjectGuid
}

// ParseLootUnit parses LootUnit packet.
func ParseLootUnit(data []byte) (*LootUnit, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading Unit: %w", err)
	}
	return &LootUnit{Unit: g}, nil
}

// LootRequest names one slot of one loot object.
type LootRequest struct {
	Object     model.ObjectGuid
	LootListID uint8
}

// packed guid (>= 2 bytes) + list id
const lootRequestMinSize = 3

func readLootRequests(r *packet.Reader, n int) ([]LootRequest, error) {
	out := make([]LootRequest, n)
	var err error
	for i := range out {
		if out[i].Object, err = r.ReadPackedGuid(); err != nil {
			return nil, fmt.Errorf("reading Loot[%d].Object: %w", i, err)
		}
		if out[i].LootListID, err = r.ReadUInt8(); err != nil {
			return nil, fmt.Errorf("reading Loot[%d].LootListID: %w", i, err)
		}
	}
	return out, nil
}

// LootItem takes one or more items (AoE loot sends several objects).
type LootItem struct {
	Loot []LootRequest
}

// ParseLootItem parses LootItem packet.
func ParseLootItem(data []byte) (*LootItem, error) {
	r := packet.NewReader(data)
	n, err := r.ReadArraySize(lootRequestMinSize)
	if err != nil {
		return nil, fmt.Errorf("reading Loot count: %w", err)
	}
	loot, err := readLootRequests(r, n)
	if err != nil {
		return nil, err
	}
	return &LootItem{Loot: loot}, nil
}

// MasterLootItem hands items to Target on behalf of the master looter.
type MasterLootItem struct {
	Loot   []LootRequest
	Target model.ObjectGuid
}

// ParseMasterLootItem parses MasterLootItem packet.
func ParseMasterLootItem(data []byte) (*MasterLootItem, error) {
	r := packet.NewReader(data)
	p := &MasterLootItem{}
	n, err := r.ReadArraySize(lootRequestMinSize)
	if err != nil {
		return nil, fmt.Errorf("reading Loot count: %w", err)
	}
	if p.Target, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading Target: %w", err)
	}
	if p.Loot, err = readLootRequests(r, n); err != nil {
		return nil, err
	}
	return p, nil
}

// LootRelease closes the loot window of Unit.
type LootRelease struct {
	Unit model.ObjectGuid
}

// ParseLootRelease parses LootRelease packet.
func ParseLootRelease(data []byte) (*LootRelease, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading Unit: %w", err)
	}
	return &LootRelease{Unit: g}, nil
}

// LootMoney takes the coins from the open loot window.
type LootMoney struct {
	IsSoftInteract bool
}

// ParseLootMoney parses LootMoney packet.
func ParseLootMoney(data []byte) (*LootMoney, error) {
	soft, err := packet.NewReader(data).ReadBit()
	if err != nil {
		return nil, fmt.Errorf("reading IsSoftInteract: %w", err)
	}
	return &LootMoney{IsSoftInteract: soft}, nil
}

// LootRoll answers StartLootRoll; RollType is one of the serverpackets Roll* values.
type LootRoll struct {
	LootObj    model.ObjectGuid
	LootListID uint8
	RollType   uint8
}

// ParseLootRoll parses LootRoll packet.
func ParseLootRoll(data []byte) (*LootRoll, error) {
	r := packet.NewReader(data)
	p := &LootRoll{}
	var err error
	if p.LootObj, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading LootObj: %w", err)
	}
	if p.LootListID, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading LootListID: %w", err)
	}
	if p.RollType, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading RollType: %w", err)
	}
	return p, nil
}

// SetLootSpecialization chooses the spec used for personal loot.
type SetLootSpecialization struct {
	SpecID uint32
}

// ParseSetLootSpecialization parses SetLootSpecialization packet.
func ParseSetLootSpecialization(data []byte) (*SetLootSpecialization, error) {
	id, err := packet.NewReader(data).ReadUInt32()
	if err != nil {
		return nil, fmt.Errorf("reading SpecID: %w", err)
	}
	return &SetLootSpecialization{SpecID: id}, nil
}
