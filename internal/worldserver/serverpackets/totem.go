package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// TotemCreated fills a totem slot.
type TotemCreated struct {
	Slot          uint8
	Totem         model.ObjectGuid
	Duration      uint32 // milliseconds
	SpellID       int32
	TimeMod       float32
	CannotDismiss bool
}

// Write serializes the packet.
func (p *TotemCreated) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGTotemCreated, 32)
	w.WriteUInt8(p.Slot)
	w.WritePackedGuid(p.Totem)
	w.WriteUInt32(p.Duration)
	w.WriteInt32(p.SpellID)
	w.WriteFloat(p.TimeMod)
	w.WriteBit(p.CannotDismiss)
	w.FlushBits()
	return w.Result()
}

// TotemMoved moves a totem between slots.
type TotemMoved struct {
	Slot    uint8
	NewSlot uint8
	Totem   model.ObjectGuid
}

// Write serializes the packet.
func (p *TotemMoved) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGTotemMoved, 20)
	w.WriteUInt8(p.Slot)
	w.WriteUInt8(p.NewSlot)
	w.WritePackedGuid(p.Totem)
	return w.Result()
}

// ToyEntry is one toy in AccountToysUpdate.
type ToyEntry struct {
	ItemID     uint32
	IsFavorite bool
	HasFanfare bool
}

// AccountToysUpdate syncs the account's toy box.
type AccountToysUpdate struct {
	IsFullUpdate bool
	Toys         []ToyEntry
}

// Write serializes the packet.
func (p *AccountToysUpdate) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGAccountToysUpdate, 13+len(p.Toys)*5)
	w.WriteBit(p.IsFullUpdate)
	w.FlushBits()
	w.WriteUInt32(uint32(len(p.Toys)))
	w.WriteUInt32(uint32(len(p.Toys)))
	w.WriteUInt32(uint32(len(p.Toys)))
	for _, t := range p.Toys {
		w.WriteUInt32(t.ItemID)
	}
	for _, t := range p.Toys {
		w.WriteBit(t.IsFavorite)
	}
	for _, t := range p.Toys {
		w.WriteBit(t.HasFanfare)
	}
	w.FlushBits()
	return w.Result()
}
