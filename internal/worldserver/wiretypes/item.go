// Package wiretypes holds sub-structures that appear in both client and
// server packets and therefore carry both a Write and a Read method.
package wiretypes

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// ItemBonuses lists bonus list ids applied to an item instance.
type ItemBonuses struct {
	Context      uint8
	BonusListIDs []int32
}

func (b *ItemBonuses) Write(w *packet.Writer) {
	w.WriteUInt8(b.Context)
	w.WriteUInt32(uint32(len(b.BonusListIDs)))
	for _, id := range b.BonusListIDs {
		w.WriteInt32(id)
	}
}

func (b *ItemBonuses) Read(r *packet.Reader) error {
	var err error
	if b.Context, err = r.ReadUInt8(); err != nil {
		return fmt.Errorf("reading Context: %w", err)
	}
	n, err := r.ReadArraySize(4)
	if err != nil {
		return fmt.Errorf("reading BonusListIDs count: %w", err)
	}
	b.BonusListIDs = make([]int32, n)
	for i := range b.BonusListIDs {
		if b.BonusListIDs[i], err = r.ReadInt32(); err != nil {
			return fmt.Errorf("reading BonusListIDs[%d]: %w", i, err)
		}
	}
	return nil
}

// ItemMod is one item modifier (upgrade id, transmog appearance, ...).
type ItemMod struct {
	Value int32
	Type  uint8
}

// ItemModList is sent with a 6-bit count.
type ItemModList struct {
	Values []ItemMod
}

func (m *ItemModList) Write(w *packet.Writer) {
	w.WriteLen("ItemModList.Values", len(m.Values), 6)
	w.FlushBits()
	for _, v := range m.Values {
		w.WriteInt32(v.Value)
		w.WriteUInt8(v.Type)
	}
}

func (m *ItemModList) Read(r *packet.Reader) error {
	n, err := r.ReadBits(6)
	if err != nil {
		return fmt.Errorf("reading ItemModList count: %w", err)
	}
	r.ResetBitPos()
	m.Values = make([]ItemMod, n)
	for i := range m.Values {
		if m.Values[i].Value, err = r.ReadInt32(); err != nil {
			return fmt.Errorf("reading ItemModList[%d].Value: %w", i, err)
		}
		if m.Values[i].Type, err = r.ReadUInt8(); err != nil {
			return fmt.Errorf("reading ItemModList[%d].Type: %w", i, err)
		}
	}
	return nil
}

// ItemInstance identifies an item template plus its rolled properties.
// Bonuses and Modifications are optional on the wire.
type ItemInstance struct {
	ItemID               int32
	RandomPropertiesSeed int32
	RandomPropertiesID   int32
	ItemBonus            *ItemBonuses
	Modifications        *ItemModList
}

func (i *ItemInstance) Write(w *packet.Writer) {
	w.WriteInt32(i.ItemID)
	w.WriteInt32(i.RandomPropertiesSeed)
	w.WriteInt32(i.RandomPropertiesID)
	w.WriteBit(i.ItemBonus != nil)
	w.WriteBit(i.Modifications != nil)
	w.FlushBits()
	if i.ItemBonus != nil {
		i.ItemBonus.Write(w)
	}
	if i.Modifications != nil {
		i.Modifications.Write(w)
	}
}

func (i *ItemInstance) Read(r *packet.Reader) error {
	var err error
	if i.ItemID, err = r.ReadInt32(); err != nil {
		return fmt.Errorf("reading ItemID: %w", err)
	}
	if i.RandomPropertiesSeed, err = r.ReadInt32(); err != nil {
		return fmt.Errorf("reading RandomPropertiesSeed: %w", err)
	}
	if i.RandomPropertiesID, err = r.ReadInt32(); err != nil {
		return fmt.Errorf("reading RandomPropertiesID: %w", err)
	}
	hasBonus, err := r.ReadBit()
	if err != nil {
		return fmt.Errorf("reading HasItemBonus: %w", err)
	}
	hasMods, err := r.ReadBit()
	if err != nil {
		return fmt.Errorf("reading HasModifications: %w", err)
	}
	r.ResetBitPos()
	if hasBonus {
		i.ItemBonus = &ItemBonuses{}
		if err := i.ItemBonus.Read(r); err != nil {
			return err
		}
	}
	if hasMods {
		i.Modifications = &ItemModList{}
		if err := i.Modifications.Read(r); err != nil {
			return err
		}
	}
	return nil
}

// ItemGemData is a gem socketed into an item.
type ItemGemData struct {
	Slot uint8
	Item ItemInstance
}

func (g *ItemGemData) Write(w *packet.Writer) {
	w.WriteUInt8(g.Slot)
	g.Item.Write(w)
}

func (g *ItemGemData) Read(r *packet.Reader) error {
	var err error
	if g.Slot, err = r.ReadUInt8(); err != nil {
		return fmt.Errorf("reading gem Slot: %w", err)
	}
	return g.Item.Read(r)
}

// ItemEnchantData is a temporary or permanent enchantment.
type ItemEnchantData struct {
	ID         int32
	Expiration uint32
	Charges    int32
	Slot       uint8
}

func (e *ItemEnchantData) Write(w *packet.Writer) {
	w.WriteInt32(e.ID)
	w.WriteUInt32(e.Expiration)
	w.WriteInt32(e.Charges)
	w.WriteUInt8(e.Slot)
}

func (e *ItemEnchantData) Read(r *packet.Reader) error {
	var err error
	if e.ID, err = r.ReadInt32(); err != nil {
		return fmt.Errorf("reading enchant ID: %w", err)
	}
	if e.Expiration, err = r.ReadUInt32(); err != nil {
		return fmt.Errorf("reading enchant Expiration: %w", err)
	}
	if e.Charges, err = r.ReadInt32(); err != nil {
		return fmt.Errorf("reading enchant Charges: %w", err)
	}
	if e.Slot, err = r.ReadUInt8(); err != nil {
		return fmt.Errorf("reading enchant Slot: %w", err)
	}
	return nil
}
