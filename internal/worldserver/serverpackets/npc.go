package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/wiretypes"
)

// ClientGossipOption is one option of a gossip menu.
type ClientGossipOption struct {
	ClientOption int32
	OptionNPC    uint8 // icon
	OptionFlags  int8
	OptionCost   int32
	Text         string
	Confirm      string
}

// ClientGossipText is one quest line of a gossip menu.
type ClientGossipText struct {
	QuestID         uint32
	ContentTuningID int32
	QuestType       int32
	QuestFlags      [2]uint32
	Repeatable      bool
	QuestTitle      string
}

// GossipMessage opens a gossip menu with options and offered quests.
type GossipMessage struct {
	GossipGUID          model.ObjectGuid
	GossipID            int32
	FriendshipFactionID int32
	TextID              int32
	GossipOptions       []ClientGossipOption
	GossipText          []ClientGossipText
}

// Write serializes the packet.
func (p *GossipMessage) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGossipMessage, 64+len(p.GossipOptions)*48+len(p.GossipText)*48)
	w.WritePackedGuid(p.GossipGUID)
	w.WriteInt32(p.GossipID)
	w.WriteInt32(p.FriendshipFactionID)
	w.WriteInt32(p.TextID)
	w.WriteUInt32(uint32(len(p.GossipOptions)))
	w.WriteUInt32(uint32(len(p.GossipText)))

	for _, o := range p.GossipOptions {
		w.WriteInt32(o.ClientOption)
		w.WriteUInt8(o.OptionNPC)
		w.WriteInt8(o.OptionFlags)
		w.WriteInt32(o.OptionCost)
		w.WriteLen("ClientGossipOption.Text", len(o.Text), 12)
		w.WriteLen("ClientGossipOption.Confirm", len(o.Confirm), 12)
		w.FlushBits()
		w.WriteString(o.Text)
		w.WriteString(o.Confirm)
	}
	for _, t := range p.GossipText {
		w.WriteUInt32(t.QuestID)
		w.WriteInt32(t.ContentTuningID)
		w.WriteInt32(t.QuestType)
		w.WriteUInt32(t.QuestFlags[0])
		w.WriteUInt32(t.QuestFlags[1])
		w.WriteBit(t.Repeatable)
		w.WriteLen("ClientGossipText.QuestTitle", len(t.QuestTitle), 9)
		w.FlushBits()
		w.WriteString(t.QuestTitle)
	}
	return w.Result()
}

// GossipComplete has no body fields.
type GossipComplete struct{}

// Write serializes the packet.
func (p *GossipComplete) Write() ([]byte, error) {
	return newWriter(opcodes.SMSGGossipComplete, 0).Result()
}

// VendorItem is one row in a vendor window. Quantity -1 means unlimited.
type VendorItem struct {
	MuID                  int32
	Type                  int32 // 1 = item, 2 = currency
	Item                  wiretypes.ItemInstance
	Quantity              int32
	Price                 uint64
	Durability            int32
	StackCount            int32
	ExtendedCostID        int32
	PlayerConditionFailed int32
	Locked                bool
	DoNotFilterOnVendor   bool
	Refundable            bool
}

// VendorInventory lists a vendor's items.
type VendorInventory struct {
	Vendor model.ObjectGuid
	Reason uint8
	Items  []VendorItem
}

// Write serializes the packet.
func (p *VendorInventory) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGVendorInventory, 24+len(p.Items)*64)
	w.WritePackedGuid(p.Vendor)
	w.WriteUInt8(p.Reason)
	w.WriteUInt32(uint32(len(p.Items)))
	for i := range p.Items {
		it := &p.Items[i]
		w.WriteUInt64(it.Price)
		w.WriteInt32(it.MuID)
		w.WriteInt32(it.Type)
		w.WriteInt32(it.Durability)
		w.WriteInt32(it.StackCount)
		w.WriteInt32(it.Quantity)
		w.WriteInt32(it.ExtendedCostID)
		w.WriteInt32(it.PlayerConditionFailed)
		it.Item.Write(w)
		w.WriteBit(it.Locked)
		w.WriteBit(it.DoNotFilterOnVendor)
		w.WriteBit(it.Refundable)
		w.FlushBits()
	}
	return w.Result()
}

// BinderConfirm asks to bind the hearthstone at an innkeeper.
type BinderConfirm struct {
	Unit model.ObjectGuid
}

// Write serializes the packet.
func (p *BinderConfirm) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGBinderConfirm, 18)
	w.WritePackedGuid(p.Unit)
	return w.Result()
}

// ShowBank opens the bank window.
type ShowBank struct {
	Guid model.ObjectGuid
}

// Write serializes the packet.
func (p *ShowBank) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGShowBank, 18)
	w.WritePackedGuid(p.Guid)
	return w.Result()
}
