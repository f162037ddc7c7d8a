package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/wiretypes"
)

// Inventory results that carry extra data in InventoryChangeFailure.
const (
	InvResultOk                                   int8 = 0
	InvResultCantEquipLevel                       int8 = 1
	InvResultItemMaxLimitCategoryCountExceeded    int8 = 53
	InvResultItemMaxLimitCategorySocketedExceeded int8 = 54
	InvResultItemMaxLimitCategoryEquippedExceeded int8 = 76
	InvResultEventAutoEquipBindConfirm            int8 = 80
)

// InventoryChangeFailure reports why an inventory operation was refused.
// Level, the source/destination fields and LimitCategory are only sent for
// the results that use them.
type InventoryChangeFailure struct {
	BagResult      int8
	Item           [2]model.ObjectGuid
	ContainerBSlot uint8

	Level         int32
	SrcContainer  model.ObjectGuid
	SrcSlot       int32
	DstContainer  model.ObjectGuid
	LimitCategory int32
}

// Write serializes the packet.
func (p *InventoryChangeFailure) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGInventoryChangeFailure, 64)
	w.WriteInt8(p.BagResult)
	w.WritePackedGuid(p.Item[0])
	w.WritePackedGuid(p.Item[1])
	w.WriteUInt8(p.ContainerBSlot)

	switch p.BagResult {
	case InvResultCantEquipLevel:
		w.WriteInt32(p.Level)
	case InvResultEventAutoEquipBindConfirm:
		w.WritePackedGuid(p.SrcContainer)
		w.WriteInt32(p.SrcSlot)
		w.WritePackedGuid(p.DstContainer)
	case InvResultItemMaxLimitCategoryCountExceeded,
		InvResultItemMaxLimitCategorySocketedExceeded,
		InvResultItemMaxLimitCategoryEquippedExceeded:
		w.WriteInt32(p.LimitCategory)
	}
	return w.Result()
}

// SellResponse answers a vendor sale.
type SellResponse struct {
	VendorGUID model.ObjectGuid
	ItemGUIDs  []model.ObjectGuid
	Reason     int32
}

// Write serializes the packet.
func (p *SellResponse) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGSellResponse, 26+len(p.ItemGUIDs)*18)
	w.WritePackedGuid(p.VendorGUID)
	w.WriteUInt32(uint32(len(p.ItemGUIDs)))
	w.WriteInt32(p.Reason)
	for _, g := range p.ItemGUIDs {
		w.WritePackedGuid(g)
	}
	return w.Result()
}

// Item push display modes, sent in 3 bits.
const (
	ItemPushDisplayNormal        uint8 = 0
	ItemPushDisplayEncounterLoot uint8 = 1
	ItemPushDisplayNone          uint8 = 2
)

// ItemPushResult announces an item entering a player's bags.
type ItemPushResult struct {
	PlayerGUID            model.ObjectGuid
	Slot                  uint8
	SlotInBag             int32
	Item                  wiretypes.ItemInstance
	QuestLogItemID        int32
	Quantity              int32
	QuantityInInventory   int32
	DungeonEncounterID    int32
	BattlePetSpeciesID    int32
	BattlePetBreedID      int32
	BattlePetBreedQuality uint32
	BattlePetLevel        int32
	ItemGUID              model.ObjectGuid
	Pushed                bool
	Created               bool
	DisplayText           uint8
	IsBonusRoll           bool
	IsEncounterLoot       bool
}

// Write serializes the packet.
func (p *ItemPushResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGItemPushResult, 96)
	w.WritePackedGuid(p.PlayerGUID)
	w.WriteUInt8(p.Slot)
	w.WriteInt32(p.SlotInBag)
	w.WriteInt32(p.QuestLogItemID)
	w.WriteInt32(p.Quantity)
	w.WriteInt32(p.QuantityInInventory)
	w.WriteInt32(p.DungeonEncounterID)
	w.WriteInt32(p.BattlePetSpeciesID)
	w.WriteInt32(p.BattlePetBreedID)
	w.WriteUInt32(p.BattlePetBreedQuality)
	w.WriteInt32(p.BattlePetLevel)
	w.WritePackedGuid(p.ItemGUID)
	w.WriteBit(p.Pushed)
	w.WriteBit(p.Created)
	w.WriteEnum("ItemPushResult.DisplayText", uint32(p.DisplayText), 3)
	w.WriteBit(p.IsBonusRoll)
	w.WriteBit(p.IsEncounterLoot)
	w.FlushBits()
	p.Item.Write(w)
	return w.Result()
}
