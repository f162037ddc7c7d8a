package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/wiretypes"
)

// Loot slot UI types, sent in 3 bits.
const (
	LootSlotAllowLoot   uint8 = 0
	LootSlotRollOngoing uint8 = 1
	LootSlotMaster      uint8 = 2
	LootSlotLocked      uint8 = 3
	LootSlotOwner       uint8 = 4
)

// LootItemData describes one lootable item slot.
type LootItemData struct {
	Type              uint8 // 2 bits
	UIType            uint8 // 3 bits
	CanTradeToTapList bool
	Loot              wiretypes.ItemInstance
	Quantity          uint32
	LootItemType      uint8
	LootListID        uint8
}

func (d *LootItemData) write(w *packet.Writer) {
	w.WriteEnum("LootItemData.Type", uint32(d.Type), 2)
	w.WriteEnum("LootItemData.UIType", uint32(d.UIType), 3)
	w.WriteBit(d.CanTradeToTapList)
	w.FlushBits()
	d.Loot.Write(w)
	w.WriteUInt32(d.Quantity)
	w.WriteUInt8(d.LootItemType)
	w.WriteUInt8(d.LootListID)
}

// LootCurrency is one currency in the loot window.
type LootCurrency struct {
	CurrencyID uint32
	Quantity   uint32
	LootListID uint8
	UIType     uint8 // 3 bits
}

// LootResponse opens the loot window.
type LootResponse struct {
	Owner         model.ObjectGuid
	LootObj       model.ObjectGuid
	FailureReason uint8
	AcquireReason uint8
	LootMethod    uint8
	Threshold     uint8
	Coins         uint32
	Items         []LootItemData
	Currencies    []LootCurrency
	Acquired      bool
	AELooting     bool
}

// Write serializes the packet.
func (p *LootResponse) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGLootResponse, 64+len(p.Items)*40+len(p.Currencies)*10)
	w.WritePackedGuid(p.Owner)
	w.WritePackedGuid(p.LootObj)
	w.WriteUInt8(p.FailureReason)
	w.WriteUInt8(p.AcquireReason)
	w.WriteUInt8(p.LootMethod)
	w.WriteUInt8(p.Threshold)
	w.WriteUInt32(p.Coins)
	w.WriteUInt32(uint32(len(p.Items)))
	w.WriteUInt32(uint32(len(p.Currencies)))
	w.WriteBit(p.Acquired)
	w.WriteBit(p.AELooting)
	w.FlushBits()

	for i := range p.Items {
		p.Items[i].write(w)
	}
	for _, c := range p.Currencies {
		w.WriteUInt32(c.CurrencyID)
		w.WriteUInt32(c.Quantity)
		w.WriteUInt8(c.LootListID)
		w.WriteEnum("LootCurrency.UIType", uint32(c.UIType), 3)
		w.FlushBits()
	}
	return w.Result()
}

// LootRemoved removes a looted slot from every open loot window.
type LootRemoved struct {
	Owner      model.ObjectGuid
	LootObj    model.ObjectGuid
	LootListID uint8
}

// Write serializes the packet.
func (p *LootRemoved) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGLootRemoved, 40)
	w.WritePackedGuid(p.Owner)
	w.WritePackedGuid(p.LootObj)
	w.WriteUInt8(p.LootListID)
	return w.Result()
}

// LootReleaseResponse confirms the loot window was closed.
type LootReleaseResponse struct {
	LootObj model.ObjectGuid
	Owner   model.ObjectGuid
}

// Write serializes the packet.
func (p *LootReleaseResponse) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGLootRelease, 36)
	w.WritePackedGuid(p.LootObj)
	w.WritePackedGuid(p.Owner)
	return w.Result()
}

// LootMoneyNotify reports the player's share of looted money.
type LootMoneyNotify struct {
	Money      uint64
	MoneyMod   uint64
	SoleLooter bool
}

// Write serializes the packet.
func (p *LootMoneyNotify) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGLootMoneyNotify, 17)
	w.WriteUInt64(p.Money)
	w.WriteUInt64(p.MoneyMod)
	w.WriteBit(p.SoleLooter)
	w.FlushBits()
	return w.Result()
}

// CoinRemoved clears the coins of a loot window.
type CoinRemoved struct {
	LootObj model.ObjectGuid
}

// Write serializes the packet.
func (p *CoinRemoved) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGCoinRemoved, 18)
	w.WritePackedGuid(p.LootObj)
	return w.Result()
}

// Roll vote types; ValidRolls in StartLootRoll is a mask of 1<<RollType.
const (
	RollPass       uint8 = 0
	RollNeed       uint8 = 1
	RollGreed      uint8 = 2
	RollDisenchant uint8 = 3
)

// StartLootRoll opens a need/greed roll for one item.
type StartLootRoll struct {
	LootObj    model.ObjectGuid
	MapID      int32
	RollTime   uint32 // milliseconds
	ValidRolls uint8
	Method     uint8
	Item       LootItemData
}

// Write serializes the packet.
func (p *StartLootRoll) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGStartLootRoll, 64)
	w.WritePackedGuid(p.LootObj)
	w.WriteInt32(p.MapID)
	w.WriteUInt32(p.RollTime)
	w.WriteUInt8(p.ValidRolls)
	w.WriteUInt8(p.Method)
	p.Item.write(w)
	return w.Result()
}

// LootRollBroadcast tells the group how one member rolled.
type LootRollBroadcast struct {
	LootObj    model.ObjectGuid
	Player     model.ObjectGuid
	Roll       int32 // -1 when passed
	RollType   uint8
	Item       LootItemData
	Autopassed bool
}

// Write serializes the packet.
func (p *LootRollBroadcast) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGLootRoll, 72)
	w.WritePackedGuid(p.LootObj)
	w.WritePackedGuid(p.Player)
	w.WriteInt32(p.Roll)
	w.WriteUInt8(p.RollType)
	p.Item.write(w)
	w.WriteBit(p.Autopassed)
	w.FlushBits()
	return w.Result()
}

// LootRollWon announces the winner of a loot roll.
type LootRollWon struct {
	LootObj  model.ObjectGuid
	Winner   model.ObjectGuid
	Roll     int32
	RollType uint8
	Item     LootItemData
	MainSpec bool
}

// Write serializes the packet.
func (p *LootRollWon) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGLootRollWon, 72)
	w.WritePackedGuid(p.LootObj)
	w.WritePackedGuid(p.Winner)
	w.WriteInt32(p.Roll)
	w.WriteUInt8(p.RollType)
	p.Item.write(w)
	w.WriteBit(p.MainSpec)
	w.FlushBits()
	return w.Result()
}

// LootAllPassed reports that everyone passed on an item.
type LootAllPassed struct {
	LootObj model.ObjectGuid
	Item    LootItemData
}

// Write serializes the packet.
func (p *LootAllPassed) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGLootAllPassed, 48)
	w.WritePackedGuid(p.LootObj)
	p.Item.write(w)
	return w.Result()
}

// LootList announces who may loot a corpse.
type LootList struct {
	Owner            model.ObjectGuid
	LootObj          model.ObjectGuid
	Master           *model.ObjectGuid
	RoundRobinWinner *model.ObjectGuid
}

// Write serializes the packet.
func (p *LootList) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGLootList, 72)
	w.WritePackedGuid(p.Owner)
	w.WritePackedGuid(p.LootObj)
	w.WriteBit(p.Master != nil)
	w.WriteBit(p.RoundRobinWinner != nil)
	w.FlushBits()
	if p.Master != nil {
		w.WritePackedGuid(*p.Master)
	}
	if p.RoundRobinWinner != nil {
		w.WritePackedGuid(*p.RoundRobinWinner)
	}
	return w.Result()
}
