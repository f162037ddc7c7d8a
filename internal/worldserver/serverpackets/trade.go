package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/wiretypes"
)

// TradeStatusCode is sent in 5 bits and selects the tail of TradeStatus.
type TradeStatusCode uint8

const (
	TradeStatusPlayerBusy          TradeStatusCode = 0
	TradeStatusProposed            TradeStatusCode = 1
	TradeStatusInitiated           TradeStatusCode = 2
	TradeStatusCancelled           TradeStatusCode = 3
	TradeStatusAccepted            TradeStatusCode = 4
	TradeStatusAlreadyTrading      TradeStatusCode = 5
	TradeStatusNoTarget            TradeStatusCode = 6
	TradeStatusUnaccepted          TradeStatusCode = 7
	TradeStatusComplete            TradeStatusCode = 8
	TradeStatusStateChanged        TradeStatusCode = 9
	TradeStatusTooFarAway          TradeStatusCode = 10
	TradeStatusWrongFaction        TradeStatusCode = 11
	TradeStatusFailed              TradeStatusCode = 12
	TradeStatusPetitionPending     TradeStatusCode = 13
	TradeStatusPlayerIgnored       TradeStatusCode = 14
	TradeStatusTargetStunned       TradeStatusCode = 15
	TradeStatusTargetDead          TradeStatusCode = 16
	TradeStatusDead                TradeStatusCode = 17
	TradeStatusLoggingOut          TradeStatusCode = 18
	TradeStatusTargetLoggingOut    TradeStatusCode = 19
	TradeStatusRestrictedAccount   TradeStatusCode = 20
	TradeStatusWrongRealm          TradeStatusCode = 21
	TradeStatusNotOnTaplist        TradeStatusCode = 22
	TradeStatusCurrencyNotTradable TradeStatusCode = 23
	TradeStatusNotEnoughCurrency   TradeStatusCode = 24
)

// TradeStatus reports a trade state change. Only the fields matching
// Status are written.
type TradeStatus struct {
	Status                   TradeStatusCode
	PartnerIsSameBnetAccount bool

	// Failed
	FailureForYou bool
	BagResult     int32
	ItemID        int32

	// Initiated
	ID uint32

	// Proposed
	Partner        model.ObjectGuid
	PartnerAccount model.ObjectGuid

	// WrongRealm, NotOnTaplist
	TradeSlot uint8

	// CurrencyNotTradable, NotEnoughCurrency
	CurrencyType     int32
	CurrencyQuantity int32
}

// Write serializes the packet.
func (p *TradeStatus) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGTradeStatus, 40)
	w.WriteBit(p.PartnerIsSameBnetAccount)
	w.WriteEnum("TradeStatus.Status", uint32(p.Status), 5)
	switch p.Status {
	case TradeStatusFailed:
		w.WriteBit(p.FailureForYou)
		w.FlushBits()
		w.WriteInt32(p.BagResult)
		w.WriteInt32(p.ItemID)
	case TradeStatusInitiated:
		w.WriteUInt32(p.ID)
	case TradeStatusProposed:
		w.WritePackedGuid(p.Partner)
		w.WritePackedGuid(p.PartnerAccount)
	case TradeStatusWrongRealm, TradeStatusNotOnTaplist:
		w.WriteUInt8(p.TradeSlot)
	case TradeStatusCurrencyNotTradable, TradeStatusNotEnoughCurrency:
		w.WriteInt32(p.CurrencyType)
		w.WriteInt32(p.CurrencyQuantity)
	default:
		w.FlushBits()
	}
	return w.Result()
}

// UnwrappedTradeItem carries the details only visible once a gift is unwrapped.
type UnwrappedTradeItem struct {
	EnchantID          int32
	OnUseEnchantmentID int32
	Creator            model.ObjectGuid
	Charges            int32
	MaxDurability      uint32
	Durability         uint32
	Gems               []wiretypes.ItemGemData
	Lock               bool
}

func (u *UnwrappedTradeItem) write(w *packet.Writer) {
	w.WriteInt32(u.EnchantID)
	w.WriteInt32(u.OnUseEnchantmentID)
	w.WritePackedGuid(u.Creator)
	w.WriteInt32(u.Charges)
	w.WriteUInt32(u.MaxDurability)
	w.WriteUInt32(u.Durability)
	w.WriteLen("UnwrappedTradeItem.Gems", len(u.Gems), 2)
	w.WriteBit(u.Lock)
	w.FlushBits()
	for i := range u.Gems {
		u.Gems[i].Write(w)
	}
}

// TradeItem is one slot of the trade window.
type TradeItem struct {
	Slot        uint8
	EntryID     int32
	StackCount  int32
	GiftCreator model.ObjectGuid
	Item        wiretypes.ItemInstance
	Unwrapped   *UnwrappedTradeItem
}

func (t *TradeItem) write(w *packet.Writer) {
	w.WriteUInt8(t.Slot)
	w.WriteInt32(t.EntryID)
	w.WriteInt32(t.StackCount)
	w.WritePackedGuid(t.GiftCreator)
	t.Item.Write(w)
	w.WriteBit(t.Unwrapped != nil)
	w.FlushBits()
	if t.Unwrapped != nil {
		t.Unwrapped.write(w)
	}
}

// TradeUpdated is the full contents of one side of the trade window.
type TradeUpdated struct {
	WhichPlayer         uint8 // 0 = own side, 1 = partner
	ID                  uint32
	ClientStateIndex    uint32
	CurrentStateIndex   uint32
	Gold                uint64
	CurrencyType        int32
	CurrencyQuantity    int32
	ProposedEnchantment int32
	Items               []TradeItem
}

// Write serializes the packet.
func (p *TradeUpdated) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGTradeUpdated, 48+len(p.Items)*64)
	w.WriteUInt8(p.WhichPlayer)
	w.WriteUInt32(p.ID)
	w.WriteUInt32(p.ClientStateIndex)
	w.WriteUInt32(p.CurrentStateIndex)
	w.WriteUInt64(p.Gold)
	w.WriteInt32(p.CurrencyType)
	w.WriteInt32(p.CurrencyQuantity)
	w.WriteInt32(p.ProposedEnchantment)
	w.WriteUInt32(uint32(len(p.Items)))
	for i := range p.Items {
		p.Items[i].write(w)
	}
	return w.Result()
}
