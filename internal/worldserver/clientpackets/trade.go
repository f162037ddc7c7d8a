package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// AcceptTrade carries the TradeUpdated StateIndex the client agreed to.
type AcceptTrade struct {
	StateIndex uint32
}

// ParseAcceptTrade parses AcceptTrade packet.
func ParseAcceptTrade(data []byte) (*AcceptTrade, error) {
	idx, err := packet.NewReader(data).ReadUInt32()
	if err != nil {
		return nil, fmt.Errorf("reading StateIndex: %w", err)
	}
	return &AcceptTrade{StateIndex: idx}, nil
}

// BeginTrade has no body fields.
type BeginTrade struct{}

// ParseBeginTrade parses BeginTrade packet.
func ParseBeginTrade(_ []byte) (*BeginTrade, error) { return &BeginTrade{}, nil }

// BusyTrade has no body fields.
type BusyTrade struct{}

// ParseBusyTrade parses BusyTrade packet.
func ParseBusyTrade(_ []byte) (*BusyTrade, error) { return &BusyTrade{}, nil }

// CancelTrade has no body fields.
type CancelTrade struct{}

// ParseCancelTrade parses CancelTrade packet.
func ParseCancelTrade(_ []byte) (*CancelTrade, error) { return &CancelTrade{}, nil }

// IgnoreTrade has no body fields.
type IgnoreTrade struct{}

// ParseIgnoreTrade parses IgnoreTrade packet.
func ParseIgnoreTrade(_ []byte) (*IgnoreTrade, error) { return &IgnoreTrade{}, nil }

// UnacceptTrade has no body fields.
type UnacceptTrade struct{}

// ParseUnacceptTrade parses UnacceptTrade packet.
func ParseUnacceptTrade(_ []byte) (*UnacceptTrade, error) { return &UnacceptTrade{}, nil }

// ClearTradeItem empties one slot of the trade window.
type ClearTradeItem struct {
	TradeSlot uint8
}

// ParseClearTradeItem parses ClearTradeItem packet.
func ParseClearTradeItem(data []byte) (*ClearTradeItem, error) {
	slot, err := packet.NewReader(data).ReadUInt8()
	if err != nil {
		return nil, fmt.Errorf("reading TradeSlot: %w", err)
	}
	return &ClearTradeItem{TradeSlot: slot}, nil
}

// InitiateTrade opens a trade with Guid.
type InitiateTrade struct {
	Guid model.ObjectGuid
}

// ParseInitiateTrade parses InitiateTrade packet.
func ParseInitiateTrade(data []byte) (*InitiateTrade, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading Guid: %w", err)
	}
	return &InitiateTrade{Guid: g}, nil
}

// SetTradeCurrency offers a currency in the trade window.
type SetTradeCurrency struct {
	Type     uint32
	Quantity uint32
}

// ParseSetTradeCurrency parses SetTradeCurrency packet.
func ParseSetTradeCurrency(data []byte) (*SetTradeCurrency, error) {
	r := packet.NewReader(data)
	p := &SetTradeCurrency{}
	var err error
	if p.Type, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading Type: %w", err)
	}
	if p.Quantity, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading Quantity: %w", err)
	}
	return p, nil
}

// SetTradeGold offers copper in the trade window.
type SetTradeGold struct {
	Coinage uint64
}

// ParseSetTradeGold parses SetTradeGold packet.
func ParseSetTradeGold(data []byte) (*SetTradeGold, error) {
	c, err := packet.NewReader(data).ReadUInt64()
	if err != nil {
		return nil, fmt.Errorf("reading Coinage: %w", err)
	}
	return &SetTradeGold{Coinage: c}, nil
}

// SetTradeItem places the item at (PackSlot, ItemSlotInPack) into TradeSlot.
type SetTradeItem struct {
	TradeSlot      uint8
	PackSlot       uint8
	ItemSlotInPack uint8
}

// ParseSetTradeItem parses SetTradeItem packet.
func ParseSetTradeItem(data []byte) (*SetTradeItem, error) {
	r := packet.NewReader(data)
	p := &SetTradeItem{}
	var err error
	if p.TradeSlot, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading TradeSlot: %w", err)
	}
	if p.PackSlot, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading PackSlot: %w", err)
	}
	if p.ItemSlotInPack, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading ItemSlotInPack: %w", err)
	}
	return p, nil
}
