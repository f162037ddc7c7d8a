package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// GossipHello opens the gossip menu of Unit.
type GossipHello struct {
	Unit model.ObjectGuid
}

// ParseGossipHello parses GossipHello packet.
func ParseGossipHello(data []byte) (*GossipHello, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading Unit: %w", err)
	}
	return &GossipHello{Unit: g}, nil
}

// GossipSelectOption picks an option from GossipMessage. PromotionCode is
// the text typed into a coded option box.
type GossipSelectOption struct {
	GossipUnit    model.ObjectGuid
	GossipID      uint32
	GossipIndex   uint32
	PromotionCode string
}

// ParseGossipSelectOption parses GossipSelectOption packet.
func ParseGossipSelectOption(data []byte) (*GossipSelectOption, error) {
	r := packet.NewReader(data)
	p := &GossipSelectOption{}
	var err error
	if p.GossipUnit, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading GossipUnit: %w", err)
	}
	if p.GossipID, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading GossipID: %w", err)
	}
	if p.GossipIndex, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading GossipIndex: %w", err)
	}
	n, err := r.ReadBits(8)
	if err != nil {
		return nil, fmt.Errorf("reading PromotionCode length: %w", err)
	}
	if p.PromotionCode, err = r.ReadString(int(n)); err != nil {
		return nil, fmt.Errorf("reading PromotionCode: %w", err)
	}
	return p, nil
}

// ListInventory opens the vendor window of Unit.
type ListInventory struct {
	Unit model.ObjectGuid
}

// ParseListInventory parses ListInventory packet.
func ParseListInventory(data []byte) (*ListInventory, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading Unit: %w", err)
	}
	return &ListInventory{Unit: g}, nil
}

// BankerActivate opens the bank through the banker Unit.
type BankerActivate struct {
	Unit model.ObjectGuid
}

// ParseBankerActivate parses BankerActivate packet.
func ParseBankerActivate(data []byte) (*BankerActivate, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading Unit: %w", err)
	}
	return &BankerActivate{Unit: g}, nil
}
