package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// TaxiNodeStatusQuery asks whether a flight master's node is known.
type TaxiNodeStatusQuery struct {
	UnitGUID model.ObjectGuid
}

// ParseTaxiNodeStatusQuery parses TaxiNodeStatusQuery packet.
func ParseTaxiNodeStatusQuery(data []byte) (*TaxiNodeStatusQuery, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading UnitGUID: %w", err)
	}
	return &TaxiNodeStatusQuery{UnitGUID: g}, nil
}

// ActivateTaxi starts a flight from the flight master Vendor to Node.
type ActivateTaxi struct {
	Vendor        model.ObjectGuid
	Node          uint32
	GroundMountID uint32
	FlyingMountID uint32
}

// ParseActivateTaxi parses ActivateTaxi packet.
func ParseActivateTaxi(data []byte) (*ActivateTaxi, error) {
	r := packet.NewReader(data)
	p := &ActivateTaxi{}
	var err error
	if p.Vendor, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading Vendor: %w", err)
	}
	if p.Node, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading Node: %w", err)
	}
	if p.GroundMountID, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading GroundMountID: %w", err)
	}
	if p.FlyingMountID, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading FlyingMountID: %w", err)
	}
	return p, nil
}
