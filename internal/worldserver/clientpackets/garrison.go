package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// GetGarrisonInfo has no body fields.
type GetGarrisonInfo struct{}

// ParseGetGarrisonInfo parses GetGarrisonInfo packet.
func ParseGetGarrisonInfo(_ []byte) (*GetGarrisonInfo, error) {
	return &GetGarrisonInfo{}, nil
}

// GarrisonPurchaseBuilding places BuildingID on a garrison plot.
type GarrisonPurchaseBuilding struct {
	NpcGUID        model.ObjectGuid
	BuildingID     uint32
	PlotInstanceID uint32
}

// ParseGarrisonPurchaseBuilding parses GarrisonPurchaseBuilding packet.
func ParseGarrisonPurchaseBuilding(data []byte) (*GarrisonPurchaseBuilding, error) {
	r := packet.NewReader(data)
	p := &GarrisonPurchaseBuilding{}
	var err error
	if p.NpcGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading NpcGUID: %w", err)
	}
	if p.BuildingID, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading BuildingID: %w", err)
	}
	if p.PlotInstanceID, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading PlotInstanceID: %w", err)
	}
	return p, nil
}

// GarrisonCancelConstruction cancels the building under construction on a plot.
type GarrisonCancelConstruction struct {
	NpcGUID        model.ObjectGuid
	PlotInstanceID uint32
}

// ParseGarrisonCancelConstruction parses GarrisonCancelConstruction packet.
func ParseGarrisonCancelConstruction(data []byte) (*GarrisonCancelConstruction, error) {
	r := packet.NewReader(data)
	p := &GarrisonCancelConstruction{}
	var err error
	if p.NpcGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading NpcGUID: %w", err)
	}
	if p.PlotInstanceID, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading PlotInstanceID: %w", err)
	}
	return p, nil
}

// GarrisonRequestBlueprintAndSpecializationData has no body fields.
type GarrisonRequestBlueprintAndSpecializationData struct{}

// ParseGarrisonRequestBlueprintAndSpecializationData parses GarrisonRequestBlueprintAndSpecializationData packet.
func ParseGarrisonRequestBlueprintAndSpecializationData(_ []byte) (*GarrisonRequestBlueprintAndSpecializationData, error) {
	return &GarrisonRequestBlueprintAndSpecializationData{}, nil
}
