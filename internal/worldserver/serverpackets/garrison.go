package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// GarrisonPlotInfo is one garrison plot and its position.
type GarrisonPlotInfo struct {
	GarrPlotInstanceID uint32
	PlotPos            model.Position
	PlotType           uint32
}

func (g *GarrisonPlotInfo) write(w *packet.Writer) {
	w.WriteUInt32(g.GarrPlotInstanceID)
	w.WritePosition(g.PlotPos)
	w.WriteUInt32(g.PlotType)
}

// GarrisonBuildingInfo is one building placed on a plot.
type GarrisonBuildingInfo struct {
	GarrPlotInstanceID uint32
	GarrBuildingID     uint32
	TimeBuilt          int64
	CurrentGarSpecID   uint32
	TimeSpecCooldown   int64
	Active             bool
}

func (g *GarrisonBuildingInfo) write(w *packet.Writer) {
	w.WriteUInt32(g.GarrPlotInstanceID)
	w.WriteUInt32(g.GarrBuildingID)
	w.WriteInt64(g.TimeBuilt)
	w.WriteUInt32(g.CurrentGarSpecID)
	w.WriteInt64(g.TimeSpecCooldown)
	w.WriteBit(g.Active)
	w.FlushBits()
}

// GarrisonFollower is one follower and its abilities.
type GarrisonFollower struct {
	DbID               uint64
	GarrFollowerID     uint32
	Quality            uint32
	FollowerLevel      uint32
	ItemLevelWeapon    uint32
	ItemLevelArmor     uint32
	Xp                 uint32
	Durability         uint32
	CurrentBuildingID  uint32
	CurrentMissionID   uint32
	AbilityIDs         []uint32
	ZoneSupportSpellID uint32
	FollowerStatus     uint32
	CustomName         string
}

func (f *GarrisonFollower) write(w *packet.Writer) {
	w.WriteUInt64(f.DbID)
	w.WriteUInt32(f.GarrFollowerID)
	w.WriteUInt32(f.Quality)
	w.WriteUInt32(f.FollowerLevel)
	w.WriteUInt32(f.ItemLevelWeapon)
	w.WriteUInt32(f.ItemLevelArmor)
	w.WriteUInt32(f.Xp)
	w.WriteUInt32(f.Durability)
	w.WriteUInt32(f.CurrentBuildingID)
	w.WriteUInt32(f.CurrentMissionID)
	w.WriteUInt32(uint32(len(f.AbilityIDs)))
	w.WriteUInt32(f.ZoneSupportSpellID)
	w.WriteUInt32(f.FollowerStatus)
	for _, id := range f.AbilityIDs {
		w.WriteUInt32(id)
	}
	w.WriteLen("GarrisonFollower.CustomName", len(f.CustomName), 7)
	w.FlushBits()
	w.WriteString(f.CustomName)
}

// GarrisonMission is an offered or running mission. CanStart is not part of
// the mission record; GetGarrisonInfoResult sends it as a trailing bit list.
type GarrisonMission struct {
	DbID            uint64
	MissionRecID    uint32
	OfferTime       int64
	OfferDuration   uint32
	StartTime       int64
	TravelDuration  uint32
	MissionDuration uint32
	MissionState    uint32
	SuccessChance   uint32
	Flags           uint32
	MissionScalar   float32
	CanStart        bool
}

func (m *GarrisonMission) write(w *packet.Writer) {
	w.WriteUInt64(m.DbID)
	w.WriteUInt32(m.MissionRecID)
	w.WriteInt64(m.OfferTime)
	w.WriteUInt32(m.OfferDuration)
	w.WriteInt64(m.StartTime)
	w.WriteUInt32(m.TravelDuration)
	w.WriteUInt32(m.MissionDuration)
	w.WriteUInt32(m.MissionState)
	w.WriteUInt32(m.SuccessChance)
	w.WriteUInt32(m.Flags)
	w.WriteFloat(m.MissionScalar)
}

// GarrisonTalent is one researched garrison talent.
type GarrisonTalent struct {
	GarrTalentID      int32
	ResearchStartTime int64
	Flags             int32
}

// GarrisonInfo is the full state of one garrison (or class hall).
type GarrisonInfo struct {
	GarrTypeID                      int32
	GarrSiteID                      uint32
	GarrSiteLevelID                 uint32
	NumFollowerActivationsRemaining uint32
	NumMissionsStartedToday         uint32
	Plots                           []GarrisonPlotInfo
	Buildings                       []GarrisonBuildingInfo
	Followers                       []GarrisonFollower
	Missions                        []GarrisonMission
	Talents                         []GarrisonTalent
	ArchivedMissions                []int32
}

func (g *GarrisonInfo) write(w *packet.Writer) {
	w.WriteInt32(g.GarrTypeID)
	w.WriteUInt32(g.GarrSiteID)
	w.WriteUInt32(g.GarrSiteLevelID)
	w.WriteUInt32(uint32(len(g.Buildings)))
	w.WriteUInt32(uint32(len(g.Plots)))
	w.WriteUInt32(uint32(len(g.Followers)))
	w.WriteUInt32(uint32(len(g.Missions)))
	w.WriteUInt32(uint32(len(g.Talents)))
	w.WriteUInt32(uint32(len(g.ArchivedMissions)))
	w.WriteUInt32(g.NumFollowerActivationsRemaining)
	w.WriteUInt32(g.NumMissionsStartedToday)

	for i := range g.Plots {
		g.Plots[i].write(w)
	}
	for i := range g.Missions {
		g.Missions[i].write(w)
	}
	for i := range g.Buildings {
		g.Buildings[i].write(w)
	}
	for i := range g.Followers {
		g.Followers[i].write(w)
	}
	for _, t := range g.Talents {
		w.WriteInt32(t.GarrTalentID)
		w.WriteInt64(t.ResearchStartTime)
		w.WriteInt32(t.Flags)
	}
	for _, id := range g.ArchivedMissions {
		w.WriteInt32(id)
	}
	for i := range g.Missions {
		w.WriteBit(g.Missions[i].CanStart)
	}
	w.FlushBits()
}

// FollowerSoftCapInfo is the follower limit of one garrison type.
type FollowerSoftCapInfo struct {
	GarrFollowerTypeID int32
	Count              uint32
}

// GetGarrisonInfoResult answers GetGarrisonInfo with every garrison the
// player owns.
type GetGarrisonInfoResult struct {
	FactionIndex     int32
	Garrisons        []GarrisonInfo
	FollowerSoftCaps []FollowerSoftCapInfo
}

// Write serializes the packet.
func (p *GetGarrisonInfoResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGetGarrisonInfoResult, 512)
	w.WriteInt32(p.FactionIndex)
	w.WriteUInt32(uint32(len(p.Garrisons)))
	w.WriteUInt32(uint32(len(p.FollowerSoftCaps)))
	for _, c := range p.FollowerSoftCaps {
		w.WriteInt32(c.GarrFollowerTypeID)
		w.WriteUInt32(c.Count)
	}
	for i := range p.Garrisons {
		p.Garrisons[i].write(w)
	}
	return w.Result()
}

// GarrisonPlaceBuildingResult answers GarrisonPurchaseBuilding.
type GarrisonPlaceBuildingResult struct {
	GarrTypeID              int32
	Result                  uint32
	BuildingInfo            GarrisonBuildingInfo
	PlayActivationCinematic bool
}

// Write serializes the packet.
func (p *GarrisonPlaceBuildingResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGarrisonPlaceBuildingResult, 48)
	w.WriteInt32(p.GarrTypeID)
	w.WriteUInt32(p.Result)
	p.BuildingInfo.write(w)
	w.WriteBit(p.PlayActivationCinematic)
	w.FlushBits()
	return w.Result()
}

// GarrisonBuildingRemoved reports a building removed from its plot.
type GarrisonBuildingRemoved struct {
	GarrTypeID         int32
	Result             uint32
	GarrPlotInstanceID uint32
	GarrBuildingID     uint32
}

// Write serializes the packet.
func (p *GarrisonBuildingRemoved) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGarrisonBuildingRemoved, 16)
	w.WriteInt32(p.GarrTypeID)
	w.WriteUInt32(p.Result)
	w.WriteUInt32(p.GarrPlotInstanceID)
	w.WriteUInt32(p.GarrBuildingID)
	return w.Result()
}

// GarrisonLearnBlueprintResult reports a learned building blueprint.
type GarrisonLearnBlueprintResult struct {
	GarrTypeID int32
	Result     uint32
	BuildingID uint32
}

// Write serializes the packet.
func (p *GarrisonLearnBlueprintResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGarrisonLearnBlueprintResult, 12)
	w.WriteInt32(p.GarrTypeID)
	w.WriteUInt32(p.Result)
	w.WriteUInt32(p.BuildingID)
	return w.Result()
}

// GarrisonRequestBlueprintAndSpecializationDataResult lists known blueprints and specializations.
type GarrisonRequestBlueprintAndSpecializationDataResult struct {
	GarrTypeID           int32
	BlueprintsKnown      []uint32
	SpecializationsKnown []uint32
}

// Write serializes the packet.
func (p *GarrisonRequestBlueprintAndSpecializationDataResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGarrisonRequestBlueprintAndSpecializationDataResult,
		12+4*(len(p.BlueprintsKnown)+len(p.SpecializationsKnown)))
	w.WriteInt32(p.GarrTypeID)
	w.WriteUInt32(uint32(len(p.BlueprintsKnown)))
	w.WriteUInt32(uint32(len(p.SpecializationsKnown)))
	for _, id := range p.BlueprintsKnown {
		w.WriteUInt32(id)
	}
	for _, id := range p.SpecializationsKnown {
		w.WriteUInt32(id)
	}
	return w.Result()
}

// GarrisonAddFollowerResult reports a follower joining the garrison.
type GarrisonAddFollowerResult struct {
	GarrTypeID int32
	Result     uint32
	Follower   GarrisonFollower
}

// Write serializes the packet.
func (p *GarrisonAddFollowerResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGarrisonAddFollowerResult, 96)
	w.WriteInt32(p.GarrTypeID)
	w.WriteUInt32(p.Result)
	p.Follower.write(w)
	return w.Result()
}

// GarrisonRemoteBuildingInfo is one building seen from outside the garrison.
type GarrisonRemoteBuildingInfo struct {
	GarrPlotInstanceID uint32
	GarrBuildingID     uint32
}

// GarrisonRemoteSiteInfo lists the buildings of one garrison site.
type GarrisonRemoteSiteInfo struct {
	GarrSiteLevelID uint32
	Buildings       []GarrisonRemoteBuildingInfo
}

// GarrisonRemoteInfo lets the client show buildings outside the garrison map.
type GarrisonRemoteInfo struct {
	Sites []GarrisonRemoteSiteInfo
}

// Write serializes the packet.
func (p *GarrisonRemoteInfo) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGarrisonRemoteInfo, 64)
	w.WriteUInt32(uint32(len(p.Sites)))
	for _, s := range p.Sites {
		w.WriteUInt32(s.GarrSiteLevelID)
		w.WriteUInt32(uint32(len(s.Buildings)))
		for _, b := range s.Buildings {
			w.WriteUInt32(b.GarrPlotInstanceID)
			w.WriteUInt32(b.GarrBuildingID)
		}
	}
	return w.Result()
}

// GarrisonDeleteResult reports a deleted garrison.
type GarrisonDeleteResult struct {
	Result     uint32
	GarrSiteID uint32
}

// Write serializes the packet.
func (p *GarrisonDeleteResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGarrisonDeleteResult, 8)
	w.WriteUInt32(p.Result)
	w.WriteUInt32(p.GarrSiteID)
	return w.Result()
}

// GarrisonPlotPlaced adds a plot to the garrison map.
type GarrisonPlotPlaced struct {
	GarrTypeID int32
	PlotInfo   GarrisonPlotInfo
}

// Write serializes the packet.
func (p *GarrisonPlotPlaced) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGarrisonPlotPlaced, 28)
	w.WriteInt32(p.GarrTypeID)
	p.PlotInfo.write(w)
	return w.Result()
}

// GarrisonPlotRemoved removes a plot from the garrison map.
type GarrisonPlotRemoved struct {
	GarrPlotInstanceID uint32
}

// Write serializes the packet.
func (p *GarrisonPlotRemoved) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGarrisonPlotRemoved, 4)
	w.WriteUInt32(p.GarrPlotInstanceID)
	return w.Result()
}
