package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/wiretypes"
)

// PvpSeason announces the current and previous PvP seasons.
type PvpSeason struct {
	CurrentSeason  uint32
	PreviousSeason uint32
}

// Write serializes the packet.
func (p *PvpSeason) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGPvpSeason, 8)
	w.WriteUInt32(p.CurrentSeason)
	w.WriteUInt32(p.PreviousSeason)
	return w.Result()
}

// AreaSpiritHealerTime answers AreaSpiritHealerQuery.
type AreaSpiritHealerTime struct {
	HealerGuid model.ObjectGuid
	TimeLeft   uint32 // milliseconds
}

// Write serializes the packet.
func (p *AreaSpiritHealerTime) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGAreaSpiritHealerTime, 24)
	w.WritePackedGuid(p.HealerGuid)
	w.WriteUInt32(p.TimeLeft)
	return w.Result()
}

// BattlefieldStatusHeader prefixes every queue status packet except
// BattlefieldStatusNone and BattlefieldStatusFailed.
type BattlefieldStatusHeader struct {
	Ticket          wiretypes.RideTicket
	QueueIDs        []uint64
	RangeMin        uint8
	RangeMax        uint8
	TeamSize        uint8
	InstanceID      uint32
	RegisteredMatch bool
	TournamentRules bool
}

func (h *BattlefieldStatusHeader) write(w *packet.Writer) {
	h.Ticket.Write(w)
	w.WriteUInt32(uint32(len(h.QueueIDs)))
	w.WriteUInt8(h.RangeMin)
	w.WriteUInt8(h.RangeMax)
	w.WriteUInt8(h.TeamSize)
	w.WriteUInt32(h.InstanceID)
	for _, id := range h.QueueIDs {
		w.WriteUInt64(id)
	}
	w.WriteBit(h.RegisteredMatch)
	w.WriteBit(h.TournamentRules)
	w.FlushBits()
}

// BattlefieldStatusNone clears one battlefield queue slot.
type BattlefieldStatusNone struct {
	Ticket wiretypes.RideTicket
}

// Write serializes the packet.
func (p *BattlefieldStatusNone) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGBattlefieldStatusNone, 32)
	p.Ticket.Write(w)
	return w.Result()
}

// BattlefieldStatusNeedConfirmation offers the player a battleground invite.
type BattlefieldStatusNeedConfirmation struct {
	Hdr     BattlefieldStatusHeader
	MapID   uint32
	Timeout uint32
	Role    uint8
}

// Write serializes the packet.
func (p *BattlefieldStatusNeedConfirmation) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGBattlefieldStatusNeedConfirmation, 64)
	p.Hdr.write(w)
	w.WriteUInt32(p.MapID)
	w.WriteUInt32(p.Timeout)
	w.WriteUInt8(p.Role)
	return w.Result()
}

// BattlefieldStatusActive reports the battleground the player is in.
type BattlefieldStatusActive struct {
	Hdr           BattlefieldStatusHeader
	MapID         uint32
	ShutdownTimer uint32
	StartTimer    uint32
	ArenaFaction  bool
	LeftEarly     bool
}

// Write serializes the packet.
func (p *BattlefieldStatusActive) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGBattlefieldStatusActive, 64)
	p.Hdr.write(w)
	w.WriteUInt32(p.MapID)
	w.WriteUInt32(p.ShutdownTimer)
	w.WriteUInt32(p.StartTimer)
	w.WriteBit(p.ArenaFaction)
	w.WriteBit(p.LeftEarly)
	w.FlushBits()
	return w.Result()
}

// BattlefieldStatusQueued reports queue position and wait estimate.
type BattlefieldStatusQueued struct {
	Hdr                    BattlefieldStatusHeader
	AverageWaitTime        uint32
	WaitTime               uint32
	AsGroup                bool
	EligibleForMatchmaking bool
	SuspendedQueue         bool
}

// Write serializes the packet.
func (p *BattlefieldStatusQueued) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGBattlefieldStatusQueued, 64)
	p.Hdr.write(w)
	w.WriteUInt32(p.AverageWaitTime)
	w.WriteUInt32(p.WaitTime)
	w.WriteBit(p.AsGroup)
	w.WriteBit(p.EligibleForMatchmaking)
	w.WriteBit(p.SuspendedQueue)
	w.FlushBits()
	return w.Result()
}

// BattlefieldStatusFailed rejects a queue request with Reason.
type BattlefieldStatusFailed struct {
	Ticket   wiretypes.RideTicket
	QueueID  uint64
	Reason   int32
	ClientID model.ObjectGuid
}

// Write serializes the packet.
func (p *BattlefieldStatusFailed) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGBattlefieldStatusFailed, 64)
	p.Ticket.Write(w)
	w.WriteUInt64(p.QueueID)
	w.WriteInt32(p.Reason)
	w.WritePackedGuid(p.ClientID)
	return w.Result()
}

// BattlefieldList answers a battlemaster or the PvP UI with joinable instances.
type BattlefieldList struct {
	BattlemasterGuid   model.ObjectGuid
	BattlemasterListID int32
	MinLevel           uint8
	MaxLevel           uint8
	Battlefields       []int32
	PvpAnywhere        bool
	HasRandomWinToday  bool
}

// Write serializes the packet.
func (p *BattlefieldList) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGBattlefieldList, 32+len(p.Battlefields)*4)
	w.WritePackedGuid(p.BattlemasterGuid)
	w.WriteInt32(p.BattlemasterListID)
	w.WriteUInt8(p.MinLevel)
	w.WriteUInt8(p.MaxLevel)
	w.WriteUInt32(uint32(len(p.Battlefields)))
	for _, id := range p.Battlefields {
		w.WriteInt32(id)
	}
	w.WriteBit(p.PvpAnywhere)
	w.WriteBit(p.HasRandomWinToday)
	w.FlushBits()
	return w.Result()
}

// PvpRatingData is one bracket's rating before and after a match.
type PvpRatingData struct {
	Prematch    [2]int32
	Postmatch   [2]int32
	PrematchMMR [2]int32
}

// PvpHonorData is the honor earned by one player in PvpLogData.
type PvpHonorData struct {
	HonorKills         uint32
	Deaths             uint32
	ContributionPoints uint32
}

// PvpPlayerData is one scoreboard row.
type PvpPlayerData struct {
	PlayerGUID        model.ObjectGuid
	Kills             uint32
	DamageDone        uint32
	HealingDone       uint32
	Stats             []int32
	PrimaryTalentTree int32
	Sex               int8
	Race              int32
	Class             int32
	CreatureID        int32
	HonorLevel        int32
	Faction           bool // false = Horde
	IsInWorld         bool
	Honor             *PvpHonorData
	PreMatchRating    *uint32
	RatingChange      *int32
	PreMatchMMR       *uint32
	MmrChange         *int32
}

func (d *PvpPlayerData) write(w *packet.Writer) {
	w.WritePackedGuid(d.PlayerGUID)
	w.WriteUInt32(d.Kills)
	w.WriteUInt32(d.DamageDone)
	w.WriteUInt32(d.HealingDone)
	w.WriteUInt32(uint32(len(d.Stats)))
	w.WriteInt32(d.PrimaryTalentTree)
	w.WriteInt8(d.Sex)
	w.WriteInt32(d.Race)
	w.WriteInt32(d.Class)
	w.WriteInt32(d.CreatureID)
	w.WriteInt32(d.HonorLevel)
	for _, s := range d.Stats {
		w.WriteInt32(s)
	}

	w.WriteBit(d.Faction)
	w.WriteBit(d.IsInWorld)
	w.WriteBit(d.Honor != nil)
	w.WriteBit(d.PreMatchRating != nil)
	w.WriteBit(d.RatingChange != nil)
	w.WriteBit(d.PreMatchMMR != nil)
	w.WriteBit(d.MmrChange != nil)
	w.FlushBits()

	if d.Honor != nil {
		w.WriteUInt32(d.Honor.HonorKills)
		w.WriteUInt32(d.Honor.Deaths)
		w.WriteUInt32(d.Honor.ContributionPoints)
	}
	if d.PreMatchRating != nil {
		w.WriteUInt32(*d.PreMatchRating)
	}
	if d.RatingChange != nil {
		w.WriteInt32(*d.RatingChange)
	}
	if d.PreMatchMMR != nil {
		w.WriteUInt32(*d.PreMatchMMR)
	}
	if d.MmrChange != nil {
		w.WriteInt32(*d.MmrChange)
	}
}

// PvpLogData is the battleground or arena scoreboard.
type PvpLogData struct {
	Ratings     *PvpRatingData
	Winner      *uint8
	Statistics  []PvpPlayerData
	PlayerCount [2]int8
}

// Write serializes the packet.
func (p *PvpLogData) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGPvpLogData, 16+len(p.Statistics)*96)
	w.WriteBit(p.Ratings != nil)
	w.WriteBit(p.Winner != nil)
	w.WriteUInt32(uint32(len(p.Statistics)))
	for _, c := range p.PlayerCount {
		w.WriteInt8(c)
	}
	if p.Ratings != nil {
		for i := range 2 {
			w.WriteInt32(p.Ratings.Prematch[i])
			w.WriteInt32(p.Ratings.Postmatch[i])
			w.WriteInt32(p.Ratings.PrematchMMR[i])
		}
	}
	if p.Winner != nil {
		w.WriteUInt8(*p.Winner)
	}
	for i := range p.Statistics {
		p.Statistics[i].write(w)
	}
	return w.Result()
}

// BattlegroundPlayerPosition is one flag carrier position.
type BattlegroundPlayerPosition struct {
	Guid      model.ObjectGuid
	Pos       model.Vector2
	IconID    int8
	ArenaSlot int8
}

// BattlegroundPlayerPositions marks flag carriers on the map.
type BattlegroundPlayerPositions struct {
	FlagCarriers []BattlegroundPlayerPosition
}

// Write serializes the packet.
func (p *BattlegroundPlayerPositions) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGBattlegroundPlayerPositions, 4+len(p.FlagCarriers)*28)
	w.WriteUInt32(uint32(len(p.FlagCarriers)))
	for _, c := range p.FlagCarriers {
		w.WritePackedGuid(c.Guid)
		w.WriteVector2(c.Pos)
		w.WriteInt8(c.IconID)
		w.WriteInt8(c.ArenaSlot)
	}
	return w.Result()
}

// BattlegroundPlayerJoined announces a player joining the battleground.
type BattlegroundPlayerJoined struct {
	Guid model.ObjectGuid
}

// Write serializes the packet.
func (p *BattlegroundPlayerJoined) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGBattlegroundPlayerJoined, 18)
	w.WritePackedGuid(p.Guid)
	return w.Result()
}

// BattlegroundPlayerLeft announces a player leaving the battleground.
type BattlegroundPlayerLeft struct {
	Guid model.ObjectGuid
}

// Write serializes the packet.
func (p *BattlegroundPlayerLeft) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGBattlegroundPlayerLeft, 18)
	w.WritePackedGuid(p.Guid)
	return w.Result()
}

// BattlegroundInit starts the battleground score frame.
type BattlegroundInit struct {
	Milliseconds uint32
}

// Write serializes the packet.
func (p *BattlegroundInit) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGBattlegroundInit, 4)
	w.WriteUInt32(p.Milliseconds)
	return w.Result()
}

// ReportPvpPlayerAfkResult answers ReportPvpPlayerAfk.
type ReportPvpPlayerAfkResult struct {
	Offender                model.ObjectGuid
	Result                  uint8
	NumBlackMarksOnOffender uint8
	NumPlayersIHaveReported uint8
}

// ReportPvpPlayerAfkResult codes.
const (
	ReportAfkSuccess          uint8 = 0
	ReportAfkGenericFailure   uint8 = 1
	ReportAfkSuccessDebuffed  uint8 = 5
	ReportAfkAlreadyReported  uint8 = 6
	ReportAfkReportedTooOften uint8 = 7
)

// Write serializes the packet.
func (p *ReportPvpPlayerAfkResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGReportPvpPlayerAfkResult, 24)
	w.WritePackedGuid(p.Offender)
	w.WriteUInt8(p.Result)
	w.WriteUInt8(p.NumBlackMarksOnOffender)
	w.WriteUInt8(p.NumPlayersIHaveReported)
	return w.Result()
}
