package serverpackets

import (
	"time"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/wiretypes"
)

// AllAchievementData (SMSG_ALL_ACHIEVEMENT_DATA) is sent on login with the
// player's earned achievements and criteria progress.
type AllAchievementData struct {
	Data wiretypes.AllAchievements
}

// Write serializes the packet.
func (p *AllAchievementData) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGAllAchievementData, 256)
	p.Data.Write(w)
	return w.Result()
}

// RespondInspectAchievements answers QueryInspectAchievements.
type RespondInspectAchievements struct {
	Player model.ObjectGuid
	Data   wiretypes.AllAchievements
}

// Write serializes the packet.
func (p *RespondInspectAchievements) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGRespondInspectAchievements, 256)
	w.WritePackedGuid(p.Player)
	p.Data.Write(w)
	return w.Result()
}

// CriteriaUpdate reports progress on a single criteria.
type CriteriaUpdate struct {
	CriteriaID   uint32
	Quantity     uint64
	PlayerGUID   model.ObjectGuid
	Flags        uint32
	CurrentTime  time.Time
	ElapsedTime  uint32
	CreationTime uint32
}

// Write serializes the packet.
func (p *CriteriaUpdate) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGCriteriaUpdate, 48)
	w.WriteUInt32(p.CriteriaID)
	w.WriteUInt64(p.Quantity)
	w.WritePackedGuid(p.PlayerGUID)
	w.WriteUInt32(p.Flags)
	w.WritePackedTime(p.CurrentTime)
	w.WriteUInt32(p.ElapsedTime)
	w.WriteUInt32(p.CreationTime)
	return w.Result()
}

// CriteriaDeleted removes one criteria from the achievement UI.
type CriteriaDeleted struct {
	CriteriaID uint32
}

// Write serializes the packet.
func (p *CriteriaDeleted) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGCriteriaDeleted, 4)
	w.WriteUInt32(p.CriteriaID)
	return w.Result()
}

// AchievementDeleted revokes an earned achievement.
type AchievementDeleted struct {
	AchievementID uint32
	Immunities    uint32 // client-side ignore list id
}

// Write serializes the packet.
func (p *AchievementDeleted) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGAchievementDeleted, 8)
	w.WriteUInt32(p.AchievementID)
	w.WriteUInt32(p.Immunities)
	return w.Result()
}

// AchievementEarned is broadcast around the earner.
type AchievementEarned struct {
	Sender             model.ObjectGuid
	Earner             model.ObjectGuid
	AchievementID      uint32
	Time               time.Time
	EarnerNativeRealm  uint32
	EarnerVirtualRealm uint32
	Initial            bool
}

// Write serializes the packet.
func (p *AchievementEarned) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGAchievementEarned, 48)
	w.WritePackedGuid(p.Sender)
	w.WritePackedGuid(p.Earner)
	w.WriteUInt32(p.AchievementID)
	w.WritePackedTime(p.Time)
	w.WriteUInt32(p.EarnerNativeRealm)
	w.WriteUInt32(p.EarnerVirtualRealm)
	w.WriteBit(p.Initial)
	w.FlushBits()
	return w.Result()
}

// BroadcastAchievement announces a realm or guild first.
type BroadcastAchievement struct {
	Name             string
	PlayerGUID       model.ObjectGuid
	AchievementID    uint32
	GuildAchievement bool
}

// Write serializes the packet.
func (p *BroadcastAchievement) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGBroadcastAchievement, 32+len(p.Name))
	w.WriteLen("BroadcastAchievement.Name", len(p.Name), 7)
	w.WriteBit(p.GuildAchievement)
	w.WritePackedGuid(p.PlayerGUID)
	w.WriteUInt32(p.AchievementID)
	w.WriteString(p.Name)
	return w.Result()
}

// GuildCriteriaProgress is one guild criteria row of GuildCriteriaUpdate.
type GuildCriteriaProgress struct {
	CriteriaID  int32
	DateCreated uint32
	DateStarted uint32
	DateUpdated time.Time
	Quantity    uint64
	PlayerGUID  model.ObjectGuid
	Flags       int32
}

// GuildCriteriaUpdate reports guild criteria progress.
type GuildCriteriaUpdate struct {
	Progress []GuildCriteriaProgress
}

// Write serializes the packet.
func (p *GuildCriteriaUpdate) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGuildCriteriaUpdate, 4+len(p.Progress)*48)
	w.WriteUInt32(uint32(len(p.Progress)))
	for _, c := range p.Progress {
		w.WriteInt32(c.CriteriaID)
		w.WriteUInt32(c.DateCreated)
		w.WriteUInt32(c.DateStarted)
		w.WritePackedTime(c.DateUpdated)
		w.WriteUInt64(c.Quantity)
		w.WritePackedGuid(c.PlayerGUID)
		w.WriteInt32(c.Flags)
	}
	return w.Result()
}

// GuildAchievementEarned announces an achievement earned by the guild.
type GuildAchievementEarned struct {
	GuildGUID     model.ObjectGuid
	AchievementID uint32
	TimeEarned    time.Time
}

// Write serializes the packet.
func (p *GuildAchievementEarned) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGuildAchievementEarned, 32)
	w.WritePackedGuid(p.GuildGUID)
	w.WriteUInt32(p.AchievementID)
	w.WritePackedTime(p.TimeEarned)
	return w.Result()
}

// GuildAchievementDeleted revokes a guild achievement.
type GuildAchievementDeleted struct {
	GuildGUID     model.ObjectGuid
	AchievementID uint32
	TimeDeleted   time.Time
}

// Write serializes the packet.
func (p *GuildAchievementDeleted) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGuildAchievementDeleted, 32)
	w.WritePackedGuid(p.GuildGUID)
	w.WriteUInt32(p.AchievementID)
	w.WritePackedTime(p.TimeDeleted)
	return w.Result()
}
