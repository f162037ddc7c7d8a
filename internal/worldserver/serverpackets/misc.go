package serverpackets

import (
	"time"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// TimeSyncRequest asks the client to echo SequenceIndex with its clock.
type TimeSyncRequest struct {
	SequenceIndex uint32
}

// Write serializes the packet.
func (p *TimeSyncRequest) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGTimeSyncRequest, 4)
	w.WriteUInt32(p.SequenceIndex)
	return w.Result()
}

// LoginSetTimeSpeed sets the in-game clock. NewSpeed is game minutes per
// real second.
type LoginSetTimeSpeed struct {
	ServerTime              time.Time
	GameTime                time.Time
	NewSpeed                float32
	ServerTimeHolidayOffset int32
	GameTimeHolidayOffset   int32
}

// Write serializes the packet.
func (p *LoginSetTimeSpeed) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGLoginSetTimeSpeed, 20)
	w.WritePackedTime(p.ServerTime)
	w.WritePackedTime(p.GameTime)
	w.WriteFloat(p.NewSpeed)
	w.WriteInt32(p.ServerTimeHolidayOffset)
	w.WriteInt32(p.GameTimeHolidayOffset)
	return w.Result()
}

// Weather changes the zone weather.
type Weather struct {
	WeatherID uint32
	Intensity float32
	Abrupt    bool
}

// Write serializes the packet.
func (p *Weather) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGWeather, 9)
	w.WriteUInt32(p.WeatherID)
	w.WriteFloat(p.Intensity)
	w.WriteBit(p.Abrupt)
	w.FlushBits()
	return w.Result()
}

// PlayMusic plays a sound kit as music.
type PlayMusic struct {
	SoundKitID uint32
}

// Write serializes the packet.
func (p *PlayMusic) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGPlayMusic, 4)
	w.WriteUInt32(p.SoundKitID)
	return w.Result()
}

// PlaySound plays a sound kit from SourceObjectGuid.
type PlaySound struct {
	SourceObjectGuid model.ObjectGuid
	SoundKitID       int32
	BroadcastTextID  int32
}

// Write serializes the packet.
func (p *PlaySound) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGPlaySound, 26)
	w.WriteInt32(p.SoundKitID)
	w.WritePackedGuid(p.SourceObjectGuid)
	w.WriteInt32(p.BroadcastTextID)
	return w.Result()
}

// RandomRoll announces a RandomRoll result.
type RandomRoll struct {
	Roller           model.ObjectGuid
	RollerWowAccount model.ObjectGuid
	Min              int32
	Max              int32
	Result           int32
}

// Write serializes the packet.
func (p *RandomRoll) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGRandomRoll, 48)
	w.WritePackedGuid(p.Roller)
	w.WritePackedGuid(p.RollerWowAccount)
	w.WriteInt32(p.Min)
	w.WriteInt32(p.Max)
	w.WriteInt32(p.Result)
	return w.Result()
}

// StandStateUpdate confirms a stand state change.
type StandStateUpdate struct {
	AnimKitID uint32
	State     uint8
}

// Write serializes the packet.
func (p *StandStateUpdate) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGStandStateUpdate, 5)
	w.WriteUInt32(p.AnimKitID)
	w.WriteUInt8(p.State)
	return w.Result()
}

// LevelUpInfo lists the stat gains shown in the level-up banner.
type LevelUpInfo struct {
	Level                int32
	HealthDelta          int32
	PowerDelta           [6]int32
	StatDelta            [5]int32
	NumNewTalents        int32
	NumNewPvpTalentSlots int32
}

// Write serializes the packet.
func (p *LevelUpInfo) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGLevelUpInfo, 60)
	w.WriteInt32(p.Level)
	w.WriteInt32(p.HealthDelta)
	for _, d := range p.PowerDelta {
		w.WriteInt32(d)
	}
	for _, d := range p.StatDelta {
		w.WriteInt32(d)
	}
	w.WriteInt32(p.NumNewTalents)
	w.WriteInt32(p.NumNewPvpTalentSlots)
	return w.Result()
}

// QueryTimeResponse answers QueryTime.
type QueryTimeResponse struct {
	CurrentTime time.Time
}

// Write serializes the packet.
func (p *QueryTimeResponse) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGQueryTimeResponse, 8)
	w.WriteInt64(p.CurrentTime.Unix())
	return w.Result()
}
