package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// LogoutResponse accepts or refuses a LogoutRequest.
type LogoutResponse struct {
	LogoutResult int32
	Instant      bool
}

// Write serializes the packet.
func (p *LogoutResponse) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGLogoutResponse, 5)
	w.WriteInt32(p.LogoutResult)
	w.WriteBit(p.Instant)
	w.FlushBits()
	return w.Result()
}

// LogoutComplete has no body fields.
type LogoutComplete struct{}

// Write serializes the packet.
func (p *LogoutComplete) Write() ([]byte, error) {
	return newWriter(opcodes.SMSGLogoutComplete, 0).Result()
}

// PlayedTime answers RequestPlayedTime in seconds.
type PlayedTime struct {
	TotalTime    uint32 // seconds
	LevelTime    uint32
	TriggerEvent bool
}

// Write serializes the packet.
func (p *PlayedTime) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGPlayedTime, 9)
	w.WriteUInt32(p.TotalTime)
	w.WriteUInt32(p.LevelTime)
	w.WriteBit(p.TriggerEvent)
	w.FlushBits()
	return w.Result()
}

// CharacterRenameResult answers CharacterRenameRequest.
type CharacterRenameResult struct {
	Name   string
	Result uint8
	Guid   *model.ObjectGuid
}

// Write serializes the packet.
func (p *CharacterRenameResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGCharacterRenameResult, 24+len(p.Name))
	w.WriteUInt8(p.Result)
	w.WriteBit(p.Guid != nil)
	w.WriteLen("CharacterRenameResult.Name", len(p.Name), 6)
	w.FlushBits()
	if p.Guid != nil {
		w.WritePackedGuid(*p.Guid)
	}
	w.WriteString(p.Name)
	return w.Result()
}
