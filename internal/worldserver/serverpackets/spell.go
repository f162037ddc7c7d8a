package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// LearnedSpells adds spells to the spellbook.
type LearnedSpells struct {
	SpellIDs          []uint32
	FavoriteSpellIDs  []uint32
	SpecializationID  uint32
	SuppressMessaging bool
}

// Write serializes the packet.
func (p *LearnedSpells) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGLearnedSpells, 13+4*(len(p.SpellIDs)+len(p.FavoriteSpellIDs)))
	w.WriteUInt32(uint32(len(p.SpellIDs)))
	w.WriteUInt32(uint32(len(p.FavoriteSpellIDs)))
	w.WriteUInt32(p.SpecializationID)
	for _, id := range p.SpellIDs {
		w.WriteUInt32(id)
	}
	for _, id := range p.FavoriteSpellIDs {
		w.WriteUInt32(id)
	}
	w.WriteBit(p.SuppressMessaging)
	w.FlushBits()
	return w.Result()
}

// UnlearnedSpells removes spells from the spellbook.
type UnlearnedSpells struct {
	SpellIDs          []uint32
	SuppressMessaging bool
}

// Write serializes the packet.
func (p *UnlearnedSpells) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGUnlearnedSpells, 5+4*len(p.SpellIDs))
	w.WriteUInt32(uint32(len(p.SpellIDs)))
	for _, id := range p.SpellIDs {
		w.WriteUInt32(id)
	}
	w.WriteBit(p.SuppressMessaging)
	w.FlushBits()
	return w.Result()
}

// CastFailed explains why a cast failed.
type CastFailed struct {
	CastID              model.ObjectGuid
	SpellID             int32
	SpellXSpellVisualID int32
	Reason              int32
	FailedArg1          int32
	FailedArg2          int32
}

// Write serializes the packet.
func (p *CastFailed) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGCastFailed, 38)
	w.WritePackedGuid(p.CastID)
	w.WriteInt32(p.SpellID)
	w.WriteInt32(p.SpellXSpellVisualID)
	w.WriteInt32(p.Reason)
	w.WriteInt32(p.FailedArg1)
	w.WriteInt32(p.FailedArg2)
	return w.Result()
}

// SpellCooldownStruct is one spell of SpellCooldown.
type SpellCooldownStruct struct {
	SrecID         uint32
	ForcedCooldown uint32 // milliseconds
	ModRate        float32
}

// SpellCooldown starts cooldowns on the listed spells.
type SpellCooldown struct {
	Caster    model.ObjectGuid
	Flags     uint8
	Cooldowns []SpellCooldownStruct
}

// Write serializes the packet.
func (p *SpellCooldown) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGSpellCooldown, 23+len(p.Cooldowns)*12)
	w.WritePackedGuid(p.Caster)
	w.WriteUInt8(p.Flags)
	w.WriteUInt32(uint32(len(p.Cooldowns)))
	for _, c := range p.Cooldowns {
		w.WriteUInt32(c.SrecID)
		w.WriteUInt32(c.ForcedCooldown)
		w.WriteFloat(c.ModRate)
	}
	return w.Result()
}

// CooldownEvent starts a cooldown that waited for an event.
type CooldownEvent struct {
	SpellID int32
	IsPet   bool
}

// Write serializes the packet.
func (p *CooldownEvent) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGCooldownEvent, 5)
	w.WriteInt32(p.SpellID)
	w.WriteBit(p.IsPet)
	w.FlushBits()
	return w.Result()
}
