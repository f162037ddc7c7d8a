package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// PvPTalent is one selected PvP talent.
type PvPTalent struct {
	PvPTalentID uint16
	Slot        uint8
}

// TalentGroupInfo is one spec and its talents.
type TalentGroupInfo struct {
	SpecID     uint32
	TalentIDs  []uint16
	PvPTalents []PvPTalent
}

// UpdateTalentData sends every talent group (specialization) with its
// selected talents.
type UpdateTalentData struct {
	ActiveGroup           uint8
	PrimarySpecialization uint32
	TalentGroups          []TalentGroupInfo
}

// Write serializes the packet.
func (p *UpdateTalentData) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGUpdateTalentData, 16+len(p.TalentGroups)*48)
	w.WriteUInt8(p.ActiveGroup)
	w.WriteUInt32(p.PrimarySpecialization)
	w.WriteUInt32(uint32(len(p.TalentGroups)))
	for _, g := range p.TalentGroups {
		w.WriteUInt32(g.SpecID)
		w.WriteUInt32(uint32(len(g.TalentIDs)))
		w.WriteUInt32(uint32(len(g.PvPTalents)))
		for _, id := range g.TalentIDs {
			w.WriteUInt16(id)
		}
		for _, t := range g.PvPTalents {
			w.WriteUInt16(t.PvPTalentID)
			w.WriteUInt8(t.Slot)
		}
	}
	return w.Result()
}

// Respec types.
const (
	RespecTypeTalents        int8 = 0
	RespecTypeSpecialization int8 = 1
)

// RespecWipeConfirm offers a talent reset for Cost copper.
type RespecWipeConfirm struct {
	RespecMaster model.ObjectGuid
	Cost         uint32
	RespecType   int8
}

// Write serializes the packet.
func (p *RespecWipeConfirm) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGRespecWipeConfirm, 24)
	w.WriteInt8(p.RespecType)
	w.WriteUInt32(p.Cost)
	w.WritePackedGuid(p.RespecMaster)
	return w.Result()
}

// LearnTalentsFailed rejects a LearnTalents request.
type LearnTalentsFailed struct {
	Reason  uint32 // 4 bits
	SpellID int32
	Talents []uint16
}

// Write serializes the packet.
func (p *LearnTalentsFailed) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGLearnTalentsFailed, 12+len(p.Talents)*2)
	w.WriteEnum("LearnTalentsFailed.Reason", p.Reason, 4)
	w.WriteInt32(p.SpellID)
	w.WriteUInt32(uint32(len(p.Talents)))
	for _, id := range p.Talents {
		w.WriteUInt16(id)
	}
	return w.Result()
}

// GlyphBinding binds a glyph to a spell.
type GlyphBinding struct {
	SpellID uint32
	GlyphID uint16
}

// ActiveGlyphs lists the player's glyphs.
type ActiveGlyphs struct {
	Glyphs       []GlyphBinding
	IsFullUpdate bool
}

// Write serializes the packet.
func (p *ActiveGlyphs) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGActiveGlyphs, 5+len(p.Glyphs)*6)
	w.WriteUInt32(uint32(len(p.Glyphs)))
	for _, g := range p.Glyphs {
		w.WriteUInt32(g.SpellID)
		w.WriteUInt16(g.GlyphID)
	}
	w.WriteBit(p.IsFullUpdate)
	w.FlushBits()
	return w.Result()
}
