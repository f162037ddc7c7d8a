package serverpackets

import "github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"

// FactionCount is the number of reputation list slots the client tracks.
const FactionCount = 1000

// InitializeFactions sends the whole reputation list on login. Slots are
// indexed by the faction's reputation index.
type InitializeFactions struct {
	FactionStandings [FactionCount]int32
	FactionHasBonus  [FactionCount]bool
	FactionFlags     [FactionCount]uint8
}

// Write serializes the packet.
func (p *InitializeFactions) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGInitializeFactions, FactionCount*5+FactionCount/8+1)
	for i := range FactionCount {
		w.WriteUInt8(p.FactionFlags[i])
		w.WriteInt32(p.FactionStandings[i])
	}
	for i := range FactionCount {
		w.WriteBit(p.FactionHasBonus[i])
	}
	w.FlushBits()
	return w.Result()
}

// FactionStandingData is one faction's new standing.
type FactionStandingData struct {
	Index    int32
	Standing int32
}

// SetFactionStanding updates reputation standings.
type SetFactionStanding struct {
	ReferAFriendBonus          float32
	BonusFromAchievementSystem float32
	Faction                    []FactionStandingData
	ShowVisual                 bool
}

// Write serializes the packet.
func (p *SetFactionStanding) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGSetFactionStanding, 13+len(p.Faction)*8)
	w.WriteFloat(p.ReferAFriendBonus)
	w.WriteFloat(p.BonusFromAchievementSystem)
	w.WriteUInt32(uint32(len(p.Faction)))
	for _, f := range p.Faction {
		w.WriteInt32(f.Index)
		w.WriteInt32(f.Standing)
	}
	w.WriteBit(p.ShowVisual)
	w.FlushBits()
	return w.Result()
}
