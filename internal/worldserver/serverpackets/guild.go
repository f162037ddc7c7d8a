package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// GuildInfoRank is one rank of QueryGuildInfoResponse.
type GuildInfoRank struct {
	RankID    uint32
	RankOrder uint32
	RankName  string
}

// GuildInfo names a guild and its ranks.
type GuildInfo struct {
	GuildGuid           model.ObjectGuid
	VirtualRealmAddress uint32
	EmblemStyle         uint32
	EmblemColor         uint32
	BorderStyle         uint32
	BorderColor         uint32
	BackgroundColor     uint32
	Ranks               []GuildInfoRank
	GuildName           string
}

func (g *GuildInfo) write(w *packet.Writer) {
	w.WritePackedGuid(g.GuildGuid)
	w.WriteUInt32(g.VirtualRealmAddress)
	w.WriteUInt32(uint32(len(g.Ranks)))
	w.WriteUInt32(g.EmblemStyle)
	w.WriteUInt32(g.EmblemColor)
	w.WriteUInt32(g.BorderStyle)
	w.WriteUInt32(g.BorderColor)
	w.WriteUInt32(g.BackgroundColor)
	w.WriteLen("GuildInfo.GuildName", len(g.GuildName), 7)
	w.FlushBits()

	for _, r := range g.Ranks {
		w.WriteUInt32(r.RankID)
		w.WriteUInt32(r.RankOrder)
		w.WriteLen("GuildInfoRank.RankName", len(r.RankName), 7)
		w.WriteString(r.RankName)
	}
	w.WriteString(g.GuildName)
}

// QueryGuildInfoResponse answers QueryGuildInfo. Info is nil when the
// guild does not exist.
type QueryGuildInfoResponse struct {
	GuildGUID model.ObjectGuid
	Info      *GuildInfo
}

// Write serializes the packet.
func (p *QueryGuildInfoResponse) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGQueryGuildInfoResponse, 128)
	w.WritePackedGuid(p.GuildGUID)
	w.WriteBit(p.Info != nil)
	w.FlushBits()
	if p.Info != nil {
		p.Info.write(w)
	}
	return w.Result()
}

// GuildCommandResult reports the outcome of a guild command.
type GuildCommandResult struct {
	Result  int32
	Command int32
	Name    string
}

// Write serializes the packet.
func (p *GuildCommandResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGuildCommandResult, 9+len(p.Name))
	w.WriteInt32(p.Result)
	w.WriteInt32(p.Command)
	w.WriteLen("GuildCommandResult.Name", len(p.Name), 8)
	w.WriteString(p.Name)
	return w.Result()
}

// GuildEventPlayerJoined announces a new guild member.
type GuildEventPlayerJoined struct {
	Guid                model.ObjectGuid
	VirtualRealmAddress uint32
	Name                string
}

// Write serializes the packet.
func (p *GuildEventPlayerJoined) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGuildEventPlayerJoined, 24+len(p.Name))
	w.WritePackedGuid(p.Guid)
	w.WriteUInt32(p.VirtualRealmAddress)
	w.WriteLen("GuildEventPlayerJoined.Name", len(p.Name), 6)
	w.WriteString(p.Name)
	return w.Result()
}

// GuildEventMotd broadcasts the guild message of the day.
type GuildEventMotd struct {
	MotdText string
}

// Write serializes the packet.
func (p *GuildEventMotd) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGuildEventMotd, 2+len(p.MotdText))
	w.WriteLen("GuildEventMotd.MotdText", len(p.MotdText), 10)
	w.WriteString(p.MotdText)
	return w.Result()
}
