package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// GuildSetFocusedAchievement tracks one guild achievement in the guild UI.
type GuildSetFocusedAchievement struct {
	AchievementID uint32
}

// ParseGuildSetFocusedAchievement parses GuildSetFocusedAchievement packet.
func ParseGuildSetFocusedAchievement(data []byte) (*GuildSetFocusedAchievement, error) {
	r := packet.NewReader(data)
	id, err := r.ReadUInt32()
	if err != nil {
		return nil, fmt.Errorf("reading AchievementID: %w", err)
	}
	return &GuildSetFocusedAchievement{AchievementID: id}, nil
}

// GuildGetAchievementMembers asks which guild members earned AchievementID.
type GuildGetAchievementMembers struct {
	PlayerGUID    model.ObjectGuid
	GuildGUID     model.ObjectGuid
	AchievementID uint32
}

// ParseGuildGetAchievementMembers parses GuildGetAchievementMembers packet.
func ParseGuildGetAchievementMembers(data []byte) (*GuildGetAchievementMembers, error) {
	r := packet.NewReader(data)
	p := &GuildGetAchievementMembers{}
	var err error
	if p.PlayerGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading PlayerGUID: %w", err)
	}
	if p.GuildGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading GuildGUID: %w", err)
	}
	if p.AchievementID, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading AchievementID: %w", err)
	}
	return p, nil
}

// QueryInspectAchievements is answered with RespondInspectAchievements.
type QueryInspectAchievements struct {
	Guid model.ObjectGuid
}

// ParseQueryInspectAchievements parses QueryInspectAchievements packet.
func ParseQueryInspectAchievements(data []byte) (*QueryInspectAchievements, error) {
	r := packet.NewReader(data)
	g, err := r.ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading Guid: %w", err)
	}
	return &QueryInspectAchievements{Guid: g}, nil
}
