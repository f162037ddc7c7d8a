package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// QueryGuildInfo asks for the guild name and ranks of GuildGuid.
type QueryGuildInfo struct {
	GuildGuid  model.ObjectGuid
	PlayerGuid model.ObjectGuid
}

// ParseQueryGuildInfo parses QueryGuildInfo packet.
func ParseQueryGuildInfo(data []byte) (*QueryGuildInfo, error) {
	r := packet.NewReader(data)
	p := &QueryGuildInfo{}
	var err error
	if p.GuildGuid, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading GuildGuid: %w", err)
	}
	if p.PlayerGuid, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading PlayerGuid: %w", err)
	}
	return p, nil
}

// GuildInviteByName invites a character into the player's guild.
type GuildInviteByName struct {
	Name string
}

// ParseGuildInviteByName parses GuildInviteByName packet.
func ParseGuildInviteByName(data []byte) (*GuildInviteByName, error) {
	r := packet.NewReader(data)
	n, err := r.ReadBits(9)
	if err != nil {
		return nil, fmt.Errorf("reading Name length: %w", err)
	}
	name, err := r.ReadString(int(n))
	if err != nil {
		return nil, fmt.Errorf("reading Name: %w", err)
	}
	return &GuildInviteByName{Name: name}, nil
}

// GuildDeclineInvitation has no body fields.
type GuildDeclineInvitation struct{}

// ParseGuildDeclineInvitation parses GuildDeclineInvitation packet.
func ParseGuildDeclineInvitation(_ []byte) (*GuildDeclineInvitation, error) {
	return &GuildDeclineInvitation{}, nil
}
