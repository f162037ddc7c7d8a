package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// AttackSwing starts auto attack against Victim.
type AttackSwing struct {
	Victim model.ObjectGuid
}

// ParseAttackSwing parses AttackSwing packet.
func ParseAttackSwing(data []byte) (*AttackSwing, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading Victim: %w", err)
	}
	return &AttackSwing{Victim: g}, nil
}

// AttackStop has no body fields.
type AttackStop struct{}

// ParseAttackStop parses AttackStop packet.
func ParseAttackStop(_ []byte) (*AttackStop, error) {
	return &AttackStop{}, nil
}

// CanDuel asks whether TargetGUID can be challenged.
type CanDuel struct {
	TargetGUID model.ObjectGuid
	ToTheDeath bool
}

// ParseCanDuel parses CanDuel packet.
func ParseCanDuel(data []byte) (*CanDuel, error) {
	r := packet.NewReader(data)
	p := &CanDuel{}
	var err error
	if p.TargetGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading TargetGUID: %w", err)
	}
	if p.ToTheDeath, err = r.ReadBit(); err != nil {
		return nil, fmt.Errorf("reading ToTheDeath: %w", err)
	}
	return p, nil
}

// DuelResponse answers DuelRequested. Forfeited is set when the player
// yields a running duel.
type DuelResponse struct {
	ArbiterGUID model.ObjectGuid
	Accepted    bool
	Forfeited   bool
}

// ParseDuelResponse parses DuelResponse packet.
func ParseDuelResponse(data []byte) (*DuelResponse, error) {
	r := packet.NewReader(data)
	p := &DuelResponse{}
	var err error
	if p.ArbiterGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading ArbiterGUID: %w", err)
	}
	if p.Accepted, err = r.ReadBit(); err != nil {
		return nil, fmt.Errorf("reading Accepted: %w", err)
	}
	if p.Forfeited, err = r.ReadBit(); err != nil {
		return nil, fmt.Errorf("reading Forfeited: %w", err)
	}
	return p, nil
}
