package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// LogoutRequest starts the logout timer.
type LogoutRequest struct {
	IdleLogout bool
}

// ParseLogoutRequest parses LogoutRequest packet.
func ParseLogoutRequest(data []byte) (*LogoutRequest, error) {
	r := packet.NewReader(data)
	idle, err := r.ReadBit()
	if err != nil {
		return nil, fmt.Errorf("reading IdleLogout: %w", err)
	}
	return &LogoutRequest{IdleLogout: idle}, nil
}

// LogoutCancel has no body fields.
type LogoutCancel struct{}

// ParseLogoutCancel parses LogoutCancel packet.
func ParseLogoutCancel(_ []byte) (*LogoutCancel, error) {
	return &LogoutCancel{}, nil
}

// RequestPlayedTime asks for PlayedTime. TriggerScriptEvent is echoed back.
type RequestPlayedTime struct {
	TriggerScriptEvent bool
}

// ParseRequestPlayedTime parses RequestPlayedTime packet.
func ParseRequestPlayedTime(data []byte) (*RequestPlayedTime, error) {
	r := packet.NewReader(data)
	trigger, err := r.ReadBit()
	if err != nil {
		return nil, fmt.Errorf("reading TriggerScriptEvent: %w", err)
	}
	return &RequestPlayedTime{TriggerScriptEvent: trigger}, nil
}

// CharacterRenameRequest renames a character flagged for rename at login.
type CharacterRenameRequest struct {
	Guid    model.ObjectGuid
	NewName string
}

// ParseCharacterRenameRequest parses CharacterRenameRequest packet.
func ParseCharacterRenameRequest(data []byte) (*CharacterRenameRequest, error) {
	r := packet.NewReader(data)
	p := &CharacterRenameRequest{}
	var err error
	if p.Guid, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading Guid: %w", err)
	}
	n, err := r.ReadBits(6)
	if err != nil {
		return nil, fmt.Errorf("reading NewName length: %w", err)
	}
	if p.NewName, err = r.ReadString(int(n)); err != nil {
		return nil, fmt.Errorf("reading NewName: %w", err)
	}
	return p, nil
}

// PlayerLogin enters the world with the character in Guid.
type PlayerLogin struct {
	Guid    model.ObjectGuid
	FarClip float32
}

// ParsePlayerLogin parses PlayerLogin packet.
func ParsePlayerLogin(data []byte) (*PlayerLogin, error) {
	r := packet.NewReader(data)
	p := &PlayerLogin{}
	var err error
	if p.Guid, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading Guid: %w", err)
	}
	if p.FarClip, err = r.ReadFloat(); err != nil {
		return nil, fmt.Errorf("reading FarClip: %w", err)
	}
	return p, nil
}
