package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// PartyInvite invites by guid when known, otherwise by name and realm.
type PartyInvite struct {
	PartyIndex    uint8
	ProposedRoles uint32
	TargetGUID    model.ObjectGuid
	TargetName    string
	TargetRealm   string
}

// ParsePartyInvite parses PartyInvite packet.
func ParsePartyInvite(data []byte) (*PartyInvite, error) {
	r := packet.NewReader(data)
	p := &PartyInvite{}
	var err error
	if p.PartyIndex, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading PartyIndex: %w", err)
	}
	if p.ProposedRoles, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading ProposedRoles: %w", err)
	}
	if p.TargetGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading TargetGUID: %w", err)
	}
	nameLen, err := r.ReadBits(9)
	if err != nil {
		return nil, fmt.Errorf("reading TargetName length: %w", err)
	}
	realmLen, err := r.ReadBits(9)
	if err != nil {
		return nil, fmt.Errorf("reading TargetRealm length: %w", err)
	}
	if p.TargetName, err = r.ReadString(int(nameLen)); err != nil {
		return nil, fmt.Errorf("reading TargetName: %w", err)
	}
	if p.TargetRealm, err = r.ReadString(int(realmLen)); err != nil {
		return nil, fmt.Errorf("reading TargetRealm: %w", err)
	}
	return p, nil
}

// PartyUninvite removes TargetGUID from the group.
type PartyUninvite struct {
	PartyIndex uint8
	TargetGUID model.ObjectGuid
	Reason     string
}

// ParsePartyUninvite parses PartyUninvite packet.
func ParsePartyUninvite(data []byte) (*PartyUninvite, error) {
	r := packet.NewReader(data)
	p := &PartyUninvite{}
	var err error
	if p.PartyIndex, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading PartyIndex: %w", err)
	}
	if p.TargetGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading TargetGUID: %w", err)
	}
	n, err := r.ReadBits(8)
	if err != nil {
		return nil, fmt.Errorf("reading Reason length: %w", err)
	}
	if p.Reason, err = r.ReadString(int(n)); err != nil {
		return nil, fmt.Errorf("reading Reason: %w", err)
	}
	return p, nil
}

// SetPartyLeader hands leadership to TargetGUID.
type SetPartyLeader struct {
	PartyIndex int8
	TargetGUID model.ObjectGuid
}

// ParseSetPartyLeader parses SetPartyLeader packet.
func ParseSetPartyLeader(data []byte) (*SetPartyLeader, error) {
	r := packet.NewReader(data)
	p := &SetPartyLeader{}
	var err error
	if p.PartyIndex, err = r.ReadInt8(); err != nil {
		return nil, fmt.Errorf("reading PartyIndex: %w", err)
	}
	if p.TargetGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading TargetGUID: %w", err)
	}
	return p, nil
}

// LeaveGroup leaves the group at PartyIndex.
type LeaveGroup struct {
	PartyIndex int8
}

// ParseLeaveGroup parses LeaveGroup packet.
func ParseLeaveGroup(data []byte) (*LeaveGroup, error) {
	idx, err := packet.NewReader(data).ReadInt8()
	if err != nil {
		return nil, fmt.Errorf("reading PartyIndex: %w", err)
	}
	return &LeaveGroup{PartyIndex: idx}, nil
}
