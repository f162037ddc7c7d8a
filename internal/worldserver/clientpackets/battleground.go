package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/wiretypes"
)

// AreaSpiritHealerQuery asks for the time until the next area spirit heal.
type AreaSpiritHealerQuery struct {
	HealerGuid model.ObjectGuid
}

// ParseAreaSpiritHealerQuery parses AreaSpiritHealerQuery packet.
func ParseAreaSpiritHealerQuery(data []byte) (*AreaSpiritHealerQuery, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading HealerGuid: %w", err)
	}
	return &AreaSpiritHealerQuery{HealerGuid: g}, nil
}

// AreaSpiritHealerQueue queues the dead player at an area spirit healer.
type AreaSpiritHealerQueue struct {
	HealerGuid model.ObjectGuid
}

// ParseAreaSpiritHealerQueue parses AreaSpiritHealerQueue packet.
func ParseAreaSpiritHealerQueue(data []byte) (*AreaSpiritHealerQueue, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading HealerGuid: %w", err)
	}
	return &AreaSpiritHealerQueue{HealerGuid: g}, nil
}

// BattlemasterJoin queues for one or more battlegrounds. BlacklistMap holds
// the map ids the player asked to avoid.
type BattlemasterJoin struct {
	QueueIDs     []uint64
	Roles        uint8
	BlacklistMap [2]int32
}

// ParseBattlemasterJoin parses BattlemasterJoin packet.
func ParseBattlemasterJoin(data []byte) (*BattlemasterJoin, error) {
	r := packet.NewReader(data)
	p := &BattlemasterJoin{}

	n, err := r.ReadArraySize(8)
	if err != nil {
		return nil, fmt.Errorf("reading QueueIDs count: %w", err)
	}
	if p.Roles, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading Roles: %w", err)
	}
	for i := range p.BlacklistMap {
		if p.BlacklistMap[i], err = r.ReadInt32(); err != nil {
			return nil, fmt.Errorf("reading BlacklistMap[%d]: %w", i, err)
		}
	}
	p.QueueIDs = make([]uint64, n)
	for i := range p.QueueIDs {
		if p.QueueIDs[i], err = r.ReadUInt64(); err != nil {
			return nil, fmt.Errorf("reading QueueIDs[%d]: %w", i, err)
		}
	}
	return p, nil
}

// BattlemasterJoinArena queues the player's arena team.
type BattlemasterJoinArena struct {
	TeamSizeIndex uint8
	Roles         uint8
}

// ParseBattlemasterJoinArena parses BattlemasterJoinArena packet.
func ParseBattlemasterJoinArena(data []byte) (*BattlemasterJoinArena, error) {
	r := packet.NewReader(data)
	p := &BattlemasterJoinArena{}
	var err error
	if p.TeamSizeIndex, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading TeamSizeIndex: %w", err)
	}
	if p.Roles, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading Roles: %w", err)
	}
	return p, nil
}

// BattlefieldLeave has no body fields.
type BattlefieldLeave struct{}

// ParseBattlefieldLeave parses BattlefieldLeave packet.
func ParseBattlefieldLeave(_ []byte) (*BattlefieldLeave, error) {
	return &BattlefieldLeave{}, nil
}

// BattlefieldPort accepts or declines a BattlefieldStatusNeedConfirmation.
type BattlefieldPort struct {
	Ticket         wiretypes.RideTicket
	AcceptedInvite bool
}

// ParseBattlefieldPort parses BattlefieldPort packet.
func ParseBattlefieldPort(data []byte) (*BattlefieldPort, error) {
	r := packet.NewReader(data)
	p := &BattlefieldPort{}
	if err := p.Ticket.Read(r); err != nil {
		return nil, fmt.Errorf("reading Ticket: %w", err)
	}
	var err error
	if p.AcceptedInvite, err = r.ReadBit(); err != nil {
		return nil, fmt.Errorf("reading AcceptedInvite: %w", err)
	}
	return p, nil
}

// BattlefieldListRequest opens the battleground list for ListID.
type BattlefieldListRequest struct {
	ListID int32
}

// ParseBattlefieldListRequest parses BattlefieldListRequest packet.
func ParseBattlefieldListRequest(data []byte) (*BattlefieldListRequest, error) {
	id, err := packet.NewReader(data).ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("reading ListID: %w", err)
	}
	return &BattlefieldListRequest{ListID: id}, nil
}

// RequestBattlefieldStatus has no body fields.
type RequestBattlefieldStatus struct{}

// ParseRequestBattlefieldStatus parses RequestBattlefieldStatus packet.
func ParseRequestBattlefieldStatus(_ []byte) (*RequestBattlefieldStatus, error) {
	return &RequestBattlefieldStatus{}, nil
}

// ReportPvpPlayerAfk reports an idle player in a battleground.
type ReportPvpPlayerAfk struct {
	Offender model.ObjectGuid
}

// ParseReportPvpPlayerAfk parses ReportPvpPlayerAfk packet.
func ParseReportPvpPlayerAfk(data []byte) (*ReportPvpPlayerAfk, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading Offender: %w", err)
	}
	return &ReportPvpPlayerAfk{Offender: g}, nil
}

// PvpLogDataRequest has no body fields.
type PvpLogDataRequest struct{}

// ParsePvpLogDataRequest parses PvpLogDataRequest packet.
func ParsePvpLogDataRequest(_ []byte) (*PvpLogDataRequest, error) {
	return &PvpLogDataRequest{}, nil
}

// HearthAndResurrect has no body fields.
type HearthAndResurrect struct{}

// ParseHearthAndResurrect parses HearthAndResurrect packet.
func ParseHearthAndResurrect(_ []byte) (*HearthAndResurrect, error) {
	return &HearthAndResurrect{}, nil
}
