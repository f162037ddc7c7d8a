package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// Party commands (4 bits) and results (6 bits).
const (
	PartyOpInvite   uint8 = 0
	PartyOpUninvite uint8 = 1
	PartyOpLeave    uint8 = 2
	PartyOpSwap     uint8 = 4

	PartyResultOk               uint8 = 0
	PartyResultBadPlayerName    uint8 = 1
	PartyResultTargetNotInGroup uint8 = 2
	PartyResultGroupFull        uint8 = 3
	PartyResultAlreadyInGroup   uint8 = 4
	PartyResultNotLeader        uint8 = 6
	PartyResultIgnoringYou      uint8 = 9
)

// PartyCommandResult reports the outcome of a party command.
type PartyCommandResult struct {
	Name       string
	Command    uint8
	Result     uint8
	ResultData uint32
	ResultGUID model.ObjectGuid
}

// Write serializes the packet.
func (p *PartyCommandResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGPartyCommandResult, 24+len(p.Name))
	w.WriteLen("PartyCommandResult.Name", len(p.Name), 9)
	w.WriteEnum("PartyCommandResult.Command", uint32(p.Command), 4)
	w.WriteEnum("PartyCommandResult.Result", uint32(p.Result), 6)
	w.WriteUInt32(p.ResultData)
	w.WritePackedGuid(p.ResultGUID)
	w.WriteString(p.Name)
	return w.Result()
}

// GroupDecline reports a declined party invite.
type GroupDecline struct {
	Name string
}

// Write serializes the packet.
func (p *GroupDecline) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGroupDecline, 2+len(p.Name))
	w.WriteLen("GroupDecline.Name", len(p.Name), 9)
	w.WriteString(p.Name)
	return w.Result()
}

// GroupNewLeader announces a new group leader.
type GroupNewLeader struct {
	PartyIndex int8
	Name       string
}

// Write serializes the packet.
func (p *GroupNewLeader) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGGroupNewLeader, 2+len(p.Name))
	w.WriteInt8(p.PartyIndex)
	w.WriteLen("GroupNewLeader.Name", len(p.Name), 6)
	w.WriteString(p.Name)
	return w.Result()
}
