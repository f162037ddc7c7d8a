package serverpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

var speedOpcodes = map[opcodes.Server]bool{
	opcodes.SMSGMoveSetRunSpeed:     true,
	opcodes.SMSGMoveSetRunBackSpeed: true,
	opcodes.SMSGMoveSetSwimSpeed:    true,
	opcodes.SMSGMoveSetFlightSpeed:  true,
	opcodes.SMSGMoveSetWalkSpeed:    true,
}

var flagOpcodes = map[opcodes.Server]bool{
	opcodes.SMSGMoveRoot:         true,
	opcodes.SMSGMoveUnroot:       true,
	opcodes.SMSGMoveSetWaterWalk: true,
	opcodes.SMSGMoveSetLandWalk:  true,
}

// MoveSetSpeed forces a movement speed on the mover. Opcode selects which
// speed (run, swim, ...).
type MoveSetSpeed struct {
	Opcode        opcodes.Server
	MoverGUID     model.ObjectGuid
	SequenceIndex uint32
	Speed         float32
}

// Write serializes the packet.
func (p *MoveSetSpeed) Write() ([]byte, error) {
	if !speedOpcodes[p.Opcode] {
		return nil, fmt.Errorf("MoveSetSpeed: %s is not a speed opcode", p.Opcode)
	}
	w := newWriter(p.Opcode, 26)
	w.WritePackedGuid(p.MoverGUID)
	w.WriteUInt32(p.SequenceIndex)
	w.WriteFloat(p.Speed)
	return w.Result()
}

// MoveSetFlag toggles a movement flag (root, water walk, ...).
type MoveSetFlag struct {
	Opcode        opcodes.Server
	MoverGUID     model.ObjectGuid
	SequenceIndex uint32
}

// Write serializes the packet.
func (p *MoveSetFlag) Write() ([]byte, error) {
	if !flagOpcodes[p.Opcode] {
		return nil, fmt.Errorf("MoveSetFlag: %s is not a movement flag opcode", p.Opcode)
	}
	w := newWriter(p.Opcode, 22)
	w.WritePackedGuid(p.MoverGUID)
	w.WriteUInt32(p.SequenceIndex)
	return w.Result()
}

// ShipTransferPending warns of a map change on a transport.
type ShipTransferPending struct {
	ID          uint32
	OriginMapID int32
}

// TransferPending starts a loading screen before NewWorld.
type TransferPending struct {
	MapID           int32
	OldMapPosition  model.Vector3
	Ship            *ShipTransferPending
	TransferSpellID *int32
}

// Write serializes the packet.
func (p *TransferPending) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGTransferPending, 29)
	w.WriteInt32(p.MapID)
	w.WriteVector3(p.OldMapPosition)
	w.WriteBit(p.Ship != nil)
	w.WriteBit(p.TransferSpellID != nil)
	w.FlushBits()
	if p.Ship != nil {
		w.WriteUInt32(p.Ship.ID)
		w.WriteInt32(p.Ship.OriginMapID)
	}
	if p.TransferSpellID != nil {
		w.WriteInt32(*p.TransferSpellID)
	}
	return w.Result()
}

// NewWorld teleports the client to another map.
type NewWorld struct {
	MapID          int32
	Loc            model.Position
	Reason         uint32
	MovementOffset model.Vector3
}

// Write serializes the packet.
func (p *NewWorld) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGNewWorld, 36)
	w.WriteInt32(p.MapID)
	w.WritePosition(p.Loc)
	w.WriteUInt32(p.Reason)
	w.WriteVector3(p.MovementOffset)
	return w.Result()
}
