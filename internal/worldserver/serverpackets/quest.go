package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// QuestGiverStatus sets the quest marker of one quest giver.
type QuestGiverStatus struct {
	QuestGiver model.ObjectGuid
	Status     uint32
}

// Write serializes the packet.
func (p *QuestGiverStatus) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGQuestGiverStatus, 22)
	w.WritePackedGuid(p.QuestGiver)
	w.WriteUInt32(p.Status)
	return w.Result()
}

// QuestUpdateComplete marks a quest ready to turn in.
type QuestUpdateComplete struct {
	QuestID uint32
}

// Write serializes the packet.
func (p *QuestUpdateComplete) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGQuestUpdateComplete, 4)
	w.WriteUInt32(p.QuestID)
	return w.Result()
}

// QuestUpdateAddCredit reports kill or use credit toward a quest.
type QuestUpdateAddCredit struct {
	VictimGUID    model.ObjectGuid
	QuestID       int32
	ObjectID      int32
	Count         uint16
	Required      uint16
	ObjectiveType uint8
}

// Write serializes the packet.
func (p *QuestUpdateAddCredit) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGQuestUpdateAddCredit, 32)
	w.WritePackedGuid(p.VictimGUID)
	w.WriteInt32(p.ObjectID)
	w.WriteInt32(p.QuestID)
	w.WriteUInt16(p.Count)
	w.WriteUInt16(p.Required)
	w.WriteUInt8(p.ObjectiveType)
	return w.Result()
}

// QuestConfirmAccept asks party members to accept a shared quest.
type QuestConfirmAccept struct {
	QuestID     uint32
	InitiatedBy model.ObjectGuid
	QuestTitle  string
}

// Write serializes the packet.
func (p *QuestConfirmAccept) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGQuestConfirmAccept, 24+len(p.QuestTitle))
	w.WriteUInt32(p.QuestID)
	w.WritePackedGuid(p.InitiatedBy)
	w.WriteLen("QuestConfirmAccept.QuestTitle", len(p.QuestTitle), 10)
	w.WriteString(p.QuestTitle)
	return w.Result()
}
