package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// MaxQuestLogSize is the number of quest log slots.
const MaxQuestLogSize = 25

// QuestGiverHello opens the quest list of a quest giver.
type QuestGiverHello struct {
	QuestGiverGUID model.ObjectGuid
}

// ParseQuestGiverHello parses QuestGiverHello packet.
func ParseQuestGiverHello(data []byte) (*QuestGiverHello, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading QuestGiverGUID: %w", err)
	}
	return &QuestGiverHello{QuestGiverGUID: g}, nil
}

// QuestGiverStatusQuery asks for the quest marker of a quest giver.
type QuestGiverStatusQuery struct {
	QuestGiverGUID model.ObjectGuid
}

// ParseQuestGiverStatusQuery parses QuestGiverStatusQuery packet.
func ParseQuestGiverStatusQuery(data []byte) (*QuestGiverStatusQuery, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading QuestGiverGUID: %w", err)
	}
	return &QuestGiverStatusQuery{QuestGiverGUID: g}, nil
}

// QuestGiverQueryQuest asks for the details of QuestID.
type QuestGiverQueryQuest struct {
	QuestGiverGUID model.ObjectGuid
	QuestID        uint32
	RespondToGiver bool
}

// ParseQuestGiverQueryQuest parses QuestGiverQueryQuest packet.
func ParseQuestGiverQueryQuest(data []byte) (*QuestGiverQueryQuest, error) {
	r := packet.NewReader(data)
	p := &QuestGiverQueryQuest{}
	var err error
	if p.QuestGiverGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading QuestGiverGUID: %w", err)
	}
	if p.QuestID, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading QuestID: %w", err)
	}
	if p.RespondToGiver, err = r.ReadBit(); err != nil {
		return nil, fmt.Errorf("reading RespondToGiver: %w", err)
	}
	return p, nil
}

// QuestLogRemoveQuest abandons the quest in log slot Entry.
type QuestLogRemoveQuest struct {
	Entry uint8
}

// ParseQuestLogRemoveQuest parses QuestLogRemoveQuest packet.
func ParseQuestLogRemoveQuest(data []byte) (*QuestLogRemoveQuest, error) {
	e, err := packet.NewReader(data).ReadUInt8()
	if err != nil {
		return nil, fmt.Errorf("reading Entry: %w", err)
	}
	if e >= MaxQuestLogSize {
		return nil, fmt.Errorf("reading Entry: slot %d out of range", e)
	}
	return &QuestLogRemoveQuest{Entry: e}, nil
}
