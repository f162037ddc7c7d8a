package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// Name query results.
const (
	NameQueryOk      uint8 = 0
	NameQueryFailure uint8 = 1
)

// PlayerGuidLookupData is the character summary returned by a name query.
type PlayerGuidLookupData struct {
	IsDeleted           bool
	AccountID           model.ObjectGuid
	BnetAccountID       model.ObjectGuid
	GuidActual          model.ObjectGuid
	VirtualRealmAddress uint32
	Race                uint8
	Sex                 uint8
	ClassID             uint8
	Level               uint8
	Name                string
	DeclinedNames       [5]string
}

func (d *PlayerGuidLookupData) write(w *packet.Writer) {
	w.WriteBit(d.IsDeleted)
	w.WriteLen("PlayerGuidLookupData.Name", len(d.Name), 6)
	for _, n := range d.DeclinedNames {
		w.WriteLen("PlayerGuidLookupData.DeclinedNames", len(n), 7)
	}
	w.FlushBits()
	for _, n := range d.DeclinedNames {
		w.WriteString(n)
	}
	w.WritePackedGuid(d.AccountID)
	w.WritePackedGuid(d.BnetAccountID)
	w.WritePackedGuid(d.GuidActual)
	w.WriteUInt32(d.VirtualRealmAddress)
	w.WriteUInt8(d.Race)
	w.WriteUInt8(d.Sex)
	w.WriteUInt8(d.ClassID)
	w.WriteUInt8(d.Level)
	w.WriteString(d.Name)
}

// QueryPlayerNameResponse answers QueryPlayerName. Data is written only
// when Result is NameQueryOk.
type QueryPlayerNameResponse struct {
	Player model.ObjectGuid
	Result uint8
	Data   PlayerGuidLookupData
}

// Write serializes the packet.
func (p *QueryPlayerNameResponse) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGQueryPlayerNameResponse, 96)
	w.WriteUInt8(p.Result)
	w.WritePackedGuid(p.Player)
	if p.Result == NameQueryOk {
		p.Data.write(w)
	}
	return w.Result()
}
