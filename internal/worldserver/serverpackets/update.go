package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// UpdateObject carries a batch of object create/values updates for one map.
// Data is the pre-built update block; DestroyGUIDs and OutOfRangeGUIDs are
// sent in a leading block that is omitted when both are empty.
type UpdateObject struct {
	NumObjUpdates   uint32
	MapID           uint16
	DestroyGUIDs    []model.ObjectGuid
	OutOfRangeGUIDs []model.ObjectGuid
	Data            []byte
}

// Write serializes the packet.
func (p *UpdateObject) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGUpdateObject, 16+len(p.Data)+18*(len(p.DestroyGUIDs)+len(p.OutOfRangeGUIDs)))
	w.WriteUInt32(p.NumObjUpdates)
	w.WriteUInt16(p.MapID)

	if w.WriteBit(len(p.DestroyGUIDs) > 0 || len(p.OutOfRangeGUIDs) > 0) {
		w.WriteUInt16(uint16(len(p.DestroyGUIDs)))
		w.WriteUInt32(uint32(len(p.DestroyGUIDs) + len(p.OutOfRangeGUIDs)))
		for _, g := range p.DestroyGUIDs {
			w.WritePackedGuid(g)
		}
		for _, g := range p.OutOfRangeGUIDs {
			w.WritePackedGuid(g)
		}
	}
	w.FlushBits()
	w.WriteUInt32(uint32(len(p.Data)))
	w.WriteBytes(p.Data)
	return w.Result()
}
