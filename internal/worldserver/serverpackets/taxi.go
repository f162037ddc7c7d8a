package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// Taxi node status, 2 bits.
const (
	TaxiNodeStatusNone        uint8 = 0
	TaxiNodeStatusLearned     uint8 = 1
	TaxiNodeStatusUnlearned   uint8 = 2
	TaxiNodeStatusNotEligible uint8 = 3
)

// TaxiNodeStatus answers TaxiNodeStatusQuery.
type TaxiNodeStatus struct {
	Unit   model.ObjectGuid
	Status uint8
}

// Write serializes the packet.
func (p *TaxiNodeStatus) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGTaxiNodeStatus, 19)
	w.WritePackedGuid(p.Unit)
	w.WriteEnum("TaxiNodeStatus.Status", uint32(p.Status), 2)
	w.FlushBits()
	return w.Result()
}

// ShowTaxiNodesWindowInfo names the flight master and its node.
type ShowTaxiNodesWindowInfo struct {
	UnitGUID    model.ObjectGuid
	CurrentNode int32
}

// ShowTaxiNodes opens the flight map. CanLandNodes and CanUseNodes are node
// bitmasks indexed by taxi node id.
type ShowTaxiNodes struct {
	WindowInfo   *ShowTaxiNodesWindowInfo
	CanLandNodes []byte
	CanUseNodes  []byte
}

// Write serializes the packet.
func (p *ShowTaxiNodes) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGShowTaxiNodes, 32+len(p.CanLandNodes)+len(p.CanUseNodes))
	w.WriteBit(p.WindowInfo != nil)
	w.FlushBits()
	w.WriteUInt32(uint32(len(p.CanLandNodes)))
	w.WriteUInt32(uint32(len(p.CanUseNodes)))
	if p.WindowInfo != nil {
		w.WritePackedGuid(p.WindowInfo.UnitGUID)
		w.WriteInt32(p.WindowInfo.CurrentNode)
	}
	w.WriteBytes(p.CanLandNodes)
	w.WriteBytes(p.CanUseNodes)
	return w.Result()
}

// Activate taxi replies, 4 bits.
const (
	ActivateTaxiOk             uint8 = 0
	ActivateTaxiUnspecified    uint8 = 1
	ActivateTaxiNoSuchPath     uint8 = 2
	ActivateTaxiNotEnoughMoney uint8 = 3
	ActivateTaxiTooFarAway     uint8 = 4
)

// ActivateTaxiReply answers ActivateTaxi.
type ActivateTaxiReply struct {
	Reply uint8
}

// Write serializes the packet.
func (p *ActivateTaxiReply) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGActivateTaxiReply, 1)
	w.WriteEnum("ActivateTaxiReply.Reply", uint32(p.Reply), 4)
	w.FlushBits()
	return w.Result()
}
