package wiretypes

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// InvItem addresses one inventory slot.
type InvItem struct {
	ContainerSlot uint8
	Slot          uint8
}

// InvUpdate lists the slots touched by an inventory request (2-bit count).
type InvUpdate struct {
	Items []InvItem
}

func (u *InvUpdate) Write(w *packet.Writer) {
	w.WriteLen("InvUpdate.Items", len(u.Items), 2)
	w.FlushBits()
	for _, it := range u.Items {
		w.WriteUInt8(it.ContainerSlot)
		w.WriteUInt8(it.Slot)
	}
}

func (u *InvUpdate) Read(r *packet.Reader) error {
	n, err := r.ReadBits(2)
	if err != nil {
		return fmt.Errorf("reading InvUpdate count: %w", err)
	}
	r.ResetBitPos()
	u.Items = make([]InvItem, n)
	for i := range u.Items {
		if u.Items[i].ContainerSlot, err = r.ReadUInt8(); err != nil {
			return fmt.Errorf("reading InvUpdate[%d].ContainerSlot: %w", i, err)
		}
		if u.Items[i].Slot, err = r.ReadUInt8(); err != nil {
			return fmt.Errorf("reading InvUpdate[%d].Slot: %w", i, err)
		}
	}
	return nil
}

// RideTicket identifies a queue slot (battlefield, LFG, ...).
type RideTicket struct {
	RequesterGuid model.ObjectGuid
	ID            uint32
	Type          uint32
	Time          int32
}

func (t *RideTicket) Write(w *packet.Writer) {
	w.WritePackedGuid(t.RequesterGuid)
	w.WriteUInt32(t.ID)
	w.WriteUInt32(t.Type)
	w.WriteInt32(t.Time)
}

func (t *RideTicket) Read(r *packet.Reader) error {
	var err error
	if t.RequesterGuid, err = r.ReadPackedGuid(); err != nil {
		return fmt.Errorf("reading RideTicket.RequesterGuid: %w", err)
	}
	if t.ID, err = r.ReadUInt32(); err != nil {
		return fmt.Errorf("reading RideTicket.ID: %w", err)
	}
	if t.Type, err = r.ReadUInt32(); err != nil {
		return fmt.Errorf("reading RideTicket.Type: %w", err)
	}
	if t.Time, err = r.ReadInt32(); err != nil {
		return fmt.Errorf("reading RideTicket.Time: %w", err)
	}
	return nil
}

// QualifiedGUID is a guid plus the virtual realm it lives on.
type QualifiedGUID struct {
	VirtualRealmAddress uint32
	Guid                model.ObjectGuid
}

func (q *QualifiedGUID) Write(w *packet.Writer) {
	w.WriteUInt32(q.VirtualRealmAddress)
	w.WritePackedGuid(q.Guid)
}

func (q *QualifiedGUID) Read(r *packet.Reader) error {
	var err error
	if q.VirtualRealmAddress, err = r.ReadUInt32(); err != nil {
		return fmt.Errorf("reading VirtualRealmAddress: %w", err)
	}
	if q.Guid, err = r.ReadPackedGuid(); err != nil {
		return fmt.Errorf("reading Guid: %w", err)
	}
	return nil
}
