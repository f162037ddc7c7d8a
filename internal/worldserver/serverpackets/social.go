package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// Contact list flags.
const (
	SocialFlagFriend  uint32 = 0x01
	SocialFlagIgnored uint32 = 0x02
	SocialFlagMuted   uint32 = 0x04
	SocialFlagAll     uint32 = SocialFlagFriend | SocialFlagIgnored | SocialFlagMuted
)

// ContactInfo is one friend or ignore list entry.
type ContactInfo struct {
	Guid             model.ObjectGuid
	WowAccountGuid   model.ObjectGuid
	VirtualRealmAddr uint32
	NativeRealmAddr  uint32
	TypeFlags        uint32
	Status           uint8
	AreaID           uint32
	Level            uint32
	ClassID          uint32
	Notes            string
	Mobile           bool
}

func (c *ContactInfo) write(w *packet.Writer) {
	w.WritePackedGuid(c.Guid)
	w.WritePackedGuid(c.WowAccountGuid)
	w.WriteUInt32(c.VirtualRealmAddr)
	w.WriteUInt32(c.NativeRealmAddr)
	w.WriteUInt32(c.TypeFlags)
	w.WriteUInt8(c.Status)
	w.WriteUInt32(c.AreaID)
	w.WriteUInt32(c.Level)
	w.WriteUInt32(c.ClassID)
	w.WriteLen("ContactInfo.Notes", len(c.Notes), 10)
	w.WriteBit(c.Mobile)
	w.FlushBits()
	w.WriteString(c.Notes)
}

// ContactList sends the friend and ignore lists.
type ContactList struct {
	Flags    uint32
	Contacts []ContactInfo
}

// Write serializes the packet.
func (p *ContactList) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGContactList, 5+len(p.Contacts)*64)
	w.WriteUInt32(p.Flags)
	w.WriteLen("ContactList.Contacts", len(p.Contacts), 8)
	w.FlushBits()
	for i := range p.Contacts {
		p.Contacts[i].write(w)
	}
	return w.Result()
}

// FriendStatus reports the outcome of a contact change or a friend's
// presence update.
type FriendStatus struct {
	FriendResult        uint8
	Guid                model.ObjectGuid
	WowAccountGuid      model.ObjectGuid
	VirtualRealmAddress uint32
	Status              uint8
	AreaID              uint32
	Level               uint32
	ClassID             uint32
	Notes               string
	Mobile              bool
}

// Write serializes the packet.
func (p *FriendStatus) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGFriendStatus, 64+len(p.Notes))
	w.WriteUInt8(p.FriendResult)
	w.WritePackedGuid(p.Guid)
	w.WritePackedGuid(p.WowAccountGuid)
	w.WriteUInt32(p.VirtualRealmAddress)
	w.WriteUInt8(p.Status)
	w.WriteUInt32(p.AreaID)
	w.WriteUInt32(p.Level)
	w.WriteUInt32(p.ClassID)
	w.WriteLen("FriendStatus.Notes", len(p.Notes), 10)
	w.WriteBit(p.Mobile)
	w.FlushBits()
	w.WriteString(p.Notes)
	return w.Result()
}
