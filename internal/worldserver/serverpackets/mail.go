package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/wiretypes"
)

// Mail sender types.
const (
	MailSenderNormal     uint8 = 0
	MailSenderAuction    uint8 = 2
	MailSenderCreature   uint8 = 3
	MailSenderGameObject uint8 = 4
	MailSenderCalendar   uint8 = 5
)

// MailAttachedItem is an item attached to a mail in the list view.
type MailAttachedItem struct {
	Position      uint8
	AttachID      uint64
	Item          wiretypes.ItemInstance
	Count         int32
	Charges       int32
	MaxDurability uint32
	Durability    uint32
	Unlocked      bool
	Enchants      []wiretypes.ItemEnchantData
	Gems          []wiretypes.ItemGemData
}

func (a *MailAttachedItem) write(w *packet.Writer) {
	w.WriteUInt8(a.Position)
	w.WriteUInt64(a.AttachID)
	w.WriteInt32(a.Count)
	w.WriteInt32(a.Charges)
	w.WriteUInt32(a.MaxDurability)
	w.WriteUInt32(a.Durability)
	a.Item.Write(w)
	w.WriteLen("MailAttachedItem.Enchants", len(a.Enchants), 4)
	w.WriteLen("MailAttachedItem.Gems", len(a.Gems), 2)
	w.WriteBit(a.Unlocked)
	w.FlushBits()

	for i := range a.Gems {
		a.Gems[i].Write(w)
	}
	for i := range a.Enchants {
		a.Enchants[i].Write(w)
	}
}

// MailListEntry is one row of the mailbox. SenderCharacter is sent for
// player mail, AltSenderID for creature, game object and auction mail.
type MailListEntry struct {
	MailID          uint64
	SenderType      uint8
	SenderCharacter *model.ObjectGuid
	AltSenderID     *uint32
	Cod             uint64
	StationeryID    int32
	SentMoney       uint64
	Flags           int32
	DaysLeft        float32
	MailTemplateID  int32
	Subject         string
	Body            string
	Attachments     []MailAttachedItem
}

func (m *MailListEntry) write(w *packet.Writer) {
	w.WriteUInt64(m.MailID)
	w.WriteUInt8(m.SenderType)
	w.WriteUInt64(m.Cod)
	w.WriteInt32(m.StationeryID)
	w.WriteUInt64(m.SentMoney)
	w.WriteInt32(m.Flags)
	w.WriteFloat(m.DaysLeft)
	w.WriteInt32(m.MailTemplateID)
	w.WriteUInt32(uint32(len(m.Attachments)))

	w.WriteBit(m.SenderCharacter != nil)
	w.WriteBit(m.AltSenderID != nil)
	w.WriteLen("MailListEntry.Subject", len(m.Subject), 8)
	w.WriteLen("MailListEntry.Body", len(m.Body), 13)
	w.FlushBits()

	for i := range m.Attachments {
		m.Attachments[i].write(w)
	}
	if m.SenderCharacter != nil {
		w.WritePackedGuid(*m.SenderCharacter)
	}
	if m.AltSenderID != nil {
		w.WriteUInt32(*m.AltSenderID)
	}
	w.WriteString(m.Subject)
	w.WriteString(m.Body)
}

// MailListResult answers MailGetList. TotalNumRecords may exceed len(Mails)
// when the mailbox holds more than one page.
type MailListResult struct {
	TotalNumRecords int32
	Mails           []MailListEntry
}

// Write serializes the packet.
func (p *MailListResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGMailListResult, 8+len(p.Mails)*128)
	w.WriteUInt32(uint32(len(p.Mails)))
	w.WriteInt32(p.TotalNumRecords)
	for i := range p.Mails {
		p.Mails[i].write(w)
	}
	return w.Result()
}

// Mail commands echoed in MailCommandResult.
const (
	MailCommandSend             uint32 = 0
	MailCommandMoneyTaken       uint32 = 1
	MailCommandItemTaken        uint32 = 2
	MailCommandReturnedToSender uint32 = 3
	MailCommandDeleted          uint32 = 4
	MailCommandMadePermanent    uint32 = 5
)

// MailCommandResult reports the outcome of a mail command.
type MailCommandResult struct {
	MailID         uint64
	Command        uint32
	ErrorCode      uint32
	BagResult      uint32
	AttachID       uint64
	QtyInInventory uint32
}

// Write serializes the packet.
func (p *MailCommandResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGMailCommandResult, 32)
	w.WriteUInt64(p.MailID)
	w.WriteUInt32(p.Command)
	w.WriteUInt32(p.ErrorCode)
	w.WriteUInt32(p.BagResult)
	w.WriteUInt64(p.AttachID)
	w.WriteUInt32(p.QtyInInventory)
	return w.Result()
}

// MailNextTimeEntry is one pending mail sender in MailQueryNextTimeResult.
type MailNextTimeEntry struct {
	SenderGuid    model.ObjectGuid
	TimeLeft      float32
	AltSenderID   int32
	AltSenderType int8
	StationeryID  int32
}

// MailQueryNextTimeResult lists unread mail for the mailbox icon.
type MailQueryNextTimeResult struct {
	NextMailTime float32 // -1 when no unread mail is pending
	Next         []MailNextTimeEntry
}

// Write serializes the packet.
func (p *MailQueryNextTimeResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGMailQueryNextTimeResult, 8+len(p.Next)*32)
	w.WriteFloat(p.NextMailTime)
	w.WriteUInt32(uint32(len(p.Next)))
	for _, e := range p.Next {
		w.WritePackedGuid(e.SenderGuid)
		w.WriteFloat(e.TimeLeft)
		w.WriteInt32(e.AltSenderID)
		w.WriteInt8(e.AltSenderType)
		w.WriteInt32(e.StationeryID)
	}
	return w.Result()
}

// NotifyReceivedMail announces new mail.
type NotifyReceivedMail struct {
	Delay float32
}

// Write serializes the packet.
func (p *NotifyReceivedMail) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGNotifyReceivedMail, 4)
	w.WriteFloat(p.Delay)
	return w.Result()
}
