package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// MaxMailAttachments is the number of items a single mail can carry.
const MaxMailAttachments = 12

// MailGetList opens Mailbox and asks for the mail list.
type MailGetList struct {
	Mailbox model.ObjectGuid
}

// ParseMailGetList parses MailGetList packet.
func ParseMailGetList(data []byte) (*MailGetList, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading Mailbox: %w", err)
	}
	return &MailGetList{Mailbox: g}, nil
}

// MailCreateTextItem copies a mail body into a readable letter item.
type MailCreateTextItem struct {
	Mailbox model.ObjectGuid
	MailID  uint64
}

// ParseMailCreateTextItem parses MailCreateTextItem packet.
func ParseMailCreateTextItem(data []byte) (*MailCreateTextItem, error) {
	r := packet.NewReader(data)
	p := &MailCreateTextItem{}
	var err error
	if p.Mailbox, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading Mailbox: %w", err)
	}
	if p.MailID, err = r.ReadUInt64(); err != nil {
		return nil, fmt.Errorf("reading MailID: %w", err)
	}
	return p, nil
}

// MailAttachment is one item attached to SendMail.
type MailAttachment struct {
	AttachPosition uint8
	ItemGUID       model.ObjectGuid
}

// SendMail posts a mail. Target is the recipient character name, optionally
// suffixed with "-Realm".
type SendMail struct {
	Mailbox      model.ObjectGuid
	StationeryID int32
	SendMoney    int64
	Cod          int64
	Target       string
	Subject      string
	Body         string
	Attachments  []MailAttachment
}

// ParseSendMail parses SendMail packet.
func ParseSendMail(data []byte) (*SendMail, error) {
	r := packet.NewReader(data)
	p := &SendMail{}
	var err error

	if p.Mailbox, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading Mailbox: %w", err)
	}
	if p.StationeryID, err = r.ReadInt32(); err != nil {
		return nil, fmt.Errorf("reading StationeryID: %w", err)
	}
	if p.SendMoney, err = r.ReadInt64(); err != nil {
		return nil, fmt.Errorf("reading SendMoney: %w", err)
	}
	if p.Cod, err = r.ReadInt64(); err != nil {
		return nil, fmt.Errorf("reading Cod: %w", err)
	}

	targetLen, err := r.ReadBits(9)
	if err != nil {
		return nil, fmt.Errorf("reading Target length: %w", err)
	}
	subjectLen, err := r.ReadBits(9)
	if err != nil {
		return nil, fmt.Errorf("reading Subject length: %w", err)
	}
	bodyLen, err := r.ReadBits(11)
	if err != nil {
		return nil, fmt.Errorf("reading Body length: %w", err)
	}
	attachCount, err := r.ReadBits(5)
	if err != nil {
		return nil, fmt.Errorf("reading Attachments count: %w", err)
	}
	if attachCount > MaxMailAttachments {
		return nil, fmt.Errorf("reading Attachments count: %d exceeds %d", attachCount, MaxMailAttachments)
	}

	if p.Target, err = r.ReadString(int(targetLen)); err != nil {
		return nil, fmt.Errorf("reading Target: %w", err)
	}
	if p.Subject, err = r.ReadString(int(subjectLen)); err != nil {
		return nil, fmt.Errorf("reading Subject: %w", err)
	}
	if p.Body, err = r.ReadString(int(bodyLen)); err != nil {
		return nil, fmt.Errorf("reading Body: %w", err)
	}

	p.Attachments = make([]MailAttachment, attachCount)
	for i := range p.Attachments {
		if p.Attachments[i].AttachPosition, err = r.ReadUInt8(); err != nil {
			return nil, fmt.Errorf("reading Attachments[%d].AttachPosition: %w", i, err)
		}
		if p.Attachments[i].ItemGUID, err = r.ReadPackedGuid(); err != nil {
			return nil, fmt.Errorf("reading Attachments[%d].ItemGUID: %w", i, err)
		}
	}
	return p, nil
}

// MailMarkAsRead flags a mail as read.
type MailMarkAsRead struct {
	Mailbox model.ObjectGuid
	MailID  uint64
}

// ParseMailMarkAsRead parses MailMarkAsRead packet.
func ParseMailMarkAsRead(data []byte) (*MailMarkAsRead, error) {
	r := packet.NewReader(data)
	p := &MailMarkAsRead{}
	var err error
	if p.Mailbox, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading Mailbox: %w", err)
	}
	if p.MailID, err = r.ReadUInt64(); err != nil {
		return nil, fmt.Errorf("reading MailID: %w", err)
	}
	return p, nil
}

// MailDelete deletes a mail from the mailbox.
type MailDelete struct {
	MailID       uint64
	DeleteReason int32
}

// ParseMailDelete parses MailDelete packet.
func ParseMailDelete(data []byte) (*MailDelete, error) {
	r := packet.NewReader(data)
	p := &MailDelete{}
	var err error
	if p.MailID, err = r.ReadUInt64(); err != nil {
		return nil, fmt.Errorf("reading MailID: %w", err)
	}
	if p.DeleteReason, err = r.ReadInt32(); err != nil {
		return nil, fmt.Errorf("reading DeleteReason: %w", err)
	}
	return p, nil
}

// MailReturnToSender bounces a mail back to SenderGUID.
type MailReturnToSender struct {
	MailID     uint64
	SenderGUID model.ObjectGuid
}

// ParseMailReturnToSender parses MailReturnToSender packet.
func ParseMailReturnToSender(data []byte) (*MailReturnToSender, error) {
	r := packet.NewReader(data)
	p := &MailReturnToSender{}
	var err error
	if p.MailID, err = r.ReadUInt64(); err != nil {
		return nil, fmt.Errorf("reading MailID: %w", err)
	}
	if p.SenderGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading SenderGUID: %w", err)
	}
	return p, nil
}

// MailTakeItem moves one attachment into the player's bags.
type MailTakeItem struct {
	Mailbox  model.ObjectGuid
	MailID   uint64
	AttachID uint64
}

// ParseMailTakeItem parses MailTakeItem packet.
func ParseMailTakeItem(data []byte) (*MailTakeItem, error) {
	r := packet.NewReader(data)
	p := &MailTakeItem{}
	var err error
	if p.Mailbox, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading Mailbox: %w", err)
	}
	if p.MailID, err = r.ReadUInt64(); err != nil {
		return nil, fmt.Errorf("reading MailID: %w", err)
	}
	if p.AttachID, err = r.ReadUInt64(); err != nil {
		return nil, fmt.Errorf("reading AttachID: %w", err)
	}
	return p, nil
}

// MailTakeMoney takes the money attached to a mail.
type MailTakeMoney struct {
	Mailbox model.ObjectGuid
	MailID  uint64
	Money   int64
}

// ParseMailTakeMoney parses MailTakeMoney packet.
func ParseMailTakeMoney(data []byte) (*MailTakeMoney, error) {
	r := packet.NewReader(data)
	p := &MailTakeMoney{}
	var err error
	if p.Mailbox, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading Mailbox: %w", err)
	}
	if p.MailID, err = r.ReadUInt64(); err != nil {
		return nil, fmt.Errorf("reading MailID: %w", err)
	}
	if p.Money, err = r.ReadInt64(); err != nil {
		return nil, fmt.Errorf("reading Money: %w", err)
	}
	return p, nil
}

// MailQueryNextMailTime has no body fields.
type MailQueryNextMailTime struct{}

// ParseMailQueryNextMailTime parses MailQueryNextMailTime packet.
func ParseMailQueryNextMailTime(_ []byte) (*MailQueryNextMailTime, error) {
	return &MailQueryNextMailTime{}, nil
}
