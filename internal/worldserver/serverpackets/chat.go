package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// ChatMsg is the chat message type (say, yell, whisper, ...).
type ChatMsg uint8

const (
	ChatMsgSystem        ChatMsg = 0x00
	ChatMsgSay           ChatMsg = 0x01
	ChatMsgParty         ChatMsg = 0x02
	ChatMsgRaid          ChatMsg = 0x03
	ChatMsgGuild         ChatMsg = 0x04
	ChatMsgOfficer       ChatMsg = 0x05
	ChatMsgYell          ChatMsg = 0x06
	ChatMsgWhisper       ChatMsg = 0x07
	ChatMsgWhisperInform ChatMsg = 0x09
	ChatMsgEmote         ChatMsg = 0x0A
	ChatMsgTextEmote     ChatMsg = 0x0B
	ChatMsgMonsterSay    ChatMsg = 0x0C
	ChatMsgChannel       ChatMsg = 0x11
)

// Chat carries every kind of chat line. Empty strings are sent as zero
// lengths; the client fills in defaults.
type Chat struct {
	SlashCmd             ChatMsg
	Language             uint32
	SenderGUID           model.ObjectGuid
	SenderGuildGUID      model.ObjectGuid
	SenderAccountGUID    model.ObjectGuid
	TargetGUID           model.ObjectGuid
	TargetVirtualAddress uint32
	SenderVirtualAddress uint32
	PartyGUID            model.ObjectGuid
	AchievementID        int32
	DisplayTime          float32
	SenderName           string
	TargetName           string
	Prefix               string
	Channel              string
	ChatText             string
	ChatFlags            uint16 // 11 bits
	HideChatLog          bool
	FakeSenderName       bool
}

// Write serializes the packet.
func (p *Chat) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGChat, 96+len(p.SenderName)+len(p.TargetName)+len(p.Prefix)+len(p.Channel)+len(p.ChatText))
	w.WriteUInt8(uint8(p.SlashCmd))
	w.WriteUInt32(p.Language)
	w.WritePackedGuid(p.SenderGUID)
	w.WritePackedGuid(p.SenderGuildGUID)
	w.WritePackedGuid(p.SenderAccountGUID)
	w.WritePackedGuid(p.TargetGUID)
	w.WriteUInt32(p.TargetVirtualAddress)
	w.WriteUInt32(p.SenderVirtualAddress)
	w.WritePackedGuid(p.PartyGUID)
	w.WriteInt32(p.AchievementID)
	w.WriteFloat(p.DisplayTime)
	w.WriteLen("Chat.SenderName", len(p.SenderName), 11)
	w.WriteLen("Chat.TargetName", len(p.TargetName), 11)
	w.WriteLen("Chat.Prefix", len(p.Prefix), 5)
	w.WriteLen("Chat.Channel", len(p.Channel), 7)
	w.WriteLen("Chat.ChatText", len(p.ChatText), 12)
	w.WriteEnum("Chat.ChatFlags", uint32(p.ChatFlags), 11)
	w.WriteBit(p.HideChatLog)
	w.WriteBit(p.FakeSenderName)
	w.FlushBits()
	w.WriteString(p.SenderName)
	w.WriteString(p.TargetName)
	w.WriteString(p.Prefix)
	w.WriteString(p.Channel)
	w.WriteString(p.ChatText)
	return w.Result()
}

// ChatPlayerNotfound rejects a whisper to an unknown character.
type ChatPlayerNotfound struct {
	Name string
}

// Write serializes the packet.
func (p *ChatPlayerNotfound) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGChatPlayerNotfound, 2+len(p.Name))
	w.WriteLen("ChatPlayerNotfound.Name", len(p.Name), 9)
	w.WriteString(p.Name)
	return w.Result()
}

// Emote plays an animation on Guid.
type Emote struct {
	Guid              model.ObjectGuid
	EmoteID           uint32
	SpellVisualKitIDs []int32
}

// Write serializes the packet.
func (p *Emote) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGEmote, 26+len(p.SpellVisualKitIDs)*4)
	w.WritePackedGuid(p.Guid)
	w.WriteUInt32(p.EmoteID)
	w.WriteUInt32(uint32(len(p.SpellVisualKitIDs)))
	for _, id := range p.SpellVisualKitIDs {
		w.WriteInt32(id)
	}
	return w.Result()
}
