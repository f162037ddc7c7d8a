package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// ChatMessage is shared by the say, yell, party and guild opcodes; the
// channel is implied by the opcode.
type ChatMessage struct {
	Language int32
	Text     string
}

// ParseChatMessage parses ChatMessage packet.
func ParseChatMessage(data []byte) (*ChatMessage, error) {
	r := packet.NewReader(data)
	p := &ChatMessage{}
	var err error
	if p.Language, err = r.ReadInt32(); err != nil {
		return nil, fmt.Errorf("reading Language: %w", err)
	}
	n, err := r.ReadBits(12)
	if err != nil {
		return nil, fmt.Errorf("reading Text length: %w", err)
	}
	if p.Text, err = r.ReadString(int(n)); err != nil {
		return nil, fmt.Errorf("reading Text: %w", err)
	}
	return p, nil
}

// ChatMessageWhisper sends Text to the character named Target.
type ChatMessageWhisper struct {
	Language int32
	Target   string
	Text     string
}

// ParseChatMessageWhisper parses ChatMessageWhisper packet.
func ParseChatMessageWhisper(data []byte) (*ChatMessageWhisper, error) {
	r := packet.NewReader(data)
	p := &ChatMessageWhisper{}
	var err error
	if p.Language, err = r.ReadInt32(); err != nil {
		return nil, fmt.Errorf("reading Language: %w", err)
	}
	targetLen, err := r.ReadBits(9)
	if err != nil {
		return nil, fmt.Errorf("reading Target length: %w", err)
	}
	textLen, err := r.ReadBits(12)
	if err != nil {
		return nil, fmt.Errorf("reading Text length: %w", err)
	}
	if p.Target, err = r.ReadString(int(targetLen)); err != nil {
		return nil, fmt.Errorf("reading Target: %w", err)
	}
	if p.Text, err = r.ReadString(int(textLen)); err != nil {
		return nil, fmt.Errorf("reading Text: %w", err)
	}
	return p, nil
}

// ChatMessageChannel addresses a channel by name; ChannelGUID is set for
// built-in zone channels.
type ChatMessageChannel struct {
	Language    int32
	ChannelGUID model.ObjectGuid
	Target      string
	Text        string
}

// ParseChatMessageChannel parses ChatMessageChannel packet.
func ParseChatMessageChannel(data []byte) (*ChatMessageChannel, error) {
	r := packet.NewReader(data)
	p := &ChatMessageChannel{}
	var err error
	if p.Language, err = r.ReadInt32(); err != nil {
		return nil, fmt.Errorf("reading Language: %w", err)
	}
	if p.ChannelGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading ChannelGUID: %w", err)
	}
	targetLen, err := r.ReadBits(9)
	if err != nil {
		return nil, fmt.Errorf("reading Target length: %w", err)
	}
	textLen, err := r.ReadBits(12)
	if err != nil {
		return nil, fmt.Errorf("reading Text length: %w", err)
	}
	if p.Target, err = r.ReadString(int(targetLen)); err != nil {
		return nil, fmt.Errorf("reading Target: %w", err)
	}
	if p.Text, err = r.ReadString(int(textLen)); err != nil {
		return nil, fmt.Errorf("reading Text: %w", err)
	}
	return p, nil
}

// ChatAddonMessage carries addon traffic. Prefix identifies the addon.
type ChatAddonMessage struct {
	Prefix   string
	Text     string
	IsLogged bool
	Type     int32
}

// ParseChatAddonMessage parses ChatAddonMessage packet.
func ParseChatAddonMessage(data []byte) (*ChatAddonMessage, error) {
	r := packet.NewReader(data)
	p := &ChatAddonMessage{}
	prefixLen, err := r.ReadBits(5)
	if err != nil {
		return nil, fmt.Errorf("reading Prefix length: %w", err)
	}
	textLen, err := r.ReadBits(8)
	if err != nil {
		return nil, fmt.Errorf("reading Text length: %w", err)
	}
	if p.IsLogged, err = r.ReadBit(); err != nil {
		return nil, fmt.Errorf("reading IsLogged: %w", err)
	}
	if p.Type, err = r.ReadInt32(); err != nil {
		return nil, fmt.Errorf("reading Type: %w", err)
	}
	if p.Prefix, err = r.ReadString(int(prefixLen)); err != nil {
		return nil, fmt.Errorf("reading Prefix: %w", err)
	}
	if p.Text, err = r.ReadString(int(textLen)); err != nil {
		return nil, fmt.Errorf("reading Text: %w", err)
	}
	return p, nil
}

// SendTextEmote performs an emote, optionally at Target.
type SendTextEmote struct {
	Target            model.ObjectGuid
	EmoteID           uint32
	SoundIndex        int32
	SpellVisualKitIDs []int32
}

// ParseSendTextEmote parses SendTextEmote packet.
func ParseSendTextEmote(data []byte) (*SendTextEmote, error) {
	r := packet.NewReader(data)
	p := &SendTextEmote{}
	var err error
	if p.Target, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading Target: %w", err)
	}
	if p.EmoteID, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading EmoteID: %w", err)
	}
	if p.SoundIndex, err = r.ReadInt32(); err != nil {
		return nil, fmt.Errorf("reading SoundIndex: %w", err)
	}
	n, err := r.ReadArraySize(4)
	if err != nil {
		return nil, fmt.Errorf("reading SpellVisualKitIDs count: %w", err)
	}
	p.SpellVisualKitIDs = make([]int32, n)
	for i := range p.SpellVisualKitIDs {
		if p.SpellVisualKitIDs[i], err = r.ReadInt32(); err != nil {
			return nil, fmt.Errorf("reading SpellVisualKitIDs[%d]: %w", i, err)
		}
	}
	return p, nil
}
