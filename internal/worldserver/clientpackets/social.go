package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/wiretypes"
)

// AddFriend adds a character to the friend list by name.
type AddFriend struct {
	Name  string
	Notes string
}

// ParseAddFriend parses AddFriend packet.
func ParseAddFriend(data []byte) (*AddFriend, error) {
	r := packet.NewReader(data)
	nameLen, err := r.ReadBits(9)
	if err != nil {
		return nil, fmt.Errorf("reading Name length: %w", err)
	}
	notesLen, err := r.ReadBits(10)
	if err != nil {
		return nil, fmt.Errorf("reading Notes length: %w", err)
	}
	p := &AddFriend{}
	if p.Name, err = r.ReadString(int(nameLen)); err != nil {
		return nil, fmt.Errorf("reading Name: %w", err)
	}
	if p.Notes, err = r.ReadString(int(notesLen)); err != nil {
		return nil, fmt.Errorf("reading Notes: %w", err)
	}
	return p, nil
}

// DelFriend removes Player from the friend list.
type DelFriend struct {
	Player wiretypes.QualifiedGUID
}

// ParseDelFriend parses DelFriend packet.
func ParseDelFriend(data []byte) (*DelFriend, error) {
	p := &DelFriend{}
	if err := p.Player.Read(packet.NewReader(data)); err != nil {
		return nil, fmt.Errorf("reading Player: %w", err)
	}
	return p, nil
}

// SetContactNotes updates the note shown for a friend.
type SetContactNotes struct {
	Player wiretypes.QualifiedGUID
	Notes  string
}

// ParseSetContactNotes parses SetContactNotes packet.
func ParseSetContactNotes(data []byte) (*SetContactNotes, error) {
	r := packet.NewReader(data)
	p := &SetContactNotes{}
	if err := p.Player.Read(r); err != nil {
		return nil, fmt.Errorf("reading Player: %w", err)
	}
	n, err := r.ReadBits(10)
	if err != nil {
		return nil, fmt.Errorf("reading Notes length: %w", err)
	}
	if p.Notes, err = r.ReadString(int(n)); err != nil {
		return nil, fmt.Errorf("reading Notes: %w", err)
	}
	return p, nil
}
