package clientpackets

import (
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// TimeSyncResponse echoes a TimeSyncRequest sequence with the client clock (ms).
type TimeSyncResponse struct {
	SequenceIndex uint32
	ClientTime    uint32
}

// ParseTimeSyncResponse parses TimeSyncResponse packet.
func ParseTimeSyncResponse(data []byte) (*TimeSyncResponse, error) {
	r := packet.NewReader(data)
	p := &TimeSyncResponse{}
	var err error
	if p.SequenceIndex, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading SequenceIndex: %w", err)
	}
	if p.ClientTime, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading ClientTime: %w", err)
	}
	return p, nil
}

// RandomRoll rolls a number between Min and Max.
type RandomRoll struct {
	Min        int32
	Max        int32
	PartyIndex uint8
}

// ParseRandomRoll parses RandomRoll packet.
func ParseRandomRoll(data []byte) (*RandomRoll, error) {
	r := packet.NewReader(data)
	p := &RandomRoll{}
	var err error
	if p.Min, err = r.ReadInt32(); err != nil {
		return nil, fmt.Errorf("reading Min: %w", err)
	}
	if p.Max, err = r.ReadInt32(); err != nil {
		return nil, fmt.Errorf("reading Max: %w", err)
	}
	if p.PartyIndex, err = r.ReadUInt8(); err != nil {
		return nil, fmt.Errorf("reading PartyIndex: %w", err)
	}
	return p, nil
}

// StandStateChange sits, stands or kneels.
type StandStateChange struct {
	StandState uint32
}

// ParseStandStateChange parses StandStateChange packet.
func ParseStandStateChange(data []byte) (*StandStateChange, error) {
	v, err := packet.NewReader(data).ReadUInt32()
	if err != nil {
		return nil, fmt.Errorf("reading StandState: %w", err)
	}
	return &StandStateChange{StandState: v}, nil
}

// SetSelection changes the player's target.
type SetSelection struct {
	Selection model.ObjectGuid
}

// ParseSetSelection parses SetSelection packet.
func ParseSetSelection(data []byte) (*SetSelection, error) {
	g, err := packet.NewReader(data).ReadPackedGuid()
	if err != nil {
		return nil, fmt.Errorf("reading Selection: %w", err)
	}
	return &SetSelection{Selection: g}, nil
}

// QueryTime has no body fields.
type QueryTime struct{}

// ParseQueryTime parses QueryTime packet.
func ParseQueryTime(_ []byte) (*QueryTime, error) {
	return &QueryTime{}, nil
}

// MoveTimeSkipped reports time the client skipped while moving.
type MoveTimeSkipped struct {
	MoverGUID   model.ObjectGuid
	TimeSkipped uint32
}

// ParseMoveTimeSkipped parses MoveTimeSkipped packet.
func ParseMoveTimeSkipped(data []byte) (*MoveTimeSkipped, error) {
	r := packet.NewReader(data)
	p := &MoveTimeSkipped{}
	var err error
	if p.MoverGUID, err = r.ReadPackedGuid(); err != nil {
		return nil, fmt.Errorf("reading MoverGUID: %w", err)
	}
	if p.TimeSkipped, err = r.ReadUInt32(); err != nil {
		return nil, fmt.Errorf("reading TimeSkipped: %w", err)
	}
	return p, nil
}

// WorldPortResponse tells the server the loading screen after NewWorld is done.
type WorldPortResponse struct{}

// ParseWorldPortResponse parses WorldPortResponse packet.
func ParseWorldPortResponse(_ []byte) (*WorldPortResponse, error) {
	return &WorldPortResponse{}, nil
}
