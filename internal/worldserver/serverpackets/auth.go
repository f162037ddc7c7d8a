package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// AuthChallenge is the first packet on a new world connection.
type AuthChallenge struct {
	DosChallenge [8]uint32
	Challenge    [16]byte
	DosZeroBits  uint8
}

// Write serializes the packet.
func (p *AuthChallenge) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGAuthChallenge, 49)
	for _, v := range p.DosChallenge {
		w.WriteUInt32(v)
	}
	w.WriteBytes(p.Challenge[:])
	w.WriteUInt8(p.DosZeroBits)
	return w.Result()
}

// Auth response codes.
const (
	AuthResultOk        uint32 = 0
	AuthResultFailed    uint32 = 1
	AuthResultWaitQueue uint32 = 27
	AuthResultBanned    uint32 = 28
)

// ClassAvailability is one class and its required expansions.
type ClassAvailability struct {
	ClassID               uint8
	ActiveExpansionLevel  uint8
	AccountExpansionLevel uint8
}

// RaceClassAvailability lists the classes a race can play.
type RaceClassAvailability struct {
	RaceID  uint8
	Classes []ClassAvailability
}

// AuthSuccessInfo is the payload of a successful AuthResponse.
type AuthSuccessInfo struct {
	VirtualRealmAddress    uint32
	TimeRested             uint32
	ActiveExpansionLevel   uint8
	AccountExpansionLevel  uint8
	TimeSecondsUntilPCKick uint32
	AvailableClasses       []RaceClassAvailability
	CurrencyID             uint32
	Time                   int64
	NumPlayersHorde        *uint16
	NumPlayersAlliance     *uint16
	IsExpansionTrial       bool
}

func (s *AuthSuccessInfo) write(w *packet.Writer) {
	w.WriteUInt32(s.VirtualRealmAddress)
	w.WriteUInt32(s.TimeRested)
	w.WriteUInt8(s.ActiveExpansionLevel)
	w.WriteUInt8(s.AccountExpansionLevel)
	w.WriteUInt32(s.TimeSecondsUntilPCKick)
	w.WriteUInt32(uint32(len(s.AvailableClasses)))
	w.WriteUInt32(s.CurrencyID)
	w.WriteInt64(s.Time)
	for _, rc := range s.AvailableClasses {
		w.WriteUInt8(rc.RaceID)
		w.WriteUInt32(uint32(len(rc.Classes)))
		for _, c := range rc.Classes {
			w.WriteUInt8(c.ClassID)
			w.WriteUInt8(c.ActiveExpansionLevel)
			w.WriteUInt8(c.AccountExpansionLevel)
		}
	}
	w.WriteBit(s.IsExpansionTrial)
	w.WriteBit(s.NumPlayersHorde != nil)
	w.WriteBit(s.NumPlayersAlliance != nil)
	w.FlushBits()
	if s.NumPlayersHorde != nil {
		w.WriteUInt16(*s.NumPlayersHorde)
	}
	if s.NumPlayersAlliance != nil {
		w.WriteUInt16(*s.NumPlayersAlliance)
	}
}

// AuthWaitInfo is the login queue position sent with AuthResponse.
type AuthWaitInfo struct {
	WaitCount uint32 // position in queue
	WaitTime  uint32
	HasFCM    bool
}

// AuthResponse ends the auth handshake. SuccessInfo is set on success,
// WaitInfo when the realm is full and the session was queued.
type AuthResponse struct {
	Result      uint32
	SuccessInfo *AuthSuccessInfo
	WaitInfo    *AuthWaitInfo
}

// Write serializes the packet.
func (p *AuthResponse) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGAuthResponse, 64)
	w.WriteUInt32(p.Result)
	w.WriteBit(p.SuccessInfo != nil)
	w.WriteBit(p.WaitInfo != nil)
	w.FlushBits()
	if p.SuccessInfo != nil {
		p.SuccessInfo.write(w)
	}
	if p.WaitInfo != nil {
		w.WriteUInt32(p.WaitInfo.WaitCount)
		w.WriteUInt32(p.WaitInfo.WaitTime)
		w.WriteBit(p.WaitInfo.HasFCM)
		w.FlushBits()
	}
	return w.Result()
}

// Pong answers Ping with the same serial.
type Pong struct {
	Serial uint32
}

// Write serializes the packet.
func (p *Pong) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGPong, 4)
	w.WriteUInt32(p.Serial)
	return w.Result()
}
