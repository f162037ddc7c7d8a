package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// CanDuelResult answers CanDuel.
type CanDuelResult struct {
	TargetGUID model.ObjectGuid
	Result     bool
}

// Write serializes the packet.
func (p *CanDuelResult) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGCanDuelResult, 19)
	w.WritePackedGuid(p.TargetGUID)
	w.WriteBit(p.Result)
	w.FlushBits()
	return w.Result()
}

// DuelRequested asks the target to accept a duel.
type DuelRequested struct {
	ArbiterGUID           model.ObjectGuid
	RequestedByGUID       model.ObjectGuid
	RequestedByWowAccount model.ObjectGuid
}

// Write serializes the packet.
func (p *DuelRequested) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGDuelRequested, 54)
	w.WritePackedGuid(p.ArbiterGUID)
	w.WritePackedGuid(p.RequestedByGUID)
	w.WritePackedGuid(p.RequestedByWowAccount)
	return w.Result()
}

// DuelComplete closes the duel UI.
type DuelComplete struct {
	Started bool
}

// Write serializes the packet.
func (p *DuelComplete) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGDuelComplete, 1)
	w.WriteBit(p.Started)
	w.FlushBits()
	return w.Result()
}

// DuelCountdown starts the duel countdown in milliseconds.
type DuelCountdown struct {
	Countdown uint32 // milliseconds
}

// Write serializes the packet.
func (p *DuelCountdown) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGDuelCountdown, 4)
	w.WriteUInt32(p.Countdown)
	return w.Result()
}

// DuelWinner announces the winner of a duel.
type DuelWinner struct {
	BeatenName                string
	WinnerName                string
	BeatenVirtualRealmAddress uint32
	WinnerVirtualRealmAddress uint32
	Fled                      bool
}

// Write serializes the packet.
func (p *DuelWinner) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGDuelWinner, 10+len(p.BeatenName)+len(p.WinnerName))
	w.WriteLen("DuelWinner.BeatenName", len(p.BeatenName), 6)
	w.WriteLen("DuelWinner.WinnerName", len(p.WinnerName), 6)
	w.WriteBit(p.Fled)
	w.WriteUInt32(p.BeatenVirtualRealmAddress)
	w.WriteUInt32(p.WinnerVirtualRealmAddress)
	w.WriteString(p.BeatenName)
	w.WriteString(p.WinnerName)
	return w.Result()
}

// DuelInBounds has no body fields.
type DuelInBounds struct{}

// Write serializes the packet.
func (p *DuelInBounds) Write() ([]byte, error) {
	return newWriter(opcodes.SMSGDuelInBounds, 0).Result()
}

// DuelOutOfBounds has no body fields.
type DuelOutOfBounds struct{}

// Write serializes the packet.
func (p *DuelOutOfBounds) Write() ([]byte, error) {
	return newWriter(opcodes.SMSGDuelOutOfBounds, 0).Result()
}
