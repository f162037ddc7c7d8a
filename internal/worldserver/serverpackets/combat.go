package serverpackets

import (
	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// AttackStart starts the attack animation between two units.
type AttackStart struct {
	Attacker model.ObjectGuid
	Victim   model.ObjectGuid
}

// Write serializes the packet.
func (p *AttackStart) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGAttackStart, 36)
	w.WritePackedGuid(p.Attacker)
	w.WritePackedGuid(p.Victim)
	return w.Result()
}

// AttackStop ends auto attack. NowDead is set when the victim died.
type AttackStop struct {
	Attacker model.ObjectGuid
	Victim   model.ObjectGuid
	NowDead  bool
}

// Write serializes the packet.
func (p *AttackStop) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGAttackStop, 37)
	w.WritePackedGuid(p.Attacker)
	w.WritePackedGuid(p.Victim)
	w.WriteBit(p.NowDead)
	w.FlushBits()
	return w.Result()
}

// Attack swing errors, sent in 3 bits.
const (
	AttackSwingErrCantAttack uint8 = 0
	AttackSwingErrNotInRange uint8 = 1
	AttackSwingErrBadFacing  uint8 = 2
	AttackSwingErrDeadTarget uint8 = 3
)

// AttackSwingError explains why an auto attack swing failed.
type AttackSwingError struct {
	Reason uint8
}

// Write serializes the packet.
func (p *AttackSwingError) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGAttackSwingError, 1)
	w.WriteEnum("AttackSwingError.Reason", uint32(p.Reason), 3)
	w.FlushBits()
	return w.Result()
}
