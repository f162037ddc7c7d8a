package serverpackets

import "github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"

// InstanceLock is one saved instance of InstanceInfo.
type InstanceLock struct {
	MapID         uint32
	DifficultyID  uint32
	InstanceID    uint64
	TimeRemaining uint32 // seconds until reset
	CompletedMask uint32
	Locked        bool
	Extended      bool
}

// InstanceInfo lists the player's saved instances.
type InstanceInfo struct {
	LockList []InstanceLock
}

// Write serializes the packet.
func (p *InstanceInfo) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGInstanceInfo, 4+len(p.LockList)*25)
	w.WriteUInt32(uint32(len(p.LockList)))
	for _, l := range p.LockList {
		w.WriteUInt32(l.MapID)
		w.WriteUInt32(l.DifficultyID)
		w.WriteUInt64(l.InstanceID)
		w.WriteUInt32(l.TimeRemaining)
		w.WriteUInt32(l.CompletedMask)
		w.WriteBit(l.Locked)
		w.WriteBit(l.Extended)
		w.FlushBits()
	}
	return w.Result()
}

// InstanceReset reports a reset instance map.
type InstanceReset struct {
	MapID uint32
}

// Write serializes the packet.
func (p *InstanceReset) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGInstanceReset, 4)
	w.WriteUInt32(p.MapID)
	return w.Result()
}

// Instance reset failure reasons, 2 bits.
const (
	InstanceResetFailedGeneral  uint8 = 0
	InstanceResetFailedOffline  uint8 = 1
	InstanceResetFailedZoning   uint8 = 2
	InstanceResetFailedSilently uint8 = 3
)

// InstanceResetFailed explains why an instance could not be reset.
type InstanceResetFailed struct {
	MapID             uint32
	ResetFailedReason uint8
}

// Write serializes the packet.
func (p *InstanceResetFailed) Write() ([]byte, error) {
	w := newWriter(opcodes.SMSGInstanceResetFailed, 5)
	w.WriteUInt32(p.MapID)
	w.WriteEnum("InstanceResetFailed.ResetFailedReason", uint32(p.ResetFailedReason), 2)
	w.FlushBits()
	return w.Result()
}
