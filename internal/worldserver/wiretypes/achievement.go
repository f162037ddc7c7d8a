package wiretypes

import (
	"fmt"
	"time"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// EarnedAchievement is a completed achievement record.
type EarnedAchievement struct {
	ID                  uint32
	Date                time.Time
	Owner               model.ObjectGuid
	VirtualRealmAddress uint32
	NativeRealmAddress  uint32
}

func (e *EarnedAchievement) Write(w *packet.Writer) {
	w.WriteUInt32(e.ID)
	w.WritePackedTime(e.Date)
	w.WritePackedGuid(e.Owner)
	w.WriteUInt32(e.VirtualRealmAddress)
	w.WriteUInt32(e.NativeRealmAddress)
}

func (e *EarnedAchievement) Read(r *packet.Reader) error {
	var err error
	if e.ID, err = r.ReadUInt32(); err != nil {
		return fmt.Errorf("reading achievement ID: %w", err)
	}
	if e.Date, err = r.ReadPackedTime(time.UTC); err != nil {
		return fmt.Errorf("reading achievement Date: %w", err)
	}
	if e.Owner, err = r.ReadPackedGuid(); err != nil {
		return fmt.Errorf("reading achievement Owner: %w", err)
	}
	if e.VirtualRealmAddress, err = r.ReadUInt32(); err != nil {
		return fmt.Errorf("reading VirtualRealmAddress: %w", err)
	}
	if e.NativeRealmAddress, err = r.ReadUInt32(); err != nil {
		return fmt.Errorf("reading NativeRealmAddress: %w", err)
	}
	return nil
}

// CriteriaProgress is the progress of one achievement criteria.
// Flags is a 4-bit field.
type CriteriaProgress struct {
	ID             uint32
	Quantity       uint64
	Player         model.ObjectGuid
	Date           time.Time
	TimeFromStart  uint32
	TimeFromCreate uint32
	Flags          uint8
}

func (c *CriteriaProgress) Write(w *packet.Writer) {
	w.WriteUInt32(c.ID)
	w.WriteUInt64(c.Quantity)
	w.WritePackedGuid(c.Player)
	w.WritePackedTime(c.Date)
	w.WriteUInt32(c.TimeFromStart)
	w.WriteUInt32(c.TimeFromCreate)
	w.WriteEnum("CriteriaProgress.Flags", uint32(c.Flags), 4)
	w.FlushBits()
}

func (c *CriteriaProgress) Read(r *packet.Reader) error {
	var err error
	if c.ID, err = r.ReadUInt32(); err != nil {
		return fmt.Errorf("reading criteria ID: %w", err)
	}
	if c.Quantity, err = r.ReadUInt64(); err != nil {
		return fmt.Errorf("reading criteria Quantity: %w", err)
	}
	if c.Player, err = r.ReadPackedGuid(); err != nil {
		return fmt.Errorf("reading criteria Player: %w", err)
	}
	if c.Date, err = r.ReadPackedTime(time.UTC); err != nil {
		return fmt.Errorf("reading criteria Date: %w", err)
	}
	if c.TimeFromStart, err = r.ReadUInt32(); err != nil {
		return fmt.Errorf("reading TimeFromStart: %w", err)
	}
	if c.TimeFromCreate, err = r.ReadUInt32(); err != nil {
		return fmt.Errorf("reading TimeFromCreate: %w", err)
	}
	flags, err := r.ReadBits(4)
	if err != nil {
		return fmt.Errorf("reading criteria Flags: %w", err)
	}
	c.Flags = uint8(flags)
	r.ResetBitPos()
	return nil
}

// AllAchievements is the full achievement state of a player.
type AllAchievements struct {
	Earned   []EarnedAchievement
	Progress []CriteriaProgress
}

func (a *AllAchievements) Write(w *packet.Writer) {
	w.WriteUInt32(uint32(len(a.Earned)))
	w.WriteUInt32(uint32(len(a.Progress)))
	for i := range a.Earned {
		a.Earned[i].Write(w)
	}
	for i := range a.Progress {
		a.Progress[i].Write(w)
	}
}

func (a *AllAchievements) Read(r *packet.Reader) error {
	earned, err := r.ReadArraySize(0)
	if err != nil {
		return fmt.Errorf("reading Earned count: %w", err)
	}
	progress, err := r.ReadArraySize(0)
	if err != nil {
		return fmt.Errorf("reading Progress count: %w", err)
	}
	a.Earned = make([]EarnedAchievement, earned)
	for i := range a.Earned {
		if err := a.Earned[i].Read(r); err != nil {
			return fmt.Errorf("Earned[%d]: %w", i, err)
		}
	}
	a.Progress = make([]CriteriaProgress, progress)
	for i := range a.Progress {
		if err := a.Progress[i].Read(r); err != nil {
			return fmt.Errorf("Progress[%d]: %w", i, err)
		}
	}
	return nil
}
