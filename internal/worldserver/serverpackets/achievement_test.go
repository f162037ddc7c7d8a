package serverpackets

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/wiretypes"
)

func TestAllAchievementData(t *testing.T) {
	t.Parallel()

	when := time.Date(2019, time.May, 2, 10, 30, 0, 0, time.UTC)
	owner := model.NewPlayerGuid(1, 2)
	data := wiretypes.AllAchievements{
		Earned:   []wiretypes.EarnedAchievement{{ID: 6, Date: when, Owner: owner}},
		Progress: []wiretypes.CriteriaProgress{{ID: 111, Quantity: 3, Player: owner, Date: when}},
	}

	f := body(t, &AllAchievementData{Data: data}, opcodes.SMSGAllAchievementData)
	var got wiretypes.AllAchievements
	require.NoError(t, got.Read(f.r))
	assert.Equal(t, data, got)
	f.done()
}

func TestRespondInspectAchievements(t *testing.T) {
	t.Parallel()

	player := model.NewPlayerGuid(1, 99)
	data := wiretypes.AllAchievements{
		Earned:   []wiretypes.EarnedAchievement{{ID: 1}},
		Progress: []wiretypes.CriteriaProgress{},
	}

	f := body(t, &RespondInspectAchievements{Player: player, Data: data}, opcodes.SMSGRespondInspectAchievements)
	assert.Equal(t, player, f.guid())
	var got wiretypes.AllAchievements
	require.NoError(t, got.Read(f.r))
	assert.Equal(t, data, got)
	f.done()
}

func TestCriteriaUpdate(t *testing.T) {
	t.Parallel()

	when := time.Date(2020, time.February, 29, 23, 59, 0, 0, time.UTC)
	p := &CriteriaUpdate{
		CriteriaID:   4224,
		Quantity:     1 << 33,
		PlayerGUID:   model.NewPlayerGuid(1, 7),
		Flags:        2,
		CurrentTime:  when,
		ElapsedTime:  60,
		CreationTime: 120,
	}

	f := body(t, p, opcodes.SMSGCriteriaUpdate)
	assert.Equal(t, p.CriteriaID, f.u32())
	assert.Equal(t, p.Quantity, f.u64())
	assert.Equal(t, p.PlayerGUID, f.guid())
	assert.Equal(t, p.Flags, f.u32())
	assert.True(t, when.Equal(packet.UnpackTime(f.u32(), time.UTC)))
	assert.Equal(t, p.ElapsedTime, f.u32())
	assert.Equal(t, p.CreationTime, f.u32())
	f.done()
}

func TestAchievementEarned(t *testing.T) {
	t.Parallel()

	p := &AchievementEarned{
		Sender:             model.NewPlayerGuid(1, 1),
		Earner:             model.NewPlayerGuid(1, 2),
		AchievementID:      6,
		EarnerNativeRealm:  1,
		EarnerVirtualRealm: 2,
		Initial:            true,
	}

	f := body(t, p, opcodes.SMSGAchievementEarned)
	assert.Equal(t, p.Sender, f.guid())
	assert.Equal(t, p.Earner, f.guid())
	assert.Equal(t, uint32(6), f.u32())
	assert.Equal(t, uint32(0), f.u32(), "zero time packs to 0")
	assert.Equal(t, uint32(1), f.u32())
	assert.Equal(t, uint32(2), f.u32())
	assert.True(t, f.bit())
	f.done()
}

func TestBroadcastAchievement(t *testing.T) {
	t.Parallel()

	p := &BroadcastAchievement{Name: "Arthas", PlayerGUID: model.NewPlayerGuid(1, 3), AchievementID: 457, GuildAchievement: true}

	f := body(t, p, opcodes.SMSGBroadcastAchievement)
	n := f.bits(7)
	assert.True(t, f.bit())
	assert.Equal(t, p.PlayerGUID, f.guid())
	assert.Equal(t, uint32(457), f.u32())
	assert.Equal(t, "Arthas", f.str(n))
	f.done()

	_, err := (&BroadcastAchievement{Name: strings.Repeat("x", 128)}).Write()
	assert.ErrorIs(t, err, packet.ErrStringTooLong)
}

func TestGuildCriteriaUpdate(t *testing.T) {
	t.Parallel()

	p := &GuildCriteriaUpdate{Progress: []GuildCriteriaProgress{
		{CriteriaID: 1, Quantity: 10, PlayerGUID: model.NewPlayerGuid(1, 4), Flags: -1},
		{CriteriaID: 2},
	}}

	f := body(t, p, opcodes.SMSGGuildCriteriaUpdate)
	require.Equal(t, uint32(2), f.u32())
	for _, want := range p.Progress {
		assert.Equal(t, want.CriteriaID, f.i32())
		assert.Equal(t, want.DateCreated, f.u32())
		assert.Equal(t, want.DateStarted, f.u32())
		assert.Equal(t, uint32(0), f.u32())
		assert.Equal(t, want.Quantity, f.u64())
		assert.Equal(t, want.PlayerGUID, f.guid())
		assert.Equal(t, want.Flags, f.i32())
	}
	f.done()
}
