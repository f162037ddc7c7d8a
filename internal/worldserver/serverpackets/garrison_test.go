package serverpackets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

const garrisonMissionSize = 8 + 4 + 8 + 4 + 8 + 5*4 + 4

func TestGetGarrisonInfoResult(t *testing.T) {
	t.Parallel()

	p := &GetGarrisonInfoResult{
		FactionIndex:     1,
		FollowerSoftCaps: []FollowerSoftCapInfo{{GarrFollowerTypeID: 1, Count: 20}},
		Garrisons: []GarrisonInfo{{
			GarrTypeID:      2,
			GarrSiteID:      71,
			GarrSiteLevelID: 5,
			Plots: []GarrisonPlotInfo{
				{GarrPlotInstanceID: 18, PlotPos: model.NewPosition(1, 2, 3, 0.5), PlotType: 1},
			},
			Followers: []GarrisonFollower{
				{DbID: 1, GarrFollowerID: 34, Quality: 2, FollowerLevel: 90, AbilityIDs: []uint32{6, 7}, CustomName: "Qiana"},
			},
			Missions: []GarrisonMission{
				{DbID: 10, MissionRecID: 2, CanStart: true},
				{DbID: 11, MissionRecID: 3},
			},
			ArchivedMissions: []int32{99},
		}},
	}

	f := body(t, p, opcodes.SMSGGetGarrisonInfoResult)
	assert.Equal(t, int32(1), f.i32())
	require.Equal(t, uint32(1), f.u32())
	require.Equal(t, uint32(1), f.u32())
	assert.Equal(t, int32(1), f.i32())
	assert.Equal(t, uint32(20), f.u32())

	assert.Equal(t, int32(2), f.i32())
	assert.Equal(t, uint32(71), f.u32())
	assert.Equal(t, uint32(5), f.u32())
	counts := make([]uint32, 6)
	for i := range counts {
		counts[i] = f.u32()
	}
	assert.Equal(t, []uint32{0, 1, 1, 2, 0, 1}, counts, "buildings, plots, followers, missions, talents, archived")
	f.u32()
	f.u32()

	assert.Equal(t, uint32(18), f.u32())
	pos, err := f.r.ReadPosition()
	require.NoError(t, err)
	assert.Equal(t, model.NewPosition(1, 2, 3, 0.5), pos)
	assert.Equal(t, uint32(1), f.u32())

	assert.Equal(t, uint64(10), f.u64())
	require.NoError(t, f.r.Skip(garrisonMissionSize-8))
	assert.Equal(t, uint64(11), f.u64())
	require.NoError(t, f.r.Skip(garrisonMissionSize-8))

	assert.Equal(t, uint64(1), f.u64())
	assert.Equal(t, uint32(34), f.u32())
	require.NoError(t, f.r.Skip(8*4))
	require.Equal(t, uint32(2), f.u32())
	f.u32()
	f.u32()
	assert.Equal(t, uint32(6), f.u32())
	assert.Equal(t, uint32(7), f.u32())
	assert.Equal(t, "Qiana", f.str(f.bits(7)))

	assert.Equal(t, int32(99), f.i32())
	assert.True(t, f.bit(), "mission 0 can start")
	assert.False(t, f.bit(), "mission 1 can start")
	f.done()
}

func TestGarrisonAddFollowerResult_NameTooLong(t *testing.T) {
	t.Parallel()

	p := &GarrisonAddFollowerResult{Follower: GarrisonFollower{CustomName: strings.Repeat("a", 200)}}
	_, err := p.Write()
	assert.ErrorIs(t, err, packet.ErrStringTooLong)
}

func TestGarrisonRemoteInfo(t *testing.T) {
	t.Parallel()

	p := &GarrisonRemoteInfo{Sites: []GarrisonRemoteSiteInfo{
		{GarrSiteLevelID: 3, Buildings: []GarrisonRemoteBuildingInfo{{GarrPlotInstanceID: 22, GarrBuildingID: 8}}},
		{GarrSiteLevelID: 4},
	}}

	f := body(t, p, opcodes.SMSGGarrisonRemoteInfo)
	require.Equal(t, uint32(2), f.u32())
	assert.Equal(t, uint32(3), f.u32())
	require.Equal(t, uint32(1), f.u32())
	assert.Equal(t, uint32(22), f.u32())
	assert.Equal(t, uint32(8), f.u32())
	assert.Equal(t, uint32(4), f.u32())
	assert.Equal(t, uint32(0), f.u32())
	f.done()
}

func TestGarrisonPlaceBuildingResult(t *testing.T) {
	t.Parallel()

	p := &GarrisonPlaceBuildingResult{
		GarrTypeID:              2,
		BuildingInfo:            GarrisonBuildingInfo{GarrPlotInstanceID: 23, GarrBuildingID: 24, TimeBuilt: 1500000000, Active: true},
		PlayActivationCinematic: true,
	}

	f := body(t, p, opcodes.SMSGGarrisonPlaceBuildingResult)
	assert.Equal(t, int32(2), f.i32())
	assert.Equal(t, uint32(0), f.u32())
	assert.Equal(t, uint32(23), f.u32())
	assert.Equal(t, uint32(24), f.u32())
	assert.Equal(t, int64(1500000000), f.i64())
	f.u32()
	f.i64()
	assert.True(t, f.bit(), "active")
	f.r.ResetBitPos()
	assert.True(t, f.bit(), "play cinematic")
	f.done()
}
