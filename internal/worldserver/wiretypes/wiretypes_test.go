package wiretypes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

type codec interface {
	Write(w *packet.Writer)
	Read(r *packet.Reader) error
}

// roundTrip writes in, reads it back into out and checks the whole buffer was consumed.
func roundTrip(t *testing.T, in, out codec) {
	t.Helper()
	w := packet.NewWriter(256)
	in.Write(w)
	data, err := w.Result()
	require.NoError(t, err)

	r := packet.NewReader(data)
	require.NoError(t, out.Read(r))
	assert.Equal(t, 0, r.Remaining(), "trailing bytes")
}

func TestItemInstance_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item ItemInstance
	}{
		{"bare", ItemInstance{ItemID: 19019}},
		{
			name: "with bonuses",
			item: ItemInstance{
				ItemID:               124545,
				RandomPropertiesSeed: 7,
				RandomPropertiesID:   -3,
				ItemBonus:            &ItemBonuses{Context: 3, BonusListIDs: []int32{1472, 3528}},
			},
		},
		{
			name: "with modifications only",
			item: ItemInstance{
				ItemID:        6948,
				Modifications: &ItemModList{Values: []ItemMod{{Value: 5, Type: 1}, {Value: 90, Type: 9}}},
			},
		},
		{
			name: "everything",
			item: ItemInstance{
				ItemID:        1,
				ItemBonus:     &ItemBonuses{BonusListIDs: []int32{}},
				Modifications: &ItemModList{Values: []ItemMod{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got ItemInstance
			roundTrip(t, &tt.item, &got)
			assert.Equal(t, tt.item, got)
		})
	}
}

func TestItemInstance_Layout(t *testing.T) {
	t.Parallel()

	w := packet.NewWriter(32)
	item := ItemInstance{ItemID: 2, ItemBonus: &ItemBonuses{Context: 1}}
	item.Write(w)
	data := w.Bytes()

	// 3*int32, presence byte (bonus bit set), context, bonus count
	require.Len(t, data, 12+1+1+4)
	assert.Equal(t, byte(0x80), data[12])
	assert.Equal(t, byte(1), data[13])
}

func TestItemModList_TooMany(t *testing.T) {
	t.Parallel()

	w := packet.NewWriter(512)
	m := ItemModList{Values: make([]ItemMod, 64)}
	m.Write(w)
	_, err := w.Result()
	assert.ErrorIs(t, err, packet.ErrStringTooLong)
}

func TestItemInstance_Truncated(t *testing.T) {
	t.Parallel()

	w := packet.NewWriter(32)
	(&ItemInstance{ItemID: 5, ItemBonus: &ItemBonuses{BonusListIDs: []int32{1, 2}}}).Write(w)
	data := w.Bytes()

	var got ItemInstance
	err := got.Read(packet.NewReader(data[:len(data)-3]))
	assert.ErrorIs(t, err, packet.ErrShortRead)
}

func TestItemGemAndEnchant_RoundTrip(t *testing.T) {
	t.Parallel()

	gem := ItemGemData{Slot: 2, Item: ItemInstance{ItemID: 130219}}
	var gotGem ItemGemData
	roundTrip(t, &gem, &gotGem)
	assert.Equal(t, gem, gotGem)

	ench := ItemEnchantData{ID: 5384, Expiration: 3600, Charges: -1, Slot: 1}
	var gotEnch ItemEnchantData
	roundTrip(t, &ench, &gotEnch)
	assert.Equal(t, ench, gotEnch)
}

func TestInvUpdate_RoundTrip(t *testing.T) {
	t.Parallel()

	in := InvUpdate{Items: []InvItem{{ContainerSlot: 255, Slot: 23}, {ContainerSlot: 19, Slot: 4}}}
	var got InvUpdate
	roundTrip(t, &in, &got)
	assert.Equal(t, in, got)

	w := packet.NewWriter(16)
	(&InvUpdate{Items: make([]InvItem, 4)}).Write(w)
	assert.ErrorIs(t, w.Err(), packet.ErrStringTooLong)
}

func TestRideTicketAndQualifiedGUID_RoundTrip(t *testing.T) {
	t.Parallel()

	ticket := RideTicket{RequesterGuid: model.NewPlayerGuid(1, 77), ID: 3, Type: 2, Time: 1500000000}
	var gotTicket RideTicket
	roundTrip(t, &ticket, &gotTicket)
	assert.Equal(t, ticket, gotTicket)

	q := QualifiedGUID{VirtualRealmAddress: 0x01000001, Guid: model.NewPlayerGuid(1, 5)}
	var gotQ QualifiedGUID
	roundTrip(t, &q, &gotQ)
	assert.Equal(t, q, gotQ)
}

func TestAllAchievements_RoundTrip(t *testing.T) {
	t.Parallel()

	when := time.Date(2018, time.January, 16, 20, 5, 0, 0, time.UTC)
	owner := model.NewPlayerGuid(1, 42)
	in := AllAchievements{
		Earned: []EarnedAchievement{
			{ID: 6, Date: when, Owner: owner, VirtualRealmAddress: 1, NativeRealmAddress: 1},
			{ID: 7, Owner: owner},
		},
		Progress: []CriteriaProgress{
			{ID: 34, Quantity: 1 << 40, Player: owner, Date: when, TimeFromStart: 5, TimeFromCreate: 9, Flags: 0xF},
		},
	}

	var got AllAchievements
	roundTrip(t, &in, &got)
	assert.Equal(t, in, got)
}

func TestAllAchievements_BogusCount(t *testing.T) {
	t.Parallel()

	w := packet.NewWriter(8)
	w.WriteUInt32(1000)
	w.WriteUInt32(0)

	var got AllAchievements
	err := got.Read(packet.NewReader(w.Bytes()))
	assert.ErrorIs(t, err, packet.ErrShortRead)
}

func TestEarnedAchievement_NonUTCDate(t *testing.T) {
	t.Parallel()

	pst := time.FixedZone("PST", -8*60*60)
	in := EarnedAchievement{ID: 9, Date: time.Date(2019, time.November, 3, 22, 15, 0, 0, pst), Owner: model.NewPlayerGuid(1, 3)}

	var got EarnedAchievement
	roundTrip(t, &in, &got)
	assert.True(t, in.Date.Equal(got.Date), "got %v, want %v", got.Date, in.Date)
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, in.Owner, got.Owner)
}

func TestCriteriaProgress_DateOutOfRange(t *testing.T) {
	t.Parallel()

	w := packet.NewWriter(64)
	c := CriteriaProgress{ID: 1, Date: time.Date(1999, time.December, 31, 23, 0, 0, 0, time.UTC)}
	c.Write(w)
	_, err := w.Result()
	assert.ErrorIs(t, err, packet.ErrTimeOutOfRange)
}
