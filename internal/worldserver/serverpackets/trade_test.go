package serverpackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/wiretypes"
)

func TestTradeStatus_Tail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pkt     TradeStatus
		wantLen int
	}{
		{"failed", TradeStatus{Status: TradeStatusFailed, FailureForYou: true, BagResult: 4, ItemID: 6948}, 1 + 8},
		{"initiated", TradeStatus{Status: TradeStatusInitiated, ID: 3}, 1 + 4},
		{"proposed", TradeStatus{Status: TradeStatusProposed}, 1 + 2 + 2},
		{"wrong realm", TradeStatus{Status: TradeStatusWrongRealm, TradeSlot: 6}, 1 + 1},
		{"not on taplist", TradeStatus{Status: TradeStatusNotOnTaplist, TradeSlot: 2}, 1 + 1},
		{"not enough currency", TradeStatus{Status: TradeStatusNotEnoughCurrency, CurrencyType: 1, CurrencyQuantity: 2}, 1 + 8},
		{"accepted", TradeStatus{Status: TradeStatusAccepted}, 1},
		{"cancelled", TradeStatus{Status: TradeStatusCancelled, PartnerIsSameBnetAccount: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := body(t, &tt.pkt, opcodes.SMSGTradeStatus)
			assert.Equal(t, tt.wantLen, f.r.Remaining())
			assert.Equal(t, tt.pkt.PartnerIsSameBnetAccount, f.bit())
			assert.Equal(t, uint32(tt.pkt.Status), f.bits(5))
		})
	}
}

func TestTradeStatus_FailedLayout(t *testing.T) {
	t.Parallel()

	data, err := (&TradeStatus{Status: TradeStatusFailed, FailureForYou: true, BagResult: 4}).Write()
	require.NoError(t, err)
	// 0 | 01100 | 1 | pad
	assert.Equal(t, byte(0x32), data[2])
}

func TestTradeStatus_Proposed(t *testing.T) {
	t.Parallel()

	p := &TradeStatus{Status: TradeStatusProposed, Partner: model.NewPlayerGuid(1, 10), PartnerAccount: model.NewGlobalGuid(model.HighGuidWowAccount, 3)}
	f := body(t, p, opcodes.SMSGTradeStatus)
	f.bits(6)
	assert.Equal(t, p.Partner, f.guid())
	assert.Equal(t, p.PartnerAccount, f.guid())
	f.done()
}

func TestTradeUpdated(t *testing.T) {
	t.Parallel()

	creator := model.NewPlayerGuid(1, 12)
	gem := wiretypes.ItemGemData{Slot: 0, Item: wiretypes.ItemInstance{ItemID: 23095}}
	p := &TradeUpdated{
		WhichPlayer: 1,
		ID:          4,
		Gold:        123456,
		Items: []TradeItem{
			{Slot: 0, EntryID: 2589, StackCount: 20},
			{
				Slot:      6,
				EntryID:   28484,
				Item:      wiretypes.ItemInstance{ItemID: 28484},
				Unwrapped: &UnwrappedTradeItem{EnchantID: 2, Creator: creator, Gems: []wiretypes.ItemGemData{gem}, Lock: true},
			},
		},
	}

	f := body(t, p, opcodes.SMSGTradeUpdated)
	assert.Equal(t, uint8(1), f.u8())
	assert.Equal(t, uint32(4), f.u32())
	f.u32()
	f.u32()
	assert.Equal(t, uint64(123456), f.u64())
	require.NoError(t, f.r.Skip(12))
	require.Equal(t, uint32(2), f.u32())

	// plain item
	assert.Equal(t, uint8(0), f.u8())
	assert.Equal(t, int32(2589), f.i32())
	assert.Equal(t, int32(20), f.i32())
	assert.True(t, f.guid().IsEmpty())
	var item wiretypes.ItemInstance
	require.NoError(t, item.Read(f.r))
	assert.False(t, f.bit(), "unwrapped")

	// gift with unwrapped details
	assert.Equal(t, uint8(6), f.u8())
	assert.Equal(t, int32(28484), f.i32())
	f.i32()
	f.guid()
	require.NoError(t, item.Read(f.r))
	assert.Equal(t, int32(28484), item.ItemID)
	assert.True(t, f.bit(), "unwrapped")
	assert.Equal(t, int32(2), f.i32())
	f.i32()
	assert.Equal(t, creator, f.guid())
	require.NoError(t, f.r.Skip(12))
	assert.Equal(t, uint32(1), f.bits(2))
	assert.True(t, f.bit())
	var gotGem wiretypes.ItemGemData
	require.NoError(t, gotGem.Read(f.r))
	assert.Equal(t, gem, gotGem)
	f.done()
}
