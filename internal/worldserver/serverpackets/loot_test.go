package serverpackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/wiretypes"
)

func (f fields) lootItem() LootItemData {
	f.t.Helper()
	var d LootItemData
	f.r.ResetBitPos()
	d.Type = uint8(f.bits(2))
	d.UIType = uint8(f.bits(3))
	d.CanTradeToTapList = f.bit()
	require.NoError(f.t, d.Loot.Read(f.r))
	d.Quantity = f.u32()
	d.LootItemType = f.u8()
	d.LootListID = f.u8()
	return d
}

func TestLootResponse(t *testing.T) {
	t.Parallel()

	item := LootItemData{
		Type:              1,
		UIType:            LootSlotOwner,
		CanTradeToTapList: true,
		Loot:              wiretypes.ItemInstance{ItemID: 4306, ItemBonus: &wiretypes.ItemBonuses{Context: 2, BonusListIDs: []int32{6}}},
		Quantity:          3,
		LootListID:        1,
	}
	p := &LootResponse{
		Owner:      model.NewWorldObjectGuid(model.HighGuidCreature, 0, 0, 448, 1),
		LootObj:    model.NewGlobalGuid(model.HighGuidLootObject, 5),
		LootMethod: 1,
		Threshold:  2,
		Coins:      1234,
		Items:      []LootItemData{item},
		Currencies: []LootCurrency{{CurrencyID: 1220, Quantity: 25, LootListID: 2, UIType: LootSlotAllowLoot}},
		Acquired:   true,
	}

	f := body(t, p, opcodes.SMSGLootResponse)
	assert.Equal(t, p.Owner, f.guid())
	assert.Equal(t, p.LootObj, f.guid())
	assert.Equal(t, uint8(0), f.u8())
	assert.Equal(t, uint8(0), f.u8())
	assert.Equal(t, uint8(1), f.u8())
	assert.Equal(t, uint8(2), f.u8())
	assert.Equal(t, uint32(1234), f.u32())
	require.Equal(t, uint32(1), f.u32())
	require.Equal(t, uint32(1), f.u32())
	assert.True(t, f.bit())
	assert.False(t, f.bit())

	assert.Equal(t, item, f.lootItem())

	assert.Equal(t, uint32(1220), f.u32())
	assert.Equal(t, uint32(25), f.u32())
	assert.Equal(t, uint8(2), f.u8())
	assert.Equal(t, uint32(LootSlotAllowLoot), f.bits(3))
	f.done()
}

func TestLootRollWon(t *testing.T) {
	t.Parallel()

	item := LootItemData{Loot: wiretypes.ItemInstance{ItemID: 19019}, Quantity: 1}
	p := &LootRollWon{
		LootObj:  model.NewGlobalGuid(model.HighGuidLootObject, 9),
		Winner:   model.NewPlayerGuid(1, 4),
		Roll:     97,
		RollType: RollNeed,
		Item:     item,
		MainSpec: true,
	}

	f := body(t, p, opcodes.SMSGLootRollWon)
	assert.Equal(t, p.LootObj, f.guid())
	assert.Equal(t, p.Winner, f.guid())
	assert.Equal(t, int32(97), f.i32())
	assert.Equal(t, RollNeed, f.u8())
	assert.Equal(t, item, f.lootItem())
	assert.True(t, f.bit())
	f.done()
}

func TestLootList(t *testing.T) {
	t.Parallel()

	master := model.NewPlayerGuid(1, 1)
	tests := []struct {
		name    string
		pkt     LootList
		present [2]bool
	}{
		{"none", LootList{}, [2]bool{false, false}},
		{"master only", LootList{Master: &master}, [2]bool{true, false}},
		{"both", LootList{Master: &master, RoundRobinWinner: &master}, [2]bool{true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := body(t, &tt.pkt, opcodes.SMSGLootList)
			f.guid()
			f.guid()
			assert.Equal(t, tt.present[0], f.bit())
			assert.Equal(t, tt.present[1], f.bit())
			for _, present := range tt.present {
				if present {
					assert.Equal(t, master, f.guid())
				}
			}
			f.done()
		})
	}
}
