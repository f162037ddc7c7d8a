package serverpackets

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CypherCore/CypherCore-sub016/internal/model"
	"github.com/CypherCore/CypherCore-sub016/internal/testutil"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/packet"
)

// body encodes p, checks its opcode and returns a reader over the body.
func body(t *testing.T, p Packet, want opcodes.Server) fields {
	t.Helper()
	data, err := p.Write()
	require.NoError(t, err)
	testutil.AssertServerOpcode(t, want, data)
	return fields{t: t, r: packet.NewReader(data[2:])}
}

// fields reads values off a packet body, failing the test on error.
type fields struct {
	t *testing.T
	r *packet.Reader
}

func (f fields) u8() uint8 {
	f.t.Helper()
	v, err := f.r.ReadUInt8()
	require.NoError(f.t, err)
	return v
}

func (f fields) i8() int8 {
	f.t.Helper()
	v, err := f.r.ReadInt8()
	require.NoError(f.t, err)
	return v
}

func (f fields) u16() uint16 {
	f.t.Helper()
	v, err := f.r.ReadUInt16()
	require.NoError(f.t, err)
	return v
}

func (f fields) u32() uint32 {
	f.t.Helper()
	v, err := f.r.ReadUInt32()
	require.NoError(f.t, err)
	return v
}

func (f fields) i32() int32 {
	f.t.Helper()
	v, err := f.r.ReadInt32()
	require.NoError(f.t, err)
	return v
}

func (f fields) u64() uint64 {
	f.t.Helper()
	v, err := f.r.ReadUInt64()
	require.NoError(f.t, err)
	return v
}

func (f fields) i64() int64 {
	f.t.Helper()
	v, err := f.r.ReadInt64()
	require.NoError(f.t, err)
	return v
}

func (f fields) f32() float32 {
	f.t.Helper()
	v, err := f.r.ReadFloat()
	require.NoError(f.t, err)
	return v
}

func (f fields) bit() bool {
	f.t.Helper()
	v, err := f.r.ReadBit()
	require.NoError(f.t, err)
	return v
}

func (f fields) bits(n int) uint32 {
	f.t.Helper()
	v, err := f.r.ReadBits(n)
	require.NoError(f.t, err)
	return v
}

func (f fields) guid() model.ObjectGuid {
	f.t.Helper()
	v, err := f.r.ReadPackedGuid()
	require.NoError(f.t, err)
	return v
}

func (f fields) str(n uint32) string {
	f.t.Helper()
	v, err := f.r.ReadString(int(n))
	require.NoError(f.t, err)
	return v
}

func (f fields) done() {
	f.t.Helper()
	assert.Equal(f.t, 0, f.r.Remaining(), "trailing bytes")
}

func TestSplitOpcode(t *testing.T) {
	t.Parallel()

	op, b, err := SplitOpcode([]byte{0x83, 0x25, 0xAA})
	require.NoError(t, err)
	assert.Equal(t, opcodes.Server(0x2583), op)
	assert.Equal(t, []byte{0xAA}, b)

	_, _, err = SplitOpcode([]byte{0x01})
	assert.Error(t, err)
}

func TestPackets_WriteOpcode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pkt  Packet
		want opcodes.Server
	}{
		{&AllAchievementData{}, opcodes.SMSGAllAchievementData},
		{&RespondInspectAchievements{}, opcodes.SMSGRespondInspectAchievements},
		{&CriteriaUpdate{}, opcodes.SMSGCriteriaUpdate},
		{&CriteriaDeleted{}, opcodes.SMSGCriteriaDeleted},
		{&AchievementDeleted{}, opcodes.SMSGAchievementDeleted},
		{&AchievementEarned{}, opcodes.SMSGAchievementEarned},
		{&BroadcastAchievement{}, opcodes.SMSGBroadcastAchievement},
		{&GuildCriteriaUpdate{}, opcodes.SMSGGuildCriteriaUpdate},
		{&GuildAchievementEarned{}, opcodes.SMSGGuildAchievementEarned},
		{&GuildAchievementDeleted{}, opcodes.SMSGGuildAchievementDeleted},
		{&PvpSeason{}, opcodes.SMSGPvpSeason},
		{&AreaSpiritHealerTime{}, opcodes.SMSGAreaSpiritHealerTime},
		{&BattlefieldStatusNone{}, opcodes.SMSGBattlefieldStatusNone},
		{&BattlefieldStatusNeedConfirmation{}, opcodes.SMSGBattlefieldStatusNeedConfirmation},
		{&BattlefieldStatusActive{}, opcodes.SMSGBattlefieldStatusActive},
		{&BattlefieldStatusQueued{}, opcodes.SMSGBattlefieldStatusQueued},
		{&BattlefieldStatusFailed{}, opcodes.SMSGBattlefieldStatusFailed},
		{&BattlefieldList{}, opcodes.SMSGBattlefieldList},
		{&PvpLogData{}, opcodes.SMSGPvpLogData},
		{&BattlegroundPlayerPositions{}, opcodes.SMSGBattlegroundPlayerPositions},
		{&BattlegroundPlayerJoined{}, opcodes.SMSGBattlegroundPlayerJoined},
		{&BattlegroundPlayerLeft{}, opcodes.SMSGBattlegroundPlayerLeft},
		{&BattlegroundInit{}, opcodes.SMSGBattlegroundInit},
		{&ReportPvpPlayerAfkResult{}, opcodes.SMSGReportPvpPlayerAfkResult},
		{&MailListResult{}, opcodes.SMSGMailListResult},
		{&MailCommandResult{}, opcodes.SMSGMailCommandResult},
		{&MailQueryNextTimeResult{}, opcodes.SMSGMailQueryNextTimeResult},
		{&NotifyReceivedMail{}, opcodes.SMSGNotifyReceivedMail},
		{&LootResponse{}, opcodes.SMSGLootResponse},
		{&LootRemoved{}, opcodes.SMSGLootRemoved},
		{&LootReleaseResponse{}, opcodes.SMSGLootRelease},
		{&LootMoneyNotify{}, opcodes.SMSGLootMoneyNotify},
		{&CoinRemoved{}, opcodes.SMSGCoinRemoved},
		{&StartLootRoll{}, opcodes.SMSGStartLootRoll},
		{&LootRollBroadcast{}, opcodes.SMSGLootRoll},
		{&LootRollWon{}, opcodes.SMSGLootRollWon},
		{&LootAllPassed{}, opcodes.SMSGLootAllPassed},
		{&LootList{}, opcodes.SMSGLootList},
		{&TradeStatus{}, opcodes.SMSGTradeStatus},
		{&TradeUpdated{}, opcodes.SMSGTradeUpdated},
		{&GetGarrisonInfoResult{}, opcodes.SMSGGetGarrisonInfoResult},
		{&GarrisonPlaceBuildingResult{}, opcodes.SMSGGarrisonPlaceBuildingResult},
		{&GarrisonBuildingRemoved{}, opcodes.SMSGGarrisonBuildingRemoved},
		{&GarrisonLearnBlueprintResult{}, opcodes.SMSGGarrisonLearnBlueprintResult},
		{&GarrisonRequestBlueprintAndSpecializationDataResult{}, opcodes.SMSGGarrisonRequestBlueprintAndSpecializationDataResult},
		{&GarrisonAddFollowerResult{}, opcodes.SMSGGarrisonAddFollowerResult},
		{&GarrisonRemoteInfo{}, opcodes.SMSGGarrisonRemoteInfo},
		{&GarrisonDeleteResult{}, opcodes.SMSGGarrisonDeleteResult},
		{&GarrisonPlotPlaced{}, opcodes.SMSGGarrisonPlotPlaced},
		{&GarrisonPlotRemoved{}, opcodes.SMSGGarrisonPlotRemoved},
		{&UpdateTalentData{}, opcodes.SMSGUpdateTalentData},
		{&RespecWipeConfirm{}, opcodes.SMSGRespecWipeConfirm},
		{&LearnTalentsFailed{}, opcodes.SMSGLearnTalentsFailed},
		{&ActiveGlyphs{}, opcodes.SMSGActiveGlyphs},
		{&AuthChallenge{}, opcodes.SMSGAuthChallenge},
		{&AuthResponse{}, opcodes.SMSGAuthResponse},
		{&Pong{}, opcodes.SMSGPong},
		{&LogoutResponse{}, opcodes.SMSGLogoutResponse},
		{&LogoutComplete{}, opcodes.SMSGLogoutComplete},
		{&PlayedTime{}, opcodes.SMSGPlayedTime},
		{&CharacterRenameResult{}, opcodes.SMSGCharacterRenameResult},
		{&Chat{}, opcodes.SMSGChat},
		{&ChatPlayerNotfound{}, opcodes.SMSGChatPlayerNotfound},
		{&Emote{}, opcodes.SMSGEmote},
		{&AttackStart{}, opcodes.SMSGAttackStart},
		{&AttackStop{}, opcodes.SMSGAttackStop},
		{&AttackSwingError{}, opcodes.SMSGAttackSwingError},
		{&CanDuelResult{}, opcodes.SMSGCanDuelResult},
		{&DuelRequested{}, opcodes.SMSGDuelRequested},
		{&DuelComplete{}, opcodes.SMSGDuelComplete},
		{&DuelCountdown{}, opcodes.SMSGDuelCountdown},
		{&DuelWinner{}, opcodes.SMSGDuelWinner},
		{&DuelInBounds{}, opcodes.SMSGDuelInBounds},
		{&DuelOutOfBounds{}, opcodes.SMSGDuelOutOfBounds},
		{&PartyCommandResult{}, opcodes.SMSGPartyCommandResult},
		{&GroupDecline{}, opcodes.SMSGGroupDecline},
		{&GroupNewLeader{}, opcodes.SMSGGroupNewLeader},
		{&QueryGuildInfoResponse{}, opcodes.SMSGQueryGuildInfoResponse},
		{&GuildCommandResult{}, opcodes.SMSGGuildCommandResult},
		{&GuildEventPlayerJoined{}, opcodes.SMSGGuildEventPlayerJoined},
		{&GuildEventMotd{}, opcodes.SMSGGuildEventMotd},
		{&InventoryChangeFailure{}, opcodes.SMSGInventoryChangeFailure},
		{&SellResponse{}, opcodes.SMSGSellResponse},
		{&ItemPushResult{}, opcodes.SMSGItemPushResult},
		{&TimeSyncRequest{}, opcodes.SMSGTimeSyncRequest},
		{&LoginSetTimeSpeed{}, opcodes.SMSGLoginSetTimeSpeed},
		{&Weather{}, opcodes.SMSGWeather},
		{&PlayMusic{}, opcodes.SMSGPlayMusic},
		{&PlaySound{}, opcodes.SMSGPlaySound},
		{&RandomRoll{}, opcodes.SMSGRandomRoll},
		{&StandStateUpdate{}, opcodes.SMSGStandStateUpdate},
		{&LevelUpInfo{}, opcodes.SMSGLevelUpInfo},
		{&QueryTimeResponse{}, opcodes.SMSGQueryTimeResponse},
		{&MoveSetSpeed{Opcode: opcodes.SMSGMoveSetSwimSpeed}, opcodes.SMSGMoveSetSwimSpeed},
		{&MoveSetFlag{Opcode: opcodes.SMSGMoveRoot}, opcodes.SMSGMoveRoot},
		{&TransferPending{}, opcodes.SMSGTransferPending},
		{&NewWorld{}, opcodes.SMSGNewWorld},
		{&GossipMessage{}, opcodes.SMSGGossipMessage},
		{&GossipComplete{}, opcodes.SMSGGossipComplete},
		{&VendorInventory{}, opcodes.SMSGVendorInventory},
		{&BinderConfirm{}, opcodes.SMSGBinderConfirm},
		{&ShowBank{}, opcodes.SMSGShowBank},
		{&QueryPlayerNameResponse{}, opcodes.SMSGQueryPlayerNameResponse},
		{&QuestGiverStatus{}, opcodes.SMSGQuestGiverStatus},
		{&QuestUpdateComplete{}, opcodes.SMSGQuestUpdateComplete},
		{&QuestUpdateAddCredit{}, opcodes.SMSGQuestUpdateAddCredit},
		{&QuestConfirmAccept{}, opcodes.SMSGQuestConfirmAccept},
		{&InitializeFactions{}, opcodes.SMSGInitializeFactions},
		{&SetFactionStanding{}, opcodes.SMSGSetFactionStanding},
		{&ContactList{}, opcodes.SMSGContactList},
		{&FriendStatus{}, opcodes.SMSGFriendStatus},
		{&LearnedSpells{}, opcodes.SMSGLearnedSpells},
		{&UnlearnedSpells{}, opcodes.SMSGUnlearnedSpells},
		{&CastFailed{}, opcodes.SMSGCastFailed},
		{&SpellCooldown{}, opcodes.SMSGSpellCooldown},
		{&CooldownEvent{}, opcodes.SMSGCooldownEvent},
		{&TaxiNodeStatus{}, opcodes.SMSGTaxiNodeStatus},
		{&ShowTaxiNodes{}, opcodes.SMSGShowTaxiNodes},
		{&ActivateTaxiReply{}, opcodes.SMSGActivateTaxiReply},
		{&InstanceInfo{}, opcodes.SMSGInstanceInfo},
		{&InstanceReset{}, opcodes.SMSGInstanceReset},
		{&InstanceResetFailed{}, opcodes.SMSGInstanceResetFailed},
		{&TotemCreated{}, opcodes.SMSGTotemCreated},
		{&TotemMoved{}, opcodes.SMSGTotemMoved},
		{&AccountToysUpdate{}, opcodes.SMSGAccountToysUpdate},
		{&UpdateObject{}, opcodes.SMSGUpdateObject},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			t.Parallel()
			data, err := tt.pkt.Write()
			require.NoError(t, err)
			op, _, err := SplitOpcode(data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, op)
			assert.True(t, op.Known(), "opcode %s has no name", op)
		})
	}
}

func TestPackets_RejectOverflowingBitFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pkt   Packet
		want  error
		field string
	}{
		{"trade status", &TradeStatus{Status: 32}, packet.ErrEnumOverflow, "TradeStatus.Status"},
		{"loot item type", &LootResponse{Items: []LootItemData{{Type: 4}}}, packet.ErrEnumOverflow, "LootItemData.Type"},
		{"loot item ui type", &LootResponse{Items: []LootItemData{{UIType: 8}}}, packet.ErrEnumOverflow, "LootItemData.UIType"},
		{"loot currency ui type", &LootResponse{Currencies: []LootCurrency{{UIType: 9}}}, packet.ErrEnumOverflow, "LootCurrency.UIType"},
		{"party result", &PartyCommandResult{Result: 64}, packet.ErrEnumOverflow, "PartyCommandResult.Result"},
		{"broadcast name", &BroadcastAchievement{Name: strings.Repeat("x", 128)}, packet.ErrStringTooLong, "BroadcastAchievement.Name"},
		{"criteria date", &CriteriaUpdate{CurrentTime: time.Date(1999, time.June, 1, 0, 0, 0, 0, time.UTC)}, packet.ErrTimeOutOfRange, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.pkt.Write()
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
