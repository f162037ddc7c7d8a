// Package clientpackets decodes client→server packet bodies. Every ParseX
// function takes the body with the opcode already stripped.
package clientpackets

import (
	"errors"
	"fmt"

	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// ErrUnknownOpcode is returned by Parse for opcodes with no registered parser.
var ErrUnknownOpcode = errors.New("unknown client opcode")

// Entry describes one registered client packet.
type Entry struct {
	Name  string
	Parse func(body []byte) (any, error)
}

func adapt[T any](parse func([]byte) (*T, error)) func([]byte) (any, error) {
	return func(body []byte) (any, error) {
		p, err := parse(body)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

var parsers = map[opcodes.Client]func([]byte) (any, error){
	// auth / character
	opcodes.CMSGAuthSession:            adapt(ParseAuthSession),
	opcodes.CMSGPing:                   adapt(ParsePing),
	opcodes.CMSGLogoutRequest:          adapt(ParseLogoutRequest),
	opcodes.CMSGLogoutCancel:           adapt(ParseLogoutCancel),
	opcodes.CMSGRequestPlayedTime:      adapt(ParseRequestPlayedTime),
	opcodes.CMSGCharacterRenameRequest: adapt(ParseCharacterRenameRequest),
	opcodes.CMSGPlayerLogin:            adapt(ParsePlayerLogin),

	// achievement
	opcodes.CMSGGuildSetFocusedAchievement: adapt(ParseGuildSetFocusedAchievement),
	opcodes.CMSGGuildGetAchievementMembers: adapt(ParseGuildGetAchievementMembers),
	opcodes.CMSGQueryInspectAchievements:   adapt(ParseQueryInspectAchievements),

	// battleground
	opcodes.CMSGAreaSpiritHealerQuery:    adapt(ParseAreaSpiritHealerQuery),
	opcodes.CMSGAreaSpiritHealerQueue:    adapt(ParseAreaSpiritHealerQueue),
	opcodes.CMSGBattlemasterJoin:         adapt(ParseBattlemasterJoin),
	opcodes.CMSGBattlemasterJoinArena:    adapt(ParseBattlemasterJoinArena),
	opcodes.CMSGBattlefieldLeave:         adapt(ParseBattlefieldLeave),
	opcodes.CMSGBattlefieldPort:          adapt(ParseBattlefieldPort),
	opcodes.CMSGBattlefieldList:          adapt(ParseBattlefieldListRequest),
	opcodes.CMSGRequestBattlefieldStatus: adapt(ParseRequestBattlefieldStatus),
	opcodes.CMSGReportPvpPlayerAfk:       adapt(ParseReportPvpPlayerAfk),
	opcodes.CMSGPvpLogData:               adapt(ParsePvpLogDataRequest),
	opcodes.CMSGHearthAndResurrect:       adapt(ParseHearthAndResurrect),

	// mail
	opcodes.CMSGMailGetList:        adapt(ParseMailGetList),
	opcodes.CMSGMailCreateTextItem: adapt(ParseMailCreateTextItem),
	opcodes.CMSGSendMail:           adapt(ParseSendMail),
	opcodes.CMSGMailMarkAsRead:     adapt(ParseMailMarkAsRead),
	opcodes.CMSGMailDelete:         adapt(ParseMailDelete),
	opcodes.CMSGMailReturnToSender: adapt(ParseMailReturnToSender),
	opcodes.CMSGMailTakeItem:       adapt(ParseMailTakeItem),
	opcodes.CMSGMailTakeMoney:      adapt(ParseMailTakeMoney),
	opcodes.CMSGQueryNextMailTime:  adapt(ParseMailQueryNextMailTime),

	// loot
	opcodes.CMSGLootUnit:              adapt(ParseLootUnit),
	opcodes.CMSGLootItem:              adapt(ParseLootItem),
	opcodes.CMSGMasterLootItem:        adapt(ParseMasterLootItem),
	opcodes.CMSGLootRelease:           adapt(ParseLootRelease),
	opcodes.CMSGLootMoney:             adapt(ParseLootMoney),
	opcodes.CMSGLootRoll:              adapt(ParseLootRoll),
	opcodes.CMSGSetLootSpecialization: adapt(ParseSetLootSpecialization),

	// trade
	opcodes.CMSGAcceptTrade:      adapt(ParseAcceptTrade),
	opcodes.CMSGBeginTrade:       adapt(ParseBeginTrade),
	opcodes.CMSGBusyTrade:        adapt(ParseBusyTrade),
	opcodes.CMSGCancelTrade:      adapt(ParseCancelTrade),
	opcodes.CMSGIgnoreTrade:      adapt(ParseIgnoreTrade),
	opcodes.CMSGUnacceptTrade:    adapt(ParseUnacceptTrade),
	opcodes.CMSGClearTradeItem:   adapt(ParseClearTradeItem),
	opcodes.CMSGInitiateTrade:    adapt(ParseInitiateTrade),
	opcodes.CMSGSetTradeCurrency: adapt(ParseSetTradeCurrency),
	opcodes.CMSGSetTradeGold:     adapt(ParseSetTradeGold),
	opcodes.CMSGSetTradeItem:     adapt(ParseSetTradeItem),

	// garrison
	opcodes.CMSGGetGarrisonInfo:                               adapt(ParseGetGarrisonInfo),
	opcodes.CMSGGarrisonPurchaseBuilding:                      adapt(ParseGarrisonPurchaseBuilding),
	opcodes.CMSGGarrisonCancelConstruction:                    adapt(ParseGarrisonCancelConstruction),
	opcodes.CMSGGarrisonRequestBlueprintAndSpecializationData: adapt(ParseGarrisonRequestBlueprintAndSpecializationData),

	// talent
	opcodes.CMSGLearnTalents:      adapt(ParseLearnTalents),
	opcodes.CMSGLearnPvpTalents:   adapt(ParseLearnPvpTalents),
	opcodes.CMSGConfirmRespecWipe: adapt(ParseConfirmRespecWipe),

	// chat
	opcodes.CMSGChatMessageSay:     adapt(ParseChatMessage),
	opcodes.CMSGChatMessageYell:    adapt(ParseChatMessage),
	opcodes.CMSGChatMessageParty:   adapt(ParseChatMessage),
	opcodes.CMSGChatMessageGuild:   adapt(ParseChatMessage),
	opcodes.CMSGChatMessageWhisper: adapt(ParseChatMessageWhisper),
	opcodes.CMSGChatMessageChannel: adapt(ParseChatMessageChannel),
	opcodes.CMSGChatAddonMessage:   adapt(ParseChatAddonMessage),
	opcodes.CMSGSendTextEmote:      adapt(ParseSendTextEmote),

	// combat / duel
	opcodes.CMSGAttackSwing:  adapt(ParseAttackSwing),
	opcodes.CMSGAttackStop:   adapt(ParseAttackStop),
	opcodes.CMSGCanDuel:      adapt(ParseCanDuel),
	opcodes.CMSGDuelResponse: adapt(ParseDuelResponse),

	// party / guild
	opcodes.CMSGPartyInvite:            adapt(ParsePartyInvite),
	opcodes.CMSGPartyUninvite:          adapt(ParsePartyUninvite),
	opcodes.CMSGSetPartyLeader:         adapt(ParseSetPartyLeader),
	opcodes.CMSGLeaveGroup:             adapt(ParseLeaveGroup),
	opcodes.CMSGQueryGuildInfo:         adapt(ParseQueryGuildInfo),
	opcodes.CMSGGuildInviteByName:      adapt(ParseGuildInviteByName),
	opcodes.CMSGGuildDeclineInvitation: adapt(ParseGuildDeclineInvitation),

	// item
	opcodes.CMSGSwapInvItem:   adapt(ParseSwapInvItem),
	opcodes.CMSGAutoEquipItem: adapt(ParseAutoEquipItem),
	opcodes.CMSGDestroyItem:   adapt(ParseDestroyItem),
	opcodes.CMSGSplitItem:     adapt(ParseSplitItem),

	// misc / movement
	opcodes.CMSGTimeSyncResponse:  adapt(ParseTimeSyncResponse),
	opcodes.CMSGRandomRoll:        adapt(ParseRandomRoll),
	opcodes.CMSGStandStateChange:  adapt(ParseStandStateChange),
	opcodes.CMSGSetSelection:      adapt(ParseSetSelection),
	opcodes.CMSGQueryTime:         adapt(ParseQueryTime),
	opcodes.CMSGMoveTimeSkipped:   adapt(ParseMoveTimeSkipped),
	opcodes.CMSGWorldPortResponse: adapt(ParseWorldPortResponse),

	// npc / query / quest
	opcodes.CMSGTalkToGossip:          adapt(ParseGossipHello),
	opcodes.CMSGGossipSelectOption:    adapt(ParseGossipSelectOption),
	opcodes.CMSGListInventory:         adapt(ParseListInventory),
	opcodes.CMSGBankerActivate:        adapt(ParseBankerActivate),
	opcodes.CMSGQueryPlayerName:       adapt(ParseQueryPlayerName),
	opcodes.CMSGQuestGiverHello:       adapt(ParseQuestGiverHello),
	opcodes.CMSGQuestGiverStatusQuery: adapt(ParseQuestGiverStatusQuery),
	opcodes.CMSGQuestGiverQueryQuest:  adapt(ParseQuestGiverQueryQuest),
	opcodes.CMSGQuestLogRemoveQuest:   adapt(ParseQuestLogRemoveQuest),

	// reputation / social
	opcodes.CMSGSetFactionAtWar:    adapt(ParseSetFactionAtWar),
	opcodes.CMSGSetFactionNotAtWar: adapt(ParseSetFactionNotAtWar),
	opcodes.CMSGSetWatchedFaction:  adapt(ParseSetWatchedFaction),
	opcodes.CMSGSetFactionInactive: adapt(ParseSetFactionInactive),
	opcodes.CMSGAddFriend:          adapt(ParseAddFriend),
	opcodes.CMSGDelFriend:          adapt(ParseDelFriend),
	opcodes.CMSGSetContactNotes:    adapt(ParseSetContactNotes),

	// spell / taxi / instance / totem
	opcodes.CMSGCancelAura:          adapt(ParseCancelAura),
	opcodes.CMSGCancelCast:          adapt(ParseCancelCast),
	opcodes.CMSGTaxiNodeStatusQuery: adapt(ParseTaxiNodeStatusQuery),
	opcodes.CMSGActivateTaxi:        adapt(ParseActivateTaxi),
	opcodes.CMSGResetInstances:      adapt(ParseResetInstances),
	opcodes.CMSGTotemDestroyed:      adapt(ParseTotemDestroyed),
	opcodes.CMSGAddToy:              adapt(ParseAddToy),
}

// Lookup returns the registry entry for op.
func Lookup(op opcodes.Client) (Entry, bool) {
	parse, ok := parsers[op]
	if !ok {
		return Entry{}, false
	}
	return Entry{Name: op.String(), Parse: parse}, true
}

// Parse decodes body as the packet registered for op. The returned value is
// a pointer to the packet struct (e.g. *SendMail).
func Parse(op opcodes.Client, body []byte) (any, error) {
	parse, ok := parsers[op]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%04X", ErrUnknownOpcode, uint16(op))
	}
	p, err := parse(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
