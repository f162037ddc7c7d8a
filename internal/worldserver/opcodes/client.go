package opcodes

// Client is a client→server opcode.
type Client uint16

const (
	CMSGAuthSession                                   Client = 0x3200
	CMSGPing                                          Client = 0x3201
	CMSGLogoutRequest                                 Client = 0x3202
	CMSGLogoutCancel                                  Client = 0x3203
	CMSGRequestPlayedTime                             Client = 0x3204
	CMSGCharacterRenameRequest                        Client = 0x3205
	CMSGPlayerLogin                                   Client = 0x3206
	CMSGGuildSetFocusedAchievement                    Client = 0x3207
	CMSGGuildGetAchievementMembers                    Client = 0x3208
	CMSGQueryInspectAchievements                      Client = 0x3209
	CMSGAreaSpiritHealerQuery                         Client = 0x320A
	CMSGAreaSpiritHealerQueue                         Client = 0x320B
	CMSGBattlemasterJoin                              Client = 0x320C
	CMSGBattlemasterJoinArena                         Client = 0x320D
	CMSGBattlefieldLeave                              Client = 0x320E
	CMSGBattlefieldPort                               Client = 0x320F
	CMSGBattlefieldList                               Client = 0x3210
	CMSGRequestBattlefieldStatus                      Client = 0x3211
	CMSGReportPvpPlayerAfk                            Client = 0x3212
	CMSGPvpLogData                                    Client = 0x3213
	CMSGHearthAndResurrect                            Client = 0x3214
	CMSGMailGetList                                   Client = 0x3215
	CMSGMailCreateTextItem                            Client = 0x3216
	CMSGSendMail                                      Client = 0x3217
	CMSGMailMarkAsRead                                Client = 0x3218
	CMSGMailDelete                                    Client = 0x3219
	CMSGMailReturnToSender                            Client = 0x321A
	CMSGMailTakeItem                                  Client = 0x321B
	CMSGMailTakeMoney                                 Client = 0x321C
	CMSGQueryNextMailTime                             Client = 0x321D
	CMSGLootUnit                                      Client = 0x321E
	CMSGLootItem                                      Client = 0x321F
	CMSGMasterLootItem                                Client = 0x3220
	CMSGLootRelease                                   Client = 0x3221
	CMSGLootMoney                                     Client = 0x3222
	CMSGLootRoll                                      Client = 0x3223
	CMSGSetLootSpecialization                         Client = 0x3224
	CMSGAcceptTrade                                   Client = 0x3225
	CMSGBeginTrade                                    Client = 0x3226
	CMSGBusyTrade                                     Client = 0x3227
	CMSGCancelTrade                                   Client = 0x3228
	CMSGIgnoreTrade                                   Client = 0x3229
	CMSGUnacceptTrade                                 Client = 0x322A
	CMSGClearTradeItem                                Client = 0x322B
	CMSGInitiateTrade                                 Client = 0x322C
	CMSGSetTradeCurrency                              Client = 0x322D
	CMSGSetTradeGold                                  Client = 0x322E
	CMSGSetTradeItem                                  Client = 0x322F
	CMSGGetGarrisonInfo                               Client = 0x3230
	CMSGGarrisonPurchaseBuilding                      Client = 0x3231
	CMSGGarrisonCancelConstruction                    Client = 0x3232
	CMSGGarrisonRequestBlueprintAndSpecializationData Client = 0x3233
	CMSGLearnTalents                                  Client = 0x3234
	CMSGLearnPvpTalents                               Client = 0x3235
	CMSGConfirmRespecWipe                             Client = 0x3236
	CMSGChatMessageSay                                Client = 0x3237
	CMSGChatMessageYell                               Client = 0x3238
	CMSGChatMessageParty                              Client = 0x3239
	CMSGChatMessageGuild                              Client = 0x323A
	CMSGChatMessageWhisper                            Client = 0x323B
	CMSGChatMessageChannel                            Client = 0x323C
	CMSGChatAddonMessage                              Client = 0x323D
	CMSGSendTextEmote                                 Client = 0x323E
	CMSGAttackSwing                                   Client = 0x323F
	CMSGAttackStop                                    Client = 0x3240
	CMSGCanDuel                                       Client = 0x3241
	CMSGDuelResponse                                  Client = 0x3242
	CMSGPartyInvite                                   Client = 0x3243
	CMSGPartyUninvite                                 Client = 0x3244
	CMSGSetPartyLeader                                Client = 0x3245
	CMSGLeaveGroup                                    Client = 0x3246
	CMSGQueryGuildInfo                                Client = 0x3247
	CMSGGuildInviteByName                             Client = 0x3248
	CMSGGuildDeclineInvitation                        Client = 0x3249
	CMSGSwapInvItem                                   Client = 0x324A
	CMSGAutoEquipItem                                 Client = 0x324B
	CMSGDestroyItem                                   Client = 0x324C
	CMSGSplitItem                                     Client = 0x324D
	CMSGTimeSyncResponse                              Client = 0x324E
	CMSGRandomRoll                                    Client = 0x324F
	CMSGStandStateChange                              Client = 0x3250
	CMSGSetSelection                                  Client = 0x3251
	CMSGQueryTime                                     Client = 0x3252
	CMSGMoveTimeSkipped                               Client = 0x3253
	CMSGWorldPortResponse                             Client = 0x3254
	CMSGTalkToGossip                                  Client = 0x3255
	CMSGGossipSelectOption                            Client = 0x3256
	CMSGListInventory                                 Client = 0x3257
	CMSGBankerActivate                                Client = 0x3258
	CMSGQueryPlayerName                               Client = 0x3259
	CMSGQuestGiverHello                               Client = 0x325A
	CMSGQuestGiverStatusQuery                         Client = 0x325B
	CMSGQuestGiverQueryQuest                          Client = 0x325C
	CMSGQuestLogRemoveQuest                           Client = 0x325D
	CMSGSetFactionAtWar                               Client = 0x325E
	CMSGSetFactionNotAtWar                            Client = 0x325F
	CMSGSetWatchedFaction                             Client = 0x3260
	CMSGSetFactionInactive                            Client = 0x3261
	CMSGAddFriend                                     Client = 0x3262
	CMSGDelFriend                                     Client = 0x3263
	CMSGSetContactNotes                               Client = 0x3264
	CMSGCancelAura                                    Client = 0x3265
	CMSGCancelCast                                    Client = 0x3266
	CMSGTaxiNodeStatusQuery                           Client = 0x3267
	CMSGActivateTaxi                                  Client = 0x3268
	CMSGResetInstances                                Client = 0x3269
	CMSGTotemDestroyed                                Client = 0x326A
	CMSGAddToy                                        Client = 0x326B
)

var clientNames = map[Client]string{
	CMSGAuthSession:                                   "CMSG_AUTH_SESSION",
	CMSGPing:                                          "CMSG_PING",
	CMSGLogoutRequest:                                 "CMSG_LOGOUT_REQUEST",
	CMSGLogoutCancel:                                  "CMSG_LOGOUT_CANCEL",
	CMSGRequestPlayedTime:                             "CMSG_REQUEST_PLAYED_TIME",
	CMSGCharacterRenameRequest:                        "CMSG_CHARACTER_RENAME_REQUEST",
	CMSGPlayerLogin:                                   "CMSG_PLAYER_LOGIN",
	CMSGGuildSetFocusedAchievement:                    "CMSG_GUILD_SET_FOCUSED_ACHIEVEMENT",
	CMSGGuildGetAchievementMembers:                    "CMSG_GUILD_GET_ACHIEVEMENT_MEMBERS",
	CMSGQueryInspectAchievements:                      "CMSG_QUERY_INSPECT_ACHIEVEMENTS",
	CMSGAreaSpiritHealerQuery:                         "CMSG_AREA_SPIRIT_HEALER_QUERY",
	CMSGAreaSpiritHealerQueue:                         "CMSG_AREA_SPIRIT_HEALER_QUEUE",
	CMSGBattlemasterJoin:                              "CMSG_BATTLEMASTER_JOIN",
	CMSGBattlemasterJoinArena:                         "CMSG_BATTLEMASTER_JOIN_ARENA",
	CMSGBattlefieldLeave:                              "CMSG_BATTLEFIELD_LEAVE",
	CMSGBattlefieldPort:                               "CMSG_BATTLEFIELD_PORT",
	CMSGBattlefieldList:                               "CMSG_BATTLEFIELD_LIST",
	CMSGRequestBattlefieldStatus:                      "CMSG_REQUEST_BATTLEFIELD_STATUS",
	CMSGReportPvpPlayerAfk:                            "CMSG_REPORT_PVP_PLAYER_AFK",
	CMSGPvpLogData:                                    "CMSG_PVP_LOG_DATA",
	CMSGHearthAndResurrect:                            "CMSG_HEARTH_AND_RESURRECT",
	CMSGMailGetList:                                   "CMSG_MAIL_GET_LIST",
	CMSGMailCreateTextItem:                            "CMSG_MAIL_CREATE_TEXT_ITEM",
	CMSGSendMail:                                      "CMSG_SEND_MAIL",
	CMSGMailMarkAsRead:                                "CMSG_MAIL_MARK_AS_READ",
	CMSGMailDelete:                                    "CMSG_MAIL_DELETE",
	CMSGMailReturnToSender:                            "CMSG_MAIL_RETURN_TO_SENDER",
	CMSGMailTakeItem:                                  "CMSG_MAIL_TAKE_ITEM",
	CMSGMailTakeMoney:                                 "CMSG_MAIL_TAKE_MONEY",
	CMSGQueryNextMailTime:                             "CMSG_QUERY_NEXT_MAIL_TIME",
	CMSGLootUnit:                                      "CMSG_LOOT_UNIT",
	CMSGLootItem:                                      "CMSG_LOOT_ITEM",
	CMSGMasterLootItem:                                "CMSG_MASTER_LOOT_ITEM",
	CMSGLootRelease:                                   "CMSG_LOOT_RELEASE",
	CMSGLootMoney:                                     "CMSG_LOOT_MONEY",
	CMSGLootRoll:                                      "CMSG_LOOT_ROLL",
	CMSGSetLootSpecialization:                         "CMSG_SET_LOOT_SPECIALIZATION",
	CMSGAcceptTrade:                                   "CMSG_ACCEPT_TRADE",
	CMSGBeginTrade:                                    "CMSG_BEGIN_TRADE",
	CMSGBusyTrade:                                     "CMSG_BUSY_TRADE",
	CMSGCancelTrade:                                   "CMSG_CANCEL_TRADE",
	CMSGIgnoreTrade:                                   "CMSG_IGNORE_TRADE",
	CMSGUnacceptTrade:                                 "CMSG_UNACCEPT_TRADE",
	CMSGClearTradeItem:                                "CMSG_CLEAR_TRADE_ITEM",
	CMSGInitiateTrade:                                 "CMSG_INITIATE_TRADE",
	CMSGSetTradeCurrency:                              "CMSG_SET_TRADE_CURRENCY",
	CMSGSetTradeGold:                                  "CMSG_SET_TRADE_GOLD",
	CMSGSetTradeItem:                                  "CMSG_SET_TRADE_ITEM",
	CMSGGetGarrisonInfo:                               "CMSG_GET_GARRISON_INFO",
	CMSGGarrisonPurchaseBuilding:                      "CMSG_GARRISON_PURCHASE_BUILDING",
	CMSGGarrisonCancelConstruction:                    "CMSG_GARRISON_CANCEL_CONSTRUCTION",
	CMSGGarrisonRequestBlueprintAndSpecializationData: "CMSG_GARRISON_REQUEST_BLUEPRINT_AND_SPECIALIZATION_DATA",
	CMSGLearnTalents:                                  "CMSG_LEARN_TALENTS",
	CMSGLearnPvpTalents:                               "CMSG_LEARN_PVP_TALENTS",
	CMSGConfirmRespecWipe:                             "CMSG_CONFIRM_RESPEC_WIPE",
	CMSGChatMessageSay:                                "CMSG_CHAT_MESSAGE_SAY",
	CMSGChatMessageYell:                               "CMSG_CHAT_MESSAGE_YELL",
	CMSGChatMessageParty:                              "CMSG_CHAT_MESSAGE_PARTY",
	CMSGChatMessageGuild:                              "CMSG_CHAT_MESSAGE_GUILD",
	CMSGChatMessageWhisper:                            "CMSG_CHAT_MESSAGE_WHISPER",
	CMSGChatMessageChannel:                            "CMSG_CHAT_MESSAGE_CHANNEL",
	CMSGChatAddonMessage:                              "CMSG_CHAT_ADDON_MESSAGE",
	CMSGSendTextEmote:                                 "CMSG_SEND_TEXT_EMOTE",
	CMSGAttackSwing:                                   "CMSG_ATTACK_SWING",
	CMSGAttackStop:                                    "CMSG_ATTACK_STOP",
	CMSGCanDuel:                                       "CMSG_CAN_DUEL",
	CMSGDuelResponse:                                  "CMSG_DUEL_RESPONSE",
	CMSGPartyInvite:                                   "CMSG_PARTY_INVITE",
	CMSGPartyUninvite:                                 "CMSG_PARTY_UNINVITE",
	CMSGSetPartyLeader:                                "CMSG_SET_PARTY_LEADER",
	CMSGLeaveGroup:                                    "CMSG_LEAVE_GROUP",
	CMSGQueryGuildInfo:                                "CMSG_QUERY_GUILD_INFO",
	CMSGGuildInviteByName:                             "CMSG_GUILD_INVITE_BY_NAME",
	CMSGGuildDeclineInvitation:                        "CMSG_GUILD_DECLINE_INVITATION",
	CMSGSwapInvItem:                                   "CMSG_SWAP_INV_ITEM",
	CMSGAutoEquipItem:                                 "CMSG_AUTO_EQUIP_ITEM",
	CMSGDestroyItem:                                   "CMSG_DESTROY_ITEM",
	CMSGSplitItem:                                     "CMSG_SPLIT_ITEM",
	CMSGTimeSyncResponse:                              "CMSG_TIME_SYNC_RESPONSE",
	CMSGRandomRoll:                                    "CMSG_RANDOM_ROLL",
	CMSGStandStateChange:                              "CMSG_STAND_STATE_CHANGE",
	CMSGSetSelection:                                  "CMSG_SET_SELECTION",
	CMSGQueryTime:                                     "CMSG_QUERY_TIME",
	CMSGMoveTimeSkipped:                               "CMSG_MOVE_TIME_SKIPPED",
	CMSGWorldPortResponse:                             "CMSG_WORLD_PORT_RESPONSE",
	CMSGTalkToGossip:                                  "CMSG_TALK_TO_GOSSIP",
	CMSGGossipSelectOption:                            "CMSG_GOSSIP_SELECT_OPTION",
	CMSGListInventory:                                 "CMSG_LIST_INVENTORY",
	CMSGBankerActivate:                                "CMSG_BANKER_ACTIVATE",
	CMSGQueryPlayerName:                               "CMSG_QUERY_PLAYER_NAME",
	CMSGQuestGiverHello:                               "CMSG_QUEST_GIVER_HELLO",
	CMSGQuestGiverStatusQuery:                         "CMSG_QUEST_GIVER_STATUS_QUERY",
	CMSGQuestGiverQueryQuest:                          "CMSG_QUEST_GIVER_QUERY_QUEST",
	CMSGQuestLogRemoveQuest:                           "CMSG_QUEST_LOG_REMOVE_QUEST",
	CMSGSetFactionAtWar:                               "CMSG_SET_FACTION_AT_WAR",
	CMSGSetFactionNotAtWar:                            "CMSG_SET_FACTION_NOT_AT_WAR",
	CMSGSetWatchedFaction:                             "CMSG_SET_WATCHED_FACTION",
	CMSGSetFactionInactive:                            "CMSG_SET_FACTION_INACTIVE",
	CMSGAddFriend:                                     "CMSG_ADD_FRIEND",
	CMSGDelFriend:                                     "CMSG_DEL_FRIEND",
	CMSGSetContactNotes:                               "CMSG_SET_CONTACT_NOTES",
	CMSGCancelAura:                                    "CMSG_CANCEL_AURA",
	CMSGCancelCast:                                    "CMSG_CANCEL_CAST",
	CMSGTaxiNodeStatusQuery:                           "CMSG_TAXI_NODE_STATUS_QUERY",
	CMSGActivateTaxi:                                  "CMSG_ACTIVATE_TAXI",
	CMSGResetInstances:                                "CMSG_RESET_INSTANCES",
	CMSGTotemDestroyed:                                "CMSG_TOTEM_DESTROYED",
	CMSGAddToy:                                        "CMSG_ADD_TOY",
}
