package opcodes

// Server is a server→client opcode.
type Server uint16

const (
	SMSGAuthChallenge                                       Server = 0x2580
	SMSGAuthResponse                                        Server = 0x2581
	SMSGPong                                                Server = 0x2582
	SMSGCompressedPacket                                    Server = 0x2583
	SMSGLogoutResponse                                      Server = 0x2584
	SMSGLogoutComplete                                      Server = 0x2585
	SMSGPlayedTime                                          Server = 0x2586
	SMSGCharacterRenameResult                               Server = 0x2587
	SMSGAllAchievementData                                  Server = 0x2588
	SMSGRespondInspectAchievements                          Server = 0x2589
	SMSGCriteriaUpdate                                      Server = 0x258A
	SMSGCriteriaDeleted                                     Server = 0x258B
	SMSGAchievementDeleted                                  Server = 0x258C
	SMSGAchievementEarned                                   Server = 0x258D
	SMSGBroadcastAchievement                                Server = 0x258E
	SMSGGuildCriteriaUpdate                                 Server = 0x258F
	SMSGGuildAchievementEarned                              Server = 0x2590
	SMSGGuildAchievementDeleted                             Server = 0x2591
	SMSGPvpSeason                                           Server = 0x2592
	SMSGAreaSpiritHealerTime                                Server = 0x2593
	SMSGBattlefieldStatusNone                               Server = 0x2594
	SMSGBattlefieldStatusNeedConfirmation                   Server = 0x2595
	SMSGBattlefieldStatusActive                             Server = 0x2596
	SMSGBattlefieldStatusQueued                             Server = 0x2597
	SMSGBattlefieldStatusFailed                             Server = 0x2598
	SMSGBattlefieldList                                     Server = 0x2599
	SMSGPvpLogData                                          Server = 0x259A
	SMSGBattlegroundPlayerPositions                         Server = 0x259B
	SMSGBattlegroundPlayerJoined                            Server = 0x259C
	SMSGBattlegroundPlayerLeft                              Server = 0x259D
	SMSGBattlegroundInit                                    Server = 0x259E
	SMSGReportPvpPlayerAfkResult                            Server = 0x259F
	SMSGMailListResult                                      Server = 0x25A0
	SMSGMailCommandResult                                   Server = 0x25A1
	SMSGMailQueryNextTimeResult                             Server = 0x25A2
	SMSGNotifyReceivedMail                                  Server = 0x25A3
	SMSGLootResponse                                        Server = 0x25A4
	SMSGLootRemoved                                         Server = 0x25A5
	SMSGLootRelease                                         Server = 0x25A6
	SMSGLootMoneyNotify                                     Server = 0x25A7
	SMSGCoinRemoved                                         Server = 0x25A8
	SMSGStartLootRoll                                       Server = 0x25A9
	SMSGLootRoll                                            Server = 0x25AA
	SMSGLootRollWon                                         Server = 0x25AB
	SMSGLootAllPassed                                       Server = 0x25AC
	SMSGLootList                                            Server = 0x25AD
	SMSGTradeStatus                                         Server = 0x25AE
	SMSGTradeUpdated                                        Server = 0x25AF
	SMSGGetGarrisonInfoResult                               Server = 0x25B0
	SMSGGarrisonPlaceBuildingResult                         Server = 0x25B1
	SMSGGarrisonBuildingRemoved                             Server = 0x25B2
	SMSGGarrisonLearnBlueprintResult                        Server = 0x25B3
	SMSGGarrisonRequestBlueprintAndSpecializationDataResult Server = 0x25B4
	SMSGGarrisonAddFollowerResult                           Server = 0x25B5
	SMSGGarrisonRemoteInfo                                  Server = 0x25B6
	SMSGGarrisonDeleteResult                                Server = 0x25B7
	SMSGGarrisonPlotPlaced                                  Server = 0x25B8
	SMSGGarrisonPlotRemoved                                 Server = 0x25B9
	SMSGUpdateTalentData                                    Server = 0x25BA
	SMSGRespecWipeConfirm                                   Server = 0x25BB
	SMSGLearnTalentsFailed                                  Server = 0x25BC
	SMSGActiveGlyphs                                        Server = 0x25BD
	SMSGChat                                                Server = 0x25BE
	SMSGChatPlayerNotfound                                  Server = 0x25BF
	SMSGEmote                                               Server = 0x25C0
	SMSGAttackStart                                         Server = 0x25C1
	SMSGAttackStop                                          Server = 0x25C2
	SMSGAttackSwingError                                    Server = 0x25C3
	SMSGCanDuelResult                                       Server = 0x25C4
	SMSGDuelRequested                                       Server = 0x25C5
	SMSGDuelComplete                                        Server = 0x25C6
	SMSGDuelCountdown                                       Server = 0x25C7
	SMSGDuelWinner                                          Server = 0x25C8
	SMSGDuelInBounds                                        Server = 0x25C9
	SMSGDuelOutOfBounds                                     Server = 0x25CA
	SMSGPartyCommandResult                                  Server = 0x25CB
	SMSGGroupDecline                                        Server = 0x25CC
	SMSGGroupNewLeader                                      Server = 0x25CD
	SMSGQueryGuildInfoResponse                              Server = 0x25CE
	SMSGGuildCommandResult                                  Server = 0x25CF
	SMSGGuildEventPlayerJoined                              Server = 0x25D0
	SMSGGuildEventMotd                                      Server = 0x25D1
	SMSGInventoryChangeFailure                              Server = 0x25D2
	SMSGSellResponse                                        Server = 0x25D3
	SMSGItemPushResult                                      Server = 0x25D4
	SMSGTimeSyncRequest                                     Server = 0x25D5
	SMSGLoginSetTimeSpeed                                   Server = 0x25D6
	SMSGWeather                                             Server = 0x25D7
	SMSGPlayMusic                                           Server = 0x25D8
	SMSGPlaySound                                           Server = 0x25D9
	SMSGRandomRoll                                          Server = 0x25DA
	SMSGStandStateUpdate                                    Server = 0x25DB
	SMSGLevelUpInfo                                         Server = 0x25DC
	SMSGQueryTimeResponse                                   Server = 0x25DD
	SMSGMoveSetRunSpeed                                     Server = 0x25DE
	SMSGMoveSetRunBackSpeed                                 Server = 0x25DF
	SMSGMoveSetSwimSpeed                                    Server = 0x25E0
	SMSGMoveSetFlightSpeed                                  Server = 0x25E1
	SMSGMoveSetWalkSpeed                                    Server = 0x25E2
	SMSGMoveRoot                                            Server = 0x25E3
	SMSGMoveUnroot                                          Server = 0x25E4
	SMSGMoveSetWaterWalk                                    Server = 0x25E5
	SMSGMoveSetLandWalk                                     Server = 0x25E6
	SMSGTransferPending                                     Server = 0x25E7
	SMSGNewWorld                                            Server = 0x25E8
	SMSGGossipMessage                                       Server = 0x25E9
	SMSGGossipComplete                                      Server = 0x25EA
	SMSGVendorInventory                                     Server = 0x25EB
	SMSGBinderConfirm                                       Server = 0x25EC
	SMSGShowBank                                            Server = 0x25ED
	SMSGQueryPlayerNameResponse                             Server = 0x25EE
	SMSGQuestGiverStatus                                    Server = 0x25EF
	SMSGQuestUpdateComplete                                 Server = 0x25F0
	SMSGQuestUpdateAddCredit                                Server = 0x25F1
	SMSGQuestConfirmAccept                                  Server = 0x25F2
	SMSGInitializeFactions                                  Server = 0x25F3
	SMSGSetFactionStanding                                  Server = 0x25F4
	SMSGContactList                                         Server = 0x25F5
	SMSGFriendStatus                                        Server = 0x25F6
	SMSGLearnedSpells                                       Server = 0x25F7
	SMSGUnlearnedSpells                                     Server = 0x25F8
	SMSGCastFailed                                          Server = 0x25F9
	SMSGSpellCooldown                                       Server = 0x25FA
	SMSGCooldownEvent                                       Server = 0x25FB
	SMSGTaxiNodeStatus                                      Server = 0x25FC
	SMSGShowTaxiNodes                                       Server = 0x25FD
	SMSGActivateTaxiReply                                   Server = 0x25FE
	SMSGInstanceInfo                                        Server = 0x25FF
	SMSGInstanceReset                                       Server = 0x2600
	SMSGInstanceResetFailed                                 Server = 0x2601
	SMSGTotemCreated                                        Server = 0x2602
	SMSGTotemMoved                                          Server = 0x2603
	SMSGAccountToysUpdate                                   Server = 0x2604
	SMSGUpdateObject                                        Server = 0x2605
)

var serverNames = map[Server]string{
	SMSGAuthChallenge:                                       "SMSG_AUTH_CHALLENGE",
	SMSGAuthResponse:                                        "SMSG_AUTH_RESPONSE",
	SMSGPong:                                                "SMSG_PONG",
	SMSGCompressedPacket:                                    "SMSG_COMPRESSED_PACKET",
	SMSGLogoutResponse:                                      "SMSG_LOGOUT_RESPONSE",
	SMSGLogoutComplete:                                      "SMSG_LOGOUT_COMPLETE",
	SMSGPlayedTime:                                          "SMSG_PLAYED_TIME",
	SMSGCharacterRenameResult:                               "SMSG_CHARACTER_RENAME_RESULT",
	SMSGAllAchievementData:                                  "SMSG_ALL_ACHIEVEMENT_DATA",
	SMSGRespondInspectAchievements:                          "SMSG_RESPOND_INSPECT_ACHIEVEMENTS",
	SMSGCriteriaUpdate:                                      "SMSG_CRITERIA_UPDATE",
	SMSGCriteriaDeleted:                                     "SMSG_CRITERIA_DELETED",
	SMSGAchievementDeleted:                                  "SMSG_ACHIEVEMENT_DELETED",
	SMSGAchievementEarned:                                   "SMSG_ACHIEVEMENT_EARNED",
	SMSGBroadcastAchievement:                                "SMSG_BROADCAST_ACHIEVEMENT",
	SMSGGuildCriteriaUpdate:                                 "SMSG_GUILD_CRITERIA_UPDATE",
	SMSGGuildAchievementEarned:                              "SMSG_GUILD_ACHIEVEMENT_EARNED",
	SMSGGuildAchievementDeleted:                             "SMSG_GUILD_ACHIEVEMENT_DELETED",
	SMSGPvpSeason:                                           "SMSG_PVP_SEASON",
	SMSGAreaSpiritHealerTime:                                "SMSG_AREA_SPIRIT_HEALER_TIME",
	SMSGBattlefieldStatusNone:                               "SMSG_BATTLEFIELD_STATUS_NONE",
	SMSGBattlefieldStatusNeedConfirmation:                   "SMSG_BATTLEFIELD_STATUS_NEED_CONFIRMATION",
	SMSGBattlefieldStatusActive:                             "SMSG_BATTLEFIELD_STATUS_ACTIVE",
	SMSGBattlefieldStatusQueued:                             "SMSG_BATTLEFIELD_STATUS_QUEUED",
	SMSGBattlefieldStatusFailed:                             "SMSG_BATTLEFIELD_STATUS_FAILED",
	SMSGBattlefieldList:                                     "SMSG_BATTLEFIELD_LIST",
	SMSGPvpLogData:                                          "SMSG_PVP_LOG_DATA",
	SMSGBattlegroundPlayerPositions:                         "SMSG_BATTLEGROUND_PLAYER_POSITIONS",
	SMSGBattlegroundPlayerJoined:                            "SMSG_BATTLEGROUND_PLAYER_JOINED",
	SMSGBattlegroundPlayerLeft:                              "SMSG_BATTLEGROUND_PLAYER_LEFT",
	SMSGBattlegroundInit:                                    "SMSG_BATTLEGROUND_INIT",
	SMSGReportPvpPlayerAfkResult:                            "SMSG_REPORT_PVP_PLAYER_AFK_RESULT",
	SMSGMailListResult:                                      "SMSG_MAIL_LIST_RESULT",
	SMSGMailCommandResult:                                   "SMSG_MAIL_COMMAND_RESULT",
	SMSGMailQueryNextTimeResult:                             "SMSG_MAIL_QUERY_NEXT_TIME_RESULT",
	SMSGNotifyReceivedMail:                                  "SMSG_NOTIFY_RECEIVED_MAIL",
	SMSGLootResponse:                                        "SMSG_LOOT_RESPONSE",
	SMSGLootRemoved:                                         "SMSG_LOOT_REMOVED",
	SMSGLootRelease:                                         "SMSG_LOOT_RELEASE",
	SMSGLootMoneyNotify:                                     "SMSG_LOOT_MONEY_NOTIFY",
	SMSGCoinRemoved:                                         "SMSG_COIN_REMOVED",
	SMSGStartLootRoll:                                       "SMSG_START_LOOT_ROLL",
	SMSGLootRoll:                                            "SMSG_LOOT_ROLL",
	SMSGLootRollWon:                                         "SMSG_LOOT_ROLL_WON",
	SMSGLootAllPassed:                                       "SMSG_LOOT_ALL_PASSED",
	SMSGLootList:                                            "SMSG_LOOT_LIST",
	SMSGTradeStatus:                                         "SMSG_TRADE_STATUS",
	SMSGTradeUpdated:                                        "SMSG_TRADE_UPDATED",
	SMSGGetGarrisonInfoResult:                               "SMSG_GET_GARRISON_INFO_RESULT",
	SMSGGarrisonPlaceBuildingResult:                         "SMSG_GARRISON_PLACE_BUILDING_RESULT",
	SMSGGarrisonBuildingRemoved:                             "SMSG_GARRISON_BUILDING_REMOVED",
	SMSGGarrisonLearnBlueprintResult:                        "SMSG_GARRISON_LEARN_BLUEPRINT_RESULT",
	SMSGGarrisonRequestBlueprintAndSpecializationDataResult: "SMSG_GARRISON_REQUEST_BLUEPRINT_AND_SPECIALIZATION_DATA_RESULT",
	SMSGGarrisonAddFollowerResult:                           "SMSG_GARRISON_ADD_FOLLOWER_RESULT",
	SMSGGarrisonRemoteInfo:                                  "SMSG_GARRISON_REMOTE_INFO",
	SMSGGarrisonDeleteResult:                                "SMSG_GARRISON_DELETE_RESULT",
	SMSGGarrisonPlotPlaced:                                  "SMSG_GARRISON_PLOT_PLACED",
	SMSGGarrisonPlotRemoved:                                 "SMSG_GARRISON_PLOT_REMOVED",
	SMSGUpdateTalentData:                                    "SMSG_UPDATE_TALENT_DATA",
	SMSGRespecWipeConfirm:                                   "SMSG_RESPEC_WIPE_CONFIRM",
	SMSGLearnTalentsFailed:                                  "SMSG_LEARN_TALENTS_FAILED",
	SMSGActiveGlyphs:                                        "SMSG_ACTIVE_GLYPHS",
	SMSGChat:                                                "SMSG_CHAT",
	SMSGChatPlayerNotfound:                                  "SMSG_CHAT_PLAYER_NOTFOUND",
	SMSGEmote:                                               "SMSG_EMOTE",
	SMSGAttackStart:                                         "SMSG_ATTACK_START",
	SMSGAttackStop:                                          "SMSG_ATTACK_STOP",
	SMSGAttackSwingError:                                    "SMSG_ATTACK_SWING_ERROR",
	SMSGCanDuelResult:                                       "SMSG_CAN_DUEL_RESULT",
	SMSGDuelRequested:                                       "SMSG_DUEL_REQUESTED",
	SMSGDuelComplete:                                        "SMSG_DUEL_COMPLETE",
	SMSGDuelCountdown:                                       "SMSG_DUEL_COUNTDOWN",
	SMSGDuelWinner:                                          "SMSG_DUEL_WINNER",
	SMSGDuelInBounds:                                        "SMSG_DUEL_IN_BOUNDS",
	SMSGDuelOutOfBounds:                                     "SMSG_DUEL_OUT_OF_BOUNDS",
	SMSGPartyCommandResult:                                  "SMSG_PARTY_COMMAND_RESULT",
	SMSGGroupDecline:                                        "SMSG_GROUP_DECLINE",
	SMSGGroupNewLeader:                                      "SMSG_GROUP_NEW_LEADER",
	SMSGQueryGuildInfoResponse:                              "SMSG_QUERY_GUILD_INFO_RESPONSE",
	SMSGGuildCommandResult:                                  "SMSG_GUILD_COMMAND_RESULT",
	SMSGGuildEventPlayerJoined:                              "SMSG_GUILD_EVENT_PLAYER_JOINED",
	SMSGGuildEventMotd:                                      "SMSG_GUILD_EVENT_MOTD",
	SMSGInventoryChangeFailure:                              "SMSG_INVENTORY_CHANGE_FAILURE",
	SMSGSellResponse:                                        "SMSG_SELL_RESPONSE",
	SMSGItemPushResult:                                      "SMSG_ITEM_PUSH_RESULT",
	SMSGTimeSyncRequest:                                     "SMSG_TIME_SYNC_REQUEST",
	SMSGLoginSetTimeSpeed:                                   "SMSG_LOGIN_SET_TIME_SPEED",
	SMSGWeather:                                             "SMSG_WEATHER",
	SMSGPlayMusic:                                           "SMSG_PLAY_MUSIC",
	SMSGPlaySound:                                           "SMSG_PLAY_SOUND",
	SMSGRandomRoll:                                          "SMSG_RANDOM_ROLL",
	SMSGStandStateUpdate:                                    "SMSG_STAND_STATE_UPDATE",
	SMSGLevelUpInfo:                                         "SMSG_LEVEL_UP_INFO",
	SMSGQueryTimeResponse:                                   "SMSG_QUERY_TIME_RESPONSE",
	SMSGMoveSetRunSpeed:                                     "SMSG_MOVE_SET_RUN_SPEED",
	SMSGMoveSetRunBackSpeed:                                 "SMSG_MOVE_SET_RUN_BACK_SPEED",
	SMSGMoveSetSwimSpeed:                                    "SMSG_MOVE_SET_SWIM_SPEED",
	SMSGMoveSetFlightSpeed:                                  "SMSG_MOVE_SET_FLIGHT_SPEED",
	SMSGMoveSetWalkSpeed:                                    "SMSG_MOVE_SET_WALK_SPEED",
	SMSGMoveRoot:                                            "SMSG_MOVE_ROOT",
	SMSGMoveUnroot:                                          "SMSG_MOVE_UNROOT",
	SMSGMoveSetWaterWalk:                                    "SMSG_MOVE_SET_WATER_WALK",
	SMSGMoveSetLandWalk:                                     "SMSG_MOVE_SET_LAND_WALK",
	SMSGTransferPending:                                     "SMSG_TRANSFER_PENDING",
	SMSGNewWorld:                                            "SMSG_NEW_WORLD",
	SMSGGossipMessage:                                       "SMSG_GOSSIP_MESSAGE",
	SMSGGossipComplete:                                      "SMSG_GOSSIP_COMPLETE",
	SMSGVendorInventory:                                     "SMSG_VENDOR_INVENTORY",
	SMSGBinderConfirm:                                       "SMSG_BINDER_CONFIRM",
	SMSGShowBank:                                            "SMSG_SHOW_BANK",
	SMSGQueryPlayerNameResponse:                             "SMSG_QUERY_PLAYER_NAME_RESPONSE",
	SMSGQuestGiverStatus:                                    "SMSG_QUEST_GIVER_STATUS",
	SMSGQuestUpdateComplete:                                 "SMSG_QUEST_UPDATE_COMPLETE",
	SMSGQuestUpdateAddCredit:                                "SMSG_QUEST_UPDATE_ADD_CREDIT",
	SMSGQuestConfirmAccept:                                  "SMSG_QUEST_CONFIRM_ACCEPT",
	SMSGInitializeFactions:                                  "SMSG_INITIALIZE_FACTIONS",
	SMSGSetFactionStanding:                                  "SMSG_SET_FACTION_STANDING",
	SMSGContactList:                                         "SMSG_CONTACT_LIST",
	SMSGFriendStatus:                                        "SMSG_FRIEND_STATUS",
	SMSGLearnedSpells:                                       "SMSG_LEARNED_SPELLS",
	SMSGUnlearnedSpells:                                     "SMSG_UNLEARNED_SPELLS",
	SMSGCastFailed:                                          "SMSG_CAST_FAILED",
	SMSGSpellCooldown:                                       "SMSG_SPELL_COOLDOWN",
	SMSGCooldownEvent:                                       "SMSG_COOLDOWN_EVENT",
	SMSGTaxiNodeStatus:                                      "SMSG_TAXI_NODE_STATUS",
	SMSGShowTaxiNodes:                                       "SMSG_SHOW_TAXI_NODES",
	SMSGActivateTaxiReply:                                   "SMSG_ACTIVATE_TAXI_REPLY",
	SMSGInstanceInfo:                                        "SMSG_INSTANCE_INFO",
	SMSGInstanceReset:                                       "SMSG_INSTANCE_RESET",
	SMSGInstanceResetFailed:                                 "SMSG_INSTANCE_RESET_FAILED",
	SMSGTotemCreated:                                        "SMSG_TOTEM_CREATED",
	SMSGTotemMoved:                                          "SMSG_TOTEM_MOVED",
	SMSGAccountToysUpdate:                                   "SMSG_ACCOUNT_TOYS_UPDATE",
	SMSGUpdateObject:                                        "SMSG_UPDATE_OBJECT",
}
