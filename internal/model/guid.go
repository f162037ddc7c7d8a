// Package model holds value types shared by packet definitions.
package model

import "fmt"

// HighGuid is the object kind stored in the top six bits of ObjectGuid.High.
type HighGuid uint8

const (
	HighGuidNull             HighGuid = 0
	HighGuidUniq             HighGuid = 1
	HighGuidPlayer           HighGuid = 2
	HighGuidItem             HighGuid = 3
	HighGuidWorldTransaction HighGuid = 4
	HighGuidStaticDoor       HighGuid = 5
	HighGuidTransport        HighGuid = 6
	HighGuidConversation     HighGuid = 7
	HighGuidCreature         HighGuid = 8
	HighGuidVehicle          HighGuid = 9
	HighGuidPet              HighGuid = 10
	HighGuidGameObject       HighGuid = 11
	HighGuidDynamicObject    HighGuid = 12
	HighGuidAreaTrigger      HighGuid = 13
	HighGuidCorpse           HighGuid = 14
	HighGuidLootObject       HighGuid = 15
	HighGuidSceneObject      HighGuid = 16
	HighGuidScenario         HighGuid = 17
	HighGuidAIGroup          HighGuid = 18
	HighGuidDynamicDoor      HighGuid = 19
	HighGuidClientActor      HighGuid = 20
	HighGuidVignette         HighGuid = 21
	HighGuidCallForHelp      HighGuid = 22
	HighGuidAIResource       HighGuid = 23
	HighGuidAILock           HighGuid = 24
	HighGuidAILockTicket     HighGuid = 25
	HighGuidChatChannel      HighGuid = 26
	HighGuidParty            HighGuid = 27
	HighGuidGuild            HighGuid = 28
	HighGuidWowAccount       HighGuid = 29
	HighGuidBNetAccount      HighGuid = 30
	HighGuidGMTask           HighGuid = 31
	HighGuidMobileSession    HighGuid = 32
	HighGuidRaidGroup        HighGuid = 33
	HighGuidSpell            HighGuid = 34
	HighGuidMail             HighGuid = 35
	HighGuidWebObj           HighGuid = 36
	HighGuidLFGObject        HighGuid = 37
	HighGuidLFGList          HighGuid = 38
	HighGuidUserRouter       HighGuid = 39
	HighGuidPVPQueueGroup    HighGuid = 40
	HighGuidUserClient       HighGuid = 41
	HighGuidPetBattle        HighGuid = 42
	HighGuidUniqUserClient   HighGuid = 43
	HighGuidBattlePet        HighGuid = 44
	HighGuidCommerceObj      HighGuid = 45
	HighGuidClientSession    HighGuid = 46
	HighGuidCast             HighGuid = 47
)

var highGuidNames = map[HighGuid]string{
	HighGuidNull:          "Null",
	HighGuidUniq:          "Uniq",
	HighGuidPlayer:        "Player",
	HighGuidItem:          "Item",
	HighGuidTransport:     "Transport",
	HighGuidCreature:      "Creature",
	HighGuidVehicle:       "Vehicle",
	HighGuidPet:           "Pet",
	HighGuidGameObject:    "GameObject",
	HighGuidDynamicObject: "DynamicObject",
	HighGuidAreaTrigger:   "AreaTrigger",
	HighGuidCorpse:        "Corpse",
	HighGuidLootObject:    "LootObject",
	HighGuidParty:         "Party",
	HighGuidGuild:         "Guild",
	HighGuidWowAccount:    "WowAccount",
	HighGuidBNetAccount:   "BNetAccount",
	HighGuidMail:          "Mail",
	HighGuidBattlePet:     "BattlePet",
	HighGuidCast:          "Cast",
}

func (h HighGuid) String() string {
	if name, ok := highGuidNames[h]; ok {
		return name
	}
	return fmt.Sprintf("HighGuid(%d)", uint8(h))
}

// Bit layout of the 128-bit guid.
//
//	High: type(6) realm(13) map(13) entry(23) subtype(6)
//	Low:  server(24) counter(40)      (map-bound objects)
//	Low:  counter(64)                 (players, items, global objects)
const (
	highTypeShift  = 58
	highRealmShift = 42
	highMapShift   = 29
	highEntryShift = 6

	realmMask   = 0x1FFF
	mapMask     = 0x1FFF
	entryMask   = 0x7FFFFF
	subTypeMask = 0x3F

	lowServerShift = 40
	serverMask     = 0xFFFFFF
	counterMask40  = 0xFFFFFFFFFF
)

// ObjectGuid is the 128-bit entity identifier used on the wire.
type ObjectGuid struct {
	High uint64
	Low  uint64
}

// EmptyGuid is the zero guid ("no object").
var EmptyGuid = ObjectGuid{}

// NewGlobalGuid creates a guid for objects not bound to a realm or map
// (parties, mail, battle pets, ...).
func NewGlobalGuid(high HighGuid, counter uint64) ObjectGuid {
	return ObjectGuid{High: uint64(high) << highTypeShift, Low: counter}
}

// NewRealmSpecificGuid creates a guid for objects bound to a realm only.
func NewRealmSpecificGuid(high HighGuid, realmID uint16, counter uint64) ObjectGuid {
	return ObjectGuid{
		High: uint64(high)<<highTypeShift | uint64(realmID&realmMask)<<highRealmShift,
		Low:  counter,
	}
}

// NewPlayerGuid creates a player guid.
func NewPlayerGuid(realmID uint16, counter uint64) ObjectGuid {
	return NewRealmSpecificGuid(HighGuidPlayer, realmID, counter)
}

// NewItemGuid creates an item guid.
func NewItemGuid(realmID uint16, counter uint64) ObjectGuid {
	return NewRealmSpecificGuid(HighGuidItem, realmID, counter)
}

// NewWorldObjectGuid creates a guid for a map-bound object (creature, gameobject, ...).
func NewWorldObjectGuid(high HighGuid, realmID, mapID uint16, entry uint32, counter uint64) ObjectGuid {
	return NewWorldObjectGuidExt(high, 0, realmID, mapID, 0, entry, counter)
}

// NewWorldObjectGuidExt is NewWorldObjectGuid with explicit sub type and server id.
func NewWorldObjectGuidExt(high HighGuid, subType uint8, realmID, mapID uint16, serverID, entry uint32, counter uint64) ObjectGuid {
	return ObjectGuid{
		High: uint64(high)<<highTypeShift |
			uint64(realmID&realmMask)<<highRealmShift |
			uint64(mapID&mapMask)<<highMapShift |
			uint64(entry&entryMask)<<highEntryShift |
			uint64(subType&subTypeMask),
		Low: uint64(serverID&serverMask)<<lowServerShift | counter&counterMask40,
	}
}

// IsEmpty reports whether g is the zero guid.
func (g ObjectGuid) IsEmpty() bool { return g.High == 0 && g.Low == 0 }

// Type returns the object kind.
func (g ObjectGuid) Type() HighGuid { return HighGuid(g.High >> highTypeShift) }

// RealmID returns the realm the object belongs to (0 for global guids).
func (g ObjectGuid) RealmID() uint16 { return uint16(g.High >> highRealmShift & realmMask) }

// MapID returns the map for map-bound guids.
func (g ObjectGuid) MapID() uint16 { return uint16(g.High >> highMapShift & mapMask) }

// Entry returns the template id for map-bound guids.
func (g ObjectGuid) Entry() uint32 { return uint32(g.High >> highEntryShift & entryMask) }

// SubType returns the low six bits of High.
func (g ObjectGuid) SubType() uint8 { return uint8(g.High & subTypeMask) }

// ServerID returns the spawning server id for map-bound guids.
func (g ObjectGuid) ServerID() uint32 {
	if !g.IsMapSpecific() {
		return 0
	}
	return uint32(g.Low >> lowServerShift & serverMask)
}

// Counter returns the per-type sequence number.
func (g ObjectGuid) Counter() uint64 {
	if g.IsMapSpecific() {
		return g.Low & counterMask40
	}
	return g.Low
}

// IsMapSpecific reports whether the guid embeds map/entry/server fields.
func (g ObjectGuid) IsMapSpecific() bool {
	switch g.Type() {
	case HighGuidWorldTransaction, HighGuidConversation, HighGuidCreature, HighGuidVehicle,
		HighGuidPet, HighGuidGameObject, HighGuidDynamicObject, HighGuidAreaTrigger,
		HighGuidCorpse, HighGuidLootObject, HighGuidSceneObject, HighGuidScenario,
		HighGuidAIGroup, HighGuidDynamicDoor, HighGuidVignette, HighGuidCallForHelp,
		HighGuidAIResource, HighGuidAILock, HighGuidAILockTicket, HighGuidCast:
		return true
	}
	return false
}

func (g ObjectGuid) IsPlayer() bool   { return !g.IsEmpty() && g.Type() == HighGuidPlayer }
func (g ObjectGuid) IsItem() bool     { return !g.IsEmpty() && g.Type() == HighGuidItem }
func (g ObjectGuid) IsCreature() bool { return g.Type() == HighGuidCreature }

// String formats the guid the way packet logs print it.
func (g ObjectGuid) String() string {
	if g.IsEmpty() {
		return "Guid-Empty"
	}
	if g.IsMapSpecific() {
		return fmt.Sprintf("%s-%d-%d-%d-%d-%d", g.Type(), g.RealmID(), g.ServerID(), g.MapID(), g.Entry(), g.Counter())
	}
	return fmt.Sprintf("%s-%d-%016X", g.Type(), g.RealmID(), g.Low)
}
