package game

import "time"

type EventType string

const (
	EventMonsterSpawned EventType = "monster_spawned"
	EventDamageDealt    EventType = "damage_dealt"
	EventMonsterKilled  EventType = "monster_killed"
	EventBossTimeout    EventType = "boss_timeout"
	EventLootDropped    EventType = "loot_dropped"
	EventStoneGained    EventType = "stone_gained"
	EventChestCollected EventType = "chest_collected"
	EventChestsOpened   EventType = "chests_opened"
	EventLuckyStarted   EventType = "lucky_started"
	EventLuckyEnded     EventType = "lucky_ended"
	EventLuckyStock     EventType = "lucky_stock"
	EventTowerDefeated  EventType = "tower_defeated"
	EventTowerFailed    EventType = "tower_failed"
)

// Event is a fire-and-forget notification to the presentation layer.
// No return value is consumed; handlers must not call back into the
// engine while handling.
type Event struct {
	Type    EventType      `json:"type"`
	At      time.Time      `json:"at"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Emitter fans events out to subscribers synchronously, in
// subscription order.
type Emitter struct {
	subs []func(Event)
}

func (em *Emitter) Subscribe(fn func(Event)) {
	em.subs = append(em.subs, fn)
}

func (em *Emitter) emit(ev Event) {
	for _, fn := range em.subs {
		fn(ev)
	}
}
