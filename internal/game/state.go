package game

import (
	"time"

	"tapdungeon/internal/catalog"
)

// Lifetime counter names shared by achievements and daily missions.
const (
	StatKills         = "kills"
	StatBossKills     = "boss_kills"
	StatTaps          = "taps"
	StatUpgrades      = "upgrades"
	StatSummons       = "summons"
	StatRebirths      = "rebirths"
	StatTowerAttempts = "tower_attempts"
	StatSkillsUsed    = "skills_used"
)

// Equipment is one generated item instance. Names are unique across
// inventory plus equipped slots; ids are unique per session.
type Equipment struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Slot         string  `json:"slot"`
	Stat         string  `json:"stat"`
	Value        float64 `json:"value"`
	Rarity       string  `json:"rarity"`
	EnhanceLevel int     `json:"enhance_level"`
}

// ActiveEffect is a timed buff from an active skill.
type ActiveEffect struct {
	ID      string    `json:"id"`
	Kind    string    `json:"kind"`
	Value   float64   `json:"value"`
	Expires time.Time `json:"expires"`
}

// MonsterPhase guards kill resolution: damage from taps and from the
// tick can both push HP past zero in the same slice, and only the
// first crossing may run kill side effects.
type MonsterPhase string

const (
	MonsterAlive   MonsterPhase = "alive"
	MonsterRetired MonsterPhase = "retired"
)

// Monster is the single live encounter. Transient: not persisted, a
// fresh one is spawned after restore.
type Monster struct {
	Name      string       `json:"name"`
	Icon      string       `json:"icon"`
	Color     string       `json:"color"`
	MaxHP     float64      `json:"max_hp"`
	CurrentHP float64      `json:"current_hp"`
	IsBoss    bool         `json:"is_boss"`
	IsRare    bool         `json:"is_rare"`
	RareMult  float64      `json:"rare_mult"`
	Trait     catalog.Trait `json:"trait"`
	Phase     MonsterPhase `json:"phase"`
}

// TowerState is the isolated boss-rush sub-game.
type TowerState struct {
	CurrentFloor  int     `json:"current_floor"`
	MaxFloor      int     `json:"max_floor"`
	AttemptsUsed  int     `json:"attempts_used"`
	AttemptsDate  string  `json:"attempts_date"`
	ExtraAttempts int     `json:"extra_attempts"`
	InProgress    bool    `json:"in_progress"`
	BossHP        float64 `json:"boss_hp"`
	BossMaxHP     float64 `json:"boss_max_hp"`
	TimeLeft      float64 `json:"time_left"`
}

// MissionState tracks the daily mission cycle.
type MissionState struct {
	LastResetDate   string           `json:"last_reset_date"`
	Progress        map[string]int64 `json:"progress"`
	Claimed         map[string]bool  `json:"claimed"`
	AllClaimedBonus bool             `json:"all_claimed_bonus"`
}

// LuckyState is the consumable global buff (gold x2, drops x2).
type LuckyState struct {
	Stock  int       `json:"stock"`
	Active bool      `json:"active"`
	EndsAt time.Time `json:"ends_at"`
}

// GameState is the one aggregate owned by the engine. Everything in it
// is plain data so it round-trips through the save file verbatim.
type GameState struct {
	Gold            int64            `json:"gold"`
	Souls           int64            `json:"souls"`
	Gems            int64            `json:"gems"`
	TowerMedals     int64            `json:"tower_medals"`
	Stones          map[string]int64 `json:"stones"`
	TotalGoldEarned int64            `json:"total_gold_earned"`

	CurrentStage    int `json:"current_stage"`
	MonstersKilled  int `json:"monsters_killed"`
	MaxStageReached int `json:"max_stage_reached"`

	HeroLevels      map[string]int `json:"hero_levels"`
	CompanionLevels map[string]int `json:"companion_levels"`
	ArtifactLevels  map[string]int `json:"artifact_levels"`

	Inventory []Equipment          `json:"inventory"`
	Equipped  map[string]Equipment `json:"equipped"` // keyed by slot

	SkillCooldowns map[string]time.Time `json:"skill_cooldowns"`
	ActiveEffects  []ActiveEffect       `json:"active_effects"`

	SkillTreeLevels   map[string]int `json:"skill_tree_levels"`
	SkillPointsEarned int            `json:"skill_points_earned"`
	SkillPointsSpent  int            `json:"skill_points_spent"`

	SummonedHeroes map[string]int `json:"summoned_heroes"`
	BattleRoster   []string       `json:"battle_roster"`
	GachaPity      int            `json:"gacha_pity"`

	Tower    TowerState   `json:"tower"`
	Missions MissionState `json:"missions"`

	ExchangeCounts  map[string]int `json:"exchange_counts"`
	ExchangeResetAt time.Time      `json:"exchange_reset_at"`

	TowerShopPurchases   map[string]int       `json:"tower_shop_purchases"`
	SpecialPackPurchases map[string]int       `json:"special_pack_purchases"`
	WeeklyPassExpires    map[string]time.Time `json:"weekly_pass_expires"`

	DiscoveredMonsters   map[string]bool `json:"discovered_monsters"`
	DiscoveredBosses     map[string]bool `json:"discovered_bosses"`
	ObtainedEquipment    map[string]bool `json:"obtained_equipment"`
	AchievementsUnlocked map[string]bool `json:"achievements_unlocked"`
	AchievementsClaimed  map[string]bool `json:"achievements_claimed"`

	ChestStock int        `json:"chest_stock"`
	Lucky      LuckyState `json:"lucky"`

	LastDailyBonus string           `json:"last_daily_bonus"`
	Stats          map[string]int64 `json:"stats"`

	SavedAt time.Time `json:"saved_at"`
}

// NewGameState returns the default (fresh session) state.
func NewGameState() *GameState {
	return &GameState{
		CurrentStage:    1,
		MaxStageReached: 1,
		Stones:          map[string]int64{},
		HeroLevels:      map[string]int{},
		CompanionLevels: map[string]int{},
		ArtifactLevels:  map[string]int{},
		Inventory:       []Equipment{},
		Equipped:        map[string]Equipment{},
		SkillCooldowns:  map[string]time.Time{},
		ActiveEffects:   []ActiveEffect{},
		SkillTreeLevels: map[string]int{},
		SummonedHeroes:  map[string]int{},
		BattleRoster:    []string{},
		Tower: TowerState{
			CurrentFloor: 1,
			MaxFloor:     0,
		},
		Missions: MissionState{
			Progress: map[string]int64{},
			Claimed:  map[string]bool{},
		},
		ExchangeCounts:       map[string]int{},
		TowerShopPurchases:   map[string]int{},
		SpecialPackPurchases: map[string]int{},
		WeeklyPassExpires:    map[string]time.Time{},
		DiscoveredMonsters:   map[string]bool{},
		DiscoveredBosses:     map[string]bool{},
		ObtainedEquipment:    map[string]bool{},
		AchievementsUnlocked: map[string]bool{},
		AchievementsClaimed:  map[string]bool{},
		Stats:                map[string]int64{},
	}
}

// StatValue resolves a counter name against state, covering both the
// Stats map and derived values used by achievement predicates.
func (s *GameState) StatValue(name string) int64 {
	switch name {
	case "total_gold":
		return s.TotalGoldEarned
	case "max_stage":
		return int64(s.MaxStageReached)
	case "equipment":
		return int64(len(s.ObtainedEquipment))
	case "tower_floor":
		return int64(s.Tower.MaxFloor)
	default:
		return s.Stats[name]
	}
}
