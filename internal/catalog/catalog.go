package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bonus kinds shared by artifacts, skill-tree nodes, active skills,
// equipment stats and tower shop buffs.
const (
	KindTapPct     = "tap_pct"     // tap damage +%
	KindDPSPct     = "dps_pct"     // passive DPS +%
	KindGoldPct    = "gold_pct"    // gold reward +%
	KindCritChance = "crit_chance" // critical chance +points
	KindCritDamage = "crit_damage" // critical damage +points
	KindSoulPct    = "soul_pct"    // rebirth soul payout +%
	KindDropPct    = "drop_pct"    // equipment drop chance +points
	KindBossTime   = "boss_time"   // boss time limit +seconds
	KindTapFlat    = "tap_flat"    // flat tap damage (weapons)
	KindNuke       = "nuke"        // instant damage, value = tap damage multiplier
)

// Equipment slots.
const (
	SlotWeapon    = "weapon"
	SlotArmor     = "armor"
	SlotAccessory = "accessory"
)

// Rarity ids, lowest to highest.
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Effect is a bonus kind plus magnitude.
type Effect struct {
	Kind  string  `yaml:"kind" json:"kind"`
	Value float64 `yaml:"value" json:"value"`
}

// Trait is a fixed per-species reward multiplier bundle.
type Trait struct {
	GoldMult float64 `yaml:"gold_mult" json:"gold_mult"`
	DropMult float64 `yaml:"drop_mult" json:"drop_mult"`
}

// Monster is a species template. The ordered monster list doubles as the
// stage-bracket table: entry i sets the base HP for stages in bracket i.
type Monster struct {
	Name   string  `yaml:"name" json:"name"`
	Icon   string  `yaml:"icon" json:"icon"`
	Color  string  `yaml:"color" json:"color"`
	BaseHP float64 `yaml:"base_hp" json:"base_hp"`
	Trait  Trait   `yaml:"trait" json:"trait"`
}

// Boss is a stage-terminal encounter template.
type Boss struct {
	Name   string  `yaml:"name" json:"name"`
	Icon   string  `yaml:"icon" json:"icon"`
	Color  string  `yaml:"color" json:"color"`
	HPMult float64 `yaml:"hp_mult" json:"hp_mult"`
}

// World is a biome with a stage range and a monster roster.
type World struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	MinStage int      `yaml:"min_stage" json:"min_stage"`
	MaxStage int      `yaml:"max_stage" json:"max_stage"` // 0 = open-ended
	Monsters []string `yaml:"monsters" json:"monsters"`
}

// Hero contributes flat tap damage per level, bought with gold.
type Hero struct {
	ID         string  `yaml:"id" json:"id"`
	Name       string  `yaml:"name" json:"name"`
	BaseDamage float64 `yaml:"base_damage" json:"base_damage"`
	BaseCost   int64   `yaml:"base_cost" json:"base_cost"`
	CostGrowth float64 `yaml:"cost_growth" json:"cost_growth"`
}

// Companion contributes passive DPS per level, bought with gold.
type Companion struct {
	ID         string  `yaml:"id" json:"id"`
	Name       string  `yaml:"name" json:"name"`
	BaseDPS    float64 `yaml:"base_dps" json:"base_dps"`
	BaseCost   int64   `yaml:"base_cost" json:"base_cost"`
	CostGrowth float64 `yaml:"cost_growth" json:"cost_growth"`
}

// Artifact is a soul-bought permanent bonus that survives rebirth.
type Artifact struct {
	ID         string  `yaml:"id" json:"id"`
	Name       string  `yaml:"name" json:"name"`
	Effect     Effect  `yaml:"effect" json:"effect"` // value is per level
	BaseCost   int64   `yaml:"base_cost" json:"base_cost"`
	CostGrowth float64 `yaml:"cost_growth" json:"cost_growth"`
	MaxLevel   int     `yaml:"max_level" json:"max_level"` // 0 = unbounded
}

// Skill is an active ability with a cooldown and an optional timed effect.
type Skill struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	CooldownSec float64 `yaml:"cooldown_sec" json:"cooldown_sec"`
	DurationSec float64 `yaml:"duration_sec" json:"duration_sec"` // 0 = instant
	Effect      Effect  `yaml:"effect" json:"effect"`
}

// TreeNode is a passive skill-tree node leveled with skill points.
type TreeNode struct {
	ID            string `yaml:"id" json:"id"`
	Name          string `yaml:"name" json:"name"`
	MaxLevel      int    `yaml:"max_level" json:"max_level"`
	CostPerLevel  int    `yaml:"cost_per_level" json:"cost_per_level"`
	Requires      string `yaml:"requires" json:"requires"`
	RequiresLevel int    `yaml:"requires_level" json:"requires_level"`
	Effect        Effect `yaml:"effect" json:"effect"` // value is per level
}

// EquipmentTemplate is the static half of a generated equipment item.
type EquipmentTemplate struct {
	Name      string  `yaml:"name" json:"name"`
	Slot      string  `yaml:"slot" json:"slot"`
	Stat      string  `yaml:"stat" json:"stat"`
	BaseValue float64 `yaml:"base_value" json:"base_value"`
}

// Rarity is one rung of the rarity ladder.
type Rarity struct {
	ID        string  `yaml:"id" json:"id"`
	Name      string  `yaml:"name" json:"name"`
	Tier      int     `yaml:"tier" json:"tier"` // 1 (common) .. 5 (legendary)
	ValueMult float64 `yaml:"value_mult" json:"value_mult"`
	// DropPct is the cumulative-threshold chance when rolling rarity.
	DropPct float64 `yaml:"drop_pct" json:"drop_pct"`
	// BossBonusPct is added to DropPct when the source is a boss kill.
	BossBonusPct float64 `yaml:"boss_bonus_pct" json:"boss_bonus_pct"`
	// EnhanceCost is the common-stone cost per enhancement of an item
	// of this rarity.
	EnhanceCost int64 `yaml:"enhance_cost" json:"enhance_cost"`
}

// GachaHero is a summonable battle character.
type GachaHero struct {
	ID      string  `yaml:"id" json:"id"`
	Name    string  `yaml:"name" json:"name"`
	Rarity  string  `yaml:"rarity" json:"rarity"`
	BaseDPS float64 `yaml:"base_dps" json:"base_dps"`
}

// Achievement is an append-only unlock with a requirement predicate.
type Achievement struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	Stat      string `yaml:"stat" json:"stat"` // counter name, see game.StatValue
	Threshold int64  `yaml:"threshold" json:"threshold"`
	RewardGem int64  `yaml:"reward_gems" json:"reward_gems"`
}

// Mission is a daily mission definition.
type Mission struct {
	ID         string `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	Stat       string `yaml:"stat" json:"stat"`
	Goal       int64  `yaml:"goal" json:"goal"`
	RewardGold int64  `yaml:"reward_gold" json:"reward_gold"`
	RewardGem  int64  `yaml:"reward_gems" json:"reward_gems"`
}

// ExchangeReward is what a stone exchange offer pays out.
type ExchangeReward struct {
	Gold      int64            `yaml:"gold" json:"gold"`
	Gems      int64            `yaml:"gems" json:"gems"`
	Medals    int64            `yaml:"medals" json:"medals"`
	Stones    map[string]int64 `yaml:"stones" json:"stones"`
	Equipment string           `yaml:"equipment" json:"equipment"` // guaranteed rarity id
}

// ExchangeOffer is a weekly-limited stone barter.
type ExchangeOffer struct {
	ID          string           `yaml:"id" json:"id"`
	Name        string           `yaml:"name" json:"name"`
	Give        map[string]int64 `yaml:"give" json:"give"` // stones by rarity id
	Reward      ExchangeReward   `yaml:"reward" json:"reward"`
	WeeklyLimit int              `yaml:"weekly_limit" json:"weekly_limit"`
}

// TowerShopItem is a permanent buff bought with tower medals.
type TowerShopItem struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Cost   int64  `yaml:"cost" json:"cost"`
	Limit  int    `yaml:"limit" json:"limit"`
	Effect Effect `yaml:"effect" json:"effect"` // value is per purchase
}

// GemPack is a simulated IAP gem bundle.
type GemPack struct {
	ID    string  `yaml:"id" json:"id"`
	Name  string  `yaml:"name" json:"name"`
	Gems  int64   `yaml:"gems" json:"gems"`
	Bonus int64   `yaml:"bonus" json:"bonus"`
	Price float64 `yaml:"price" json:"price"`
}

// SpecialPack is a limited-purchase bundle.
type SpecialPack struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	CostGems  int64  `yaml:"cost_gems" json:"cost_gems"`
	Gold      int64  `yaml:"gold" json:"gold"`
	Souls     int64  `yaml:"souls" json:"souls"`
	Equipment string `yaml:"equipment" json:"equipment"` // guaranteed rarity id
	Limit     int    `yaml:"limit" json:"limit"`
}

// WeeklyPass grants a daily gem stipend while active.
type WeeklyPass struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	CostGems int64  `yaml:"cost_gems" json:"cost_gems"`
	DailyGem int64  `yaml:"daily_gems" json:"daily_gems"`
}

// Catalog is the immutable content catalog consumed by the engine.
// Swapping the data (via Load) must never require engine changes.
type Catalog struct {
	Monsters     []Monster           `yaml:"monsters" json:"monsters"`
	Bosses       []Boss              `yaml:"bosses" json:"bosses"`
	Worlds       []World             `yaml:"worlds" json:"worlds"`
	Heroes       []Hero              `yaml:"heroes" json:"heroes"`
	Companions   []Companion         `yaml:"companions" json:"companions"`
	Artifacts    []Artifact          `yaml:"artifacts" json:"artifacts"`
	Skills       []Skill             `yaml:"skills" json:"skills"`
	Tree         []TreeNode          `yaml:"skill_tree" json:"skill_tree"`
	Equipment    []EquipmentTemplate `yaml:"equipment" json:"equipment"`
	Rarities     []Rarity            `yaml:"rarities" json:"rarities"` // highest first
	GachaRates   map[string]float64  `yaml:"gacha_rates" json:"gacha_rates"`
	GachaRoster  []GachaHero         `yaml:"gacha_roster" json:"gacha_roster"`
	Achievements []Achievement       `yaml:"achievements" json:"achievements"`
	Missions     []Mission           `yaml:"missions" json:"missions"`
	Exchanges    []ExchangeOffer     `yaml:"exchanges" json:"exchanges"`
	TowerShop    []TowerShopItem     `yaml:"tower_shop" json:"tower_shop"`
	GemPacks     []GemPack           `yaml:"gem_packs" json:"gem_packs"`
	SpecialPacks []SpecialPack       `yaml:"special_packs" json:"special_packs"`
	WeeklyPasses []WeeklyPass        `yaml:"weekly_passes" json:"weekly_passes"`
}

// Load reads a YAML catalog file. Missing top-level tables fall back to
// the built-in content so a partial override stays playable.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks internal references so bad content fails at startup,
// not mid-session.
func (c *Catalog) Validate() error {
	if len(c.Monsters) == 0 {
		return fmt.Errorf("catalog: no monsters")
	}
	if len(c.Bosses) == 0 {
		return fmt.Errorf("catalog: no bosses")
	}
	if len(c.Rarities) == 0 {
		return fmt.Errorf("catalog: no rarities")
	}
	byName := map[string]bool{}
	for _, m := range c.Monsters {
		byName[m.Name] = true
	}
	for _, w := range c.Worlds {
		for _, name := range w.Monsters {
			if !byName[name] {
				return fmt.Errorf("catalog: world %q references unknown monster %q", w.ID, name)
			}
		}
	}
	for _, n := range c.Tree {
		if n.Requires != "" && c.TreeNode(n.Requires) == nil {
			return fmt.Errorf("catalog: tree node %q requires unknown node %q", n.ID, n.Requires)
		}
	}
	for _, g := range c.GachaRoster {
		if c.RarityByID(g.Rarity) == nil {
			return fmt.Errorf("catalog: gacha hero %q has unknown rarity %q", g.ID, g.Rarity)
		}
	}
	return nil
}

func (c *Catalog) HeroByID(id string) *Hero {
	for i := range c.Heroes {
		if c.Heroes[i].ID == id {
			return &c.Heroes[i]
		}
	}
	return nil
}

func (c *Catalog) CompanionByID(id string) *Companion {
	for i := range c.Companions {
		if c.Companions[i].ID == id {
			return &c.Companions[i]
		}
	}
	return nil
}

func (c *Catalog) ArtifactByID(id string) *Artifact {
	for i := range c.Artifacts {
		if c.Artifacts[i].ID == id {
			return &c.Artifacts[i]
		}
	}
	return nil
}

func (c *Catalog) SkillByID(id string) *Skill {
	for i := range c.Skills {
		if c.Skills[i].ID == id {
			return &c.Skills[i]
		}
	}
	return nil
}

func (c *Catalog) TreeNode(id string) *TreeNode {
	for i := range c.Tree {
		if c.Tree[i].ID == id {
			return &c.Tree[i]
		}
	}
	return nil
}

func (c *Catalog) MonsterByName(name string) *Monster {
	for i := range c.Monsters {
		if c.Monsters[i].Name == name {
			return &c.Monsters[i]
		}
	}
	return nil
}

func (c *Catalog) RarityByID(id string) *Rarity {
	for i := range c.Rarities {
		if c.Rarities[i].ID == id {
			return &c.Rarities[i]
		}
	}
	return nil
}

func (c *Catalog) GachaHeroByID(id string) *GachaHero {
	for i := range c.GachaRoster {
		if c.GachaRoster[i].ID == id {
			return &c.GachaRoster[i]
		}
	}
	return nil
}

// WorldForStage returns the world whose stage range covers the stage.
func (c *Catalog) WorldForStage(stage int) *World {
	for i := range c.Worlds {
		w := &c.Worlds[i]
		if stage >= w.MinStage && (w.MaxStage == 0 || stage <= w.MaxStage) {
			return w
		}
	}
	if len(c.Worlds) == 0 {
		return nil
	}
	return &c.Worlds[len(c.Worlds)-1]
}

func (c *Catalog) ExchangeByID(id string) *ExchangeOffer {
	for i := range c.Exchanges {
		if c.Exchanges[i].ID == id {
			return &c.Exchanges[i]
		}
	}
	return nil
}

func (c *Catalog) TowerShopItemByID(id string) *TowerShopItem {
	for i := range c.TowerShop {
		if c.TowerShop[i].ID == id {
			return &c.TowerShop[i]
		}
	}
	return nil
}

func (c *Catalog) GemPackByID(id string) *GemPack {
	for i := range c.GemPacks {
		if c.GemPacks[i].ID == id {
			return &c.GemPacks[i]
		}
	}
	return nil
}

func (c *Catalog) SpecialPackByID(id string) *SpecialPack {
	for i := range c.SpecialPacks {
		if c.SpecialPacks[i].ID == id {
			return &c.SpecialPacks[i]
		}
	}
	return nil
}

func (c *Catalog) WeeklyPassByID(id string) *WeeklyPass {
	for i := range c.WeeklyPasses {
		if c.WeeklyPasses[i].ID == id {
			return &c.WeeklyPasses[i]
		}
	}
	return nil
}

func (c *Catalog) MissionByID(id string) *Mission {
	for i := range c.Missions {
		if c.Missions[i].ID == id {
			return &c.Missions[i]
		}
	}
	return nil
}

func (c *Catalog) AchievementByID(id string) *Achievement {
	for i := range c.Achievements {
		if c.Achievements[i].ID == id {
			return &c.Achievements[i]
		}
	}
	return nil
}
