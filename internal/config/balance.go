package config

// Balance holds gameplay balance configuration
type Balance struct {
	// Stage progression
	MonstersPerStage int     `yaml:"monsters_per_stage" json:"monsters_per_stage"`
	BossEveryStages  int     `yaml:"boss_every_stages" json:"boss_every_stages"`
	MonsterHPScaling float64 `yaml:"monster_hp_scaling" json:"monster_hp_scaling"`
	StageBracketSize int     `yaml:"stage_bracket_size" json:"stage_bracket_size"`
	BossTimeLimitSec float64 `yaml:"boss_time_limit_sec" json:"boss_time_limit_sec"`

	// Rewards
	GoldPerHPRatio     float64 `yaml:"gold_per_hp_ratio" json:"gold_per_hp_ratio"`
	BossGoldMultiplier float64 `yaml:"boss_gold_multiplier" json:"boss_gold_multiplier"`
	RareSpawnPct       float64 `yaml:"rare_spawn_pct" json:"rare_spawn_pct"`
	RareRewardMin      float64 `yaml:"rare_reward_min" json:"rare_reward_min"`
	RareRewardMax      float64 `yaml:"rare_reward_max" json:"rare_reward_max"`
	ChestSpawnPct      float64 `yaml:"chest_spawn_pct" json:"chest_spawn_pct"`
	ChestGoldMin       int64   `yaml:"chest_gold_min" json:"chest_gold_min"`
	ChestGoldMax       int64   `yaml:"chest_gold_max" json:"chest_gold_max"`
	ChestGemPct        float64 `yaml:"chest_gem_pct" json:"chest_gem_pct"`
	ChestLuckyPct      float64 `yaml:"chest_lucky_pct" json:"chest_lucky_pct"`

	// Combat
	BaseCritChancePct float64 `yaml:"base_crit_chance_pct" json:"base_crit_chance_pct"`
	BaseCritDamagePct float64 `yaml:"base_crit_damage_pct" json:"base_crit_damage_pct"`

	// Equipment drops
	DropChancePct     float64 `yaml:"drop_chance_pct" json:"drop_chance_pct"`
	BossDropChancePct float64 `yaml:"boss_drop_chance_pct" json:"boss_drop_chance_pct"`
	EnhanceMaxLevel   int     `yaml:"enhance_max_level" json:"enhance_max_level"`
	EnhanceStepPct    float64 `yaml:"enhance_step_pct" json:"enhance_step_pct"`

	// Rebirth
	MinRebirthStage  int     `yaml:"min_rebirth_stage" json:"min_rebirth_stage"`
	SoulsPerStage    float64 `yaml:"souls_per_stage" json:"souls_per_stage"`
	SoulsScaling     float64 `yaml:"souls_scaling" json:"souls_scaling"`
	SkillPointStages int     `yaml:"skill_point_stages" json:"skill_point_stages"`

	// Gacha
	GachaHardPity  int   `yaml:"gacha_hard_pity" json:"gacha_hard_pity"`
	GachaSoftPity  int   `yaml:"gacha_soft_pity" json:"gacha_soft_pity"`
	SummonGemCost  int64 `yaml:"summon_gem_cost" json:"summon_gem_cost"`
	MultiSummonQty int   `yaml:"multi_summon_qty" json:"multi_summon_qty"`
	RosterLimit    int   `yaml:"roster_limit" json:"roster_limit"`

	// Tower
	TowerDailyAttempts  int     `yaml:"tower_daily_attempts" json:"tower_daily_attempts"`
	TowerTimeLimitSec   float64 `yaml:"tower_time_limit_sec" json:"tower_time_limit_sec"`
	TowerBossBaseHP     float64 `yaml:"tower_boss_base_hp" json:"tower_boss_base_hp"`
	TowerBossHPGrowth   float64 `yaml:"tower_boss_hp_growth" json:"tower_boss_hp_growth"`
	TowerMedalBase      int64   `yaml:"tower_medal_base" json:"tower_medal_base"`
	TowerMedalPerFloors int     `yaml:"tower_medal_per_floors" json:"tower_medal_per_floors"`
	ExtraAttemptGems    int64   `yaml:"extra_attempt_gems" json:"extra_attempt_gems"`

	// Lucky time
	LuckyDurationSec float64 `yaml:"lucky_duration_sec" json:"lucky_duration_sec"`
	LuckyGoldMult    float64 `yaml:"lucky_gold_mult" json:"lucky_gold_mult"`
	LuckyDropMult    float64 `yaml:"lucky_drop_mult" json:"lucky_drop_mult"`

	// Offline reward
	OfflineMaxSec        float64 `yaml:"offline_max_sec" json:"offline_max_sec"`
	OfflineEfficiencyPct float64 `yaml:"offline_efficiency_pct" json:"offline_efficiency_pct"`

	// Daily bonus
	DailyBonusGold int64 `yaml:"daily_bonus_gold" json:"daily_bonus_gold"`
	DailyBonusGems int64 `yaml:"daily_bonus_gems" json:"daily_bonus_gems"`

	// Weekly cycles
	ExchangeResetDays int `yaml:"exchange_reset_days" json:"exchange_reset_days"`
	WeeklyPassDays    int `yaml:"weekly_pass_days" json:"weekly_pass_days"`
}

// Default returns the default balance configuration
func Default() Balance {
	return Balance{
		MonstersPerStage: 10,
		BossEveryStages:  5,
		MonsterHPScaling: 1.155,
		StageBracketSize: 10,
		BossTimeLimitSec: 30,

		GoldPerHPRatio:     0.12,
		BossGoldMultiplier: 5,
		RareSpawnPct:       5,
		RareRewardMin:      2,
		RareRewardMax:      3,
		ChestSpawnPct:      4,
		ChestGoldMin:       50,
		ChestGoldMax:       500,
		ChestGemPct:        15,
		ChestLuckyPct:      10,

		BaseCritChancePct: 5,
		BaseCritDamagePct: 200,

		DropChancePct:     3,
		BossDropChancePct: 25,
		EnhanceMaxLevel:   99,
		EnhanceStepPct:    8,

		MinRebirthStage:  100,
		SoulsPerStage:    1,
		SoulsScaling:     1.1,
		SkillPointStages: 50,

		GachaHardPity:  100,
		GachaSoftPity:  10,
		SummonGemCost:  100,
		MultiSummonQty: 10,
		RosterLimit:    6,

		TowerDailyAttempts:  3,
		TowerTimeLimitSec:   60,
		TowerBossBaseHP:     5000,
		TowerBossHPGrowth:   1.22,
		TowerMedalBase:      10,
		TowerMedalPerFloors: 5,
		ExtraAttemptGems:    50,

		LuckyDurationSec: 60,
		LuckyGoldMult:    2,
		LuckyDropMult:    2,

		OfflineMaxSec:        8 * 60 * 60,
		OfflineEfficiencyPct: 60,

		DailyBonusGold: 1000,
		DailyBonusGems: 30,

		ExchangeResetDays: 7,
		WeeklyPassDays:    7,
	}
}

// Casual is a preset with forgiving timers and an earlier rebirth floor.
func Casual() Balance {
	cfg := Default()
	cfg.BossTimeLimitSec = 45
	cfg.TowerTimeLimitSec = 90
	cfg.MinRebirthStage = 60
	cfg.TowerDailyAttempts = 5
	return cfg
}

// Hard is a preset with tighter timers and steeper HP growth.
func Hard() Balance {
	cfg := Default()
	cfg.BossTimeLimitSec = 20
	cfg.TowerTimeLimitSec = 45
	cfg.MonsterHPScaling = 1.18
	return cfg
}
