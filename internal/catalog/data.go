package catalog

// Default returns the built-in content catalog.
func Default() *Catalog {
	return &Catalog{
		// Ordered by stage bracket: entry i is the HP anchor for stages
		// i*10+1 .. i*10+10.
		Monsters: []Monster{
			{Name: "Slime", Icon: "slime", Color: "#7ec850", BaseHP: 10, Trait: Trait{GoldMult: 1, DropMult: 1}},
			{Name: "Bat", Icon: "bat", Color: "#6b6b8d", BaseHP: 12, Trait: Trait{GoldMult: 1, DropMult: 1.2}},
			{Name: "Goblin", Icon: "goblin", Color: "#4f8f4f", BaseHP: 14, Trait: Trait{GoldMult: 1.3, DropMult: 1}},
			{Name: "Skeleton", Icon: "skeleton", Color: "#d8d8c0", BaseHP: 15, Trait: Trait{GoldMult: 1, DropMult: 1.3}},
			{Name: "Wolf", Icon: "wolf", Color: "#8a8a8a", BaseHP: 16, Trait: Trait{GoldMult: 1.1, DropMult: 1.1}},
			{Name: "Orc", Icon: "orc", Color: "#3c6e3c", BaseHP: 18, Trait: Trait{GoldMult: 1.2, DropMult: 1}},
			{Name: "Ghost", Icon: "ghost", Color: "#bcd4e6", BaseHP: 19, Trait: Trait{GoldMult: 1, DropMult: 1.5}},
			{Name: "Harpy", Icon: "harpy", Color: "#c9a66b", BaseHP: 20, Trait: Trait{GoldMult: 1.25, DropMult: 1.1}},
			{Name: "Golem", Icon: "golem", Color: "#7d7461", BaseHP: 24, Trait: Trait{GoldMult: 1.4, DropMult: 0.8}},
			{Name: "Imp", Icon: "imp", Color: "#b03a48", BaseHP: 22, Trait: Trait{GoldMult: 1.5, DropMult: 1}},
			{Name: "Mimic", Icon: "mimic", Color: "#a5673f", BaseHP: 26, Trait: Trait{GoldMult: 2, DropMult: 1.5}},
			{Name: "Wyvern", Icon: "wyvern", Color: "#4a6fa5", BaseHP: 28, Trait: Trait{GoldMult: 1.3, DropMult: 1.3}},
			{Name: "Lich", Icon: "lich", Color: "#5e4b8b", BaseHP: 30, Trait: Trait{GoldMult: 1.5, DropMult: 1.4}},
			{Name: "Djinn", Icon: "djinn", Color: "#37a6a6", BaseHP: 32, Trait: Trait{GoldMult: 1.6, DropMult: 1.2}},
			{Name: "Chimera", Icon: "chimera", Color: "#8f4f2f", BaseHP: 35, Trait: Trait{GoldMult: 1.7, DropMult: 1.3}},
		},
		Bosses: []Boss{
			{Name: "Slime King", Icon: "slime-king", Color: "#57a639", HPMult: 8},
			{Name: "Bone Tyrant", Icon: "bone-tyrant", Color: "#e5e4d7", HPMult: 9},
			{Name: "Forest Warden", Icon: "warden", Color: "#2f6b2f", HPMult: 10},
			{Name: "Magma Fiend", Icon: "magma-fiend", Color: "#d1462f", HPMult: 11},
			{Name: "Storm Drake", Icon: "storm-drake", Color: "#3e5f8a", HPMult: 12},
			{Name: "Void Empress", Icon: "void-empress", Color: "#43285e", HPMult: 14},
		},
		Worlds: []World{
			{ID: "meadow", Name: "Green Meadow", MinStage: 1, MaxStage: 20, Monsters: []string{"Slime", "Bat", "Goblin", "Wolf"}},
			{ID: "crypt", Name: "Sunken Crypt", MinStage: 21, MaxStage: 40, Monsters: []string{"Skeleton", "Ghost", "Bat", "Lich"}},
			{ID: "peaks", Name: "Howling Peaks", MinStage: 41, MaxStage: 60, Monsters: []string{"Wolf", "Harpy", "Golem", "Wyvern"}},
			{ID: "furnace", Name: "Ember Furnace", MinStage: 61, MaxStage: 80, Monsters: []string{"Imp", "Golem", "Djinn", "Chimera"}},
			{ID: "rift", Name: "Shattered Rift", MinStage: 81, Monsters: []string{"Lich", "Djinn", "Mimic", "Chimera", "Wyvern"}},
		},
		Heroes: []Hero{
			{ID: "squire", Name: "Squire", BaseDamage: 1, BaseCost: 10, CostGrowth: 1.07},
			{ID: "archer", Name: "Archer", BaseDamage: 3, BaseCost: 60, CostGrowth: 1.08},
			{ID: "duelist", Name: "Duelist", BaseDamage: 8, BaseCost: 350, CostGrowth: 1.09},
			{ID: "berserker", Name: "Berserker", BaseDamage: 22, BaseCost: 2200, CostGrowth: 1.10},
			{ID: "spellblade", Name: "Spellblade", BaseDamage: 60, BaseCost: 16000, CostGrowth: 1.11},
			{ID: "paladin", Name: "Paladin", BaseDamage: 170, BaseCost: 120000, CostGrowth: 1.12},
			{ID: "shadowlord", Name: "Shadow Lord", BaseDamage: 500, BaseCost: 900000, CostGrowth: 1.13},
			{ID: "dragonknight", Name: "Dragon Knight", BaseDamage: 1500, BaseCost: 7000000, CostGrowth: 1.14},
		},
		Companions: []Companion{
			{ID: "fairy", Name: "Fairy", BaseDPS: 1, BaseCost: 25, CostGrowth: 1.08},
			{ID: "hound", Name: "Spirit Hound", BaseDPS: 4, BaseCost: 180, CostGrowth: 1.09},
			{ID: "raven", Name: "Storm Raven", BaseDPS: 12, BaseCost: 1200, CostGrowth: 1.10},
			{ID: "turtle", Name: "War Turtle", BaseDPS: 36, BaseCost: 9000, CostGrowth: 1.11},
			{ID: "phoenix", Name: "Ash Phoenix", BaseDPS: 110, BaseCost: 70000, CostGrowth: 1.12},
			{ID: "leviathan", Name: "Pond Leviathan", BaseDPS: 340, BaseCost: 550000, CostGrowth: 1.13},
		},
		Artifacts: []Artifact{
			{ID: "whetstone", Name: "Eternal Whetstone", Effect: Effect{Kind: KindTapPct, Value: 10}, BaseCost: 5, CostGrowth: 1.5, MaxLevel: 50},
			{ID: "banner", Name: "Battle Banner", Effect: Effect{Kind: KindDPSPct, Value: 10}, BaseCost: 5, CostGrowth: 1.5, MaxLevel: 50},
			{ID: "coinpurse", Name: "Bottomless Coinpurse", Effect: Effect{Kind: KindGoldPct, Value: 15}, BaseCost: 8, CostGrowth: 1.6, MaxLevel: 40},
			{ID: "lens", Name: "Hunter's Lens", Effect: Effect{Kind: KindCritChance, Value: 1}, BaseCost: 12, CostGrowth: 1.8, MaxLevel: 25},
			{ID: "fang", Name: "Serrated Fang", Effect: Effect{Kind: KindCritDamage, Value: 20}, BaseCost: 12, CostGrowth: 1.7, MaxLevel: 30},
			{ID: "urn", Name: "Soul Urn", Effect: Effect{Kind: KindSoulPct, Value: 5}, BaseCost: 20, CostGrowth: 2, MaxLevel: 20},
			{ID: "charm", Name: "Scavenger's Charm", Effect: Effect{Kind: KindDropPct, Value: 0.5}, BaseCost: 15, CostGrowth: 1.8, MaxLevel: 20},
			{ID: "hourglass", Name: "Cracked Hourglass", Effect: Effect{Kind: KindBossTime, Value: 2}, BaseCost: 18, CostGrowth: 2, MaxLevel: 15},
		},
		Skills: []Skill{
			{ID: "war_cry", Name: "War Cry", CooldownSec: 120, DurationSec: 30, Effect: Effect{Kind: KindTapPct, Value: 100}},
			{ID: "frenzy", Name: "Frenzy", CooldownSec: 180, DurationSec: 30, Effect: Effect{Kind: KindDPSPct, Value: 100}},
			{ID: "gold_rush", Name: "Gold Rush", CooldownSec: 240, DurationSec: 45, Effect: Effect{Kind: KindGoldPct, Value: 100}},
			{ID: "keen_eye", Name: "Keen Eye", CooldownSec: 150, DurationSec: 30, Effect: Effect{Kind: KindCritChance, Value: 25}},
			{ID: "meteor", Name: "Meteor", CooldownSec: 90, Effect: Effect{Kind: KindNuke, Value: 50}},
		},
		Tree: []TreeNode{
			{ID: "might", Name: "Might", MaxLevel: 20, CostPerLevel: 1, Effect: Effect{Kind: KindTapPct, Value: 5}},
			{ID: "command", Name: "Command", MaxLevel: 20, CostPerLevel: 1, Effect: Effect{Kind: KindDPSPct, Value: 5}},
			{ID: "greed", Name: "Greed", MaxLevel: 20, CostPerLevel: 1, Effect: Effect{Kind: KindGoldPct, Value: 5}},
			{ID: "precision", Name: "Precision", MaxLevel: 10, CostPerLevel: 2, Requires: "might", RequiresLevel: 5, Effect: Effect{Kind: KindCritChance, Value: 1}},
			{ID: "savagery", Name: "Savagery", MaxLevel: 10, CostPerLevel: 2, Requires: "precision", RequiresLevel: 3, Effect: Effect{Kind: KindCritDamage, Value: 15}},
			{ID: "harvest", Name: "Soul Harvest", MaxLevel: 10, CostPerLevel: 3, Requires: "greed", RequiresLevel: 5, Effect: Effect{Kind: KindSoulPct, Value: 4}},
			{ID: "fortune", Name: "Fortune", MaxLevel: 10, CostPerLevel: 2, Requires: "greed", RequiresLevel: 3, Effect: Effect{Kind: KindDropPct, Value: 0.4}},
			{ID: "patience", Name: "Patience", MaxLevel: 5, CostPerLevel: 3, Requires: "command", RequiresLevel: 5, Effect: Effect{Kind: KindBossTime, Value: 3}},
		},
		Equipment: []EquipmentTemplate{
			{Name: "Rusty Sword", Slot: SlotWeapon, Stat: KindTapFlat, BaseValue: 5},
			{Name: "Hunting Bow", Slot: SlotWeapon, Stat: KindTapFlat, BaseValue: 8},
			{Name: "War Axe", Slot: SlotWeapon, Stat: KindTapFlat, BaseValue: 12},
			{Name: "Runed Blade", Slot: SlotWeapon, Stat: KindTapFlat, BaseValue: 20},
			{Name: "Leather Vest", Slot: SlotArmor, Stat: KindDPSPct, BaseValue: 5},
			{Name: "Chain Mail", Slot: SlotArmor, Stat: KindDPSPct, BaseValue: 8},
			{Name: "Plate Harness", Slot: SlotArmor, Stat: KindDPSPct, BaseValue: 12},
			{Name: "Drake Scale", Slot: SlotArmor, Stat: KindDPSPct, BaseValue: 18},
			{Name: "Lucky Coin", Slot: SlotAccessory, Stat: KindGoldPct, BaseValue: 6},
			{Name: "Opal Ring", Slot: SlotAccessory, Stat: KindCritChance, BaseValue: 2},
			{Name: "Onyx Amulet", Slot: SlotAccessory, Stat: KindCritDamage, BaseValue: 25},
			{Name: "Talon Pendant", Slot: SlotAccessory, Stat: KindGoldPct, BaseValue: 10},
		},
		// Highest first: rarity rolls walk this ladder cumulatively.
		Rarities: []Rarity{
			{ID: RarityLegendary, Name: "Legendary", Tier: 5, ValueMult: 10, DropPct: 1, BossBonusPct: 2, EnhanceCost: 5},
			{ID: RarityEpic, Name: "Epic", Tier: 4, ValueMult: 5, DropPct: 4, BossBonusPct: 4, EnhanceCost: 4},
			{ID: RarityRare, Name: "Rare", Tier: 3, ValueMult: 3, DropPct: 10, BossBonusPct: 6, EnhanceCost: 3},
			{ID: RarityUncommon, Name: "Uncommon", Tier: 2, ValueMult: 1.8, DropPct: 25, BossBonusPct: 8, EnhanceCost: 2},
			{ID: RarityCommon, Name: "Common", Tier: 1, ValueMult: 1, DropPct: 100, BossBonusPct: 0, EnhanceCost: 1},
		},
		GachaRates: map[string]float64{
			RarityLegendary: 1,
			RarityEpic:      5,
			RarityRare:      14,
			RarityUncommon:  30,
		},
		GachaRoster: []GachaHero{
			{ID: "militia", Name: "Town Militia", Rarity: RarityCommon, BaseDPS: 10},
			{ID: "torchbearer", Name: "Torchbearer", Rarity: RarityCommon, BaseDPS: 12},
			{ID: "slinger", Name: "Stone Slinger", Rarity: RarityCommon, BaseDPS: 14},
			{ID: "monk", Name: "Wandering Monk", Rarity: RarityUncommon, BaseDPS: 30},
			{ID: "pikeman", Name: "Pikeman", Rarity: RarityUncommon, BaseDPS: 34},
			{ID: "alchemist", Name: "Alchemist", Rarity: RarityUncommon, BaseDPS: 38},
			{ID: "valkyrie", Name: "Valkyrie", Rarity: RarityRare, BaseDPS: 90},
			{ID: "warlock", Name: "Warlock", Rarity: RarityRare, BaseDPS: 100},
			{ID: "frostmage", Name: "Frost Mage", Rarity: RarityEpic, BaseDPS: 260},
			{ID: "sunpriest", Name: "Sun Priest", Rarity: RarityEpic, BaseDPS: 300},
			{ID: "voidwalker", Name: "Voidwalker", Rarity: RarityLegendary, BaseDPS: 900},
			{ID: "worldbreaker", Name: "Worldbreaker", Rarity: RarityLegendary, BaseDPS: 1100},
		},
		Achievements: []Achievement{
			{ID: "first_blood", Name: "First Blood", Stat: "kills", Threshold: 1, RewardGem: 5},
			{ID: "hundred_kills", Name: "Centurion", Stat: "kills", Threshold: 100, RewardGem: 10},
			{ID: "slaughter", Name: "Slaughterhouse", Stat: "kills", Threshold: 10000, RewardGem: 50},
			{ID: "stage_10", Name: "Explorer", Stat: "max_stage", Threshold: 10, RewardGem: 10},
			{ID: "stage_100", Name: "Conqueror", Stat: "max_stage", Threshold: 100, RewardGem: 50},
			{ID: "stage_500", Name: "Worldwalker", Stat: "max_stage", Threshold: 500, RewardGem: 200},
			{ID: "gold_million", Name: "Millionaire", Stat: "total_gold", Threshold: 1000000, RewardGem: 30},
			{ID: "first_rebirth", Name: "Born Again", Stat: "rebirths", Threshold: 1, RewardGem: 50},
			{ID: "collector", Name: "Collector", Stat: "equipment", Threshold: 10, RewardGem: 20},
			{ID: "summoner", Name: "Summoner", Stat: "summons", Threshold: 50, RewardGem: 25},
			{ID: "tower_10", Name: "Tower Climber", Stat: "tower_floor", Threshold: 10, RewardGem: 30},
			{ID: "boss_slayer", Name: "Boss Slayer", Stat: "boss_kills", Threshold: 25, RewardGem: 40},
		},
		Missions: []Mission{
			{ID: "m_kills", Name: "Defeat 200 monsters", Stat: "kills", Goal: 200, RewardGold: 2000, RewardGem: 5},
			{ID: "m_taps", Name: "Tap 500 times", Stat: "taps", Goal: 500, RewardGold: 1500, RewardGem: 5},
			{ID: "m_boss", Name: "Defeat 3 bosses", Stat: "boss_kills", Goal: 3, RewardGold: 3000, RewardGem: 8},
			{ID: "m_upgrade", Name: "Buy 20 upgrades", Stat: "upgrades", Goal: 20, RewardGold: 2500, RewardGem: 5},
			{ID: "m_summon", Name: "Summon 5 heroes", Stat: "summons", Goal: 5, RewardGem: 10},
			{ID: "m_tower", Name: "Attempt the tower", Stat: "tower_attempts", Goal: 1, RewardGem: 10},
		},
		Exchanges: []ExchangeOffer{
			{ID: "x_gold", Name: "Common stones for gold", Give: map[string]int64{RarityCommon: 10}, Reward: ExchangeReward{Gold: 5000}, WeeklyLimit: 5},
			{ID: "x_up_uncommon", Name: "Forge uncommon stone", Give: map[string]int64{RarityCommon: 5}, Reward: ExchangeReward{Stones: map[string]int64{RarityUncommon: 1}}, WeeklyLimit: 10},
			{ID: "x_up_rare", Name: "Forge rare stone", Give: map[string]int64{RarityUncommon: 5}, Reward: ExchangeReward{Stones: map[string]int64{RarityRare: 1}}, WeeklyLimit: 5},
			{ID: "x_medals", Name: "Rare stones for medals", Give: map[string]int64{RarityRare: 2}, Reward: ExchangeReward{Medals: 20}, WeeklyLimit: 3},
			{ID: "x_epic_gear", Name: "Guaranteed epic gear", Give: map[string]int64{RarityEpic: 3}, Reward: ExchangeReward{Equipment: RarityEpic}, WeeklyLimit: 1},
			{ID: "x_gems", Name: "Legendary stone for gems", Give: map[string]int64{RarityLegendary: 1}, Reward: ExchangeReward{Gems: 120}, WeeklyLimit: 1},
		},
		TowerShop: []TowerShopItem{
			{ID: "t_tap", Name: "Champion's Gauntlet", Cost: 50, Limit: 10, Effect: Effect{Kind: KindTapPct, Value: 10}},
			{ID: "t_dps", Name: "Legion Standard", Cost: 50, Limit: 10, Effect: Effect{Kind: KindDPSPct, Value: 10}},
			{ID: "t_gold", Name: "Tithe Seal", Cost: 40, Limit: 10, Effect: Effect{Kind: KindGoldPct, Value: 10}},
			{ID: "t_crit", Name: "Sharpshooter Badge", Cost: 80, Limit: 5, Effect: Effect{Kind: KindCritChance, Value: 2}},
			{ID: "t_time", Name: "Sand of Ages", Cost: 100, Limit: 3, Effect: Effect{Kind: KindBossTime, Value: 5}},
		},
		GemPacks: []GemPack{
			{ID: "g_small", Name: "Pouch of Gems", Gems: 100, Bonus: 0, Price: 0.99},
			{ID: "g_medium", Name: "Bag of Gems", Gems: 550, Bonus: 50, Price: 4.99},
			{ID: "g_large", Name: "Chest of Gems", Gems: 1200, Bonus: 200, Price: 9.99},
		},
		SpecialPacks: []SpecialPack{
			{ID: "s_starter", Name: "Starter Pack", CostGems: 50, Gold: 10000, Equipment: RarityRare, Limit: 1},
			{ID: "s_rebirth", Name: "Rebirth Pack", CostGems: 300, Souls: 200, Equipment: RarityEpic, Limit: 1},
		},
		WeeklyPasses: []WeeklyPass{
			{ID: "w_gem", Name: "Gem Pass", CostGems: 100, DailyGem: 30},
		},
	}
}
