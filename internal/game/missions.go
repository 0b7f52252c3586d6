package game

import "fmt"

// MissionView is the query view of one daily mission.
type MissionView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Goal       int64  `json:"goal"`
	Progress   int64  `json:"progress"`
	Claimed    bool   `json:"claimed"`
	RewardGold int64  `json:"reward_gold"`
	RewardGems int64  `json:"reward_gems"`
}

// AchievementView is the query view of one achievement.
type AchievementView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Threshold int64  `json:"threshold"`
	Current   int64  `json:"current"`
	Unlocked  bool   `json:"unlocked"`
	Claimed   bool   `json:"claimed"`
	RewardGem int64  `json:"reward_gems"`
}

// ensureDailyReset clears mission progress on the first touch of a new
// day. Claims from the previous day are forfeited, not carried.
func (e *Engine) ensureDailyReset() {
	today := e.today()
	if e.state.Missions.LastResetDate == today {
		return
	}
	e.state.Missions.LastResetDate = today
	e.state.Missions.Progress = map[string]int64{}
	e.state.Missions.Claimed = map[string]bool{}
	e.state.Missions.AllClaimedBonus = false
}

// bumpMissions mirrors a lifetime counter increment into today's
// mission progress.
func (e *Engine) bumpMissions(stat string, n int64) {
	e.ensureDailyReset()
	for _, m := range e.catalog.Missions {
		if m.Stat != stat || e.state.Missions.Claimed[m.ID] {
			continue
		}
		p := e.state.Missions.Progress[m.ID] + n
		if p > m.Goal {
			p = m.Goal
		}
		e.state.Missions.Progress[m.ID] = p
	}
}

// checkAchievements unlocks every achievement whose counter has
// crossed its threshold. Unlocks are append-only; rewards are claimed
// separately.
func (e *Engine) checkAchievements() {
	for _, a := range e.catalog.Achievements {
		if e.state.AchievementsUnlocked[a.ID] {
			continue
		}
		if e.state.StatValue(a.Stat) >= a.Threshold {
			e.state.AchievementsUnlocked[a.ID] = true
		}
	}
}

// ClaimDailyMissionReward pays out a completed mission. Claiming the
// last open mission of the day also grants the all-clear bonus: one
// lucky time charge.
func (e *Engine) ClaimDailyMissionReward(id string) error {
	m := e.catalog.MissionByID(id)
	if m == nil {
		return fmt.Errorf("mission %q: %w", id, ErrNotFound)
	}
	e.ensureDailyReset()
	if e.state.Missions.Claimed[id] {
		return ErrAlreadyClaimed
	}
	if e.state.Missions.Progress[id] < m.Goal {
		return ErrNotEligible
	}
	e.state.Missions.Claimed[id] = true
	e.creditGold(m.RewardGold)
	e.state.Gems += m.RewardGem

	if !e.state.Missions.AllClaimedBonus {
		all := true
		for _, other := range e.catalog.Missions {
			if !e.state.Missions.Claimed[other.ID] {
				all = false
				break
			}
		}
		if all {
			e.state.Missions.AllClaimedBonus = true
			e.state.Lucky.Stock++
			e.emit(EventLuckyStock, map[string]any{"stock": e.state.Lucky.Stock})
		}
	}
	return nil
}

// ClaimAchievement pays out an unlocked achievement once.
func (e *Engine) ClaimAchievement(id string) (int64, error) {
	a := e.catalog.AchievementByID(id)
	if a == nil {
		return 0, fmt.Errorf("achievement %q: %w", id, ErrNotFound)
	}
	if !e.state.AchievementsUnlocked[id] {
		return 0, ErrNotUnlocked
	}
	if e.state.AchievementsClaimed[id] {
		return 0, ErrAlreadyClaimed
	}
	e.state.AchievementsClaimed[id] = true
	e.state.Gems += a.RewardGem
	return a.RewardGem, nil
}

// DailyMissions returns today's mission board.
func (e *Engine) DailyMissions() []MissionView {
	e.ensureDailyReset()
	out := make([]MissionView, 0, len(e.catalog.Missions))
	for _, m := range e.catalog.Missions {
		out = append(out, MissionView{
			ID:         m.ID,
			Name:       m.Name,
			Goal:       m.Goal,
			Progress:   e.state.Missions.Progress[m.ID],
			Claimed:    e.state.Missions.Claimed[m.ID],
			RewardGold: m.RewardGold,
			RewardGems: m.RewardGem,
		})
	}
	return out
}

// Achievements returns progress for every achievement.
func (e *Engine) Achievements() []AchievementView {
	out := make([]AchievementView, 0, len(e.catalog.Achievements))
	for _, a := range e.catalog.Achievements {
		out = append(out, AchievementView{
			ID:        a.ID,
			Name:      a.Name,
			Threshold: a.Threshold,
			Current:   e.state.StatValue(a.Stat),
			Unlocked:  e.state.AchievementsUnlocked[a.ID],
			Claimed:   e.state.AchievementsClaimed[a.ID],
			RewardGem: a.RewardGem,
		})
	}
	return out
}
