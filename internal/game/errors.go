package game

import "errors"

// Command errors. A command returning one of these performed no
// mutation at all.
var (
	ErrNotEnoughGold   = errors.New("not enough gold")
	ErrNotEnoughSouls  = errors.New("not enough souls")
	ErrNotEnoughGems   = errors.New("not enough gems")
	ErrNotEnoughStones = errors.New("not enough stones")
	ErrNotEnoughMedals = errors.New("not enough medals")
	ErrNotEnoughPoints = errors.New("not enough skill points")
	ErrNotFound        = errors.New("not found")
	ErrOnCooldown      = errors.New("skill on cooldown")
	ErrLimitReached    = errors.New("purchase limit reached")
	ErrAlreadyClaimed  = errors.New("already claimed")
	ErrNotUnlocked     = errors.New("not yet unlocked")
	ErrNotEligible     = errors.New("not eligible")
	ErrMaxLevel        = errors.New("already at max level")
	ErrNoAttempts      = errors.New("no tower attempts left")
	ErrTowerBusy       = errors.New("tower attempt already in progress")
	ErrTowerIdle       = errors.New("no tower attempt in progress")
	ErrRosterFull      = errors.New("battle roster is full")
)
