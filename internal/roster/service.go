package roster

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"matchday/backend/internal/models"

	"gorm.io/gorm"
)

// totalOrder is the well-defined ordering used everywhere a partition is
// listed or scanned for promotion: rank first, signup time next, id last.
const totalOrder = "order_rank ASC, signup_time ASC, id ASC"

// Service implements the signup state machine for a match: admission into
// the active or waiting partition, withdrawal with waitlist promotion,
// manual reordering, and the meal/position mutations.
//
// Every mutating operation runs inside a transaction under a per-match
// mutex, so concurrent requests against the same match are serialized and
// the capacity invariant (active playing signups <= PlayerLimit) holds
// under load.
type Service struct {
	db    *gorm.DB
	locks *matchLocks
}

// New creates a Service on top of db.
func New(db *gorm.DB) *Service {
	return &Service{db: db, locks: newMatchLocks()}
}

// AdmitRequest describes one entrant asking to join a match.
type AdmitRequest struct {
	PlayerName string
	PlayerID   *uint
	IsGuest    bool
	MealOnly   bool
	HasMeal    bool
	Positions  []models.Position
}

// Roster is the full signup state of a match, split into its three
// partitions, each in display order.
type Roster struct {
	Active   []models.Signup
	Waiting  []models.Signup
	MealOnly []models.Signup
}

// Admit registers an entrant for a match. Meal-only entrants are always
// accepted and never occupy a playing slot; playing entrants land on the
// waiting list once the active partition is at the match's player limit.
// The new signup is appended to the tail of its partition's order.
func (s *Service) Admit(matchID uint, req AdmitRequest) (*models.Signup, error) {
	unlock := s.locks.lock(matchID)
	defer unlock()

	var signup *models.Signup
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var match models.Match
		if err := tx.First(&match, matchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMatchNotFound
			}
			return fmt.Errorf("load match: %w", err)
		}

		name := strings.TrimSpace(req.PlayerName)
		if req.IsGuest {
			if name == "" {
				return invalidf("guest name is required")
			}
		} else {
			if req.PlayerID == nil {
				return invalidf("a registered player must be selected")
			}
			var player models.Player
			if err := tx.First(&player, *req.PlayerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrPlayerNotFound
				}
				return fmt.Errorf("load player: %w", err)
			}
			name = player.Name
		}

		for _, p := range req.Positions {
			if !p.Valid() {
				return invalidf("unknown position %q", string(p))
			}
		}

		// Duplicate check: by backing player for members, by name for guests.
		var dupes int64
		dupQuery := tx.Model(&models.Signup{}).Where("match_id = ?", matchID)
		if req.IsGuest {
			dupQuery = dupQuery.Where("player_name = ? AND is_guest = ?", name, true)
		} else {
			dupQuery = dupQuery.Where("player_id = ?", *req.PlayerID)
		}
		if err := dupQuery.Count(&dupes).Error; err != nil {
			return fmt.Errorf("duplicate check: %w", err)
		}
		if dupes > 0 {
			return ErrDuplicateSignup
		}

		isWaiting := false
		hasMeal := req.HasMeal
		if req.MealOnly {
			// Meal-only attendance skips capacity entirely and implies
			// meal interest.
			hasMeal = true
		} else {
			var active int64
			err := tx.Model(&models.Signup{}).
				Where("match_id = ? AND is_waiting = ? AND meal_only = ?", matchID, false, false).
				Count(&active).Error
			if err != nil {
				return fmt.Errorf("count active signups: %w", err)
			}
			isWaiting = active >= int64(match.PlayerLimit)
		}

		rank, err := nextRank(tx, matchID, isWaiting, req.MealOnly)
		if err != nil {
			return err
		}

		playerID := req.PlayerID
		if req.IsGuest {
			playerID = nil
		}
		signup = &models.Signup{
			MatchID:    matchID,
			PlayerName: name,
			PlayerID:   playerID,
			IsGuest:    req.IsGuest,
			IsWaiting:  isWaiting,
			MealOnly:   req.MealOnly,
			HasMeal:    hasMeal,
			Positions:  req.Positions,
			OrderRank:  rank,
			SignupTime: time.Now(),
		}
		if err := tx.Create(signup).Error; err != nil {
			return fmt.Errorf("create signup: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return signup, nil
}

// Withdraw removes a signup. When the removed entry held an active playing
// slot, the earliest-ordered waiting entry of the same match is promoted
// into the active partition with a fresh tail rank; the promoted signup is
// returned. Withdrawing a waiting or meal-only entry promotes nobody.
func (s *Service) Withdraw(matchID, signupID uint) (*models.Signup, error) {
	unlock := s.locks.lock(matchID)
	defer unlock()

	var promoted *models.Signup
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var signup models.Signup
		if err := tx.Where("match_id = ?", matchID).First(&signup, signupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSignupNotFound
			}
			return fmt.Errorf("load signup: %w", err)
		}

		wasWaiting := signup.IsWaiting
		wasMealOnly := signup.MealOnly

		if err := tx.Delete(&signup).Error; err != nil {
			return fmt.Errorf("delete signup: %w", err)
		}

		if wasWaiting || wasMealOnly {
			return nil
		}

		// An active playing slot was vacated: pull up the first waiting
		// entry, if any.
		var next models.Signup
		err := tx.Where("match_id = ? AND is_waiting = ? AND meal_only = ?", matchID, true, false).
			Order(totalOrder).
			First(&next).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("find waiting signup: %w", err)
		}

		// The promoted entry joins the active partition's own rank
		// sequence at the tail rather than carrying its waiting rank over.
		rank, err := nextRank(tx, matchID, false, false)
		if err != nil {
			return err
		}
		updates := map[string]any{"is_waiting": false, "order_rank": rank}
		if err := tx.Model(&next).Updates(updates).Error; err != nil {
			return fmt.Errorf("promote signup: %w", err)
		}
		next.IsWaiting = false
		next.OrderRank = rank
		promoted = &next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return promoted, nil
}

// ReorderUp moves a signup one position earlier within its own partition
// by swapping order ranks with its predecessor. Returns false with a nil
// error when the signup is already first; both rank writes commit together
// so a partial swap is never observable.
func (s *Service) ReorderUp(matchID, signupID uint) (bool, error) {
	unlock := s.locks.lock(matchID)
	defer unlock()

	moved := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var signup models.Signup
		if err := tx.Where("match_id = ?", matchID).First(&signup, signupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSignupNotFound
			}
			return fmt.Errorf("load signup: %w", err)
		}

		var above models.Signup
		err := tx.Where("match_id = ? AND is_waiting = ? AND meal_only = ? AND order_rank < ?",
			matchID, signup.IsWaiting, signup.MealOnly, signup.OrderRank).
			Order("order_rank DESC, signup_time DESC, id DESC").
			First(&above).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // already at the head of its partition
			}
			return fmt.Errorf("find predecessor: %w", err)
		}

		if err := tx.Model(&models.Signup{}).Where("id = ?", above.ID).
			Update("order_rank", signup.OrderRank).Error; err != nil {
			return fmt.Errorf("swap ranks: %w", err)
		}
		if err := tx.Model(&models.Signup{}).Where("id = ?", signup.ID).
			Update("order_rank", above.OrderRank).Error; err != nil {
			return fmt.Errorf("swap ranks: %w", err)
		}
		moved = true
		return nil
	})
	return moved, err
}

// ToggleMeal sets the meal-interest flag of a playing signup. Meal-only
// signups always carry meal interest and cannot drop it.
func (s *Service) ToggleMeal(matchID, signupID uint, hasMeal bool) (*models.Signup, error) {
	unlock := s.locks.lock(matchID)
	defer unlock()

	var signup models.Signup
	if err := s.db.Where("match_id = ?", matchID).First(&signup, signupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSignupNotFound
		}
		return nil, fmt.Errorf("load signup: %w", err)
	}
	if signup.MealOnly && !hasMeal {
		return nil, invalidf("a meal-only signup always has a meal")
	}
	if err := s.db.Model(&signup).Update("has_meal", hasMeal).Error; err != nil {
		return nil, fmt.Errorf("update meal flag: %w", err)
	}
	signup.HasMeal = hasMeal
	return &signup, nil
}

// SetPositions replaces a signup's declared positions.
func (s *Service) SetPositions(matchID, signupID uint, positions []models.Position) (*models.Signup, error) {
	unlock := s.locks.lock(matchID)
	defer unlock()

	for _, p := range positions {
		if !p.Valid() {
			return nil, invalidf("unknown position %q", string(p))
		}
	}

	var signup models.Signup
	if err := s.db.Where("match_id = ?", matchID).First(&signup, signupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSignupNotFound
		}
		return nil, fmt.Errorf("load signup: %w", err)
	}
	if err := s.db.Model(&signup).Update("positions", positions).Error; err != nil {
		return nil, fmt.Errorf("update positions: %w", err)
	}
	signup.Positions = positions
	return &signup, nil
}

// List returns the three ordered partitions of a match's roster.
func (s *Service) List(matchID uint) (*Roster, error) {
	var match models.Match
	if err := s.db.First(&match, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("load match: %w", err)
	}

	var signups []models.Signup
	if err := s.db.Where("match_id = ?", matchID).Order(totalOrder).Find(&signups).Error; err != nil {
		return nil, fmt.Errorf("load signups: %w", err)
	}

	roster := &Roster{}
	for _, su := range signups {
		switch {
		case su.MealOnly:
			roster.MealOnly = append(roster.MealOnly, su)
		case su.IsWaiting:
			roster.Waiting = append(roster.Waiting, su)
		default:
			roster.Active = append(roster.Active, su)
		}
	}
	return roster, nil
}

// ActivePlayers returns the active playing partition in display order,
// with backing players preloaded. This is the snapshot the team split
// consumes.
func (s *Service) ActivePlayers(matchID uint) ([]models.Signup, error) {
	var match models.Match
	if err := s.db.First(&match, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("load match: %w", err)
	}
	var signups []models.Signup
	err := s.db.Preload("Player").
		Where("match_id = ? AND is_waiting = ? AND meal_only = ?", matchID, false, false).
		Order(totalOrder).
		Find(&signups).Error
	if err != nil {
		return nil, fmt.Errorf("load active signups: %w", err)
	}
	return signups, nil
}

// DeleteMatch removes a match together with all of its signups.
func (s *Service) DeleteMatch(matchID uint) error {
	unlock := s.locks.lock(matchID)
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var match models.Match
		if err := tx.First(&match, matchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMatchNotFound
			}
			return fmt.Errorf("load match: %w", err)
		}
		if err := tx.Where("match_id = ?", matchID).Delete(&models.Signup{}).Error; err != nil {
			return fmt.Errorf("delete signups: %w", err)
		}
		if err := tx.Delete(&match).Error; err != nil {
			return fmt.Errorf("delete match: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.locks.forget(matchID)
	return nil
}

// nextRank computes the append-to-tail order rank for one partition of a
// match: 1 + max(existing rank), or 1 for an empty partition.
func nextRank(tx *gorm.DB, matchID uint, isWaiting, mealOnly bool) (int, error) {
	var maxRank int
	err := tx.Model(&models.Signup{}).
		Where("match_id = ? AND is_waiting = ? AND meal_only = ?", matchID, isWaiting, mealOnly).
		Select("COALESCE(MAX(order_rank), 0)").
		Scan(&maxRank).Error
	if err != nil {
		return 0, fmt.Errorf("compute order rank: %w", err)
	}
	return maxRank + 1, nil
}
