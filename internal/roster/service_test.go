package roster_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"matchday/backend/internal/database"
	"matchday/backend/internal/models"
	"matchday/backend/internal/roster"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and lets
	// goroutines share it.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createMatch(t *testing.T, db *gorm.DB, limit int) models.Match {
	t.Helper()
	match := models.Match{
		GroupName:    "Thursday League",
		DateTime:     time.Now().Add(48 * time.Hour),
		LocationName: "Riverside Pitch 3",
		PlayerLimit:  limit,
		ShareCode:    uuid.NewString(),
	}
	require.NoError(t, db.Create(&match).Error)
	return match
}

func createPlayer(t *testing.T, db *gorm.DB, name string) models.Player {
	t.Helper()
	player := models.Player{Name: name, Speed: 5, Control: 5, PhysicalCondition: 5, Attitude: 5}
	require.NoError(t, db.Create(&player).Error)
	return player
}

func admitGuest(t *testing.T, svc *roster.Service, matchID uint, name string) *models.Signup {
	t.Helper()
	signup, err := svc.Admit(matchID, roster.AdmitRequest{PlayerName: name, IsGuest: true})
	require.NoError(t, err)
	return signup
}

func TestAdmitFillsActiveThenWaits(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 2)

	a := admitGuest(t, svc, match.ID, "Ana")
	require.False(t, a.IsWaiting)
	require.Equal(t, 1, a.OrderRank)

	b := admitGuest(t, svc, match.ID, "Bruno")
	require.False(t, b.IsWaiting)
	require.Equal(t, 2, b.OrderRank)

	c := admitGuest(t, svc, match.ID, "Carla")
	require.True(t, c.IsWaiting)
	require.Equal(t, 1, c.OrderRank, "waiting partition has its own rank sequence")
}

func TestAdmitValidation(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 2)

	_, err := svc.Admit(999, roster.AdmitRequest{PlayerName: "Ana", IsGuest: true})
	require.ErrorIs(t, err, roster.ErrMatchNotFound)

	_, err = svc.Admit(match.ID, roster.AdmitRequest{PlayerName: "  ", IsGuest: true})
	require.True(t, roster.IsInvalid(err), "blank guest name must be rejected")

	_, err = svc.Admit(match.ID, roster.AdmitRequest{PlayerName: "Ana"})
	require.True(t, roster.IsInvalid(err), "non-guest without player reference must be rejected")

	missing := uint(12345)
	_, err = svc.Admit(match.ID, roster.AdmitRequest{PlayerID: &missing})
	require.ErrorIs(t, err, roster.ErrPlayerNotFound)
}

func TestAdmitDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 5)
	player := createPlayer(t, db, "Diego")

	_, err := svc.Admit(match.ID, roster.AdmitRequest{PlayerID: &player.ID})
	require.NoError(t, err)
	_, err = svc.Admit(match.ID, roster.AdmitRequest{PlayerID: &player.ID})
	require.ErrorIs(t, err, roster.ErrDuplicateSignup)

	admitGuest(t, svc, match.ID, "Mesa")
	_, err = svc.Admit(match.ID, roster.AdmitRequest{PlayerName: "Mesa", IsGuest: true})
	require.ErrorIs(t, err, roster.ErrDuplicateSignup)

	// A second match is a separate namespace.
	other := createMatch(t, db, 5)
	_, err = svc.Admit(other.ID, roster.AdmitRequest{PlayerID: &player.ID})
	require.NoError(t, err)
}

func TestAdmitMealOnlyBypassesCapacity(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 2)

	admitGuest(t, svc, match.ID, "Ana")
	admitGuest(t, svc, match.ID, "Bruno")

	// The match is at full playing capacity; meal-only admission still
	// succeeds and never waits.
	for i := 0; i < 5; i++ {
		signup, err := svc.Admit(match.ID, roster.AdmitRequest{
			PlayerName: fmt.Sprintf("Mesa %d", i),
			IsGuest:    true,
			MealOnly:   true,
		})
		require.NoError(t, err)
		require.False(t, signup.IsWaiting)
		require.True(t, signup.MealOnly)
		require.True(t, signup.HasMeal, "meal-only implies meal interest")
		require.Equal(t, i+1, signup.OrderRank)
	}

	r, err := svc.List(match.ID)
	require.NoError(t, err)
	require.Len(t, r.Active, 2)
	require.Empty(t, r.Waiting)
	require.Len(t, r.MealOnly, 5)
	for _, su := range r.Active {
		require.False(t, su.IsWaiting)
	}
}

func TestAdmitConcurrentBurstNeverOvershootsCapacity(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 5)

	const entrants = 12
	errs := make(chan error, entrants)
	var wg sync.WaitGroup
	for i := 0; i < entrants; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Admit(match.ID, roster.AdmitRequest{
				PlayerName: fmt.Sprintf("Guest %d", i),
				IsGuest:    true,
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	r, err := svc.List(match.ID)
	require.NoError(t, err)
	require.Len(t, r.Active, 5, "active partition must never exceed the player limit")
	require.Len(t, r.Waiting, entrants-5)

	// Each partition carries a strict 1..n rank sequence.
	for i, su := range r.Active {
		require.Equal(t, i+1, su.OrderRank)
	}
	for i, su := range r.Waiting {
		require.Equal(t, i+1, su.OrderRank)
	}
}

func TestWithdrawPromotesFirstWaiting(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 2)

	a := admitGuest(t, svc, match.ID, "Ana")
	b := admitGuest(t, svc, match.ID, "Bruno")
	c := admitGuest(t, svc, match.ID, "Carla")
	d := admitGuest(t, svc, match.ID, "Dario")
	require.True(t, c.IsWaiting)
	require.True(t, d.IsWaiting)

	promoted, err := svc.Withdraw(match.ID, a.ID)
	require.NoError(t, err)
	require.NotNil(t, promoted)
	require.Equal(t, c.ID, promoted.ID, "the earliest waiting entrant is promoted, never a later one")
	require.False(t, promoted.IsWaiting)
	require.Equal(t, 3, promoted.OrderRank, "promotion appends to the active partition's rank sequence")

	r, err := svc.List(match.ID)
	require.NoError(t, err)
	require.Len(t, r.Active, 2)
	require.Equal(t, b.ID, r.Active[0].ID)
	require.Equal(t, c.ID, r.Active[1].ID)
	require.Len(t, r.Waiting, 1)
	require.Equal(t, d.ID, r.Waiting[0].ID)
}

func TestWithdrawScenarioAtCapacityTwo(t *testing.T) {
	// Match with playerLimit=2: admit A, B (active), C (waiting).
	// Withdrawing A leaves active = {B, C}, waiting empty.
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 2)

	a := admitGuest(t, svc, match.ID, "A")
	admitGuest(t, svc, match.ID, "B")
	c := admitGuest(t, svc, match.ID, "C")
	require.True(t, c.IsWaiting)
	require.Equal(t, 1, c.OrderRank)

	promoted, err := svc.Withdraw(match.ID, a.ID)
	require.NoError(t, err)
	require.Equal(t, c.ID, promoted.ID)

	r, err := svc.List(match.ID)
	require.NoError(t, err)
	require.Len(t, r.Active, 2)
	require.Empty(t, r.Waiting)
}

func TestWithdrawWaitingOrMealOnlyPromotesNobody(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 1)

	admitGuest(t, svc, match.ID, "Ana")
	w1 := admitGuest(t, svc, match.ID, "Bruno")
	w2 := admitGuest(t, svc, match.ID, "Carla")
	require.True(t, w1.IsWaiting)
	require.True(t, w2.IsWaiting)

	meal, err := svc.Admit(match.ID, roster.AdmitRequest{PlayerName: "Mesa", IsGuest: true, MealOnly: true})
	require.NoError(t, err)

	promoted, err := svc.Withdraw(match.ID, w1.ID)
	require.NoError(t, err)
	require.Nil(t, promoted, "a waiting entrant's withdrawal pulls nobody up")

	promoted, err = svc.Withdraw(match.ID, meal.ID)
	require.NoError(t, err)
	require.Nil(t, promoted, "a meal-only withdrawal pulls nobody up")

	r, err := svc.List(match.ID)
	require.NoError(t, err)
	require.Len(t, r.Active, 1)
	require.Len(t, r.Waiting, 1)
	require.Equal(t, w2.ID, r.Waiting[0].ID)
}

func TestWithdrawNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 2)

	_, err := svc.Withdraw(match.ID, 999)
	require.ErrorIs(t, err, roster.ErrSignupNotFound)

	// A signup id from another match must not be withdrawable here.
	other := createMatch(t, db, 2)
	su := admitGuest(t, svc, other.ID, "Ana")
	_, err = svc.Withdraw(match.ID, su.ID)
	require.ErrorIs(t, err, roster.ErrSignupNotFound)
}

func TestConcurrentWithdrawalsPromoteDistinctEntrants(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 2)

	a := admitGuest(t, svc, match.ID, "Ana")
	b := admitGuest(t, svc, match.ID, "Bruno")
	w1 := admitGuest(t, svc, match.ID, "Carla")
	w2 := admitGuest(t, svc, match.ID, "Dario")
	require.True(t, w1.IsWaiting)
	require.True(t, w2.IsWaiting)

	type result struct {
		promoted *models.Signup
		err      error
	}
	results := make(chan result, 2)
	var wg sync.WaitGroup
	for _, id := range []uint{a.ID, b.ID} {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			promoted, err := svc.Withdraw(match.ID, id)
			results <- result{promoted, err}
		}(id)
	}
	wg.Wait()
	close(results)

	seen := map[uint]bool{}
	for res := range results {
		require.NoError(t, res.err)
		require.NotNil(t, res.promoted)
		require.False(t, seen[res.promoted.ID], "an entrant must never be promoted twice")
		seen[res.promoted.ID] = true
	}
	require.True(t, seen[w1.ID])
	require.True(t, seen[w2.ID])

	r, err := svc.List(match.ID)
	require.NoError(t, err)
	require.Len(t, r.Active, 2)
	require.Empty(t, r.Waiting)
}

func TestReorderUpSwapsAdjacentRanks(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 5)

	a := admitGuest(t, svc, match.ID, "Ana")
	b := admitGuest(t, svc, match.ID, "Bruno")
	c := admitGuest(t, svc, match.ID, "Carla")

	moved, err := svc.ReorderUp(match.ID, c.ID)
	require.NoError(t, err)
	require.True(t, moved)

	r, err := svc.List(match.ID)
	require.NoError(t, err)
	require.Equal(t, []uint{a.ID, c.ID, b.ID}, signupIDs(r.Active))
}

func TestReorderUpAtHeadIsIdempotentNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 5)

	a := admitGuest(t, svc, match.ID, "Ana")
	b := admitGuest(t, svc, match.ID, "Bruno")

	for i := 0; i < 3; i++ {
		moved, err := svc.ReorderUp(match.ID, a.ID)
		require.NoError(t, err)
		require.False(t, moved)
	}

	r, err := svc.List(match.ID)
	require.NoError(t, err)
	require.Equal(t, []uint{a.ID, b.ID}, signupIDs(r.Active))
	require.Equal(t, 1, r.Active[0].OrderRank)
	require.Equal(t, 2, r.Active[1].OrderRank)
}

func TestReorderUpStaysWithinPartition(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 1)

	admitGuest(t, svc, match.ID, "Ana")
	w1 := admitGuest(t, svc, match.ID, "Bruno")
	w2 := admitGuest(t, svc, match.ID, "Carla")
	require.True(t, w1.IsWaiting)

	// The first waiting entrant has an active entrant "above" it in the
	// overall roster but nothing above it in its own partition.
	moved, err := svc.ReorderUp(match.ID, w1.ID)
	require.NoError(t, err)
	require.False(t, moved)

	moved, err = svc.ReorderUp(match.ID, w2.ID)
	require.NoError(t, err)
	require.True(t, moved)

	r, err := svc.List(match.ID)
	require.NoError(t, err)
	require.Equal(t, []uint{w2.ID, w1.ID}, signupIDs(r.Waiting))
}

func TestToggleMeal(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 5)

	su := admitGuest(t, svc, match.ID, "Ana")
	require.False(t, su.HasMeal)

	updated, err := svc.ToggleMeal(match.ID, su.ID, true)
	require.NoError(t, err)
	require.True(t, updated.HasMeal)

	meal, err := svc.Admit(match.ID, roster.AdmitRequest{PlayerName: "Mesa", IsGuest: true, MealOnly: true})
	require.NoError(t, err)
	_, err = svc.ToggleMeal(match.ID, meal.ID, false)
	require.True(t, roster.IsInvalid(err), "a meal-only signup cannot drop its meal")
}

func TestSetPositions(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 5)

	su := admitGuest(t, svc, match.ID, "Ana")

	updated, err := svc.SetPositions(match.ID, su.ID, []models.Position{models.PositionGoalkeeper, models.PositionDefender})
	require.NoError(t, err)
	require.Equal(t, []models.Position{models.PositionGoalkeeper, models.PositionDefender}, updated.Positions)

	var stored models.Signup
	require.NoError(t, db.First(&stored, su.ID).Error)
	require.Equal(t, updated.Positions, stored.Positions)

	_, err = svc.SetPositions(match.ID, su.ID, []models.Position{"libero"})
	require.True(t, roster.IsInvalid(err))
}

func TestDeleteMatchCascadesSignups(t *testing.T) {
	db := newTestDB(t)
	svc := roster.New(db)
	match := createMatch(t, db, 5)
	admitGuest(t, svc, match.ID, "Ana")
	admitGuest(t, svc, match.ID, "Bruno")

	require.NoError(t, svc.DeleteMatch(match.ID))

	_, err := svc.List(match.ID)
	require.ErrorIs(t, err, roster.ErrMatchNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Signup{}).Where("match_id = ?", match.ID).Count(&count).Error)
	require.Zero(t, count)

	require.ErrorIs(t, svc.DeleteMatch(match.ID), roster.ErrMatchNotFound)
}

func signupIDs(signups []models.Signup) []uint {
	ids := make([]uint, len(signups))
	for i, su := range signups {
		ids[i] = su.ID
	}
	return ids
}
