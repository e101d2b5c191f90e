package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sumacommu/sumatest-sub000/models"
)

func TestRequestMatchEnqueuesWhenPoolIsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchmakingService(db)
	alice := createUser(t, db, "u-alice", "Alice", 1500)

	match, err := svc.RequestMatch(alice)
	require.NoError(t, err)

	assert.Equal(t, models.MatchStatusWaiting, match.Status)
	assert.Equal(t, alice.ID, match.UserID)
	assert.Empty(t, match.OpponentID)
	assert.Empty(t, match.RoomID)
}

func TestRequestMatchPairsWithinRatingBand(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchmakingService(db)
	alice := createUser(t, db, "u-alice", "Alice", 1500)
	bob := createUser(t, db, "u-bob", "Bob", 1600)

	aliceMatch, err := svc.RequestMatch(alice)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateRoomID(alice.ID, "ABCD"))

	bobMatch, err := svc.RequestMatch(bob)
	require.NoError(t, err)

	assert.Equal(t, models.MatchStatusMatched, bobMatch.Status)
	assert.Equal(t, alice.ID, bobMatch.OpponentID)
	assert.Equal(t, "ABCD", bobMatch.OpponentRoomID)
	assert.Empty(t, bobMatch.RoomID)

	flipped := reloadMatch(t, db, aliceMatch.ID)
	assert.Equal(t, models.MatchStatusMatched, flipped.Status)
	assert.Equal(t, bob.ID, flipped.OpponentID)
	assert.Equal(t, "ABCD", flipped.RoomID)
}

func TestRequestMatchRespectsRatingCutoff(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchmakingService(db)
	alice := createUser(t, db, "u-alice", "Alice", 1500)
	bob := createUser(t, db, "u-bob", "Bob", 1701)

	_, err := svc.RequestMatch(alice)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateRoomID(alice.ID, "ABCD"))

	bobMatch, err := svc.RequestMatch(bob)
	require.NoError(t, err)

	assert.Equal(t, models.MatchStatusWaiting, bobMatch.Status)

	count, err := svc.WaitingCount()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestRequestMatchSkipsCandidatesWithoutRoomID(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchmakingService(db)
	alice := createUser(t, db, "u-alice", "Alice", 1500)
	bob := createUser(t, db, "u-bob", "Bob", 1500)

	_, err := svc.RequestMatch(alice)
	require.NoError(t, err)

	bobMatch, err := svc.RequestMatch(bob)
	require.NoError(t, err)

	assert.Equal(t, models.MatchStatusWaiting, bobMatch.Status)

	count, err := svc.WaitingCount()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestClaimSkipsCandidateTakenMeanwhile(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchmakingService(db)
	alice := createUser(t, db, "u-alice", "Alice", 1500)
	createUser(t, db, "u-bob", "Bob", 1500)

	aliceMatch, err := svc.RequestMatch(alice)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateRoomID(alice.ID, "ABCD"))

	// Another request got to the candidate first: the record is no longer
	// waiting by the time the conditional flip runs.
	require.NoError(t, db.Model(&models.Match{}).
		Where("id = ?", aliceMatch.ID).
		Updates(map[string]interface{}{
			"status":      models.MatchStatusMatched,
			"opponent_id": "u-bob",
		}).Error)

	claimed, err := svc.claim(db, aliceMatch.ID, "u-carol")
	require.NoError(t, err)
	assert.False(t, claimed)

	// The earlier winner keeps the pairing.
	assert.Equal(t, "u-bob", reloadMatch(t, db, aliceMatch.ID).OpponentID)
}

func TestRequestMatchContendersShareOneCandidate(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchmakingService(db)
	carol := createUser(t, db, "u-carol", "Carol", 1500)
	alice := createUser(t, db, "u-alice", "Alice", 1450)
	bob := createUser(t, db, "u-bob", "Bob", 1550)

	carolMatch, err := svc.RequestMatch(carol)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateRoomID(carol.ID, "ABCD"))

	contenders := []*models.User{alice, bob}
	results := make([]*models.Match, len(contenders))
	errs := make([]error, len(contenders))

	var wg sync.WaitGroup
	for i, u := range contenders {
		wg.Add(1)
		go func(i int, u *models.User) {
			defer wg.Done()
			results[i], errs[i] = svc.RequestMatch(u)
		}(i, u)
	}
	wg.Wait()

	var winner, loser *models.Match
	for i := range contenders {
		require.NoError(t, errs[i])
		switch results[i].Status {
		case models.MatchStatusMatched:
			require.Nil(t, winner, "only one contender may pair")
			winner = results[i]
		case models.MatchStatusWaiting:
			loser = results[i]
		}
	}
	require.NotNil(t, winner)
	require.NotNil(t, loser)

	assert.Equal(t, carol.ID, winner.OpponentID)
	assert.Equal(t, "ABCD", winner.OpponentRoomID)

	flipped := reloadMatch(t, db, carolMatch.ID)
	assert.Equal(t, models.MatchStatusMatched, flipped.Status)
	assert.Equal(t, winner.UserID, flipped.OpponentID)

	// The loser stays in the pool as the only waiting record.
	count, err := svc.WaitingCount()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, models.MatchStatusWaiting, reloadMatch(t, db, loser.ID).Status)
}

func TestRequestMatchSnapshotIsNotRefreshed(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchmakingService(db)
	alice := createUser(t, db, "u-alice", "Alice", 1500)
	bob := createUser(t, db, "u-bob", "Bob", 1550)

	_, err := svc.RequestMatch(alice)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateRoomID(alice.ID, "FIRST"))

	bobMatch, err := svc.RequestMatch(bob)
	require.NoError(t, err)
	require.Equal(t, models.MatchStatusMatched, bobMatch.Status)

	// Editing the room id later must not touch the snapshot; the owner no
	// longer has a waiting record anyway.
	require.NoError(t, svc.UpdateRoomID(alice.ID, "SECOND"))

	assert.Equal(t, "FIRST", reloadMatch(t, db, bobMatch.ID).OpponentRoomID)
}

func TestCancelWaitingIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchmakingService(db)
	alice := createUser(t, db, "u-alice", "Alice", 1500)

	// Two requests before the first resolves: both records accumulate.
	_, err := svc.RequestMatch(alice)
	require.NoError(t, err)
	_, err = svc.RequestMatch(alice)
	require.NoError(t, err)

	count, err := svc.WaitingCount()
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	require.NoError(t, svc.CancelWaiting(alice.ID))

	count, err = svc.WaitingCount()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	// Second cancel is a no-op.
	require.NoError(t, svc.CancelWaiting(alice.ID))
}

func TestUpdateRoomIDWithoutWaitingRecordIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchmakingService(db)
	createUser(t, db, "u-alice", "Alice", 1500)

	require.NoError(t, svc.UpdateRoomID("u-alice", "ABCD"))

	var count int64
	require.NoError(t, db.Model(&models.Match{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUpdateRoomIDLeavesRecordPairedMeanwhileAlone(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchmakingService(db)
	alice := createUser(t, db, "u-alice", "Alice", 1500)
	createUser(t, db, "u-bob", "Bob", 1500)

	aliceMatch, err := svc.RequestMatch(alice)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateRoomID(alice.ID, "FIRST"))

	// Pair the record between the read and the write of the next room id
	// edit. The callback fires right before the update statement runs, which
	// is exactly the window a concurrent RequestMatch can land in.
	paired := false
	require.NoError(t, db.Callback().Update().Before("gorm:update").
		Register("pair_meanwhile", func(_ *gorm.DB) {
			if paired {
				return
			}
			paired = true
			db.Session(&gorm.Session{NewDB: true}).
				Exec("UPDATE matches SET status = ?, opponent_id = ? WHERE id = ?",
					models.MatchStatusMatched, "u-bob", aliceMatch.ID)
		}))

	require.NoError(t, svc.UpdateRoomID(alice.ID, "SECOND"))

	// The edit lost the race, the room id its opponent saw stays put.
	after := reloadMatch(t, db, aliceMatch.ID)
	assert.Equal(t, models.MatchStatusMatched, after.Status)
	assert.Equal(t, "FIRST", after.RoomID)
}

func TestCheckStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchmakingService(db)
	alice := createUser(t, db, "u-alice", "Alice", 1500)
	bob := createUser(t, db, "u-bob", "Bob", 1450)

	status, err := svc.CheckStatus(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, status.State)

	_, err = svc.RequestMatch(alice)
	require.NoError(t, err)

	status, err = svc.CheckStatus(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, StateWaiting, status.State)
	require.NotNil(t, status.Match)

	require.NoError(t, svc.UpdateRoomID(alice.ID, "ABCD"))
	_, err = svc.RequestMatch(bob)
	require.NoError(t, err)

	status, err = svc.CheckStatus(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, StateMatched, status.State)
	require.NotNil(t, status.Opponent)
	assert.Equal(t, "Alice", status.Opponent.DisplayName)
	assert.Equal(t, 1500, status.Opponent.SoloRating)
}
