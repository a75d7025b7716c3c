package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(activityRepo *fakeActivityRepo, notificationRepo *fakeNotificationRepo) Notifier {
	return NewNotifier(activityRepo, notificationRepo, 72*time.Hour, time.Hour, rand.New(rand.NewSource(1)))
}

func TestSweepNudgesInactiveUsers(t *testing.T) {
	activityRepo := newFakeActivityRepo()
	notificationRepo := &fakeNotificationRepo{}

	require.NoError(t, activityRepo.Touch("alice", "resume_analysis", time.Now().Add(-100*time.Hour)))
	require.NoError(t, activityRepo.Touch("bob", "interview_answer", time.Now()))

	notifier := newTestNotifier(activityRepo, notificationRepo)
	require.NoError(t, notifier.Sweep())

	require.Len(t, notificationRepo.notes, 1)
	note := notificationRepo.notes[0]
	assert.Equal(t, "alice", note.Username)
	assert.Contains(t, note.Message, "alice")
	assert.NotContains(t, note.Message, "%USER%")
}

func TestSweepDoesNotNudgeTwice(t *testing.T) {
	activityRepo := newFakeActivityRepo()
	notificationRepo := &fakeNotificationRepo{clock: time.Now()}

	require.NoError(t, activityRepo.Touch("alice", "resume_analysis", time.Now().Add(-100*time.Hour)))

	notifier := newTestNotifier(activityRepo, notificationRepo)
	require.NoError(t, notifier.Sweep())
	require.NoError(t, notifier.Sweep())

	assert.Len(t, notificationRepo.notes, 1)
}

func TestSweepNudgesAgainAfterNewInactivity(t *testing.T) {
	activityRepo := newFakeActivityRepo()
	notificationRepo := &fakeNotificationRepo{clock: time.Now().Add(-200 * time.Hour)}

	require.NoError(t, activityRepo.Touch("alice", "resume_analysis", time.Now().Add(-300*time.Hour)))

	notifier := newTestNotifier(activityRepo, notificationRepo)
	require.NoError(t, notifier.Sweep())
	require.Len(t, notificationRepo.notes, 1)

	// The user came back after the nudge, then went quiet again.
	require.NoError(t, activityRepo.Touch("alice", "resume_analysis", time.Now().Add(-100*time.Hour)))
	notificationRepo.clock = time.Now().Add(-150 * time.Hour)

	require.NoError(t, notifier.Sweep())
	assert.Len(t, notificationRepo.notes, 2)
}

func TestSweepNoInactiveUsers(t *testing.T) {
	activityRepo := newFakeActivityRepo()
	notificationRepo := &fakeNotificationRepo{}

	require.NoError(t, activityRepo.Touch("alice", "resume_analysis", time.Now()))

	notifier := newTestNotifier(activityRepo, notificationRepo)
	require.NoError(t, notifier.Sweep())

	assert.Empty(t, notificationRepo.notes)
}

func TestNotifierStartStop(t *testing.T) {
	notifier := NewNotifier(newFakeActivityRepo(), &fakeNotificationRepo{}, time.Hour, 10*time.Millisecond, nil)

	notifier.Start()
	time.Sleep(30 * time.Millisecond)
	notifier.Stop()
}
