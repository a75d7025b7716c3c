package services

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"prepvault/resume-analyzer/internal/logger"
	"prepvault/resume-analyzer/internal/models"
	"prepvault/resume-analyzer/internal/repositories"
)

var nudgeTemplates = []string{
	"Hey %USER%, we've missed you! Resume your career prep today!",
	"%USER%, it's been a while. How about a quick study session?",
	"Ready to make progress again, %USER%? Let's go!",
	"%USER%, your growth journey is waiting. Jump back in!",
}

// Notifier periodically nudges users who have been inactive for too long. It
// runs as a background poller; each sweep creates at most one notification
// per inactive user.
type Notifier interface {
	Start()
	Stop()
	Sweep() error
}

type notifier struct {
	activityRepo     repositories.ActivityRepository
	notificationRepo repositories.NotificationRepository
	inactiveAfter    time.Duration
	pollInterval     time.Duration
	rng              *rand.Rand
	wg               sync.WaitGroup
	stopChan         chan struct{}
}

func NewNotifier(
	activityRepo repositories.ActivityRepository,
	notificationRepo repositories.NotificationRepository,
	inactiveAfter time.Duration,
	pollInterval time.Duration,
	rng *rand.Rand,
) Notifier {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &notifier{
		activityRepo:     activityRepo,
		notificationRepo: notificationRepo,
		inactiveAfter:    inactiveAfter,
		pollInterval:     pollInterval,
		rng:              rng,
		stopChan:         make(chan struct{}),
	}
}

func (n *notifier) Start() {
	n.wg.Add(1)
	go n.poll()
	logger.Info().Dur("interval", n.pollInterval).Msg("notifier started")
}

func (n *notifier) Stop() {
	close(n.stopChan)
	n.wg.Wait()
	logger.Info().Msg("notifier stopped")
}

func (n *notifier) poll() {
	defer n.wg.Done()
	ticker := time.NewTicker(n.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-n.stopChan:
			return
		case <-ticker.C:
			if err := n.Sweep(); err != nil {
				logger.Warn().Err(err).Msg("notification sweep failed")
			}
		}
	}
}

// Sweep finds users inactive past the cutoff and creates a nudge for each,
// unless they already have a notification newer than their last activity.
func (n *notifier) Sweep() error {
	cutoff := time.Now().Add(-n.inactiveAfter)
	inactive, err := n.activityRepo.FindInactiveSince(cutoff)
	if err != nil {
		return err
	}

	for _, activity := range inactive {
		latest, err := n.notificationRepo.FindLatestByUsername(activity.Username)
		if err != nil {
			return err
		}
		if latest != nil && latest.CreatedAt.After(activity.LastActive) {
			continue
		}

		message := n.renderNudge(activity.Username)
		err = n.notificationRepo.Create(&models.Notification{
			Username: activity.Username,
			Message:  message,
		})
		if err != nil {
			return err
		}
		logger.Info().Str("username", activity.Username).Msg("inactivity notification created")
	}

	return nil
}

func (n *notifier) renderNudge(username string) string {
	template := nudgeTemplates[n.rng.Intn(len(nudgeTemplates))]
	return strings.ReplaceAll(template, "%USER%", username)
}
