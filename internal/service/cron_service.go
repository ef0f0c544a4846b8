package service

import (
	"time"

	"github.com/portal88/wallapi/internal/config"
	"github.com/portal88/wallapi/internal/repository"
	"github.com/portal88/wallapi/pkg/utils/zaplogger"
	"github.com/robfig/cron/v3"
)

// CronService is the service for the cron jobs
type CronService struct {
	cfg      *config.Config
	c        *cron.Cron
	sessions *SessionService
	presence *PresenceService
	users    *repository.UserRepository
	posts    *repository.PostRepository
	reports  *repository.ReportRepository
}

// NewCronService creates a new CronService
func NewCronService(cfg *config.Config, sessions *SessionService, presence *PresenceService, users *repository.UserRepository, posts *repository.PostRepository, reports *repository.ReportRepository) *CronService {
	return &CronService{
		cfg:      cfg,
		c:        cron.New(),
		sessions: sessions,
		presence: presence,
		users:    users,
		posts:    posts,
		reports:  reports,
	}
}

// Start starts the cron service
func (cs *CronService) Start() {
	zaplogger.Info("Initializing CronService")

	// ------------------------------------------------------------
	// Add your SCHEDULED jobs here
	// ------------------------------------------------------------
	cs.addScheduledJob("Session SWEEP Job", cs.sessionSweepJob, "0 * * * *") // Hourly
	cs.addScheduledJob("Stats LOG Job", cs.statsLogJob, "*/5 * * * *")      // Every 5 minutes

	// ------------------------------------------------------------
	// Add your STARTUP jobs here
	// ------------------------------------------------------------
	cs.addStartupJob("Stats LOG Job", cs.statsLogJob, 1*time.Second)
	// ------------------------------------------------------------

	cs.c.Start()
}

// addStartupJob adds a startup job to the cron service
func (cs *CronService) addStartupJob(name string, job func(), delay time.Duration) {
	go func() {
		time.Sleep(delay)
		zaplogger.Info("STARTED STARTUP job", zaplogger.Fields{
			"job": name,
		})
		job()
		zaplogger.Info("COMPLETED STARTUP job", zaplogger.Fields{
			"job": name,
		})
	}()
	zaplogger.Info("QUEUED STARTUP job", zaplogger.Fields{
		"job": name,
	})
}

func (cs *CronService) addScheduledJob(name string, job func(), schedule string) {
	_, err := cs.c.AddFunc(schedule, func() {
		zaplogger.Info("STARTED SCHEDULED JOB", zaplogger.Fields{
			"job": name,
		})
		job()
		zaplogger.Info("COMPLETED SCHEDULED JOB", zaplogger.Fields{
			"job": name,
		})
	})
	if err != nil {
		zaplogger.Error("FAILED TO QUEUE SCHEDULED JOB", zaplogger.Fields{
			"job":   name,
			"error": err.Error(),
		})
		return
	}
	zaplogger.Info("QUEUED SCHEDULED job", zaplogger.Fields{
		"job": name,
	})
}

// sessionSweepJob removes server-side sessions past their absolute expiry.
// The cookie expires client-side on its own; this keeps the session table
// from accumulating dead entries.
func (cs *CronService) sessionSweepJob() {
	removed := cs.sessions.SweepExpired()
	zaplogger.Info("Session sweep completed", zaplogger.Fields{
		"removed": removed,
		"live":    cs.sessions.Count(),
	})
}

// statsLogJob logs collection sizes and the advisory online count. It does
// not prune presence entries; pruning stays request-driven.
func (cs *CronService) statsLogJob() {
	zaplogger.Info("Wall stats", zaplogger.Fields{
		"users":   cs.users.Count(),
		"posts":   cs.posts.Count(),
		"reports": cs.reports.Count(),
		"online":  cs.presence.Count(),
	})
}
