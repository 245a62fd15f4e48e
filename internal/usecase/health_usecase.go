package usecase

import (
	"context"
	"time"
)

// Counter reports record counts per collection.
type Counter interface {
	Counts() map[string]int
}

// SessionCounter reports live interview sessions.
type SessionCounter interface {
	Buckets() int
}

// Pinger checks an optional dependency. A nil Pinger means the dependency
// is disabled.
type Pinger func(ctx context.Context) error

type HealthStatus struct {
	Status         string            `json:"status"`
	Records        map[string]int    `json:"records"`
	LiveInterviews int               `json:"live_interviews"`
	Dependencies   map[string]string `json:"dependencies"`
}

type HealthUsecase interface {
	Check(ctx context.Context) *HealthStatus
}

type healthUsecase struct {
	store    Counter
	sessions SessionCounter
	redis    Pinger
}

func NewHealthUsecase(store Counter, sessions SessionCounter, redis Pinger) HealthUsecase {
	return &healthUsecase{
		store:    store,
		sessions: sessions,
		redis:    redis,
	}
}

// Check never fails. A broken optional dependency degrades the status.
func (u *healthUsecase) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:       "ok",
		Records:      map[string]int{},
		Dependencies: map[string]string{"redis": "disabled"},
	}
	if u.store != nil {
		status.Records = u.store.Counts()
	}
	if u.sessions != nil {
		status.LiveInterviews = u.sessions.Buckets()
	}

	if u.redis != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := u.redis(pingCtx); err != nil {
			status.Status = "degraded"
			status.Dependencies["redis"] = "unavailable"
		} else {
			status.Dependencies["redis"] = "ok"
		}
	}
	return status
}
