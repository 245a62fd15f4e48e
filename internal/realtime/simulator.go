package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/logger"
	"go-interview-backend/pkg/metrics"
)

const (
	MessageTranscript = "transcript"
	MessageMetrics    = "metrics"
)

// metricsOffset is added to the last transcript timestamp for the metrics frame.
const metricsOffset = 10

// Message is the JSON frame pushed to subscribers.
type Message struct {
	Type      string  `json:"type"`
	Data      any     `json:"data"`
	Timestamp float64 `json:"timestamp"`
}

// ScriptSource supplies the scripted session for an interview.
type ScriptSource interface {
	Script(ctx context.Context, interviewID string) (*domain.InterviewScript, error)
}

type run struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Simulator replays one scripted session per interview id. A run starts
// on the first subscriber and is cancelled when the bucket empties.
type Simulator struct {
	hub    *Hub
	source ScriptSource
	tick   time.Duration

	mu     sync.Mutex
	runs   map[string]*run
	base   context.Context
	stop   context.CancelFunc
	closed bool
	log    *slog.Logger
}

func NewSimulator(hub *Hub, source ScriptSource, tick time.Duration) *Simulator {
	if tick <= 0 {
		tick = time.Second
	}
	base, stop := context.WithCancel(context.Background())
	return &Simulator{
		hub:    hub,
		source: source,
		tick:   tick,
		runs:   make(map[string]*run),
		base:   base,
		stop:   stop,
		log:    logger.With("simulator"),
	}
}

// EnsureRunning starts a run for interviewID unless one is in flight.
// It reports whether a new run was started.
func (s *Simulator) EnsureRunning(interviewID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if _, ok := s.runs[interviewID]; ok {
		return false
	}
	if s.hub.Subscribers(interviewID) == 0 {
		return false
	}

	ctx, cancel := context.WithCancel(s.base)
	r := &run{cancel: cancel, done: make(chan struct{})}
	s.runs[interviewID] = r

	go func() {
		defer close(r.done)
		defer func() {
			s.mu.Lock()
			if s.runs[interviewID] == r {
				delete(s.runs, interviewID)
			}
			s.mu.Unlock()
			cancel()
		}()
		s.execute(ctx, interviewID)
	}()
	return true
}

// Cancel stops the run for interviewID if nobody is subscribed anymore.
func (s *Simulator) Cancel(interviewID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[interviewID]
	if !ok {
		return
	}
	// a subscriber may have joined after the bucket emptied
	if s.hub.Subscribers(interviewID) > 0 {
		return
	}
	r.cancel()
	delete(s.runs, interviewID)
	s.log.Debug("Simulation cancelled, no subscribers left", slog.String("interview_id", interviewID))
}

// Running reports whether a run is in flight for interviewID.
func (s *Simulator) Running(interviewID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.runs[interviewID]
	return ok
}

// Shutdown cancels all runs and waits for them to exit or ctx to expire.
func (s *Simulator) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.stop()
	pending := make([]*run, 0, len(s.runs))
	for _, r := range s.runs {
		pending = append(pending, r)
	}
	s.mu.Unlock()

	for _, r := range pending {
		select {
		case <-r.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (s *Simulator) execute(ctx context.Context, interviewID string) {
	metrics.SimulationsActive.Inc()
	defer metrics.SimulationsActive.Dec()

	log := s.log.With(slog.String("interview_id", interviewID))
	err := s.Run(ctx, interviewID)
	switch {
	case err == nil:
		metrics.SimulationsFinished.WithLabelValues("completed").Inc()
		log.Info("Simulation completed")
	case errors.Is(err, context.Canceled):
		metrics.SimulationsFinished.WithLabelValues("cancelled").Inc()
		log.Debug("Simulation stopped")
	default:
		metrics.SimulationsFinished.WithLabelValues("failed").Inc()
		log.Error("Simulation failed", slog.Any("error", err))
	}
}

// Run plays the script once: one tick of lead-in, each transcript entry
// followed by two ticks, one more tick, then the metrics frame.
func (s *Simulator) Run(ctx context.Context, interviewID string) error {
	script, err := s.source.Script(ctx, interviewID)
	if err != nil {
		return err
	}

	if err := s.sleep(ctx, 1); err != nil {
		return err
	}

	var last float64
	for _, entry := range script.Transcript {
		if err := s.publish(ctx, interviewID, Message{Type: MessageTranscript, Data: entry, Timestamp: entry.Timestamp}); err != nil {
			return err
		}
		last = entry.Timestamp
		if err := s.sleep(ctx, 2); err != nil {
			return err
		}
	}

	if err := s.sleep(ctx, 1); err != nil {
		return err
	}
	return s.publish(ctx, interviewID, Message{Type: MessageMetrics, Data: script.Metrics, Timestamp: last + metricsOffset})
}

func (s *Simulator) publish(ctx context.Context, interviewID string, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	s.hub.Broadcast(ctx, interviewID, data)
	metrics.BroadcastMessages.WithLabelValues(msg.Type).Inc()
	return nil
}

func (s *Simulator) sleep(ctx context.Context, ticks int) error {
	t := time.NewTimer(time.Duration(ticks) * s.tick)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
