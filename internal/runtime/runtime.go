// Package runtime hosts the core: it owns the event queue, executes the
// effects each reduction emits, and feeds capability results back in as
// events. The core stays pure; every piece of I/O lives here.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/repstack/repcore/internal/app"
	"github.com/repstack/repcore/internal/stash"
	"github.com/repstack/repcore/internal/store"
)

// Runtime drives a Core against real capabilities. Events are reduced one
// at a time by Run; Enqueue may be called from any goroutine.
type Runtime struct {
	core    *app.Core
	store   *store.Store
	stash   *stash.Stash
	queue   *eventQueue
	timer   *ticker
	log     *slog.Logger
	metrics *Metrics

	// seq counts reductions, for log correlation. Touched only on the
	// loop goroutine.
	seq uint64

	// onRender, when set, is called after each reduction that requested a
	// render. It runs on the loop goroutine; keep it fast.
	onRender func(app.ViewModel)
}

// Options configure a Runtime beyond its required collaborators.
type Options struct {
	Logger   *slog.Logger
	Registry prometheus.Registerer
	OnRender func(app.ViewModel)
}

// New wires a runtime around the given core, store, and stash.
func New(core *app.Core, st *store.Store, sh *stash.Stash, opts Options) *Runtime {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Runtime{
		core:     core,
		store:    st,
		stash:    sh,
		queue:    newEventQueue(),
		log:      log,
		metrics:  NewMetrics(reg),
		onRender: opts.OnRender,
	}
	r.timer = newTicker(r.queue)
	return r
}

// Enqueue submits an event for reduction. Safe from any goroutine.
// Returns false once the runtime has shut down.
func (r *Runtime) Enqueue(ev app.Event) bool {
	return r.queue.enqueue(ev)
}

// View returns the current projection. Safe from any goroutine.
func (r *Runtime) View() app.ViewModel {
	return r.core.View()
}

// Run drains the queue until ctx is cancelled. It submits the initialize
// event itself, so callers just Enqueue user events.
func (r *Runtime) Run(ctx context.Context) error {
	defer r.timer.stop()
	defer r.queue.close()

	r.queue.enqueue(app.Initialize())

	for {
		ev, ok := r.queue.tryDequeue()
		if !ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-r.queue.wait():
				continue
			}
		}

		// Drain what is queued even while shutting down would risk losing a
		// save; check cancellation only between reductions.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		r.step(ctx, ev)
	}
}

// step reduces one event and executes its effects. Capability results are
// reduced immediately, in order, before the next external event: this
// keeps the save-then-respond chains of a single user action atomic with
// respect to other queued input.
func (r *Runtime) step(ctx context.Context, ev app.Event) {
	pending := []app.Event{ev}
	for len(pending) > 0 {
		next := pending[0]
		pending = pending[1:]

		r.seq++
		start := time.Now()
		effects := r.core.Update(next)
		r.metrics.UpdateDuration.Observe(time.Since(start).Seconds())
		r.metrics.EventsTotal.WithLabelValues(string(next.Kind)).Inc()
		r.log.Debug("event applied", "seq", r.seq, "kind", next.Kind)

		for _, effect := range effects {
			r.metrics.EffectsTotal.WithLabelValues(string(effect.Kind)).Inc()
			responses, err := r.execute(ctx, effect)
			if err != nil {
				r.log.Error("effect failed", "kind", effect.Kind, "error", err)
				responses = []app.Event{app.ErrorEvent(err.Error())}
			}
			pending = append(pending, responses...)
		}
	}
}

func (r *Runtime) execute(ctx context.Context, effect app.Effect) ([]app.Event, error) {
	switch effect.Kind {
	case app.EffectRender:
		vm := r.core.View()
		if vm.WorkoutView.HasActiveWorkout {
			r.metrics.ActiveWorkout.Set(1)
		} else {
			r.metrics.ActiveWorkout.Set(0)
		}
		if r.onRender != nil {
			r.onRender(vm)
		}
		return nil, nil

	case app.EffectDatabase:
		return r.executeDatabase(ctx, effect.Database)

	case app.EffectStorage:
		return r.executeStorage(effect.Storage)

	case app.EffectTimer:
		return r.executeTimer(effect.Timer), nil

	default:
		return nil, fmt.Errorf("unknown effect kind %q", effect.Kind)
	}
}

func (r *Runtime) executeDatabase(ctx context.Context, req *app.DatabaseRequest) ([]app.Event, error) {
	if req == nil {
		return nil, fmt.Errorf("database effect without request")
	}
	switch req.Op {
	case app.DBSaveWorkout:
		if err := r.store.SaveWorkout(ctx, req.Workout); err != nil {
			return nil, err
		}
		return []app.Event{app.DatabaseResponse(app.DatabaseResult{Kind: app.DBWorkoutSaved})}, nil

	case app.DBLoadAll:
		workouts, err := r.store.LoadAll(ctx)
		if err != nil {
			return nil, err
		}
		return []app.Event{app.DatabaseResponse(app.DatabaseResult{
			Kind:     app.DBHistoryLoaded,
			Workouts: workouts,
		})}, nil

	case app.DBLoadWorkout:
		workout, err := r.store.LoadByID(ctx, req.WorkoutID)
		if err != nil {
			return nil, err
		}
		return []app.Event{app.DatabaseResponse(app.DatabaseResult{
			Kind:    app.DBWorkoutLoaded,
			Workout: workout,
		})}, nil

	case app.DBDeleteWorkout:
		if err := r.store.DeleteWorkout(ctx, req.WorkoutID); err != nil {
			return nil, err
		}
		return []app.Event{app.DatabaseResponse(app.DatabaseResult{Kind: app.DBWorkoutDeleted})}, nil

	default:
		return nil, fmt.Errorf("unknown database op %q", req.Op)
	}
}

func (r *Runtime) executeStorage(req *app.StorageRequest) ([]app.Event, error) {
	if req == nil {
		return nil, fmt.Errorf("storage effect without request")
	}
	switch req.Op {
	case app.StashSaveCurrent:
		if err := r.stash.Save(req.Workout); err != nil {
			return []app.Event{app.StorageResponse(app.StorageResult{
				Kind: app.StashError, Message: err.Error(),
			})}, nil
		}
		return []app.Event{app.StorageResponse(app.StorageResult{Kind: app.StashSaved})}, nil

	case app.StashLoadCurrent:
		workout, err := r.stash.Load()
		if err != nil {
			return []app.Event{app.StorageResponse(app.StorageResult{
				Kind: app.StashError, Message: err.Error(),
			})}, nil
		}
		return []app.Event{app.StorageResponse(app.StorageResult{
			Kind: app.StashLoaded, Workout: workout,
		})}, nil

	case app.StashDeleteCurrent:
		if err := r.stash.Delete(); err != nil {
			return []app.Event{app.StorageResponse(app.StorageResult{
				Kind: app.StashError, Message: err.Error(),
			})}, nil
		}
		return []app.Event{app.StorageResponse(app.StorageResult{Kind: app.StashDeleted})}, nil

	default:
		return nil, fmt.Errorf("unknown storage op %q", req.Op)
	}
}

func (r *Runtime) executeTimer(req *app.TimerRequest) []app.Event {
	if req == nil {
		return nil
	}
	switch req.Op {
	case app.TimerStart:
		interval := time.Duration(req.IntervalSeconds) * time.Second
		if interval <= 0 {
			interval = time.Second
		}
		r.timer.start(interval)
		return []app.Event{app.TimerResponse(app.TimerStarted)}
	case app.TimerStop:
		r.timer.stop()
		return []app.Event{app.TimerResponse(app.TimerStopped)}
	}
	return nil
}
