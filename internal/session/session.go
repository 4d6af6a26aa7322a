package session

import (
	"cmp"
	"errors"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/sortalg"
	"github.com/san-kum/sortviz/internal/stepper"
)

var (
	// ErrNoDataset rejects controls used before a dataset is loaded.
	ErrNoDataset = errors.New("session: no dataset loaded")

	// ErrRunInProgress rejects selection changes while a run is running or paused.
	ErrRunInProgress = errors.New("session: run in progress, reset first")
)

// Session is the control surface a host drives: it owns the dataset, the
// current selection, the eagerly computed engine result and the visualizer.
// It is not safe for concurrent use.
type Session[T cmp.Ordered] struct {
	name   string
	data   []T
	kind   sortalg.Kind
	order  sortalg.Order
	speed  stepper.Speed
	seed   int64
	vis    *stepper.Visualizer[T]
	result *sortalg.Result[T]
	log    *log.Entry
}

type Option func(*options)

type options struct {
	kind   sortalg.Kind
	order  sortalg.Order
	speed  stepper.Speed
	seed   int64
	logger *log.Logger
}

func WithKind(k sortalg.Kind) Option     { return func(o *options) { o.kind = k } }
func WithOrder(ord sortalg.Order) Option { return func(o *options) { o.order = ord } }
func WithSpeed(s stepper.Speed) Option   { return func(o *options) { o.speed = s } }
func WithSeed(seed int64) Option         { return func(o *options) { o.seed = seed } }
func WithLogger(l *log.Logger) Option    { return func(o *options) { o.logger = l } }

func New[T cmp.Ordered](opts ...Option) *Session[T] {
	o := options{
		kind:   sortalg.Bubble,
		order:  sortalg.Ascending,
		speed:  stepper.DefaultSpeed,
		seed:   time.Now().UnixNano(),
		logger: log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Session[T]{
		kind:  o.kind,
		order: o.order,
		speed: o.speed.Clamp(),
		seed:  o.seed,
		log:   log.NewEntry(o.logger),
	}
}

// LoadDataset replaces the dataset, rebuilds the visualizer and runs the
// engine once on a private copy. An empty dataset is rejected and leaves the
// session unchanged.
func (s *Session[T]) LoadDataset(name string, data []T) error {
	if len(data) == 0 {
		return dataset.ErrEmpty
	}
	vis, err := stepper.New(data, s.order)
	if err != nil {
		return err
	}
	s.name = name
	s.data = sortalg.Clone(data)
	s.vis = vis
	s.log.WithFields(log.Fields{"dataset": name, "size": len(data)}).Debug("dataset loaded")
	return s.compute()
}

func (s *Session[T]) Loaded() bool { return s.vis != nil }

func (s *Session[T]) busy() bool {
	if s.vis == nil {
		return false
	}
	st := s.vis.State()
	return st == stepper.Running || st == stepper.Paused
}

func (s *Session[T]) SelectAlgorithm(k sortalg.Kind) error {
	if !k.Valid() {
		return sortalg.ErrUnknownKind
	}
	if s.busy() {
		return ErrRunInProgress
	}
	s.kind = k
	if s.vis == nil {
		return nil
	}
	s.vis.Reset()
	return s.compute()
}

func (s *Session[T]) SelectOrder(order sortalg.Order) error {
	if s.busy() {
		return ErrRunInProgress
	}
	s.order = order
	if s.vis == nil {
		return nil
	}
	vis, err := stepper.New(s.data, order)
	if err != nil {
		return err
	}
	s.vis = vis
	return s.compute()
}

func (s *Session[T]) compute() error {
	res, err := sortalg.Run(s.kind, s.data, s.order, rand.New(rand.NewSource(s.seed)))
	if err != nil {
		return err
	}
	s.result = res
	s.log.WithFields(log.Fields{
		"algorithm": s.kind.String(),
		"order":     s.order.String(),
		"size":      len(s.data),
		"elapsed":   res.Elapsed,
	}).Debug("engine run complete")
	return nil
}

// Start begins the animation. Bubble sort is replayed step by step; every
// other algorithm jumps straight to the engine's final answer.
func (s *Session[T]) Start() error {
	if s.vis == nil {
		return ErrNoDataset
	}
	if !s.kind.Animated() {
		if s.busy() {
			return ErrRunInProgress
		}
		return s.vis.Settle(s.result.Sorted)
	}
	if err := s.vis.Start(); err != nil {
		return err
	}
	s.log.WithField("algorithm", s.kind.String()).Debug("animation started")
	return nil
}

func (s *Session[T]) Pause() error {
	if s.vis == nil {
		return ErrNoDataset
	}
	return s.vis.Pause()
}

func (s *Session[T]) Resume() error {
	if s.vis == nil {
		return ErrNoDataset
	}
	return s.vis.Resume()
}

// Reset is the replay control: the working array returns to the dataset and
// the visualizer to Idle.
func (s *Session[T]) Reset() error {
	if s.vis == nil {
		return ErrNoDataset
	}
	s.vis.Reset()
	s.log.Debug("visualization reset")
	return nil
}

// Step advances the animation by one tick.
func (s *Session[T]) Step() (stepper.Snapshot[T], error) {
	if s.vis == nil {
		return stepper.Snapshot[T]{}, ErrNoDataset
	}
	snap, err := s.vis.Step()
	if err == nil && snap.Done() {
		s.log.WithField("stats", snap.Stats.String()).Debug("animation completed")
	}
	return snap, err
}

func (s *Session[T]) SetSpeed(v int) { s.speed = stepper.NewSpeed(v) }

func (s *Session[T]) Speed() stepper.Speed { return s.speed }

// Delay is how long the host should wait between ticks.
func (s *Session[T]) Delay() time.Duration { return s.speed.Delay() }

func (s *Session[T]) Kind() sortalg.Kind   { return s.kind }
func (s *Session[T]) Order() sortalg.Order { return s.order }
func (s *Session[T]) Name() string         { return s.name }
func (s *Session[T]) Seed() int64          { return s.seed }

func (s *Session[T]) State() stepper.State {
	if s.vis == nil {
		return stepper.Idle
	}
	return s.vis.State()
}

func (s *Session[T]) Snapshot() (stepper.Snapshot[T], error) {
	if s.vis == nil {
		return stepper.Snapshot[T]{}, ErrNoDataset
	}
	return s.vis.Snapshot(), nil
}

// Result is the eager engine run for the current selection.
func (s *Session[T]) Result() (*sortalg.Result[T], error) {
	if s.result == nil {
		return nil, ErrNoDataset
	}
	return s.result, nil
}
