package countdown

import (
	"context"
	"errors"
	"sync"
	"time"
)

type Stage string

const (
	StageIdle     Stage = "IDLE"
	StageInitial  Stage = "INITIAL_COUNTDOWN"
	StageQuestion Stage = "QUESTION_COUNTDOWN"
	StageAnswer   Stage = "ANSWER_COUNTDOWN"
	StageFinished Stage = "FINISHED"
)

var ErrAlreadyStarted = errors.New("countdown already started")

// Durations configures the length in seconds of each timed stage.
type Durations struct {
	InitialSeconds  int
	QuestionSeconds int
	AnswerSeconds   int
}

// Snapshot is a point-in-time view of the machine, safe to hand out.
type Snapshot struct {
	Stage            Stage
	RemainingSeconds int
	QuestionIndex    int
	CurrentQuestion  string
	Finished         bool
}

// TransitionFunc is invoked after every tick that changes the machine,
// outside the internal lock.
type TransitionFunc func(s Snapshot)

// Machine walks a session through the interview stages: an initial delay,
// then a question/answer pair per question, then FINISHED.
type Machine struct {
	mu            sync.Mutex
	stage         Stage
	remaining     int
	questionIndex int
	questions     []string
	durations     Durations

	done         chan struct{}
	doneOnce     sync.Once
	onTransition TransitionFunc
}

func NewMachine(questions []string, d Durations, onTransition TransitionFunc) *Machine {
	return &Machine{
		stage:        StageIdle,
		questions:    questions,
		durations:    d,
		done:         make(chan struct{}),
		onTransition: onTransition,
	}
}

// Start moves the machine out of IDLE. It fails on reuse.
func (m *Machine) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stage != StageIdle {
		return ErrAlreadyStarted
	}
	m.stage = StageInitial
	m.remaining = m.durations.InitialSeconds
	return nil
}

// Run ticks the machine once per second until it finishes or the context is
// cancelled. Context cancellation forces FINISHED.
func (m *Machine) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.Stop()
			return
		case <-m.done:
			return
		case <-ticker.C:
			m.Tick()
		}
	}
}

// Tick advances the machine by one second. Exposed so callers driving the
// machine from their own clock (or tests) can step it manually.
func (m *Machine) Tick() {
	m.mu.Lock()
	if m.stage == StageIdle || m.stage == StageFinished {
		m.mu.Unlock()
		return
	}

	m.remaining--
	if m.remaining <= 0 {
		m.advanceLocked()
	}
	snap := m.snapshotLocked()
	m.mu.Unlock()

	if m.onTransition != nil {
		m.onTransition(snap)
	}
	if snap.Finished {
		m.doneOnce.Do(func() { close(m.done) })
	}
}

func (m *Machine) advanceLocked() {
	switch m.stage {
	case StageInitial:
		m.stage = StageQuestion
		m.questionIndex = 0
		m.remaining = m.durations.QuestionSeconds
	case StageQuestion:
		m.stage = StageAnswer
		m.remaining = m.durations.AnswerSeconds
	case StageAnswer:
		if m.questionIndex+1 < len(m.questions) {
			m.questionIndex++
			m.stage = StageQuestion
			m.remaining = m.durations.QuestionSeconds
		} else {
			m.stage = StageFinished
			m.remaining = 0
		}
	}
}

// Stop forces the machine into FINISHED regardless of where it is.
func (m *Machine) Stop() {
	m.mu.Lock()
	m.stage = StageFinished
	m.remaining = 0
	snap := m.snapshotLocked()
	m.mu.Unlock()

	if m.onTransition != nil {
		m.onTransition(snap)
	}
	m.doneOnce.Do(func() { close(m.done) })
}

// Done is closed once the machine reaches FINISHED.
func (m *Machine) Done() <-chan struct{} {
	return m.done
}

func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Machine) snapshotLocked() Snapshot {
	s := Snapshot{
		Stage:            m.stage,
		RemainingSeconds: m.remaining,
		QuestionIndex:    m.questionIndex,
		Finished:         m.stage == StageFinished,
	}
	if (m.stage == StageQuestion || m.stage == StageAnswer) && m.questionIndex < len(m.questions) {
		s.CurrentQuestion = m.questions[m.questionIndex]
	}
	return s
}
