package dino

// FrameID identifies one requested frame callback. Zero is never issued.
type FrameID uint64

// Loop drives a Game from a host clock that calls back once per display frame.
//
// The host asks for a frame whenever Dispatch or Frame hands out a FrameID and
// calls Frame with that id when the callback fires. Only the most recently
// issued id is honored, so a canceled or superseded callback that still fires
// is ignored. Loop is not safe for concurrent use; the host must serialize
// input and frame callbacks, as a single event loop does.
type Loop struct {
	game    *Game
	surface Surface
	seed    func() int64
	issued  FrameID
	pending FrameID
}

// NewLoop creates a loop drawing game into surface. seed supplies the seed for
// every new run.
func NewLoop(game *Game, surface Surface, seed func() int64) *Loop {
	return &Loop{
		game:    game,
		surface: surface,
		seed:    seed,
	}
}

// Game returns the driven game.
func (l *Loop) Game() *Game {
	return l.game
}

// Dispatch handles the primary input: start a run when stopped, jump when
// running. When a run starts, the returned id must be scheduled.
func (l *Loop) Dispatch() (FrameID, bool) {
	if l.game.State().Running() {
		l.game.Jump()
		return 0, false
	}
	l.game.Start(l.seed())
	return l.request(), true
}

// Frame runs the frame for callback id: Advance, then Draw. It returns the
// next id to schedule, or false when the loop stops because the run ended,
// the id is stale, or no surface is attached.
func (l *Loop) Frame(id FrameID) (StepResult, FrameID, bool) {
	if id == 0 || id != l.pending {
		return StepResult{State: l.game.State()}, 0, false
	}
	l.pending = 0

	if l.surface == nil {
		return StepResult{State: l.game.State()}, 0, false
	}

	res := l.game.Advance()
	l.game.Draw(l.surface)

	if !res.State.Running() {
		return res, 0, false
	}
	return res, l.request(), true
}

// Pending reports whether a frame callback is outstanding.
func (l *Loop) Pending() bool {
	return l.pending != 0
}

// Redraw paints the current state without advancing it.
func (l *Loop) Redraw() {
	if l.surface != nil {
		l.game.Draw(l.surface)
	}
}

// Cancel drops the outstanding frame request, if any.
func (l *Loop) Cancel() {
	l.pending = 0
}

// Detach cancels the loop and releases the surface. Later frames are no-ops.
func (l *Loop) Detach() {
	l.Cancel()
	l.surface = nil
}

// request issues a fresh frame id and makes it the only one honored.
func (l *Loop) request() FrameID {
	l.issued++
	l.pending = l.issued
	return l.pending
}
