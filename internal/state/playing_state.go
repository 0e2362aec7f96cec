// internal/state/playing_state.go
package state

// Убеждаемся, что состояния соответствуют интерфейсу State
var (
	_ State = (*PlayingState)(nil)
	_ State = (*PausedState)(nil)
	_ State = (*FinishedState)(nil)
)

// PlayingState показывает кадры в темпе сцены.
type PlayingState struct {
	sm     *StateMachine
	player *Player
	input  Input
}

func NewPlayingState(sm *StateMachine, player *Player, input Input) *PlayingState {
	return &PlayingState{sm: sm, player: player, input: input}
}

func (s *PlayingState) Enter() {}

func (s *PlayingState) Update(deltaTime float64) {
	if s.input.TogglePressed() {
		s.sm.SetState(NewPausedState(s.sm, s.player, s.input, s))
		return
	}
	if s.input.RestartPressed() {
		s.player.Restart()
		return
	}
	if s.player.Advance(deltaTime) {
		s.sm.SetState(NewFinishedState(s.sm, s.player, s.input))
	}
}

func (s *PlayingState) Draw(screen Screen) {
	if img := s.player.Frame(); img != nil {
		screen.DrawFrame(img)
	}
	screen.DrawOverlay(s.player.Overlay(false))
}

func (s *PlayingState) Exit() {}

// PausedState держит текущий кадр; стрелка вправо листает по одному кадру.
type PausedState struct {
	sm            *StateMachine
	player        *Player
	input         Input
	previousState State
}

func NewPausedState(sm *StateMachine, player *Player, input Input, prev State) *PausedState {
	return &PausedState{sm: sm, player: player, input: input, previousState: prev}
}

func (s *PausedState) Enter() {}

func (s *PausedState) Update(deltaTime float64) {
	switch {
	case s.input.TogglePressed():
		s.sm.SetState(s.previousState)
	case s.input.StepPressed():
		if s.player.Step() {
			s.sm.SetState(NewFinishedState(s.sm, s.player, s.input))
		}
	case s.input.RestartPressed():
		s.player.Restart()
		s.sm.SetState(s.previousState)
	}
}

func (s *PausedState) Draw(screen Screen) {
	if img := s.player.Frame(); img != nil {
		screen.DrawFrame(img)
	}
	screen.DrawOverlay(s.player.Overlay(true))
}

func (s *PausedState) Exit() {}

// FinishedState показывает последний кадр до нажатия R.
type FinishedState struct {
	sm     *StateMachine
	player *Player
	input  Input
}

func NewFinishedState(sm *StateMachine, player *Player, input Input) *FinishedState {
	return &FinishedState{sm: sm, player: player, input: input}
}

func (s *FinishedState) Enter() {}

func (s *FinishedState) Update(deltaTime float64) {
	if s.input.RestartPressed() || s.input.TogglePressed() {
		s.player.Restart()
		s.sm.SetState(NewPlayingState(s.sm, s.player, s.input))
	}
}

func (s *FinishedState) Draw(screen Screen) {
	if img := s.player.Frame(); img != nil {
		screen.DrawFrame(img)
	}
	screen.DrawOverlay(s.player.Overlay(false))
}

func (s *FinishedState) Exit() {}
