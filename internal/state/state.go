// internal/state/state.go
package state

import "image"

// Screen - то, на чём состояние рисует кадр. Реализуется окном ebiten или raylib.
type Screen interface {
	DrawFrame(img *image.RGBA)
	DrawOverlay(o Overlay)
}

// Input - нажатия клавиш, которые интересуют состояния проигрывателя.
type Input interface {
	TogglePressed() bool  // пробел: пауза / продолжить
	StepPressed() bool    // стрелка вправо: кадр вперёд на паузе
	RestartPressed() bool // R: начать сначала
}

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen Screen)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen Screen) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
