// internal/event/types.go
package event

const (
	AnimationStarted  EventType = "AnimationStarted"  // Data: AnimationInfo
	AnimationFinished EventType = "AnimationFinished" // Data: AnimationInfo
	WaitStarted       EventType = "WaitStarted"       // Data: float64, секунды паузы
	FrameRendered     EventType = "FrameRendered"     // Data: int, номер кадра
	SceneFinished     EventType = "SceneFinished"     // Data: SceneStats
)

// AnimationInfo описывает одну анимацию внутри вызова Play.
type AnimationInfo struct {
	Index   int // номер вызова Play, с нуля
	Name    string
	RunTime float64
}

// SceneStats - итог прогона сцены.
type SceneStats struct {
	Plays    int
	Frames   int
	Duration float64
}
