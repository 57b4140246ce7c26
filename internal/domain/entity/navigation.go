package entity

// Direction итоговая рекомендация по движению
type Direction int

const (
	DirectionContinue Direction = iota
	DirectionLeft
	DirectionRight
	DirectionSlowDown
	DirectionNoPath
)

var directionMessages = [...]string{
	DirectionContinue: "Continue ahead.",
	DirectionLeft:     "Move left.",
	DirectionRight:    "Move right.",
	DirectionSlowDown: "Slow down, no safe path found.",
	DirectionNoPath:   "Cannot find path, be careful.",
}

// Message текст команды для пользователя
func (d Direction) Message() string {
	if d < DirectionContinue || d > DirectionNoPath {
		return directionMessages[DirectionNoPath]
	}
	return directionMessages[d]
}

func (d Direction) String() string { return d.Message() }

// NavigationReport результат навигации
type NavigationReport struct {
	Direction Direction `json:"-"`
	Cautions  []string  `json:"-"`
	Minimal   []string  `json:"minimal_navigation"`
	Maximal   []string  `json:"maximal_navigation"`
}
