package component

// Phase — фаза игровой сессии
type Phase int

const (
	PlayingPhase Phase = iota
	GameOverPhase
)

func (p Phase) String() string {
	if p == GameOverPhase {
		return "GameOver"
	}
	return "Playing"
}

// GameSession — счет и фаза текущей партии.
type GameSession struct {
	Score    int
	Wave     int
	Phase    Phase
	onChange func(score int)
}

// NewGameSession создает сессию. onChange вызывается после каждого изменения счета, может быть nil.
func NewGameSession(onChange func(score int)) *GameSession {
	return &GameSession{Phase: PlayingPhase, onChange: onChange}
}

// AddToScore начисляет очки.
func (s *GameSession) AddToScore(points int) {
	s.Score += points
	if s.onChange != nil {
		s.onChange(s.Score)
	}
}

func (s *GameSession) IsOver() bool {
	return s.Phase == GameOverPhase
}
