package engine

// Phase is the game phase shown by front ends
// Nothing in the simulation changes it; SetPhase is the only transition hook
type Phase uint8

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "READY"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAMEOVER"
	default:
		return "UNKNOWN"
	}
}
