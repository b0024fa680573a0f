package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundFlipper SoundType = iota // Ball struck by a flipper
	SoundWall                     // Wall or ceiling bounce
	SoundDrain                    // Ball fell through the floor
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundFlipper:
		return "flipper"
	case SoundWall:
		return "wall"
	case SoundDrain:
		return "drain"
	default:
		return "unknown"
	}
}
