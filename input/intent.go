package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit    // Esc, Ctrl+C, q
	IntentPause   // p
	IntentRespawn // r, manual ball reset
	IntentMute    // m
	IntentCharge  // Down, launcher visual only

	IntentFlipperLeft
	IntentFlipperRight
)

func (i IntentType) String() string {
	switch i {
	case IntentQuit:
		return "quit"
	case IntentPause:
		return "pause"
	case IntentRespawn:
		return "respawn"
	case IntentMute:
		return "mute"
	case IntentCharge:
		return "charge"
	case IntentFlipperLeft:
		return "flipper_left"
	case IntentFlipperRight:
		return "flipper_right"
	default:
		return "none"
	}
}
