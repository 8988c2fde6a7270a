package models

// Mode selects which kind of request the workbench builds.
type Mode int

const (
	// ModeCard is a plain card payment with capture on authorization.
	ModeCard Mode = iota
	// ModeCard3DS is a card payment with 3-D Secure forced.
	ModeCard3DS
	// ModeAPM is an alternative payment method request.
	ModeAPM
)

// String returns the persisted name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCard:
		return "card"
	case ModeCard3DS:
		return "card_3ds"
	case ModeAPM:
		return "apm"
	default:
		return "unknown"
	}
}

// IsCard reports whether the mode works on card profiles.
func (m Mode) IsCard() bool {
	return m == ModeCard || m == ModeCard3DS
}

// ParseMode is the inverse of [Mode.String]. Unknown names map to ModeCard.
func ParseMode(s string) Mode {
	switch s {
	case "card_3ds":
		return ModeCard3DS
	case "apm":
		return ModeAPM
	default:
		return ModeCard
	}
}
