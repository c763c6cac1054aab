package models

// Mode selects which dashboard context a user sees.
type Mode string

const (
	ModeIndividual Mode = "individual"
	ModeSME        Mode = "sme"
)

// ParseMode maps a raw mode string onto the closed set of modes.
func ParseMode(raw string) (Mode, bool) {
	switch Mode(raw) {
	case ModeIndividual:
		return ModeIndividual, true
	case ModeSME:
		return ModeSME, true
	default:
		return "", false
	}
}

func (m Mode) Valid() bool {
	_, ok := ParseMode(string(m))
	return ok
}

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	XP     int    `json:"xp"`
	Streak int    `json:"streak"`
	Mode   Mode   `json:"mode"`
}
