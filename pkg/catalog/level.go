package catalog

// Level labels, lowest first.
const (
	LevelLow  = "pringao"
	LevelMid  = "tranqui"
	LevelHigh = "cheto"
)

// Level buckets an hp value into a display label: up to 20 is low, up to 40
// is mid, anything above is high.
func Level(hp int) string {
	switch {
	case hp <= 20:
		return LevelLow
	case hp <= 40:
		return LevelMid
	default:
		return LevelHigh
	}
}
