package utils

const (
	// historyWindow is how many recent board hashes are retained.
	historyWindow = 5
	// matchDepth bounds the cycle lengths Observe can detect.
	matchDepth = 3
)

// CycleDetector spots boards that have gone static or settled into a short
// loop by tracking recent state hashes. Cycles longer than matchDepth pass
// through undetected.
type CycleDetector struct {
	history []string
}

func NewCycleDetector() *CycleDetector {
	return &CycleDetector{}
}

// Observe reports whether hash matches any of the last few previously
// observed states, then records it.
func (d *CycleDetector) Observe(hash string) bool {
	repeated := false
	if len(d.history) >= matchDepth {
		// Check for static state and short cycles
		for i := 1; i <= matchDepth; i++ {
			if d.history[len(d.history)-i] == hash {
				repeated = true
				break
			}
		}
	}

	d.history = append(d.history, hash)
	if len(d.history) > historyWindow {
		d.history = d.history[1:]
	}

	return repeated
}
