package films

// Trilogy is the categorical label derived from an episode number.
type Trilogy string

const (
	Prequels  Trilogy = "Prequels"
	Originals Trilogy = "Originals"
	Sequels   Trilogy = "Sequels"
)

// trilogyBreaks are the lower bounds of the half-open intervals
// [1,4), [4,7) and [7,inf), in the same order as trilogyLabels.
var (
	trilogyBreaks = [...]int{1, 4, 7}
	trilogyLabels = [...]Trilogy{Prequels, Originals, Sequels}
)

// TrilogyFor maps an episode number to its trilogy. Episodes below the first
// breakpoint have no label.
func TrilogyFor(episode int) (Trilogy, bool) {
	for i := len(trilogyBreaks) - 1; i >= 0; i-- {
		if episode >= trilogyBreaks[i] {
			return trilogyLabels[i], true
		}
	}
	return "", false
}
