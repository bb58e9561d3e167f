package round

// Phase is the round state.
type Phase int

const (
	PhasePreRound  Phase = iota // preview shown, waiting for the first draw
	PhaseActive                 // players filling slots
	PhaseResolving              // board scored, waiting before the end screen
	PhaseGameOver               // end screen, waiting for restart
)

var phaseNames = map[Phase]string{
	PhasePreRound:  "PreRound",
	PhaseActive:    "Active",
	PhaseResolving: "Resolving",
	PhaseGameOver:  "GameOver",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}

// AcceptsAssign reports whether draws are allowed in this phase.
func (p Phase) AcceptsAssign() bool {
	return p == PhasePreRound || p == PhaseActive
}
