package strategy

// buildDropPlan precomputes the chunk sizes a collection tree tries to
// remove during length shrinking: successive halvings of the initial
// length, ending with a final step of one. It is a pure function of the
// length, computed once at tree construction.
func buildDropPlan(length int) []int {
	var plan []int
	for size := length / 2; size > 0; size /= 2 {
		plan = append(plan, size)
	}
	if length > 0 && (len(plan) == 0 || plan[len(plan)-1] != 1) {
		plan = append(plan, 1)
	}
	return plan
}

// stageMode tracks which shrink phase a collection tree is in.
type stageMode int

const (
	stageLength stageMode = iota
	stageElements
	stageKeys
	stageValues
)

// stage is the cursor into a collection tree's shrink protocol: the drop
// plan entry and offset during length shrinking, or the element index
// afterwards.
type stage struct {
	mode       stageMode
	chunkIndex int
	offset     int
	index      int
}
