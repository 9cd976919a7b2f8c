// Package tasks implements the task composition model: plain boolean-done
// leaf tasks and composite tasks whose completion status is derived live
// from their member tasks.
//
// Composites never cache a completion flag. Every Done/Partial/Status call
// re-evaluates the derivation rule over the current member references, so a
// change in a member's state is observed immediately by every composite
// that references it.
package tasks

// Task is the closed set of task variants. Consumers should type-switch
// over *SimpleTask, *LinkedTask and *BlockableTask for exhaustive handling.
type Task interface {
	// Name returns the task's display name.
	Name() string

	// Done reports whether the task is complete. For composites the value is
	// derived from members on every call.
	Done() bool

	// Status returns the tri-state completion of the task. Only
	// *BlockableTask ever reports StatusInProgress; the other variants map
	// Done to StatusComplete/StatusIncomplete.
	Status() Status
}

// Status is the tri-state completion of a task.
type Status int

const (
	// StatusIncomplete means the task is not started or blocked.
	StatusIncomplete Status = iota

	// StatusComplete means the task is done.
	StatusComplete

	// StatusInProgress means some, but not all, member tasks are done and
	// the task is not blocked.
	StatusInProgress
)

// String returns a human-readable status label.
func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusInProgress:
		return "in progress"
	default:
		return "incomplete"
	}
}

// Predicate aggregates member completion into a single flag.
type Predicate func(members []Task) bool

// AllDone reports whether every member is done. An empty member set counts
// as done, matching the "complete all" default.
func AllDone(members []Task) bool {
	for _, m := range members {
		if !m.Done() {
			return false
		}
	}
	return true
}

// AnyDone reports whether at least one member is done.
func AnyDone(members []Task) bool {
	for _, m := range members {
		if m.Done() {
			return true
		}
	}
	return false
}

// SimpleTask is an immutable leaf task: a name and a boolean done flag fixed
// at construction.
type SimpleTask struct {
	name string
	done bool
}

// NewSimpleTask constructs a leaf task.
func NewSimpleTask(name string, done bool) *SimpleTask {
	return &SimpleTask{name: name, done: done}
}

// Name returns the task name.
func (t *SimpleTask) Name() string { return t.name }

// Done returns the flag fixed at construction.
func (t *SimpleTask) Done() bool { return t.done }

// Status maps the done flag to StatusComplete/StatusIncomplete.
func (t *SimpleTask) Status() Status {
	if t.done {
		return StatusComplete
	}
	return StatusIncomplete
}

// LinkedTask is a composite task whose completion is derived from member
// tasks via an aggregation predicate. The task holds live references to the
// caller-supplied members; it never snapshots their state.
type LinkedTask struct {
	name      string
	members   []Task
	predicate Predicate
}

// NewLinkedTask constructs a composite over members with the given
// aggregation predicate. A nil predicate defaults to [AllDone].
//
// The supplied member graph must be acyclic; a graph where a composite
// (transitively) contains itself fails with an [apperrors.InvalidParameter]
// wrapping [ErrCycleDetected].
func NewLinkedTask(name string, members []Task, predicate Predicate) (*LinkedTask, error) {
	if predicate == nil {
		predicate = AllDone
	}
	if err := checkAcyclic(members); err != nil {
		return nil, err
	}

	return &LinkedTask{name: name, members: members, predicate: predicate}, nil
}

// NewCompleteAllTask constructs a composite that is done once every member
// is done.
func NewCompleteAllTask(name string, members []Task) (*LinkedTask, error) {
	return NewLinkedTask(name, members, AllDone)
}

// NewCompleteAnyTask constructs a composite that is done once any member is
// done.
func NewCompleteAnyTask(name string, members []Task) (*LinkedTask, error) {
	return NewLinkedTask(name, members, AnyDone)
}

// Name returns the task name.
func (t *LinkedTask) Name() string { return t.name }

// Members returns the live member references.
func (t *LinkedTask) Members() []Task { return t.members }

// Done evaluates the aggregation predicate over the current member state.
func (t *LinkedTask) Done() bool {
	return t.predicate(t.members)
}

// Partial reports whether at least one member is done while the composite
// itself is not.
func (t *LinkedTask) Partial() bool {
	return AnyDone(t.members) && !t.Done()
}

// Status maps Done to StatusComplete/StatusIncomplete.
func (t *LinkedTask) Status() Status {
	if t.Done() {
		return StatusComplete
	}
	return StatusIncomplete
}

// BlockableTask is a composite with complete-all semantics plus a blocking
// set: when any blocker is done the task is forced incomplete regardless of
// member state. Its Status is genuinely tri-state: StatusInProgress marks a
// task with some, but not all, members done.
type BlockableTask struct {
	name      string
	completed []Task
	blockedBy []Task
}

// NewBlockableTask constructs a blockable composite. Both the completion and
// the blocking graphs must be acyclic.
func NewBlockableTask(name string, completedBy, blockedBy []Task) (*BlockableTask, error) {
	if err := checkAcyclic(completedBy); err != nil {
		return nil, err
	}
	if err := checkAcyclic(blockedBy); err != nil {
		return nil, err
	}

	return &BlockableTask{name: name, completed: completedBy, blockedBy: blockedBy}, nil
}

// Name returns the task name.
func (t *BlockableTask) Name() string { return t.name }

// Members returns the live completion member references.
func (t *BlockableTask) Members() []Task { return t.completed }

// BlockedBy returns the live blocking member references.
func (t *BlockableTask) BlockedBy() []Task { return t.blockedBy }

// Blocked reports whether any blocking member is done.
func (t *BlockableTask) Blocked() bool {
	return AnyDone(t.blockedBy)
}

// Status derives the tri-state completion from the current member state:
// blocked tasks are incomplete no matter what; otherwise all members done is
// complete, some done is in progress, none done is incomplete.
func (t *BlockableTask) Status() Status {
	if t.Blocked() {
		return StatusIncomplete
	}
	if AllDone(t.completed) {
		return StatusComplete
	}
	if AnyDone(t.completed) {
		return StatusInProgress
	}
	return StatusIncomplete
}

// Done reports full completion. An in-progress or blocked task is not done.
func (t *BlockableTask) Done() bool {
	return t.Status() == StatusComplete
}

// Partial reports whether at least one member is done while the task itself
// is not complete.
func (t *BlockableTask) Partial() bool {
	return AnyDone(t.completed) && t.Status() != StatusComplete
}
