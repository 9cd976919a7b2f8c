package tasks

import (
	"errors"

	"github.com/MKhiriev/go-task-keeper/internal/apperrors"
)

// ErrCycleDetected is wrapped into the InvalidParameter error returned by
// composite constructors when the supplied member graph contains a cycle or
// exceeds the traversal depth limit.
var ErrCycleDetected = errors.New("task graph contains a cycle")

// maxTraversalDepth bounds cycle detection so that a graph mutated into a
// cycle after construction still cannot drive the check into unbounded
// recursion.
const maxTraversalDepth = 1000

// checkAcyclic verifies that no task in the supplied graph (transitively)
// contains itself. Detection walks composite members depth-first, tracking
// the current path by task identity.
func checkAcyclic(roots []Task) error {
	onPath := make(map[Task]bool)

	var visit func(t Task, depth int) error
	visit = func(t Task, depth int) error {
		if t == nil {
			return apperrors.InvalidParameter("members", nil, errors.New("nil task in member set"))
		}
		if depth > maxTraversalDepth {
			return apperrors.InvalidParameter("members", t.Name(), ErrCycleDetected)
		}
		if onPath[t] {
			return apperrors.InvalidParameter("members", t.Name(), ErrCycleDetected)
		}

		onPath[t] = true
		defer delete(onPath, t)

		for _, child := range children(t) {
			if err := visit(child, depth+1); err != nil {
				return err
			}
		}

		return nil
	}

	for _, root := range roots {
		if err := visit(root, 0); err != nil {
			return err
		}
	}

	return nil
}

// children returns the member references a task variant holds. Leaf tasks
// have none.
func children(t Task) []Task {
	switch task := t.(type) {
	case *LinkedTask:
		return task.members
	case *BlockableTask:
		all := make([]Task, 0, len(task.completed)+len(task.blockedBy))
		all = append(all, task.completed...)
		all = append(all, task.blockedBy...)
		return all
	default:
		return nil
	}
}
