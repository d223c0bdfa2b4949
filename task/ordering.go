package task

import "sort"

// activeRank orders the active group when no manual order exists.
var activeRank = map[Status]int{
	StatusDoing:     0,
	StatusUnstarted: 1,
}

// Ordered returns the presentation sequence: the active group followed by
// the done group. The input is not modified.
//
// A group in which any task carries a manual order is sorted by ascending
// order; tasks without one (added since the last reorder) lead the group in
// collection order, even ahead of ordered doing tasks. The browser app
// compares such mixed pairs by status instead, which is not a consistent
// ordering across a whole group, so the two views may disagree until the
// next reorder numbers every task. Otherwise the active group puts doing before unstarted
// and the done group keeps collection order.
func Ordered(tasks []Task) []Task {
	active, done := partition(cloneTasks(tasks))

	sortGroup(active, func(a, b Task) bool {
		return activeRank[a.Status] < activeRank[b.Status]
	})
	sortGroup(done, nil)

	return append(active, done...)
}

func partition(tasks []Task) (active []Task, done []Task) {
	active = make([]Task, 0, len(tasks))
	done = make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsDone() {
			done = append(done, t)
		} else {
			active = append(active, t)
		}
	}
	return active, done
}

func sortGroup(group []Task, fallback func(a, b Task) bool) {
	if hasManualOrder(group) {
		sort.SliceStable(group, func(i, j int) bool {
			return orderKey(group[i]) < orderKey(group[j])
		})
		return
	}
	if fallback != nil {
		sort.SliceStable(group, func(i, j int) bool {
			return fallback(group[i], group[j])
		})
	}
}

func hasManualOrder(group []Task) bool {
	for _, t := range group {
		if t.HasOrder() {
			return true
		}
	}
	return false
}

// orderKey places tasks without a manual order ahead of ordered ones.
func orderKey(t Task) int {
	if t.Order == nil {
		return -1
	}
	return *t.Order
}

// moveTask removes the dragged task and reinserts it at the target's
// pre-removal index, then renumbers both groups. The caller has already
// checked that both indexes exist and share a group.
func moveTask(tasks []Task, draggedIndex, targetIndex int) []Task {
	moved := tasks[draggedIndex]
	rest := make([]Task, 0, len(tasks))
	rest = append(rest, tasks[:draggedIndex]...)
	rest = append(rest, tasks[draggedIndex+1:]...)

	if targetIndex > len(rest) {
		targetIndex = len(rest)
	}
	out := make([]Task, 0, len(tasks))
	out = append(out, rest[:targetIndex]...)
	out = append(out, moved)
	out = append(out, rest[targetIndex:]...)

	renumber(out)
	return out
}

// renumber assigns positional orders: 0.. for the active group and
// DoneOrderOffset.. for the done group, in collection order.
func renumber(tasks []Task) {
	activePos, donePos := 0, 0
	for i := range tasks {
		if tasks[i].IsDone() {
			tasks[i].Order = OrderPtr(DoneOrderOffset + donePos)
			donePos++
			continue
		}
		tasks[i].Order = OrderPtr(activePos)
		activePos++
	}
}
