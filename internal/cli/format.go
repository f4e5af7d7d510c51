package cli

import "workflow/internal/task"

// truncateTasks caps a task list for dashboard sections
func truncateTasks(tasks []task.Task, n int) []task.Task {
	if len(tasks) <= n {
		return tasks
	}
	return tasks[:n]
}
