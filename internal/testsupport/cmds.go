package testsupport

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rogpeppe/go-internal/testscript"

	"github.com/amonks/ktra/task"
)

// CmdEnvSet implements "envset VAR FILE": it stores the trimmed contents
// of FILE in VAR.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}
	ts.Setenv(args[0], strings.TrimSpace(ts.ReadFile(args[1])))
}

// CmdTaskID implements "taskid FILE TITLE VAR": it finds the task titled
// TITLE in the JSON list in FILE and stores its ID in VAR.
func CmdTaskID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: taskid FILE TITLE VAR")
	}

	var items []task.Task
	if err := sonic.ConfigStd.UnmarshalFromString(ts.ReadFile(args[0]), &items); err != nil {
		ts.Fatalf("parse task list: %v", err)
	}
	for _, item := range items {
		if item.Title == args[1] {
			ts.Setenv(args[2], item.ID)
			return
		}
	}
	ts.Fatalf("task with title %q not found", args[1])
}
