package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amonks/ktra/internal/editor"
	"github.com/amonks/ktra/internal/listflags"
	internalstrings "github.com/amonks/ktra/internal/strings"
	"github.com/amonks/ktra/internal/ui"
	"github.com/amonks/ktra/task"
)

// add
var addCmd = &cobra.Command{
	Use:   "add <title>...",
	Short: "Add a task",
	Long: `Add a task to the top of the list.

The title is all arguments joined with spaces. Runs of whitespace are
collapsed to one space.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var addPoints int

// cycle
var cycleCmd = &cobra.Command{
	Use:   "cycle <id>...",
	Short: "Advance tasks to their next status (unstarted, doing, done, unstarted)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCycle,
}

// status
var statusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Set a task's status directly",
	Args:  cobra.ExactArgs(2),
	RunE:  runStatus,
}

// edit
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Long: `Edit a task's title, points or status.

With no flags on a terminal, opens $EDITOR on a TOML view of the task.
Use --no-edit to skip the editor, or --edit to force it.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editTitle  string
	editPoints int
	editStatus string
	editEdit   bool
	editNoEdit bool
)

// delete
var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete tasks",
	Long: `Delete tasks.

Asks for confirmation on a terminal. Pass --yes to skip the prompt; it is
required when stdin is not a terminal.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

var deleteYes bool

// show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

// list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in board order",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listJSON   bool
	listStatus string
)

// move
var moveCmd = &cobra.Command{
	Use:   "move <dragged-id> <target-id>",
	Short: "Move a task to another task's position",
	Long: `Move a task to another task's position.

Both tasks must be in the same group: active (unstarted or doing) or done.
The positions of every task in both groups are renumbered.`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(addCmd, cycleCmd, statusCmd, editCmd, deleteCmd, showCmd, listCmd, moveCmd)

	addCmd.Flags().IntVarP(&addPoints, "points", "p", 0, "Point estimate ("+pointsUsage()+")")

	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().IntVarP(&editPoints, "points", "p", 0, "New point estimate ("+pointsUsage()+")")
	editCmd.Flags().StringVar(&editStatus, "status", "", "New status ("+statusUsage()+")")
	editCmd.Flags().BoolVarP(&editEdit, "edit", "e", false, "Open $EDITOR (default if interactive)")
	editCmd.Flags().BoolVar(&editNoEdit, "no-edit", false, "Do not open $EDITOR")

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking")

	listflags.AddJSONFlag(showCmd, &showJSON)

	listflags.AddJSONFlag(listCmd, &listJSON)
	listflags.AddStatusFlag(listCmd, &listStatus)
}

func runAdd(cmd *cobra.Command, args []string) error {
	return withTaskSession(cmd.Context(), func(s *taskSession) error {
		created, err := s.store.Create(cmd.Context(), strings.Join(args, " "), task.Points(addPoints))
		if created == nil {
			return err
		}
		highlight := storeHighlighter(s.store)
		fmt.Printf("Created task %s: %s (%s)\n", highlight(created.ID), created.Title, ui.PointBadge(created.Points))
		return err
	})
}

func runCycle(cmd *cobra.Command, args []string) error {
	return withTaskSession(cmd.Context(), func(s *taskSession) error {
		ids, err := resolveTaskIDs(s.store, args)
		if err != nil {
			return err
		}
		highlight := storeHighlighter(s.store)
		for _, id := range ids {
			before, err := s.store.Find(id)
			if err != nil {
				return err
			}
			updated, milestone, err := s.store.Cycle(cmd.Context(), id)
			if updated == nil {
				return err
			}
			fmt.Printf("Cycled %s: %s (%s -> %s)\n", highlight(updated.ID), updated.Title, before.Status, updated.Status)
			if milestone != nil {
				fmt.Println(ui.MilestoneBanner(*milestone, 0))
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	status, err := task.ParseStatus(args[1])
	if err != nil {
		return err
	}
	return withTaskSession(cmd.Context(), func(s *taskSession) error {
		id, err := s.store.Resolve(args[0])
		if err != nil {
			return err
		}
		updated, err := s.store.SetStatus(cmd.Context(), id, status)
		if updated == nil {
			return err
		}
		highlight := storeHighlighter(s.store)
		fmt.Printf("Set %s to %s: %s\n", highlight(updated.ID), updated.Status, updated.Title)
		return err
	})
}

func runEdit(cmd *cobra.Command, args []string) error {
	hasFlags := cmd.Flags().Changed("title") ||
		cmd.Flags().Changed("points") ||
		cmd.Flags().Changed("status")

	return withTaskSession(cmd.Context(), func(s *taskSession) error {
		id, err := s.store.Resolve(args[0])
		if err != nil {
			return err
		}

		var (
			opts      task.UpdateOptions
			newStatus *task.Status
		)
		if shouldUseEditor(hasFlags, editEdit, editNoEdit, editor.IsInteractive()) {
			existing, err := s.store.Find(id)
			if err != nil {
				return err
			}
			applyEditFlags(cmd, existing)
			parsed, err := editor.EditTask(existing)
			if err != nil {
				return err
			}
			opts = parsed.ToUpdateOptions()
			status := parsed.StatusValue()
			newStatus = &status
		} else {
			if !hasFlags {
				return fmt.Errorf("at least one of --title, --points or --status is required (use --edit to open editor)")
			}
			if cmd.Flags().Changed("title") {
				opts.Title = &editTitle
			}
			if cmd.Flags().Changed("points") {
				points := task.Points(editPoints)
				opts.Points = &points
			}
			if cmd.Flags().Changed("status") {
				status, err := task.ParseStatus(editStatus)
				if err != nil {
					return err
				}
				newStatus = &status
			}
		}

		updated, err := s.store.Update(cmd.Context(), id, opts)
		if err != nil {
			return err
		}
		if newStatus != nil {
			updated, err = s.store.SetStatus(cmd.Context(), id, *newStatus)
			if err != nil {
				return err
			}
		}

		highlight := storeHighlighter(s.store)
		fmt.Printf("Updated %s: %s\n", highlight(updated.ID), updated.Title)
		return nil
	})
}

// applyEditFlags pre-fills the editor view with any flags given alongside
// --edit.
func applyEditFlags(cmd *cobra.Command, item *task.Task) {
	if cmd.Flags().Changed("title") {
		item.Title = editTitle
	}
	if cmd.Flags().Changed("points") {
		item.Points = task.Points(editPoints)
	}
	if cmd.Flags().Changed("status") {
		item.Status = task.Status(internalstrings.NormalizeLowerTrimSpace(editStatus))
	}
}

func shouldUseEditor(hasFlags bool, editFlag bool, noEditFlag bool, interactive bool) bool {
	if editFlag {
		return true
	}
	if noEditFlag {
		return false
	}
	if hasFlags {
		return false
	}
	return interactive
}

var errDeleteNeedsConfirmation = errors.New("refusing to delete without confirmation (pass --yes)")

func runDelete(cmd *cobra.Command, args []string) error {
	return withTaskSession(cmd.Context(), func(s *taskSession) error {
		ids, err := resolveTaskIDs(s.store, args)
		if err != nil {
			return err
		}
		highlight := storeHighlighter(s.store)

		var reader *bufio.Reader
		if !deleteYes {
			if !editor.IsInteractive() {
				return errDeleteNeedsConfirmation
			}
			reader = bufio.NewReader(cmd.InOrStdin())
		}

		for _, id := range ids {
			item, err := s.store.Find(id)
			if err != nil {
				return err
			}
			if reader != nil {
				ok, err := confirm(reader, cmd.OutOrStdout(), fmt.Sprintf("Delete %s %q?", highlight(item.ID), item.Title))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Printf("Kept %s: %s\n", highlight(item.ID), item.Title)
					continue
				}
			}
			if err := s.store.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted %s: %s\n", highlight(item.ID), item.Title)
		}
		return nil
	})
}

// confirm asks a yes/no question. Anything but y or yes is a no.
func confirm(reader *bufio.Reader, out io.Writer, message string) (bool, error) {
	fmt.Fprintf(out, "%s [y/n]: ", message)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	switch internalstrings.NormalizeLowerTrimSpace(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	return withTaskSession(cmd.Context(), func(s *taskSession) error {
		ids, err := resolveTaskIDs(s.store, args)
		if err != nil {
			return err
		}
		items := make([]task.Task, 0, len(ids))
		for _, id := range ids {
			item, err := s.store.Find(id)
			if err != nil {
				return err
			}
			items = append(items, *item)
		}

		if showJSON {
			return encodeJSONToStdout(items)
		}

		highlight := storeHighlighter(s.store)
		now := s.store.Now()
		for i, item := range items {
			if i > 0 {
				fmt.Println()
			}
			fmt.Print(formatTaskDetail(item, highlight, now))
		}
		return nil
	})
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := listflags.StatusFilter(cmd, listStatus)
	if err != nil {
		return err
	}

	return withTaskSession(cmd.Context(), func(s *taskSession) error {
		ordered := listflags.FilterByStatus(s.store.Ordered(), filter)

		if listJSON {
			return encodeJSONToStdout(ordered)
		}

		prefixLengths := task.NewIDIndex(s.store.List()).PrefixLengths()
		printTaskTable(ordered, prefixLengths, s.store.Now())
		return nil
	})
}

func runMove(cmd *cobra.Command, args []string) error {
	return withTaskSession(cmd.Context(), func(s *taskSession) error {
		ids, err := resolveTaskIDs(s.store, args)
		if err != nil {
			return err
		}
		dragged, err := s.store.Find(ids[0])
		if err != nil {
			return err
		}
		target, err := s.store.Find(ids[1])
		if err != nil {
			return err
		}
		if _, err := s.store.Move(cmd.Context(), dragged.ID, target.ID); err != nil {
			return err
		}

		highlight := storeHighlighter(s.store)
		fmt.Printf("Moved %s: %s (to the position of %s)\n", highlight(dragged.ID), dragged.Title, highlight(target.ID))
		return nil
	})
}

func resolveTaskIDs(store *task.Store, prefixes []string) ([]string, error) {
	ids := make([]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		id, err := store.Resolve(prefix)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
