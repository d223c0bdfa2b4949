package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/amonks/ktra/gesture"
	"github.com/amonks/ktra/internal/board"
	"github.com/amonks/ktra/internal/editor"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive task board",
	Long: `Open the interactive task board.

Keys: space or enter cycles the selected task, 1/2/3 set unstarted, doing
or done, m picks a task up to move it, d deletes, w toggles the weekly
summary and q quits. Hold the mouse on a task to drag it.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	if !editor.IsInteractive() {
		return fmt.Errorf("board requires an interactive terminal")
	}
	return withTaskSession(cmd.Context(), func(s *taskSession) error {
		longPress, err := s.config.Board.LongPressDuration(gesture.DefaultLongPress)
		if err != nil {
			return err
		}
		milestone, err := s.config.Board.MilestoneDuration(board.DefaultMilestone)
		if err != nil {
			return err
		}

		// Log lines would corrupt the alternate screen.
		s.logger.SetOutput(io.Discard)

		return board.Run(cmd.Context(), s.store, board.Options{
			LongPress: longPress,
			Milestone: milestone,
		})
	})
}
