package cli

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rules/internal/rules"
)

func Winner() *cobra.Command {
	var row, col int

	cmd := &cobra.Command{
		Use:   "winner BOARD",
		Short: "Prints the winning mark, or \"none\"",
		Example: heredoc.Doc(`
			$ rulecheck winner "XXX/OO./..."
			X
			$ rulecheck winner --mode misere --last 0,2 "XXX/OO./..."
			O
		`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			gameRules, board, err := load(cmd, args)
			if err != nil {
				return err
			}

			var lastMove *entity.Move
			if cmd.Flags().Changed("last") {
				lastMove = &entity.Move{Row: row, Col: col}
			}

			winner := gameRules.CheckWinner(board, lastMove)
			if winner == entity.EmptyCell {
				fmt.Fprintln(cmd.OutOrStdout(), "none")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), winner)
			return nil
		},
	}

	cmd.Flags().Var(&moveValue{row: &row, col: &col}, "last", "Last move hint as ROW,COL")

	return cmd
}

func Evaluate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate BOARD",
		Short: "Prints the board score for a mark",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			gameRules, board, err := load(cmd, args)
			if err != nil {
				return err
			}

			mark, err := markFrom(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", gameRules.EvaluateBoard(board, mark))
			return nil
		},
	}

	cmd.Flags().String(markFlag, string(entity.PlayerX), "Mark to score for")

	return cmd
}

func WinningMoves() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "winning-moves BOARD",
		Short: "Lists the cells where a mark wins immediately",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			gameRules, board, err := load(cmd, args)
			if err != nil {
				return err
			}

			mark, err := markFrom(cmd)
			if err != nil {
				return err
			}

			moves := rules.WinningMoves(gameRules, board, mark)
			if len(moves) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "none")
				return nil
			}

			cells := make([]string, 0, len(moves))
			for _, move := range moves {
				cells = append(cells, move.String())
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(cells, " "))
			return nil
		},
	}

	cmd.Flags().String(markFlag, string(entity.PlayerX), "Mark to look for")

	return cmd
}
