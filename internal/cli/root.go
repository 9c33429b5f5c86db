// Package cli is the rulecheck command line: it runs a rule set against a board
// given in "XO./.X./..O" notation.
package cli

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rules/internal/rules"
)

const (
	modeFlag = "mode"
	markFlag = "mark"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "rulecheck",
		Short: "Check tic-tac-toe boards against a rule set",
		Long: heredoc.Docf(`
			Check tic-tac-toe boards against a rule set.

			Boards are written row by row, rows separated by "/" and "." for an
			empty cell, e.g. "XO./.X./..O". Modes: %s.
		`, modeList()),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringP(modeFlag, "m", string(rules.ModeTraditional), "Rule set to apply")

	root.AddCommand(Winner())
	root.AddCommand(Evaluate())
	root.AddCommand(WinningMoves())

	return root
}

func modeList() string {
	names := make([]string, 0, len(rules.Modes()))
	for _, mode := range rules.Modes() {
		names = append(names, string(mode))
	}

	return strings.Join(names, ", ")
}

// load - the rule set chosen by --mode and the board from args.
func load(cmd *cobra.Command, args []string) (rules.Rules, entity.Board, error) {
	mode, err := cmd.Flags().GetString(modeFlag)
	if err != nil {
		return nil, entity.Board{}, err
	}

	gameRules, err := rules.New(rules.Mode(mode))
	if err != nil {
		return nil, entity.Board{}, err
	}

	board, err := entity.ParseBoard(args[0])
	if err != nil {
		return nil, entity.Board{}, err
	}

	return gameRules, board, nil
}

func markFrom(cmd *cobra.Command) (entity.Mark, error) {
	value, err := cmd.Flags().GetString(markFlag)
	if err != nil {
		return "", err
	}

	mark := entity.Mark(strings.ToUpper(value))
	if !mark.IsPlayer() {
		return "", fmt.Errorf("%w: %q", entity.ErrInvalidMark, value)
	}

	return mark, nil
}
