package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AbheetChaudhary/PolyGone/pkg/errors"
	"github.com/AbheetChaudhary/PolyGone/pkg/graph"
	"github.com/AbheetChaudhary/PolyGone/pkg/play"
	"github.com/AbheetChaudhary/PolyGone/pkg/selection"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	remove bool // run the remove command after the clicks
	strict bool // fail when any click or the removal is rejected
}

// checkCommand creates the non-interactive replay command.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check EDGE...",
		Short: "Replay edge clicks and print each outcome",
		Long: `Replay edge clicks against the active level and print each outcome.

Edges are written a-b and may be comma-separated. Rejected clicks are reported
and skipped, just as in the game. With --remove, the remove command runs after
the last click.`,
		Example: `  polygone check 1-2 2-6 1-6 --remove
  polygone check 1-2,3-4 --strict`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := play.ParseEdges(args)
			if err != nil {
				return err
			}
			ctrl, err := c.newGame(play.LogListener{Logger: loggerFromContext(cmd.Context())}, nil)
			if err != nil {
				return err
			}
			rejected := replay(cmd.OutOrStdout(), ctrl, edges, opts.remove)
			if opts.strict && rejected > 0 {
				return fmt.Errorf("%d actions rejected", rejected)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.remove, "remove", false, "run the remove command after the clicks")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit with an error if any action is rejected")

	return cmd
}

// replay applies the clicks to ctrl, printing one line per action, and
// returns the number of rejected actions.
func replay(w io.Writer, ctrl *play.Controller, edges []graph.Edge, remove bool) int {
	rejected := 0
	for _, e := range edges {
		out, err := ctrl.OnEdgeClicked(e)
		if err != nil {
			rejected++
			printError(w, "%s %s", e, rejection(err))
			continue
		}
		printSuccess(w, "%s %s%s", out.Action, out.Edge, chainNote(out))
	}

	if remove {
		r, err := ctrl.OnRemoveCommand()
		if err != nil {
			rejected++
			printError(w, "remove %s", rejection(err))
		} else {
			printSuccess(w, "removed %s", joinEdges(r.Chain))
			if len(r.Vertices) > 0 {
				printDetail(w, "pruned vertices %s", joinIDs(r.Vertices))
			}
			if r.Cleared {
				printSuccess(w, "level %s cleared", ctrl.Name())
			}
		}
	}

	sel := ctrl.Selection()
	if len(sel) > 0 {
		printInfo(w, "selection %s (%s)", joinEdges(sel), stateName(ctrl.ChainFormed()))
	}
	printStats(w, len(ctrl.Vertices()), len(ctrl.Edges()))
	return rejected
}

func rejection(err error) string {
	if code := errors.GetCode(err); code != "" {
		return fmt.Sprintf("rejected: %s (%s)", errors.UserMessage(err), code)
	}
	return "failed: " + err.Error()
}

func chainNote(out selection.Outcome) string {
	if !out.StateChanged {
		return ""
	}
	if out.ChainFormed {
		return ", chain formed"
	}
	return ", chain broken"
}

func stateName(formed bool) string {
	if formed {
		return selection.Closed.String()
	}
	return selection.Open.String()
}

func joinEdges(edges []graph.Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

func joinIDs(ids []graph.VertexID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, " ")
}
