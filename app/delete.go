package app

import (
	"bufio"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusplan/state"
	"github.com/ayoisaiah/focusplan/stats"
)

// confirm prints a warning and waits for ENTER unless --yes was given.
func (e *env) confirm(ctx *cli.Context, msg string) error {
	if ctx.Bool("yes") {
		return nil
	}

	_, err := fmt.Fprint(e.out, pterm.Warning.Sprint(msg))
	if err != nil {
		return err
	}

	reader := bufio.NewReader(e.in)

	_, _ = reader.ReadString('\n')

	return nil
}

// historyDeleteAction deletes one logged session after confirmation.
func (e *env) historyDeleteAction(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return errIDRequired.Fmt("session")
	}

	s := e.planner.State()

	id, err := state.ExpandID(s.SessionLogIDs(), ctx.Args().First())
	if err != nil {
		return err
	}

	var entry []stats.HistoryEntry

	for _, h := range stats.History(s, time.Time{}) {
		if h.ID == id {
			entry = append(entry, h)
		}
	}

	err = stats.PrintHistory(e.out, entry, e.catalog, e.now())
	if err != nil {
		return err
	}

	err = e.confirm(ctx, "The above session will be deleted permanently. Press ENTER to proceed")
	if err != nil {
		return err
	}

	e.planner.DeleteSessionLog(id)

	e.success("deleted session %s", shortID(id))

	return nil
}
