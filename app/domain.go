package app

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/internal/ui"
	"github.com/ayoisaiah/focusplan/state"
	"github.com/ayoisaiah/focusplan/stats"
)

func shortID(id string) string {
	if len(id) > stats.ShortIDLen {
		return id[:stats.ShortIDLen]
	}

	return id
}

// joinArgs treats every positional argument as part of one name.
func joinArgs(ctx *cli.Context) string {
	return strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
}

func (e *env) domainAddAction(ctx *cli.Context) error {
	name := joinArgs(ctx)
	if name == "" {
		return errNameRequired.Fmt("domain")
	}

	color := strings.ToLower(strings.TrimSpace(ctx.String("color")))
	if !ui.KnownColor(color) {
		return errInvalidColor.Fmt(ctx.String("color"))
	}

	e.planner.AddDomain(name, color)

	s := e.planner.State()
	d := s.Domains[len(s.Domains)-1]

	e.success("added domain %s (%s)", ui.Paint(d.Color, d.Name), shortID(d.ID))

	return nil
}

func (e *env) domainDeleteAction(ctx *cli.Context) error {
	s := e.planner.State()

	if !ctx.Args().Present() {
		return errIDRequired.Fmt("domain")
	}

	id, err := state.ExpandID(s.DomainIDs(), ctx.Args().First())
	if err != nil {
		return err
	}

	d, _ := s.FindDomain(id)
	tasks := taskIDs(d.Sections...)

	err = e.confirm(ctx, fmt.Sprintf(
		"Domain %q with %d sections and %d tasks will be deleted permanently. Logged sessions are kept. Press ENTER to proceed",
		d.Name,
		len(d.Sections),
		len(tasks),
	))
	if err != nil {
		return err
	}

	e.planner.DeleteDomain(id)
	e.planner.ClearActiveTask(tasks...)

	e.success("deleted domain %s", d.Name)

	return nil
}

func (e *env) sectionAddAction(ctx *cli.Context) error {
	name := joinArgs(ctx)
	if name == "" {
		return errNameRequired.Fmt("section")
	}

	d, err := pickDomain(e.planner.State(), ctx.String("domain"))
	if err != nil {
		return err
	}

	e.planner.AddSection(d.ID, name)

	d, _ = e.planner.State().FindDomain(d.ID)
	sec := d.Sections[len(d.Sections)-1]

	e.success(
		"added section %s to %s (%s)",
		sec.Name,
		ui.Paint(d.Color, d.Name),
		shortID(sec.ID),
	)

	return nil
}

// taskIDs lists the ids of every task in sections.
func taskIDs(sections ...models.Section) []string {
	var ids []string

	for _, sec := range sections {
		for _, t := range sec.Tasks {
			ids = append(ids, t.ID)
		}
	}

	return ids
}

// resolveSection expands a section id prefix, limited to one domain when
// a domain prefix is given.
func resolveSection(
	s state.State,
	domainPrefix, sectionPrefix string,
) (models.Domain, models.Section, error) {
	if domainPrefix != "" {
		d, err := pickDomain(s, domainPrefix)
		if err != nil {
			return models.Domain{}, models.Section{}, err
		}

		sec, err := pickSection(d, sectionPrefix)

		return d, sec, err
	}

	id, err := state.ExpandID(s.SectionIDs(), sectionPrefix)
	if err != nil {
		return models.Domain{}, models.Section{}, err
	}

	sec, domainID, _ := s.FindSection(id)
	d, _ := s.FindDomain(domainID)

	return d, sec, nil
}

func (e *env) sectionDeleteAction(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return errIDRequired.Fmt("section")
	}

	d, sec, err := resolveSection(
		e.planner.State(),
		ctx.String("domain"),
		ctx.Args().First(),
	)
	if err != nil {
		return err
	}

	err = e.confirm(ctx, fmt.Sprintf(
		"Section %q of %s with %d tasks will be deleted permanently. Logged sessions are kept. Press ENTER to proceed",
		sec.Name,
		d.Name,
		len(sec.Tasks),
	))
	if err != nil {
		return err
	}

	e.planner.DeleteSection(d.ID, sec.ID)
	e.planner.ClearActiveTask(taskIDs(sec)...)

	e.success("deleted section %s", sec.Name)

	return nil
}

func (e *env) taskAddAction(ctx *cli.Context) error {
	title := joinArgs(ctx)
	if title == "" {
		return errNameRequired.Fmt("task")
	}

	estimate := ctx.Int("estimate")
	if estimate < 1 {
		return errInvalidEstimate
	}

	s := e.planner.State()

	var (
		d   models.Domain
		sec models.Section
		err error
	)

	if ctx.String("section") != "" {
		d, sec, err = resolveSection(s, ctx.String("domain"), ctx.String("section"))
	} else {
		d, err = pickDomain(s, ctx.String("domain"))
		if err == nil {
			sec, err = pickSection(d, "")
		}
	}

	if err != nil {
		return err
	}

	e.planner.AddTask(d.ID, sec.ID, title, estimate)

	id := lastTaskID(e.planner.State(), sec.ID)

	e.success(
		"added task %q to %s › %s (%s)",
		title,
		ui.Paint(d.Color, d.Name),
		sec.Name,
		shortID(id),
	)

	return nil
}

func lastTaskID(s state.State, sectionID string) string {
	sec, _, ok := s.FindSection(sectionID)
	if !ok || len(sec.Tasks) == 0 {
		return ""
	}

	return sec.Tasks[len(sec.Tasks)-1].ID
}

// resolveTask expands the task id prefix given as the first argument.
func (e *env) resolveTask(ctx *cli.Context) (state.TaskRef, error) {
	if !ctx.Args().Present() {
		return state.TaskRef{}, errIDRequired.Fmt("task")
	}

	s := e.planner.State()

	id, err := state.ExpandID(s.TaskIDs(), ctx.Args().First())
	if err != nil {
		return state.TaskRef{}, err
	}

	ref, _ := s.FindTask(id)

	return ref, nil
}

func (e *env) taskDeleteAction(ctx *cli.Context) error {
	ref, err := e.resolveTask(ctx)
	if err != nil {
		return err
	}

	e.planner.DeleteTask(ref.DomainID, ref.SectionID, ref.Task.ID)

	if e.planner.ClearActiveTask(ref.Task.ID) {
		e.info("the deleted task was active, no task is active now")
	}

	e.success("deleted task %q", ref.Task.Title)

	return nil
}

func (e *env) taskToggleAction(ctx *cli.Context) error {
	ref, err := e.resolveTask(ctx)
	if err != nil {
		return err
	}

	e.planner.ToggleTask(ref.DomainID, ref.SectionID, ref.Task.ID)

	status := "not done"
	if !ref.Task.Completed {
		status = "done"
	}

	e.success("marked %q as %s", ref.Task.Title, status)

	return nil
}

func (e *env) taskActivateAction(ctx *cli.Context) error {
	ref, err := e.resolveTask(ctx)
	if err != nil {
		return err
	}

	id := ref.Task.ID
	e.planner.SetActiveTask(&id)

	e.success("active task: %s", ui.Paint(ref.DomainColor, ref.DomainName)+" › "+ref.Task.Title)

	return nil
}

func (e *env) taskDeactivateAction(_ *cli.Context) error {
	e.planner.SetActiveTask(nil)

	e.success("no task is active")

	return nil
}
