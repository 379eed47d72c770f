// Package initcmd implements "rgit init": create the .rgit marker directory
// in the working directory, once.
package initcmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"rgit/internal/args"
	"rgit/internal/command"
	"rgit/internal/ctxlog"
	"rgit/internal/failure"
	"rgit/internal/outcome"
	"rgit/internal/repo"
)

var name = command.Init.String()

// Command is the init implementation. Getwd defaults to os.Getwd.
type Command struct {
	Getwd func() (string, error)
}

func (Command) Identifier() command.Identifier { return command.Init }

// Execute runs: check arguments, resolve the marker path, inspect it, create
// it. An existing marker directory yields failure.ErrAlreadyInitialized and
// leaves the filesystem alone; any other entry at that path yields
// failure.ErrCorruptMarker.
func (c Command) Execute(ctx context.Context, seq args.Sequence) outcome.Outcome[command.Report, error] {
	log := ctxlog.FromContext(ctx).With("command", name)

	marker := outcome.Bind(checkArgs(seq), c.markerPath)
	absent := outcome.Bind(marker, func(path string) outcome.Outcome[string, error] {
		log.Debug("inspecting marker", "path", path)
		return inspect(path)
	})
	created := outcome.Bind(absent, func(path string) outcome.Outcome[string, error] {
		if err := repo.Create(path); err != nil {
			return outcome.Failure[string](error(failure.Wrap(failure.ErrIO, name, path, err)))
		}
		log.Info("created repository marker", "path", path)
		return outcome.Success[string, error](path)
	})
	return outcome.Map(created, func(path string) command.Report {
		return command.Report{
			Command: command.Init,
			Path:    path,
			Message: "Initialized empty rgit repository in " + path,
		}
	})
}

func checkArgs(seq args.Sequence) outcome.Outcome[struct{}, error] {
	if rest := seq.Rest(); len(rest) > 0 {
		err := failure.Wrap(failure.ErrUsage, name, "",
			fmt.Errorf("unexpected arguments %s; usage: rgit init", strings.Join(rest, " ")))
		return outcome.Failure[struct{}](error(err))
	}
	return outcome.Success[struct{}, error](struct{}{})
}

func (c Command) markerPath(struct{}) outcome.Outcome[string, error] {
	getwd := c.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	wd, err := getwd()
	if err != nil {
		return outcome.Failure[string](error(failure.Wrap(failure.ErrIO, name, "", fmt.Errorf("resolve working directory: %w", err))))
	}
	return outcome.Success[string, error](repo.MarkerPath(wd))
}

func inspect(path string) outcome.Outcome[string, error] {
	st, err := repo.Inspect(path)
	switch {
	case err != nil:
		return outcome.Failure[string](error(failure.Wrap(failure.ErrIO, name, path, err)))
	case st == repo.MarkerDirectory:
		return outcome.Failure[string](error(failure.New(failure.ErrAlreadyInitialized, name).WithPath(path)))
	case st == repo.MarkerOther:
		return outcome.Failure[string](error(failure.New(failure.ErrCorruptMarker, name).WithPath(path)))
	}
	return outcome.Success[string, error](path)
}
