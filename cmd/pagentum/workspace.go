package main

import (
	"fmt"

	"github.com/pagentum/pagentum/internal/catalog"
	"github.com/pagentum/pagentum/internal/logger"
	"github.com/pagentum/pagentum/internal/session"
	"github.com/pagentum/pagentum/internal/store"
	"github.com/pagentum/pagentum/internal/theme"
)

// defaultProjectName seeds the slot the first time a command touches it.
const defaultProjectName = "Untitled Page"

// workspace bundles everything a command needs to act on the saved project.
type workspace struct {
	session *session.Session
	catalog *catalog.Catalog
	themes  *theme.Registry
	store   *store.FileStore
	log     *logger.Logger
}

// openWorkspace loads the project slot from the configured directory, creating
// a fresh project when the slot is empty.
func openWorkspace(flags *rootFlags) (*workspace, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("load template catalog: %w", err)
	}
	themes, err := theme.Default()
	if err != nil {
		return nil, fmt.Errorf("load theme presets: %w", err)
	}

	fileStore := store.NewFileStore(flags.dir)
	project, err := fileStore.Load()
	if err != nil {
		return nil, newCommandError("open project", "loading the saved page", err,
			"Check the project directory permissions, or point --dir at a writable directory.")
	}
	if project == nil {
		project = session.NewProject(defaultProjectName, themes)
	}

	return &workspace{
		session: session.New(project, cat, themes, fileStore, log),
		catalog: cat,
		themes:  themes,
		store:   fileStore,
		log:     log,
	}, nil
}

// save persists the session's project back to the slot.
func (w *workspace) save() error {
	if err := w.session.Save(); err != nil {
		return newCommandError("save project", "writing the saved page", err,
			"Check free disk space and directory permissions.")
	}
	return nil
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
