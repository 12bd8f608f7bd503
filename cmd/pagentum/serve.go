package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/pagentum/pagentum/internal/render"
)

type serveOptions struct {
	addr string
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview of the page",
		Long: `Starts a local HTTP server that re-reads the saved page and re-renders it on
every request, so edits made by other commands show up on refresh.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "Address to listen on")

	return cmd
}

func runServe(cmd *cobra.Command, flags *rootFlags, opts *serveOptions) error {
	// Open once to validate the workspace before binding the port.
	ws, err := openWorkspace(flags)
	if err != nil {
		return err
	}

	router := newPreviewRouter(flags)

	server := &http.Server{
		Addr:              opts.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ws.log.WithFields(map[string]any{"addr": opts.addr}).Info("preview server listening")
	fmt.Fprintf(cmd.OutOrStdout(), "Serving %q on http://localhost%s\n", ws.session.Project().Name, displayAddr(opts.addr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return newCommandError("serve preview", "running the HTTP server", err,
			"Another process may already be listening on the address; try a different --addr.")
	}
	return nil
}

// newPreviewRouter builds the preview routes. Each request reopens the
// workspace so the preview always reflects the latest saved state.
func newPreviewRouter(flags *rootFlags) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		ws, err := openWorkspace(flags)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		project := ws.session.Project()
		html, _ := render.New(ws.catalog).RenderLinked(project.Sections, project.Theme)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, html)
	})

	router.Get("/"+render.StylesheetName, func(w http.ResponseWriter, r *http.Request) {
		ws, err := openWorkspace(flags)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		fmt.Fprint(w, render.New(ws.catalog).RenderCSS(ws.session.Project().Theme))
	})

	return router
}

func displayAddr(addr string) string {
	if addr != "" && addr[0] == ':' {
		return addr
	}
	return ""
}
