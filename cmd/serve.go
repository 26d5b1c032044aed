package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mdview/internal/prefs"
	"github.com/ziadkadry99/mdview/internal/server"
	"github.com/ziadkadry99/mdview/internal/site"
	"github.com/ziadkadry99/mdview/internal/viewer"
)

var (
	servePort  int
	serveWatch bool
	serveOpen  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve [documents...]",
	Short: "Serve the document viewer over HTTP",
	Long: `Loads every configured document, then serves the viewer page, a JSON API
and a live-reload WebSocket. Arguments override the documents listed in the
config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("watch") {
			cfg.Watch = serveWatch
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}

		patterns := cfg.Documents
		if len(args) > 0 {
			patterns = args
		}
		docs, err := resolveDocuments(patterns, cfg)
		if err != nil {
			return err
		}

		// Open preferences database.
		database, err := prefs.Open(cfg.PrefsPath())
		if err != nil {
			return fmt.Errorf("opening preferences: %w", err)
		}
		defer database.Close()

		v := viewer.New(buildLoader(cfg), docs,
			viewer.WithThemeStore(prefs.NewThemeStore(database, cfg.DefaultDark())),
			viewer.WithDefaultDark(cfg.DefaultDark()),
			viewer.WithLogger(log),
		)
		defer v.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// A failed initial load is served as an error page; reloads may fix it.
		if err := v.Start(ctx); err != nil && !errors.Is(err, viewer.ErrSuperseded) {
			log.Warn("initial load failed", "error", err)
		}

		st, err := site.New(v,
			site.WithTitle(cfg.Title),
			site.WithHighlighter(newHighlighter(cfg)),
			site.WithLogger(log),
		)
		if err != nil {
			return err
		}
		defer st.Close()

		if cfg.Watch {
			w, err := site.NewWatcher(docs, v.Reload, log)
			if err != nil {
				return err
			}
			defer w.Close()
			go w.Run(ctx)
			log.Info("watching documents", "files", w.Watched())
		}

		srv := server.New(server.Config{Port: cfg.Port}, log, st)

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		if serveOpen {
			go site.OpenBrowser(fmt.Sprintf("http://localhost:%d", cfg.Port))
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "reload when local documents change")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the viewer in a browser")
	rootCmd.AddCommand(serveCmd)
}
