package main

import (
	"fmt"
	"net/http"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/vinayakray19/conquest-of-infinity/internal"
)

func NewServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diary web front end",
		Long:  `Run a local web server rendering the diary pages against the remote API.`,
		Args:  cobra.NoArgs,
		RunE:  makeServeRunner(a),
	}

	cmd.Flags().String("addr", "", "Listen address (host:port)")
	cmd.Flags().Bool("watch", false, "Reload the config file when it changes")

	return cmd
}

func makeServeRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		api, _ := cmd.Flags().GetString("api")
		addrFlag, _ := cmd.Flags().GetString("addr")
		watch, _ := cmd.Flags().GetBool("watch")

		cfg, err := a.config()
		if err != nil {
			return err
		}
		addr := cfg.ResolveListenAddr(addrFlag)

		var handler atomic.Value
		handler.Store(a.buildHandler(cfg, api))

		if watch && a.configPath != "" {
			stop, err := a.watchConfig(cmd, api, &handler)
			if err != nil {
				return err
			}
			defer stop()
		}

		root := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.Load().(http.Handler).ServeHTTP(w, r)
		})

		fmt.Fprintf(cmd.OutOrStdout(), "Serving diary on http://%s (API: %s)\n",
			addr, cfg.ResolveAPIBase(api))

		server := &http.Server{Addr: addr, Handler: root}
		go func() {
			<-cmd.Context().Done()
			_ = server.Close()
		}()

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}
}

func (a *app) buildHandler(cfg *internal.Config, apiOverride string) http.Handler {
	session := a.session()
	client := internal.NewClient(cfg.ResolveAPIBase(apiOverride), session)
	auth := internal.NewAuthenticator(client, session)
	return internal.NewWebApp(client, auth, session).Router()
}

// watchConfig rebuilds the handler when the config file changes, so an API
// base URL edit takes effect without a restart.
func (a *app) watchConfig(cmd *cobra.Command, apiOverride string, handler *atomic.Value) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory: editors replace files, which drops file watches.
	if err := watcher.Add(filepath.Dir(a.configPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch config dir: %w", err)
	}

	go func() {
		const debounce = 500 * time.Millisecond
		timer := time.NewTimer(0)
		if !timer.Stop() {
			<-timer.C
		}
		pending := false

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != a.configPath {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if !pending {
					timer.Reset(debounce)
					pending = true
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
			case <-timer.C:
				pending = false
				cfg, err := internal.LoadConfig(a.configPath)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "reload config: %v\n", err)
					continue
				}
				handler.Store(a.buildHandler(cfg, apiOverride))
				fmt.Fprintf(cmd.OutOrStdout(), "Config reloaded (API: %s)\n",
					cfg.ResolveAPIBase(apiOverride))
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
