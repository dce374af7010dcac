package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vyakarana-tools/rupavali"
	"github.com/vyakarana-tools/rupavali/internal/render"
	"github.com/vyakarana-tools/rupavali/pkg/adapters/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Starts the rupavali JSON API over HTTP. No session state lives on the
server: the query string of a request is a locator, the same encoding
sessions share as links.`,
	Run: func(cmd *cobra.Command, args []string) {
		render.PrintBanner(rupavali.Version)

		registry := prometheus.NewRegistry()
		app, cfg, logger, err := newApp(cmd, rupavali.WithMetrics(registry))
		if err != nil {
			fmt.Printf("Error initializing rupavali: %v\n", err)
			os.Exit(1)
		}

		listen := cfg.Listen
		if flag, _ := cmd.Flags().GetString("listen"); flag != "" {
			listen = flag
		}

		handler := httpapi.NewHandler(app,
			httpapi.WithLogger(logger),
			httpapi.WithMetrics(registry),
		)

		srv := &http.Server{
			Addr:    listen,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting rupavali server on %s\n", srv.Addr)
			fmt.Printf("Serving %d dhatus\n", app.Catalog().Len())
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("rupavali server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", "", "Address to listen on (default from config)")
}
