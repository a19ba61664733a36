package cmd

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/chasen-bettinger/fantasy-analysis/config"
	"github.com/chasen-bettinger/fantasy-analysis/web"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis queries over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Port = servePort
		}

		database, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		server, err := web.NewServer(cfg.Port, database)
		if err != nil {
			return err
		}

		shutdown := make(chan bool)
		wg := &sync.WaitGroup{}

		// Setup a handler to catch ctrl-c signals and properly shutdown everything.
		intChannel := make(chan os.Signal, 2)
		signal.Notify(intChannel, os.Interrupt)
		go func() {
			<-intChannel
			close(shutdown)

			if err := waitTimeout(wg, 10*time.Second); err != nil {
				log.Printf("timed out waiting for proper shutdown")
				os.Exit(255)
			}
		}()

		wg.Add(1)
		go server.ListenAndServe(shutdown, wg)

		// Wait for everything to stop.
		wg.Wait()
		log.Printf("server shutdown")
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (default: PORT)")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
