package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dojanjanjan/charm-reservations/internal/auth"
	"github.com/dojanjanjan/charm-reservations/internal/config"
	"github.com/dojanjanjan/charm-reservations/internal/db"
	"github.com/dojanjanjan/charm-reservations/internal/migrate"
	"github.com/dojanjanjan/charm-reservations/internal/notify"
	"github.com/dojanjanjan/charm-reservations/internal/reservations"
	"github.com/dojanjanjan/charm-reservations/internal/web"
)

func newServeCmd() *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the reservation book API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			var store reservations.Store
			if cfg.DevMode {
				store = reservations.NewMemoryStore()
			} else {
				d, err := db.Open(ctx, cfg.DatabaseURL)
				if err != nil {
					return err
				}
				defer d.Close()

				if err := d.Ping(ctx); err != nil {
					return fmt.Errorf("db ping: %w", err)
				}
				if migrateUp {
					if err := migrate.Up(ctx, d); err != nil {
						return err
					}
				}
				store = reservations.NewRepo(d)
			}

			plan, schedule, err := config.LoadFloorPlan(cfg.FloorPlanPath)
			if err != nil {
				return err
			}

			var sender notify.Sender = notify.LogSender{}
			if !cfg.DevMode && cfg.SMTPAddr != "" {
				sender = notify.SMTPSender{
					Addr:     cfg.SMTPAddr,
					Username: cfg.SMTPUsername,
					Password: cfg.SMTPPassword,
					From:     cfg.MailFrom,
				}
			}
			queue := notify.NewQueue(sender)
			go queue.Run(ctx)

			hub := web.NewHub()
			go hub.Run(ctx.Done())

			svc := &reservations.Service{
				Store:    store,
				Plan:     plan,
				Schedule: schedule,
				Sinks:    []reservations.EventSink{queue, hub},
			}

			ws := &web.Server{
				Auth:         auth.NewStore(cfg.PINHash, cfg.CookieHashKey, cfg.CookieBlockKey),
				Reservations: svc,
				Plan:         plan,
				Schedule:     schedule,
				Hub:          hub,
			}
			return web.Start(ctx, cfg.ListenAddr, ws.Routes())
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "run database migrations on startup")

	cmd.Flags().Lookup("migrate").NoOptDefVal = "true"
	return cmd
}
