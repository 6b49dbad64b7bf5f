package main

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/justestif/go-fyyur/internal/listings"
	"github.com/justestif/go-fyyur/internal/web"
	webfs "github.com/justestif/go-fyyur/web"
)

func serveCmd(envFile *string) *cobra.Command {
	var runMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*envFile)
			if err != nil {
				return err
			}
			defer a.close()

			if runMigrations {
				if err := a.migrate(); err != nil {
					return err
				}
			}

			database, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()

			templates, err := fs.Sub(webfs.TemplatesFS, "templates")
			if err != nil {
				return fmt.Errorf("creating templates filesystem: %w", err)
			}

			static, err := fs.Sub(webfs.StaticFS, "static")
			if err != nil {
				return fmt.Errorf("creating static filesystem: %w", err)
			}

			server, err := web.NewServer(web.ServerConfig{
				Addr:           a.cfg.Server.Addr(),
				TemplatesFS:    templates,
				StaticFS:       static,
				Listings:       listings.New(database),
				Logger:         a.logger,
				SecureCookie:   a.cfg.Server.SecureCookie,
				AllowedOrigins: a.cfg.CORS.AllowedOrigins,
			})
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}

			return server.Run()
		},
	}

	cmd.Flags().BoolVar(&runMigrations, "migrate", false, "apply pending migrations before serving")

	return cmd
}
