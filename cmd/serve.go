package cmd

import (
	"github.com/df07/go-progressive-pathtracer/web/server"
	"github.com/urfave/cli"
)

// Serve starts the web interface.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	srv := server.NewServer(ctx.Int("port"), ctx.String("static"))
	logger.Noticef("visit http://localhost:%d to start rendering", ctx.Int("port"))
	return srv.Start()
}
