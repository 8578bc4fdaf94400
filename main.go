package main

import (
	"fmt"
	"os"

	"github.com/df07/go-progressive-pathtracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes progressively using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Render one of the built-in scenes one sample per pixel per pass. Every pass
refines the running average of each pixel; the image after the last pass is
written as PNG or PPM depending on the output file extension.

Interrupting the render saves the last completed pass.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "start the web interface",
			Description: `
Serve the scene list and stream progressive renders to the browser as
server-sent events.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:   "port, p",
					Value:  8080,
					Usage:  "port to listen on",
					EnvVar: "PT_PORT",
				},
				cli.StringFlag{
					Name:  "static",
					Value: "web/static",
					Usage: "directory with the web interface files",
				},
			},
			Action: cmd.Serve,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
