package cmd

import (
	"bytes"

	"github.com/df07/go-progressive-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the registered scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	logger.Noticef("available scenes\n%s", formatSceneList(scene.List()))
	return nil
}

func formatSceneList(infos []scene.Info) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Group", "Description"})
	for _, info := range infos {
		table.Append([]string{info.ID, info.DisplayName, info.Group, info.Description})
	}
	table.Render()
	return buf.String()
}
