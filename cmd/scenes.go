package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-adaptive-pathtracer/pkg/scene"
)

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Objects", "Field of view", "Aperture"})
	for _, name := range scene.Names() {
		built, err := scene.Lookup(name)
		if err != nil {
			return err
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%d", built.Scene.Len()),
			fmt.Sprintf("%.0f°", built.View.VFov),
			fmt.Sprintf("%.2f", built.View.Aperture),
		})
	}
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}
