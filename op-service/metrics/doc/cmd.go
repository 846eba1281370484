package doc

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/l1sload/l1scroller/op-service/metrics"
)

const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

func NewSubcommands(m metrics.Documentor) cli.Commands {
	return cli.Commands{
		{
			Name:  "metrics",
			Usage: "Dumps a list of supported metrics to stdout",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: formatMarkdown,
					Usage: "Output format (json|markdown)",
				},
			},
			Action: func(ctx *cli.Context) error {
				supportedMetrics := m.Document()
				switch format := ctx.String("format"); format {
				case formatMarkdown:
					return writeMarkdown(ctx.App.Writer, supportedMetrics)
				case formatJSON:
					enc := json.NewEncoder(ctx.App.Writer)
					enc.SetIndent("", "  ")
					return enc.Encode(supportedMetrics)
				default:
					return fmt.Errorf("invalid format %q, expected %s or %s", format, formatMarkdown, formatJSON)
				}
			},
		},
	}
}

func writeMarkdown(w io.Writer, supported []metrics.DocumentedMetric) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Type", "Labels", "Description"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	for _, m := range supported {
		table.Append([]string{"`" + m.Name + "`", m.Type, strings.Join(m.Labels, ","), m.Help})
	}
	table.Render()
	return nil
}
