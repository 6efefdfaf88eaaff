package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wavefnx/roller/internal/client"
	"github.com/wavefnx/roller/internal/errors"
	"github.com/wavefnx/roller/internal/tracker"
	"github.com/wavefnx/roller/internal/ui"
)

// Output formats for `roller networks`.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// networkColumnLimit caps any single column of the plain table.
const networkColumnLimit = 40

// NetworksOptions holds options for the networks command.
type NetworksOptions struct {
	Format string
	Out    io.Writer
	// Spinner shows progress on stderr while fetching.
	Spinner bool
}

// Networks fetches the network list once and prints it.
func Networks(ctx context.Context, c *client.Client, opts NetworksOptions) error {
	networks, err := fetchNetworks(ctx, c, opts.Spinner)
	if err != nil {
		return err
	}

	sorted := append([]tracker.Network(nil), networks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Label) < strings.ToLower(sorted[j].Label)
	})

	switch opts.Format {
	case formatJSON:
		return WriteJSONSuccess(opts.Out, sorted)
	case formatYAML:
		enc := yaml.NewEncoder(opts.Out)
		enc.SetIndent(2)
		if err := enc.Encode(sorted); err != nil {
			return fmt.Errorf("failed to encode network list: %w", err)
		}
		return enc.Close()
	default:
		return writeNetworkTable(opts.Out, c.BaseURL(), sorted)
	}
}

func writeNetworkTable(w io.Writer, endpoint string, networks []tracker.Network) error {
	if len(networks) == 0 {
		_, err := fmt.Fprintf(w, "No networks reported by %s\n", endpoint)
		return err
	}

	titles := []string{"Name", "Label", "Stack", "DA", "Settlement"}
	rows := make([][]string, len(networks))
	for i, n := range networks {
		rows[i] = []string{n.Name, n.Label, n.Stack, n.DA, n.ParentChain}
	}

	header := ui.RenderHeader(ui.HeaderInfo{Version: formatVersion(version), Endpoint: endpoint})
	table := ui.RenderSimpleTable(ui.FitColumns(titles, rows, networkColumnLimit), rows)
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", header, table,
		ui.MutedStyle().Render(fmt.Sprintf("%d networks from %s", len(networks), endpoint)))
	return err
}

// outputFormat resolves --json and --yaml into one format.
func outputFormat(asJSON, asYAML bool) (string, error) {
	switch {
	case asJSON && asYAML:
		return "", errors.New(errors.ErrConfig,
			"--json and --yaml cannot be used together",
			"Pick one output format.")
	case asJSON:
		return formatJSON, nil
	case asYAML:
		return formatYAML, nil
	default:
		return formatTable, nil
	}
}
