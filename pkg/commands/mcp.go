package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport   string
		httpHost    string
		httpPort    int
		httpPath    string
		httpTLSCert string
		httpTLSKey  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Load both datasets and the remembered selection, then expose pokémon, types
and the selection through the Model Context Protocol. Selections made by a
client are remembered exactly as they are in the terminal UI.`,
		Example: `
pokedex mcp
pokedex mcp --transport stdio
pokedex mcp --http-port 0 --log-level info
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			t, err := mcp.ParseTransport(transport)
			if err != nil {
				return err
			}
			if httpPort < 0 || httpPort > 65535 {
				return fmt.Errorf("invalid http-port %d", httpPort)
			}
			host := strings.TrimSpace(httpHost)
			if host == "" {
				host = "127.0.0.1"
			}

			s, err := openSession(false)
			if err != nil {
				return err
			}
			defer s.Close()

			runner := mcp.Runner{
				App:              s.Service,
				Name:             "pokedex",
				Version:          version,
				Logger:           s.Logger,
				Transport:        t,
				HTTPListenAddr:   net.JoinHostPort(host, strconv.Itoa(httpPort)),
				HTTPEndpointPath: httpPath,
				HTTPServerCert:   strings.TrimSpace(httpTLSCert),
				HTTPServerKey:    strings.TrimSpace(httpTLSKey),
				OnHTTPListening: func(url string) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", url)
				},
			}
			return runner.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "HTTP endpoint path")
	cmd.Flags().StringVar(&httpTLSCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&httpTLSKey, "http-tls-key", "", "TLS private key file for HTTPS")

	topLevel.AddCommand(cmd)
}
