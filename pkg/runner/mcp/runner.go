package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/pokedex/pkg/app"
	"tableflip.dev/pokedex/pkg/selection"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

// ParseTransport accepts http or stdio, case-insensitively. Empty means http.
func ParseTransport(s string) (Transport, error) {
	switch t := Transport(strings.ToLower(strings.TrimSpace(s))); t {
	case "", TransportHTTP:
		return TransportHTTP, nil
	case TransportStdio:
		return TransportStdio, nil
	default:
		return "", fmt.Errorf("unsupported transport %q (expected http or stdio)", s)
	}
}

// Runner loads the catalog once and serves it over MCP.
type Runner struct {
	App     *app.Service
	Name    string
	Version string
	Logger  *slog.Logger

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(url string)
	HTTPServerCert   string
	HTTPServerKey    string
}

// Do loads both datasets, then serves until ctx is done or stdin closes.
func (r Runner) Do(ctx context.Context) error {
	if r.App == nil {
		return errors.New("mcp runner requires a service")
	}
	log := r.logger()

	ctrl, err := r.App.Open(ctx)
	if err != nil {
		log.Error("catalog unavailable, not serving", "status", ctrl.Status().String(), "err", err)
		return fmt.Errorf("load catalog: %w", err)
	}
	log.Info("catalog loaded", "entries", len(ctrl.Entries()), "categories", ctrl.Directory().Len())
	if e, ok := ctrl.SelectedEntry(); ok {
		log.Info("restored selection", "entry", e.Name)
	}

	srv := r.newServer(ctrl)

	switch r.Transport {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", r.Transport)
	}
}

func (r Runner) newServer(ctrl *selection.Controller) *server.MCPServer {
	name := r.Name
	if name == "" {
		name = "pokedex"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Browse pokémon and their types, and read or change the remembered selection."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(ctrl)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	if (r.HTTPServerCert == "") != (r.HTTPServerKey == "") {
		return errors.New("both http tls cert and key must be provided")
	}

	path := endpointPath(r.HTTPEndpointPath)
	listenAddr := r.HTTPListenAddr
	if listenAddr == "" {
		listenAddr = "127.0.0.1:8080"
	}

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	tls := r.HTTPServerCert != ""
	url := ListenURL(ln.Addr(), tls, path)
	r.logger().Info("mcp http server listening", "url", url)
	if r.OnHTTPListening != nil {
		r.OnHTTPListening(url)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if tls {
		err = httpSrv.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (r Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func endpointPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/mcp"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// ListenURL is the URL a client should use for a listener bound to addr.
// Unspecified addresses are shown as loopback.
func ListenURL(addr net.Addr, tls bool, path string) string {
	scheme := "http"
	if tls {
		scheme = "https"
	}
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return scheme + "://" + addr.String() + endpointPath(path)
	}
	host := "127.0.0.1"
	if tcp.IP != nil && !tcp.IP.IsUnspecified() {
		host = tcp.IP.String()
	}
	return scheme + "://" + net.JoinHostPort(host, strconv.Itoa(tcp.Port)) + endpointPath(path)
}
