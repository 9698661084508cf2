package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerSelectionResource(srv, svc)
	registerCategoriesResource(srv, svc)
	registerEntryTemplate(srv, svc)
}

func registerSelectionResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"pokedex://selection",
		"Selection",
		mcp.WithResourceDescription("The current search text, selected type and selected pokémon."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		sel, err := svc.CurrentSelection(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, sel)
	})
}

func registerCategoriesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"pokedex://categories",
		"Types",
		mcp.WithResourceDescription("Every pokémon type in load order."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		cats, err := svc.ListCategories(ctx, "")
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"categories": cats,
			"count":      len(cats),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerEntryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"pokedex://entries/{name}",
		"Pokémon Details",
		mcp.WithTemplateDescription("Detailed information about a single pokémon."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := templateArg(request.Params.Arguments["name"])
		if name == "" {
			return nil, fmt.Errorf("pokémon name is required")
		}

		dto, err := svc.EntryByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"entry": dto})
	})
}

// templateArg unwraps a URI template argument, which the server may deliver
// as a string or a single-element slice.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
