package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListCategoriesTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerGetEntryTool(srv, svc)
	registerSelectEntryTool(srv, svc)
	registerSelectCategoryTool(srv, svc)
	registerCurrentSelectionTool(srv, svc)
}

func registerListCategoriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_categories",
		mcp.WithDescription("List pokémon types, optionally filtered by a case-insensitive substring."),
		mcp.WithString("search",
			mcp.Description("Substring to match against type names."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		search := request.GetString("search", "")
		cats, err := svc.ListCategories(ctx, search)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"search":     search,
			"categories": cats,
			"count":      len(cats),
		})
	})
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List pokémon. A category filter takes precedence over the search text."),
		mcp.WithString("search",
			mcp.Description("Substring to match against pokémon names."),
		),
		mcp.WithString("category",
			mcp.Description("Type name or numeric id to filter by."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results; 0 returns all."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Search   string `json:"search"`
			Category string `json:"category"`
			Limit    int    `json:"limit"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		entries, err := svc.ListEntries(ctx, ListEntriesOptions{
			Search:   args.Search,
			Category: args.Category,
			Limit:    args.Limit,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"search":   args.Search,
			"category": args.Category,
			"entries":  entries,
			"count":    len(entries),
		})
	})
}

func registerGetEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch a single pokémon by name."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Pokémon name, case-insensitive."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.EntryByName(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSelectEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"select_entry",
		mcp.WithDescription("Select a pokémon and remember it for the next session."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Pokémon name, case-insensitive."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		sel, err := svc.SelectEntry(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(sel)
	})
}

func registerSelectCategoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"select_category",
		mcp.WithDescription("Select a type, filtering the pokémon list to it and remembering it for the next session."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Type name or numeric id."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category, err := request.RequireString("category")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		sel, err := svc.SelectCategory(ctx, category)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(sel)
	})
}

func registerCurrentSelectionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"current_selection",
		mcp.WithDescription("Report the current search text, selected type and selected pokémon."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sel, err := svc.CurrentSelection(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(sel)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
