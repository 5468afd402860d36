package mcp

import (
	"context"
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ka2n/minigrep/grep"
	"github.com/ka2n/minigrep/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
	"github.com/morikuni/failure/v2"
)

var validate = validator.New()

func InitTools() []server.ServerTool {
	return []server.ServerTool{
		newServerTool(SearchFile()),
	}
}

// SearchResult is the JSON payload returned by the search_file tool
type SearchResult struct {
	Query      string   `json:"query"`
	FilePath   string   `json:"file_path"`
	IgnoreCase bool     `json:"ignore_case"`
	Count      int      `json:"count"`
	Matches    []string `json:"matches"`
}

func SearchFile() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"search_file",
			mcp.WithDescription("Return every line of a text file that contains the query, in file order"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Substring to search for; empty matches every line")),
			mcp.WithString("file_path", mcp.Required(), mcp.Description("Path of the file to search")),
			mcp.WithString("ignore_case", mcp.Description(`"true" or "false"; overrides the server's IGNORE_CASE environment`)),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Query      *string `mapstructure:"query"`
				FilePath   *string `mapstructure:"file_path" validate:"omitempty,min=1"`
				IgnoreCase *string `mapstructure:"ignore_case"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			// absent arguments are left out so Resolve reports them
			var positional []string
			for _, arg := range []*string{args.Query, args.FilePath, args.IgnoreCase} {
				if arg == nil {
					break
				}
				positional = append(positional, *arg)
			}

			_, envIgnoreCase := os.LookupEnv(grep.IgnoreCaseEnv)
			cfg, err := grep.Resolve(positional, envIgnoreCase)
			if err != nil {
				return toolError(err), nil
			}

			matches, err := grep.Run(cfg)
			if err != nil {
				return toolError(err), nil
			}
			log.Debug("search_file", "file_path", cfg.FilePath, "matches", len(matches))

			b, err := json.Marshal(SearchResult{
				Query:      cfg.Query,
				FilePath:   cfg.FilePath,
				IgnoreCase: cfg.IgnoreCase,
				Count:      len(matches),
				Matches:    matches,
			})
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(string(b)), nil
		}
}

func toolError(err error) *mcp.CallToolResult {
	if msg := failure.MessageOf(err); msg != "" {
		return mcp.NewToolResultError(msg.String())
	}
	return mcp.NewToolResultError(err.Error())
}
