package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the maze image (bmp, png, jpg or gif)",
}

var colorProperty = map[string]interface{}{
	"type":        "string",
	"description": "Highlight colour as #RRGGBB. Default #00FF00",
	"default":     "#00FF00",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "maze_load",
			Description: "Load a maze image and report its dimensions, format, whether it is a valid maze (red entrance, blue exit, black walls, fully walled perimeter), any validation errors, the entrance and exit rectangles, and how many corridors it decomposes into.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_solve",
			Description: "Solve a maze image. Returns the solution as an ordered list of inclusive rectangles from entrance to exit. If output is given, also writes a copy of the image with the solution painted in the highlight colour; the format follows the output extension.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Optional absolute path for the solved image (bmp, png or jpg)",
					},
					"color": colorProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_corridors",
			Description: "Show how a maze was decomposed into corridors. Returns every corridor rectangle and a base64 PNG with the corridors outlined in orange and the entrance and exit in magenta. Use include_solution to fill in the solution underneath.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"include_solution": map[string]interface{}{
						"type":        "boolean",
						"description": "Fill the solution in before drawing outlines. Default false",
						"default":     false,
					},
					"color": colorProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_sample_pixel",
			Description: "Get the colour of a pixel in a maze image and the maze feature (wall, path, entrance, exit) it classifies as. Useful for diagnosing images that fail validation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
