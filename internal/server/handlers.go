package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/maze-wizard/internal/geometry"
	"github.com/ironsheep/maze-wizard/internal/imaging"
	"github.com/ironsheep/maze-wizard/internal/maze"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "maze_load", "maze_solve").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "maze_load":
		return s.handleMazeLoad(args)
	case "maze_solve":
		return s.handleMazeSolve(args)
	case "maze_corridors":
		return s.handleMazeCorridors(args)
	case "maze_sample_pixel":
		return s.handleMazeSamplePixel(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type pathArgs struct {
	Path string `json:"path"`
}

func (a pathArgs) validate() error {
	if a.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

// parseHighlight returns the default highlight for an empty string.
func parseHighlight(hex string) (color.Color, error) {
	if hex == "" {
		return imaging.DefaultHighlight, nil
	}
	return imaging.ParseHexColor(hex)
}

// === maze_load ===

type mazeLoadResult struct {
	imaging.ImageInfo
	Valid         bool          `json:"valid"`
	Errors        []string      `json:"errors,omitempty"`
	Entrance      *geometry.Box `json:"entrance,omitempty"`
	Exit          *geometry.Box `json:"exit,omitempty"`
	CorridorCount int           `json:"corridor_count"`
}

func (s *Server) handleMazeLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	info, err := imaging.LoadImageInfo(s.images, a.Path)
	if err != nil {
		return nil, err
	}
	m, _, err := s.mazes.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result := &mazeLoadResult{
		ImageInfo:     *info,
		Valid:         m.IsValid(),
		CorridorCount: len(m.Corridors()),
	}
	for _, verr := range m.ValidationErrors() {
		result.Errors = append(result.Errors, verr.Error())
	}
	if b, ok := m.Entrance(); ok {
		result.Entrance = &b
	}
	if b, ok := m.Exit(); ok {
		result.Exit = &b
	}
	return result, nil
}

// === maze_solve ===

type mazeSolveArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
	Color  string `json:"color"`
}

type mazeSolveResult struct {
	Solution   []geometry.Box `json:"solution"`
	BoxCount   int            `json:"box_count"`
	PixelCount int            `json:"pixel_count"`
	Output     string         `json:"output,omitempty"`
	Highlight  string         `json:"highlight,omitempty"`
	Entrance   geometry.Box   `json:"entrance"`
	Exit       geometry.Box   `json:"exit"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
}

func (s *Server) handleMazeSolve(args json.RawMessage) (interface{}, error) {
	var a mazeSolveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := (pathArgs{Path: a.Path}).validate(); err != nil {
		return nil, err
	}
	highlight, err := parseHighlight(a.Color)
	if err != nil {
		return nil, err
	}

	m, img, err := s.mazes.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var solution []geometry.Box
	if a.Output != "" {
		res, err := imaging.WriteSolution(m, img, a.Output, highlight)
		if err != nil {
			return nil, err
		}
		solution = res.Solution
	} else {
		solution, err = m.Solve()
		if err != nil {
			return nil, err
		}
	}

	entrance, _ := m.Entrance()
	exit, _ := m.Exit()
	result := &mazeSolveResult{
		Solution:   solution,
		BoxCount:   len(solution),
		PixelCount: coveredPixels(solution),
		Output:     a.Output,
		Entrance:   entrance,
		Exit:       exit,
		Width:      m.Width(),
		Height:     m.Height(),
	}
	if a.Output != "" {
		result.Highlight = hexOf(highlight)
	}
	return result, nil
}

// coveredPixels counts the distinct pixels covered by boxes.
func coveredPixels(boxes []geometry.Box) int {
	seen := make(map[image.Point]struct{})
	for _, b := range boxes {
		for _, p := range b.Points() {
			seen[p] = struct{}{}
		}
	}
	return len(seen)
}

func hexOf(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

// === maze_corridors ===

type mazeCorridorsArgs struct {
	Path            string `json:"path"`
	IncludeSolution bool   `json:"include_solution"`
	Color           string `json:"color"`
}

type mazeCorridorsResult struct {
	*imaging.CorridorOverlayResult
	EntranceCorridor *geometry.Box `json:"entrance_corridor,omitempty"`
	ExitCorridor     *geometry.Box `json:"exit_corridor,omitempty"`
}

func (s *Server) handleMazeCorridors(args json.RawMessage) (interface{}, error) {
	var a mazeCorridorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := (pathArgs{Path: a.Path}).validate(); err != nil {
		return nil, err
	}
	highlight, err := parseHighlight(a.Color)
	if err != nil {
		return nil, err
	}

	m, img, err := s.mazes.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if !m.IsValid() {
		return nil, m.Err()
	}

	var solution []geometry.Box
	if a.IncludeSolution {
		// Unsolvable mazes are rendered without a solution.
		solution, err = m.Solve()
		if err != nil && !errors.Is(err, maze.ErrNoSolution) {
			return nil, err
		}
	}

	overlay, err := imaging.RenderCorridors(img, m, solution, highlight)
	if err != nil {
		return nil, err
	}

	result := &mazeCorridorsResult{CorridorOverlayResult: overlay}
	if b, ok := m.EntranceCorridor(); ok {
		result.EntranceCorridor = &b
	}
	if b, ok := m.ExitCorridor(); ok {
		result.ExitCorridor = &b
	}
	return result, nil
}

// === maze_sample_pixel ===

type mazeSamplePixelArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleMazeSamplePixel(args json.RawMessage) (interface{}, error) {
	var a mazeSamplePixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := (pathArgs{Path: a.Path}).validate(); err != nil {
		return nil, err
	}
	img, err := s.images.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SamplePixel(img, a.X, a.Y, s.palette)
}
