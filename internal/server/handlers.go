package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ironsheep/tile-filter-mcp/internal/color"
	"github.com/ironsheep/tile-filter-mcp/internal/filter"
	"github.com/ironsheep/tile-filter-mcp/internal/imaging"
	"github.com/ironsheep/tile-filter-mcp/internal/preset"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "filter_apply").
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

	if s.debug {
		log.Printf("tool call %s", params.Name)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
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
	// Source images
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Filtering
	case "filter_apply":
		return s.handleFilterApply(args)
	case "filter_list_presets":
		return s.handleFilterListPresets()
	case "filter_css_preset":
		return s.handleFilterCSSPreset(args)

	// Colors
	case "color_convert":
		return s.handleColorConvert(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response. Empty data is omitted.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	mcpErr := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		mcpErr.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   mcpErr,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating absent arguments as {}.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// === Source Image Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Filter Handlers ===

type filterApplyArgs struct {
	Path        string          `json:"path"`
	Preset      string          `json:"preset,omitempty"`
	Filters     []filter.Spec   `json:"filters,omitempty"`
	Region      *imaging.Region `json:"region,omitempty"`
	NamedRegion string          `json:"named_region,omitempty"`
	Scale       float64         `json:"scale,omitempty"`
	Parallel    *bool           `json:"parallel,omitempty"`
}

// filterApplyResult extends the rendered image with what was applied.
type filterApplyResult struct {
	*imaging.FilterResult
	Preset  string `json:"preset,omitempty"`
	Filters int    `json:"filter_count"`
}

// resolveTransform turns the preset name or filter list into a transform.
// Exactly one of the two must be given.
func (s *Server) resolveTransform(a *filterApplyArgs) (filter.Transform, int, error) {
	switch {
	case a.Preset != "" && len(a.Filters) > 0:
		return nil, 0, errors.New("specify either preset or filters, not both")
	case a.Preset != "":
		t, err := s.presets.Lookup(a.Preset)
		if err != nil {
			return nil, 0, err
		}
		return t, 1, nil
	case len(a.Filters) > 0:
		chain, err := filter.BuildChain(a.Filters)
		if err != nil {
			return nil, 0, err
		}
		return chain, chain.Len(), nil
	default:
		return nil, 0, errors.New("one of preset or filters is required")
	}
}

func (s *Server) handleFilterApply(args json.RawMessage) (interface{}, error) {
	var a filterApplyArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	// Resolve the transform before touching the image so a bad
	// configuration fails without any pixel work.
	t, count, err := s.resolveTransform(&a)
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := imaging.RenderOptions{
		Region:   a.Region,
		Scale:    a.Scale,
		Parallel: s.parallel,
	}
	if a.Parallel != nil {
		opts.Parallel = *a.Parallel
	}
	if a.NamedRegion != "" {
		if a.Region != nil {
			return nil, errors.New("specify either region or named_region, not both")
		}
		r, err := imaging.NamedRegion(img.Bounds(), a.NamedRegion)
		if err != nil {
			return nil, err
		}
		opts.Region = &r
	}

	rendered, err := imaging.FilterImage(img, t, opts)
	if err != nil {
		return nil, err
	}

	return &filterApplyResult{
		FilterResult: rendered,
		Preset:       a.Preset,
		Filters:      count,
	}, nil
}

type presetListResult struct {
	Canvas      []string `json:"canvas"`
	CSS         []string `json:"css"`
	FilterTypes []string `json:"filter_types"`
}

func (s *Server) handleFilterListPresets() (interface{}, error) {
	return &presetListResult{
		Canvas:      s.presets.Names(),
		CSS:         s.presets.CSSNames(),
		FilterTypes: filter.Types,
	}, nil
}

type filterCSSPresetArgs struct {
	Name string `json:"name"`
}

type cssPresetResult struct {
	Name    string   `json:"name"`
	Filters []string `json:"filters"`
	CSSText string   `json:"css_text"`
}

func (s *Server) handleFilterCSSPreset(args json.RawMessage) (interface{}, error) {
	var a filterCSSPresetArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	fns, err := s.presets.CSS(a.Name)
	if err != nil {
		return nil, err
	}
	return &cssPresetResult{
		Name:    a.Name,
		Filters: fns,
		CSSText: preset.CSSText(fns),
	}, nil
}

// === Color Handlers ===

type colorConvertArgs struct {
	Color      string    `json:"color,omitempty"`
	Components []float64 `json:"components,omitempty"`
	Compare    string    `json:"compare,omitempty"`
}

// colorConvertResult is the sample plus, when compare was given, the
// CIE76 difference to the compared color.
type colorConvertResult struct {
	imaging.ColorSample
	Compare  *imaging.ColorSample `json:"compare,omitempty"`
	DeltaE76 *float64             `json:"delta_e76,omitempty"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	var (
		c   color.Color
		err error
	)
	switch {
	case a.Color != "" && a.Components != nil:
		return nil, errors.New("specify either color or components, not both")
	case a.Color != "":
		c, err = color.Parse(a.Color)
	case a.Components != nil:
		c, err = color.FromComponents(a.Components)
	default:
		return nil, errors.New("one of color or components is required")
	}
	if err != nil {
		return nil, err
	}

	result := &colorConvertResult{ColorSample: imaging.NewColorSample(c)}
	if a.Compare != "" {
		other, err := color.Parse(a.Compare)
		if err != nil {
			return nil, fmt.Errorf("compare: %w", err)
		}
		sample := imaging.NewColorSample(other)
		d := c.Distance(other)
		result.Compare = &sample
		result.DeltaE76 = &d
	}
	return result, nil
}
