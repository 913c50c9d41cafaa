package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func regionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Rectangle to filter; (x1,y1) inclusive, (x2,y2) exclusive. The output is the cropped region.",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

// filterSpecSchema describes one entry of filter_apply's filters array.
// Omitted arrays take the filter's defaults.
func filterSpecSchema() map[string]interface{} {
	numbers := func(desc string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "number"},
			"description": desc,
		}
	}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"type": map[string]interface{}{
				"type":        "string",
				"description": "Filter type: grayscale, threshold, contrast, invert, channel_swap, matrix, sepia, adjust, hsl_adjust, colorize or chain",
			},
			"weights":      numbers("Grayscale channel weights [r,g,b] (default [3,4,1]); also used by threshold"),
			"thresholds":   numbers("Threshold cut-offs [r,g,b,a] on the grayscale value (default 128 each)"),
			"true_values":  numbers("Threshold output [r,g,b,a] when gray >= cut-off (default white)"),
			"false_values": numbers("Threshold output [r,g,b,a] when gray < cut-off (default opaque black)"),
			"contrast": map[string]interface{}{
				"type":        "number",
				"description": "Contrast level in (-255, 255)",
			},
			"positions": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "integer"},
				"description": "Channel swap indices [i,j], each 0-2 (default [0,1])",
			},
			"matrix":      numbers("Row-major 3x3 color matrix (default sepia)"),
			"adjustments": numbers("adjust: [dr,dg,db] clamped to 0-255 (default 20 each); hsl_adjust: [dh degrees, ds, dl] with optional alpha delta"),
			"channel": map[string]interface{}{
				"type":        "integer",
				"description": "Colorize target channel (0=red, 1=green, 2=blue)",
			},
			"values": numbers("Colorize constants for the two other channels, in index order"),
			"opacity": map[string]interface{}{
				"type":        "number",
				"description": "Alpha forced on every pixel before this filter runs (default 255)",
			},
			"filters": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "object"},
				"description": "Nested filters for type chain",
			},
		},
		"required": []string{"type"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Source Images
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel as hex, HSL and RGBA.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Filtering
		{
			Name: "filter_apply",
			Description: "Apply a named canvas preset or a list of filters to an image (or a region of it) " +
				"and return the result as base64-encoded PNG. Filters run in order, each seeing the previous output.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"preset": map[string]interface{}{
						"type":        "string",
						"description": "Canvas preset name, e.g. Grayscale1, Sepia1, HueRotate90 (see filter_list_presets)",
					},
					"filters": map[string]interface{}{
						"type":        "array",
						"items":       filterSpecSchema(),
						"description": "Filters to chain, used instead of preset",
					},
					"region": regionProperty(),
					"named_region": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"top-left", "top-right", "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half", "right-half", "center"},
						"description": "Named region to filter, used instead of region",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Resize factor for the output (default 1)",
					},
					"parallel": map[string]interface{}{
						"type":        "boolean",
						"description": "Split the pixel loop across CPUs (default from server config)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "filter_list_presets",
			Description: "List canvas preset names, CSS preset names and the filter types accepted by filter_apply.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "filter_css_preset",
			Description: "Get the CSS filter functions for a named CSS preset, e.g. Sepia60 gives sepia(60%).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "CSS preset name",
					},
				},
				"required": []string{"name"},
			},
		},

		// Colors
		{
			Name:        "color_convert",
			Description: "Convert a color between hex, rgb(a), hsl(a) and CIE Lab. Accepts a color string or 3-4 numeric RGB(A) components, and optionally measures the Delta E to a second color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Color string: #RRGGBB, #RRGGBBAA, rgb(r,g,b) or rgba(r,g,b,a)",
					},
					"components": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"description": "RGB components 0-255 with optional alpha 0-1",
					},
					"compare": map[string]interface{}{
						"type":        "string",
						"description": "Optional second color string; adds its conversions and the CIE76 Delta E to the first color",
					},
				},
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
