package server

import "github.com/ironsheep/color-harmony-mcp/internal/palette"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// hexProperty is the schema for a "#rrggbb" argument.
func hexProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"pattern":     "^#[0-9a-fA-F]{6}$",
		"description": description,
	}
}

func schemeNames() []string {
	names := make([]string, len(palette.Schemes))
	for i, s := range palette.Schemes {
		names[i] = string(s)
	}
	return names
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Parsing and Conversion
		{
			Name:        "color_validate",
			Description: "Check whether a string is a hex color of the form #rrggbb. Never fails; returns valid=false for anything else.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "String to check",
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_describe",
			Description: "Parse a hex color and return it as hex, RGB (absolute and relative) and HSL (absolute and relative).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": hexProperty("Color in #rrggbb format"),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_convert",
			Description: "Convert a color given as hex, RGB, relative RGB, HSL or relative HSL into every other representation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"from": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"hex", "rgb", "rgb_relative", "hsl", "hsl_relative"},
						"description": "Which input field to read",
					},
					"hex": hexProperty("Color in #rrggbb format (from=hex)"),
					"rgb": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"r": map[string]interface{}{"type": "number"},
							"g": map[string]interface{}{"type": "number"},
							"b": map[string]interface{}{"type": "number"},
						},
						"description": "RGB channels, 0-255 for from=rgb or 0-1 for from=rgb_relative",
					},
					"hsl": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"h": map[string]interface{}{"type": "number"},
							"s": map[string]interface{}{"type": "number"},
							"l": map[string]interface{}{"type": "number"},
						},
						"description": "HSL components, degrees/percent for from=hsl or 0-1 for from=hsl_relative. Hue wraps at 360; saturation and lightness are clamped to 0-100",
					},
				},
				"required": []string{"from"},
			},
		},

		// Harmonies
		{
			Name:        "color_harmony",
			Description: "Generate a color harmony from a base color. Returns the base color and the derived colors in every format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": hexProperty("Base color in #rrggbb format"),
					"scheme": map[string]interface{}{
						"type":        "string",
						"enum":        schemeNames(),
						"description": "Harmony rule to apply",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"enum":        []int{2, 4},
						"description": "Number of analogous colors. Defaults to the server setting (normally 2)",
					},
					"step": map[string]interface{}{
						"type":        "number",
						"description": "Lightness step in percent for the monochromatic scheme. Default 10",
					},
					"second_color": hexProperty("Second base color, required for double-complementary"),
				},
				"required": []string{"color", "scheme"},
			},
		},
		{
			Name:        "color_double_complementary",
			Description: "Return the complements of two independently chosen colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color1": hexProperty("First color in #rrggbb format"),
					"color2": hexProperty("Second color in #rrggbb format"),
				},
				"required": []string{"color1", "color2"},
			},
		},

		// Monochromatic
		{
			Name:        "color_adjust",
			Description: "Saturate, desaturate, lighten or darken a color by a percent step. Values wrap modulo 100 rather than stopping at 0 or 100.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": hexProperty("Color in #rrggbb format"),
					"adjustment": map[string]interface{}{
						"type":        "string",
						"enum":        []string{string(palette.Saturate), string(palette.Desaturate), string(palette.Lighter), string(palette.Darker)},
						"description": "Which component to change and in which direction",
					},
					"percent": map[string]interface{}{
						"type":        "number",
						"description": "Step in percent. Default 10",
						"default":     10,
					},
				},
				"required": []string{"color", "adjustment"},
			},
		},
		{
			Name:        "color_mono",
			Description: "Return four tones of a color: one and two steps lighter, then one and two steps darker.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": hexProperty("Color in #rrggbb format"),
					"percent": map[string]interface{}{
						"type":        "number",
						"description": "Lightness step in percent. Defaults to the server setting (normally 10)",
					},
				},
				"required": []string{"color"},
			},
		},

		// Preview
		{
			Name:        "color_swatch",
			Description: "Render colors as a strip of square tiles and return a base64-encoded PNG. Give either an explicit list of colors, or a base color and a scheme.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       hexProperty("Color in #rrggbb format"),
						"maxItems":    palette.MaxSwatchColors,
						"description": "Colors to draw, left to right",
					},
					"color": hexProperty("Base color when rendering a scheme"),
					"scheme": map[string]interface{}{
						"type":        "string",
						"enum":        schemeNames(),
						"description": "Harmony rule to render together with its base color",
					},
					"second_color": hexProperty("Second base color for double-complementary"),
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Tile edge in pixels. Defaults to the server setting (normally 48)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor applied to the finished strip. Default 1.0",
						"default":     1.0,
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
