package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/color-harmony-mcp/internal/harmony"
	"github.com/ironsheep/color-harmony-mcp/internal/palette"
)

// ErrUnknownTool is returned by ExecuteTool for a name it does not serve.
var ErrUnknownTool = errors.New("unknown tool")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_describe", "color_harmony").
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

	result, err := s.ExecuteTool(params.Name, params.Arguments)
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

// ExecuteTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters from the config
//  3. Parses hex colors
//  4. Calls the appropriate harmony/palette function
//  5. Returns the result or error
func (s *Server) ExecuteTool(name string, args json.RawMessage) (interface{}, error) {
	s.debugf("tool call %s %s", name, args)

	switch name {
	// Parsing and Conversion
	case "color_validate":
		return s.handleColorValidate(args)
	case "color_describe":
		return s.handleColorDescribe(args)
	case "color_convert":
		return s.handleColorConvert(args)

	// Harmonies
	case "color_harmony":
		return s.handleColorHarmony(args)
	case "color_double_complementary":
		return s.handleColorDoubleComplementary(args)

	// Monochromatic
	case "color_adjust":
		return s.handleColorAdjust(args)
	case "color_mono":
		return s.handleColorMono(args)

	// Preview
	case "color_swatch":
		return s.handleColorSwatch(args)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// parseColorArg parses a required hex color argument.
func parseColorArg(field, value string) (harmony.RGB, error) {
	if value == "" {
		return harmony.RGB{}, fmt.Errorf("%s is required", field)
	}
	c, err := harmony.ParseHex(value)
	if err != nil {
		return harmony.RGB{}, fmt.Errorf("%s: %w", field, err)
	}
	return c, nil
}

// parseOptionalColorArg parses a hex color argument that may be empty.
func parseOptionalColorArg(field, value string) (*harmony.RGB, error) {
	if value == "" {
		return nil, nil
	}
	c, err := parseColorArg(field, value)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// === Parsing and Conversion Handlers ===

type colorArgs struct {
	Color string `json:"color"`
}

// ValidateResult reports whether a string is a hex color.
type ValidateResult struct {
	Color string `json:"color"`
	Valid bool   `json:"valid"`
}

func (s *Server) handleColorValidate(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return &ValidateResult{Color: a.Color, Valid: harmony.IsColor(a.Color)}, nil
}

func (s *Server) handleColorDescribe(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		return nil, fmt.Errorf("color is required")
	}
	return palette.Describe(a.Color)
}

type colorConvertArgs struct {
	From string `json:"from"`
	Hex  string `json:"hex"`
	RGB  *struct {
		R float64 `json:"r"`
		G float64 `json:"g"`
		B float64 `json:"b"`
	} `json:"rgb"`
	HSL *struct {
		H float64 `json:"h"`
		S float64 `json:"s"`
		L float64 `json:"l"`
	} `json:"hsl"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var result palette.ColorResult
	switch a.From {
	case "hex":
		c, err := parseColorArg("hex", a.Hex)
		if err != nil {
			return nil, err
		}
		result = palette.FromRGB(c)
	case "rgb":
		if a.RGB == nil {
			return nil, fmt.Errorf("rgb is required for from=rgb")
		}
		for _, v := range []float64{a.RGB.R, a.RGB.G, a.RGB.B} {
			if v < 0 || v >= 256 {
				return nil, fmt.Errorf("rgb channel %g outside 0-255", v)
			}
		}
		// Fractional channels are truncated.
		result = palette.FromRGB(harmony.RGB{R: uint8(a.RGB.R), G: uint8(a.RGB.G), B: uint8(a.RGB.B)})
	case "rgb_relative":
		if a.RGB == nil {
			return nil, fmt.Errorf("rgb is required for from=rgb_relative")
		}
		rel := harmony.RelRGB{R: a.RGB.R, G: a.RGB.G, B: a.RGB.B}
		result = palette.FromRGB(rel.Absolute())
	case "hsl":
		if a.HSL == nil {
			return nil, fmt.Errorf("hsl is required for from=hsl")
		}
		result = palette.FromHSL(harmony.NewHSL(a.HSL.H, a.HSL.S, a.HSL.L))
	case "hsl_relative":
		if a.HSL == nil {
			return nil, fmt.Errorf("hsl is required for from=hsl_relative")
		}
		abs := harmony.RelHSL{H: a.HSL.H, S: a.HSL.S, L: a.HSL.L}.Absolute()
		result = palette.FromHSL(harmony.NewHSL(float64(abs.H), float64(abs.S), float64(abs.L)))
	default:
		return nil, fmt.Errorf("unknown source format: %q", a.From)
	}
	return &result, nil
}

// === Harmony Handlers ===

type colorHarmonyArgs struct {
	Color       string  `json:"color"`
	Scheme      string  `json:"scheme"`
	Count       int     `json:"count"`
	Step        float64 `json:"step"`
	SecondColor string  `json:"second_color"`
}

func (s *Server) handleColorHarmony(args json.RawMessage) (interface{}, error) {
	var a colorHarmonyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	base, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}
	second, err := parseOptionalColorArg("second_color", a.SecondColor)
	if err != nil {
		return nil, err
	}
	return palette.Build(palette.Scheme(a.Scheme), base, s.paletteOptions(a.Count, a.Step, second))
}

// paletteOptions fills unset harmony arguments from the config.
func (s *Server) paletteOptions(count int, step float64, second *harmony.RGB) palette.Options {
	cfg := s.Config()
	if count == 0 {
		count = cfg.Defaults.AnalogousCount
	}
	if step == 0 {
		step = cfg.Defaults.Step
	}
	return palette.Options{Step: step, AnalogousCount: count, Second: second}
}

type colorPairArgs struct {
	Color1 string `json:"color1"`
	Color2 string `json:"color2"`
}

func (s *Server) handleColorDoubleComplementary(args json.RawMessage) (interface{}, error) {
	var a colorPairArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c1, err := parseColorArg("color1", a.Color1)
	if err != nil {
		return nil, err
	}
	c2, err := parseColorArg("color2", a.Color2)
	if err != nil {
		return nil, err
	}
	return palette.Build(palette.DoubleComplementary, c1, palette.Options{Second: &c2})
}

// === Monochromatic Handlers ===

type colorAdjustArgs struct {
	Color      string  `json:"color"`
	Adjustment string  `json:"adjustment"`
	Percent    float64 `json:"percent"`
}

func (s *Server) handleColorAdjust(args json.RawMessage) (interface{}, error) {
	var a colorAdjustArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	base, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}
	if a.Percent == 0 {
		a.Percent = s.Config().Defaults.Step
	}
	return palette.Adjust(base, palette.Adjustment(a.Adjustment), a.Percent)
}

type colorMonoArgs struct {
	Color   string  `json:"color"`
	Percent float64 `json:"percent"`
}

func (s *Server) handleColorMono(args json.RawMessage) (interface{}, error) {
	var a colorMonoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	base, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}
	return palette.Build(palette.Monochromatic, base, s.paletteOptions(0, a.Percent, nil))
}

// === Preview Handlers ===

type colorSwatchArgs struct {
	Colors      []string `json:"colors"`
	Color       string   `json:"color"`
	Scheme      string   `json:"scheme"`
	SecondColor string   `json:"second_color"`
	Size        int      `json:"size"`
	Scale       float64  `json:"scale"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	cfg := s.Config()
	if a.Size == 0 {
		a.Size = cfg.Swatch.Size
	}
	if a.Scale == 0 {
		a.Scale = cfg.Swatch.Scale
	}

	var colors []harmony.RGB
	switch {
	case len(a.Colors) > 0:
		colors = make([]harmony.RGB, len(a.Colors))
		for i, h := range a.Colors {
			c, err := parseColorArg(fmt.Sprintf("colors[%d]", i), h)
			if err != nil {
				return nil, err
			}
			colors[i] = c
		}
	case a.Scheme != "":
		base, err := parseColorArg("color", a.Color)
		if err != nil {
			return nil, err
		}
		second, err := parseOptionalColorArg("second_color", a.SecondColor)
		if err != nil {
			return nil, err
		}
		p, err := palette.Build(palette.Scheme(a.Scheme), base, s.paletteOptions(0, 0, second))
		if err != nil {
			return nil, err
		}
		colors = p.All()
	default:
		base, err := parseColorArg("color", a.Color)
		if err != nil {
			return nil, fmt.Errorf("either colors or color is required: %w", err)
		}
		colors = []harmony.RGB{base}
	}

	return palette.RenderSwatch(colors, a.Size, a.Scale)
}
