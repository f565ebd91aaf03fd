package server

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ironsheep/color-harmony-mcp/internal/config"
	"github.com/ironsheep/color-harmony-mcp/internal/palette"
)

// callTool sends a tools/call request through handleRequest and returns the response
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// decodeToolResult unwraps the MCP text content and decodes it into v
func decodeToolResult(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content should hold one item, got %v", result["content"])
	}
	if content[0]["type"] != "text" {
		t.Errorf("content type: got %v, want text", content[0]["type"])
	}
	text, _ := content[0]["text"].(string)
	if err := json.Unmarshal([]byte(text), v); err != nil {
		t.Fatalf("failed to decode tool result %q: %v", text, err)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New(nil)
	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})

	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Fatalf("expected -32602 error, got %+v", resp.Error)
	}
}

func TestHandleToolsCall_UnknownTool(t *testing.T) {
	s := New(nil)
	resp := callTool(t, s, "image_load", map[string]interface{}{"path": "/tmp/x.png"})

	if resp.Error == nil {
		t.Fatal("Expected error for unknown tool")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
	if data, _ := resp.Error.Data.(string); !strings.Contains(data, "unknown tool") {
		t.Errorf("Error data: got %v", resp.Error.Data)
	}
}

func TestHandleColorValidate(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"#ffffff", true},
		{"#2BD9D9", true},
		{"#fff", false},
		{"ffffff", false},
	}

	s := New(nil)
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			var got ValidateResult
			decodeToolResult(t, callTool(t, s, "color_validate", map[string]interface{}{"color": tt.color}), &got)
			if got.Valid != tt.want {
				t.Errorf("Valid: got %v, want %v", got.Valid, tt.want)
			}
			if got.Color != tt.color {
				t.Errorf("Color: got %s, want %s", got.Color, tt.color)
			}
		})
	}
}

func TestHandleColorDescribe(t *testing.T) {
	s := New(nil)

	var got palette.ColorResult
	decodeToolResult(t, callTool(t, s, "color_describe", map[string]interface{}{"color": "#2BD9D9"}), &got)

	if got.Hex != "#2bd9d9" {
		t.Errorf("Hex: got %s, want #2bd9d9", got.Hex)
	}
	if got.RGB.R != 43 || got.RGB.G != 217 || got.RGB.B != 217 {
		t.Errorf("RGB: got %+v, want (43,217,217)", got.RGB)
	}
	if got.HSL.H != 180 || got.HSL.S != 69.6 || got.HSL.L != 51 {
		t.Errorf("HSL: got %v, want (180,69.6,51)", got.HSL)
	}
}

func TestHandleColorDescribe_Invalid(t *testing.T) {
	s := New(nil)

	for _, color := range []string{"", "#zzzzzz", "#fff"} {
		t.Run(color, func(t *testing.T) {
			resp := callTool(t, s, "color_describe", map[string]interface{}{"color": color})
			if resp.Error == nil {
				t.Fatal("Expected error for invalid color")
			}
			if resp.Error.Code != -32000 {
				t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
			}
		})
	}
}

func TestHandleColorConvert(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		wantHex string
	}{
		{"hex", map[string]interface{}{"from": "hex", "hex": "#D9822B"}, "#d9822b"},
		{"rgb", map[string]interface{}{"from": "rgb", "rgb": map[string]interface{}{"r": 43, "g": 217, "b": 217}}, "#2bd9d9"},
		{"rgb truncates", map[string]interface{}{"from": "rgb", "rgb": map[string]interface{}{"r": 255.9, "g": 0, "b": 0}}, "#ff0000"},
		{"rgb relative", map[string]interface{}{"from": "rgb_relative", "rgb": map[string]interface{}{"r": 0.17, "g": 0.85, "b": 0.85}}, "#2bd9d9"},
		{"hsl", map[string]interface{}{"from": "hsl", "hsl": map[string]interface{}{"h": 30, "s": 69.6, "l": 51}}, "#d9822b"},
		{"hsl wraps hue", map[string]interface{}{"from": "hsl", "hsl": map[string]interface{}{"h": 390, "s": 69.6, "l": 51}}, "#d9822b"},
		{"hsl clamps lightness", map[string]interface{}{"from": "hsl", "hsl": map[string]interface{}{"h": 0, "s": 0, "l": 140}}, "#ffffff"},
		{"hsl relative", map[string]interface{}{"from": "hsl_relative", "hsl": map[string]interface{}{"h": 0, "s": 1, "l": 0.5}}, "#ff0000"},
	}

	s := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got palette.ColorResult
			decodeToolResult(t, callTool(t, s, "color_convert", tt.args), &got)
			if got.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", got.Hex, tt.wantHex)
			}
		})
	}
}

func TestHandleColorConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"unknown format", map[string]interface{}{"from": "cmyk"}},
		{"missing rgb", map[string]interface{}{"from": "rgb"}},
		{"rgb out of range", map[string]interface{}{"from": "rgb", "rgb": map[string]interface{}{"r": 256, "g": 0, "b": 0}}},
		{"negative rgb", map[string]interface{}{"from": "rgb", "rgb": map[string]interface{}{"r": -1, "g": 0, "b": 0}}},
		{"missing hsl", map[string]interface{}{"from": "hsl_relative"}},
		{"bad hex", map[string]interface{}{"from": "hex", "hex": "#12345"}},
	}

	s := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if resp := callTool(t, s, "color_convert", tt.args); resp.Error == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestHandleColorHarmony(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		wantHues []float64
	}{
		{"complementary", map[string]interface{}{"color": "#d9822b", "scheme": "complementary"}, []float64{210}},
		{"split complementary", map[string]interface{}{"color": "#d9822b", "scheme": "split-complementary"}, []float64{180, 240}},
		{"analogous", map[string]interface{}{"color": "#d9822b", "scheme": "analogous"}, []float64{60, 0}},
		{"analogous with count", map[string]interface{}{"color": "#d9822b", "scheme": "analogous", "count": 4}, []float64{60, 0, 90, 330}},
		{"triadic", map[string]interface{}{"color": "#d9822b", "scheme": "triadic"}, []float64{150, 270}},
		{"tetradic", map[string]interface{}{"color": "#d9822b", "scheme": "tetradic"}, []float64{120, 210, 300}},
		{"double complementary", map[string]interface{}{"color": "#d9822b", "scheme": "double-complementary", "second_color": "#2bd9d9"}, []float64{210, 0}},
	}

	s := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got palette.Palette
			decodeToolResult(t, callTool(t, s, "color_harmony", tt.args), &got)

			if len(got.Colors) != len(tt.wantHues) {
				t.Fatalf("colors: got %d, want %d", len(got.Colors), len(tt.wantHues))
			}
			for i, h := range tt.wantHues {
				if float64(got.Colors[i].HSL.H) != h {
					t.Errorf("color %d hue: got %v, want %v", i, got.Colors[i].HSL.H, h)
				}
			}
		})
	}
}

func TestHandleColorHarmony_ConfigDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Defaults.AnalogousCount = 4
	cfg.Defaults.Step = 20
	s := New(cfg)

	var analogous palette.Palette
	decodeToolResult(t, callTool(t, s, "color_harmony", map[string]interface{}{"color": "#d9822b", "scheme": "analogous"}), &analogous)
	if len(analogous.Colors) != 4 {
		t.Errorf("analogous colors: got %d, want 4 from config", len(analogous.Colors))
	}

	var mono palette.Palette
	decodeToolResult(t, callTool(t, s, "color_harmony", map[string]interface{}{"color": "#d9822b", "scheme": "monochromatic"}), &mono)
	if mono.Colors[0].HSL.L != 71 {
		t.Errorf("first tone lightness: got %v, want 71 from config step", mono.Colors[0].HSL.L)
	}
}

func TestHandleColorHarmony_Errors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"missing color", map[string]interface{}{"scheme": "triadic"}},
		{"unknown scheme", map[string]interface{}{"color": "#d9822b", "scheme": "pentadic"}},
		{"double complementary without second", map[string]interface{}{"color": "#d9822b", "scheme": "double-complementary"}},
		{"bad second color", map[string]interface{}{"color": "#d9822b", "scheme": "double-complementary", "second_color": "blue"}},
	}

	s := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if resp := callTool(t, s, "color_harmony", tt.args); resp.Error == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestHandleColorDoubleComplementary(t *testing.T) {
	s := New(nil)

	var got palette.Palette
	decodeToolResult(t, callTool(t, s, "color_double_complementary", map[string]interface{}{
		"color1": "#d9822b",
		"color2": "#2bd9d9",
	}), &got)

	if got.Scheme != palette.DoubleComplementary {
		t.Errorf("Scheme: got %s", got.Scheme)
	}
	if got.Second == nil || got.Second.Hex != "#2bd9d9" {
		t.Errorf("Second: got %+v", got.Second)
	}
	if got.Colors[0].Hex != "#2b82d9" {
		t.Errorf("first complement: got %s, want #2b82d9", got.Colors[0].Hex)
	}
	if got.Colors[1].Hex != "#d92b2b" {
		t.Errorf("second complement: got %s, want #d92b2b", got.Colors[1].Hex)
	}
}

func TestHandleColorAdjust(t *testing.T) {
	tests := []struct {
		adjustment string
		percent    float64
		wantL      float64
	}{
		{"lighter", 0, 61},
		{"darker", 10, 41},
		{"lighter", 60, 11},
		{"saturate", 10, 51},
	}

	s := New(nil)
	for _, tt := range tests {
		t.Run(tt.adjustment, func(t *testing.T) {
			var got palette.ColorResult
			decodeToolResult(t, callTool(t, s, "color_adjust", map[string]interface{}{
				"color":      "#d9822b",
				"adjustment": tt.adjustment,
				"percent":    tt.percent,
			}), &got)
			if float64(got.HSL.L) != tt.wantL {
				t.Errorf("L: got %v, want %v", got.HSL.L, tt.wantL)
			}
		})
	}
}

func TestHandleColorAdjust_Unknown(t *testing.T) {
	s := New(nil)
	resp := callTool(t, s, "color_adjust", map[string]interface{}{"color": "#d9822b", "adjustment": "brighten"})
	if resp.Error == nil {
		t.Fatal("Expected error for unknown adjustment")
	}
}

func TestHandleColorMono(t *testing.T) {
	s := New(nil)

	var got palette.Palette
	decodeToolResult(t, callTool(t, s, "color_mono", map[string]interface{}{"color": "#d9822b"}), &got)

	want := []float64{61, 71, 41, 31}
	if len(got.Colors) != len(want) {
		t.Fatalf("colors: got %d, want %d", len(got.Colors), len(want))
	}
	for i, l := range want {
		if float64(got.Colors[i].HSL.L) != l {
			t.Errorf("tone %d: L got %v, want %v", i, got.Colors[i].HSL.L, l)
		}
	}
}

func TestHandleColorSwatch(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]interface{}
		wantWidth int
		wantCount int
	}{
		{"explicit colors", map[string]interface{}{"colors": []string{"#ff0000", "#00ff00"}, "size": 10}, 20, 2},
		{"scheme", map[string]interface{}{"color": "#d9822b", "scheme": "tetradic", "size": 10}, 40, 4},
		{"single color with config size", map[string]interface{}{"color": "#d9822b"}, 48, 1},
		{"scaled", map[string]interface{}{"color": "#d9822b", "size": 10, "scale": 3}, 30, 1},
	}

	s := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got palette.SwatchResult
			decodeToolResult(t, callTool(t, s, "color_swatch", tt.args), &got)
			if got.Width != tt.wantWidth {
				t.Errorf("Width: got %d, want %d", got.Width, tt.wantWidth)
			}
			if len(got.Colors) != tt.wantCount {
				t.Errorf("Colors: got %d, want %d", len(got.Colors), tt.wantCount)
			}
			if got.ImageBase64 == "" {
				t.Error("ImageBase64 is empty")
			}
		})
	}
}

func TestHandleColorSwatch_Errors(t *testing.T) {
	tooMany := make([]string, palette.MaxSwatchColors+1)
	for i := range tooMany {
		tooMany[i] = "#2bd9d9"
	}

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"nothing to draw", map[string]interface{}{}},
		{"bad color in list", map[string]interface{}{"colors": []string{"#ff0000", "red"}}},
		{"unknown scheme", map[string]interface{}{"color": "#d9822b", "scheme": "pentadic"}},
		{"too large", map[string]interface{}{"color": "#d9822b", "size": 600}},
		{"too many colors", map[string]interface{}{"colors": tooMany}},
	}

	s := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if resp := callTool(t, s, "color_swatch", tt.args); resp.Error == nil {
				t.Error("Expected error")
			}
		})
	}
}
