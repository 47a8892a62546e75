// Package control handles the pen report protocol and cursor injection.
package control

// Area is an absolute output area sent by the client UI.
type Area struct {
	CenterX float64 `json:"cx"`
	CenterY float64 `json:"cy"`
	Width   float64 `json:"w"`
	Height  float64 `json:"h"`
}

// Message is a control payload received over websocket or data channel.
type Message struct {
	T        string   `json:"t"`
	X        float64  `json:"x,omitempty"`
	Y        float64  `json:"y,omitempty"`
	Pressure uint32   `json:"pressure,omitempty"`
	Buttons  []bool   `json:"buttons,omitempty"`
	Angle    *float64 `json:"angle,omitempty"`
	Method   string   `json:"method,omitempty"`
	Mode     string   `json:"mode,omitempty"`
	Area     *Area    `json:"area,omitempty"`
	Enabled  *bool    `json:"enabled,omitempty"`
}

// Reply is sent back to the client after a report or a settings change.
type Reply struct {
	T      string  `json:"t"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Angle  float64 `json:"angle"`
	Method string  `json:"method,omitempty"`
	Mode   string  `json:"mode,omitempty"`
}
