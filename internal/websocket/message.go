package websocket

import "encoding/json"

// Event names on the wire.
const (
	EventAnalyze  = "analyze"
	EventPractice = "practice"
	EventAnalysis = "analysis"
	EventError    = "error"
	EventShutdown = "shutdown"
)

type OutgoingMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// IncomingMessage keeps Data raw; the game layer decodes it per event.
type IncomingMessage struct {
	From  string          `json:"from"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}
