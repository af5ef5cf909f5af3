// Package server exposes the game engine over HTTP. All mutations are
// funneled through a single worker goroutine that owns the Game, so the
// engine itself never sees concurrent writers.
package server

import "riskserver/game"

// Response is the uniform action reply: the state snapshot is always
// present, the error only when the action was rejected.
type Response struct {
	GameState *game.Snapshot `json:"game_state"`
	Error     string         `json:"error,omitempty"`
}

type task struct {
	fn    func(h *Hub) Response
	reply chan Response
}

// Hub serializes all access to the live game. Only the worker goroutine
// touches the game field.
type Hub struct {
	game  *game.Game
	tasks chan task
}

// NewHub starts the worker that owns g.
func NewHub(g *game.Game) *Hub {
	h := &Hub{
		game:  g,
		tasks: make(chan task, 100),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for t := range h.tasks {
		t.reply <- t.fn(h)
	}
}

// Do queues fn for the worker and waits for its response.
func (h *Hub) Do(fn func(h *Hub) Response) Response {
	t := task{fn: fn, reply: make(chan Response, 1)}
	h.tasks <- t
	return <-t.reply
}

// ok builds a success response from the current state.
func (h *Hub) ok() Response {
	snapshot := h.game.Snapshot()
	return Response{GameState: &snapshot}
}

// fail builds an error response; the state is still snapshot-able.
func (h *Hub) fail(err error) Response {
	snapshot := h.game.Snapshot()
	return Response{GameState: &snapshot, Error: err.Error()}
}

// result picks ok or fail depending on err.
func (h *Hub) result(err error) Response {
	if err != nil {
		return h.fail(err)
	}
	return h.ok()
}
