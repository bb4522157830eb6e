package server

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridmap"
)

// MapSummary describes a stored map. Rows is only filled by GET /maps/:id.
type MapSummary struct {
	ID      uuid.UUID    `json:"id"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Start   gridmap.Cell `json:"start"`
	Regions int          `json:"regions"`
	Rows    [][]int      `json:"rows,omitempty"`
}

// PathRequest asks for a path from the map's start to Goal.
type PathRequest struct {
	Goal      *gridmap.Cell `json:"goal" binding:"required"`
	Heuristic string        `json:"heuristic"`
}

// PathsRequest asks for paths from the map's start to every goal.
type PathsRequest struct {
	Goals     []gridmap.Cell `json:"goals" binding:"required,min=1"`
	Heuristic string         `json:"heuristic"`
}

// PathResponse is one search outcome. Found=false means no path exists.
type PathResponse struct {
	Goal gridmap.Cell `json:"goal"`
	astar.Result
}

// PathsResponse holds one PathResponse per requested goal, in request order.
type PathsResponse struct {
	Results []PathResponse `json:"results"`
}

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func summarize(id uuid.UUID, g *gridmap.Grid, withRows bool) MapSummary {
	s := MapSummary{
		ID:      id,
		Width:   g.Width(),
		Height:  g.Height(),
		Start:   g.Start(),
		Regions: len(g.Regions()),
	}
	if withRows {
		s.Rows = g.Rows()
	}
	return s
}
