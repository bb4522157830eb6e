package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/render"
	"github.com/sirupsen/logrus"
)

// maxMapBytes caps an uploaded map body.
const maxMapBytes = 8 << 20

var (
	errMapNotFound = errors.New("map not found")
	errBadMapID    = errors.New("map id must be a UUID")
)

// MapsConfig configures a MapController.
type MapsConfig struct {
	Store     *Store
	Logger    *logrus.Logger
	Heuristic string // default heuristic when a request names none
	CellSize  int    // PNG cell size
	Workers   int    // parallel searches for /paths
}

// MapController serves map upload, reload, search and rendering.
type MapController struct {
	store     *Store
	log       *logrus.Logger
	heuristic astar.Heuristic
	cellSize  int
	workers   int
}

// NewMapController validates cfg and returns a controller.
func NewMapController(cfg MapsConfig) (*MapController, error) {
	if cfg.Store == nil {
		return nil, errors.New("server: store is nil")
	}
	h, err := astar.ParseHeuristic(cfg.Heuristic)
	if err != nil {
		return nil, err
	}
	if cfg.CellSize < 1 {
		cfg.CellSize = render.DefaultCellSize
	}
	if cfg.Workers < 1 {
		cfg.Workers = astar.DefaultOptions().Workers
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	return &MapController{
		store:     cfg.Store,
		log:       cfg.Logger,
		heuristic: h,
		cellSize:  cfg.CellSize,
		workers:   cfg.Workers,
	}, nil
}

// Register mounts the map routes on route.
func (mc *MapController) Register(route *gin.RouterGroup) {
	maps := route.Group("/maps")
	{
		maps.POST("", mc.create)
		maps.GET("/:id", mc.get)
		maps.PUT("/:id", mc.replace)
		maps.DELETE("/:id", mc.remove)
		maps.POST("/:id/path", mc.path)
		maps.POST("/:id/paths", mc.paths)
		maps.GET("/:id/image.png", mc.image)
	}
}

// create parses the request body as a map file and stores it.
func (mc *MapController) create(ctx *gin.Context) {
	g, ok := mc.parseBody(ctx)
	if !ok {
		return
	}
	id := mc.store.Add(g)
	mc.log.WithFields(logrus.Fields{"map": id, "width": g.Width(), "height": g.Height()}).Info("map loaded")
	ctx.JSON(http.StatusCreated, summarize(id, g, false))
}

// get returns the map as JSON, or in the text file format with ?format=text.
func (mc *MapController) get(ctx *gin.Context) {
	id, g, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	if ctx.Query("format") == "text" {
		var buf bytes.Buffer
		if err := gridmap.Write(&buf, g); err != nil {
			abort(ctx, http.StatusInternalServerError, err)
			return
		}
		ctx.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
		return
	}
	ctx.JSON(http.StatusOK, summarize(id, g, true))
}

// replace reloads an existing map wholesale.
func (mc *MapController) replace(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	g, ok := mc.parseBody(ctx)
	if !ok {
		return
	}
	if !mc.store.Replace(id, g) {
		abort(ctx, http.StatusNotFound, errMapNotFound)
		return
	}
	mc.log.WithField("map", id).Info("map reloaded")
	ctx.JSON(http.StatusOK, summarize(id, g, false))
}

func (mc *MapController) remove(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if !mc.store.Delete(id) {
		abort(ctx, http.StatusNotFound, errMapNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// path runs one search from the map's start to the requested goal.
// An out-of-bounds goal is rejected before any search runs.
func (mc *MapController) path(ctx *gin.Context) {
	id, g, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	var req PathRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abort(ctx, http.StatusBadRequest, err)
		return
	}
	if err := g.Validate(*req.Goal); err != nil {
		abort(ctx, http.StatusUnprocessableEntity, err)
		return
	}
	h, ok := mc.resolveHeuristic(ctx, req.Heuristic)
	if !ok {
		return
	}

	res, err := astar.Find(g, g.Start(), *req.Goal, astar.WithHeuristic(h))
	if err != nil {
		abort(ctx, http.StatusInternalServerError, err)
		return
	}
	mc.log.WithFields(logrus.Fields{
		"map": id, "goal": req.Goal.String(), "found": res.Found, "cost": res.Cost, "expanded": res.Expanded,
	}).Debug("path search")
	ctx.JSON(http.StatusOK, PathResponse{Goal: *req.Goal, Result: res})
}

// paths runs one search per goal in parallel.
func (mc *MapController) paths(ctx *gin.Context) {
	id, g, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	var req PathsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abort(ctx, http.StatusBadRequest, err)
		return
	}
	for i, goal := range req.Goals {
		if err := g.Validate(goal); err != nil {
			abort(ctx, http.StatusUnprocessableEntity, fmt.Errorf("goals[%d]: %w", i, err))
			return
		}
	}
	h, ok := mc.resolveHeuristic(ctx, req.Heuristic)
	if !ok {
		return
	}

	results, err := astar.FindAll(ctx.Request.Context(), g, g.Start(), req.Goals,
		astar.WithHeuristic(h), astar.WithWorkers(mc.workers))
	if err != nil {
		abort(ctx, http.StatusServiceUnavailable, err)
		return
	}
	resp := PathsResponse{Results: make([]PathResponse, len(results))}
	for i, r := range results {
		resp.Results[i] = PathResponse{Goal: req.Goals[i], Result: r}
	}
	mc.log.WithFields(logrus.Fields{"map": id, "goals": len(req.Goals)}).Debug("batch path search")
	ctx.JSON(http.StatusOK, resp)
}

// image renders the map as PNG; with ?goal=x,y the path to it is drawn too.
func (mc *MapController) image(ctx *gin.Context) {
	_, g, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	if _, _, err := render.Size(g, mc.cellSize); err != nil {
		abort(ctx, http.StatusUnprocessableEntity, err)
		return
	}
	var ov render.Overlay
	if raw, has := ctx.GetQuery("goal"); has {
		goal, err := gridmap.ParseCell(raw)
		if err != nil {
			abort(ctx, http.StatusBadRequest, err)
			return
		}
		if err = g.Validate(goal); err != nil {
			abort(ctx, http.StatusUnprocessableEntity, err)
			return
		}
		h, ok := mc.resolveHeuristic(ctx, ctx.Query("heuristic"))
		if !ok {
			return
		}
		res, err := astar.Find(g, g.Start(), goal, astar.WithHeuristic(h))
		if err != nil {
			abort(ctx, http.StatusInternalServerError, err)
			return
		}
		ov = render.Overlay{Path: res.Path, Goal: &goal}
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, g, ov, mc.cellSize); err != nil {
		abort(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

// parseBody reads and parses a map from the request body, replying 400 on failure.
func (mc *MapController) parseBody(ctx *gin.Context) (*gridmap.Grid, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxMapBytes))
	if err != nil {
		abort(ctx, http.StatusRequestEntityTooLarge, err)
		return nil, false
	}
	g, err := gridmap.Parse(bytes.NewReader(body))
	if err != nil {
		abort(ctx, http.StatusBadRequest, err)
		return nil, false
	}
	return g, true
}

// lookup resolves the :id parameter to a stored grid, replying 404 when absent.
func (mc *MapController) lookup(ctx *gin.Context) (uuid.UUID, *gridmap.Grid, bool) {
	id, ok := parseID(ctx)
	if !ok {
		return uuid.Nil, nil, false
	}
	g, found := mc.store.Get(id)
	if !found {
		abort(ctx, http.StatusNotFound, errMapNotFound)
		return uuid.Nil, nil, false
	}
	return id, g, true
}

// resolveHeuristic maps a request's heuristic name, falling back to the default.
func (mc *MapController) resolveHeuristic(ctx *gin.Context, name string) (astar.Heuristic, bool) {
	if name == "" {
		return mc.heuristic, true
	}
	h, err := astar.ParseHeuristic(name)
	if err != nil {
		abort(ctx, http.StatusBadRequest, err)
		return nil, false
	}
	return h, true
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		abort(ctx, http.StatusNotFound, errBadMapID)
		return uuid.Nil, false
	}
	return id, true
}

func abort(ctx *gin.Context, status int, err error) {
	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}
