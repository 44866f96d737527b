package plannerapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	dmn "github.com/Jellal-17/puzzle-planner-api/domain"
	"github.com/Jellal-17/puzzle-planner-api/service"
	"github.com/Jellal-17/puzzle-planner-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// replayTick is the delay between streamed replay steps, matching the
// original game's frame delay.
const replayTick = 100 * time.Millisecond

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// PlannerController exposes puzzle management and planning over HTTP,
// plus a websocket replay stream.
type PlannerController struct {
	planner i.Planner
	logger  i.Logger
}

// NewPlannerController initializes a PlannerController.
func NewPlannerController(planner i.Planner, logger i.Logger) (*PlannerController, error) {
	return &PlannerController{
		planner: planner,
		logger:  logger,
	}, nil
}

// Register registers the puzzle routes.
func (pc *PlannerController) Register(route *gin.RouterGroup) {
	puzzles := route.Group("/puzzles")
	{
		puzzles.POST("/", pc.create)
		puzzles.GET("/:ID", pc.get)
		puzzles.POST("/:ID/solve", pc.solve)
		puzzles.GET("/:ID/replay", pc.replay)
	}
}

// create handles puzzle creation requests.
func (pc *PlannerController) create(ctx *gin.Context) {
	var request CreatePuzzleRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := &dmn.Puzzle{
		Name:   request.Name,
		Rows:   request.Rows,
		Agents: request.Agents,
	}
	if err := pc.planner.CreatePuzzle(p); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, &CreatePuzzleResponse{ID: p.ID.String()})
}

// get retrieves a stored puzzle definition.
func (pc *PlannerController) get(ctx *gin.Context) {
	id, ok := pc.puzzleID(ctx)
	if !ok {
		return
	}

	p, err := pc.planner.PuzzleByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "puzzle not found"})
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// solve plans a puzzle with the requested strategy. An unsolvable
// puzzle is a 200 with solvable=false, not an error status.
func (pc *PlannerController) solve(ctx *gin.Context) {
	id, ok := pc.puzzleID(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := pc.planner.Solve(timeoutCtx, id, request.Strategy)
	switch {
	case errors.Is(err, service.ErrUnknownStrategy):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, dmn.ErrPuzzleNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "puzzle not found"})
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while planning puzzle"})
	default:
		ctx.JSON(http.StatusOK, result)
	}
}

// replay upgrades to a websocket and streams the plan one action per
// tick, the way the game loop would execute it.
func (pc *PlannerController) replay(ctx *gin.Context) {
	id, ok := pc.puzzleID(ctx)
	if !ok {
		return
	}
	strategy := ctx.DefaultQuery("strategy", "bfs")

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		pc.logger.Error(fmt.Sprintf("Upgrading replay connection: %v", err))
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	ticker := time.NewTicker(replayTick)
	defer ticker.Stop()

	err = pc.planner.Replay(ctx, id, strategy, func(step dmn.ReplayStep) error {
		<-ticker.C
		return conn.WriteJSON(step)
	})
	if err != nil {
		pc.logger.Warning(fmt.Sprintf("Replay of %s ended: %v", id, err))
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()),
			time.Now().Add(time.Second),
		)
		return
	}

	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete"),
		time.Now().Add(time.Second),
	)
}

// puzzleID parses the :ID route parameter, replying 400 on garbage.
func (pc *PlannerController) puzzleID(ctx *gin.Context) (uuid.UUID, bool) {
	idString := ctx.Params.ByName("ID")
	id, err := uuid.Parse(idString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid puzzle id"})
		return uuid.Nil, false
	}
	return id, true
}
