// Command server exposes the Queens solver over HTTP.
//
// POST /api/v1/solve accepts the board's JSON wire encoding and answers
// with the winning cell indices. The encoding is self-describing:
//
//	{"rows": 4, "cols": 4, "colors": [0,1,2,3], "idxToColor": [0,0,0,0, ...]}
//
// Scraping the board out of a page and applying the returned indices back
// to it are the caller's concern; this process only solves.
package main

import (
	"errors"
	"flag"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/queens/board"
	"github.com/katalvlaran/queens/solver"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	e := gin.Default()
	v1 := e.Group("/api").
		Group("/v1")

	v1.POST("/solve", solveBoard)

	if err := e.Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("run server")
	}
}

// solveRequest mirrors the board wire encoding. Colors declares the region
// token set; IdxToColor assigns a token to every row-major cell index.
type solveRequest struct {
	Rows       int           `json:"rows"`
	Cols       int           `json:"cols"`
	Colors     []board.Color `json:"colors"`
	IdxToColor []board.Color `json:"idxToColor"`
}

type solveResponse struct {
	Solution []int `json:"solution"`
}

func solveBoard(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("decode solve request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to decode request", "message": err.Error()})
		return
	}

	b, err := board.New(req.Rows, req.Cols, req.IdxToColor)
	if err != nil {
		log.Err(err).Int("rows", req.Rows).Int("cols", req.Cols).Msg("build board")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board", "message": err.Error()})
		return
	}

	// The declared token set, when present, must match what the cells use.
	if len(req.Colors) != 0 && len(req.Colors) != b.ColorCount() {
		log.Warn().Int("declared", len(req.Colors)).Int("derived", b.ColorCount()).Msg("color set mismatch")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board", "message": "declared colors do not match cell assignments"})
		return
	}

	res, err := solver.Solve(b)
	if errors.Is(err, solver.ErrNoSolution) {
		log.Info().Int("rows", req.Rows).Int("cols", req.Cols).Int("expanded", res.Expanded).Msg("board has no solution")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No solution", "message": err.Error()})
		return
	}
	if err != nil {
		log.Err(err).Msg("solve board")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board", "message": err.Error()})
		return
	}

	log.Info().Int("rows", req.Rows).Int("cols", req.Cols).Int("expanded", res.Expanded).Msg("solved board")
	c.JSON(http.StatusOK, solveResponse{Solution: res.Cells})
}
