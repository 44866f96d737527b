// Package plannerapi provides structures and utilities for managing puzzle and plan requests and responses.
package plannerapi

import (
	dmn "github.com/Jellal-17/puzzle-planner-api/domain"
)

// CreatePuzzleRequest represents a request to store a new puzzle definition.
type CreatePuzzleRequest struct {
	Name   string         `json:"name"`
	Rows   []string       `json:"rows" binding:"required"`
	Agents []dmn.AgentDef `json:"agents" binding:"required"`
}

// CreatePuzzleResponse returns the ID assigned to a stored puzzle.
type CreatePuzzleResponse struct {
	ID string `json:"id"`
}

// SolveRequest selects the strategy used to plan a puzzle.
type SolveRequest struct {
	Strategy string `json:"strategy" binding:"required"`
}
