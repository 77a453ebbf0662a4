package controllers

import (
	"fmt"

	"github.com/lintang-b-s/skiproute/pkg/datastructure"
	"github.com/lintang-b-s/skiproute/pkg/solver"
)

type checkpointRequest struct {
	X       int `json:"x" validate:"min=0"`
	Y       int `json:"y" validate:"min=0"`
	Penalty int `json:"penalty" validate:"min=0"`
}

type solveRequest struct {
	Checkpoints []checkpointRequest `json:"checkpoints" validate:"dive"`

	// optional overrides of the configured grid
	Speed *float64 `json:"speed" validate:"omitempty,gt=0"`
	Delay *float64 `json:"delay" validate:"omitempty,gte=0"`
	Edge  *int     `json:"edge" validate:"omitempty,gt=0"`
}

func (req *solveRequest) toCheckpoints() []datastructure.Checkpoint {
	checkpoints := make([]datastructure.Checkpoint, 0, len(req.Checkpoints))
	for _, cp := range req.Checkpoints {
		checkpoints = append(checkpoints, datastructure.NewCheckpoint(cp.X, cp.Y, cp.Penalty))
	}
	return checkpoints
}

func (req *solveRequest) overrides() (speed, delay float64, edge int) {
	speed, delay, edge = 0, -1, 0
	if req.Speed != nil {
		speed = *req.Speed
	}
	if req.Delay != nil {
		delay = *req.Delay
	}
	if req.Edge != nil {
		edge = *req.Edge
	}
	return speed, delay, edge
}

type checkpointResponse struct {
	X       int `json:"x"`
	Y       int `json:"y"`
	Penalty int `json:"penalty"`
}

type solveResponse struct {
	Cost          float64              `json:"cost"`
	CostFormatted string               `json:"cost_formatted"`
	Stops         []checkpointResponse `json:"stops"`
	Path          string               `json:"path"`
}

func NewSolveResponse(cost float64, stops []datastructure.Checkpoint, path string) solveResponse {
	stopsResp := make([]checkpointResponse, 0, len(stops))
	for _, cp := range stops {
		stopsResp = append(stopsResp, checkpointResponse{X: cp.GetX(), Y: cp.GetY(), Penalty: cp.GetPenalty()})
	}
	return solveResponse{
		Cost:          cost,
		CostFormatted: fmt.Sprintf("%.3f", cost),
		Stops:         stopsResp,
		Path:          path,
	}
}

type stepResponse struct {
	Kind           string  `json:"kind"`
	X              int     `json:"x"`
	Y              int     `json:"y"`
	Penalty        int     `json:"penalty"`
	BestCost       float64 `json:"best_cost"`
	Inserted       bool    `json:"inserted"`
	BecameBest     bool    `json:"became_best"`
	Pruned         int     `json:"pruned"`
	Live           int     `json:"live"`
	AcceptableCost float64 `json:"acceptable_cost"`
	Cost           float64 `json:"cost,omitempty"`
}

func NewStepResponse(ev solver.Event) stepResponse {
	return stepResponse{
		Kind:           string(ev.Kind),
		X:              ev.Checkpoint.GetX(),
		Y:              ev.Checkpoint.GetY(),
		Penalty:        ev.Checkpoint.GetPenalty(),
		BestCost:       ev.BestCost,
		Inserted:       ev.Inserted,
		BecameBest:     ev.BecameBest,
		Pruned:         ev.Pruned,
		Live:           ev.Live,
		AcceptableCost: ev.AcceptableCost,
		Cost:           ev.Cost,
	}
}
