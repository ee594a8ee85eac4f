// Package api exposes the simulator over HTTP. It is a thin adapter: request
// decoding and validation happen here, all scheduling logic stays in sim/.
package api

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/mlq-sim/mlq-sim/sim"
	"github.com/mlq-sim/mlq-sim/sim/workload"
)

// SimulateRequest is the JSON body of POST /api/v1/mlq.
type SimulateRequest struct {
	Quantum1  int64          `json:"quantum1,omitempty"` // 0 = default (3)
	Quantum2  int64          `json:"quantum2,omitempty"` // 0 = default (5)
	Processes []ProcessInput `json:"processes"`
}

// ProcessInput is a single process record in a SimulateRequest.
type ProcessInput struct {
	ID       string `json:"id"`
	Burst    int64  `json:"burst"`
	Arrival  int64  `json:"arrival"`
	Queue    int    `json:"queue"`
	Priority int    `json:"priority"`
}

// ProcessResult carries the computed timing metrics for one process.
type ProcessResult struct {
	ID             string `json:"id"`
	Burst          int64  `json:"burst"`
	Arrival        int64  `json:"arrival"`
	Queue          int    `json:"queue"`
	Priority       int    `json:"priority"`
	WaitingTime    int64  `json:"waiting_time"`
	CompletionTime int64  `json:"completion_time"`
	ResponseTime   int64  `json:"response_time"`
	TurnaroundTime int64  `json:"turnaround_time"`
}

// AggregateResult carries the run-wide means, one decimal of precision is
// the caller's concern.
type AggregateResult struct {
	AvgWaiting    float64 `json:"avg_waiting"`
	AvgCompletion float64 `json:"avg_completion"`
	AvgResponse   float64 `json:"avg_response"`
	AvgTurnaround float64 `json:"avg_turnaround"`
}

// SimulateResponse is the JSON body returned by POST /api/v1/mlq. Aggregate
// is omitted when no process completed.
type SimulateResponse struct {
	Processes []ProcessResult  `json:"processes"`
	Aggregate *AggregateResult `json:"aggregate,omitempty"`
}

// SchedulerHandler serves simulation requests.
type SchedulerHandler struct{}

func NewSchedulerHandler() *SchedulerHandler {
	return &SchedulerHandler{}
}

// Simulate runs one multilevel-queue simulation for the posted process set.
func (h *SchedulerHandler) Simulate(ctx *fiber.Ctx) error {
	var req SimulateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	if req.Quantum1 < 0 || req.Quantum2 < 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "quanta must be non-negative",
		})
	}

	procs := make([]*sim.Process, 0, len(req.Processes))
	for _, in := range req.Processes {
		p := sim.NewProcess(in.ID, in.Burst, in.Arrival, in.Queue, in.Priority)
		if err := workload.ValidateProcess(p); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		procs = append(procs, p)
	}
	workload.SortByArrival(procs)

	cfg := sim.DefaultSchedulerConfig()
	if req.Quantum1 > 0 {
		cfg.Quantum1 = req.Quantum1
	}
	if req.Quantum2 > 0 {
		cfg.Quantum2 = req.Quantum2
	}

	s := sim.NewSimulator(cfg, procs)
	s.Run()

	return ctx.JSON(buildResponse(s.Metrics))
}

// buildResponse maps completed processes to the wire format, sorted by
// identifier like the file report.
func buildResponse(m *sim.Metrics) SimulateResponse {
	resp := SimulateResponse{
		Processes: make([]ProcessResult, 0, len(m.Completed)),
	}
	for _, p := range m.Completed {
		resp.Processes = append(resp.Processes, ProcessResult{
			ID:             p.ID,
			Burst:          p.BurstTime,
			Arrival:        p.ArrivalTime,
			Queue:          p.Queue,
			Priority:       p.Priority,
			WaitingTime:    p.WaitingTime,
			CompletionTime: p.CompletionTime,
			ResponseTime:   p.ResponseTime,
			TurnaroundTime: p.TurnaroundTime,
		})
	}
	sort.Slice(resp.Processes, func(i, j int) bool {
		return resp.Processes[i].ID < resp.Processes[j].ID
	})
	if agg, ok := m.Aggregate(); ok {
		resp.Aggregate = &AggregateResult{
			AvgWaiting:    agg.AvgWaiting,
			AvgCompletion: agg.AvgCompletion,
			AvgResponse:   agg.AvgResponse,
			AvgTurnaround: agg.AvgTurnaround,
		}
	}
	return resp
}

// Register mounts the scheduler routes on the app.
func Register(app *fiber.App) {
	handler := NewSchedulerHandler()
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/mlq", handler.Simulate)
}
