// Package api exposes timeline and metrics computation over HTTP.
package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"procsim/internal/report"
	"procsim/internal/sched"
)

// TimelineRequest is the body of POST /api/v1/timeline.
type TimelineRequest struct {
	Algorithm string          `json:"algorithm"`
	Quantum   *int            `json:"quantum,omitempty"` // nil selects the default
	Processes []sched.Process `json:"processes"`
}

// TimelineResponse carries the computed timeline and its metrics.
type TimelineResponse struct {
	Algorithm     string               `json:"algorithm"`
	Quantum       int                  `json:"quantum,omitempty"`
	Timeline      []string             `json:"timeline"`
	Gantt         []report.Segment     `json:"gantt"`
	Metrics       []sched.Metric       `json:"metrics"`
	MostEfficient *sched.Metric        `json:"most_efficient,omitempty"`
	Summary       sched.Summary        `json:"summary"`
	ReadyQueues   [][]sched.QueueEntry `json:"ready_queues,omitempty"`
}

// Handler serves the simulator endpoints.
type Handler struct {
	logger         *slog.Logger
	defaultQuantum int
}

// NewHandler creates a handler. defaultQuantum applies to requests that omit the quantum.
func NewHandler(logger *slog.Logger, defaultQuantum int) *Handler {
	return &Handler{logger: logger, defaultQuantum: defaultQuantum}
}

// NewApp wires the routes into a fiber app.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "procsim",
		DisableStartupMessage: true,
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")
	{
		v1.Get("/algorithms", h.Algorithms)
		v1.Post("/timeline", h.Timeline)
	}
	return app
}

// Algorithms lists the supported policies.
func (h *Handler) Algorithms(c *fiber.Ctx) error {
	out := make([]fiber.Map, 0, len(sched.Algorithms))
	for _, a := range sched.Algorithms {
		out = append(out, fiber.Map{"name": a.String(), "title": a.Title()})
	}
	return c.JSON(out)
}

// Timeline computes the timeline, metrics and summary for the requested policy.
func (h *Handler) Timeline(c *fiber.Ctx) error {
	var req TimelineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	algo, err := sched.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	quantum := h.defaultQuantum
	if req.Quantum != nil {
		quantum = *req.Quantum
	}

	var (
		tl    sched.Timeline
		trace sched.ReadyQueueTrace
	)
	if algo == sched.RoundRobin {
		tl, trace, err = sched.TraceRoundRobin(req.Processes, quantum)
	} else {
		tl, err = sched.ComputeTimeline(req.Processes, algo, quantum)
	}
	if err != nil {
		h.logger.Info("timeline rejected", "algorithm", algo, "error", err)
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	metrics := sched.ComputeMetrics(tl, req.Processes)
	resp := TimelineResponse{
		Algorithm: algo.String(),
		Timeline:  tl.Names(),
		Gantt:     report.Segments(tl),
		Metrics:   metrics,
		Summary:   sched.Summarize(tl, metrics),
	}
	if best, ok := sched.MostEfficient(metrics); ok {
		resp.MostEfficient = &best
	}
	if algo == sched.RoundRobin {
		resp.Quantum = quantum
		resp.ReadyQueues = make([][]sched.QueueEntry, len(trace))
		for i, st := range trace {
			resp.ReadyQueues[i] = st.Ready
		}
	}

	h.logger.Debug("timeline computed", "algorithm", algo, "processes", len(req.Processes), "length", len(tl))
	return c.JSON(resp)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, sched.ErrEmptyProcessSet),
		errors.Is(err, sched.ErrInvalidQuantum),
		errors.Is(err, sched.ErrDuplicateProcessName),
		errors.Is(err, sched.ErrInvalidProcess),
		errors.Is(err, sched.ErrUnknownAlgorithm):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
