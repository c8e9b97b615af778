package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/engine"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/metrics"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/risk"
)

// NewApp builds the fiber application with all scheduler routes mounted
// under /api/v1.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{AppName: "icu-cpu-scheduler"})
	app.Use(logger.New())

	v1 := app.Group("/api/v1")
	v1.Post("/schedule/:algorithm", handleSchedule)
	v1.Post("/compare", handleCompare)
	return app
}

func handleSchedule(ctx *fiber.Ctx) error {
	alg, err := engine.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	result, err := runOne(alg, &request)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(result)
}

func handleCompare(ctx *fiber.Ctx) error {
	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	var response CompareResponse
	for _, alg := range engine.Algorithms() {
		result, err := runOne(alg, &request)
		if err != nil {
			return errorResponse(ctx, err)
		}
		response.Results = append(response.Results, *result)
	}
	return ctx.JSON(response)
}

// runOne executes one algorithm for an API request, applying the documented
// option defaults for zero values.
func runOne(alg engine.Algorithm, request *ScheduleRequest) (*ScheduleResponse, error) {
	engineCfg := engine.DefaultConfig()
	if request.Quantum != 0 {
		engineCfg.Quantum = request.Quantum
	}
	riskCfg := risk.DefaultConfig()
	if request.RiskThresholdSeconds != 0 {
		riskCfg.Threshold = request.RiskThresholdSeconds
	}
	if request.StarvationMultiplier != 0 {
		riskCfg.StarvationMultiplier = request.StarvationMultiplier
	}

	sched, err := engine.Run(alg, request.Tasks, engineCfg)
	if err != nil {
		return nil, err
	}
	report, err := metrics.Compute(sched, request.Tasks)
	if err != nil {
		return nil, err
	}
	flags, err := risk.Assess(report, alg, riskCfg)
	if err != nil {
		return nil, err
	}

	return &ScheduleResponse{
		Algorithm:       alg.String(),
		Schedule:        sched,
		Metrics:         report,
		Risk:            flags,
		CriticalSummary: risk.SummarizeCritical(report, riskCfg),
	}, nil
}

// errorResponse maps engine errors to HTTP statuses: rejected input is a
// client error, a malformed schedule is an engine defect.
func errorResponse(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, engine.ErrInvalidInput) {
		status = fiber.StatusBadRequest
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
