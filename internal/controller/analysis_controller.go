package controller

import (
	"mock-interview-be/internal/dto"
	"mock-interview-be/internal/pkg/serverutils"
	"mock-interview-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAnalysisController interface {
	RegisterRoutes(r fiber.Router)
	AnalyzeVideo(ctx *fiber.Ctx) error
	GetResult(ctx *fiber.Ctx) error
	LatestResult(ctx *fiber.Ctx) error
}

type analysisController struct {
	service service.IAnalysisService
}

func NewAnalysisController(service service.IAnalysisService) IAnalysisController {
	return &analysisController{service: service}
}

func (c *analysisController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analysis/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/video", c.AnalyzeVideo)
	h.Get("/result/latest", c.LatestResult)
	h.Get("/result/:id", c.GetResult)
}

func (c *analysisController) AnalyzeVideo(ctx *fiber.Ctx) error {
	var req dto.AnalyzeVideoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.AnalyzeVideo(ctx.Context(), &req); err != nil {
		return translateError(err)
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse[any]("Analysis job accepted", nil))
}

func (c *analysisController) GetResult(ctx *fiber.Ctx) error {
	res, err := c.service.GetResult(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get analysis result", res))
}

func (c *analysisController) LatestResult(ctx *fiber.Ctx) error {
	res, err := c.service.LatestResult(ctx.Context())
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get latest analysis result", res))
}
