package controller

import (
	"mock-interview-be/internal/dto"
	"mock-interview-be/internal/pkg/serverutils"
	"mock-interview-be/internal/service"
	internalWS "mock-interview-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Stop(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	ListVideos(ctx *fiber.Ctx) error
	ListArtifacts(ctx *fiber.Ctx) error
}

type interviewController struct {
	service service.IRecordingService
	hub     *internalWS.Hub
}

func NewInterviewController(service service.IRecordingService, hub *internalWS.Hub) IInterviewController {
	return &interviewController{service: service, hub: hub}
}

func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interview/v1")
	h.Get("/ws/:sessionId", c.serveWs) // upgrade happens before auth headers are checked
	h.Use(serverutils.JwtMiddleware)
	h.Post("/start", c.Start)
	h.Post("/stop", c.Stop)
	h.Get("/status", c.Status)
	h.Get("/videos", c.ListVideos)
	h.Get("/:interviewId/artifacts", c.ListArtifacts)
}

func (c *interviewController) Start(ctx *fiber.Ctx) error {
	var req dto.StartInterviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Start(ctx.Context(), &req)
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start interview", res))
}

func (c *interviewController) Stop(ctx *fiber.Ctx) error {
	res, err := c.service.Stop(ctx.Context())
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success stop interview", res))
}

func (c *interviewController) Status(ctx *fiber.Ctx) error {
	res, err := c.service.Status(ctx.Context())
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session status", res))
}

func (c *interviewController) ListVideos(ctx *fiber.Ctx) error {
	res, err := c.service.ListVideos(ctx.Context())
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list videos", res))
}

func (c *interviewController) ListArtifacts(ctx *fiber.Ctx) error {
	idParam := ctx.Params("interviewId")
	interviewId, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "invalid interview id")
	}

	res, err := c.service.ListArtifacts(ctx.Context(), interviewId)
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list artifacts", res))
}

func (c *interviewController) serveWs(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")
	if sessionId == "" {
		return serverutils.NewAppError(fiber.StatusBadRequest, "missing session id")
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			internalWS.ServeWs(c.hub, conn, sessionId)
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}
