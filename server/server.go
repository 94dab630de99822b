// Package server 是匹配引擎前面的薄传输层：
// 请求解析与形状校验、错误码映射、健康探针。匹配语义全部在 engine。
package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rushteam/mentorkit/core"
	"github.com/rushteam/mentorkit/engine"
)

type Server struct {
	app    *fiber.App
	engine *engine.Engine
	log    *zap.Logger
}

func New(eng *engine.Engine, log *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		app:    app,
		engine: eng,
		log:    log,
	}

	app.Get("/", s.handleHealth)
	app.Post("/api/v1/recommend", s.handleRecommend)

	return s
}

// App 暴露底层 fiber 应用，测试用 app.Test 驱动。
func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handleHealth 把引擎就绪状态映射为健康探针：
// Ready → 200，其余（未初始化/训练失败）→ 503 并带上保存的原因。
func (s *Server) handleHealth(c *fiber.Ctx) error {
	ok, reason := s.engine.Readiness()
	if !ok {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"detail": fmt.Sprintf("service is running, but the matching engine is unavailable: %s", reason),
		})
	}
	return c.JSON(fiber.Map{
		"status": "service is running and the matching engine is ready",
	})
}

type recommendRequest struct {
	MenteeID string              `json:"mentee_id"`
	Profile  *core.MenteeProfile `json:"profile"`

	// TopN 缺省为 5，合法范围 [1,10]。指针用于区分"未传"与"传了 0"。
	TopN *int `json:"top_n"`
}

type recommendResponse struct {
	MenteeID        string                `json:"mentee_id"`
	Recommendations []core.Recommendation `json:"recommendations"`
}

const defaultTopN = 5

func (s *Server) handleRecommend(c *fiber.Ctx) error {
	var req recommendRequest
	if err := c.BodyParser(&req); err != nil {
		return s.renderError(c, core.NewInvalidInputError("invalid request body"))
	}

	if err := validateRequest(&req); err != nil {
		return s.renderError(c, err)
	}

	topN := defaultTopN
	if req.TopN != nil {
		topN = *req.TopN
	}

	recs, err := s.engine.Recommend(c.UserContext(), req.MenteeID, req.Profile, topN)
	if err != nil {
		return s.renderError(c, err)
	}

	s.log.Debug("recommendation served",
		zap.String("mentee_id", req.MenteeID),
		zap.Int("top_n", topN),
		zap.Int("count", len(recs)),
	)

	return c.JSON(recommendResponse{
		MenteeID:        req.MenteeID,
		Recommendations: recs,
	})
}

// validateRequest 做边界形状校验；核心引擎只在此之上做防御性钳制。
func validateRequest(req *recommendRequest) error {
	if req.MenteeID == "" {
		return core.NewInvalidInputError("mentee_id is required")
	}
	if req.Profile == nil {
		return core.NewInvalidInputError("profile is required")
	}
	if req.Profile.Skills == nil {
		return core.NewInvalidInputError("profile.skills is required")
	}
	if req.TopN != nil && (*req.TopN < engine.MinTopN || *req.TopN > engine.MaxTopN) {
		return core.NewInvalidInputError(
			fmt.Sprintf("top_n must be between %d and %d", engine.MinTopN, engine.MaxTopN))
	}
	return nil
}

// renderError 按 DomainError 代码映射 HTTP 状态码。
func (s *Server) renderError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case core.IsInvalidInput(err):
		status = fiber.StatusBadRequest
	case core.IsUnavailable(err):
		status = fiber.StatusServiceUnavailable
	}

	if status == fiber.StatusInternalServerError {
		s.log.Warn("request failed", zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{"detail": err.Error()})
}
