package handler

import (
	"errors"

	"campus-services/internal/agent"
	"campus-services/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AgentHandler struct {
	dispatcher *agent.Dispatcher
	leaves     repository.LeaveRepository
}

func NewAgentHandler(d *agent.Dispatcher, leaves repository.LeaveRepository) *AgentHandler {
	return &AgentHandler{dispatcher: d, leaves: leaves}
}

// HandleRequest is the generic action endpoint. The dispatcher's result
// is returned with status 200 even when it carries a logical error;
// only malformed bodies and missing fields earn a 4xx.
func (h *AgentHandler) HandleRequest(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	agentType, _ := body["agent_type"].(string)

	result, err := h.dispatcher.Dispatch(agentType, agent.Payload(body))
	if err != nil {
		var vErr *agent.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": vErr.Error(),
				"field": vErr.Field,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process request"})
	}

	return c.JSON(result)
}

// ListLeaves returns the authenticated user's leave history, newest first.
func (h *AgentHandler) ListLeaves(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	list, err := h.leaves.GetByUserID(uint(userID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leave requests"})
	}

	return c.JSON(fiber.Map{"data": list})
}
