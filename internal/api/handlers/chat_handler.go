package handlers

import (
	"fmt"
	"strings"

	"llm-chatbot/internal/dto"
	"llm-chatbot/internal/repository"
	"llm-chatbot/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Ask the support bot
// @Description Route a free-text question through greeting, FAQ, intent and SQL stages
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if strings.TrimSpace(req.SessionID) == "" || strings.TrimSpace(req.Prompt) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "session_id and prompt are required",
		})
	}

	// stage failures are already logged and carry the generic reply text
	reply, err := h.chatService.Chat(c.UserContext(), req.SessionID, req.Prompt)
	if err != nil {
		h.logger.Warn("Chat answered with error reply",
			zap.Any("request_id", c.Locals("requestID")),
			zap.String("route", string(reply.Route)),
		)
	}

	return c.JSON(dto.ChatResponse{Response: reply.Text})
}

// ChatLog godoc
// @Summary Get a session's chat log
// @Description Returns the stored chat log of a session as plain text
// @Tags chat
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.ChatLogResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat-log/{session_id} [get]
func (h *ChatHandler) ChatLog(c *fiber.Ctx) error {
	log, err := h.chatService.ChatLog(c.UserContext(), c.Params("session_id"))
	if err != nil {
		h.logger.Error("Failed to read chat log", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Failed to read chat log",
		})
	}
	if log == "" {
		log = "No logs found for this session."
	}

	return c.JSON(dto.ChatLogResponse{Log: log})
}

// DownloadChat godoc
// @Summary Download a session's chat log
// @Description Returns the chat log as a text file attachment
// @Tags chat
// @Produce plain
// @Param session_id path string true "Session ID"
// @Success 200 {string} string "chat log"
// @Failure 500 {object} dto.ErrorResponse
// @Router /download-chat/{session_id} [get]
func (h *ChatHandler) DownloadChat(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")

	log, err := h.chatService.ChatLog(c.UserContext(), sessionID)
	if err != nil {
		h.logger.Error("Failed to read chat log", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Failed to read chat log",
		})
	}
	if log == "" {
		return c.JSON(dto.MessageResponse{Message: "No chat found for this session ID."})
	}

	c.Attachment(fmt.Sprintf("chat_log_%s.txt", sessionID))
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(log)
}

// ChatHistory godoc
// @Summary Get a session's turns
// @Description Returns the turns kept in the session store
// @Tags chat
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.ChatHistoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat-history/{session_id} [get]
func (h *ChatHandler) ChatHistory(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")

	turns, err := h.chatService.History(c.UserContext(), sessionID)
	if err != nil {
		h.logger.Error("Failed to read session history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Failed to read session history",
		})
	}

	resp := dto.ChatHistoryResponse{
		SessionID: sessionID,
		Turns:     make([]dto.ChatTurnResponse, 0, len(turns)),
	}
	for _, turn := range turns {
		resp.Turns = append(resp.Turns, dto.ChatTurnResponse{
			Timestamp:   turn.Timestamp.Format(repository.TimestampLayout),
			UserQuery:   turn.UserQuery,
			BotResponse: turn.BotResponse,
		})
	}

	return c.JSON(resp)
}
