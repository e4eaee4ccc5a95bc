package handler

import (
	"quizshare/internal/dto"
	"quizshare/internal/service"
	"quizshare/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ShareHandler handles quiz library and share-key HTTP requests
type ShareHandler struct {
	service   service.ShareService
	validator *validation.Validator
}

// NewShareHandler creates a new ShareHandler instance
func NewShareHandler(service service.ShareService, validator *validation.Validator) *ShareHandler {
	return &ShareHandler{
		service:   service,
		validator: validator,
	}
}

// ImportQuiz godoc
// @Summary Import a quiz document
// @Description Normalizes externally authored quiz JSON and stores it in the library
// @Tags quizzes
// @Accept json
// @Produce json
// @Success 201 {object} dto.QuizSetResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *ShareHandler) ImportQuiz(c *fiber.Ctx) error {
	body := c.Body()
	if errs := h.validator.ValidateImportQuizRequest(body); len(errs) > 0 {
		return errs
	}

	quiz, err := h.service.ImportQuizJSON(c.Context(), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewQuizSetResponse(quiz))
}

// ImportFromKey godoc
// @Summary Import a quiz from a share key
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.ShareKeyRequest true "Share key"
// @Success 201 {object} dto.QuizSetResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quizzes/import [post]
func (h *ShareHandler) ImportFromKey(c *fiber.Ctx) error {
	var req dto.ShareKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateShareKey(req.Key); len(errs) > 0 {
		return errs
	}

	quiz, err := h.service.ImportFromKey(c.Context(), req.Key)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewQuizSetResponse(quiz))
}

// DecodeShareKey godoc
// @Summary Decode a share key without importing it
// @Tags share-keys
// @Accept json
// @Produce json
// @Param request body dto.ShareKeyRequest true "Share key"
// @Success 200 {object} dto.QuizSetResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /share-keys/decode [post]
func (h *ShareHandler) DecodeShareKey(c *fiber.Ctx) error {
	var req dto.ShareKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateShareKey(req.Key); len(errs) > 0 {
		return errs
	}

	quiz, err := h.service.DecodeShareKey(c.Context(), req.Key)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizSetResponse(quiz))
}

// GetShareKey godoc
// @Summary Create a share key for a library quiz
// @Tags share-keys
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.ShareKeyResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/share-key [get]
func (h *ShareHandler) GetShareKey(c *fiber.Ctx) error {
	quizID := c.Params("id")

	key, err := h.service.CreateShareKey(c.Context(), quizID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ShareKeyResponse{QuizID: quizID, ShareKey: key})
}

// CreateShareKeys godoc
// @Summary Create share keys for several library quizzes
// @Tags share-keys
// @Accept json
// @Produce json
// @Param request body dto.BulkShareKeysRequest true "Quiz IDs"
// @Success 200 {object} dto.BulkShareKeysResponse
// @Router /share-keys [post]
func (h *ShareHandler) CreateShareKeys(c *fiber.Ctx) error {
	var req dto.BulkShareKeysRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateBulkShareKeysRequest(req.QuizIDs); len(errs) > 0 {
		return errs
	}

	keys, err := h.service.CreateShareKeys(c.Context(), req.QuizIDs)
	if err != nil {
		return err
	}
	return c.JSON(dto.BulkShareKeysResponse{Keys: keys})
}

// ListQuizzes returns every quiz in the library.
func (h *ShareHandler) ListQuizzes(c *fiber.Ctx) error {
	quizzes, err := h.service.ListQuizzes(c.Context())
	if err != nil {
		return err
	}
	responses := make([]dto.QuizSetResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		responses = append(responses, dto.NewQuizSetResponse(quiz))
	}
	return c.JSON(responses)
}

// GetQuiz returns one quiz from the library.
func (h *ShareHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.service.GetQuiz(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizSetResponse(quiz))
}

// DeleteQuiz removes a quiz from the library.
func (h *ShareHandler) DeleteQuiz(c *fiber.Ctx) error {
	if err := h.service.DeleteQuiz(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
