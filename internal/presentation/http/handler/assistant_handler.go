package handler

import (
	"encoding/base64"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizledger-api/internal/application/service"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/response"
)

// maxImageBytes caps uploaded product photos at 8 MiB
const maxImageBytes = 8 << 20

// AssistantHandler handles AI assistant HTTP requests
type AssistantHandler struct {
	assistantService *service.AssistantService
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistantService *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// AnalyzeImage handles product photo recognition. Accepts either a multipart
// "image" file or a JSON body with a base64 "image" field.
func (h *AssistantHandler) AnalyzeImage(c *gin.Context) {
	image, ok := h.readImage(c)
	if !ok {
		return
	}

	analysis := h.assistantService.AnalyzeImage(c.Request.Context(), image)
	response.OK(c, "Image analyzed", analysis)
}

// Chat handles the inventory-aware assistant conversation
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req request.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	reply := h.assistantService.Chat(c.Request.Context(), req.Message)
	response.OK(c, "Reply generated", gin.H{"reply": reply})
}

// Recipes handles recipe suggestions from current stock
func (h *AssistantHandler) Recipes(c *gin.Context) {
	recipes := h.assistantService.SuggestRecipes(c.Request.Context())
	response.OK(c, "Recipes suggested", recipes)
}

func (h *AssistantHandler) readImage(c *gin.Context) ([]byte, bool) {
	if file, err := c.FormFile("image"); err == nil {
		if file.Size > maxImageBytes {
			response.BadRequest(c, "Image is too large")
			return nil, false
		}
		opened, err := file.Open()
		if err != nil {
			response.BadRequest(c, "Could not read image")
			return nil, false
		}
		defer opened.Close()
		data, err := io.ReadAll(io.LimitReader(opened, maxImageBytes))
		if err != nil {
			response.BadRequest(c, "Could not read image")
			return nil, false
		}
		return data, true
	}

	var body struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "An image file or base64 image is required")
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(body.Image)
	if err != nil || len(data) == 0 {
		response.BadRequest(c, "Image is not valid base64")
		return nil, false
	}
	if len(data) > maxImageBytes {
		response.BadRequest(c, "Image is too large")
		return nil, false
	}
	return data, true
}
