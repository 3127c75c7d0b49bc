package assistant

import (
	"net/http"

	"trainerhub-app/config"
	"trainerhub-app/internal/editor"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
)

var session *editor.Session

func Init(s *editor.Session) {
	session = s
}

type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// POST /assistant/chat
// Forwards the visitor's chat history to the configured model. The
// assistant section of the published document controls availability,
// model and system prompt, so the admin can tune it without a redeploy.
func Chat(c *gin.Context) {
	doc := session.Baseline()
	if !doc.Assistant.Enabled {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Assistant is disabled"})
		return
	}
	if config.OPENAI_API_KEY == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Assistant is not configured"})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := doc.Assistant.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if doc.Assistant.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: doc.Assistant.SystemPrompt,
		})
	}
	for _, m := range req.Messages {
		role := m.Role
		if role != openai.ChatMessageRoleAssistant {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	client := openai.NewClient(config.OPENAI_API_KEY)
	resp, err := client.CreateChatCompletion(c.Request.Context(), openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant is unavailable right now"})
		return
	}
	if len(resp.Choices) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant returned no reply"})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: resp.Choices[0].Message.Content})
}
