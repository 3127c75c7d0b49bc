package contact

import (
	"net/http"
	"regexp"

	"trainerhub-app/config"
	"trainerhub-app/internal/editor"

	"github.com/gin-gonic/gin"
)

var session *editor.Session

func Init(s *editor.Session) {
	session = s
}

func isEmailValid(email string) bool {
	pattern := `^[a-zA-Z0-9._%%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

// POST /contact
func Submit(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !isEmailValid(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	// The published document may override the recipient; env is the
	// fallback.
	to := session.Baseline().Integrations.ContactTo
	if to == "" {
		to = config.CONTACT_TO
	}
	if to == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Contact form is not configured"})
		return
	}

	if err := SendContactEmail(to, input.Name, input.Email, input.Message); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Thanks! Your message has been sent."})
}
