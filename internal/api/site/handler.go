package siteapi

import (
	"errors"
	"net/http"

	"trainerhub-app/internal/domain/sitedoc"
	"trainerhub-app/internal/editor"

	"github.com/gin-gonic/gin"
)

var session *editor.Session

// Init wires the single admin editing session created at startup.
func Init(s *editor.Session) {
	session = s
}

// GET /site
// Public read of the published document; never exposes unsaved edits.
func GetPublicSite(c *gin.Context) {
	c.JSON(http.StatusOK, GetSiteResponse{Document: session.Baseline()})
}

// GET /admin/document
func GetWorkingDocument(c *gin.Context) {
	c.JSON(http.StatusOK, GetWorkingResponse{
		Document: session.Document(),
		Dirty:    session.IsDirty(),
		State:    string(session.State()),
	})
}

// PUT /admin/document
// The admin UI sends the whole edited document back; the session keeps
// dirty tracking correct even when the payload equals the baseline.
func PutWorkingDocument(c *gin.Context) {
	var incoming sitedoc.Document
	if err := c.ShouldBindJSON(&incoming); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document payload", "details": err.Error()})
		return
	}

	session.Mutate(func(d *sitedoc.Document) {
		*d = incoming
	})

	c.JSON(http.StatusOK, SessionStateResponse{
		Dirty: session.IsDirty(),
		State: string(session.State()),
	})
}

// POST /admin/document/save
func SaveDocument(c *gin.Context) {
	err := session.Save(c.Request.Context())
	if err != nil {
		if errors.Is(err, editor.ErrSaveInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "A save is already in progress"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to save document", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SessionStateResponse{
		Dirty: session.IsDirty(),
		State: string(session.State()),
	})
}

// POST /admin/document/discard
func DiscardDocument(c *gin.Context) {
	session.Discard()
	c.JSON(http.StatusOK, SessionStateResponse{
		Dirty: session.IsDirty(),
		State: string(session.State()),
	})
}
