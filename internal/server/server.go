package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeoWherle/ranker/internal/core"
	"github.com/LeoWherle/ranker/internal/element"
	"github.com/LeoWherle/ranker/internal/llm"
	"github.com/LeoWherle/ranker/internal/session"
)

// Server is the HTTP presentation boundary: it hands out comparisons,
// records the oracle's choices, and reports the final ranking.
type Server struct {
	Elements  []element.Element
	Sessions  *session.Registry
	Oracle    *llm.Oracle
	Criterion string
}

// NewServer wires the server with the element list loaded at startup.
// oracle may be nil, which disables the /auto endpoint.
func NewServer(elements []element.Element, oracle *llm.Oracle, criterion string) *Server {
	return &Server{
		Elements:  elements,
		Sessions:  session.NewRegistry(),
		Oracle:    oracle,
		Criterion: criterion,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/elements", s.ListElements)
	r.POST("/sessions", s.CreateSession)
	r.GET("/sessions/:id/next", s.NextComparison)
	r.POST("/sessions/:id/choice", s.RecordChoice)
	r.GET("/sessions/:id/result", s.Result)
	r.POST("/sessions/:id/auto", s.AutoRank)
	r.DELETE("/sessions/:id", s.DeleteSession)

	return r
}

func (s *Server) ListElements(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"elements": s.Elements})
}

type CreateSessionRequest struct {
	Elements []element.Element `json:"elements"`
	Strategy string            `json:"strategy"`
}

func (s *Server) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}

	elements := req.Elements
	if len(elements) == 0 {
		elements = s.Elements
	}

	sess, err := s.Sessions.Create(elements, req.Strategy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sess.ID,
		"strategy":   sess.Strategy,
		"count":      len(sess.Elements),
		"next":       sess.NextComparison(),
		"complete":   sess.Complete(),
	})
}

func (s *Server) NextComparison(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"next":     sess.NextComparison(),
		"complete": sess.Complete(),
	})
}

type RecordChoiceRequest struct {
	WinnerID string `json:"winner_id"`
}

func (s *Server) RecordChoice(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}

	var req RecordChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := sess.RecordChoice(req.WinnerID); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, core.ErrInvalidChoice) && sess.Complete() {
			// No comparison outstanding: the conversation is over.
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"next":     sess.NextComparison(),
		"complete": sess.Complete(),
	})
}

func (s *Server) Result(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}

	ranking, err := sess.Result()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ranking": ranking})
}

type AutoRankRequest struct {
	Criterion string `json:"criterion"`
}

// AutoRank drives the remaining comparisons with the LLM oracle.
func (s *Server) AutoRank(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}

	if s.Oracle == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No LLM oracle configured"})
		return
	}

	var req AutoRankRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}
	criterion := req.Criterion
	if criterion == "" {
		criterion = s.Criterion
	}
	if criterion == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No ranking criterion given"})
		return
	}

	answered := 0
	for cmp := sess.NextComparison(); cmp != nil; cmp = sess.NextComparison() {
		winnerID, err := s.Oracle.Decide(c.Request.Context(), criterion, *cmp)
		if err != nil {
			log.Printf("Oracle failed after %d choices: %v", answered, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		if err := sess.RecordChoice(winnerID); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		answered++
	}

	ranking, err := sess.Result()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ranking":     ranking,
		"comparisons": answered,
	})
}

func (s *Server) DeleteSession(c *gin.Context) {
	if err := s.Sessions.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) lookup(c *gin.Context) (*session.Session, bool) {
	sess, err := s.Sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return nil, false
	}
	return sess, true
}
