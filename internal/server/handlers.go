package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nflorant/diagnosis/internal/auditlog"
)

type predictRequest struct {
	Symptoms []string `json:"symptoms"`
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleReadyz(c *gin.Context) {
	if s.audit == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.audit.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"db":     "unhealthy: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
}

func (s *Server) handleSymptoms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"symptoms": s.svc.Symptoms()})
}

func (s *Server) handlePredict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing JSON body"})
		return
	}
	if len(req.Symptoms) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symptoms must be a non-empty list"})
		return
	}

	result, err := s.svc.Predict(c.Request.Context(), req.Symptoms)
	if err != nil {
		log.Printf("prediction error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}

	if s.audit != nil && len(result.Predictions) > 0 {
		entry := auditlog.Entry{
			Symptoms:       req.Symptoms,
			TopDisease:     result.Predictions[0].Disease,
			TopProbability: result.Predictions[0].Probability,
		}
		if err := s.audit.Record(c.Request.Context(), entry); err != nil {
			log.Printf("audit insert failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, result)
}
