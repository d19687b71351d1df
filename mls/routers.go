package mls

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// defaultTop caps how many listings one request pulls from the feed
const defaultTop = 50

// Server exposes the MLS explorer endpoints backed by the Grid client
type Server struct {
	client *Client
}

// NewServer creates an MLS server
func NewServer(client *Client) *Server {
	return &Server{client: client}
}

// RegisterRoutes registers the MLS endpoints
func (s *Server) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/mls/properties", s.ListScored)
	rg.GET("/mls/analysis", s.ScoringAnalysis)
}

// ListScored godoc
// @Summary Scored MLS listings
// @Description Fetches residential listings from the MLS feed, scores them and returns the annotated batch
// @Tags mls
// @Produce json
// @Success 200 {object} map[string]interface{} "Scored listings"
// @Failure 502 {object} map[string]string "Feed unavailable"
// @Router /mls/properties [get]
func (s *Server) ListScored(c *gin.Context) {
	raw, err := s.client.FetchListings(defaultTop)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	scored := Score(Transform(raw))

	c.Set("rows_processed", len(scored))
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"properties": scored,
		"totalCount": len(scored),
	})
}

// ScoringAnalysis godoc
// @Summary MLS scoring analysis
// @Description Returns the score distribution and top listings of the current feed
// @Tags mls
// @Produce json
// @Success 200 {object} map[string]interface{} "Scoring analysis"
// @Failure 502 {object} map[string]string "Feed unavailable"
// @Router /mls/analysis [get]
func (s *Server) ScoringAnalysis(c *gin.Context) {
	raw, err := s.client.FetchListings(defaultTop)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	scored := Score(Transform(raw))
	analysis := Analyze(scored)

	c.Set("rows_processed", len(scored))
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": analysis,
	})
}
