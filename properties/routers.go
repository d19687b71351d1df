package properties

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"property-dashboard/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadsDir is where uploaded CSV backups are kept
const UploadsDir = "uploads"

// Server owns the in-memory property snapshot and the remote sheet
// sources. Handlers and the refresh scheduler both go through it.
type Server struct {
	store   *Store
	sources []string
	client  *http.Client
	mode    CategoryMode
}

// NewServer creates a property server fetching from the given CSV URLs
func NewServer(sources []string, mode CategoryMode) *Server {
	return &Server{
		store:   NewStore(),
		sources: sources,
		client:  &http.Client{Timeout: 30 * time.Second},
		mode:    mode,
	}
}

// RegisterRoutes registers the property endpoints
func (s *Server) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties", s.ListProperties)
	rg.POST("/properties/refresh", s.RefreshProperties)
	rg.GET("/properties/stats", s.Stats)
	rg.GET("/properties/export", s.ExportCSV)
	rg.POST("/upload-csv", s.UploadCSV)
}

// ListProperties godoc
// @Summary List properties
// @Description Returns the current property collection with optional search, phase and deadline filters applied
// @Tags properties
// @Produce json
// @Param search query string false "Free-text search term"
// @Param searchField query string false "Search scope (all, address, city, apn, client)"
// @Param phase query string false "Exact phase filter"
// @Param deadlineFrom query string false "Inclusive lower deadline bound"
// @Param deadlineTo query string false "Inclusive upper deadline bound"
// @Success 200 {object} Result "Filtered property collection"
// @Failure 400 {object} map[string]string "Bad request"
// @Router /properties [get]
func (s *Server) ListProperties(c *gin.Context) {
	if s.store.Empty() {
		if result := s.Refresh(); !result.Success {
			c.JSON(http.StatusBadGateway, result)
			return
		}
	}

	opts, err := filterOptionsFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap := s.store.Snapshot()
	filtered := Filter(snap.Properties, opts)

	c.Set("rows_processed", len(filtered))
	c.JSON(http.StatusOK, Result{
		Success:     true,
		Properties:  filtered,
		TotalCount:  len(filtered),
		LastUpdated: snap.LastUpdated,
	})
}

// RefreshProperties godoc
// @Summary Refresh the property collection
// @Description Re-fetches the configured CSV sources and replaces the in-memory collection
// @Tags properties
// @Produce json
// @Success 200 {object} Result "Refreshed collection"
// @Failure 502 {object} Result "All sources failed"
// @Router /properties/refresh [post]
func (s *Server) RefreshProperties(c *gin.Context) {
	result := s.Refresh()
	if !result.Success {
		c.JSON(http.StatusBadGateway, result)
		return
	}

	c.Set("rows_processed", result.TotalCount)
	c.JSON(http.StatusOK, result)
}

// Stats godoc
// @Summary Portfolio statistics
// @Description Returns per-category counts and the phase distribution of the current collection
// @Tags properties
// @Produce json
// @Success 200 {object} map[string]interface{} "Portfolio stats"
// @Router /properties/stats [get]
func (s *Server) Stats(c *gin.Context) {
	if s.store.Empty() {
		if result := s.Refresh(); !result.Success {
			c.JSON(http.StatusBadGateway, result)
			return
		}
	}

	snap := s.store.Snapshot()

	counts := map[Category]int{}
	phases := map[string]int{}
	for _, p := range snap.Properties {
		counts[p.Category]++
		phases[p.Phase]++
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"total":             len(snap.Properties),
		"construction":      counts[CategoryConstruction],
		"completed":         counts[CategoryCompleted],
		"upcoming":          counts[CategoryUpcoming],
		"other":             counts[CategoryOther],
		"phaseDistribution": phases,
		"lastUpdated":       snap.LastUpdated,
	})
}

// UploadCSV godoc
// @Summary Upload a property CSV
// @Description Validates and ingests a user-supplied CSV; required headers are Address, APN and Phase
// @Tags properties
// @Accept multipart/form-data
// @Produce json
// @Param csv formData file true "CSV file"
// @Success 200 {object} Result "Parsed properties"
// @Failure 400 {object} Result "Missing file, missing headers or no valid rows"
// @Router /upload-csv [post]
func (s *Server) UploadCSV(c *gin.Context) {
	file, _, err := c.Request.FormFile("csv")
	if err != nil {
		c.JSON(http.StatusBadRequest, Err("No CSV file provided"))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, Err("Failed to read CSV file"))
		return
	}
	text := string(content)

	if missing := ValidateRequiredHeaders(text); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, Err(MissingHeadersError(missing)))
		return
	}

	result := Ingest([]string{text}, s.mode)
	s.recordJob(common.IngestSourceUpload, 1, result)

	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	// Keep a backup of the upload; failure to write one is not fatal
	if err := saveBackup(text); err != nil {
		log.Printf("Failed to save uploaded CSV backup: %v", err)
	}

	c.Set("rows_processed", result.TotalCount)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"properties":  result.Properties,
		"totalCount":  result.TotalCount,
		"lastUpdated": result.LastUpdated,
		"rowErrors":   ValidateRows(text),
	})
}

// ExportCSV godoc
// @Summary Export properties as CSV
// @Description Streams the current (optionally filtered) collection as a CSV download
// @Tags properties
// @Produce text/csv
// @Success 200 {file} file "CSV download"
// @Failure 400 {object} map[string]string "Bad request"
// @Router /properties/export [get]
func (s *Server) ExportCSV(c *gin.Context) {
	opts, err := filterOptionsFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap := s.store.Snapshot()
	filtered := Filter(snap.Properties, opts)

	filename := fmt.Sprintf("properties_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	c.Stream(func(w io.Writer) bool {
		writeCSV(w, filtered)
		return false
	})

	c.Set("rows_processed", len(filtered))
}

// Refresh fetches every configured CSV source in parallel, ingests the
// results and, on success, publishes the new collection atomically.
// A source that fails to fetch contributes nothing; the refresh only
// fails when no source yields properties.
func (s *Server) Refresh() Result {
	texts := make([]string, len(s.sources))
	fetched := make([]bool, len(s.sources))

	var wg sync.WaitGroup
	for i, url := range s.sources {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			text, err := s.fetchCSV(url)
			if err != nil {
				log.Printf("Failed to fetch CSV source %s: %v", url, err)
				return
			}
			texts[i] = text
			fetched[i] = true
		}(i, url)
	}
	wg.Wait()

	anyFetched := false
	for _, ok := range fetched {
		anyFetched = anyFetched || ok
	}
	if !anyFetched {
		result := Err("Failed to read CSV files")
		s.recordJob(common.IngestSourceRemote, len(s.sources), result)
		return result
	}

	result := Ingest(texts, s.mode)
	if result.Success {
		s.store.Replace(result.Properties)
	}
	s.recordJob(common.IngestSourceRemote, len(s.sources), result)

	return result
}

func (s *Server) fetchCSV(url string) (string, error) {
	resp, err := s.client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// recordJob writes an ingest job row for observability; skipped when
// the database is not initialized (tests)
func (s *Server) recordJob(source string, sourceCount int, result Result) {
	db := common.GetDB()
	if db == nil {
		return
	}

	now := time.Now()
	job := common.IngestJob{
		ID:            uuid.New().String(),
		Source:        source,
		SourceCount:   sourceCount,
		PropertyCount: result.TotalCount,
		Status:        common.JobStatusCompleted,
		CreatedAt:     now,
		CompletedAt:   &now,
	}
	if !result.Success {
		job.Status = common.JobStatusFailed
		job.Error = result.Error
	}

	if err := db.Create(&job).Error; err != nil {
		log.Printf("Failed to record ingest job: %v", err)
	}
}

// filterOptionsFromQuery builds FilterOptions from list query params
func filterOptionsFromQuery(c *gin.Context) (FilterOptions, error) {
	field := c.DefaultQuery("searchField", string(SearchAll))
	if verr := common.ValidateEnum("searchField", field, SearchFields); verr != nil {
		return FilterOptions{}, fmt.Errorf("%s", verr.Message)
	}

	opts := FilterOptions{
		Search: c.Query("search"),
		Field:  SearchField(field),
		Phase:  c.Query("phase"),
	}

	if from := c.Query("deadlineFrom"); from != "" {
		d, ok := ParseDeadline(from)
		if !ok {
			return FilterOptions{}, fmt.Errorf("deadlineFrom is not a recognized date: %s", from)
		}
		opts.DeadlineFrom = &d
	}
	if to := c.Query("deadlineTo"); to != "" {
		d, ok := ParseDeadline(to)
		if !ok {
			return FilterOptions{}, fmt.Errorf("deadlineTo is not a recognized date: %s", to)
		}
		opts.DeadlineTo = &d
	}

	return opts, nil
}

// saveBackup writes the uploaded CSV under the uploads directory with a
// timestamped name, mirroring what the remote sheets look like on disk
func saveBackup(text string) error {
	if err := os.MkdirAll(UploadsDir, 0755); err != nil {
		return err
	}

	fileName := fmt.Sprintf("%s_%s.csv", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
	return os.WriteFile(filepath.Join(UploadsDir, fileName), []byte(text), 0644)
}
