package properties

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testSheet = `Address,APN,Phase,City,Deadline
2615 Woburn St,111,Sheetrock,Bellingham,8/18/2025
2903 Hazelwood Dr,222,Sold,Blaine,1/30/2024
Oceanside,333,Design,Blaine,
Old Lot,444,Delete,Blaine,`

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testSheet))
	}))
	t.Cleanup(source.Close)

	return NewServer([]string{source.URL}, CategoryStrict), source
}

func newTestRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	s.RegisterRoutes(r.Group("/api"))
	return r
}

func TestRefresh_PublishesSnapshot(t *testing.T) {
	s, _ := newTestServer(t)

	result := s.Refresh()

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.TotalCount, "Delete-phase row is excluded")
	assert.False(t, s.store.Empty())
}

func TestRefresh_AllSourcesDown(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer dead.Close()

	s := NewServer([]string{dead.URL}, CategoryStrict)
	result := s.Refresh()

	assert.False(t, result.Success)
	assert.True(t, s.store.Empty())
}

func TestListProperties(t *testing.T) {
	s, _ := newTestServer(t)
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result Result
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Len(t, result.Properties, 3)
}

func TestListProperties_Filters(t *testing.T) {
	s, _ := newTestServer(t)
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties?search=blaine&searchField=city&phase=Sold", nil)
	r.ServeHTTP(w, req)

	var result Result
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Properties, 1)
	assert.Equal(t, "2903 Hazelwood Dr", result.Properties[0].Address)
}

func TestListProperties_DeadlineRange(t *testing.T) {
	s, _ := newTestServer(t)
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties?deadlineFrom=2025-01-01&deadlineTo=2025-12-31", nil)
	r.ServeHTTP(w, req)

	var result Result
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Properties, 1)
	assert.Equal(t, "2615 Woburn St", result.Properties[0].Address)
}

func TestListProperties_BadSearchField(t *testing.T) {
	s, _ := newTestServer(t)
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties?searchField=permit", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProperties_BadDeadlineBound(t *testing.T) {
	s, _ := newTestServer(t)
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties?deadlineFrom=13/45/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStats(t *testing.T) {
	s, _ := newTestServer(t)
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stats map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, float64(3), stats["total"])
	assert.Equal(t, float64(1), stats["construction"])
	assert.Equal(t, float64(1), stats["completed"])
	assert.Equal(t, float64(1), stats["upcoming"])
}

func TestUploadCSV_MissingHeaders(t *testing.T) {
	s, _ := newTestServer(t)
	r := newTestRouter(s)

	body, contentType := multipartCSV(t, "Address,City\n123 Main St,Blaine")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload-csv", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result Result
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Missing required headers: APN, Phase", result.Error)
}

func TestUploadCSV_Success(t *testing.T) {
	t.Chdir(t.TempDir()) // uploads backup lands in a scratch dir

	s, _ := newTestServer(t)
	r := newTestRouter(s)

	body, contentType := multipartCSV(t, "Address,APN,Phase\n123 Main St,111-222,Sheetrock")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload-csv", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success    bool       `json:"success"`
		Properties []Property `json:"properties"`
		TotalCount int        `json:"totalCount"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, "property-111-222", resp.Properties[0].ID)
}

func TestUploadCSV_NoFile(t *testing.T) {
	s, _ := newTestServer(t)
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload-csv", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// closeNotifyRecorder implements http.CloseNotifier so gin's Stream
// can run against an httptest recorder without panicking.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyRecorder) CloseNotify() <-chan bool { return r.closed }

func TestExportCSV(t *testing.T) {
	s, _ := newTestServer(t)
	s.Refresh()
	r := newTestRouter(s)

	w := &closeNotifyRecorder{httptest.NewRecorder(), make(chan bool, 1)}
	req := httptest.NewRequest(http.MethodGet, "/api/properties/export", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "2615 Woburn St")
	assert.NotContains(t, w.Body.String(), "Old Lot", "Delete-phase rows never surface")
}

// multipartCSV builds a multipart body carrying the CSV under the "csv" field
func multipartCSV(t *testing.T, csvText string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("csv", "upload.csv")
	assert.NoError(t, err)
	part.Write([]byte(csvText))
	writer.Close()

	return &buf, writer.FormDataContentType()
}
