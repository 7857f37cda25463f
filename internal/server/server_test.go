package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeoWherle/ranker/internal/element"
	"github.com/LeoWherle/ranker/internal/llm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testElements() []element.Element {
	return []element.Element{
		{ID: "a", Title: "Element A"},
		{ID: "b", Title: "Element B"},
		{ID: "c", Title: "Element C"},
		{ID: "d", Title: "Element D"},
	}
}

func newTestRouter(oracle *llm.Oracle) *gin.Engine {
	return NewServer(testElements(), oracle, "nicer").SetupRouter()
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func createSession(t *testing.T, r *gin.Engine) (string, map[string]interface{}) {
	t.Helper()
	w, resp := do(t, r, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id, ok := resp["session_id"].(string)
	require.True(t, ok)
	return id, resp
}

func TestListElements(t *testing.T) {
	w, resp := do(t, newTestRouter(nil), http.MethodGet, "/elements", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["elements"], 4)
}

func TestFullRankingFlow(t *testing.T) {
	r := newTestRouter(nil)
	id, resp := createSession(t, r)
	assert.Equal(t, false, resp["complete"])
	require.NotNil(t, resp["next"])

	// Early result request is rejected.
	w, _ := do(t, r, http.MethodGet, "/sessions/"+id+"/result", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Answer every comparison, always preferring the left candidate.
	next := resp["next"].(map[string]interface{})
	for i := 0; i < 100; i++ {
		winner := next["a"].(map[string]interface{})["id"].(string)
		w, resp := do(t, r, http.MethodPost, "/sessions/"+id+"/choice",
			map[string]string{"winner_id": winner})
		require.Equal(t, http.StatusOK, w.Code)
		if resp["complete"] == true {
			next = nil
			break
		}
		next = resp["next"].(map[string]interface{})
	}
	require.Nil(t, next, "ranking did not complete")

	w, resp = do(t, r, http.MethodGet, "/sessions/"+id+"/result", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ranking := resp["ranking"].([]interface{})
	require.Len(t, ranking, 4)

	// No element lost or duplicated.
	seen := map[string]bool{}
	for _, e := range ranking {
		seen[e.(map[string]interface{})["id"].(string)] = true
	}
	assert.Len(t, seen, 4)
}

func TestCreateSession_InlineElementsAndStrategy(t *testing.T) {
	r := newTestRouter(nil)
	w, resp := do(t, r, http.MethodPost, "/sessions", map[string]interface{}{
		"strategy": "tournament",
		"elements": []map[string]string{
			{"id": "x", "title": "X"},
			{"id": "y", "title": "Y"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "tournament", resp["strategy"])
	assert.Equal(t, float64(2), resp["count"])

	w, _ = do(t, r, http.MethodPost, "/sessions", map[string]string{"strategy": "elo"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordChoice_Errors(t *testing.T) {
	r := newTestRouter(nil)
	id, _ := createSession(t, r)

	// Winner outside the outstanding pair.
	w, _ := do(t, r, http.MethodPost, "/sessions/"+id+"/choice",
		map[string]string{"winner_id": "zzz"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown session.
	w, _ = do(t, r, http.MethodPost, "/sessions/nope/choice",
		map[string]string{"winner_id": "a"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordChoice_AfterComplete(t *testing.T) {
	r := newTestRouter(nil)
	w, resp := do(t, r, http.MethodPost, "/sessions", map[string]interface{}{
		"elements": []map[string]string{
			{"id": "x", "title": "X"},
			{"id": "y", "title": "Y"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := resp["session_id"].(string)

	w, resp = do(t, r, http.MethodPost, "/sessions/"+id+"/choice",
		map[string]string{"winner_id": "y"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["complete"])

	// The conversation is over: no comparison is outstanding.
	w, _ = do(t, r, http.MethodPost, "/sessions/"+id+"/choice",
		map[string]string{"winner_id": "y"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAutoRank(t *testing.T) {
	// Oracle always prefers the first candidate.
	oracle := llm.NewOracle(&llm.MockClient{Response: "1"})
	r := newTestRouter(oracle)
	id, _ := createSession(t, r)

	w, resp := do(t, r, http.MethodPost, "/sessions/"+id+"/auto",
		map[string]string{"criterion": "most useful"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp["comparisons"].(float64) >= 3)
	assert.Len(t, resp["ranking"], 4)
}

func TestAutoRank_NoOracleConfigured(t *testing.T) {
	r := newTestRouter(nil)
	id, _ := createSession(t, r)

	w, _ := do(t, r, http.MethodPost, "/sessions/"+id+"/auto", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAutoRank_OracleFailure(t *testing.T) {
	oracle := llm.NewOracle(&llm.MockClient{Err: fmt.Errorf("upstream down")})
	r := newTestRouter(oracle)
	id, _ := createSession(t, r)

	w, _ := do(t, r, http.MethodPost, "/sessions/"+id+"/auto", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestDeleteSession(t *testing.T) {
	r := newTestRouter(nil)
	id, _ := createSession(t, r)

	w, _ := do(t, r, http.MethodDelete, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = do(t, r, http.MethodDelete, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodGet, "/sessions/"+id+"/next", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNextComparison_Idempotent(t *testing.T) {
	r := newTestRouter(nil)
	id, _ := createSession(t, r)

	_, first := do(t, r, http.MethodGet, "/sessions/"+id+"/next", nil)
	_, second := do(t, r, http.MethodGet, "/sessions/"+id+"/next", nil)
	assert.Equal(t, first, second)
}
