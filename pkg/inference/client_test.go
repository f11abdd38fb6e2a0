package inference

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mock-interview-be/pkg/capture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame() *capture.Frame {
	return &capture.Frame{
		Data:   []byte{1, 2, 3, 4, 5, 6},
		Width:  2,
		Height: 1,
	}
}

func TestClassifyEmotion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/emotion", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Width  int    `json:"width"`
			Height int    `json:"height"`
			Pixels string `json:"pixels"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2, req.Width)
		assert.Equal(t, 1, req.Height)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{1, 2, 3, 4, 5, 6}), req.Pixels)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"scores": map[string]float64{"neutral": 62.5, "happy": 10},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	scores, err := c.ClassifyEmotion(context.Background(), testFrame())
	require.NoError(t, err)
	assert.InDelta(t, 62.5, scores["neutral"], 0.001)
}

func TestEstimatePose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pose", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"detected":       true,
			"nose":           map[string]float64{"x": 0.5, "y": 0.3},
			"left_shoulder":  map[string]float64{"x": 0.4, "y": 0.6},
			"right_shoulder": map[string]float64{"x": 0.6, "y": 0.6},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	lm, err := c.EstimatePose(context.Background(), testFrame())
	require.NoError(t, err)
	assert.True(t, lm.Detected)
	assert.InDelta(t, 0.5, lm.Nose.X, 0.001)
	assert.InDelta(t, 0.6, lm.RightShoulder.X, 0.001)
}

func TestDetectEyes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/facemesh", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"detected":  true,
			"left_eye":  []map[string]float64{{"x": 0.3, "y": 0.4}, {"x": 0.32, "y": 0.41}},
			"right_eye": []map[string]float64{{"x": 0.6, "y": 0.4}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	eyes, err := c.DetectEyes(context.Background(), testFrame())
	require.NoError(t, err)
	assert.True(t, eyes.Detected)
	assert.Len(t, eyes.Left, 2)
	assert.Len(t, eyes.Right, 1)
}

func TestNonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.ClassifyEmotion(context.Background(), testFrame())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not loaded")
}
