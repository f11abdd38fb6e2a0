// Package inference talks to the vision model sidecar over HTTP. Frames are
// shipped as base64 bgr24 pixels; the sidecar owns the heavy models so the
// backend binary stays free of native dependencies.
package inference

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mock-interview-be/pkg/analysis"
	"mock-interview-be/pkg/capture"
)

type Client struct {
	c       *http.Client
	baseURL string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		c:       &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

type frameRequest struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Pixels string `json:"pixels"`
}

func (c *Client) post(ctx context.Context, path string, frame *capture.Frame, out interface{}) error {
	b, _ := json.Marshal(frameRequest{
		Width:  frame.Width,
		Height: frame.Height,
		Pixels: base64.StdEncoding.EncodeToString(frame.Data),
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("inference %s: %s: %s", path, resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("inference %s decode: %w", path, err)
	}
	return nil
}

type emotionResponse struct {
	Scores map[string]float64 `json:"scores"`
}

func (c *Client) ClassifyEmotion(ctx context.Context, frame *capture.Frame) (analysis.EmotionScores, error) {
	var out emotionResponse
	if err := c.post(ctx, "/emotion", frame, &out); err != nil {
		return nil, err
	}
	return analysis.EmotionScores(out.Scores), nil
}

type poseResponse struct {
	Detected      bool           `json:"detected"`
	Nose          analysis.Point `json:"nose"`
	LeftShoulder  analysis.Point `json:"left_shoulder"`
	RightShoulder analysis.Point `json:"right_shoulder"`
}

func (c *Client) EstimatePose(ctx context.Context, frame *capture.Frame) (analysis.PoseLandmarks, error) {
	var out poseResponse
	if err := c.post(ctx, "/pose", frame, &out); err != nil {
		return analysis.PoseLandmarks{}, err
	}
	return analysis.PoseLandmarks{
		Detected:      out.Detected,
		Nose:          out.Nose,
		LeftShoulder:  out.LeftShoulder,
		RightShoulder: out.RightShoulder,
	}, nil
}

type faceMeshResponse struct {
	Detected bool             `json:"detected"`
	LeftEye  []analysis.Point `json:"left_eye"`
	RightEye []analysis.Point `json:"right_eye"`
}

func (c *Client) DetectEyes(ctx context.Context, frame *capture.Frame) (analysis.EyeLandmarks, error) {
	var out faceMeshResponse
	if err := c.post(ctx, "/facemesh", frame, &out); err != nil {
		return analysis.EyeLandmarks{}, err
	}
	return analysis.EyeLandmarks{
		Detected: out.Detected,
		Left:     out.LeftEye,
		Right:    out.RightEye,
	}, nil
}
