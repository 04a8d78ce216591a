package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"barberly/models"

	"go.uber.org/zap"
)

// ImageSearchResult is the backend's answer to an image search: the
// barbers whose example work most resembles the uploaded picture. Callers
// that only care about the success signal can ignore the matches.
type ImageSearchResult struct {
	Matches []models.Barber `json:"matches"`
}

// ImageSearch wraps a locally chosen image file in a multipart payload
// and posts it to the backend. No client-side validation of type or size
// happens beyond what the file picker restricted.
func (c *Client) ImageSearch(ctx context.Context, filename string, file io.Reader) (*ImageSearchResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart payload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/image_search", &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	var result ImageSearchResult
	if err := c.do(httpReq, &result); err != nil {
		c.logger.Error("image search upload failed", zap.String("filename", filename), zap.Error(err))
		return nil, err
	}
	c.logger.Info("image uploaded successfully", zap.String("filename", filename))
	return &result, nil
}
