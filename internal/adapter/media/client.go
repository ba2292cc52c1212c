package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/Amarhadpad/artistgrade/internal/domain/model"
)

// Client exposes operations against the image hosting service.
type Client interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (*model.MediaAsset, error)
	List(ctx context.Context) ([]model.MediaAsset, error)
}

// HTTPClient implements Client via HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	folder     string
	httpClient *http.Client
	logger     *slog.Logger

	newID func() string
}

// assetResponse mirrors JSON payload from the media service.
type assetResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type listResponse struct {
	Resources []assetResponse `json:"resources"`
}

// NewHTTPClient creates HTTP media client with default timeout.
func NewHTTPClient(baseURL, folder string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse media url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("media url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		folder:  folder,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		newID: uuid.NewString,
	}, nil
}

// Upload stores the image and returns its hosted location.
func (c *HTTPClient) Upload(ctx context.Context, filename, contentType string, data []byte) (*model.MediaAsset, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/upload")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("folder", c.folder); err != nil {
		return nil, err
	}
	if err := writer.WriteField("public_id", c.newID()); err != nil {
		return nil, err
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("media upload failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("media error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var asset assetResponse
	if err := json.Unmarshal(body, &asset); err != nil {
		return nil, err
	}
	return &model.MediaAsset{URL: asset.SecureURL, PublicID: asset.PublicID}, nil
}

// List returns assets stored under the configured folder.
func (c *HTTPClient) List(ctx context.Context) ([]model.MediaAsset, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/resources")
	query := endpoint.Query()
	query.Set("folder", c.folder)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("media list failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("media error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var data listResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}
	assets := make([]model.MediaAsset, 0, len(data.Resources))
	for _, r := range data.Resources {
		assets = append(assets, model.MediaAsset{URL: r.SecureURL, PublicID: r.PublicID})
	}
	return assets, nil
}
