// Package api provides the client for the hosted control plane
// management API (clusters and nodepools).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	clustersPath  = "/api/v1/clusters"
	nodePoolsPath = "/api/v1/nodepools"
)

// RequestError is returned for any non-2xx response from the
// management API.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a RequestError with status 404.
func IsNotFound(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.StatusCode == http.StatusNotFound
}

// Client talks to the management API.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint. The token is
// sent as a Bearer credential when non-empty.
func NewClient(endpoint, token string) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListClusters fetches a page of clusters. status filters by phase
// when non-empty.
func (c *Client) ListClusters(ctx context.Context, limit, offset int, status string) (*ClusterList, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	if status != "" {
		params.Set("status", status)
	}
	var list ClusterList
	if err := c.do(ctx, http.MethodGet, clustersPath, params, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetCluster fetches a single cluster by its full ID.
func (c *Client) GetCluster(ctx context.Context, id string) (*Cluster, error) {
	var cluster Cluster
	if err := c.do(ctx, http.MethodGet, clustersPath+"/"+id, nil, nil, &cluster); err != nil {
		return nil, err
	}
	return &cluster, nil
}

// GetClusterStatus fetches the controller status detail for a cluster.
func (c *Client) GetClusterStatus(ctx context.Context, id string) (*ClusterStatusDetail, error) {
	var detail ClusterStatusDetail
	if err := c.do(ctx, http.MethodGet, clustersPath+"/"+id+"/status", nil, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreateCluster submits a cluster creation payload.
func (c *Client) CreateCluster(ctx context.Context, payload *ClusterCreate) (*Cluster, error) {
	var cluster Cluster
	if err := c.do(ctx, http.MethodPost, clustersPath, nil, payload, &cluster); err != nil {
		return nil, err
	}
	return &cluster, nil
}

// DeleteCluster deletes a cluster. The API requires force=true for
// actual deletion; the user-facing --force flag only governs the
// local confirmation prompt.
func (c *Client) DeleteCluster(ctx context.Context, id string) error {
	params := url.Values{}
	params.Set("force", "true")
	return c.do(ctx, http.MethodDelete, clustersPath+"/"+id, params, nil, nil)
}

// ListNodePools fetches a page of nodepools, optionally scoped to a
// cluster.
func (c *Client) ListNodePools(ctx context.Context, clusterID string, limit int) (*NodePoolList, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if clusterID != "" {
		params.Set("clusterId", clusterID)
	}
	var list NodePoolList
	if err := c.do(ctx, http.MethodGet, nodePoolsPath, params, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetNodePool fetches a single nodepool by its full ID.
func (c *Client) GetNodePool(ctx context.Context, id string) (*NodePool, error) {
	var np NodePool
	if err := c.do(ctx, http.MethodGet, nodePoolsPath+"/"+id, nil, nil, &np); err != nil {
		return nil, err
	}
	return &np, nil
}

// CreateNodePool submits a nodepool creation payload.
func (c *Client) CreateNodePool(ctx context.Context, payload *NodePoolCreate) (*NodePool, error) {
	var np NodePool
	if err := c.do(ctx, http.MethodPost, nodePoolsPath, nil, payload, &np); err != nil {
		return nil, err
	}
	return &np, nil
}

// DeleteNodePool deletes a nodepool. force=true is always sent, same
// contract as DeleteCluster.
func (c *Client) DeleteNodePool(ctx context.Context, id string) error {
	params := url.Values{}
	params.Set("force", "true")
	return c.do(ctx, http.MethodDelete, nodePoolsPath+"/"+id, params, nil, nil)
}

// do performs one request and decodes the JSON response into out
// when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, payload, out any) error {
	u := c.endpoint + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage extracts a human-readable message from an API error
// body. The server uses either "error" or "detail" depending on the
// failure layer.
func errorMessage(body []byte) string {
	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Detail != "" {
			return payload.Detail
		}
	}
	if len(body) > 200 {
		body = body[:200]
	}
	return string(bytes.TrimSpace(body))
}
