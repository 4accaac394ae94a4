// Package fmapi provides the HTTP client for the FM backend REST API.
//
// The client is a thin transport layer: it decodes id+name collections into
// domain.CatalogItem, normalizes numeric ids to strings, and reports non-2xx
// responses as errors. Fallback behavior for failed reference fetches lives
// in internal/refdata, not here.
package fmapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
	fmerrors "github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
)

// API endpoint paths.
const (
	pathAssets             = "/pms/assets.json"
	pathAssetGroups        = "/pms/asset_groups.json"
	pathAssetSubGroups     = "/pms/asset_groups/%s/sub_groups.json"
	pathEmailRules         = "/pms/email_rule_setups.json"
	pathUsers              = "/pms/users.json"
	pathSuppliers          = "/pms/suppliers.json"
	pathUserGroups         = "/pms/usergroups.json"
	pathTemplates          = "/pms/custom_forms.json"
	pathTemplateDetail     = "/pms/custom_forms/%s.json"
	pathHelpdeskCategories = "/pms/helpdesk_categories.json"
	pathTaskGroups         = "/pms/task_groups.json"
	pathTaskSubGroups      = "/pms/task_groups/%s/sub_groups.json"
	pathCreateSchedule     = "/pms/custom_forms/schedule.json"
)

// Client talks to the FM backend.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a backend client. A zero timeout falls back to the
// package default.
func NewClient(baseURL, token string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeoutSeconds * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "fmapi").Logger(),
	}
}

// catalogRow is the wire shape of one reference-list entry. Ids arrive as
// numbers or strings depending on the endpoint; json.Number absorbs both.
type catalogRow struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

// Assets lists assets.
func (c *Client) Assets(ctx context.Context) ([]domain.CatalogItem, error) {
	return c.getCatalog(ctx, pathAssets)
}

// AssetGroups lists asset groups.
func (c *Client) AssetGroups(ctx context.Context) ([]domain.CatalogItem, error) {
	return c.getCatalog(ctx, pathAssetGroups)
}

// AssetSubGroups lists the sub-groups of an asset group.
func (c *Client) AssetSubGroups(ctx context.Context, groupID string) ([]domain.CatalogItem, error) {
	return c.getCatalog(ctx, fmt.Sprintf(pathAssetSubGroups, groupID))
}

// EmailRules lists PPM email escalation rules.
func (c *Client) EmailRules(ctx context.Context) ([]domain.CatalogItem, error) {
	return c.getCatalog(ctx, pathEmailRules)
}

// Users lists users.
func (c *Client) Users(ctx context.Context) ([]domain.CatalogItem, error) {
	return c.getCatalog(ctx, pathUsers)
}

// Suppliers lists AMC suppliers.
func (c *Client) Suppliers(ctx context.Context) ([]domain.CatalogItem, error) {
	return c.getCatalog(ctx, pathSuppliers)
}

// UserGroups lists user groups.
func (c *Client) UserGroups(ctx context.Context) ([]domain.CatalogItem, error) {
	return c.getCatalog(ctx, pathUserGroups)
}

// HelpdeskCategories lists helpdesk categories.
func (c *Client) HelpdeskCategories(ctx context.Context) ([]domain.CatalogItem, error) {
	return c.getCatalog(ctx, pathHelpdeskCategories)
}

// TaskGroups lists task groups.
func (c *Client) TaskGroups(ctx context.Context) ([]domain.CatalogItem, error) {
	return c.getCatalog(ctx, pathTaskGroups)
}

// TaskSubGroups lists the sub-groups of a task group.
func (c *Client) TaskSubGroups(ctx context.Context, groupID string) ([]domain.CatalogItem, error) {
	return c.getCatalog(ctx, fmt.Sprintf(pathTaskSubGroups, groupID))
}

// Templates lists the remote schedule templates.
func (c *Client) Templates(ctx context.Context) ([]domain.CatalogItem, error) {
	return c.getCatalog(ctx, pathTemplates)
}

// templateDetailRow is the wire shape of a template detail response.
type templateDetailRow struct {
	ID          json.Number               `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Kind        string                    `json:"schedule_type"`
	Content     []domain.TemplateQuestion `json:"content"`
}

// TemplateDetail fetches a full template by id.
func (c *Client) TemplateDetail(ctx context.Context, id string) (*domain.TemplateDetail, error) {
	var row templateDetailRow
	if err := c.getJSON(ctx, fmt.Sprintf(pathTemplateDetail, id), &row); err != nil {
		return nil, err
	}
	return &domain.TemplateDetail{
		ID:          row.ID.String(),
		Name:        row.Name,
		Description: row.Description,
		Kind:        kindFromWire(row.Kind),
		Content:     row.Content,
	}, nil
}

// CreateSchedule submits the assembled payload. Any non-2xx response is a
// create failure.
func (c *Client) CreateSchedule(ctx context.Context, payload *domain.SchedulePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmerrors.Wrap(err, "encode schedule payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathCreateSchedule, bytes.NewReader(body))
	if err != nil {
		return fmerrors.Wrap(err, "build create request")
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmerrors.Wrap(err, "create schedule")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Msg("schedule create rejected")
		return fmt.Errorf("create schedule: status %d: %w", resp.StatusCode, fmerrors.ErrHTTPStatus)
	}

	c.log.Info().Str("schedule_type", payload.ScheduleType).Msg("schedule created")
	return nil
}

// getCatalog fetches and normalizes an id+name collection.
func (c *Client) getCatalog(ctx context.Context, path string) ([]domain.CatalogItem, error) {
	var rows []catalogRow
	if err := c.getJSON(ctx, path, &rows); err != nil {
		return nil, err
	}
	items := make([]domain.CatalogItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.CatalogItem{ID: row.ID.String(), Name: row.Name})
	}
	return items, nil
}

// getJSON performs an authorized GET and decodes the JSON response body.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmerrors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmerrors.Wrapf(err, "GET %s", path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("GET %s: status %d: %w", path, resp.StatusCode, fmerrors.ErrHTTPStatus)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmerrors.Wrapf(err, "decode %s", path)
	}
	return nil
}

// authorize attaches the bearer token when configured.
func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// kindFromWire maps a wire schedule type back to the internal kind.
// Matching is case-insensitive; unknown kinds map to the empty value.
func kindFromWire(wire string) constants.ScheduleKind {
	for _, k := range constants.ScheduleKinds() {
		if strings.EqualFold(wire, string(k)) {
			return k
		}
	}
	return ""
}
