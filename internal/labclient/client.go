package labclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/schynno0/studio/api/rest/health"
	"github.com/schynno0/studio/api/rest/lab"
	"github.com/schynno0/studio/internal/config"
	apierrors "github.com/schynno0/studio/internal/errors"
	"github.com/schynno0/studio/internal/flows"
	"github.com/schynno0/studio/internal/forms"
	"github.com/schynno0/studio/internal/validation"
)

const apiPrefix = "/api/v1"

// talks to a studio server over its REST API
type Client struct {
	http *resty.Client
}

func New(cfg *config.ClientConfig) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout)

	return &Client{http: client}
}

func (c *Client) Endpoint() string {
	return c.http.BaseURL
}

func (c *Client) Health(ctx context.Context) (*health.Response, error) {
	var result health.Response

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/health")
	if err != nil {
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("health check failed: status %d", resp.StatusCode())
	}

	return &result, nil
}

// lists the tools the server offers
func (c *Client) Tools(ctx context.Context) ([]flows.ToolInfo, error) {
	var (
		result lab.ToolsResponse
		apiErr apierrors.ErrorResponse
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr).
		Get(apiPrefix + "/lab/tools")
	if err != nil {
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}

	if resp.IsError() {
		return nil, remoteError(resp.StatusCode(), apiErr)
	}

	return result.Tools, nil
}

func (c *Client) Explain() forms.Runner[flows.ExplainInput, flows.ExplainOutput] {
	return endpoint[flows.ExplainInput, flows.ExplainOutput]{client: c, tool: flows.ToolExplain}
}

func (c *Client) Generate() forms.Runner[flows.GenerateInput, flows.GenerateOutput] {
	return endpoint[flows.GenerateInput, flows.GenerateOutput]{client: c, tool: flows.ToolGenerate}
}

func (c *Client) Summarize() forms.Runner[flows.SummarizeInput, flows.SummarizeOutput] {
	return endpoint[flows.SummarizeInput, flows.SummarizeOutput]{client: c, tool: flows.ToolSummarize}
}

func (c *Client) Grade() forms.Runner[flows.GradeInput, flows.GradeOutput] {
	return endpoint[flows.GradeInput, flows.GradeOutput]{client: c, tool: flows.ToolGrade}
}

func (c *Client) Suggest() forms.Runner[flows.SuggestInput, flows.SuggestOutput] {
	return endpoint[flows.SuggestInput, flows.SuggestOutput]{client: c, tool: flows.ToolSuggest}
}

// one POST /api/v1/lab/<tool> route
type endpoint[In, Out any] struct {
	client *Client
	tool   string
}

func (e endpoint[In, Out]) Run(ctx context.Context, in In) (*Out, error) {
	var (
		result Out
		apiErr apierrors.ErrorResponse
	)

	resp, err := e.client.http.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&result).
		SetError(&apiErr).
		Post(apiPrefix + "/lab/" + e.tool)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}

	if resp.IsError() {
		return nil, remoteError(resp.StatusCode(), apiErr)
	}

	return &result, nil
}

// validation failures come back as field errors, everything else as *Error
func remoteError(status int, body apierrors.ErrorResponse) error {
	if status == http.StatusBadRequest && len(body.Fields) > 0 {
		return validation.Errors(body.Fields)
	}

	return &Error{
		Status:  status,
		Code:    body.Error,
		Message: body.Message,
	}
}
