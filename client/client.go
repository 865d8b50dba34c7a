package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/shipstatic/go-shared/api"
	"github.com/shipstatic/go-shared/contracts"
	"github.com/shipstatic/go-shared/shiperrors"
)

// Client talks JSON over HTTP to a Shipstatic API endpoint. It satisfies
// contracts.Resources. A Client is safe for concurrent use.
type Client struct {
	baseURI     string
	apiKey      string
	deployToken string
	httpClient  *http.Client
	loggers     ldlog.Loggers
}

// New validates the configuration and constructs a Client. Configuration problems
// yield Config errors; malformed credentials and base URIs yield the same Validation
// errors as the validate package.
func New(config Config) (*Client, error) {
	baseURI, err := config.validate()
	if err != nil {
		return nil, err
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURI:     strings.TrimSuffix(baseURI, "/"),
		apiKey:      config.APIKey,
		deployToken: config.DeployToken,
		httpClient:  httpClient,
		loggers:     config.Loggers,
	}, nil
}

// Deployments returns the deployment resource.
func (c *Client) Deployments() contracts.Deployments { return deploymentsResource{c} }

// Domains returns the domain resource.
func (c *Client) Domains() contracts.Domains { return domainsResource{c} }

// Tokens returns the deploy-token resource.
func (c *Client) Tokens() contracts.Tokens { return tokensResource{c} }

// Billing returns the billing resource.
func (c *Client) Billing() contracts.Billing { return billingResource{c} }

// Account returns the account resource.
func (c *Client) Account() contracts.Account { return accountResource{c} }

// Keys returns the API-key resource.
func (c *Client) Keys() contracts.Keys { return keysResource{c} }

// PlatformConfig fetches the platform limits payload.
func (c *Client) PlatformConfig(ctx context.Context) (*api.ConfigResponse, error) {
	var out api.ConfigResponse
	if err := c.do(ctx, http.MethodGet, "/config", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request. Failures always surface as *shiperrors.Error: the decoded
// wire error for non-2xx responses, Network for transport faults, Cancelled when the
// context ended the request, and API for undecodable bodies.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return shiperrors.NewAPIError(fmt.Sprintf("encoding request body: %s", err), 0)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURI+path, reqBody)
	if err != nil {
		return shiperrors.NewNetworkError(fmt.Sprintf("building request for %s", path), err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.deployToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return shiperrors.NewCancelledError("")
		}
		c.loggers.Debugf("request %s %s failed: %s", method, path, err)
		return shiperrors.NewNetworkError(fmt.Sprintf("request to %s failed", path), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return shiperrors.NewCancelledError("")
		}
		return shiperrors.NewNetworkError(fmt.Sprintf("reading response from %s", path), err)
	}

	if resp.StatusCode >= 300 {
		return c.errorFromResponse(resp.StatusCode, data, path)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return shiperrors.NewAPIError(fmt.Sprintf("malformed response body from %s", path), 0)
		}
	}
	return nil
}

func (c *Client) errorFromResponse(status int, body []byte, path string) error {
	var wire shiperrors.ErrorResponse
	if err := json.Unmarshal(body, &wire); err == nil && wire.Error != "" {
		e := shiperrors.FromResponse(wire)
		if e.Status == 0 {
			e.Status = status
		}
		return e
	}
	c.loggers.Debugf("undecodable %d error body from %s", status, path)
	return shiperrors.NewAPIError(fmt.Sprintf("unexpected response status %d from %s", status, path), status)
}
