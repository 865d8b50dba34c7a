package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shipstatic/go-shared/api"
)

type deploymentsResource struct {
	client *Client
}

func (r deploymentsResource) Create(ctx context.Context, req api.DeploymentCreateRequest) (*api.Deployment, error) {
	var out api.Deployment
	if err := r.client.do(ctx, http.MethodPost, "/deployments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r deploymentsResource) List(ctx context.Context) (*api.DeploymentListResponse, error) {
	var out api.DeploymentListResponse
	if err := r.client.do(ctx, http.MethodGet, "/deployments", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r deploymentsResource) Get(ctx context.Context, deployment string) (*api.Deployment, error) {
	var out api.Deployment
	if err := r.client.do(ctx, http.MethodGet, "/deployments/"+url.PathEscape(deployment), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r deploymentsResource) SetTags(ctx context.Context, deployment string, tags []string) (*api.Deployment, error) {
	body := struct {
		Tags []string `json:"tags"`
	}{Tags: tags}
	var out api.Deployment
	if err := r.client.do(ctx, http.MethodPut, "/deployments/"+url.PathEscape(deployment)+"/tags", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r deploymentsResource) Remove(ctx context.Context, deployment string) error {
	return r.client.do(ctx, http.MethodDelete, "/deployments/"+url.PathEscape(deployment), nil, nil)
}
