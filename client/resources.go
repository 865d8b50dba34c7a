package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shipstatic/go-shared/api"
)

type tokensResource struct {
	client *Client
}

func (r tokensResource) Create(ctx context.Context, req api.TokenCreateRequest) (*api.TokenCreateResponse, error) {
	var out api.TokenCreateResponse
	if err := r.client.do(ctx, http.MethodPost, "/tokens", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r tokensResource) List(ctx context.Context) (*api.TokenListResponse, error) {
	var out api.TokenListResponse
	if err := r.client.do(ctx, http.MethodGet, "/tokens", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r tokensResource) Remove(ctx context.Context, token string) error {
	return r.client.do(ctx, http.MethodDelete, "/tokens/"+url.PathEscape(token), nil, nil)
}

type billingResource struct {
	client *Client
}

func (r billingResource) Checkout(ctx context.Context, plan api.AccountPlan) (*api.CheckoutResponse, error) {
	body := struct {
		Plan api.AccountPlan `json:"plan"`
	}{Plan: plan}
	var out api.CheckoutResponse
	if err := r.client.do(ctx, http.MethodPost, "/billing/checkout", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r billingResource) Status(ctx context.Context) (*api.BillingStatusResponse, error) {
	var out api.BillingStatusResponse
	if err := r.client.do(ctx, http.MethodGet, "/billing/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type accountResource struct {
	client *Client
}

func (r accountResource) Get(ctx context.Context) (*api.Account, error) {
	var out api.Account
	if err := r.client.do(ctx, http.MethodGet, "/account", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type keysResource struct {
	client *Client
}

func (r keysResource) Create(ctx context.Context) (*api.KeyCreateResponse, error) {
	var out api.KeyCreateResponse
	if err := r.client.do(ctx, http.MethodPost, "/keys", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
