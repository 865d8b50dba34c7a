package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shipstatic/go-shared/api"
)

type domainsResource struct {
	client *Client
}

func domainPath(domain string, parts ...string) string {
	p := "/domains/" + url.PathEscape(domain)
	for _, part := range parts {
		p += "/" + part
	}
	return p
}

func (r domainsResource) Set(ctx context.Context, domain string, req api.DomainSetRequest) (*api.Domain, error) {
	var out api.Domain
	if err := r.client.do(ctx, http.MethodPut, domainPath(domain), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r domainsResource) List(ctx context.Context) (*api.DomainListResponse, error) {
	var out api.DomainListResponse
	if err := r.client.do(ctx, http.MethodGet, "/domains", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r domainsResource) Get(ctx context.Context, domain string) (*api.Domain, error) {
	var out api.Domain
	if err := r.client.do(ctx, http.MethodGet, domainPath(domain), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r domainsResource) Remove(ctx context.Context, domain string) error {
	return r.client.do(ctx, http.MethodDelete, domainPath(domain), nil, nil)
}

func (r domainsResource) Verify(ctx context.Context, domain string) (*api.Domain, error) {
	var out api.Domain
	if err := r.client.do(ctx, http.MethodPost, domainPath(domain, "verify"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r domainsResource) Validate(ctx context.Context, domain string) (*api.DomainValidationResponse, error) {
	var out api.DomainValidationResponse
	if err := r.client.do(ctx, http.MethodGet, domainPath(domain, "validate"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r domainsResource) DNS(ctx context.Context, domain string) (*api.DNSInstructionsResponse, error) {
	var out api.DNSInstructionsResponse
	if err := r.client.do(ctx, http.MethodGet, domainPath(domain, "dns"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r domainsResource) Records(ctx context.Context, domain string) (*api.DNSRecordsResponse, error) {
	var out api.DNSRecordsResponse
	if err := r.client.do(ctx, http.MethodGet, domainPath(domain, "records"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r domainsResource) Share(ctx context.Context, domain string) (*api.ShareResponse, error) {
	var out api.ShareResponse
	if err := r.client.do(ctx, http.MethodPost, domainPath(domain, "share"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
