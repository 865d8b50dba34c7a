// Package sharedtest provides test fixtures shared by this module's test code,
// including a canned-response implementation of the Shipstatic API wire protocol.
package sharedtest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/shipstatic/go-shared/api"
	"github.com/shipstatic/go-shared/domains"
	"github.com/shipstatic/go-shared/shiperrors"
)

// StubAPIService serves the Shipstatic wire protocol from in-memory data. It covers
// only the behaviors client tests need: entity lookup, tag updates, removal, and the
// error payloads for missing resources and bad credentials.
type StubAPIService struct {
	// AuthToken is the bearer credential the stub accepts; empty disables auth checks.
	AuthToken string

	Deployments map[string]api.Deployment
	Domains     map[string]api.Domain
	Account     api.Account
	Config      api.ConfigResponse
}

// NewStubAPIService returns a stub seeded with one deployment, one domain, and an
// account profile.
func NewStubAPIService() *StubAPIService {
	deployment := api.Deployment{
		Deployment: "happy-cat-abc1234",
		FilesCount: 3,
		TotalSize:  2048,
		Status:     api.DeploymentStatusSuccess,
		Tags:       []string{"prod"},
		URL:        domains.DeploymentURL("happy-cat-abc1234", ""),
		Created:    1700000000,
	}
	linked := deployment.Deployment
	domain := api.Domain{
		Domain:     "www.example.com",
		Deployment: &linked,
		Status:     api.DomainStatusSuccess,
		URL:        domains.DomainURL("www.example.com"),
		Created:    1700000100,
		Linked:     1700000200,
		LinkCount:  1,
	}
	return &StubAPIService{
		Deployments: map[string]api.Deployment{deployment.Deployment: deployment},
		Domains:     map[string]api.Domain{domain.Domain: domain},
		Account: api.Account{
			Email:   "dev@example.com",
			Name:    "Dev Example",
			Plan:    api.AccountPlanPro,
			Created: 1690000000,
		},
		Config: api.ConfigResponse{
			MaxFileSize:   10 << 20,
			MaxFilesCount: 1000,
			MaxTotalSize:  100 << 20,
		},
	}
}

// Handler returns the stub's HTTP handler.
func (s *StubAPIService) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(s.requireAuth)

	router.HandleFunc("/deployments", s.listDeployments).Methods(http.MethodGet)
	router.HandleFunc("/deployments/{id}", s.getDeployment).Methods(http.MethodGet)
	router.HandleFunc("/deployments/{id}", s.removeDeployment).Methods(http.MethodDelete)
	router.HandleFunc("/deployments/{id}/tags", s.setDeploymentTags).Methods(http.MethodPut)
	router.HandleFunc("/domains", s.listDomains).Methods(http.MethodGet)
	router.HandleFunc("/domains/{domain}", s.getDomain).Methods(http.MethodGet)
	router.HandleFunc("/account", s.getAccount).Methods(http.MethodGet)
	router.HandleFunc("/config", s.getConfig).Methods(http.MethodGet)
	return router
}

func (s *StubAPIService) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.AuthToken != "" {
			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if got != s.AuthToken {
				writeShipError(w, shiperrors.NewAuthenticationError(""))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *StubAPIService) listDeployments(w http.ResponseWriter, r *http.Request) {
	out := api.DeploymentListResponse{Deployments: []api.Deployment{}}
	for _, d := range s.Deployments {
		out.Deployments = append(out.Deployments, d)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *StubAPIService) getDeployment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	d, ok := s.Deployments[id]
	if !ok {
		writeShipError(w, shiperrors.NewNotFoundError("deployment", id))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *StubAPIService) removeDeployment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := s.Deployments[id]; !ok {
		writeShipError(w, shiperrors.NewNotFoundError("deployment", id))
		return
	}
	delete(s.Deployments, id)
	writeJSON(w, http.StatusOK, api.RemoveResponse{Removed: true})
}

func (s *StubAPIService) setDeploymentTags(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	d, ok := s.Deployments[id]
	if !ok {
		writeShipError(w, shiperrors.NewNotFoundError("deployment", id))
		return
	}
	var body struct {
		Tags []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeShipError(w, shiperrors.NewValidationError("request body must be JSON", ldvalue.Null()))
		return
	}
	d.Tags = body.Tags
	s.Deployments[id] = d
	writeJSON(w, http.StatusOK, d)
}

func (s *StubAPIService) listDomains(w http.ResponseWriter, r *http.Request) {
	out := api.DomainListResponse{Domains: []api.Domain{}}
	for _, d := range s.Domains {
		out.Domains = append(out.Domains, d)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *StubAPIService) getDomain(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["domain"]
	d, ok := s.Domains[name]
	if !ok {
		writeShipError(w, shiperrors.NewNotFoundError("domain", name))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *StubAPIService) getAccount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Account)
}

func (s *StubAPIService) getConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Config)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeShipError(w http.ResponseWriter, e *shiperrors.Error) {
	writeJSON(w, e.Status, e.ToResponse())
}
