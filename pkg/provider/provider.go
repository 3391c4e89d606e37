// Package provider describes the external systems the platform integrates
// with: which category each provider belongs to, where its API lives, how
// domain entities are shaped for it and the client contracts used to talk
// to it.
//
//go:generate mockgen -package mockprovider -destination=mock/mockprovider.go . JobBoardClient,HRISClient
package provider

import (
	"atsconnect/pkg/domain"
	"context"
	"encoding/json"
	"time"
)

// AuthScheme selects how API keys are presented to a provider when no OAuth
// access token is available.
type AuthScheme int

const (
	// AuthHeader sends the API key in Spec.APIKeyHeader.
	AuthHeader AuthScheme = iota
	// AuthBasic sends the API key as the basic-auth user name.
	AuthBasic
)

// Paths are provider API paths. "{id}" is replaced by an external id and
// "{company}" by the configured company id.
type Paths struct {
	Postings     string
	Posting      string
	Applications string
	Employees    string
	Departments  string
}

// Spec is the catalog entry of a provider.
type Spec struct {
	Provider     domain.Provider
	Category     domain.Category
	BaseURL      string
	Paths        Paths
	Auth         AuthScheme
	APIKeyHeader string
}

var jobBoardPaths = Paths{ //nolint: gochecknoglobals
	Postings:     "/jobs",
	Posting:      "/jobs/{id}",
	Applications: "/jobs/{id}/applications",
}

var catalog = map[domain.Provider]Spec{ //nolint: gochecknoglobals
	domain.ProviderLinkedIn: {
		Category: domain.CategoryJobBoard,
		BaseURL:  "https://api.linkedin.com/v2",
		Paths: Paths{
			Postings:     "/simpleJobPostings",
			Posting:      "/simpleJobPostings/{id}",
			Applications: "/simpleJobPostings/{id}/applications",
		},
	},
	domain.ProviderIndeed: {
		Category: domain.CategoryJobBoard,
		BaseURL:  "https://apis.indeed.com/v1",
		Paths:    jobBoardPaths,
	},
	domain.ProviderGlassdoor: {
		Category:     domain.CategoryJobBoard,
		BaseURL:      "https://api.glassdoor.com/v1",
		Paths:        jobBoardPaths,
		APIKeyHeader: "X-Glassdoor-Key",
	},
	domain.ProviderZipRecruiter: {
		Category: domain.CategoryJobBoard,
		BaseURL:  "https://api.ziprecruiter.com/v1",
		Paths:    jobBoardPaths,
	},
	domain.ProviderMonster: {
		Category: domain.CategoryJobBoard,
		BaseURL:  "https://api.monster.com/v2",
		Paths:    jobBoardPaths,
	},
	domain.ProviderBambooHR: {
		Category: domain.CategoryHRIS,
		BaseURL:  "https://api.bamboohr.com/api/gateway.php/{company}/v1",
		Paths: Paths{
			Employees:   "/employees",
			Departments: "/meta/lists/departments",
		},
		Auth: AuthBasic,
	},
	domain.ProviderWorkday: {
		Category: domain.CategoryHRIS,
		BaseURL:  "https://wd2-impl-services1.workday.com/ccx/api/v1/{company}",
		Paths: Paths{
			Employees:   "/workers",
			Departments: "/organizations",
		},
	},
	domain.ProviderADP: {
		Category: domain.CategoryHRIS,
		BaseURL:  "https://api.adp.com",
		Paths: Paths{
			Employees:   "/hr/v2/workers",
			Departments: "/core/v1/organization-departments",
		},
	},
	domain.ProviderGusto: {
		Category: domain.CategoryHRIS,
		BaseURL:  "https://api.gusto.com/v1",
		Paths: Paths{
			Employees:   "/companies/{company}/employees",
			Departments: "/companies/{company}/departments",
		},
	},
	domain.ProviderGreenhouse: {
		Category: domain.CategoryATS,
		BaseURL:  "https://harvest.greenhouse.io/v1",
		Paths:    jobBoardPaths,
		Auth:     AuthBasic,
	},
	domain.ProviderLever: {
		Category: domain.CategoryATS,
		BaseURL:  "https://api.lever.co/v1",
		Paths: Paths{
			Postings:     "/postings",
			Posting:      "/postings/{id}",
			Applications: "/opportunities?posting_id={id}",
		},
		Auth: AuthBasic,
	},
	domain.ProviderWorkable: {
		Category: domain.CategoryATS,
		BaseURL:  "https://{company}.workable.com/spi/v3",
		Paths:    jobBoardPaths,
	},
	domain.ProviderCustom: {
		Category: domain.CategoryCustom,
		Paths: Paths{
			Postings:     "/jobs",
			Posting:      "/jobs/{id}",
			Applications: "/jobs/{id}/applications",
			Employees:    "/employees",
			Departments:  "/departments",
		},
	},
}

// Lookup returns the catalog entry of a provider.
func Lookup(p domain.Provider) (Spec, bool) {
	spec, ok := catalog[p]
	if !ok {
		return Spec{}, false
	}
	spec.Provider = p
	if spec.APIKeyHeader == "" {
		spec.APIKeyHeader = "X-API-Key"
	}

	return spec, true
}

// Supports reports whether p may be registered under category c. Any known
// provider may be registered as custom.
func Supports(p domain.Provider, c domain.Category) bool {
	spec, ok := catalog[p]
	if !ok {
		return false
	}

	return c == domain.CategoryCustom || spec.Category == c
}

// Connection carries everything a client needs to reach one integration.
type Connection struct {
	Provider    domain.Provider
	BaseURL     string
	AccessToken string
	APIKey      string
	CompanyID   string
}

// PostingResult is the provider's view of a created or updated posting.
type PostingResult struct {
	ExternalID string
	URL        string
	Raw        map[string]any
}

// Record is an entity listed from a provider, keyed by the provider's id.
type Record struct {
	ExternalID string
	Payload    json.RawMessage
}

// JobBoardClient publishes requisitions to job boards and reads back
// applications.
type JobBoardClient interface {
	CreatePosting(ctx context.Context, conn Connection, payload map[string]any) (PostingResult, error)
	UpdatePosting(ctx context.Context, conn Connection, externalID string, payload map[string]any) (PostingResult, error)
	ClosePosting(ctx context.Context, conn Connection, externalID string) error
	ListApplications(ctx context.Context, conn Connection, externalID string, since time.Time) ([]Record, error)
}

// HRISClient pushes employees and departments to HR information systems and
// reads employees back.
type HRISClient interface {
	UpsertEmployee(ctx context.Context, conn Connection, payload map[string]any) (string, error)
	UpsertDepartment(ctx context.Context, conn Connection, payload map[string]any) (string, error)
	ListEmployees(ctx context.Context, conn Connection, since time.Time) ([]Record, error)
}
