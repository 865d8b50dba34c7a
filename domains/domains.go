// Package domains provides the pure string transforms for classifying hostnames and
// generating canonical URLs. A platform domain is a subdomain of the platform's own
// root domain; everything else is a customer-owned custom domain.
package domains

import "strings"

// DefaultPlatformDomain is the root domain deployments serve from when no platform
// domain is configured.
const DefaultPlatformDomain = "shipstatic.dev"

// IsPlatformDomain reports whether domain is a subdomain of the platform root. An
// empty root means DefaultPlatformDomain.
func IsPlatformDomain(domain, root string) bool {
	return strings.HasSuffix(domain, "."+rootOrDefault(root))
}

// IsCustomDomain reports whether domain is a customer-owned hostname, the logical
// negation of IsPlatformDomain.
func IsCustomDomain(domain, root string) bool {
	return !IsPlatformDomain(domain, root)
}

// Subdomain returns the label portion preceding the platform root for a platform
// domain, or "" for custom domains.
func Subdomain(domain, root string) string {
	suffix := "." + rootOrDefault(root)
	if !strings.HasSuffix(domain, suffix) {
		return ""
	}
	return strings.TrimSuffix(domain, suffix)
}

// DeploymentURL returns the canonical https URL a deployment serves from. An empty
// root means DefaultPlatformDomain.
func DeploymentURL(deployment, root string) string {
	return "https://" + deployment + "." + rootOrDefault(root)
}

// DomainURL returns the canonical https URL for an already fully-qualified domain.
func DomainURL(domain string) string {
	return "https://" + domain
}

func rootOrDefault(root string) string {
	if root == "" {
		return DefaultPlatformDomain
	}
	return root
}
