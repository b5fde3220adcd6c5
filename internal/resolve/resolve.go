// Package resolve maps user-supplied cluster and nodepool identifiers
// (full UUID, exact name, or ID prefix) to full API resources.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/jimdaga/gcp-hcp-cli/internal/api"
)

// listLimit is the page size used when searching by name or prefix.
const listLimit = 100

// nodePoolPrefixMin is the minimum query length for nodepool ID prefix
// matching. Nodepool IDs cluster around shared prefixes, so short
// queries would match too much; cluster resolution has no such floor.
const nodePoolPrefixMin = 8

// Directory is the subset of the API client the resolver needs.
type Directory interface {
	ListClusters(ctx context.Context, limit, offset int, status string) (*api.ClusterList, error)
	GetCluster(ctx context.Context, id string) (*api.Cluster, error)
	ListNodePools(ctx context.Context, clusterID string, limit int) (*api.NodePoolList, error)
	GetNodePool(ctx context.Context, id string) (*api.NodePool, error)
}

// Match identifies one candidate resource in an ambiguity report.
type Match struct {
	ID   string
	Name string
}

// NotFoundError indicates no resource matched the query.
type NotFoundError struct {
	Kind  string
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found matching %q", e.Kind, e.Query)
}

// AmbiguousError indicates a query matched more than one resource.
// Every candidate is listed so the user can retry with a longer
// prefix or the full ID.
type AmbiguousError struct {
	Kind    string
	Query   string
	Matches []Match
}

func (e *AmbiguousError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s identifier %q is ambiguous, matches:", e.Kind, e.Query)
	for _, m := range e.Matches {
		fmt.Fprintf(&b, "\n  %s (%s)", m.ID, m.Name)
	}
	return b.String()
}

// Resolver resolves identifiers against the management API.
type Resolver struct {
	client Directory
}

// New creates a Resolver backed by the given API client.
func New(client Directory) *Resolver {
	return &Resolver{client: client}
}

// Cluster resolves query to a single cluster. A canonically formatted
// UUID is tried as a direct lookup first; a 404 there falls back to
// the list search. Among listed clusters an exact name match wins
// outright, then case-insensitive ID prefix matches are considered
// with no minimum query length.
func (r *Resolver) Cluster(ctx context.Context, query string) (*api.Cluster, error) {
	if isUUID(query) {
		cluster, err := r.client.GetCluster(ctx, query)
		if err == nil {
			return cluster, nil
		}
		if !api.IsNotFound(err) {
			return nil, err
		}
	}

	list, err := r.client.ListClusters(ctx, listLimit, 0, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list clusters: %w", err)
	}

	for i := range list.Clusters {
		if list.Clusters[i].Name == query {
			return &list.Clusters[i], nil
		}
	}

	var matches []*api.Cluster
	lower := strings.ToLower(query)
	for i := range list.Clusters {
		if strings.HasPrefix(strings.ToLower(list.Clusters[i].ID), lower) {
			matches = append(matches, &list.Clusters[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, &NotFoundError{Kind: "cluster", Query: query}
	case 1:
		return matches[0], nil
	default:
		amb := &AmbiguousError{Kind: "cluster", Query: query}
		for _, c := range matches {
			amb.Matches = append(amb.Matches, Match{ID: c.ID, Name: c.Name})
		}
		return nil, amb
	}
}

// NodePool resolves query to a single nodepool, optionally scoped to
// a cluster. Same strategy as Cluster, except ID prefix matching
// requires at least nodePoolPrefixMin characters.
func (r *Resolver) NodePool(ctx context.Context, query, clusterID string) (*api.NodePool, error) {
	if isUUID(query) {
		np, err := r.client.GetNodePool(ctx, query)
		if err == nil {
			if clusterID == "" || np.ClusterID == clusterID {
				return np, nil
			}
		} else if !api.IsNotFound(err) {
			return nil, err
		}
	}

	list, err := r.client.ListNodePools(ctx, clusterID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodepools: %w", err)
	}

	for i := range list.NodePools {
		if list.NodePools[i].Name == query {
			return &list.NodePools[i], nil
		}
	}

	var matches []*api.NodePool
	if len(query) >= nodePoolPrefixMin {
		lower := strings.ToLower(query)
		for i := range list.NodePools {
			if strings.HasPrefix(strings.ToLower(list.NodePools[i].ID), lower) {
				matches = append(matches, &list.NodePools[i])
			}
		}
	}

	switch len(matches) {
	case 0:
		return nil, &NotFoundError{Kind: "nodepool", Query: query}
	case 1:
		return matches[0], nil
	default:
		amb := &AmbiguousError{Kind: "nodepool", Query: query}
		for _, np := range matches {
			amb.Matches = append(amb.Matches, Match{ID: np.ID, Name: np.Name})
		}
		return nil, amb
	}
}

// isUUID reports whether s has the canonical 8-4-4-4-12 UUID shape.
func isUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i, c := range s {
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return false
			}
		default:
			if !isHex(byte(c)) {
				return false
			}
		}
	}
	return true
}

func isHex(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
