package domain

import "context"

// AggregatorPort builds one immutable snapshot per call
// token is optional; a non empty token selects the privileged fetch path
type AggregatorPort interface {
	Aggregate(ctx context.Context, username, token string) (Snapshot, error)
}

// EvidencePort is implemented by the two interchangeable fetch paths
type EvidencePort interface {
	FetchEvidence(ctx context.Context, username, token string) (Evidence, error)
}
