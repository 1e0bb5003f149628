package github

import (
	"context"

	"github.com/poiesic/issuescout/core"
)

// Query describes one issue retrieval pass.
type Query struct {
	// Language filters repositories by primary language.
	// Empty or "all" means no language filter.
	Language string

	// TopN is how many top-starred repositories to scan.
	TopN int

	// PerPage is how many issues to return in total.
	PerPage int

	// Labels restricts issues to those carrying at least one of these
	// labels (case-insensitive). Nil means no label filtering.
	Labels []string
}

// Retriever fetches open issues from a code host.
type Retriever interface {
	// FetchIssues returns up to query.PerPage open issues gathered from
	// the query.TopN most starred repositories.
	FetchIssues(ctx context.Context, query Query) ([]core.Issue, error)
}
