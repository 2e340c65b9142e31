package service

import "context"

// ViewPublisher emits a page-view event for a document. Publishing is
// fire-and-forget: a failure is logged by the caller and never fails the
// request that triggered it.
type ViewPublisher interface {
	PublishView(ctx context.Context, documentType, slug string) error
}
