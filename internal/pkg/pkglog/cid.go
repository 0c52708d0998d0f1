package pkglog

import "context"

type chainIDContextKey struct{}

type navigationIDContextKey struct{}

// GetCorrelationID returns the correlation ID stored in the context.
//
// Middleware is expected to set this value early in the request lifecycle so
// it can be attached to logs and propagated to downstream calls.
func GetCorrelationID(ctx context.Context) string {
	clm, ok := ctx.Value(chainIDContextKey{}).(string)
	if !ok {
		return "[invalid_chain_id]"
	}
	return clm
}

// SetCorrelationID stores a correlation ID into the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, chainIDContextKey{}, cid)
}

// GetNavigationID returns the navigation ID stored in the context, or 0.
func GetNavigationID(ctx context.Context) int64 {
	nid, _ := ctx.Value(navigationIDContextKey{}).(int64)
	return nid
}

// SetNavigationID stores the ID of the page navigation being served.
func SetNavigationID(ctx context.Context, nid int64) context.Context {
	return context.WithValue(ctx, navigationIDContextKey{}, nid)
}
