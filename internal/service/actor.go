package service

import "context"

type actorKey struct{}

// WithActor returns a context carrying the id of the user performing the request.
func WithActor(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFromContext returns the acting user id, or nil when the caller is anonymous.
func ActorFromContext(ctx context.Context) *int64 {
	id, ok := ctx.Value(actorKey{}).(int64)
	if !ok {
		return nil
	}
	return &id
}
