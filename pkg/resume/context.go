package resume

import "context"

type storeContextKey struct{}

// WithStore binds store to ctx so request handlers share one resume state.
func WithStore(ctx context.Context, store Store) context.Context {
	if store == nil {
		return ctx
	}
	return context.WithValue(ctx, storeContextKey{}, store)
}

// StoreFromContext returns the store bound with WithStore.
func StoreFromContext(ctx context.Context) (Store, bool) {
	if ctx == nil {
		return nil, false
	}
	store, ok := ctx.Value(storeContextKey{}).(Store)
	return store, ok && store != nil
}
