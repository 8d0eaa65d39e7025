package domain

import "context"

// Key for the authenticated account inside the HTTP request context
type ctxKey int

const accountCtxKey ctxKey = 1

func WithAccount(ctx context.Context, a Account) context.Context {
	return context.WithValue(ctx, accountCtxKey, a)
}

func AccountFromCtx(ctx context.Context) (Account, bool) {
	a, ok := ctx.Value(accountCtxKey).(Account)
	return a, ok
}
