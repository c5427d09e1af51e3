package logging

import "context"

type ctxKey struct{}

// ContextWith returns a copy of ctx carrying extra key-value pairs. Loggers
// append them to every entry written with that context.
func ContextWith(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	prev := fromContext(ctx)
	kv := make([]any, 0, len(prev)+len(args))
	kv = append(kv, prev...)
	kv = append(kv, args...)
	return context.WithValue(ctx, ctxKey{}, kv)
}

func fromContext(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	kv, _ := ctx.Value(ctxKey{}).([]any)
	return kv
}
