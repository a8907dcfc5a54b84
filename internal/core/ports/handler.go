package ports

import "context"

// Handler is the single request/response abstraction every use case is
// exposed through. The legacy, v2 and v3 route families all call the same
// Handler values; they only differ in how they render the response.
type Handler[Req, Resp any] interface {
	Handle(ctx context.Context, req Req) (Resp, error)
}

// HandlerFunc adapts an ordinary function (or a service method value) to Handler.
type HandlerFunc[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Handle calls f(ctx, req).
func (f HandlerFunc[Req, Resp]) Handle(ctx context.Context, req Req) (Resp, error) {
	return f(ctx, req)
}
