// Package provider implements the model-provider abstraction: request
// formatting and raw SSE parsing for the two wire dialects the core
// supports, plus a small static model catalog per provider.
//
// Neither provider delegates streaming to an SDK. AnthropicProvider and
// OpenAIProvider each own a stream.Reader (anthropic_stream.go,
// openai_stream.go) that consumes raw `event:`/`data:` lines directly off
// the HTTP response body via sse.go's line scanner, and emit
// internal/stream events per the translation tables in spec.md §4.3.
//
// OpenAIProvider also serves OpenAI-compatible endpoints (Azure, local
// gateways, Volcengine ARK) by overriding BaseURL and ExtraHeaders — a
// second wire dialect is never needed for those, only different
// endpoint/auth configuration.
//
//	reg := provider.NewRegistry(cfg)
//	p, _ := reg.Get("anthropic")
//	r, err := p.CreateCompletion(ctx, &provider.CompletionRequest{
//	    Model:    "claude-sonnet-4-20250514",
//	    System:   "You are a coding agent.",
//	    Messages: messages,
//	    Tools:    tools,
//	})
//	for {
//	    ev, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // dispatch on ev's concrete type
//	}
package provider
