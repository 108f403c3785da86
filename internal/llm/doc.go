// Package llm provides the remote inference layer of the classification
// pipeline: provider HTTP clients, the dual-window rate limiter, response
// caching, prompt construction, and structured-output parsing. Every failure
// mode at this boundary degrades to a fallback result; nothing escapes to
// callers as an error.
package llm
