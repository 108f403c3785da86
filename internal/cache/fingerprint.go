package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/formsense/formsense/internal/model"
)

// fingerprintLen is the hex length cache keys are truncated to.
const fingerprintLen = 32

// FingerprintFields computes a deterministic, order-sensitive key for a
// field batch in a given context. Reordering the same fields produces a
// different key; that is a documented property of the cache, not an
// oversight.
func FingerprintFields(fields []model.FieldDescriptor, ctx model.Context) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(string(f.Kind))
		b.WriteByte('|')
		b.WriteString(f.Name)
		b.WriteByte('|')
		b.WriteString(f.DomID)
		b.WriteByte('|')
		b.WriteString(f.Label)
		b.WriteByte('\n')
	}
	b.WriteString(string(ctx.Platform))
	b.WriteByte('|')
	b.WriteString(ctx.URL)
	return digest(b.String())
}

// FingerprintQuestion computes a deterministic key for a question in a
// given context.
func FingerprintQuestion(question string, ctx model.Context) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(strings.ToLower(question)))
	b.WriteByte('|')
	b.WriteString(ctx.Position)
	b.WriteByte('|')
	b.WriteString(ctx.Company)
	return digest(b.String())
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}
