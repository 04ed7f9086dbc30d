package utils

import "github.com/google/uuid"

// maxTraceIDLen bounds a caller-supplied trace id.
const maxTraceIDLen = 128

// UUIDGenerator produces request trace ids and vets the ones callers send.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// Resolve returns incoming when it is usable as a trace id, a fresh id
// otherwise.
func (g *UUIDGenerator) Resolve(incoming string) string {
	if !acceptableTraceID(incoming) {
		return g.Generate()
	}
	return incoming
}

// acceptableTraceID allows 1 to maxTraceIDLen bytes of visible ASCII, so a
// header value cannot forge log lines or bloat every entry.
func acceptableTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
