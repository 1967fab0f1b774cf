package utils

import (
	"strings"

	"github.com/google/uuid"
)

// TempIDPrefix marks identifiers assigned locally to optimistic entities
// before the server has assigned the real one.
const TempIDPrefix = "tmp-"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TempID returns a fresh temporary entity id.
func (g *UUIDGenerator) TempID() string {
	return TempIDPrefix + g.Generate()
}

// IsTempID reports whether id was produced by [UUIDGenerator.TempID].
func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}
