// Package uuid wraps id generation so it can be swapped in tests
package uuid

//go:generate mockgen -destination=mock/mock.go -package=mockuuid -source=uuid.go

import (
	"strconv"

	"github.com/google/uuid"
)

// Generator produces ids for documents, items, feats and spells
type Generator interface {
	New() string
}

// GoogleUUIDGenerator issues random v4 UUIDs
type GoogleUUIDGenerator struct{}

func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator issues prefix-1, prefix-2, ... and is meant for fixtures
type SequenceGenerator struct {
	Prefix string
	next   int
}

func (g *SequenceGenerator) New() string {
	g.next++
	return g.Prefix + "-" + strconv.Itoa(g.next)
}
