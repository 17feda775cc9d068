// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-key-keeper/models"
)

// UUIDGenerator produces time-ordered (v7) UUIDs, falling back to random (v4)
// ones if the clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUID in its canonical string form.
func (g *UUIDGenerator) Generate() string {
	return g.next().String()
}

// Handle returns the 16 raw bytes of a fresh UUID as a user handle.
func (g *UUIDGenerator) Handle() models.Handle {
	id := g.next()
	return id[:]
}

func (g *UUIDGenerator) next() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return v7
}
