// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

/*
Package auth implements curator identity and access management.

The catalog has no public accounts: every authenticated principal is a
member of the curation team. Login issues a short-lived RSA-signed JWT plus
an opaque refresh token held in Redis; refresh rotates the opaque token so
a replayed one is dead on arrival.
*/
package auth

import (
	"time"

	"github.com/digital-mary/catalog/internal/platform/sec"
)

// Curator is one curation-team account.
type Curator struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	DisplayName  string       `json:"display_name"`
	PasswordHash string       `json:"-"`
	Role         sec.UserRole `json:"role"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"-"`
}
