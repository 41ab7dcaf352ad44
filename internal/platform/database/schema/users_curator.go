// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package schema

// UsersCuratorTable represents the 'users.curator' table
type UsersCuratorTable struct {
	Table        string
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	Role         string
	IsActive     string
	CreatedAt    string
	UpdatedAt    string
}

// UsersCurator is the schema definition for users.curator
var UsersCurator = UsersCuratorTable{
	Table:        "users.curator",
	ID:           "id",
	Email:        "email",
	DisplayName:  "display_name",
	PasswordHash: "password_hash",
	Role:         "role",
	IsActive:     "is_active",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}
