// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package about

import "context"

// Repository is the storage contract for the About page singleton.
type Repository interface {
	// GetPage returns the singleton page with its team roster.
	GetPage(ctx context.Context) (*Page, error)

	// UpdateContent rewrites the page body.
	UpdateContent(ctx context.Context, content string) (*Page, error)

	// GetTeamMember returns one roster entry.
	GetTeamMember(ctx context.Context, id int) (*TeamMember, error)

	// CreateTeamMember inserts a roster entry.
	CreateTeamMember(ctx context.Context, member *TeamMember) error

	// UpdateTeamMember rewrites a roster entry.
	UpdateTeamMember(ctx context.Context, member *TeamMember) error

	// DeleteTeamMember removes a roster entry. File cleanup is the
	// caller's job.
	DeleteTeamMember(ctx context.Context, id int) (*TeamMember, error)
}
