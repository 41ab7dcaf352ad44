// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

/*
Package challenge implements visitor inquiries about catalog items.

A challenge is a public submission disputing or questioning an item's
interpretation. Submissions are captcha-gated and trigger a notification
email to the curation team. Curators never edit a challenge; they archive
it once handled, or delete it outright.
*/
package challenge

import "time"

// Challenge is one visitor inquiry about an item.
type Challenge struct {
	ID       string `json:"id"`
	ItemID   string `json:"item_id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Message  string `json:"message"`

	// Archive marks the inquiry as handled. New submissions start live.
	Archive bool `json:"archive"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	// ItemName is joined in for curator listings.
	ItemName string `json:"item_name,omitempty"`
}
