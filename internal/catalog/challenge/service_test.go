// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package challenge_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-mary/catalog/internal/catalog/challenge"
	"github.com/digital-mary/catalog/internal/platform/apperr"
)

// fakeRepository records created inquiries in memory.
type fakeRepository struct {
	created      []*challenge.Challenge
	itemName     string
	itemIsPublic bool
	createErr    error
	archivedIDs  []string
}

func (f *fakeRepository) Create(_ context.Context, c *challenge.Challenge) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, c)
	return nil
}

func (f *fakeRepository) List(_ context.Context, _ *bool) ([]*challenge.Challenge, error) {
	return f.created, nil
}

func (f *fakeRepository) SetArchived(_ context.Context, ids []string, archived bool) error {
	if archived {
		f.archivedIDs = append(f.archivedIDs, ids...)
	}
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeRepository) PublicItemName(_ context.Context, _ string) (string, bool, error) {
	return f.itemName, f.itemIsPublic, nil
}

// fakeVerifier rejects every token when fail is set.
type fakeVerifier struct {
	fail  bool
	calls int
}

func (f *fakeVerifier) Verify(_ context.Context, _, _ string) error {
	f.calls++
	if f.fail {
		return errors.New("token rejected")
	}
	return nil
}

// fakeSender records outgoing mail and can simulate relay failure.
type fakeSender struct {
	sent []string
	fail bool
}

func (f *fakeSender) Send(_ context.Context, recipient, _, _ string) error {
	if f.fail {
		return errors.New("relay unavailable")
	}
	f.sent = append(f.sent, recipient)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validInput() challenge.SubmitInput {
	return challenge.SubmitInput{
		Fullname:     "A Visitor",
		Email:        "visitor@example.com",
		Message:      "The provenance looks wrong.",
		CaptchaToken: "tok",
	}
}

func TestSubmit_PersistsAndNotifies(t *testing.T) {
	repo := &fakeRepository{itemName: "Funerary Stele", itemIsPublic: true}
	verifier := &fakeVerifier{}
	sender := &fakeSender{}
	service := challenge.NewService(repo, verifier, sender,
		[]string{"a@digitalmary.org", "b@digitalmary.org"}, discardLogger())

	c, err := service.Submit(context.Background(), "item-1", validInput(), "203.0.113.9")
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "item-1", c.ItemID)
	assert.False(t, c.Archive, "new inquiries start in the live queue")

	require.Len(t, repo.created, 1)
	assert.Equal(t, []string{"a@digitalmary.org", "b@digitalmary.org"}, sender.sent)
	assert.Equal(t, 1, verifier.calls)
}

func TestSubmit_CaptchaFailure(t *testing.T) {
	repo := &fakeRepository{itemName: "Stele", itemIsPublic: true}
	service := challenge.NewService(repo, &fakeVerifier{fail: true}, &fakeSender{}, nil, discardLogger())

	_, err := service.Submit(context.Background(), "item-1", validInput(), "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)
	assert.Empty(t, repo.created, "nothing persisted when the captcha fails")
}

func TestSubmit_ValidationRunsAfterCaptcha(t *testing.T) {
	repo := &fakeRepository{itemName: "Stele", itemIsPublic: true}
	service := challenge.NewService(repo, &fakeVerifier{}, &fakeSender{}, nil, discardLogger())

	input := validInput()
	input.Email = "not-an-address"

	_, err := service.Submit(context.Background(), "item-1", input, "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

func TestSubmit_NonPublicItemReadsAsNotFound(t *testing.T) {
	repo := &fakeRepository{itemIsPublic: false}
	service := challenge.NewService(repo, &fakeVerifier{}, &fakeSender{}, nil, discardLogger())

	_, err := service.Submit(context.Background(), "hidden-item", validInput(), "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestSubmit_NotificationFailureIsSwallowed pins down the delivery contract:
once the inquiry is stored, a dead SMTP relay must not turn the submission
into an error.
*/
func TestSubmit_NotificationFailureIsSwallowed(t *testing.T) {
	repo := &fakeRepository{itemName: "Stele", itemIsPublic: true}
	sender := &fakeSender{fail: true}
	service := challenge.NewService(repo, &fakeVerifier{}, sender,
		[]string{"a@digitalmary.org"}, discardLogger())

	c, err := service.Submit(context.Background(), "item-1", validInput(), "")
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Len(t, repo.created, 1)
}

func TestSubmit_NoRecipientsSkipsMail(t *testing.T) {
	repo := &fakeRepository{itemName: "Stele", itemIsPublic: true}
	sender := &fakeSender{}
	service := challenge.NewService(repo, &fakeVerifier{}, sender, nil, discardLogger())

	_, err := service.Submit(context.Background(), "item-1", validInput(), "")
	require.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestArchive_Batch(t *testing.T) {
	repo := &fakeRepository{}
	service := challenge.NewService(repo, &fakeVerifier{}, &fakeSender{}, nil, discardLogger())

	require.NoError(t, service.Archive(context.Background(), []string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, repo.archivedIDs)
}
