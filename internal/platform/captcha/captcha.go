// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

/*
Package captcha verifies human-verification tokens submitted with the public
challenge form.

It speaks the de-facto standard "siteverify" protocol (Cloudflare Turnstile
and Google reCAPTCHA share the same request/response shape): the server
POSTs the client token plus a shared secret and receives a JSON verdict.
*/
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Verifier checks a client-supplied captcha token.
type Verifier interface {
	// Verify returns nil when the token passes, or an error describing why
	// it was rejected.
	Verify(ctx context.Context, token, remoteIP string) error
}

// SiteVerifier implements [Verifier] against a siteverify endpoint.
//
// # Development Mode
//
// An empty secret disables verification: every token passes. This mirrors
// how the form behaves locally without provider credentials.
type SiteVerifier struct {
	endpoint string
	secret   string
	client   *http.Client
}

// New constructs a SiteVerifier for the given endpoint and secret.
func New(endpoint, secret string) *SiteVerifier {
	return &SiteVerifier{
		endpoint: endpoint,
		secret:   secret,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether verification is active.
func (v *SiteVerifier) Enabled() bool {
	return v.secret != ""
}

// siteVerifyResponse is the provider's JSON verdict.
type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify posts the token to the siteverify endpoint.
func (v *SiteVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if !v.Enabled() {
		return nil
	}

	if token == "" {
		return fmt.Errorf("captcha: missing token")
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("captcha: build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := v.client.Do(request)
	if err != nil {
		return fmt.Errorf("captcha: verification request failed: %w", err)
	}
	defer response.Body.Close()

	var verdict siteVerifyResponse
	if err := json.NewDecoder(response.Body).Decode(&verdict); err != nil {
		return fmt.Errorf("captcha: decode verdict: %w", err)
	}

	if !verdict.Success {
		return fmt.Errorf("captcha: rejected (%s)", strings.Join(verdict.ErrorCodes, ", "))
	}

	return nil
}
