// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the client-side input rules applied before
// any network call.
//
// Core concepts:
//   - Field rules (ValidateEmail, ValidateStrongPassword,
//     ValidatePasswordConfirmation, ValidateUsername) are pure functions
//     returning a [Result] that forms and services display directly.
//   - Validator: generic interface to validate whole payloads such as
//     credentials, registrations and preferences. Supports optional
//     field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Call a field rule while the user types to show inline hints.
//  2. Inject a Validator into services and call Validate before sending.
//  3. Use errors.As with [FieldError] to get the message for the user.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
