// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires local storage, the session layer, server adapters, client services
// and the test-session state machine to the terminal UI, and runs the
// restore-session, sign-in and main-loop lifecycle.
package client
