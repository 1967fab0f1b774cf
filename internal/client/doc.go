// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the pet-tracker client runtime.
//
// It wires local storage, the authenticated gateway and the client services
// into a single process lifecycle.
package client
