// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive tester runtime.
//
// It loads the profile files through the client services and then runs the
// terminal UI until the operator quits.
package client
