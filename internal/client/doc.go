// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the contacts client process: it authenticates the
// configured principal, keeps the contacts view refreshed in the background
// and hands the terminal to the UI until the user quits.
package client
