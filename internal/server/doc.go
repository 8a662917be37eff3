// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the configuration server's transports.
//
// It starts the HTTP and gRPC servers and the background workers, waits for
// SIGINT, SIGTERM or SIGQUIT (or for the parent context to end) and shuts
// everything down gracefully.
package server
