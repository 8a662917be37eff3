// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the configuration server.
//
// It exposes the resolved tree, single values, the snapshot history and a
// token-protected reload endpoint. Request tracing, access logging and
// response compression are handled here before requests reach the service
// layer.
package http
