// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform resolves the environment-derived locations lbar reads
// from and writes to.
package platform
