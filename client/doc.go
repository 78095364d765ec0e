// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package client is a typed HTTP client for the Quickly Vote API. Server
// rejections come back as Error, carrying the status code and the reason.
package client
