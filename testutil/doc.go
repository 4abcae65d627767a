// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package testutil provides test helpers: an in-memory sqlite database with the
schema applied, insert builders for every table, and HTTP request/response
helpers for handler tests.
*/
package testutil
