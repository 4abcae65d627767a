// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fixture loads YAML seed files into the database, mainly for local
development against a fresh sqlite file.

A seed file has optional committees, legislators, bills (with nested actions,
ballots, and notes), and calendars (with nested items) sections. Apply runs
in one transaction; a bad record rolls back the whole seed.
*/
package fixture
