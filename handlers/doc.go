// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP handlers for the report and bill
endpoints.

Handlers load rows with inline SQL, hand them to the report package for
organization, reconciliation, and classification, and shape the result into
the response types in models.
*/
package handlers
