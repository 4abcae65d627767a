// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

  - WithLogging: request start/completion logging via slog
  - JSONResponse / ErrorResponse: JSON body writers
  - ParseJSONBody: request body decoding
  - CORS: cross-origin support for the report frontend
*/
package middleware
