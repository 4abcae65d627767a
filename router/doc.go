// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires URL patterns to handlers.

Routes:

	GET /health
	GET /reports/calendar?from=&to=&hide=&flagged_only=&hide_unanimous=
	GET /bills/{billNumber}
	GET /bills/{billNumber}/committee-vote?committee_id=
*/
package router
