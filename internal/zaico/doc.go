// Package zaico is a thin client for the ZAICO inventory REST API.
//
// Every call carries its own bearer token; the client never stores one.
// Responses are normalized into a CallResult:
//
//	{"status": 200, "ok": true, "data": <parsed JSON or {"raw": text}>}
//
// Upstream 4xx/5xx responses are data, not errors. Do only returns an error
// when no response was obtained at all.
package zaico
