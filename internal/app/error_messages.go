// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants used by
// the sync server handlers and the client sync engine.
//
// Msg* constants are written into HTTP response bodies, sync results and log
// entries. Keeping them in one place keeps the wording identical on both
// sides of the wire.
package app

// Server responses.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgInvalidSecretKey is returned with 401 when x-secret-key is missing
	// or shorter than the configured minimum.
	MsgInvalidSecretKey = "Invalid or missing secret key"

	// MsgTooManyRequests is returned with 429 by the rate limiter.
	MsgTooManyRequests = "Too many requests, please try again later."

	// MsgRequestTooLarge is returned with 413 when the body exceeds the
	// configured limit.
	MsgRequestTooLarge = "request body too large"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgNoDataOnServer is the pull message when no dataset exists.
	MsgNoDataOnServer = "No data found on server"

	// MsgDataRetrieved is the pull message when a dataset is returned.
	MsgDataRetrieved = "Data retrieved successfully"

	// MsgDataSaved is the push message.
	MsgDataSaved = "Data saved successfully"

	// MsgDataDeleted is the delete message.
	MsgDataDeleted = "Data deleted successfully"

	// MsgDataNotFound is returned when a delete targets a missing dataset.
	MsgDataNotFound = "No data found to delete"
)

// Client sync results.
const (
	MsgSyncInProgress    = "Sync already in progress"
	MsgSyncNotConfigured = "Sync not configured. Please set server URL and secret key."
	MsgSyncCompleted     = "Sync completed successfully"
	MsgSyncFailed        = "Sync failed"
	MsgPullFailed        = "Pull failed"

	MsgServerNotResponding   = "Server not responding"
	MsgInvalidSecretKeyShort = "Invalid secret key (must be at least 8 characters)"
	MsgConnectionSuccessful  = "Connection successful"

	MsgSyncConfigSaved     = "Sync settings saved"
	MsgDataMerged          = "Server data merged"
	MsgPushCompleted       = "Data pushed to server"
	MsgServerDataDeleted   = "Server data deleted"
	MsgServerErrorTemplate = "Server error: %d"
)
