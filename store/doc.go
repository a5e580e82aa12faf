// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store is the data access layer over the poll and poll_option
// tables. Every failure is a *Error wrapping the cause, so callers can test
// for ErrPollNotFound, ErrUnknownOption or ErrVoteRejected with errors.Is.
package store
