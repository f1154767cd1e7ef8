package store

import "errors"

var (
	// ErrCorruptedParamsDb For some reason, db on disk representation have changed
	ErrCorruptedParamsDb = errors.New("staking params db is corrupted")

	// ErrParamsNotFound The params version we try to fetch is not found in db
	ErrParamsNotFound = errors.New("staking params not found")

	// ErrConflictingParams The params version we try to add already exists in db with different content
	ErrConflictingParams = errors.New("staking params version already exists with different content")
)
