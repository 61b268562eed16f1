// Package kernel contains the shared value objects of the domain model.
//
// UUID wraps github.com/google/uuid to give entities an identifier type
// whose zero value is detectably invalid. Money represents a monetary
// amount in the smallest currency unit and enforces non-negativity, the
// floor the refund rules require.
//
// Both types are immutable and safe for concurrent use. They must be
// created through their constructor functions; zero values fail Validate.
package kernel
