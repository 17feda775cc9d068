// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RecencyWindow describes how long a nonce stays fresh.
//
// Time is cut into buckets of BucketSize; a nonce is fresh while its bucket is
// one of the last Buckets buckets, the current one included. The nonce ledger
// sweep keeps one bucket more than that ([RecencyWindow.SweepBefore]), so an
// entry survives any sweep that runs while an admission judged fresh against
// an earlier clock reading is still in flight.
type RecencyWindow struct {
	BucketSize time.Duration
	Buckets    int64
}

// Bucket returns the bucket index that t falls into.
func (w RecencyWindow) Bucket(t time.Time) int64 {
	size := int64(w.BucketSize / time.Second)
	if size <= 0 {
		size = 1
	}

	secs := t.Unix()
	bucket := secs / size
	if secs < 0 && secs%size != 0 {
		bucket--
	}
	return bucket
}

// SweepGraceBuckets is how many buckets past the window the ledger keeps.
const SweepGraceBuckets = 1

// OldestFresh returns the smallest bucket index still considered fresh at now.
func (w RecencyWindow) OldestFresh(now time.Time) int64 {
	return w.Bucket(now) - w.Buckets + 1
}

// SweepBefore returns the bucket below which ledger entries may be purged at
// now. It trails OldestFresh by [SweepGraceBuckets].
func (w RecencyWindow) SweepBefore(now time.Time) int64 {
	return w.OldestFresh(now) - SweepGraceBuckets
}

// Contains reports whether bucket lies inside the window ending at now.
// Buckets from the future are rejected.
func (w RecencyWindow) Contains(bucket int64, now time.Time) bool {
	return bucket >= w.OldestFresh(now) && bucket <= w.Bucket(now)
}

// Width is the total time span covered by the window.
func (w RecencyWindow) Width() time.Duration {
	return w.BucketSize * time.Duration(w.Buckets)
}
