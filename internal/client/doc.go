// SPDX-License-Identifier: Apache-2.0

// Package client implements the sync client application runtime.
//
// It wires configuration, the local document store, the remote transport
// adapter, the synchronizer, and the background sync job into a single
// process lifecycle.
package client
