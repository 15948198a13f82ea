// Package filekv provides a key-value coordination primitive for independent
// processes that share nothing but a filesystem path.
//
// Processes in a distributed computation use a [Store] to rendezvous: each
// publishes small values (endpoints, ranks) and blocks until its peers have
// done the same. The file-backed implementation lives in
// [github.com/filekv/go-filekv/driver/file]; an in-memory implementation of
// the same contract lives in [github.com/filekv/go-filekv/driver/mem].
//
// See the [github.com/filekv/go-filekv/rendezvous] package for a barrier
// helper built on top of the contract.
package filekv
