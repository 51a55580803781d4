// Package chain is the boundary between generated contract code and the
// blockchain-interaction runtime. Generated clients call into the Client
// interface; generated handlers use the params helpers to pull loosely-typed
// values out of configuration-supplied parameter maps.
//
// The package deliberately contains no transaction-execution logic. A real
// Client implementation (RPC, simulation backend) is supplied by the embedding
// application; Recorder is an in-memory stand-in for tests and examples.
package chain
