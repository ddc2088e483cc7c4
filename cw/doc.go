// Package cw models the parts of a CosmWasm host environment that contract
// helpers consume: block and message metadata, coins and fixed-point math,
// address validation, a key-value storage slot, smart queries and the
// outgoing message shapes.
//
// The host SDK changed the name of its protobuf passthrough message between
// major versions (stargate in v1, any in v2). Code that must emit such
// messages depends on the Host interface; NewHostV1 and NewHostV2 adapt an
// Env and an Api to it.
//
// MockEnv, MockDeps, MockInfo and MockQuerier build in-memory collaborators
// for tests.
package cw
