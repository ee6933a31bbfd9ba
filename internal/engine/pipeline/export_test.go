package pipeline

// Fingerprint exports the private prepare fingerprint for testing.
var Fingerprint = fingerprint
