package teachpy

// DeriveTitle exposes deriveTitle for testing.
var DeriveTitle = deriveTitle
