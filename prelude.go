package forth

import _ "embed"

// SystemPrelude is the bootstrap FORTH source every host is expected to
// run before user input: arithmetic and stack words, printing words, and
// the structured-loop idioms that build on the Go-bootstrapped control
// flow in bootstrap.go. Embedded here, rather than duplicated into
// cmd/forth, since go:embed patterns cannot cross into a parent
// directory and this is the one location both the CLI and the test
// suite can reach it from.
//
//go:embed testdata/system.forth
var SystemPrelude string
