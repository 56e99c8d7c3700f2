//go:build !assertly_nodebug

package assertly

// debugAssertions enables the DebugAssert variants. Build with
// -tags assertly_nodebug to compile them out.
const debugAssertions = true
