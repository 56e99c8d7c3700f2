//go:build assertly_nodebug

package assertly

const debugAssertions = false
