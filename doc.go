// Package testresources injects classpath resources into test functions.
//
// A test function declares parameters of recognized shapes, and options name
// the resource each one reads. The runner locates the resource on the
// classpath, loads it in the requested shape and calls the function:
//
//	func TestGreeting(t *testing.T) {
//	    testresources.Run(t, func(t *testing.T, lines testresources.ContentLines) {
//	        // lines.Lines == ["Anton.txt in sub. Line 1", "Anton.txt in sub. Line 2"]
//	    }, testresources.Read("sub/anton.txt"))
//	}
//
// # Architecture Overview
//
//	testresources/   Shape classification, configuration precedence, resolver, runner
//	├── classpath/   Ordered resource roots and name lookup
//	├── content/     Bytes, decoded text, line lists and lazy line streams
//	├── resource/    Table of open handles released at test cleanup
//	├── config/      Optional testresources.yaml and environment overrides
//	└── errors/      Structured error types for debugging
//
// # Shapes
//
// A parameter's declared type selects how the resource is loaded:
//
//   - ContentLines      lines of the resource
//   - ContentString     content of the resource (see Holder Forms)
//   - *ResourceFile     opens resources by name
//   - *ResourcePath     OS paths and helpers by name
//   - []string          lines of the resource
//   - *Stream[string]   lazy lines of the resource
//   - string            content, only with a parameter-level Param option
//
// Any other type is left to the remaining resolvers, such as the built-in one
// for testing.TB, *testing.T and context.Context.
//
// # Configuration Precedence
//
// Read configures the whole test function; Param configures one parameter.
// A parameter-level configuration always wins in full: its name and encoding
// are taken together and never mixed with the function-level one.
//
//	testresources.Run(t, fn,
//	    testresources.Read("anton.txt"),
//	    testresources.Param(1, "sub/anton.txt", testresources.Encoding("ISO-8859-1")),
//	)
//
// # Holder Forms
//
// ContentLines is always loaded line by line. ContentString is loaded line by
// line when the parameter itself is configured with Param, and its Content is
// then the lines joined by "\n". Configured through Read only, it carries the
// content exactly as stored.
//
// # Streams
//
// A *Stream[string] keeps its resource open until it is exhausted or closed.
// The runner closes any stream still open when the test ends.
//
// # Classpath
//
// Without WithClasspath or WithRoots, the runner reads testresources.yaml in
// the package directory, falling back to a single "testdata" root. The file
// also supplies the default encoding, so it is read whenever a Read or Param
// option names no Encoding. It is skipped when the classpath and every
// encoding are given through options, or when WithConfig is used.
package testresources
