// Package resource tracks open handles handed to a test so they can be
// released when the test ends.
//
// Lazy line streams and opened files hold a file descriptor until their
// consumer closes them. The test runner records each such value in a Table
// and releases whatever is still open at cleanup.
//
// # Handle Table
//
// The Table maps integer handles to io.Closer values:
//
//	table := resource.NewTable()
//	defer table.Close()
//
//	// Track an open value, get a handle
//	handle := table.Insert(resource.KindStream, stream)
//
//	// Close it early and forget it
//	err := table.Release(handle)
//
// # Kinds
//
// Each value is tracked with a Kind (KindStream, KindFile, KindOther) that
// observers receive with every event, for example to log what was released.
//
//	open := table.Len() // values not yet released
//
// # Observers
//
// Register observers to follow the lifecycle:
//
//	table.Subscribe(observer) // receives EventTracked and EventReleased
//	defer table.Unsubscribe(observer)
//
// Closing a value that its consumer already closed must be harmless; the
// table does not know whether the test body closed it first.
package resource
