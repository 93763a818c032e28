// Package base gives predictably objects a uniform parameter interface:
// parameters are the exported struct fields of an object (optionally renamed
// through `param` tags, with exported embedded structs flattened into the
// parent's parameter set), retrievable and settable as maps, with support
// for object tags, object-local configuration overrides and changed-only
// rendering driven by the object's effective configuration.
package base
