// Package internal holds identifier generation shared by the engine.
// Nothing here is part of the public API.
package internal
