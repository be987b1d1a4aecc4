// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sum provides closed tagged unions (sum types) in Go.
//
// The core type [Cell] is single-payload storage that holds exactly one
// value of one alternative from a fixed list, or nothing. The list is
// resolved once into a [Schema], after which alternatives cannot be added,
// removed, or reordered. Exhaustive dispatch over the alternatives is
// provided by [Match] and [Visitor].
//
// # Design Philosophy
//
// sum provides:
//   - A closed alternative list fixed at definition time, with usage errors
//     rejected when the list is resolved rather than when a value is used
//   - Tag-driven storage and dispatch with no per-value reflection
//   - Value-semantic fixed-arity variants for call sites that want the
//     compiler, and an erased N-ary cell for call sites that want one
//     representation across many schemas
//
// # Two Worlds
//
// The package has two coupled representations of the same concept:
//
//   - Typed world: [Of2], [Of3], [Of4] carry their alternatives as type
//     parameters. Construction and matching are checked at compile time,
//     values are plain structs, and no schema object is involved.
//   - Erased world: a [Schema] resolves any number of alternatives (up to
//     [MaxAlternatives]) at definition time, and [Cell] stores one payload
//     behind a tag at runtime. Checking happens when schemas, cells, and
//     visitors are built.
//
// [Of2.Lift] and [Narrow2] (and the arity-3 and arity-4 forms) convert
// between the worlds, validating against the schema in both directions.
//
// # Schemas and Tags
//
// [NewSchema] resolves an ordered list of [Alternative] descriptors built
// with [Of]:
//
//   - Each alternative type may appear once; duplicates panic.
//   - Tags are positional and contiguous, assigned from the end of the
//     list: the last alternative gets [Tag] 0, the first gets N-1.
//   - [None] marks the empty cell and never collides with an assigned tag;
//     lists longer than [MaxAlternatives] panic.
//   - The empty list is legal. Its cells are permanently empty and any
//     attempt to store a value in them panics.
//
// # Cells
//
// [Schema.New] makes an empty cell; [Wrap] makes a full one. The zero Cell
// is an empty cell of the nil schema. Alternatives are always selected by
// the static type parameter, mirroring overload resolution, so an
// interface-typed alternative keeps the concrete values stored through it.
//
//   - [Wrap], [Schema.New]: Construct
//   - [Store]: Replace the payload in place
//   - [Cell.Clone]: Copy, running [Cloner] hooks
//   - [Cell.Take]: Move the payload out, leaving a tagged zero value
//   - [Cell.Clear]: Empty the cell, running [Disposer] hooks; idempotent
//   - [Get], [Is], [Cell.Tag], [Cell.Empty]: Observe
//
// # Dispatch
//
// [When] pairs an alternative type with a handler. [NewVisitor] checks the
// handler list against a schema once (missing, extra, or mismatched
// handlers panic) and [Visitor.Visit] then dispatches any cell of that
// schema in constant time. [Match] is the one-shot form. In the typed
// world, [Match2], [Match3], and [Match4] take one handler per alternative
// and the compiler enforces coverage.
//
// Dispatching an empty variant is a fatal usage error in both worlds.
// Whatever a handler panics with propagates to the caller unchanged.
//
// # Lifecycle Hooks
//
// Payload types may opt into lifecycle hooks, detected statically when
// [Of] builds the descriptor:
//
//   - [Cloner]: deep copy during [Cell.Clone]
//   - [Disposer]: teardown when [Store] replaces or [Cell.Clear] discards
//     the payload, exactly once per stored value, always before the cell
//     can be observed with the next payload
//
// Hooks never run implicitly. A cell that is garbage collected without
// [Cell.Clear] simply never runs Dispose, the same way any other Go value
// relies on the collector rather than finalizers.
//
// # Concurrency
//
// [Schema] and [Visitor] are immutable after construction and safe for
// concurrent use. [Cell] and the typed variants have no internal
// synchronization: concurrent reads are safe, and callers serialize
// mutation against everything else.
//
// # Example
//
//	type conn struct{ addr string }
//
//	func (c *conn) Dispose() { /* release */ }
//
//	schema := sum.NewSchema(
//		sum.Of[*conn](),
//		sum.Of[error](),
//	)
//
//	cell := sum.Wrap(schema, &conn{addr: "10.0.0.7:443"})
//	state := sum.Match(cell,
//		sum.When(func(c *conn) string { return "open " + c.addr }),
//		sum.When(func(err error) string { return "failed: " + err.Error() }),
//	)
//	// state == "open 10.0.0.7:443"
//	cell.Clear() // runs (*conn).Dispose
package sum
