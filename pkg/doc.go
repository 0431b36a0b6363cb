// Package pkg provides the core libraries for the boardkit layout engine.
//
// # Overview
//
// Boardkit places and arranges the node cards of an interactive idea-board
// canvas. The pkg directory is organized into five main areas:
//
//  1. [board] - Domain types (boards, nodes, edges, geometry)
//  2. [layout] - Pure placement strategies (masonry packer, free-flow placer)
//  3. [engine] - Mode dispatch, clamping, resize batching
//  4. [render] - Render-diff stabilization and diagram export
//  5. [store]/[session] - Persistence backends for boards and sessions
//
// # Architecture
//
// The typical data flow through boardkit:
//
//	Board (nodes + edges + mode)
//	         ↓
//	    [engine] package (pick strategy by mode)
//	         ↓
//	    [layout] package (compute positions)
//	         ↓
//	    [render] package (stable shells for the view layer)
//	         ↓
//	    [store] package (persist the updated board)
//
// # Quick Start
//
// Arrange a board and build its render shells:
//
//	import (
//	    "context"
//	    "github.com/edenso/boardkit/pkg/board"
//	    "github.com/edenso/boardkit/pkg/engine"
//	    "github.com/edenso/boardkit/pkg/render"
//	)
//
//	// 1. Repack the board into the masonry grid
//	eng := engine.New(nil)
//	b.Nodes = eng.Arrange(context.Background(), b)
//
//	// 2. Build pointer-stable shells for the view layer
//	cache := render.NewCache()
//	shells := cache.Build(b.Nodes, selected)
//
// # Main Packages
//
// ## Domain
//
// [board] - Board, node, and edge types plus the shared geometry: layout
// constants, dimension clamping, column arithmetic, and rectangle collision
// tests. Everything downstream depends on this package and it depends on
// nothing.
//
// [layout] - The placement strategies. ArrangeAll packs nodes
// shortest-column-first into the masonry grid; NextSlot hands out the next
// grid slot; PlaceNext and PlaceBranch implement free-flow placement where
// only the new node ever moves.
//
// [engine] - Dispatches operations by board mode, clamps node dimensions,
// and coalesces drag-resize events into one commit per frame via
// ResizeBatcher.
//
// [share] - Node duplication and cross-board sharing: deep clones, transient
// flag resets, calendar-event stripping, and destination-slot computation.
//
// ## Rendering
//
// [render] - The render-diff stabilizer. Cache.Build converts nodes into
// pointer-stable shells so an unchanged node never causes view-layer work.
//
// [render/export] - Node-link diagrams of boards via Graphviz (DOT, SVG,
// PNG).
//
// ## Infrastructure
//
// [store] - Board persistence: MemoryStore for tests, FileStore for the CLI,
// MongoStore for the hosted platform.
//
// [session] - Session management for the HTTP API: MemoryStore for
// development, RedisStore for multi-instance deployments.
//
// [cache] - Byte cache for rendered artifacts, keyed by content hash.
//
// [boardio] - Board JSON serialization with validation (file and stream).
//
// [observability] - Hook interfaces for layout and storage instrumentation.
//
// [errors] - Coded errors shared across the CLI and the HTTP API.
package pkg
