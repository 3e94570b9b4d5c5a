// Package textstate manages a collection of independent text states on
// top of a text shaping engine: it owns text buffers, caches expensive
// layout computations, tracks per-frame usage for automatic eviction,
// and applies styling, scrolling, selection, and editing operations
// against cached layout geometry.
//
// # Overview
//
// A [Manager] maps caller-chosen [ID]s to [State]s. Each frame the
// caller looks states up, mutates text, style, or size, recalculates,
// and queries geometry or dispatches actions. Mutations only mark the
// state dirty; [State.Recalculate] performs the single shaping pass per
// frame, so any number of property changes costs one reshape.
//
// # Quick Start
//
//	import "github.com/gogpu/textstate"
//
//	mgr := textstate.NewManager[any]()
//	if err := mgr.LoadFonts("Inter-Regular.ttf"); err != nil {
//		log.Fatal(err)
//	}
//
//	id := textstate.NewID("greeting")
//	st, _ := mgr.Create(id, "Hello, world!", nil)
//	st.SetOuterSize(textstate.Size{Width: 400, Height: 200})
//
//	ctx := mgr.Context()
//	size, err := st.InnerSize(ctx) // recalculates if dirty
//
// # Frame loop and eviction
//
// Calling [Manager.StartFrame] and [Manager.EndFrame] around the
// frame's lookups enables mark-and-sweep eviction: states not looked
// up during the frame are removed and their IDs reported, so the
// caller can release renderer resources. Touch every state you intend
// to keep, every frame.
//
// # Concurrency
//
// The package starts no goroutines and every call is synchronous. A
// Manager and its States belong to one frame loop; share them across
// goroutines only with external synchronization. The default shaping
// engine itself is safe for concurrent use and may back multiple
// Managers.
//
// The shaping boundary lives in the shape subpackage; rendering,
// font rasterization, and input plumbing are the caller's concern.
package textstate
