// Package jotter is the Composition Root for the Jotter note persistence library.
//
// It connects the core business logic (Domain Layer) with the infrastructure adapters
// (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Notes are plain-text files in a user-chosen directory. Their display
// preferences (font family, font size, cursor position) live apart from them,
// in a single metadata store under the user's configuration directory, and are
// reconciled with the directory every time notes are loaded:
//
//   - files without metadata get the default font;
//   - metadata of files deleted outside the app is pruned;
//   - an empty directory is seeded with sample notes.
//
// Usage:
//
//	svc, err := jotter.New(
//		jotter.WithNotesDirectory("./notes"),
//		jotter.WithLogger(logger),
//	)
//
//	notes, err := svc.LoadAll(ctx)
//	note, err := svc.Create(ctx, "groceries", "Consolas", 18)
package jotter
