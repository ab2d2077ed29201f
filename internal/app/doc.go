// Package app ties the editing engine to the outside world.
//
// A Session owns the document editor state and at most one transient
// single-line context, routes messages to whichever is active, and moves
// text between the engine and the clipboard. The package also carries the
// leveled Logger and the dispatch Metrics used by the front end.
//
//	s := app.NewSession(text, app.WithConfig(cfg), app.WithClipboard(app.DetectClipboard()))
//	s.Dispatch(message.InsertChar('x'))
//
//	s.Enter(constraint.ContextGotoLine, "")
//	s.Dispatch(message.InsertChar('4'))
//	target, _, err := s.Commit()
package app
