// Package maplog logs handlemap lifecycle events through zap.
//
// The core container never logs; attach an Observer to the map instead:
//
//	logger, _ := zap.NewDevelopment()
//	m := handlemap.New[string]()
//	m.Subscribe(maplog.New[string](logger))
//
//	m.Insert("foo") // DEBUG handlemap event {"op": "inserted", ...}
//
// New(nil) falls back to the package logger, a no-op unless SetLogger was
// called, so instrumented code stays silent by default.
package maplog
