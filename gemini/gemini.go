// Package gemini implements [teachpy.Dialer] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK's chat surface. Each opened
// handle is a server-side chat seeded with the persona instruction and
// empty history; the endpoint accumulates turn history for the handle's
// lifetime.
package gemini

const defaultModel = "gemini-2.0-flash"
