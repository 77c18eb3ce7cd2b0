// Package responsive resolves breakpoint-keyed configuration to the value of
// the current viewport.
//
// A configured value is either a scalar applied to every viewport or a map
// keyed by breakpoint. Accepted keys are phone, tablet and desktop, their
// small, medium and large aliases, and mobile (phone and tablet together).
//
//	in, _ := responsive.ParseInput(`{"small": 2, "large": "showAll"}`)
//	in.Resolve(responsive.Phone)   // 2
//	in.Resolve(responsive.Desktop) // showAll
//
// Resolution is pure and cannot fail; parsing is where invalid values are rejected.
package responsive
