// Package settings provides grid-snap policy providers for the canvas
// coordinator.
//
// The coordinator reads its [canvas.GridPolicy] fresh on every drag update,
// so providers are the live seam between external configuration and the
// drag pipeline. Three backends are available:
//
//   - [Static]: an in-memory policy, mutable at runtime. Used by the
//     interactive board where the user toggles snapping with a key.
//   - [File]: re-reads a TOML file on every call, so edits to the config
//     file apply to the very next drag update without a restart.
//   - [Redis]: reads two keys from a shared Redis instance per call, for
//     deployments where one policy drives several board processes.
//
// Every backend is total: read or parse failures fall back to a configured
// default policy and are reported through the settings observability hooks,
// never surfaced to the drag path.
package settings
