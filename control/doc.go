// Package control
// Author: momentics <momentics@gmail.com>
//
// Run configuration profiles, runtime metrics, and debug introspection for
// benchmark runs.
//
// Provides:
//   - YAML profiles describing a coordinator variant (grid, groups, tier tables)
//   - A concurrent-safe metrics registry with JSON export
//   - Named debug probes evaluated on demand
package control
