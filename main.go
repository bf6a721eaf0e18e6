// =============================================================================
// Sales Analytics - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Sales Analytics CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   sales-analytics run         - Run the full analytics pipeline
//   sales-analytics inspect     - Parse and validate only, print filter guidance
//   sales-analytics version     - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/sales-analytics/cmd"
)

func main() {
	cmd.Execute()
}
