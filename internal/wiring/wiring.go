// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wsprune/internal/adapters/config"
	_ "go.trai.ch/wsprune/internal/adapters/fs"
	_ "go.trai.ch/wsprune/internal/adapters/logger"
	_ "go.trai.ch/wsprune/internal/adapters/pruner"
	_ "go.trai.ch/wsprune/internal/adapters/report"
	_ "go.trai.ch/wsprune/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/wsprune/internal/app"
)
