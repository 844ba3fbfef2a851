// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/forgepm/resolve/internal/adapters/artifacts"
	_ "github.com/forgepm/resolve/internal/adapters/logger"
	_ "github.com/forgepm/resolve/internal/adapters/managedstore"
	_ "github.com/forgepm/resolve/internal/adapters/manifest"
	_ "github.com/forgepm/resolve/internal/adapters/memcontainer"
	_ "github.com/forgepm/resolve/internal/adapters/noopupdater"
	_ "github.com/forgepm/resolve/internal/adapters/observability"
	_ "github.com/forgepm/resolve/internal/adapters/pinstore"
	_ "github.com/forgepm/resolve/internal/adapters/telemetry/progrock"

	// Register app nodes.
	_ "github.com/forgepm/resolve/internal/app"
)
