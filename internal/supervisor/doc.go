// Jobmatch - Collaborative Job Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobmatch

/*
Package supervisor runs the long-lived parts of the server under suture v4.

	RootSupervisor ("jobmatch")
	├── JobsSupervisor ("jobs-layer")
	│   └── MatrixService (if MATRIX_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff; each layer counts failures
independently. Supervisor events are logged through sutureslog, which takes
the slog adapter from the logging package:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) { ... }

Service wrappers live in the services subpackage.
*/
package supervisor
