// Package cmd implements the command-line interface of tinycoll.
//
// The package is organized into several subpackages:
//
//   - perf: Measure the store engines with the workloads of lib/perf
//   - run: Execute YAML workload scripts (see lib/script)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// Every flag can also be set through an environment variable with the
// TINYCOLL_ prefix (e.g. TINYCOLL_LOG_LEVEL=debug), .env and .env.local files
// in the working directory are loaded first.
//
// See tinycoll -help for a list of all commands.
package cmd
