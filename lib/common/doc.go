// Package common holds the pieces shared by the library packages and the
// command line tool: the custom logger that is installed into dragonboats
// logger package and the configuration structs of the perf and run commands.
//
// Every package of tinycoll obtains its logger with logger.GetLogger(name).
// InitLoggers replaces the default factory and sets the level of all package
// loggers at once:
//
//	common.InitLoggers("debug")
//
// Log lines have the format `LEVEL | package | message`.
package common
