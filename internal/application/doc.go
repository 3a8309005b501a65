// Package application provides application initialization and dependency wiring.
// It builds the vehicle catalog, calculator, handlers, routers and HTTP server,
// keeping the main package focused on CLI parsing and orchestration.
package application
