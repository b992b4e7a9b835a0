// Package cli provides command-line interface setup and configuration
// for the textlens application. It handles flag parsing, command
// creation, and configuration management using cobra and viper, and
// wires the translation and sentiment gateways into the pipeline.
package cli
