// Package config reads the ONTASTE_* environment variables. The values seed
// CLI flag defaults; flags given on the command line win.
package config
