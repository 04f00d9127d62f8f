// Package commands implements the asr-debug command tree.
package commands
