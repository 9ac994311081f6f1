// Package cli implements the sysview command-line interface.
//
// Each Cobra command is a thin shell around a function that takes an
// io.Writer, so the commands can be exercised directly in tests.
//
// # Command Structure
//
//	sysview                       - Interactive split-pane dashboard
//	sysview snapshot [category]   - One-shot capture (text, json, yaml)
//	sysview config init           - Write a default config file
//	sysview config show           - Print the effective config
//	sysview version               - Print version information
//	sysview completion <shell>    - Generate shell completion
//
// # Flag Handling
//
// Global flags (--config, --log-file, --json) are defined on the root
// command. --json switches every command to the JSON envelope
// {success, data, error} used by WriteJSONSuccess and WriteJSONFromError.
//
// # Logging
//
// The dashboard owns the terminal, so its logs are discarded unless
// --log-file names a file to append them to. One-shot commands log to
// stderr. SYSVIEW_DEBUG enables debug lines.
package cli
