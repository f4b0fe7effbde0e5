// Package server holds the HTTP server configuration used by the serve command.
//
// The Config struct defines the listen port, the optional API key and how long
// a DLC report is memoised between requests.
package server
