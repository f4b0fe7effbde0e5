// Package report renders check results for the console.
package report
