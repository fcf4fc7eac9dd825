// Package browser opens URLs with the operating system's URL handler.
package browser
