// Package urls provides centralized constants for the documentation URLs
// shown in troubleshooting tips.
//
// Usage:
//
//	import "github.com/muurk/bitread/internal/urls"
//
//	fmt.Printf("Database: %s\n", urls.PrjxrayDatabase)
package urls
