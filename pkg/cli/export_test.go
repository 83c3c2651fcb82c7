package cli

import "github.com/m-mizutani/fireconf"

// GetIndexConfigForTest exposes the Firestore index configuration for testing
func GetIndexConfigForTest() *fireconf.Config {
	return getIndexConfig()
}
