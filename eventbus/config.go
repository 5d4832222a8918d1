package eventbus

import (
	"os"
)

// GetBrokers returns Kafka bootstrap servers from KAFKA_BOOTSTRAP_SERVERS.
// Publishing is optional for the revision tooling, so an empty value is
// reported instead of panicking.
func GetBrokers() (string, bool) {
	v := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	return v, v != ""
}
