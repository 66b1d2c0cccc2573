package cmd

import "fmt"

// Config carries the environment-driven settings shared by both services.
// Only the fields a given service reads need to be populated.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	CatalogServiceURL  string
	IdentityServiceURL string

	KafkaHost             string
	KafkaFulfillmentTopic string
}

// PostgresDSN renders the lib/pq connection string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
